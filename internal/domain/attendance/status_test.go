package attendance

import (
	"testing"
	"time"

	"github.com/MuhammadSyaifulIbrahim/absensipro/internal/domain/shift"
	"github.com/stretchr/testify/assert"
)

func strPtr(s string) *string { return &s }
func intPtr(i int) *int       { return &i }

func localTime(ymd string, hour, min int) time.Time {
	day, _ := time.ParseInLocation("2006-01-02", ymd, time.Local)
	return time.Date(day.Year(), day.Month(), day.Day(), hour, min, 0, 0, time.Local)
}

func TestDeriveNonCheckIn(t *testing.T) {
	// Checkouts never carry an attendance status, whatever else is stored.
	recs := []Attendance{
		{Type: TypeCheckOut},
		{Type: TypeCheckOut, Status: strPtr(StatusLate), LateMinutes: intPtr(42)},
		{Type: "something-else", LateMinutes: intPtr(7)},
	}
	for _, rec := range recs {
		res := Derive(rec)
		assert.Equal(t, CodeNone, res.Code)
		assert.Equal(t, "-", res.Text)
		assert.Equal(t, 0, res.LateMinutes)
	}
}

func TestDeriveStoredLate(t *testing.T) {
	rec := Attendance{Type: TypeCheckIn, Status: strPtr(StatusLate), LateMinutes: intPtr(23)}
	res := Derive(rec)
	assert.Equal(t, CodeLate, res.Code)
	assert.Equal(t, 23, res.LateMinutes)
	assert.Equal(t, "Late (23 min)", res.Text)
}

func TestDeriveStoredLateWithoutMinutes(t *testing.T) {
	rec := Attendance{Type: TypeCheckIn, Status: strPtr(StatusLate)}
	res := Derive(rec)
	assert.Equal(t, CodeLate, res.Code)
	assert.Equal(t, 0, res.LateMinutes)
}

func TestDeriveStoredOnTimeIgnoresCutoff(t *testing.T) {
	// Stored "ontime" wins even when createdAt is far past the 08:00 cutoff.
	rec := Attendance{
		Type:      TypeCheckIn,
		Status:    strPtr(StatusOnTime),
		YMD:       "2025-04-07",
		CreatedAt: localTime("2025-04-07", 14, 30),
	}
	res := Derive(rec)
	assert.Equal(t, CodeOnTime, res.Code)
	assert.Equal(t, 0, res.LateMinutes)
}

func TestDeriveBareLateMinutes(t *testing.T) {
	late := Derive(Attendance{Type: TypeCheckIn, Status: strPtr(StatusPresent), LateMinutes: intPtr(9)})
	assert.Equal(t, CodeLate, late.Code)
	assert.Equal(t, 9, late.LateMinutes)

	onTime := Derive(Attendance{Type: TypeCheckIn, LateMinutes: intPtr(0)})
	assert.Equal(t, CodeOnTime, onTime.Code)
}

func TestDeriveCutoffFallback(t *testing.T) {
	t.Run("after cutoff", func(t *testing.T) {
		rec := Attendance{
			Type:      TypeCheckIn,
			YMD:       "2025-04-07",
			CreatedAt: localTime("2025-04-07", 8, 45),
		}
		res := Derive(rec)
		assert.Equal(t, CodeLate, res.Code)
		assert.Equal(t, 45, res.LateMinutes)
	})

	t.Run("before cutoff", func(t *testing.T) {
		rec := Attendance{
			Type:      TypeCheckIn,
			YMD:       "2025-04-07",
			CreatedAt: localTime("2025-04-07", 7, 55),
		}
		res := Derive(rec)
		assert.Equal(t, CodeOnTime, res.Code)
	})

	t.Run("missing ymd falls back to createdAt day", func(t *testing.T) {
		rec := Attendance{
			Type:      TypeCheckIn,
			CreatedAt: localTime("2025-04-07", 8, 10),
		}
		res := Derive(rec)
		assert.Equal(t, CodeLate, res.Code)
		assert.Equal(t, 10, res.LateMinutes)
	})

	t.Run("missing createdAt assumes on time", func(t *testing.T) {
		res := Derive(Attendance{Type: TypeCheckIn, YMD: "2025-04-07"})
		assert.Equal(t, CodeOnTime, res.Code)
	})
}

func TestDeriveIdempotent(t *testing.T) {
	rec := Attendance{
		Type:        TypeCheckIn,
		Status:      strPtr(StatusLate),
		LateMinutes: intPtr(12),
		YMD:         "2025-04-07",
		CreatedAt:   localTime("2025-04-07", 9, 12),
	}
	first := Derive(rec)
	second := Derive(rec)
	assert.Equal(t, first, second)
}

func TestComputeCheckInStatus(t *testing.T) {
	nineOClock := &shift.Shift{Name: "Office", Start: "09:00", End: "17:00", GraceMinutes: 15}

	t.Run("past grace limit is late, measured from planned start", func(t *testing.T) {
		res := ComputeCheckInStatus(localTime("2025-04-07", 9, 16), nineOClock)
		assert.Equal(t, StatusLate, res.Status)
		assert.Equal(t, 16, res.LateMinutes)
	})

	t.Run("inside grace period is present", func(t *testing.T) {
		res := ComputeCheckInStatus(localTime("2025-04-07", 9, 10), nineOClock)
		assert.Equal(t, StatusPresent, res.Status)
		assert.Equal(t, 0, res.LateMinutes)
	})

	t.Run("exactly at grace limit is present", func(t *testing.T) {
		res := ComputeCheckInStatus(localTime("2025-04-07", 9, 15), nineOClock)
		assert.Equal(t, StatusPresent, res.Status)
	})

	t.Run("no shift is unconditionally present", func(t *testing.T) {
		res := ComputeCheckInStatus(localTime("2025-04-07", 13, 0), nil)
		assert.Equal(t, StatusPresent, res.Status)
		assert.Equal(t, 0, res.LateMinutes)
	})

	t.Run("shift without start time is present", func(t *testing.T) {
		res := ComputeCheckInStatus(localTime("2025-04-07", 13, 0), &shift.Shift{Name: "Flex"})
		assert.Equal(t, StatusPresent, res.Status)
	})

	t.Run("zero grace", func(t *testing.T) {
		s := &shift.Shift{Start: "08:30"}
		res := ComputeCheckInStatus(localTime("2025-04-07", 8, 31), s)
		assert.Equal(t, StatusLate, res.Status)
		assert.Equal(t, 1, res.LateMinutes)
	})
}

func TestNextType(t *testing.T) {
	assert.Equal(t, TypeCheckIn, NextType(nil))
	assert.Equal(t, TypeCheckOut, NextType(&Attendance{Type: TypeCheckIn}))
	assert.Equal(t, TypeCheckIn, NextType(&Attendance{Type: TypeCheckOut}))
}
