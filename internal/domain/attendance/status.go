package attendance

import (
	"fmt"
	"math"
	"time"

	"github.com/MuhammadSyaifulIbrahim/absensipro/internal/domain/shift"
	"github.com/MuhammadSyaifulIbrahim/absensipro/internal/pkg/validator"
)

// Status derivation uses two deliberately separate computations:
//
//   - ComputeCheckInStatus runs at write time and is shift-aware.
//   - Derive runs at read/export time over stored records and falls back
//     through a fixed tier order, ending at a hardcoded 08:00 cutoff.
//
// The split keeps records written before shift assignment existed readable
// without a backfill migration. Both paths must stay independent: the read
// path never consults a shift.

// Fallback cutoff used only when a record carries no stored status,
// no stored late minutes and no shift context.
const (
	fallbackCutoffHour   = 8
	fallbackCutoffMinute = 0
)

// Derivation result codes.
const (
	CodeNone   = "none" // not a check-in, no attendance status applies
	CodeOnTime = "ontime"
	CodeLate   = "late"
)

// DeriveResult is the displayed/exported form of a record's status.
type DeriveResult struct {
	Code        string
	Text        string
	LateMinutes int
}

func onTimeResult() DeriveResult {
	return DeriveResult{Code: CodeOnTime, Text: "On time", LateMinutes: 0}
}

func lateResult(lateMinutes int) DeriveResult {
	return DeriveResult{
		Code:        CodeLate,
		Text:        fmt.Sprintf("Late (%d min)", lateMinutes),
		LateMinutes: lateMinutes,
	}
}

// Derive computes the display status for a stored record. Tiers are tried in
// strict priority order and the first match wins:
//
//  1. non check-in records have no attendance status
//  2. explicit stored "late" uses the stored late minutes
//  3. explicit stored "ontime" is on time
//  4. a stored late-minutes number without an explicit status string
//     classifies by sign
//  5. otherwise recompute from createdAt against the 08:00 cutoff on the
//     record's ymd day
//
// Records written by different client versions populate different subsets of
// these fields, so the order must not change.
func Derive(rec Attendance) DeriveResult {
	// Tier 1: only check-ins carry an attendance status.
	if rec.Type != TypeCheckIn {
		return DeriveResult{Code: CodeNone, Text: "-", LateMinutes: 0}
	}

	// Tier 2: stored "late" wins, with stored minutes when present.
	if rec.Status != nil && *rec.Status == StatusLate {
		lm := 0
		if rec.LateMinutes != nil {
			lm = *rec.LateMinutes
		}
		return lateResult(lm)
	}

	// Tier 3: stored "ontime" wins.
	if rec.Status != nil && *rec.Status == StatusOnTime {
		return onTimeResult()
	}

	// Tier 4: a bare late-minutes number classifies by sign.
	if rec.LateMinutes != nil {
		if *rec.LateMinutes > 0 {
			return lateResult(*rec.LateMinutes)
		}
		return onTimeResult()
	}

	// Tier 5: recompute against the fixed cutoff. Without createdAt there is
	// nothing to compute from, so assume on time rather than fail.
	if rec.CreatedAt.IsZero() {
		return onTimeResult()
	}

	ymd := rec.YMD
	if ymd == "" {
		ymd = rec.CreatedAt.Format("2006-01-02")
	}
	day, err := time.ParseInLocation("2006-01-02", ymd, time.Local)
	if err != nil {
		day = time.Date(rec.CreatedAt.Year(), rec.CreatedAt.Month(), rec.CreatedAt.Day(), 0, 0, 0, 0, time.Local)
	}
	cutoff := time.Date(day.Year(), day.Month(), day.Day(), fallbackCutoffHour, fallbackCutoffMinute, 0, 0, time.Local)

	if rec.CreatedAt.After(cutoff) {
		lateMinutes := int(rec.CreatedAt.Sub(cutoff) / time.Minute)
		return lateResult(lateMinutes)
	}
	return onTimeResult()
}

// CheckInStatus is the write-time computation result persisted on a new
// check-in record.
type CheckInStatus struct {
	Status      string
	LateMinutes int
}

// ComputeCheckInStatus classifies a check-in happening at now against the
// subject's shift. Lateness is measured from the planned start, not from the
// grace boundary. Without an assigned shift the check-in is unconditionally
// present; the 08:00 fallback belongs to the read path only.
func ComputeCheckInStatus(now time.Time, s *shift.Shift) CheckInStatus {
	if s == nil || s.Start == "" {
		return CheckInStatus{Status: StatusPresent, LateMinutes: 0}
	}

	startMinutes := validator.ClockToMinutes(s.Start)
	planned := time.Date(now.Year(), now.Month(), now.Day(),
		startMinutes/60, startMinutes%60, 0, 0, now.Location())

	graceLimit := planned.Add(time.Duration(s.GraceMinutes) * time.Minute)

	if now.After(graceLimit) {
		lateMinutes := int(math.Round(now.Sub(planned).Minutes()))
		if lateMinutes < 0 {
			lateMinutes = 0
		}
		return CheckInStatus{Status: StatusLate, LateMinutes: lateMinutes}
	}
	return CheckInStatus{Status: StatusPresent, LateMinutes: 0}
}
