package export

import (
	"bytes"
	"context"
	"encoding/csv"
	"testing"
	"time"

	"github.com/MuhammadSyaifulIbrahim/absensipro/internal/domain/attendance"
	"github.com/MuhammadSyaifulIbrahim/absensipro/internal/domain/request"
	"github.com/MuhammadSyaifulIbrahim/absensipro/internal/domain/user"
	"github.com/MuhammadSyaifulIbrahim/absensipro/internal/pkg/pagination"
	"github.com/MuhammadSyaifulIbrahim/absensipro/internal/pkg/validator"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeAttendanceRepo struct {
	attendance.AttendanceRepository
	records []attendance.Attendance
}

func (f *fakeAttendanceRepo) ListRange(ctx context.Context, fromYMD, toYMD string) ([]attendance.Attendance, error) {
	var out []attendance.Attendance
	for _, rec := range f.records {
		if rec.YMD >= fromYMD && rec.YMD <= toYMD {
			out = append(out, rec)
		}
	}
	return out, nil
}

type fakeRequestRepo struct {
	request.RequestRepository
	requests []request.Request
}

func (f *fakeRequestRepo) ListRange(ctx context.Context, start, end time.Time, status string) ([]request.Request, error) {
	var out []request.Request
	for _, r := range f.requests {
		if r.CreatedAt.Before(start) || r.CreatedAt.After(end) {
			continue
		}
		if status != "" && r.Status != status {
			continue
		}
		out = append(out, r)
	}
	return out, nil
}

type fakeUserRepo struct {
	user.UserRepository
	users []user.User
}

func (f *fakeUserRepo) ListAll(ctx context.Context) ([]user.User, error) {
	return f.users, nil
}

func (f *fakeUserRepo) ListPage(ctx context.Context, pageSize int, after *pagination.Cursor) ([]user.User, error) {
	return f.users, nil
}

func strPtr(s string) *string { return &s }
func intPtr(n int) *int       { return &n }

func newTestService(att []attendance.Attendance, reqs []request.Request, users []user.User) ExportService {
	return NewExportService(
		&fakeAttendanceRepo{records: att},
		&fakeRequestRepo{requests: reqs},
		&fakeUserRepo{users: users},
	)
}

func TestExportAttendance_InvertedRangeRejected(t *testing.T) {
	svc := newTestService(nil, nil, nil)

	_, err := svc.ExportAttendance(context.Background(), AttendanceExportRequest{
		From:   "2026-02-10",
		To:     "2026-02-01",
		Format: FormatCSV,
	})

	var verrs validator.ValidationErrors
	require.ErrorAs(t, err, &verrs)
	assert.Contains(t, verrs.ToMap(), "from")
}

func TestExportAttendance_EmptyRange(t *testing.T) {
	svc := newTestService(nil, nil, nil)

	_, err := svc.ExportAttendance(context.Background(), AttendanceExportRequest{
		From:   "2026-02-01",
		To:     "2026-02-28",
		Format: FormatCSV,
	})

	assert.ErrorIs(t, err, ErrNoExportData)
}

func TestExportAttendance_CSV(t *testing.T) {
	users := []user.User{
		{UID: "u1", Name: "Alice", Email: "alice@example.com"},
		{UID: "u2", Name: "", Email: "bob@example.com"},
	}
	records := []attendance.Attendance{
		{
			ID:          "a1",
			UID:         "u1",
			Type:        attendance.TypeCheckIn,
			YMD:         "2026-02-02",
			Status:      strPtr(attendance.StatusLate),
			LateMinutes: intPtr(12),
			CreatedAt:   time.Date(2026, 2, 2, 9, 12, 0, 0, time.Local),
		},
		{
			ID:        "a2",
			UID:       "u2",
			Type:      attendance.TypeCheckOut,
			YMD:       "2026-02-02",
			CreatedAt: time.Date(2026, 2, 2, 17, 0, 0, 0, time.Local),
		},
	}

	svc := newTestService(records, nil, users)

	artifact, err := svc.ExportAttendance(context.Background(), AttendanceExportRequest{
		From:   "2026-02-01",
		To:     "2026-02-28",
		Format: FormatCSV,
	})
	require.NoError(t, err)

	assert.Equal(t, "attendance_2026-02-01_2026-02-28.csv", artifact.Filename)
	assert.Equal(t, "text/csv", artifact.ContentType)

	rows, err := csv.NewReader(bytes.NewReader(artifact.Data)).ReadAll()
	require.NoError(t, err)
	require.Len(t, rows, 3) // header + 2 records

	// Named user
	assert.Equal(t, "Alice", rows[1][0])
	assert.Equal(t, "Late (12 min)", rows[1][3])
	assert.Equal(t, "12", rows[1][4])

	// Nameless user falls back to email; checkout derives no status
	assert.Equal(t, "bob@example.com", rows[2][0])
	assert.Equal(t, "Check Out", rows[2][2])
	assert.Equal(t, "-", rows[2][3])
}

func TestExportAttendance_XLSX(t *testing.T) {
	records := []attendance.Attendance{
		{
			ID:        "a1",
			UID:       "u1",
			Type:      attendance.TypeCheckIn,
			YMD:       "2026-02-02",
			CreatedAt: time.Date(2026, 2, 2, 8, 0, 0, 0, time.Local),
		},
	}

	svc := newTestService(records, nil, nil)

	artifact, err := svc.ExportAttendance(context.Background(), AttendanceExportRequest{
		From:   "2026-02-01",
		To:     "2026-02-28",
		Format: FormatXLSX,
	})
	require.NoError(t, err)

	assert.Equal(t, "attendance_2026-02-01_2026-02-28.xlsx", artifact.Filename)
	assert.NotEmpty(t, artifact.Data)
	// XLSX artifacts are zip archives
	assert.Equal(t, []byte("PK"), artifact.Data[:2])
}

func TestExportRequests_StatusFilterAndFilename(t *testing.T) {
	reqs := []request.Request{
		{
			ID:        "r1",
			UID:       "u1",
			Type:      request.TypeLeave,
			Status:    request.StatusApproved,
			From:      strPtr("2026-02-03"),
			To:        strPtr("2026-02-05"),
			CreatedAt: time.Date(2026, 2, 1, 10, 0, 0, 0, time.Local),
		},
		{
			ID:        "r2",
			UID:       "u1",
			Type:      request.TypeOvertime,
			Status:    request.StatusPending,
			Date:      strPtr("2026-02-04"),
			StartTime: strPtr("18:00"),
			EndTime:   strPtr("20:30"),
			CreatedAt: time.Date(2026, 2, 1, 11, 0, 0, 0, time.Local),
		},
	}

	svc := newTestService(nil, reqs, nil)

	artifact, err := svc.ExportRequests(context.Background(), RequestExportRequest{
		From:   "2026-02-01",
		To:     "2026-02-01",
		Status: "Approved",
		Format: FormatCSV,
	})
	require.NoError(t, err)

	assert.Equal(t, "requests_2026-02-01_2026-02-01_approved.csv", artifact.Filename)

	rows, err := csv.NewReader(bytes.NewReader(artifact.Data)).ReadAll()
	require.NoError(t, err)
	require.Len(t, rows, 2) // header + the approved request only
	assert.Equal(t, "leave", rows[1][1])
	assert.Equal(t, "approved", rows[1][2])
}

func TestExportRequests_DayBoundariesInclusive(t *testing.T) {
	reqs := []request.Request{
		{
			ID:        "r1",
			UID:       "u1",
			Type:      request.TypeSick,
			Status:    request.StatusPending,
			From:      strPtr("2026-02-01"),
			To:        strPtr("2026-02-01"),
			CreatedAt: time.Date(2026, 2, 1, 23, 59, 30, 0, time.Local),
		},
		{
			ID:        "r2",
			UID:       "u1",
			Type:      request.TypeSick,
			Status:    request.StatusPending,
			From:      strPtr("2026-02-02"),
			To:        strPtr("2026-02-02"),
			CreatedAt: time.Date(2026, 2, 2, 0, 0, 30, 0, time.Local),
		},
	}

	svc := newTestService(nil, reqs, nil)

	artifact, err := svc.ExportRequests(context.Background(), RequestExportRequest{
		From:   "2026-02-01",
		To:     "2026-02-01",
		Format: FormatCSV,
	})
	require.NoError(t, err)

	rows, err := csv.NewReader(bytes.NewReader(artifact.Data)).ReadAll()
	require.NoError(t, err)
	require.Len(t, rows, 2) // header + the request inside the day only
}

func TestExportRequests_UnknownFormatRejected(t *testing.T) {
	svc := newTestService(nil, nil, nil)

	_, err := svc.ExportRequests(context.Background(), RequestExportRequest{
		From:   "2026-02-01",
		To:     "2026-02-28",
		Format: "pdf",
	})

	var verrs validator.ValidationErrors
	require.ErrorAs(t, err, &verrs)
	assert.Contains(t, verrs.ToMap(), "format")
}
