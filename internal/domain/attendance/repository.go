package attendance

import (
	"context"
)

// AttendanceRepository defines data access methods for attendance records.
// Records are immutable once created: there is no update or delete method.
type AttendanceRepository interface {
	// AppendForDay atomically resolves the expected next event type for
	// (rec.UID, rec.YMD) and inserts rec when rec.Type matches it, returning
	// ErrUnexpectedEventType otherwise. The resolve-then-insert pair runs
	// under a per-day lock so concurrent submissions cannot both observe the
	// same prior state.
	AppendForDay(ctx context.Context, rec Attendance) (Attendance, error)

	// LastForDay retrieves the most recent record for (uid, ymd) ordered by
	// created_at descending, or nil when the day has no records yet
	LastForDay(ctx context.Context, uid string, ymd string) (*Attendance, error)

	// ListByUID retrieves a user's records ordered by created_at descending
	ListByUID(ctx context.Context, uid string, limit int) ([]Attendance, error)

	// List retrieves records across all users ordered by created_at
	// descending (admin view)
	List(ctx context.Context, limit int) ([]Attendance, error)

	// ListRange retrieves records with fromYMD <= ymd <= toYMD ordered by
	// ymd ascending, for exports
	ListRange(ctx context.Context, fromYMD, toYMD string) ([]Attendance, error)
}
