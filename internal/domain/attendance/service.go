package attendance

import "context"

type AttendanceService interface {
	// NextType resolves the expected next event type for the current subject
	// today: checkout after a checkin, checkin otherwise
	NextType(ctx context.Context) (NextTypeResponse, error)

	// Record validates and persists one attendance event for the current
	// subject, computing the shift-aware status on check-in
	Record(ctx context.Context, req RecordRequest) (AttendanceResponse, error)

	// ListMine returns the current subject's records, newest first
	ListMine(ctx context.Context, limit int) ([]AttendanceResponse, error)

	// List returns records across all users, newest first (admin view)
	List(ctx context.Context, limit int) ([]AttendanceResponse, error)
}
