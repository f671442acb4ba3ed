package request

import (
	"context"
	"time"

	"github.com/MuhammadSyaifulIbrahim/absensipro/internal/pkg/pagination"
)

// RequestRepository defines data access methods for workflow requests.
type RequestRepository interface {
	// Create inserts a new request with server-assigned created_at
	Create(ctx context.Context, req Request) (Request, error)

	// GetByID retrieves a request by id
	GetByID(ctx context.Context, id string) (Request, error)

	// UpdateStatus writes a new status, approver and updated_at. No guard on
	// the current status: repeated approvals overwrite silently.
	UpdateStatus(ctx context.Context, id string, status string, approverUID string) error

	// ListByUID retrieves a user's requests ordered by created_at descending,
	// capped at max
	ListByUID(ctx context.Context, uid string, max int) ([]Request, error)

	// ListByStatus retrieves requests with the given status ordered by
	// created_at descending, capped at max
	ListByStatus(ctx context.Context, status string, max int) ([]Request, error)

	// ListPage retrieves one page of requests ordered by created_at
	// descending, resuming after the cursor when non-nil (admin view)
	ListPage(ctx context.Context, pageSize int, after *pagination.Cursor) ([]Request, error)

	// ListRange retrieves requests with start <= created_at <= end ordered
	// ascending, optionally filtered by status ("" means all), for exports
	ListRange(ctx context.Context, start, end time.Time, status string) ([]Request, error)
}
