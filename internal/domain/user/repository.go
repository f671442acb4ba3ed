package user

import (
	"context"

	"github.com/MuhammadSyaifulIbrahim/absensipro/internal/pkg/pagination"
)

// UserRepository defines data access methods for the identity collection.
type UserRepository interface {
	// Create inserts a new user record
	Create(ctx context.Context, u User) (User, error)

	// GetByID retrieves a user by uid
	GetByID(ctx context.Context, uid string) (User, error)

	// GetByEmail retrieves a user by email
	GetByEmail(ctx context.Context, email string) (User, error)

	// ListPage retrieves one page of users ordered by created_at descending,
	// resuming after the given cursor when non-nil
	ListPage(ctx context.Context, pageSize int, after *pagination.Cursor) ([]User, error)

	// ListAll retrieves every user, used by admin views and exports to build
	// the uid -> display name lookup
	ListAll(ctx context.Context) ([]User, error)

	// SetRole updates a user's role
	SetRole(ctx context.Context, uid string, role Role) error

	// SetActive toggles a user's active flag
	SetActive(ctx context.Context, uid string, active bool) error

	// SetShift sets or clears a user's shift reference
	SetShift(ctx context.Context, uid string, shiftID *string) error

	// LinkGoogle stores the Google account ID on an existing user
	LinkGoogle(ctx context.Context, uid string, googleID string) error
}
