package shift

import "context"

// ShiftRepository defines data access methods for shift definitions.
// Shifts are never deleted and have no update path; mutation happens only
// by creating a new shift and re-assigning users.
type ShiftRepository interface {
	// Create inserts a new shift definition
	Create(ctx context.Context, s Shift) (Shift, error)

	// GetByID retrieves a shift by id
	GetByID(ctx context.Context, id string) (Shift, error)

	// List retrieves all shifts ordered by name ascending
	List(ctx context.Context) ([]Shift, error)
}
