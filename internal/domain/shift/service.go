package shift

import "context"

type ShiftService interface {
	// Create registers a new shift definition (admin action)
	Create(ctx context.Context, req CreateShiftRequest) (ShiftResponse, error)

	// List returns all shifts sorted by name
	List(ctx context.Context) ([]ShiftResponse, error)

	// Assign sets or clears a user's shift reference (admin action)
	Assign(ctx context.Context, uid string, shiftID *string) error
}
