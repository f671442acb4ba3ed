package shift

import (
	"context"
	"fmt"

	"github.com/MuhammadSyaifulIbrahim/absensipro/internal/domain/shift"
	"github.com/MuhammadSyaifulIbrahim/absensipro/internal/domain/user"
	"github.com/MuhammadSyaifulIbrahim/absensipro/internal/pkg/database"
)

type ShiftServiceImpl struct {
	db *database.DB
	shift.ShiftRepository
	user.UserRepository
}

func NewShiftService(db *database.DB, shiftRepo shift.ShiftRepository, userRepo user.UserRepository) shift.ShiftService {
	return &ShiftServiceImpl{
		db:              db,
		ShiftRepository: shiftRepo,
		UserRepository:  userRepo,
	}
}

// Create implements shift.ShiftService.
func (s *ShiftServiceImpl) Create(ctx context.Context, req shift.CreateShiftRequest) (shift.ShiftResponse, error) {
	if err := req.Validate(); err != nil {
		return shift.ShiftResponse{}, err
	}

	created, err := s.ShiftRepository.Create(ctx, shift.Shift{
		Name:         req.Name,
		Start:        req.Start,
		End:          req.End,
		GraceMinutes: req.GraceMinutes,
		BreakMinutes: req.BreakMinutes,
	})
	if err != nil {
		return shift.ShiftResponse{}, fmt.Errorf("failed to create shift: %w", err)
	}

	return shift.NewShiftResponse(created), nil
}

// List implements shift.ShiftService.
func (s *ShiftServiceImpl) List(ctx context.Context) ([]shift.ShiftResponse, error) {
	shifts, err := s.ShiftRepository.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list shifts: %w", err)
	}

	responses := make([]shift.ShiftResponse, 0, len(shifts))
	for _, sh := range shifts {
		responses = append(responses, shift.NewShiftResponse(sh))
	}

	return responses, nil
}

// Assign implements shift.ShiftService. A nil shiftID clears the user's
// assignment.
func (s *ShiftServiceImpl) Assign(ctx context.Context, uid string, shiftID *string) error {
	if shiftID != nil {
		if _, err := s.ShiftRepository.GetByID(ctx, *shiftID); err != nil {
			return err
		}
	}

	if err := s.UserRepository.SetShift(ctx, uid, shiftID); err != nil {
		return fmt.Errorf("failed to assign shift: %w", err)
	}

	return nil
}
