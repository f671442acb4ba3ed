package shift

import (
	"github.com/MuhammadSyaifulIbrahim/absensipro/internal/pkg/validator"
)

// ========================================
// SHIFT DTOs
// ========================================

type CreateShiftRequest struct {
	Name         string `json:"name"`
	Start        string `json:"start"`
	End          string `json:"end"`
	GraceMinutes int    `json:"grace_minutes"`
	BreakMinutes int    `json:"break_minutes"`
}

// Validate checks required fields and shapes. Deliberately no uniqueness
// constraint on name and no start < end check: overnight shifts are not
// modeled and duplicate names are allowed.
func (r *CreateShiftRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{
			Field:   "name",
			Message: "name is required",
		})
	}

	if !validator.IsValidClock(r.Start) {
		errs = append(errs, validator.ValidationError{
			Field:   "start",
			Message: "start must be a wall-clock time in HH:MM form",
		})
	}

	if !validator.IsValidClock(r.End) {
		errs = append(errs, validator.ValidationError{
			Field:   "end",
			Message: "end must be a wall-clock time in HH:MM form",
		})
	}

	if r.GraceMinutes < 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "grace_minutes",
			Message: "grace_minutes must not be negative",
		})
	}

	if r.BreakMinutes < 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "break_minutes",
			Message: "break_minutes must not be negative",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type ShiftResponse struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	Start        string `json:"start"`
	End          string `json:"end"`
	GraceMinutes int    `json:"grace_minutes"`
	BreakMinutes int    `json:"break_minutes"`
}

func NewShiftResponse(s Shift) ShiftResponse {
	return ShiftResponse{
		ID:           s.ID,
		Name:         s.Name,
		Start:        s.Start,
		End:          s.End,
		GraceMinutes: s.GraceMinutes,
		BreakMinutes: s.BreakMinutes,
	}
}
