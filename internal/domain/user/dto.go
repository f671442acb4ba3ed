package user

import (
	"github.com/MuhammadSyaifulIbrahim/absensipro/internal/pkg/pagination"
	"github.com/MuhammadSyaifulIbrahim/absensipro/internal/pkg/validator"
)

// ========================================
// USER DTOs
// ========================================

type SetRoleRequest struct {
	Role string `json:"role"`
}

func (r *SetRoleRequest) Validate() error {
	var errs validator.ValidationErrors

	if !validator.IsInSlice(r.Role, Roles) {
		errs = append(errs, validator.ValidationError{
			Field:   "role",
			Message: "role must be one of staff, manager, admin",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type SetActiveRequest struct {
	Active bool `json:"active"`
}

type AssignShiftRequest struct {
	ShiftID *string `json:"shift_id"`
}

type UserResponse struct {
	UID       string  `json:"uid"`
	Name      string  `json:"name"`
	Email     string  `json:"email"`
	Role      string  `json:"role"`
	Active    bool    `json:"active"`
	ShiftID   *string `json:"shift_id"`
	CreatedAt string  `json:"created_at"`
}

func NewUserResponse(u User) UserResponse {
	return UserResponse{
		UID:       u.UID,
		Name:      u.Name,
		Email:     u.Email,
		Role:      string(u.Role),
		Active:    u.Active,
		ShiftID:   u.ShiftID,
		CreatedAt: u.CreatedAt.Format("2006-01-02 15:04:05"),
	}
}

type ListUsersRequest struct {
	PageSize int
	After    string // opaque cursor from the previous page
}

func (r *ListUsersRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.PageSize <= 0 || r.PageSize > 200 {
		errs = append(errs, validator.ValidationError{
			Field:   "page_size",
			Message: "page_size must be between 1 and 200",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type ListUsersResponse struct {
	Rows []UserResponse      `json:"rows"`
	Page pagination.PageInfo `json:"page"`
}
