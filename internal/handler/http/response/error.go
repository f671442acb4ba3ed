package response

import (
	"errors"
	"net/http"

	"github.com/MuhammadSyaifulIbrahim/absensipro/internal/domain/attendance"
	"github.com/MuhammadSyaifulIbrahim/absensipro/internal/domain/auth"
	"github.com/MuhammadSyaifulIbrahim/absensipro/internal/domain/request"
	"github.com/MuhammadSyaifulIbrahim/absensipro/internal/domain/shift"
	"github.com/MuhammadSyaifulIbrahim/absensipro/internal/domain/user"
	"github.com/MuhammadSyaifulIbrahim/absensipro/internal/pkg/pagination"
	"github.com/MuhammadSyaifulIbrahim/absensipro/internal/pkg/validator"
	"github.com/MuhammadSyaifulIbrahim/absensipro/internal/service/export"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	// Check if it's a validation error
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	switch {
	// Auth domain errors
	case errors.Is(err, auth.ErrInvalidCredentials):
		Unauthorized(w, err.Error())
	case errors.Is(err, auth.ErrInvalidToken):
		Unauthorized(w, "Token is invalid or expired")
	case errors.Is(err, auth.ErrRefreshTokenRevoked):
		Unauthorized(w, "Refresh token revoked")
	case errors.Is(err, auth.ErrEmailAlreadyExists):
		Conflict(w, "Email already registered")
	case errors.Is(err, auth.ErrUserNotFound):
		NotFound(w, "User not found")
	case errors.Is(err, auth.ErrAccountDisabled):
		Forbidden(w, "Account is disabled, contact an administrator")

	// User domain errors
	case errors.Is(err, user.ErrUserNotFound):
		NotFound(w, "User not found")
	case errors.Is(err, user.ErrUserInactive):
		Forbidden(w, "Account is disabled, contact an administrator")
	case errors.Is(err, user.ErrEmailExists):
		Conflict(w, "Email already registered")
	case errors.Is(err, user.ErrAdminPrivilegeRequired):
		Forbidden(w, "Admin privilege required, sign in with an admin account")
	case errors.Is(err, user.ErrManagerPrivilegeRequired):
		Forbidden(w, "Manager privilege required, sign in with a manager or admin account")

	// Shift domain errors
	case errors.Is(err, shift.ErrShiftNotFound):
		NotFound(w, "Shift not found")

	// Attendance domain errors
	case errors.Is(err, attendance.ErrAttendanceNotFound):
		NotFound(w, "Attendance record not found")
	case errors.Is(err, attendance.ErrUnexpectedEventType):
		Conflict(w, "Attendance event out of order, refresh and try again")

	// Request domain errors
	case errors.Is(err, request.ErrRequestNotFound):
		NotFound(w, "Request not found")

	// Pagination and export errors
	case errors.Is(err, pagination.ErrInvalidCursor):
		BadRequest(w, "Cursor is malformed", nil)
	case errors.Is(err, export.ErrNoExportData):
		NotFound(w, err.Error())

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
