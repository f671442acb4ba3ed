package user

import "errors"

// User domain errors
var (
	ErrUserNotFound   = errors.New("user not found")
	ErrUserInactive   = errors.New("user account is deactivated")
	ErrEmailExists    = errors.New("email already registered")
	ErrAdminPrivilegeRequired   = errors.New("admin privilege required")
	ErrManagerPrivilegeRequired = errors.New("manager or admin privilege required")
)
