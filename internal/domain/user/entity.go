package user

import "time"

type Role string

const (
	RoleStaff   Role = "staff"
	RoleManager Role = "manager"
	RoleAdmin   Role = "admin"
)

// Roles lists every role a user may hold.
var Roles = []string{string(RoleStaff), string(RoleManager), string(RoleAdmin)}

type User struct {
	UID          string
	Name         string
	Email        string
	Role         Role
	Active       bool
	ShiftID      *string
	PasswordHash *string
	GoogleID     *string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// DisplayName resolves the label shown beside a user's records: name,
// falling back to email, falling back to the uid itself.
func (u User) DisplayName() string {
	if u.Name != "" {
		return u.Name
	}
	if u.Email != "" {
		return u.Email
	}
	return u.UID
}
