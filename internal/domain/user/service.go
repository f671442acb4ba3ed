package user

import "context"

type UserService interface {
	// ListPage returns one cursor-paged slice of the user directory
	ListPage(ctx context.Context, req ListUsersRequest) (ListUsersResponse, error)

	// SetRole changes a user's role (admin action)
	SetRole(ctx context.Context, uid string, req SetRoleRequest) error

	// SetActive toggles a user's active flag (admin action)
	SetActive(ctx context.Context, uid string, req SetActiveRequest) error
}
