package user

import (
	"context"
	"fmt"

	"github.com/MuhammadSyaifulIbrahim/absensipro/internal/domain/user"
	"github.com/MuhammadSyaifulIbrahim/absensipro/internal/pkg/database"
	"github.com/MuhammadSyaifulIbrahim/absensipro/internal/pkg/pagination"
)

type UserServiceImpl struct {
	db *database.DB
	user.UserRepository
}

func NewUserService(db *database.DB, userRepo user.UserRepository) user.UserService {
	return &UserServiceImpl{
		db:             db,
		UserRepository: userRepo,
	}
}

// ListPage implements user.UserService.
func (u *UserServiceImpl) ListPage(ctx context.Context, req user.ListUsersRequest) (user.ListUsersResponse, error) {
	if err := req.Validate(); err != nil {
		return user.ListUsersResponse{}, err
	}

	cursor, err := pagination.Decode(req.After)
	if err != nil {
		return user.ListUsersResponse{}, err
	}

	users, err := u.UserRepository.ListPage(ctx, req.PageSize, cursor)
	if err != nil {
		return user.ListUsersResponse{}, fmt.Errorf("failed to list users: %w", err)
	}

	rows := make([]user.UserResponse, 0, len(users))
	for _, usr := range users {
		rows = append(rows, user.NewUserResponse(usr))
	}

	var last pagination.Cursor
	if len(users) > 0 {
		tail := users[len(users)-1]
		last = pagination.Cursor{CreatedAt: tail.CreatedAt, ID: tail.UID}
	}

	return user.ListUsersResponse{
		Rows: rows,
		Page: pagination.NewPageInfo(last, len(users), req.PageSize),
	}, nil
}

// SetRole implements user.UserService.
func (u *UserServiceImpl) SetRole(ctx context.Context, uid string, req user.SetRoleRequest) error {
	if err := req.Validate(); err != nil {
		return err
	}

	if err := u.UserRepository.SetRole(ctx, uid, user.Role(req.Role)); err != nil {
		return err
	}

	return nil
}

// SetActive implements user.UserService.
func (u *UserServiceImpl) SetActive(ctx context.Context, uid string, req user.SetActiveRequest) error {
	if err := u.UserRepository.SetActive(ctx, uid, req.Active); err != nil {
		return err
	}

	return nil
}
