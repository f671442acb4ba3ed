package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/MuhammadSyaifulIbrahim/absensipro/internal/domain/user"
	"github.com/MuhammadSyaifulIbrahim/absensipro/internal/pkg/database"
	"github.com/MuhammadSyaifulIbrahim/absensipro/internal/pkg/pagination"
	"github.com/jackc/pgx/v5"
)

type userRepository struct {
	db *database.DB
}

func NewUserRepository(db *database.DB) user.UserRepository {
	return &userRepository{db: db}
}

const userColumns = `
	uid, name, email, role, active, shift_id, password_hash, google_id,
	created_at, updated_at
`

func scanUser(row pgx.Row) (user.User, error) {
	var u user.User
	err := row.Scan(
		&u.UID, &u.Name, &u.Email, &u.Role, &u.Active, &u.ShiftID,
		&u.PasswordHash, &u.GoogleID, &u.CreatedAt, &u.UpdatedAt,
	)
	return u, err
}

// Create implements user.UserRepository.
func (r *userRepository) Create(ctx context.Context, u user.User) (user.User, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO users (name, email, role, active, shift_id, password_hash, google_id)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING uid, created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		u.Name, u.Email, u.Role, u.Active, u.ShiftID, u.PasswordHash, u.GoogleID,
	).Scan(&u.UID, &u.CreatedAt, &u.UpdatedAt)

	if err != nil {
		return user.User{}, fmt.Errorf("failed to create user: %w", err)
	}

	return u, nil
}

// GetByID implements user.UserRepository.
func (r *userRepository) GetByID(ctx context.Context, uid string) (user.User, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + userColumns + ` FROM users WHERE uid = $1`

	u, err := scanUser(q.QueryRow(ctx, query, uid))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return user.User{}, user.ErrUserNotFound
		}
		return user.User{}, fmt.Errorf("failed to get user by uid: %w", err)
	}

	return u, nil
}

// GetByEmail implements user.UserRepository.
func (r *userRepository) GetByEmail(ctx context.Context, email string) (user.User, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + userColumns + ` FROM users WHERE email = $1`

	u, err := scanUser(q.QueryRow(ctx, query, email))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return user.User{}, user.ErrUserNotFound
		}
		return user.User{}, fmt.Errorf("failed to get user by email: %w", err)
	}

	return u, nil
}

// ListPage implements user.UserRepository using keyset pagination over
// (created_at, uid) descending.
func (r *userRepository) ListPage(ctx context.Context, pageSize int, after *pagination.Cursor) ([]user.User, error) {
	q := GetQuerier(ctx, r.db)

	var rows pgx.Rows
	var err error

	if after != nil {
		query := `
			SELECT ` + userColumns + `
			FROM users
			WHERE (created_at, uid) < ($1, $2)
			ORDER BY created_at DESC, uid DESC
			LIMIT $3
		`
		rows, err = q.Query(ctx, query, after.CreatedAt, after.ID, pageSize)
	} else {
		query := `
			SELECT ` + userColumns + `
			FROM users
			ORDER BY created_at DESC, uid DESC
			LIMIT $1
		`
		rows, err = q.Query(ctx, query, pageSize)
	}

	if err != nil {
		return nil, fmt.Errorf("failed to list users page: %w", err)
	}
	defer rows.Close()

	var users []user.User
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan user row: %w", err)
		}
		users = append(users, u)
	}

	return users, rows.Err()
}

// ListAll implements user.UserRepository.
func (r *userRepository) ListAll(ctx context.Context) ([]user.User, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + userColumns + ` FROM users ORDER BY created_at DESC`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}
	defer rows.Close()

	var users []user.User
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan user row: %w", err)
		}
		users = append(users, u)
	}

	return users, rows.Err()
}

// SetRole implements user.UserRepository.
func (r *userRepository) SetRole(ctx context.Context, uid string, role user.Role) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `UPDATE users SET role = $1, updated_at = NOW() WHERE uid = $2`, role, uid)
	if err != nil {
		return fmt.Errorf("failed to set user role: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return user.ErrUserNotFound
	}
	return nil
}

// SetActive implements user.UserRepository.
func (r *userRepository) SetActive(ctx context.Context, uid string, active bool) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `UPDATE users SET active = $1, updated_at = NOW() WHERE uid = $2`, active, uid)
	if err != nil {
		return fmt.Errorf("failed to set user active flag: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return user.ErrUserNotFound
	}
	return nil
}

// SetShift implements user.UserRepository.
func (r *userRepository) SetShift(ctx context.Context, uid string, shiftID *string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `UPDATE users SET shift_id = $1, updated_at = NOW() WHERE uid = $2`, shiftID, uid)
	if err != nil {
		return fmt.Errorf("failed to set user shift: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return user.ErrUserNotFound
	}
	return nil
}

// LinkGoogle implements user.UserRepository.
func (r *userRepository) LinkGoogle(ctx context.Context, uid string, googleID string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `UPDATE users SET google_id = $1, updated_at = NOW() WHERE uid = $2`, googleID, uid)
	if err != nil {
		return fmt.Errorf("failed to link google account: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return user.ErrUserNotFound
	}
	return nil
}
