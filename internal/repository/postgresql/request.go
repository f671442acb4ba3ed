package postgresql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/MuhammadSyaifulIbrahim/absensipro/internal/domain/request"
	"github.com/MuhammadSyaifulIbrahim/absensipro/internal/pkg/database"
	"github.com/MuhammadSyaifulIbrahim/absensipro/internal/pkg/pagination"
	"github.com/jackc/pgx/v5"
)

type requestRepository struct {
	db *database.DB
}

func NewRequestRepository(db *database.DB) request.RequestRepository {
	return &requestRepository{db: db}
}

const requestColumns = `
	id, uid, type, reason, attachment_url, status,
	from_date, to_date, overtime_date, start_time, end_time, duration_minutes,
	approver_uid, created_at, updated_at
`

func scanRequest(row pgx.Row) (request.Request, error) {
	var req request.Request
	err := row.Scan(
		&req.ID, &req.UID, &req.Type, &req.Reason, &req.Attachment, &req.Status,
		&req.From, &req.To, &req.Date, &req.StartTime, &req.EndTime, &req.DurationMinutes,
		&req.ApproverUID, &req.CreatedAt, &req.UpdatedAt,
	)
	return req, err
}

// Create implements request.RequestRepository.
func (r *requestRepository) Create(ctx context.Context, req request.Request) (request.Request, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO requests (
			uid, type, reason, attachment_url, status,
			from_date, to_date, overtime_date, start_time, end_time, duration_minutes
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		RETURNING id, created_at
	`

	err := q.QueryRow(ctx, query,
		req.UID, req.Type, req.Reason, req.Attachment, req.Status,
		req.From, req.To, req.Date, req.StartTime, req.EndTime, req.DurationMinutes,
	).Scan(&req.ID, &req.CreatedAt)

	if err != nil {
		return request.Request{}, fmt.Errorf("failed to create request: %w", err)
	}

	return req, nil
}

// GetByID implements request.RequestRepository.
func (r *requestRepository) GetByID(ctx context.Context, id string) (request.Request, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + requestColumns + ` FROM requests WHERE id = $1`

	req, err := scanRequest(q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return request.Request{}, request.ErrRequestNotFound
		}
		return request.Request{}, fmt.Errorf("failed to get request by id: %w", err)
	}

	return req, nil
}

// UpdateStatus implements request.RequestRepository. Deliberately no guard
// on the current status: repeated approvals succeed silently.
func (r *requestRepository) UpdateStatus(ctx context.Context, id string, status string, approverUID string) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE requests
		SET status = $1, approver_uid = $2, updated_at = NOW()
		WHERE id = $3
	`

	tag, err := q.Exec(ctx, query, status, approverUID, id)
	if err != nil {
		return fmt.Errorf("failed to update request status: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return request.ErrRequestNotFound
	}

	return nil
}

// ListByUID implements request.RequestRepository.
func (r *requestRepository) ListByUID(ctx context.Context, uid string, max int) ([]request.Request, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + requestColumns + `
		FROM requests
		WHERE uid = $1
		ORDER BY created_at DESC
		LIMIT $2
	`

	rows, err := q.Query(ctx, query, uid, max)
	if err != nil {
		return nil, fmt.Errorf("failed to list requests by uid: %w", err)
	}
	defer rows.Close()

	return collectRequests(rows)
}

// ListByStatus implements request.RequestRepository.
func (r *requestRepository) ListByStatus(ctx context.Context, status string, max int) ([]request.Request, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + requestColumns + `
		FROM requests
		WHERE status = $1
		ORDER BY created_at DESC
		LIMIT $2
	`

	rows, err := q.Query(ctx, query, status, max)
	if err != nil {
		return nil, fmt.Errorf("failed to list requests by status: %w", err)
	}
	defer rows.Close()

	return collectRequests(rows)
}

// ListPage implements request.RequestRepository using keyset pagination over
// (created_at, id) descending.
func (r *requestRepository) ListPage(ctx context.Context, pageSize int, after *pagination.Cursor) ([]request.Request, error) {
	q := GetQuerier(ctx, r.db)

	var rows pgx.Rows
	var err error

	if after != nil {
		query := `
			SELECT ` + requestColumns + `
			FROM requests
			WHERE (created_at, id) < ($1, $2)
			ORDER BY created_at DESC, id DESC
			LIMIT $3
		`
		rows, err = q.Query(ctx, query, after.CreatedAt, after.ID, pageSize)
	} else {
		query := `
			SELECT ` + requestColumns + `
			FROM requests
			ORDER BY created_at DESC, id DESC
			LIMIT $1
		`
		rows, err = q.Query(ctx, query, pageSize)
	}

	if err != nil {
		return nil, fmt.Errorf("failed to list requests page: %w", err)
	}
	defer rows.Close()

	return collectRequests(rows)
}

// ListRange implements request.RequestRepository.
func (r *requestRepository) ListRange(ctx context.Context, start, end time.Time, status string) ([]request.Request, error) {
	q := GetQuerier(ctx, r.db)

	var rows pgx.Rows
	var err error

	if status != "" {
		query := `
			SELECT ` + requestColumns + `
			FROM requests
			WHERE created_at >= $1 AND created_at <= $2 AND status = $3
			ORDER BY created_at ASC
		`
		rows, err = q.Query(ctx, query, start, end, status)
	} else {
		query := `
			SELECT ` + requestColumns + `
			FROM requests
			WHERE created_at >= $1 AND created_at <= $2
			ORDER BY created_at ASC
		`
		rows, err = q.Query(ctx, query, start, end)
	}

	if err != nil {
		return nil, fmt.Errorf("failed to list requests range: %w", err)
	}
	defer rows.Close()

	return collectRequests(rows)
}

func collectRequests(rows pgx.Rows) ([]request.Request, error) {
	var requests []request.Request
	for rows.Next() {
		req, err := scanRequest(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan request row: %w", err)
		}
		requests = append(requests, req)
	}
	return requests, rows.Err()
}
