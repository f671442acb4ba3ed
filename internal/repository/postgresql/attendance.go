package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/MuhammadSyaifulIbrahim/absensipro/internal/domain/attendance"
	"github.com/MuhammadSyaifulIbrahim/absensipro/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type attendanceRepository struct {
	db *database.DB
}

func NewAttendanceRepository(db *database.DB) attendance.AttendanceRepository {
	return &attendanceRepository{db: db}
}

const attendanceColumns = `
	id, uid, type, photo_url, location_lat, location_lng, ymd,
	status, late_minutes, shift_id, created_at
`

func scanAttendance(row pgx.Row) (attendance.Attendance, error) {
	var rec attendance.Attendance
	err := row.Scan(
		&rec.ID, &rec.UID, &rec.Type, &rec.PhotoURL, &rec.LocationLat, &rec.LocationLng,
		&rec.YMD, &rec.Status, &rec.LateMinutes, &rec.ShiftID, &rec.CreatedAt,
	)
	return rec, err
}

// AppendForDay implements attendance.AttendanceRepository. The advisory lock
// serializes concurrent submissions for the same (uid, ymd) so the
// resolve-last / insert pair behaves as a single conditional append.
func (r *attendanceRepository) AppendForDay(ctx context.Context, rec attendance.Attendance) (attendance.Attendance, error) {
	var created attendance.Attendance

	err := WithTransaction(ctx, r.db, func(txCtx context.Context, tx pgx.Tx) error {
		if _, err := tx.Exec(txCtx, `SELECT pg_advisory_xact_lock(hashtext($1))`, rec.UID+"|"+rec.YMD); err != nil {
			return fmt.Errorf("failed to take day lock: %w", err)
		}

		last, err := r.LastForDay(txCtx, rec.UID, rec.YMD)
		if err != nil {
			return err
		}

		if rec.Type != attendance.NextType(last) {
			return attendance.ErrUnexpectedEventType
		}

		query := `
			INSERT INTO attendance (uid, type, photo_url, location_lat, location_lng, ymd, status, late_minutes, shift_id)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
			RETURNING id, created_at
		`
		created = rec
		if err := tx.QueryRow(txCtx, query,
			rec.UID, rec.Type, rec.PhotoURL, rec.LocationLat, rec.LocationLng,
			rec.YMD, rec.Status, rec.LateMinutes, rec.ShiftID,
		).Scan(&created.ID, &created.CreatedAt); err != nil {
			return fmt.Errorf("failed to create attendance record: %w", err)
		}

		return nil
	})
	if err != nil {
		return attendance.Attendance{}, err
	}

	return created, nil
}

// LastForDay implements attendance.AttendanceRepository.
func (r *attendanceRepository) LastForDay(ctx context.Context, uid string, ymd string) (*attendance.Attendance, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + attendanceColumns + `
		FROM attendance
		WHERE uid = $1 AND ymd = $2
		ORDER BY created_at DESC
		LIMIT 1
	`

	rec, err := scanAttendance(q.QueryRow(ctx, query, uid, ymd))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil // No record yet today
		}
		return nil, fmt.Errorf("failed to get last attendance for day: %w", err)
	}

	return &rec, nil
}

// ListByUID implements attendance.AttendanceRepository.
func (r *attendanceRepository) ListByUID(ctx context.Context, uid string, limit int) ([]attendance.Attendance, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + attendanceColumns + `
		FROM attendance
		WHERE uid = $1
		ORDER BY created_at DESC
		LIMIT $2
	`

	rows, err := q.Query(ctx, query, uid, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list attendance by uid: %w", err)
	}
	defer rows.Close()

	return collectAttendance(rows)
}

// List implements attendance.AttendanceRepository.
func (r *attendanceRepository) List(ctx context.Context, limit int) ([]attendance.Attendance, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + attendanceColumns + `
		FROM attendance
		ORDER BY created_at DESC
		LIMIT $1
	`

	rows, err := q.Query(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list attendance: %w", err)
	}
	defer rows.Close()

	return collectAttendance(rows)
}

// ListRange implements attendance.AttendanceRepository. The range is closed
// on both ends and compared as ymd strings.
func (r *attendanceRepository) ListRange(ctx context.Context, fromYMD, toYMD string) ([]attendance.Attendance, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + attendanceColumns + `
		FROM attendance
		WHERE ymd >= $1 AND ymd <= $2
		ORDER BY ymd ASC, created_at ASC
	`

	rows, err := q.Query(ctx, query, fromYMD, toYMD)
	if err != nil {
		return nil, fmt.Errorf("failed to list attendance range: %w", err)
	}
	defer rows.Close()

	return collectAttendance(rows)
}

func collectAttendance(rows pgx.Rows) ([]attendance.Attendance, error) {
	var records []attendance.Attendance
	for rows.Next() {
		rec, err := scanAttendance(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan attendance row: %w", err)
		}
		records = append(records, rec)
	}
	return records, rows.Err()
}
