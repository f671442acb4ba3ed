package attendance

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/MuhammadSyaifulIbrahim/absensipro/internal/domain/attendance"
	"github.com/MuhammadSyaifulIbrahim/absensipro/internal/domain/shift"
	"github.com/MuhammadSyaifulIbrahim/absensipro/internal/domain/user"
	"github.com/MuhammadSyaifulIbrahim/absensipro/internal/pkg/database"
	"github.com/MuhammadSyaifulIbrahim/absensipro/internal/pkg/sse"
	"github.com/MuhammadSyaifulIbrahim/absensipro/internal/service/file"
	"github.com/go-chi/jwtauth/v5"
)

// adminFeedKey is the broadcast key the admin live table subscribes to, on
// top of each user's personal feed.
const adminFeedKey = "admin"

const defaultListLimit = 50

type AttendanceServiceImpl struct {
	db *database.DB
	attendance.AttendanceRepository
	user.UserRepository
	shift.ShiftRepository
	fileService file.FileService
	hub         *sse.Hub
}

func NewAttendanceService(
	db *database.DB,
	attendanceRepo attendance.AttendanceRepository,
	userRepo user.UserRepository,
	shiftRepo shift.ShiftRepository,
	fileService file.FileService,
	hub *sse.Hub,
) attendance.AttendanceService {
	return &AttendanceServiceImpl{
		db:                   db,
		AttendanceRepository: attendanceRepo,
		UserRepository:       userRepo,
		ShiftRepository:      shiftRepo,
		fileService:          fileService,
		hub:                  hub,
	}
}

func uidFromContext(ctx context.Context) (string, error) {
	_, claims, err := jwtauth.FromContext(ctx)
	if err != nil {
		return "", fmt.Errorf("failed to extract claims from context: %w", err)
	}

	uid, ok := claims["uid"].(string)
	if !ok || uid == "" {
		return "", fmt.Errorf("uid claim is missing or invalid")
	}

	return uid, nil
}

// NextType implements attendance.AttendanceService.
func (a *AttendanceServiceImpl) NextType(ctx context.Context) (attendance.NextTypeResponse, error) {
	uid, err := uidFromContext(ctx)
	if err != nil {
		return attendance.NextTypeResponse{}, err
	}

	ymd := attendance.TodayYMD(time.Now())

	last, err := a.AttendanceRepository.LastForDay(ctx, uid, ymd)
	if err != nil {
		return attendance.NextTypeResponse{}, fmt.Errorf("failed to get last attendance record: %w", err)
	}

	return attendance.NextTypeResponse{NextType: attendance.NextType(last)}, nil
}

// Record implements attendance.AttendanceService.
func (a *AttendanceServiceImpl) Record(ctx context.Context, req attendance.RecordRequest) (attendance.AttendanceResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.AttendanceResponse{}, err
	}

	uid, err := uidFromContext(ctx)
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}

	subject, err := a.UserRepository.GetByID(ctx, uid)
	if err != nil {
		return attendance.AttendanceResponse{}, fmt.Errorf("failed to get user: %w", err)
	}
	if !subject.Active {
		return attendance.AttendanceResponse{}, user.ErrUserInactive
	}

	now := time.Now()
	ymd := attendance.TodayYMD(now)

	rec := attendance.Attendance{
		UID:  uid,
		Type: req.Type,
		YMD:  ymd,
	}

	if req.Location != nil {
		rec.LocationLat = &req.Location.Lat
		rec.LocationLng = &req.Location.Lng
	}

	if req.File != nil && req.FileHeader != nil {
		path, err := a.fileService.UploadAttendancePhoto(ctx, uid, ymd, req.File, req.FileHeader.Filename, req.Type)
		if err != nil {
			return attendance.AttendanceResponse{}, fmt.Errorf("failed to upload attendance photo: %w", err)
		}

		url, err := a.fileService.GetFileURL(ctx, path, 0)
		if err != nil {
			return attendance.AttendanceResponse{}, fmt.Errorf("failed to resolve photo URL: %w", err)
		}
		rec.PhotoURL = &url
	} else if req.PhotoURL != nil {
		rec.PhotoURL = req.PhotoURL
	}

	// Check-ins carry a shift-aware status written at record time. Check-outs
	// carry no status; read-time derivation treats them as neutral.
	if req.Type == attendance.TypeCheckIn {
		var assigned *shift.Shift
		if subject.ShiftID != nil {
			found, err := a.ShiftRepository.GetByID(ctx, *subject.ShiftID)
			if err != nil {
				if !errors.Is(err, shift.ErrShiftNotFound) {
					return attendance.AttendanceResponse{}, fmt.Errorf("failed to get assigned shift: %w", err)
				}
				// Dangling shift reference behaves like no shift at all.
			} else {
				assigned = &found
				rec.ShiftID = subject.ShiftID
			}
		}

		cs := attendance.ComputeCheckInStatus(now, assigned)
		rec.Status = &cs.Status
		rec.LateMinutes = &cs.LateMinutes
	}

	created, err := a.AttendanceRepository.AppendForDay(ctx, rec)
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}

	resp := attendance.NewAttendanceResponse(created)

	a.hub.PublishToMany([]string{uid, adminFeedKey}, sse.Event{
		Event: "attendance.recorded",
		Data:  resp,
	})

	return resp, nil
}

// ListMine implements attendance.AttendanceService.
func (a *AttendanceServiceImpl) ListMine(ctx context.Context, limit int) ([]attendance.AttendanceResponse, error) {
	uid, err := uidFromContext(ctx)
	if err != nil {
		return nil, err
	}

	if limit <= 0 {
		limit = defaultListLimit
	}

	records, err := a.AttendanceRepository.ListByUID(ctx, uid, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list attendance records: %w", err)
	}

	responses := make([]attendance.AttendanceResponse, 0, len(records))
	for _, rec := range records {
		responses = append(responses, attendance.NewAttendanceResponse(rec))
	}

	return responses, nil
}

// List implements attendance.AttendanceService.
func (a *AttendanceServiceImpl) List(ctx context.Context, limit int) ([]attendance.AttendanceResponse, error) {
	if limit <= 0 {
		limit = defaultListLimit
	}

	records, err := a.AttendanceRepository.List(ctx, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list attendance records: %w", err)
	}

	responses := make([]attendance.AttendanceResponse, 0, len(records))
	for _, rec := range records {
		responses = append(responses, attendance.NewAttendanceResponse(rec))
	}

	return responses, nil
}
