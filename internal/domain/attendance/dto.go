package attendance

import (
	"mime/multipart"
	"strings"

	"github.com/MuhammadSyaifulIbrahim/absensipro/internal/pkg/validator"
)

// ========================================
// ATTENDANCE DTOs
// ========================================

type GeoPoint struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

type RecordRequest struct {
	Type     string    `json:"type"` // "checkin" | "checkout"
	Location *GeoPoint `json:"location"`

	PhotoURL   *string               `json:"-"`
	File       multipart.File        `json:"-"`
	FileHeader *multipart.FileHeader `json:"-"`
}

// Validate checks the event type, the optional location and the photo
// evidence. Photo evidence is mandatory here at the boundary; the repository
// below persists whatever pointer it is handed.
func (r *RecordRequest) Validate() error {
	var errs validator.ValidationErrors

	t := strings.ToLower(strings.TrimSpace(r.Type))
	if t != TypeCheckIn && t != TypeCheckOut {
		errs = append(errs, validator.ValidationError{
			Field:   "type",
			Message: "type must be checkin or checkout",
		})
	}

	if r.Location != nil {
		if r.Location.Lat < -90 || r.Location.Lat > 90 {
			errs = append(errs, validator.ValidationError{
				Field:   "location.lat",
				Message: "latitude must be between -90 and 90",
			})
		}
		if r.Location.Lng < -180 || r.Location.Lng > 180 {
			errs = append(errs, validator.ValidationError{
				Field:   "location.lng",
				Message: "longitude must be between -180 and 180",
			})
		}
	}

	if r.FileHeader == nil {
		errs = append(errs, validator.ValidationError{
			Field:   "photo",
			Message: "attendance photo is required",
		})
	} else {
		filename := r.FileHeader.Filename
		idx := strings.LastIndex(filename, ".")
		ext := ""
		if idx >= 0 {
			ext = strings.ToLower(filename[idx:])
		}
		if ext != ".jpg" && ext != ".jpeg" && ext != ".png" {
			errs = append(errs, validator.ValidationError{
				Field:   "photo",
				Message: "invalid file type: only jpg, jpeg, png allowed",
			})
		} else if r.FileHeader.Size > 10<<20 { // 10MB
			errs = append(errs, validator.ValidationError{
				Field:   "photo",
				Message: "attendance photo size must not exceed 10MB",
			})
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type AttendanceResponse struct {
	ID          string    `json:"id"`
	UID         string    `json:"uid"`
	Type        string    `json:"type"`
	PhotoURL    *string   `json:"photo_url"`
	Location    *GeoPoint `json:"location"`
	YMD         string    `json:"ymd"`
	Status      *string   `json:"status"`
	StatusText  string    `json:"status_text"`
	LateMinutes int       `json:"late_minutes"`
	ShiftID     *string   `json:"shift_id"`
	CreatedAt   string    `json:"created_at"`
}

func NewAttendanceResponse(rec Attendance) AttendanceResponse {
	derived := Derive(rec)

	var loc *GeoPoint
	if rec.LocationLat != nil && rec.LocationLng != nil {
		loc = &GeoPoint{Lat: *rec.LocationLat, Lng: *rec.LocationLng}
	}

	return AttendanceResponse{
		ID:          rec.ID,
		UID:         rec.UID,
		Type:        rec.Type,
		PhotoURL:    rec.PhotoURL,
		Location:    loc,
		YMD:         rec.YMD,
		Status:      rec.Status,
		StatusText:  derived.Text,
		LateMinutes: derived.LateMinutes,
		ShiftID:     rec.ShiftID,
		CreatedAt:   rec.CreatedAt.Format("2006-01-02 15:04:05"),
	}
}

type NextTypeResponse struct {
	NextType string `json:"next_type"`
}
