package request

import (
	"mime/multipart"
	"strings"

	"github.com/MuhammadSyaifulIbrahim/absensipro/internal/pkg/validator"
)

// ========================================
// REQUEST DTOs
// ========================================

type CreateRequestRequest struct {
	Type   string `json:"type"`
	Reason string `json:"reason"`

	// leave / sick / correction
	From string `json:"from"`
	To   string `json:"to"`

	// overtime
	Date            string `json:"date"`
	StartTime       string `json:"start_time"`
	EndTime         string `json:"end_time"`
	DurationMinutes *int   `json:"duration_minutes"`

	AttachmentURL *string               `json:"-"`
	File          multipart.File        `json:"-"`
	FileHeader    *multipart.FileHeader `json:"-"`
}

// NormalizedType returns the type lower-cased and trimmed, the form older
// clients may not have normalized before writing.
func (r *CreateRequestRequest) NormalizedType() string {
	return strings.ToLower(strings.TrimSpace(r.Type))
}

// Validate applies the type-specific required-field rules: overtime needs
// date plus an ordered start/end time pair, every other type needs a from/to
// date range.
func (r *CreateRequestRequest) Validate() error {
	var errs validator.ValidationErrors

	normType := r.NormalizedType()
	if normType == "" {
		errs = append(errs, validator.ValidationError{
			Field:   "type",
			Message: "type is required",
		})
		return errs
	}

	if normType == TypeOvertime {
		if validator.IsEmpty(r.Date) {
			errs = append(errs, validator.ValidationError{
				Field:   "date",
				Message: "overtime date is required",
			})
		}
		if validator.IsEmpty(r.StartTime) || validator.IsEmpty(r.EndTime) {
			errs = append(errs, validator.ValidationError{
				Field:   "start_time",
				Message: "overtime start and end times are required",
			})
		} else {
			start := validator.ClockToMinutes(r.StartTime)
			end := validator.ClockToMinutes(r.EndTime)
			if end <= start {
				errs = append(errs, validator.ValidationError{
					Field:   "end_time",
					Message: "end time must be after start time",
				})
			}
		}
	} else {
		if validator.IsEmpty(r.From) || validator.IsEmpty(r.To) {
			errs = append(errs, validator.ValidationError{
				Field:   "from",
				Message: "from and to dates are required",
			})
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// ComputedDuration returns the overtime duration in minutes: the explicit
// override when the payload carries one, otherwise end minus start.
func (r *CreateRequestRequest) ComputedDuration() int {
	if r.DurationMinutes != nil {
		return *r.DurationMinutes
	}
	return validator.ClockToMinutes(r.EndTime) - validator.ClockToMinutes(r.StartTime)
}

type SetStatusRequest struct {
	Status string `json:"status"`
}

func (r *SetStatusRequest) Validate() error {
	var errs validator.ValidationErrors

	if !validator.IsInSlice(r.Status, SettableStatuses) {
		errs = append(errs, validator.ValidationError{
			Field:   "status",
			Message: "status must be one of approved, rejected, pending",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type RequestResponse struct {
	ID         string  `json:"id"`
	UID        string  `json:"uid"`
	Type       string  `json:"type"`
	Reason     string  `json:"reason"`
	Attachment *string `json:"attachment"`
	Status     string  `json:"status"`

	From *string `json:"from,omitempty"`
	To   *string `json:"to,omitempty"`

	Date            *string `json:"date,omitempty"`
	StartTime       *string `json:"start_time,omitempty"`
	EndTime         *string `json:"end_time,omitempty"`
	DurationMinutes *int    `json:"duration_minutes,omitempty"`

	ApproverUID *string `json:"approver_uid"`
	CreatedAt   string  `json:"created_at"`
	UpdatedAt   *string `json:"updated_at"`
}

func NewRequestResponse(req Request) RequestResponse {
	var updatedAt *string
	if req.UpdatedAt != nil {
		s := req.UpdatedAt.Format("2006-01-02 15:04:05")
		updatedAt = &s
	}

	return RequestResponse{
		ID:              req.ID,
		UID:             req.UID,
		Type:            req.Type,
		Reason:          req.Reason,
		Attachment:      req.Attachment,
		Status:          req.Status,
		From:            req.From,
		To:              req.To,
		Date:            req.Date,
		StartTime:       req.StartTime,
		EndTime:         req.EndTime,
		DurationMinutes: req.DurationMinutes,
		ApproverUID:     req.ApproverUID,
		CreatedAt:       req.CreatedAt.Format("2006-01-02 15:04:05"),
		UpdatedAt:       updatedAt,
	}
}
