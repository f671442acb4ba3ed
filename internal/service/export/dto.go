package export

import (
	"strings"

	"github.com/MuhammadSyaifulIbrahim/absensipro/internal/domain/request"
	"github.com/MuhammadSyaifulIbrahim/absensipro/internal/pkg/validator"
)

// Export formats
const (
	FormatCSV  = "csv"
	FormatXLSX = "xlsx"
)

var formats = []string{FormatCSV, FormatXLSX}

// Artifact is one generated export file, ready to stream to the client.
type Artifact struct {
	Filename    string
	ContentType string
	Data        []byte
}

type AttendanceExportRequest struct {
	From   string // "YYYY-MM-DD", inclusive
	To     string // "YYYY-MM-DD", inclusive
	Format string
}

func (r *AttendanceExportRequest) Validate() error {
	var errs validator.ValidationErrors

	errs = append(errs, validateRange(r.From, r.To)...)

	if !validator.IsInSlice(strings.ToLower(r.Format), formats) {
		errs = append(errs, validator.ValidationError{
			Field:   "format",
			Message: "format must be csv or xlsx",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type RequestExportRequest struct {
	From   string // "YYYY-MM-DD", inclusive
	To     string // "YYYY-MM-DD", inclusive
	Status string // "", "pending", "approved" or "rejected"
	Format string
}

func (r *RequestExportRequest) Validate() error {
	var errs validator.ValidationErrors

	errs = append(errs, validateRange(r.From, r.To)...)

	status := strings.ToLower(strings.TrimSpace(r.Status))
	if status != "" && !validator.IsInSlice(status, []string{
		request.StatusPending, request.StatusApproved, request.StatusRejected,
	}) {
		errs = append(errs, validator.ValidationError{
			Field:   "status",
			Message: "status must be pending, approved or rejected",
		})
	}

	if !validator.IsInSlice(strings.ToLower(r.Format), formats) {
		errs = append(errs, validator.ValidationError{
			Field:   "format",
			Message: "format must be csv or xlsx",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// NormalizedStatus returns the status filter lower-cased and trimmed, ""
// meaning no filter.
func (r *RequestExportRequest) NormalizedStatus() string {
	return strings.ToLower(strings.TrimSpace(r.Status))
}

func validateRange(from, to string) validator.ValidationErrors {
	var errs validator.ValidationErrors

	if _, ok := validator.IsValidDate(from); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "from",
			Message: "from must be a date in YYYY-MM-DD format",
		})
	}
	if _, ok := validator.IsValidDate(to); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "to",
			Message: "to must be a date in YYYY-MM-DD format",
		})
	}
	if len(errs) == 0 && from > to {
		// lexicographic compare is safe on zero-padded YYYY-MM-DD
		errs = append(errs, validator.ValidationError{
			Field:   "from",
			Message: "from must not be after to",
		})
	}

	return errs
}
