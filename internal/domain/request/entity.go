package request

import "time"

// Request types
const (
	TypeLeave      = "leave"
	TypeSick       = "sick"
	TypeCorrection = "correction"
	TypeOvertime   = "overtime"
)

// Request statuses. A request moves pending -> approved or pending ->
// rejected by explicit admin/manager action and never reverts on its own.
const (
	StatusPending  = "pending"
	StatusApproved = "approved"
	StatusRejected = "rejected"
)

// Statuses an approver may write. Pending is included: the update primitive
// allows re-opening, even though no workflow trigger does so.
var SettableStatuses = []string{StatusApproved, StatusRejected, StatusPending}

// Request is a leave/sick/correction/overtime request. Date-range fields
// (From, To) apply to leave, sick and correction; the overtime fields (Date,
// StartTime, EndTime, DurationMinutes) apply to overtime only.
type Request struct {
	ID         string
	UID        string
	Type       string
	Reason     string
	Attachment *string
	Status     string

	From *string // "YYYY-MM-DD"
	To   *string // "YYYY-MM-DD"

	Date            *string // "YYYY-MM-DD"
	StartTime       *string // "HH:MM"
	EndTime         *string // "HH:MM"
	DurationMinutes *int

	ApproverUID *string
	CreatedAt   time.Time
	UpdatedAt   *time.Time
}
