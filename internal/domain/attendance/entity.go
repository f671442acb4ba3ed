package attendance

import "time"

// Event types
const (
	TypeCheckIn  = "checkin"
	TypeCheckOut = "checkout"
)

// Stored status values. Records written at check-in time carry "present" or
// "late"; older clients wrote "ontime" instead of "present", and records
// predating status computation carry no status at all. The derivation tiers
// in status.go accept every one of these shapes.
const (
	StatusPresent = "present"
	StatusLate    = "late"
	StatusOnTime  = "ontime"
)

// Attendance is one immutable check-in or check-out record. There is no
// update or delete path; corrections are written as new records.
type Attendance struct {
	ID          string
	UID         string
	Type        string
	PhotoURL    *string
	LocationLat *float64
	LocationLng *float64
	YMD         string // calendar day key, "YYYY-MM-DD", set at creation
	Status      *string
	LateMinutes *int
	ShiftID     *string
	CreatedAt   time.Time
}

// TodayYMD returns the calendar-day key for the given instant in local time.
func TodayYMD(now time.Time) string {
	return now.Format("2006-01-02")
}

// NextType resolves the expected next event type after the given last record
// of the day: checkout follows checkin, checkin follows checkout or the
// absence of any record that day.
func NextType(last *Attendance) string {
	if last != nil && last.Type == TypeCheckIn {
		return TypeCheckOut
	}
	return TypeCheckIn
}
