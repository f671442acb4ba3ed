package shift

import "time"

// Shift is a named work shift definition. Start and End are wall-clock
// "HH:MM" strings, not timezone-aware; overnight shifts (end before start)
// are not modeled and no overlap validation is enforced.
type Shift struct {
	ID           string
	Name         string
	Start        string
	End          string
	GraceMinutes int
	BreakMinutes int
	CreatedAt    time.Time
}
