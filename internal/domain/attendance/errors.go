package attendance

import "errors"

// Attendance domain errors
var (
	ErrAttendanceNotFound = errors.New("attendance record not found")

	// ErrUnexpectedEventType is returned when the requested event type does
	// not match the resolved next type for the day, e.g. two browser tabs
	// racing to check in.
	ErrUnexpectedEventType = errors.New("attendance event out of sequence")
)
