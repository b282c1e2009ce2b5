package attendance

import "errors"

// Attendance domain errors
var (
	ErrAlreadyMarked = errors.New("attendance already marked for this employee on this date")
	ErrFutureDate    = errors.New("attendance date cannot be in the future")
	ErrNotFound      = errors.New("attendance record not found")
)
