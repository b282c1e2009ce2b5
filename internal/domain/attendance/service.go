package attendance

import (
	"context"
)

// AttendanceService defines business logic for attendance operations
type AttendanceService interface {
	// MarkAttendance records presence or absence for one employee on one day.
	// The target employee must exist, the date must not be in the future, and
	// the (employeeId, date) pair must be free.
	MarkAttendance(ctx context.Context, req MarkAttendanceRequest) (AttendanceResponse, error)

	// ListAttendance retrieves all attendance records, newest first
	ListAttendance(ctx context.Context) (ListAttendanceResponse, error)
}
