package attendance

import (
	"context"
	"time"
)

// AttendanceRepository defines data access methods for attendance records.
// Listing methods return records sorted by date descending, then created_at
// descending, so same-day entries come back most recently entered first.
type AttendanceRepository interface {
	// Create inserts a new attendance record. The store's unique index on
	// (employee_id, date) makes concurrent duplicate marks fail with
	// ErrAlreadyMarked rather than corrupting data.
	Create(ctx context.Context, record Attendance) (Attendance, error)

	// ListAll retrieves every attendance record
	ListAll(ctx context.Context) ([]Attendance, error)

	// ListByEmployeeID retrieves all records for one employee
	ListByEmployeeID(ctx context.Context, employeeID string) ([]Attendance, error)

	// ListByDateRange retrieves records with start <= date < end
	ListByDateRange(ctx context.Context, start, end time.Time) ([]Attendance, error)

	// ExistsByEmployeeAndDate reports whether a record already occupies the
	// (employeeID, date) pair
	ExistsByEmployeeAndDate(ctx context.Context, employeeID string, date time.Time) (bool, error)
}
