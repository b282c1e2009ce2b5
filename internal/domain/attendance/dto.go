package attendance

import (
	"strings"

	"github.com/attendly/attendance-backend-go/internal/pkg/validator"
)

// ========================================
// ATTENDANCE DTOs
// ========================================

type MarkAttendanceRequest struct {
	EmployeeID string `json:"employeeId"`
	Date       string `json:"date"` // YYYY-MM-DD
	Status     string `json:"status"`
}

func (r *MarkAttendanceRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{
			Field:   "employeeId",
			Message: "employeeId is required",
		})
	}

	if validator.IsEmpty(r.Date) {
		errs = append(errs, validator.ValidationError{
			Field:   "date",
			Message: "date is required",
		})
	} else if _, ok := validator.IsValidDate(r.Date); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "date",
			Message: "date must be in YYYY-MM-DD format",
		})
	}

	if validator.IsEmpty(r.Status) {
		errs = append(errs, validator.ValidationError{
			Field:   "status",
			Message: "status is required",
		})
	} else if !validator.IsInSlice(r.Status, []string{string(StatusPresent), string(StatusAbsent)}) {
		errs = append(errs, validator.ValidationError{
			Field:   "status",
			Message: "status must be Present or Absent",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// Normalize uppercases the employee ID to match the stored form.
func (r *MarkAttendanceRequest) Normalize() {
	r.EmployeeID = strings.ToUpper(strings.TrimSpace(r.EmployeeID))
}

type AttendanceResponse struct {
	ID         string `json:"id"`
	EmployeeID string `json:"employeeId"`
	Date       string `json:"date"` // YYYY-MM-DD
	Status     string `json:"status"`
	CreatedAt  string `json:"createdAt"`
	UpdatedAt  string `json:"updatedAt"`
}

type ListAttendanceResponse struct {
	Data  []AttendanceResponse `json:"data"`
	Total int                  `json:"total"`
}
