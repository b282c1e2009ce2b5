package employee

import (
	"strings"

	"github.com/attendly/attendance-backend-go/internal/pkg/validator"
)

// ========================================
// EMPLOYEE DTOs
// ========================================

type CreateEmployeeRequest struct {
	EmployeeID string `json:"employeeId"`
	FullName   string `json:"fullName"`
	Email      string `json:"email"`
	Department string `json:"department"`
}

func (r *CreateEmployeeRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{
			Field:   "employeeId",
			Message: "employeeId is required",
		})
	} else if !validator.IsValidEmployeeID(strings.TrimSpace(r.EmployeeID)) {
		errs = append(errs, validator.ValidationError{
			Field:   "employeeId",
			Message: "employeeId must be at least 2 characters of letters, digits, underscore or dash",
		})
	}

	if validator.IsEmpty(r.FullName) {
		errs = append(errs, validator.ValidationError{
			Field:   "fullName",
			Message: "fullName is required",
		})
	}

	if validator.IsEmpty(r.Email) {
		errs = append(errs, validator.ValidationError{
			Field:   "email",
			Message: "email is required",
		})
	} else if !validator.IsValidEmail(strings.TrimSpace(r.Email)) {
		errs = append(errs, validator.ValidationError{
			Field:   "email",
			Message: "email format is invalid",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// Normalize applies the canonical forms: employee IDs are stored uppercase,
// emails lowercase, names trimmed.
func (r *CreateEmployeeRequest) Normalize() {
	r.EmployeeID = strings.ToUpper(strings.TrimSpace(r.EmployeeID))
	r.FullName = strings.TrimSpace(r.FullName)
	r.Email = strings.ToLower(strings.TrimSpace(r.Email))
	r.Department = strings.TrimSpace(r.Department)
}

type UpdateEmployeeRequest struct {
	FullName   *string `json:"fullName"`
	Email      *string `json:"email"`
	Department *string `json:"department"`
}

func (r *UpdateEmployeeRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.FullName != nil && validator.IsEmpty(*r.FullName) {
		errs = append(errs, validator.ValidationError{
			Field:   "fullName",
			Message: "fullName must not be empty",
		})
	}

	if r.Email != nil && !validator.IsValidEmail(strings.TrimSpace(*r.Email)) {
		errs = append(errs, validator.ValidationError{
			Field:   "email",
			Message: "email format is invalid",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

func (r *UpdateEmployeeRequest) Normalize() {
	if r.FullName != nil {
		trimmed := strings.TrimSpace(*r.FullName)
		r.FullName = &trimmed
	}
	if r.Email != nil {
		lowered := strings.ToLower(strings.TrimSpace(*r.Email))
		r.Email = &lowered
	}
	if r.Department != nil {
		trimmed := strings.TrimSpace(*r.Department)
		r.Department = &trimmed
	}
}

type EmployeeResponse struct {
	ID         string `json:"id"`
	EmployeeID string `json:"employeeId"`
	FullName   string `json:"fullName"`
	Email      string `json:"email"`
	Department string `json:"department"`
	CreatedAt  string `json:"createdAt"`
	UpdatedAt  string `json:"updatedAt"`
}

type ListEmployeesResponse struct {
	Data  []EmployeeResponse `json:"data"`
	Total int                `json:"total"`
}
