package employee

import (
	"context"
)

// EmployeeService defines business logic for employee operations
type EmployeeService interface {
	// CreateEmployee registers a new employee after uniqueness checks
	CreateEmployee(ctx context.Context, req CreateEmployeeRequest) (EmployeeResponse, error)

	// GetEmployee retrieves a single employee by employee ID
	GetEmployee(ctx context.Context, employeeID string) (EmployeeResponse, error)

	// ListEmployees retrieves all employees
	ListEmployees(ctx context.Context) (ListEmployeesResponse, error)

	// UpdateEmployee mutates an employee, re-validating uniqueness excluding self
	UpdateEmployee(ctx context.Context, employeeID string, req UpdateEmployeeRequest) (EmployeeResponse, error)

	// DeleteEmployee removes an employee without cascading to attendance
	DeleteEmployee(ctx context.Context, employeeID string) error
}
