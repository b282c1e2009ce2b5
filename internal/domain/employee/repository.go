package employee

import "context"

type EmployeeRepository interface {
	// Create creates a new employee record
	Create(ctx context.Context, newEmployee Employee) (Employee, error)

	// GetByEmployeeID retrieves an employee by its business key
	GetByEmployeeID(ctx context.Context, employeeID string) (Employee, error)

	// List retrieves all employees sorted by created_at descending
	List(ctx context.Context) ([]Employee, error)

	// Update persists the mutable fields of an existing employee
	Update(ctx context.Context, employeeID string, req UpdateEmployeeRequest) (Employee, error)

	// Delete removes an employee; attendance records are left in place
	Delete(ctx context.Context, employeeID string) error

	// ExistsByEmployeeID reports whether another employee already owns this ID.
	// excludeID is the surrogate ID to skip (empty for create paths).
	ExistsByEmployeeID(ctx context.Context, employeeID string, excludeID string) (bool, error)

	// ExistsByEmail reports whether another employee already owns this email
	ExistsByEmail(ctx context.Context, email string, excludeID string) (bool, error)
}
