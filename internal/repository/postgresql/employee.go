package postgresql

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/attendly/attendance-backend-go/internal/domain/employee"
	"github.com/attendly/attendance-backend-go/internal/pkg/database"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

type employeeRepositoryImpl struct {
	db *database.DB
}

func NewEmployeeRepository(db *database.DB) employee.EmployeeRepository {
	return &employeeRepositoryImpl{db: db}
}

// mapUniqueViolation translates a 23505 on one of the employee unique indexes
// into the matching domain conflict error.
func mapUniqueViolation(err error) error {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) || pgErr.Code != "23505" {
		return err
	}
	switch {
	case strings.Contains(pgErr.ConstraintName, "email"):
		return employee.ErrEmailExists
	default:
		return employee.ErrEmployeeIDExists
	}
}

// Create implements employee.EmployeeRepository.
func (e *employeeRepositoryImpl) Create(ctx context.Context, newEmployee employee.Employee) (employee.Employee, error) {
	q := GetQuerier(ctx, e.db)

	query := `
		INSERT INTO employees (id, employee_id, full_name, email, department)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, employee_id, full_name, email, department, created_at, updated_at
	`

	var created employee.Employee
	err := q.QueryRow(ctx, query,
		uuid.NewString(), newEmployee.EmployeeID, newEmployee.FullName,
		newEmployee.Email, newEmployee.Department,
	).Scan(
		&created.ID, &created.EmployeeID, &created.FullName,
		&created.Email, &created.Department, &created.CreatedAt, &created.UpdatedAt,
	)
	if err != nil {
		return employee.Employee{}, mapUniqueViolation(err)
	}
	return created, nil
}

// GetByEmployeeID implements employee.EmployeeRepository.
func (e *employeeRepositoryImpl) GetByEmployeeID(ctx context.Context, employeeID string) (employee.Employee, error) {
	q := GetQuerier(ctx, e.db)

	query := `
		SELECT id, employee_id, full_name, email, department, created_at, updated_at
		FROM employees
		WHERE employee_id = $1
	`

	var found employee.Employee
	err := q.QueryRow(ctx, query, employeeID).Scan(
		&found.ID, &found.EmployeeID, &found.FullName,
		&found.Email, &found.Department, &found.CreatedAt, &found.UpdatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return employee.Employee{}, employee.ErrEmployeeNotFound
		}
		return employee.Employee{}, fmt.Errorf("failed to get employee: %w", err)
	}

	return found, nil
}

// List implements employee.EmployeeRepository.
func (e *employeeRepositoryImpl) List(ctx context.Context) ([]employee.Employee, error) {
	q := GetQuerier(ctx, e.db)

	query := `
		SELECT id, employee_id, full_name, email, department, created_at, updated_at
		FROM employees
		ORDER BY created_at DESC
	`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list employees: %w", err)
	}
	defer rows.Close()

	var employees []employee.Employee
	for rows.Next() {
		var emp employee.Employee
		err := rows.Scan(
			&emp.ID, &emp.EmployeeID, &emp.FullName,
			&emp.Email, &emp.Department, &emp.CreatedAt, &emp.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan employee: %w", err)
		}
		employees = append(employees, emp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return employees, nil
}

// Update implements employee.EmployeeRepository.
func (e *employeeRepositoryImpl) Update(ctx context.Context, employeeID string, req employee.UpdateEmployeeRequest) (employee.Employee, error) {
	updates := make(map[string]interface{})

	if req.FullName != nil && *req.FullName != "" {
		updates["full_name"] = *req.FullName
	}
	if req.Email != nil && *req.Email != "" {
		updates["email"] = *req.Email
	}
	if req.Department != nil {
		updates["department"] = *req.Department
	}

	if len(updates) == 0 {
		return e.GetByEmployeeID(ctx, employeeID)
	}
	updates["updated_at"] = time.Now()

	setClauses := make([]string, 0, len(updates))
	args := make([]interface{}, 0, len(updates)+1)
	i := 1
	for col, val := range updates {
		setClauses = append(setClauses, fmt.Sprintf("%s = $%d", col, i))
		args = append(args, val)
		i++
	}

	sql := fmt.Sprintf(`
		UPDATE employees SET %s WHERE employee_id = $%d
		RETURNING id, employee_id, full_name, email, department, created_at, updated_at
	`, strings.Join(setClauses, ", "), i)
	args = append(args, employeeID)

	var updated employee.Employee
	err := WithTransaction(ctx, e.db, func(tx pgx.Tx) error {
		// Lock the row so concurrent updates serialize instead of clobbering
		// each other's fields
		var id string
		if err := tx.QueryRow(ctx, `SELECT id FROM employees WHERE employee_id = $1 FOR UPDATE`, employeeID).Scan(&id); err != nil {
			if err == pgx.ErrNoRows {
				return employee.ErrEmployeeNotFound
			}
			return err
		}

		return tx.QueryRow(ctx, sql, args...).Scan(
			&updated.ID, &updated.EmployeeID, &updated.FullName,
			&updated.Email, &updated.Department, &updated.CreatedAt, &updated.UpdatedAt,
		)
	})
	if err != nil {
		return employee.Employee{}, mapUniqueViolation(err)
	}
	return updated, nil
}

// Delete implements employee.EmployeeRepository.
// Attendance rows referencing the employee are deliberately left behind.
func (e *employeeRepositoryImpl) Delete(ctx context.Context, employeeID string) error {
	q := GetQuerier(ctx, e.db)

	query := `DELETE FROM employees WHERE employee_id = $1 RETURNING id`

	var deletedID string
	err := q.QueryRow(ctx, query, employeeID).Scan(&deletedID)
	if err != nil {
		if err == pgx.ErrNoRows {
			return employee.ErrEmployeeNotFound
		}
		return fmt.Errorf("failed to delete employee: %w", err)
	}

	return nil
}

// ExistsByEmployeeID implements employee.EmployeeRepository.
func (e *employeeRepositoryImpl) ExistsByEmployeeID(ctx context.Context, employeeID string, excludeID string) (bool, error) {
	q := GetQuerier(ctx, e.db)

	query := `SELECT EXISTS(SELECT 1 FROM employees WHERE employee_id = $1 AND id != $2)`

	var exists bool
	if err := q.QueryRow(ctx, query, employeeID, excludeID).Scan(&exists); err != nil {
		return false, err
	}

	return exists, nil
}

// ExistsByEmail implements employee.EmployeeRepository.
func (e *employeeRepositoryImpl) ExistsByEmail(ctx context.Context, email string, excludeID string) (bool, error) {
	q := GetQuerier(ctx, e.db)

	query := `SELECT EXISTS(SELECT 1 FROM employees WHERE email = $1 AND id != $2)`

	var exists bool
	if err := q.QueryRow(ctx, query, email, excludeID).Scan(&exists); err != nil {
		return false, err
	}

	return exists, nil
}
