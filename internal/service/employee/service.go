package employee

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/attendly/attendance-backend-go/internal/domain/employee"
)

type EmployeeServiceImpl struct {
	employee.EmployeeRepository
}

func NewEmployeeService(repo employee.EmployeeRepository) employee.EmployeeService {
	return &EmployeeServiceImpl{
		EmployeeRepository: repo,
	}
}

func toResponse(emp employee.Employee) employee.EmployeeResponse {
	return employee.EmployeeResponse{
		ID:         emp.ID,
		EmployeeID: emp.EmployeeID,
		FullName:   emp.FullName,
		Email:      emp.Email,
		Department: emp.Department,
		CreatedAt:  emp.CreatedAt.Format(time.RFC3339),
		UpdatedAt:  emp.UpdatedAt.Format(time.RFC3339),
	}
}

// CreateEmployee implements employee.EmployeeService.
func (s *EmployeeServiceImpl) CreateEmployee(ctx context.Context, req employee.CreateEmployeeRequest) (employee.EmployeeResponse, error) {
	if err := req.Validate(); err != nil {
		return employee.EmployeeResponse{}, err
	}
	req.Normalize()

	exists, err := s.ExistsByEmployeeID(ctx, req.EmployeeID, "")
	if err != nil {
		return employee.EmployeeResponse{}, fmt.Errorf("failed to check employee ID uniqueness: %w", err)
	}
	if exists {
		return employee.EmployeeResponse{}, employee.ErrEmployeeIDExists
	}

	exists, err = s.ExistsByEmail(ctx, req.Email, "")
	if err != nil {
		return employee.EmployeeResponse{}, fmt.Errorf("failed to check email uniqueness: %w", err)
	}
	if exists {
		return employee.EmployeeResponse{}, employee.ErrEmailExists
	}

	created, err := s.Create(ctx, employee.Employee{
		EmployeeID: req.EmployeeID,
		FullName:   req.FullName,
		Email:      req.Email,
		Department: req.Department,
	})
	if err != nil {
		return employee.EmployeeResponse{}, err
	}

	return toResponse(created), nil
}

// GetEmployee implements employee.EmployeeService.
func (s *EmployeeServiceImpl) GetEmployee(ctx context.Context, employeeID string) (employee.EmployeeResponse, error) {
	found, err := s.GetByEmployeeID(ctx, strings.ToUpper(strings.TrimSpace(employeeID)))
	if err != nil {
		return employee.EmployeeResponse{}, err
	}
	return toResponse(found), nil
}

// ListEmployees implements employee.EmployeeService.
func (s *EmployeeServiceImpl) ListEmployees(ctx context.Context) (employee.ListEmployeesResponse, error) {
	employees, err := s.List(ctx)
	if err != nil {
		return employee.ListEmployeesResponse{}, err
	}

	data := make([]employee.EmployeeResponse, 0, len(employees))
	for _, emp := range employees {
		data = append(data, toResponse(emp))
	}

	return employee.ListEmployeesResponse{
		Data:  data,
		Total: len(data),
	}, nil
}

// UpdateEmployee implements employee.EmployeeService.
func (s *EmployeeServiceImpl) UpdateEmployee(ctx context.Context, employeeID string, req employee.UpdateEmployeeRequest) (employee.EmployeeResponse, error) {
	if err := req.Validate(); err != nil {
		return employee.EmployeeResponse{}, err
	}
	req.Normalize()

	employeeID = strings.ToUpper(strings.TrimSpace(employeeID))
	current, err := s.GetByEmployeeID(ctx, employeeID)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}

	// Re-validate email uniqueness excluding the employee itself
	if req.Email != nil {
		exists, err := s.ExistsByEmail(ctx, *req.Email, current.ID)
		if err != nil {
			return employee.EmployeeResponse{}, fmt.Errorf("failed to check email uniqueness: %w", err)
		}
		if exists {
			return employee.EmployeeResponse{}, employee.ErrEmailExists
		}
	}

	updated, err := s.Update(ctx, employeeID, req)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}

	return toResponse(updated), nil
}

// DeleteEmployee implements employee.EmployeeService.
// Deletion does not cascade: the employee's attendance records stay behind
// and surface as orphans in history enrichment.
func (s *EmployeeServiceImpl) DeleteEmployee(ctx context.Context, employeeID string) error {
	return s.Delete(ctx, strings.ToUpper(strings.TrimSpace(employeeID)))
}
