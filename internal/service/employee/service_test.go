package employee

import (
	"context"
	"strconv"
	"testing"
	"time"

	"github.com/attendly/attendance-backend-go/internal/domain/employee"
	"github.com/attendly/attendance-backend-go/internal/pkg/validator"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeEmployeeRepo keeps employees in a slice, close enough to the
// postgresql repository for service-level behavior.
type fakeEmployeeRepo struct {
	employees []employee.Employee
	nextID    int
}

func (f *fakeEmployeeRepo) Create(_ context.Context, emp employee.Employee) (employee.Employee, error) {
	f.nextID++
	emp.ID = "row-" + strconv.Itoa(f.nextID)
	emp.CreatedAt = time.Now()
	emp.UpdatedAt = emp.CreatedAt
	f.employees = append(f.employees, emp)
	return emp, nil
}

func (f *fakeEmployeeRepo) GetByEmployeeID(_ context.Context, employeeID string) (employee.Employee, error) {
	for _, emp := range f.employees {
		if emp.EmployeeID == employeeID {
			return emp, nil
		}
	}
	return employee.Employee{}, employee.ErrEmployeeNotFound
}

func (f *fakeEmployeeRepo) List(_ context.Context) ([]employee.Employee, error) {
	out := make([]employee.Employee, len(f.employees))
	copy(out, f.employees)
	return out, nil
}

func (f *fakeEmployeeRepo) Update(_ context.Context, employeeID string, req employee.UpdateEmployeeRequest) (employee.Employee, error) {
	for i, emp := range f.employees {
		if emp.EmployeeID != employeeID {
			continue
		}
		if req.FullName != nil {
			emp.FullName = *req.FullName
		}
		if req.Email != nil {
			emp.Email = *req.Email
		}
		if req.Department != nil {
			emp.Department = *req.Department
		}
		emp.UpdatedAt = time.Now()
		f.employees[i] = emp
		return emp, nil
	}
	return employee.Employee{}, employee.ErrEmployeeNotFound
}

func (f *fakeEmployeeRepo) Delete(_ context.Context, employeeID string) error {
	for i, emp := range f.employees {
		if emp.EmployeeID == employeeID {
			f.employees = append(f.employees[:i], f.employees[i+1:]...)
			return nil
		}
	}
	return employee.ErrEmployeeNotFound
}

func (f *fakeEmployeeRepo) ExistsByEmployeeID(_ context.Context, employeeID, excludeID string) (bool, error) {
	for _, emp := range f.employees {
		if emp.EmployeeID == employeeID && emp.ID != excludeID {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeEmployeeRepo) ExistsByEmail(_ context.Context, email, excludeID string) (bool, error) {
	for _, emp := range f.employees {
		if emp.Email == email && emp.ID != excludeID {
			return true, nil
		}
	}
	return false, nil
}

func ptr(s string) *string { return &s }

func validCreateRequest() employee.CreateEmployeeRequest {
	return employee.CreateEmployeeRequest{
		EmployeeID: "EMP001",
		FullName:   "Ana Silva",
		Email:      "ana@example.com",
		Department: "Engineering",
	}
}

func TestCreateEmployee_NormalizesInput(t *testing.T) {
	svc := NewEmployeeService(&fakeEmployeeRepo{})

	got, err := svc.CreateEmployee(context.Background(), employee.CreateEmployeeRequest{
		EmployeeID: "  emp001 ",
		FullName:   "  Ana Silva ",
		Email:      "  Ana@Example.COM ",
		Department: " Engineering ",
	})

	require.NoError(t, err)
	assert.Equal(t, "EMP001", got.EmployeeID)
	assert.Equal(t, "Ana Silva", got.FullName)
	assert.Equal(t, "ana@example.com", got.Email)
	assert.Equal(t, "Engineering", got.Department)
	assert.NotEmpty(t, got.ID)
}

func TestCreateEmployee_DuplicateEmployeeID(t *testing.T) {
	svc := NewEmployeeService(&fakeEmployeeRepo{})

	_, err := svc.CreateEmployee(context.Background(), validCreateRequest())
	require.NoError(t, err)

	dup := validCreateRequest()
	dup.Email = "other@example.com"
	_, err = svc.CreateEmployee(context.Background(), dup)

	assert.ErrorIs(t, err, employee.ErrEmployeeIDExists)
}

func TestCreateEmployee_DuplicateEmail(t *testing.T) {
	svc := NewEmployeeService(&fakeEmployeeRepo{})

	_, err := svc.CreateEmployee(context.Background(), validCreateRequest())
	require.NoError(t, err)

	dup := validCreateRequest()
	dup.EmployeeID = "EMP002"
	_, err = svc.CreateEmployee(context.Background(), dup)

	assert.ErrorIs(t, err, employee.ErrEmailExists)
}

func TestCreateEmployee_ValidationErrors(t *testing.T) {
	svc := NewEmployeeService(&fakeEmployeeRepo{})

	cases := []struct {
		name  string
		mod   func(*employee.CreateEmployeeRequest)
		field string
	}{
		{"missing employee id", func(r *employee.CreateEmployeeRequest) { r.EmployeeID = "" }, "employeeId"},
		{"one-char employee id", func(r *employee.CreateEmployeeRequest) { r.EmployeeID = "E" }, "employeeId"},
		{"employee id with space", func(r *employee.CreateEmployeeRequest) { r.EmployeeID = "EMP 01" }, "employeeId"},
		{"missing name", func(r *employee.CreateEmployeeRequest) { r.FullName = "  " }, "fullName"},
		{"missing email", func(r *employee.CreateEmployeeRequest) { r.Email = "" }, "email"},
		{"bad email", func(r *employee.CreateEmployeeRequest) { r.Email = "not-an-email" }, "email"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := validCreateRequest()
			tc.mod(&req)

			_, err := svc.CreateEmployee(context.Background(), req)

			var verrs validator.ValidationErrors
			require.ErrorAs(t, err, &verrs)
			assert.Contains(t, verrs.ToMap(), tc.field)
		})
	}
}

func TestGetEmployee_CaseInsensitiveLookup(t *testing.T) {
	svc := NewEmployeeService(&fakeEmployeeRepo{})

	_, err := svc.CreateEmployee(context.Background(), validCreateRequest())
	require.NoError(t, err)

	got, err := svc.GetEmployee(context.Background(), " emp001 ")

	require.NoError(t, err)
	assert.Equal(t, "EMP001", got.EmployeeID)
}

func TestGetEmployee_NotFound(t *testing.T) {
	svc := NewEmployeeService(&fakeEmployeeRepo{})

	_, err := svc.GetEmployee(context.Background(), "EMP999")

	assert.ErrorIs(t, err, employee.ErrEmployeeNotFound)
}

func TestUpdateEmployee_KeepsOwnEmail(t *testing.T) {
	svc := NewEmployeeService(&fakeEmployeeRepo{})

	_, err := svc.CreateEmployee(context.Background(), validCreateRequest())
	require.NoError(t, err)

	// re-submitting the employee's own email must not trip uniqueness
	got, err := svc.UpdateEmployee(context.Background(), "EMP001", employee.UpdateEmployeeRequest{
		FullName: ptr("Ana Souza"),
		Email:    ptr("ana@example.com"),
	})

	require.NoError(t, err)
	assert.Equal(t, "Ana Souza", got.FullName)
	assert.Equal(t, "ana@example.com", got.Email)
}

func TestUpdateEmployee_EmailTakenByOther(t *testing.T) {
	svc := NewEmployeeService(&fakeEmployeeRepo{})

	_, err := svc.CreateEmployee(context.Background(), validCreateRequest())
	require.NoError(t, err)

	other := validCreateRequest()
	other.EmployeeID = "EMP002"
	other.Email = "budi@example.com"
	_, err = svc.CreateEmployee(context.Background(), other)
	require.NoError(t, err)

	_, err = svc.UpdateEmployee(context.Background(), "EMP002", employee.UpdateEmployeeRequest{
		Email: ptr("ana@example.com"),
	})

	assert.ErrorIs(t, err, employee.ErrEmailExists)
}

func TestUpdateEmployee_EmptyNameRejected(t *testing.T) {
	svc := NewEmployeeService(&fakeEmployeeRepo{})

	_, err := svc.CreateEmployee(context.Background(), validCreateRequest())
	require.NoError(t, err)

	_, err = svc.UpdateEmployee(context.Background(), "EMP001", employee.UpdateEmployeeRequest{
		FullName: ptr("   "),
	})

	var verrs validator.ValidationErrors
	require.ErrorAs(t, err, &verrs)
	assert.Contains(t, verrs.ToMap(), "fullName")
}

func TestDeleteEmployee(t *testing.T) {
	repo := &fakeEmployeeRepo{}
	svc := NewEmployeeService(repo)

	_, err := svc.CreateEmployee(context.Background(), validCreateRequest())
	require.NoError(t, err)

	require.NoError(t, svc.DeleteEmployee(context.Background(), "emp001"))
	assert.Empty(t, repo.employees)

	err = svc.DeleteEmployee(context.Background(), "emp001")
	assert.ErrorIs(t, err, employee.ErrEmployeeNotFound)
}

func TestListEmployees(t *testing.T) {
	svc := NewEmployeeService(&fakeEmployeeRepo{})

	got, err := svc.ListEmployees(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 0, got.Total)
	assert.NotNil(t, got.Data)

	_, err = svc.CreateEmployee(context.Background(), validCreateRequest())
	require.NoError(t, err)

	got, err = svc.ListEmployees(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, got.Total)
}
