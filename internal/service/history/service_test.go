package history

import (
	"context"
	"errors"
	"sort"
	"testing"
	"time"

	"github.com/attendly/attendance-backend-go/internal/domain/attendance"
	"github.com/attendly/attendance-backend-go/internal/domain/employee"
	"github.com/attendly/attendance-backend-go/internal/domain/history"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ===== IN-MEMORY FAKES =====

type fakeAttendanceRepo struct {
	records []attendance.Attendance
}

func (f *fakeAttendanceRepo) sorted() []attendance.Attendance {
	out := make([]attendance.Attendance, len(f.records))
	copy(out, f.records)
	sort.SliceStable(out, func(i, j int) bool {
		if !out[i].Date.Equal(out[j].Date) {
			return out[i].Date.After(out[j].Date)
		}
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out
}

func (f *fakeAttendanceRepo) Create(_ context.Context, rec attendance.Attendance) (attendance.Attendance, error) {
	f.records = append(f.records, rec)
	return rec, nil
}

func (f *fakeAttendanceRepo) ListAll(_ context.Context) ([]attendance.Attendance, error) {
	return f.sorted(), nil
}

func (f *fakeAttendanceRepo) ListByEmployeeID(_ context.Context, employeeID string) ([]attendance.Attendance, error) {
	var out []attendance.Attendance
	for _, rec := range f.sorted() {
		if rec.EmployeeID == employeeID {
			out = append(out, rec)
		}
	}
	return out, nil
}

func (f *fakeAttendanceRepo) ListByDateRange(_ context.Context, start, end time.Time) ([]attendance.Attendance, error) {
	var out []attendance.Attendance
	for _, rec := range f.sorted() {
		if !rec.Date.Before(start) && rec.Date.Before(end) {
			out = append(out, rec)
		}
	}
	return out, nil
}

func (f *fakeAttendanceRepo) ExistsByEmployeeAndDate(_ context.Context, employeeID string, date time.Time) (bool, error) {
	for _, rec := range f.records {
		if rec.EmployeeID == employeeID && rec.Date.Equal(date) {
			return true, nil
		}
	}
	return false, nil
}

type fakeEmployeeRepo struct {
	employees []employee.Employee
}

func (f *fakeEmployeeRepo) Create(_ context.Context, emp employee.Employee) (employee.Employee, error) {
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
	return f.employees, nil
}

func (f *fakeEmployeeRepo) Update(_ context.Context, _ string, _ employee.UpdateEmployeeRequest) (employee.Employee, error) {
	return employee.Employee{}, errors.New("not implemented")
}

func (f *fakeEmployeeRepo) Delete(_ context.Context, _ string) error {
	return errors.New("not implemented")
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

// ===== FIXTURES =====

func emp(employeeID, fullName, department string) employee.Employee {
	return employee.Employee{
		ID:         "row-" + employeeID,
		EmployeeID: employeeID,
		FullName:   fullName,
		Email:      employeeID + "@example.com",
		Department: department,
	}
}

func rec(employeeID, date string, status attendance.Status, createdAt time.Time) attendance.Attendance {
	d, _ := time.Parse("2006-01-02", date)
	return attendance.Attendance{
		ID:         employeeID + "-" + date,
		EmployeeID: employeeID,
		Date:       d,
		Status:     status,
		CreatedAt:  createdAt,
	}
}

func newService(employees []employee.Employee, records []attendance.Attendance) history.HistoryService {
	return NewHistoryService(
		&fakeAttendanceRepo{records: records},
		&fakeEmployeeRepo{employees: employees},
	)
}

// ===== PURE HELPERS =====

func TestMonthKeyAndLabel(t *testing.T) {
	assert.Equal(t, "2026-02", MonthKey("2026-02-14"))
	assert.Equal(t, "February 2026", MonthLabel("2026-02"))
	assert.Equal(t, "garbage", MonthLabel("garbage"))
}

func TestEnrich_OrphanKeepsNilSnapshot(t *testing.T) {
	employees := []employee.Employee{emp("EMP001", "Ana Silva", "Engineering")}
	records := []attendance.Attendance{
		rec("EMP001", "2026-02-02", attendance.StatusPresent, time.Now()),
		rec("GONE01", "2026-02-03", attendance.StatusAbsent, time.Now()),
	}

	got := Enrich(records, employees)

	require.Len(t, got, 2)
	require.NotNil(t, got[0].Employee)
	assert.Equal(t, "Ana Silva", got[0].Employee.FullName)
	assert.Nil(t, got[1].Employee)
	assert.Equal(t, "GONE01", got[1].EmployeeID)
}

func TestGroupByMonth_PartitionProperty(t *testing.T) {
	records := []attendance.Attendance{
		rec("EMP001", "2026-02-14", attendance.StatusPresent, time.Now()),
		rec("EMP001", "2026-02-02", attendance.StatusAbsent, time.Now()),
		rec("EMP001", "2026-01-20", attendance.StatusPresent, time.Now()),
		rec("EMP001", "2025-12-31", attendance.StatusPresent, time.Now()),
	}
	enriched := Enrich(records, nil)

	groups := GroupByMonth(enriched)

	require.Len(t, groups, 3)
	assert.Equal(t, "2026-02", groups[0].Month)
	assert.Equal(t, "February 2026", groups[0].Label)
	assert.Equal(t, "2026-01", groups[1].Month)
	assert.Equal(t, "2025-12", groups[2].Month)

	// flattening the groups reproduces the input exactly
	var flat []history.Record
	for _, g := range groups {
		flat = append(flat, g.Records...)
	}
	assert.Equal(t, enriched, flat)
}

// ===== SERVICE =====

func TestGetHistory_GroupsAndCount(t *testing.T) {
	employees := []employee.Employee{emp("EMP001", "Ana Silva", "Engineering")}
	records := []attendance.Attendance{
		rec("EMP001", "2026-02-02", attendance.StatusPresent, time.Unix(100, 0)),
		rec("EMP001", "2026-02-02", attendance.StatusAbsent, time.Unix(200, 0)),
		rec("EMP001", "2026-01-15", attendance.StatusPresent, time.Unix(50, 0)),
	}
	svc := newService(employees, records)

	got, err := svc.GetHistory(context.Background())

	require.NoError(t, err)
	assert.Equal(t, 3, got.TotalRecords)
	require.Len(t, got.Data, 2)
	// same-day entries ordered by insertion recency
	assert.Equal(t, attendance.StatusAbsent, attendance.Status(got.Data[0].Records[0].Status))
	assert.Equal(t, attendance.StatusPresent, attendance.Status(got.Data[0].Records[1].Status))
}

func TestGetHistory_Idempotent(t *testing.T) {
	employees := []employee.Employee{emp("EMP001", "Ana Silva", "Engineering")}
	records := []attendance.Attendance{
		rec("EMP001", "2026-02-02", attendance.StatusPresent, time.Unix(100, 0)),
		rec("EMP001", "2026-01-15", attendance.StatusAbsent, time.Unix(50, 0)),
	}
	svc := newService(employees, records)

	first, err := svc.GetHistory(context.Background())
	require.NoError(t, err)
	second, err := svc.GetHistory(context.Background())
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestGetMonthHistory(t *testing.T) {
	employees := []employee.Employee{emp("EMP001", "Ana Silva", "Engineering")}
	records := []attendance.Attendance{
		rec("EMP001", "2026-02-01", attendance.StatusPresent, time.Unix(1, 0)),
		rec("EMP001", "2026-02-28", attendance.StatusPresent, time.Unix(2, 0)),
		rec("EMP001", "2026-03-01", attendance.StatusPresent, time.Unix(3, 0)),
	}
	svc := newService(employees, records)

	got, err := svc.GetMonthHistory(context.Background(), 2026, 2)

	require.NoError(t, err)
	assert.Equal(t, 2, got.TotalRecords)
	assert.Equal(t, "2026-02", got.Data.Month)
	assert.Equal(t, "February 2026", got.Data.Label)
}

func TestGetMonthHistory_OutOfRange(t *testing.T) {
	svc := newService(nil, nil)

	cases := []struct{ year, month int }{
		{1999, 5},
		{2101, 5},
		{2026, 0},
		{2026, 13},
	}
	for _, c := range cases {
		_, err := svc.GetMonthHistory(context.Background(), c.year, c.month)
		assert.ErrorIs(t, err, history.ErrMonthOutOfRange, "year=%d month=%d", c.year, c.month)
	}
}

func TestGetEmployeeHistory(t *testing.T) {
	employees := []employee.Employee{
		emp("EMP001", "Ana Silva", "Engineering"),
		emp("EMP002", "Budi Santoso", "Sales"),
	}
	records := []attendance.Attendance{
		rec("EMP001", "2026-02-02", attendance.StatusPresent, time.Unix(1, 0)),
		rec("EMP002", "2026-02-02", attendance.StatusAbsent, time.Unix(2, 0)),
	}
	svc := newService(employees, records)

	got, err := svc.GetEmployeeHistory(context.Background(), "emp001")

	require.NoError(t, err)
	assert.Equal(t, "EMP001", got.Employee.EmployeeID)
	assert.Equal(t, 1, got.TotalRecords)
	require.Len(t, got.Data, 1)
	require.NotNil(t, got.Data[0].Records[0].Employee)
	assert.Equal(t, "Ana Silva", got.Data[0].Records[0].Employee.FullName)
}

func TestGetEmployeeHistory_NotFound(t *testing.T) {
	svc := newService(nil, nil)

	_, err := svc.GetEmployeeHistory(context.Background(), "NOPE1")

	assert.ErrorIs(t, err, employee.ErrEmployeeNotFound)
}

func TestGetRangeHistory_InclusiveEnd(t *testing.T) {
	employees := []employee.Employee{emp("EMP001", "Ana Silva", "Engineering")}
	records := []attendance.Attendance{
		rec("EMP001", "2026-01-31", attendance.StatusPresent, time.Unix(1, 0)),
		rec("EMP001", "2026-02-01", attendance.StatusPresent, time.Unix(2, 0)),
	}
	svc := newService(employees, records)

	got, err := svc.GetRangeHistory(context.Background(), "2026-01-01", "2026-01-31")

	require.NoError(t, err)
	assert.Equal(t, 1, got.TotalRecords)
	require.Len(t, got.Data, 1)
	assert.Equal(t, "2026-01-31", got.Data[0].Date)
	assert.Equal(t, "2026-01-01", got.StartDate)
	assert.Equal(t, "2026-01-31", got.EndDate)
}

func TestGetRangeHistory_BadInput(t *testing.T) {
	svc := newService(nil, nil)

	_, err := svc.GetRangeHistory(context.Background(), "not-a-date", "2026-01-31")
	assert.ErrorIs(t, err, history.ErrInvalidDate)

	_, err = svc.GetRangeHistory(context.Background(), "2026-02-01", "2026-01-31")
	assert.ErrorIs(t, err, history.ErrInvalidDateRange)
}
