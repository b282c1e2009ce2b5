package history

import (
	"context"
	"sort"
	"strings"
	"time"

	"github.com/attendly/attendance-backend-go/internal/domain/attendance"
	"github.com/attendly/attendance-backend-go/internal/domain/employee"
	"github.com/attendly/attendance-backend-go/internal/domain/history"
	"github.com/attendly/attendance-backend-go/internal/pkg/validator"
)

type HistoryServiceImpl struct {
	attendance.AttendanceRepository
	employee.EmployeeRepository
}

func NewHistoryService(attendanceRepo attendance.AttendanceRepository, employeeRepo employee.EmployeeRepository) history.HistoryService {
	return &HistoryServiceImpl{
		AttendanceRepository: attendanceRepo,
		EmployeeRepository:   employeeRepo,
	}
}

// Snapshot converts an employee into the denormalized form attached to
// enriched records.
func Snapshot(emp employee.Employee) history.EmployeeSnapshot {
	return history.EmployeeSnapshot{
		EmployeeID: emp.EmployeeID,
		FullName:   emp.FullName,
		Email:      emp.Email,
		Department: emp.Department,
	}
}

// Enrich attaches each record's owning employee snapshot via one batch map
// instead of a lookup per record. Records whose employee is missing keep a
// nil snapshot and are never dropped.
func Enrich(records []attendance.Attendance, employees []employee.Employee) []history.Record {
	byID := make(map[string]history.EmployeeSnapshot, len(employees))
	for _, emp := range employees {
		byID[emp.EmployeeID] = Snapshot(emp)
	}

	result := make([]history.Record, 0, len(records))
	for _, rec := range records {
		enriched := history.Record{
			ID:         rec.ID,
			EmployeeID: rec.EmployeeID,
			Date:       rec.Date.Format("2006-01-02"),
			Status:     string(rec.Status),
			CreatedAt:  rec.CreatedAt,
		}
		if snap, ok := byID[rec.EmployeeID]; ok {
			enriched.Employee = &snap
		}
		result = append(result, enriched)
	}
	return result
}

// MonthKey returns the canonical YYYY-MM grouping key for a record date.
func MonthKey(date string) string {
	if len(date) < 7 {
		return date
	}
	return date[:7]
}

// MonthLabel renders a month key as its human-readable form, e.g.
// "2026-02" -> "February 2026". Unparseable keys pass through unchanged.
func MonthLabel(key string) string {
	t, err := time.Parse("2006-01", key)
	if err != nil {
		return key
	}
	return t.Format("January 2006")
}

// GroupByMonth partitions enriched records into month groups sorted
// descending by key. Record order within each group follows the input order.
func GroupByMonth(records []history.Record) []history.Group {
	byKey := make(map[string]*history.Group)
	var keys []string
	for _, rec := range records {
		key := MonthKey(rec.Date)
		group := byKey[key]
		if group == nil {
			group = &history.Group{Month: key, Label: MonthLabel(key)}
			byKey[key] = group
			keys = append(keys, key)
		}
		group.Records = append(group.Records, rec)
	}

	sort.Sort(sort.Reverse(sort.StringSlice(keys)))

	result := make([]history.Group, 0, len(keys))
	for _, key := range keys {
		result = append(result, *byKey[key])
	}
	return result
}

// GetHistory implements history.HistoryService.
func (s *HistoryServiceImpl) GetHistory(ctx context.Context) (history.HistoryResponse, error) {
	records, err := s.ListAll(ctx)
	if err != nil {
		return history.HistoryResponse{}, err
	}

	employees, err := s.List(ctx)
	if err != nil {
		return history.HistoryResponse{}, err
	}

	enriched := Enrich(records, employees)

	return history.HistoryResponse{
		Data:         GroupByMonth(enriched),
		TotalRecords: len(enriched),
	}, nil
}

// GetMonthHistory implements history.HistoryService.
func (s *HistoryServiceImpl) GetMonthHistory(ctx context.Context, year, month int) (history.MonthHistoryResponse, error) {
	if year < 2000 || year > 2100 || month < 1 || month > 12 {
		return history.MonthHistoryResponse{}, history.ErrMonthOutOfRange
	}

	// [first of month, first of next month) covers the whole month for
	// day-granularity records
	start := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC)
	end := start.AddDate(0, 1, 0)

	records, err := s.ListByDateRange(ctx, start, end)
	if err != nil {
		return history.MonthHistoryResponse{}, err
	}

	employees, err := s.List(ctx)
	if err != nil {
		return history.MonthHistoryResponse{}, err
	}

	enriched := Enrich(records, employees)
	key := start.Format("2006-01")

	return history.MonthHistoryResponse{
		Data: history.Group{
			Month:   key,
			Label:   MonthLabel(key),
			Records: enriched,
		},
		TotalRecords: len(enriched),
	}, nil
}

// GetEmployeeHistory implements history.HistoryService.
func (s *HistoryServiceImpl) GetEmployeeHistory(ctx context.Context, employeeID string) (history.EmployeeHistoryResponse, error) {
	emp, err := s.GetByEmployeeID(ctx, strings.ToUpper(strings.TrimSpace(employeeID)))
	if err != nil {
		return history.EmployeeHistoryResponse{}, err
	}

	records, err := s.ListByEmployeeID(ctx, emp.EmployeeID)
	if err != nil {
		return history.EmployeeHistoryResponse{}, err
	}

	// Owner is fixed, so every record gets the same snapshot without a
	// per-record lookup
	enriched := Enrich(records, []employee.Employee{emp})

	return history.EmployeeHistoryResponse{
		Employee:     Snapshot(emp),
		Data:         GroupByMonth(enriched),
		TotalRecords: len(enriched),
	}, nil
}

// GetRangeHistory implements history.HistoryService.
func (s *HistoryServiceImpl) GetRangeHistory(ctx context.Context, startDate, endDate string) (history.RangeHistoryResponse, error) {
	start, ok := validator.IsValidDate(startDate)
	if !ok {
		return history.RangeHistoryResponse{}, history.ErrInvalidDate
	}
	end, ok := validator.IsValidDate(endDate)
	if !ok {
		return history.RangeHistoryResponse{}, history.ErrInvalidDate
	}
	if start.After(end) {
		return history.RangeHistoryResponse{}, history.ErrInvalidDateRange
	}

	// End boundary is inclusive through the whole end day
	records, err := s.ListByDateRange(ctx, start, end.AddDate(0, 0, 1))
	if err != nil {
		return history.RangeHistoryResponse{}, err
	}

	employees, err := s.List(ctx)
	if err != nil {
		return history.RangeHistoryResponse{}, err
	}

	enriched := Enrich(records, employees)

	return history.RangeHistoryResponse{
		StartDate:    startDate,
		EndDate:      endDate,
		Data:         enriched,
		TotalRecords: len(enriched),
	}, nil
}
