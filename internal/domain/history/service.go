package history

import "context"

// HistoryService composes attendance history enriched with employee
// snapshots, organized by month, employee, or date range
type HistoryService interface {
	// GetHistory returns the full history grouped by month, newest month first
	GetHistory(ctx context.Context) (HistoryResponse, error)

	// GetMonthHistory returns a single calendar month as one group
	GetMonthHistory(ctx context.Context, year, month int) (MonthHistoryResponse, error)

	// GetEmployeeHistory returns one employee's history grouped by month
	GetEmployeeHistory(ctx context.Context, employeeID string) (EmployeeHistoryResponse, error)

	// GetRangeHistory returns a flat, ungrouped slice of the history between
	// two inclusive calendar dates
	GetRangeHistory(ctx context.Context, startDate, endDate string) (RangeHistoryResponse, error)
}
