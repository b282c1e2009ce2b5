package history

import "time"

// ========== ENRICHED RECORDS ==========

// EmployeeSnapshot is the denormalized identity attached to an enriched
// record for display. It carries no ownership; deleting the employee later
// does not touch the attendance row.
type EmployeeSnapshot struct {
	EmployeeID string `json:"employeeId"`
	FullName   string `json:"fullName"`
	Email      string `json:"email"`
	Department string `json:"department"`
}

// Record is one attendance event enriched with its owner's snapshot.
// Employee is nil when the owning employee no longer exists; the record is
// retained regardless.
type Record struct {
	ID         string            `json:"id"`
	EmployeeID string            `json:"employeeId"`
	Date       string            `json:"date"` // Format: "YYYY-MM-DD"
	Status     string            `json:"status"`
	CreatedAt  time.Time         `json:"createdAt"`
	Employee   *EmployeeSnapshot `json:"employee"`
}

// Group is an ordered set of records sharing one month key
type Group struct {
	Month   string   `json:"month"` // Format: "YYYY-MM"
	Label   string   `json:"label"` // e.g. "February 2026"
	Records []Record `json:"records"`
}

// ========== RESPONSES ==========

type HistoryResponse struct {
	Data         []Group `json:"data"`
	TotalRecords int     `json:"totalRecords"`
}

type MonthHistoryResponse struct {
	Data         Group `json:"data"`
	TotalRecords int   `json:"totalRecords"`
}

type EmployeeHistoryResponse struct {
	Employee     EmployeeSnapshot `json:"employee"`
	Data         []Group          `json:"data"`
	TotalRecords int              `json:"totalRecords"`
}

type RangeHistoryResponse struct {
	StartDate    string   `json:"startDate"` // echoed, "YYYY-MM-DD"
	EndDate      string   `json:"endDate"`
	Data         []Record `json:"data"`
	TotalRecords int      `json:"totalRecords"`
}
