// Package historyview is the presentation-side composition over already
// fetched history data: it flattens month groups, then filters, sorts, and
// regroups them according to a view configuration. It performs no I/O and has
// no wire format of its own.
package historyview

import (
	"sort"
	"strings"

	"github.com/attendly/attendance-backend-go/internal/domain/history"
)

type SortKey string

const (
	SortDateDesc       SortKey = "date_desc"
	SortDateAsc        SortKey = "date_asc"
	SortNameAsc        SortKey = "name_asc"
	SortNameDesc       SortKey = "name_desc"
	SortDepartmentAsc  SortKey = "department_asc"
	SortDepartmentDesc SortKey = "department_desc"
	SortStatusAsc      SortKey = "status_asc"
	SortStatusDesc     SortKey = "status_desc"
)

type GroupKey string

const (
	GroupByMonth      GroupKey = "month"
	GroupByDepartment GroupKey = "department"
	GroupByEmployee   GroupKey = "employee"
	GroupByStatus     GroupKey = "status"
	GroupNone         GroupKey = "none"
)

// All is the filter value meaning "no restriction".
const All = "all"

// Options configures one rendering of the history view. Zero values mean no
// filtering, date-descending sort, and no grouping.
type Options struct {
	Search     string
	Month      string // "all" or a YYYY-MM key
	StartDate  string // YYYY-MM-DD; both dates set activates the range and
	EndDate    string // overrides Month entirely
	Status     string // "all", "Present" or "Absent"
	Department string // "all" or an exact department name
	Sort       SortKey
	Group      GroupKey
}

// ViewGroup is one rendered group of the final view
type ViewGroup struct {
	Key     string           `json:"key"`
	Label   string           `json:"label"`
	Records []history.Record `json:"records"`
}

// Result carries the rendered groups plus the two counters the view shows:
// Matching ("Showing: N") and Total ("Total Records: N").
type Result struct {
	Groups   []ViewGroup `json:"groups"`
	Matching int         `json:"matching"`
	Total    int         `json:"total"`
}

// record tags a flattened history record with its origin month group.
type record struct {
	history.Record
	monthKey   string
	monthLabel string
}

// Apply runs the full pipeline over month-grouped history data.
func Apply(groups []history.Group, total int, opts Options) Result {
	flat := flatten(groups)
	flat = filter(flat, opts)
	sortRecords(flat, opts.Sort)

	return Result{
		Groups:   group(flat, opts.Group),
		Matching: len(flat),
		Total:    total,
	}
}

func flatten(groups []history.Group) []record {
	var flat []record
	for _, g := range groups {
		for _, rec := range g.Records {
			flat = append(flat, record{Record: rec, monthKey: g.Month, monthLabel: g.Label})
		}
	}
	return flat
}

func filter(records []record, opts Options) []record {
	rangeActive := opts.StartDate != "" && opts.EndDate != ""
	monthActive := !rangeActive && opts.Month != "" && opts.Month != All
	statusActive := opts.Status != "" && opts.Status != All
	deptActive := opts.Department != "" && opts.Department != All
	search := strings.ToLower(strings.TrimSpace(opts.Search))

	var out []record
	for _, rec := range records {
		// A date range overrides any month selection. YYYY-MM-DD strings
		// order the same way the dates do.
		if rangeActive && (rec.Date < opts.StartDate || rec.Date > opts.EndDate) {
			continue
		}
		if monthActive && rec.monthKey != opts.Month {
			continue
		}
		if statusActive && rec.Status != opts.Status {
			continue
		}
		if deptActive && (rec.Employee == nil || rec.Employee.Department != opts.Department) {
			continue
		}
		if search != "" && !matchesSearch(rec, search) {
			continue
		}
		out = append(out, rec)
	}
	return out
}

// matchesSearch does a case-insensitive substring match. A record with no
// resolved employee is only matched by its raw employee ID.
func matchesSearch(rec record, search string) bool {
	if rec.Employee == nil {
		return strings.Contains(strings.ToLower(rec.EmployeeID), search)
	}
	for _, field := range []string{
		rec.Employee.FullName,
		rec.EmployeeID,
		rec.Employee.Department,
		rec.Employee.Email,
	} {
		if strings.Contains(strings.ToLower(field), search) {
			return true
		}
	}
	return false
}

func displayName(rec record) string {
	if rec.Employee == nil {
		return rec.EmployeeID
	}
	return rec.Employee.FullName
}

func department(rec record) string {
	if rec.Employee == nil {
		return ""
	}
	return rec.Employee.Department
}

func sortRecords(records []record, key SortKey) {
	var less func(a, b record) bool

	switch key {
	case SortDateAsc:
		less = func(a, b record) bool {
			if a.Date != b.Date {
				return a.Date < b.Date
			}
			return a.CreatedAt.Before(b.CreatedAt)
		}
	case SortNameAsc:
		less = func(a, b record) bool { return displayName(a) < displayName(b) }
	case SortNameDesc:
		less = func(a, b record) bool { return displayName(a) > displayName(b) }
	case SortDepartmentAsc:
		less = func(a, b record) bool { return department(a) < department(b) }
	case SortDepartmentDesc:
		less = func(a, b record) bool { return department(a) > department(b) }
	case SortStatusAsc:
		// Plain string comparison: "Absent" sorts before "Present"
		less = func(a, b record) bool { return a.Status < b.Status }
	case SortStatusDesc:
		less = func(a, b record) bool { return a.Status > b.Status }
	default: // SortDateDesc
		less = func(a, b record) bool {
			if a.Date != b.Date {
				return a.Date > b.Date
			}
			return a.CreatedAt.After(b.CreatedAt)
		}
	}

	sort.SliceStable(records, func(i, j int) bool { return less(records[i], records[j]) })
}

// group partitions the sorted records. Record order within each group follows
// the already-applied sort.
func group(records []record, key GroupKey) []ViewGroup {
	type bucket struct {
		label   string
		records []history.Record
	}

	byKey := make(map[string]*bucket)
	var order []string
	add := func(k, label string, rec history.Record) {
		b := byKey[k]
		if b == nil {
			b = &bucket{label: label}
			byKey[k] = b
			order = append(order, k)
		}
		b.records = append(b.records, rec)
	}

	switch key {
	case GroupByMonth:
		for _, rec := range records {
			add(rec.monthKey, rec.monthLabel, rec.Record)
		}
		sort.Sort(sort.Reverse(sort.StringSlice(order)))
	case GroupByDepartment:
		for _, rec := range records {
			dept := department(rec)
			if dept == "" {
				dept = "Unknown"
			}
			add(dept, dept, rec.Record)
		}
		sort.Strings(order)
	case GroupByEmployee:
		for _, rec := range records {
			add(rec.EmployeeID, displayName(rec), rec.Record)
		}
		// Ascending by resolved name, falling back to the employee ID key
		sort.Slice(order, func(i, j int) bool {
			return byKey[order[i]].label < byKey[order[j]].label
		})
	case GroupByStatus:
		for _, rec := range records {
			add(rec.Status, rec.Status, rec.Record)
		}
		// Descending puts "Present" before "Absent"
		sort.Sort(sort.Reverse(sort.StringSlice(order)))
	default: // GroupNone
		for _, rec := range records {
			add(All, "All Records", rec.Record)
		}
	}

	groups := make([]ViewGroup, 0, len(order))
	for _, k := range order {
		groups = append(groups, ViewGroup{Key: k, Label: byKey[k].label, Records: byKey[k].records})
	}
	return groups
}
