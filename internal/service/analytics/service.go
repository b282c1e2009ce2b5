package analytics

import (
	"context"
	"sort"
	"time"

	"github.com/attendly/attendance-backend-go/internal/domain/analytics"
	"github.com/attendly/attendance-backend-go/internal/domain/attendance"
	"github.com/attendly/attendance-backend-go/internal/domain/employee"
	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"
)

type AnalyticsServiceImpl struct {
	attendanceRepo attendance.AttendanceRepository
	employeeRepo   employee.EmployeeRepository
	now            func() time.Time
}

func NewAnalyticsService(attendanceRepo attendance.AttendanceRepository, employeeRepo employee.EmployeeRepository) analytics.AnalyticsService {
	return &AnalyticsServiceImpl{
		attendanceRepo: attendanceRepo,
		employeeRepo:   employeeRepo,
		now:            time.Now,
	}
}

// GetSummary fetches one snapshot of the record set and computes the five
// sub-reports concurrently. Each sub-report is a pure function of the
// snapshot, so completion order cannot affect the output.
func (s *AnalyticsServiceImpl) GetSummary(ctx context.Context) (*analytics.SummaryResponse, error) {
	var (
		employees []employee.Employee
		records   []attendance.Attendance
	)

	g, gCtx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		employees, err = s.employeeRepo.List(gCtx)
		return err
	})
	g.Go(func() error {
		var err error
		records, err = s.attendanceRepo.ListAll(gCtx)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	resp := &analytics.SummaryResponse{}
	now := s.now()

	var cg errgroup.Group
	cg.Go(func() error {
		resp.Overview = BuildOverview(employees, records)
		return nil
	})
	cg.Go(func() error {
		resp.EmployeesByDepartment = EmployeesByDepartment(employees)
		return nil
	})
	cg.Go(func() error {
		resp.AttendanceByDepartment = AttendanceByDepartment(employees, records)
		return nil
	})
	cg.Go(func() error {
		resp.DailyAttendance = DailyTrend(records, now)
		return nil
	})
	cg.Go(func() error {
		resp.TopEmployeesByAttendance = TopEmployees(employees, records)
		return nil
	})
	cg.Go(func() error {
		resp.MonthlyAttendance = MonthlyOverview(records)
		return nil
	})
	_ = cg.Wait()

	return resp, nil
}

// BuildOverview computes the headline counts and the overall attendance rate,
// "0.00" when there are no records.
func BuildOverview(employees []employee.Employee, records []attendance.Attendance) analytics.Overview {
	var present, absent int64
	for _, rec := range records {
		if rec.Status == attendance.StatusPresent {
			present++
		} else {
			absent++
		}
	}

	total := int64(len(records))
	rate := "0.00"
	if total > 0 {
		rate = decimal.NewFromInt(present).
			Div(decimal.NewFromInt(total)).
			Mul(decimal.NewFromInt(100)).
			StringFixed(2)
	}

	return analytics.Overview{
		TotalEmployees:         int64(len(employees)),
		TotalAttendanceRecords: total,
		PresentCount:           present,
		AbsentCount:            absent,
		AttendanceRate:         rate,
	}
}

// EmployeesByDepartment groups headcount per department, largest first.
func EmployeesByDepartment(employees []employee.Employee) []analytics.DepartmentCount {
	counts := make(map[string]int64)
	for _, emp := range employees {
		counts[emp.Department]++
	}

	result := make([]analytics.DepartmentCount, 0, len(counts))
	for dept, count := range counts {
		result = append(result, analytics.DepartmentCount{Department: dept, Count: count})
	}
	sort.Slice(result, func(i, j int) bool {
		if result[i].Count != result[j].Count {
			return result[i].Count > result[j].Count
		}
		return result[i].Department < result[j].Department
	})
	return result
}

// AttendanceByDepartment joins attendance to employees and groups volumes per
// department, largest total first. Records whose employee no longer exists
// are excluded.
func AttendanceByDepartment(employees []employee.Employee, records []attendance.Attendance) []analytics.DepartmentAttendance {
	deptByEmployee := make(map[string]string, len(employees))
	for _, emp := range employees {
		deptByEmployee[emp.EmployeeID] = emp.Department
	}

	buckets := make(map[string]*analytics.DepartmentAttendance)
	for _, rec := range records {
		dept, ok := deptByEmployee[rec.EmployeeID]
		if !ok {
			continue
		}
		bucket := buckets[dept]
		if bucket == nil {
			bucket = &analytics.DepartmentAttendance{Department: dept}
			buckets[dept] = bucket
		}
		if rec.Status == attendance.StatusPresent {
			bucket.Present++
		} else {
			bucket.Absent++
		}
		bucket.Total++
	}

	result := make([]analytics.DepartmentAttendance, 0, len(buckets))
	for _, bucket := range buckets {
		result = append(result, *bucket)
	}
	sort.Slice(result, func(i, j int) bool {
		if result[i].Total != result[j].Total {
			return result[i].Total > result[j].Total
		}
		return result[i].Department < result[j].Department
	})
	return result
}

// DailyTrend buckets the last 30 days of attendance per calendar day,
// oldest first.
func DailyTrend(records []attendance.Attendance, now time.Time) []analytics.DayBucket {
	since := now.AddDate(0, 0, -30)

	buckets := make(map[string]*analytics.DayBucket)
	for _, rec := range records {
		if rec.Date.Before(since) {
			continue
		}
		key := rec.Date.Format("2006-01-02")
		bucket := buckets[key]
		if bucket == nil {
			bucket = &analytics.DayBucket{Date: key}
			buckets[key] = bucket
		}
		if rec.Status == attendance.StatusPresent {
			bucket.Present++
		} else {
			bucket.Absent++
		}
		bucket.Total++
	}

	result := make([]analytics.DayBucket, 0, len(buckets))
	for _, bucket := range buckets {
		result = append(result, *bucket)
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].Date < result[j].Date
	})
	return result
}

// TopEmployees ranks employees by present days, descending, top ten. Records
// whose employee no longer exists are excluded. Equal presentDays tie-break
// is ascending employee ID, keeping the ranking deterministic.
func TopEmployees(employees []employee.Employee, records []attendance.Attendance) []analytics.EmployeeRanking {
	byEmployee := make(map[string]employee.Employee, len(employees))
	for _, emp := range employees {
		byEmployee[emp.EmployeeID] = emp
	}

	rankings := make(map[string]*analytics.EmployeeRanking)
	for _, rec := range records {
		emp, ok := byEmployee[rec.EmployeeID]
		if !ok {
			continue
		}
		ranking := rankings[rec.EmployeeID]
		if ranking == nil {
			ranking = &analytics.EmployeeRanking{
				EmployeeID: emp.EmployeeID,
				FullName:   emp.FullName,
				Department: emp.Department,
			}
			rankings[rec.EmployeeID] = ranking
		}
		if rec.Status == attendance.StatusPresent {
			ranking.PresentDays++
		} else {
			ranking.AbsentDays++
		}
		ranking.TotalDays++
	}

	result := make([]analytics.EmployeeRanking, 0, len(rankings))
	for _, ranking := range rankings {
		ranking.AttendanceRate = float64(ranking.PresentDays) / float64(ranking.TotalDays) * 100
		result = append(result, *ranking)
	}
	sort.Slice(result, func(i, j int) bool {
		if result[i].PresentDays != result[j].PresentDays {
			return result[i].PresentDays > result[j].PresentDays
		}
		return result[i].EmployeeID < result[j].EmployeeID
	})

	if len(result) > 10 {
		result = result[:10]
	}
	return result
}

// MonthlyOverview buckets attendance per calendar month, most recent twelve,
// newest first.
func MonthlyOverview(records []attendance.Attendance) []analytics.MonthBucket {
	buckets := make(map[string]*analytics.MonthBucket)
	for _, rec := range records {
		key := rec.Date.Format("2006-01")
		bucket := buckets[key]
		if bucket == nil {
			bucket = &analytics.MonthBucket{Month: key}
			buckets[key] = bucket
		}
		if rec.Status == attendance.StatusPresent {
			bucket.Present++
		} else {
			bucket.Absent++
		}
		bucket.Total++
	}

	result := make([]analytics.MonthBucket, 0, len(buckets))
	for _, bucket := range buckets {
		result = append(result, *bucket)
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].Month > result[j].Month
	})

	if len(result) > 12 {
		result = result[:12]
	}
	return result
}
