package analytics

// ========== COMBINED SUMMARY ==========

// SummaryResponse is the combined response for the analytics summary endpoint
type SummaryResponse struct {
	Overview                 Overview               `json:"overview"`
	EmployeesByDepartment    []DepartmentCount      `json:"employeesByDepartment"`
	AttendanceByDepartment   []DepartmentAttendance `json:"attendanceByDepartment"`
	DailyAttendance          []DayBucket            `json:"dailyAttendance"`
	TopEmployeesByAttendance []EmployeeRanking      `json:"topEmployeesByAttendance"`
	MonthlyAttendance        []MonthBucket          `json:"monthlyAttendance"`
}

// ========== OVERVIEW ==========

// Overview contains the headline counts and the overall attendance rate.
// AttendanceRate is a percentage formatted to two decimals, "0.00" when no
// records exist.
type Overview struct {
	TotalEmployees         int64  `json:"totalEmployees"`
	TotalAttendanceRecords int64  `json:"totalAttendanceRecords"`
	PresentCount           int64  `json:"presentCount"`
	AbsentCount            int64  `json:"absentCount"`
	AttendanceRate         string `json:"attendanceRate"`
}

// ========== DEPARTMENT GROUPINGS ==========

// DepartmentCount represents employee headcount per department
type DepartmentCount struct {
	Department string `json:"department"`
	Count      int64  `json:"count"`
}

// DepartmentAttendance represents attendance volumes per department.
// Attendance whose employee no longer exists is excluded.
type DepartmentAttendance struct {
	Department string `json:"department"`
	Present    int64  `json:"present"`
	Absent     int64  `json:"absent"`
	Total      int64  `json:"total"`
}

// ========== CALENDAR BUCKETS ==========

// DayBucket represents one day of the recent attendance trend
type DayBucket struct {
	Date    string `json:"date"` // Format: "YYYY-MM-DD"
	Present int64  `json:"present"`
	Absent  int64  `json:"absent"`
	Total   int64  `json:"total"`
}

// MonthBucket represents one calendar month of attendance volumes
type MonthBucket struct {
	Month   string `json:"month"` // Format: "YYYY-MM"
	Present int64  `json:"present"`
	Absent  int64  `json:"absent"`
	Total   int64  `json:"total"`
}

// ========== EMPLOYEE RANKING ==========

// EmployeeRanking represents one employee in the top-attendance list.
// AttendanceRate stays an unrounded float; rounding is a display concern.
type EmployeeRanking struct {
	EmployeeID     string  `json:"employeeId"`
	FullName       string  `json:"fullName"`
	Department     string  `json:"department"`
	PresentDays    int64   `json:"presentDays"`
	AbsentDays     int64   `json:"absentDays"`
	TotalDays      int64   `json:"totalDays"`
	AttendanceRate float64 `json:"attendanceRate"`
}
