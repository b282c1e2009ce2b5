package attendance

import (
	"time"
)

type Attendance struct {
	ID         string
	EmployeeID string
	Date       time.Time // truncated to midnight UTC
	Status     Status
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

type Status string

const (
	StatusPresent Status = "Present"
	StatusAbsent  Status = "Absent"
)
