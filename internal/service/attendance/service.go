package attendance

import (
	"context"
	"fmt"
	"time"

	"github.com/attendly/attendance-backend-go/internal/domain/attendance"
	"github.com/attendly/attendance-backend-go/internal/domain/employee"
	"github.com/attendly/attendance-backend-go/internal/pkg/validator"
)

type AttendanceServiceImpl struct {
	attendance.AttendanceRepository
	employee.EmployeeRepository
	now func() time.Time
}

func NewAttendanceService(attendanceRepo attendance.AttendanceRepository, employeeRepo employee.EmployeeRepository) attendance.AttendanceService {
	return &AttendanceServiceImpl{
		AttendanceRepository: attendanceRepo,
		EmployeeRepository:   employeeRepo,
		now:                  time.Now,
	}
}

func toResponse(rec attendance.Attendance) attendance.AttendanceResponse {
	return attendance.AttendanceResponse{
		ID:         rec.ID,
		EmployeeID: rec.EmployeeID,
		Date:       rec.Date.Format("2006-01-02"),
		Status:     string(rec.Status),
		CreatedAt:  rec.CreatedAt.Format(time.RFC3339),
		UpdatedAt:  rec.UpdatedAt.Format(time.RFC3339),
	}
}

// MarkAttendance implements attendance.AttendanceService.
func (a *AttendanceServiceImpl) MarkAttendance(ctx context.Context, req attendance.MarkAttendanceRequest) (attendance.AttendanceResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.AttendanceResponse{}, err
	}
	req.Normalize()

	parsed, _ := validator.IsValidDate(req.Date)
	day := validator.TruncateToDay(parsed)

	// Aggregation and history assume no future-dated records exist, so the
	// rule is enforced here too, not only at the HTTP boundary
	if validator.IsFutureDay(day, a.now()) {
		return attendance.AttendanceResponse{}, attendance.ErrFutureDate
	}

	if _, err := a.GetByEmployeeID(ctx, req.EmployeeID); err != nil {
		return attendance.AttendanceResponse{}, err
	}

	exists, err := a.ExistsByEmployeeAndDate(ctx, req.EmployeeID, day)
	if err != nil {
		return attendance.AttendanceResponse{}, fmt.Errorf("failed to check existing attendance: %w", err)
	}
	if exists {
		return attendance.AttendanceResponse{}, attendance.ErrAlreadyMarked
	}

	// The unique index still backs this up: a concurrent writer that slips
	// past the check above gets ErrAlreadyMarked from Create
	created, err := a.AttendanceRepository.Create(ctx, attendance.Attendance{
		EmployeeID: req.EmployeeID,
		Date:       day,
		Status:     attendance.Status(req.Status),
	})
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}

	return toResponse(created), nil
}

// ListAttendance implements attendance.AttendanceService.
func (a *AttendanceServiceImpl) ListAttendance(ctx context.Context) (attendance.ListAttendanceResponse, error) {
	records, err := a.ListAll(ctx)
	if err != nil {
		return attendance.ListAttendanceResponse{}, err
	}

	data := make([]attendance.AttendanceResponse, 0, len(records))
	for _, rec := range records {
		data = append(data, toResponse(rec))
	}

	return attendance.ListAttendanceResponse{
		Data:  data,
		Total: len(data),
	}, nil
}
