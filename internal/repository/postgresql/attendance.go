package postgresql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/attendly/attendance-backend-go/internal/domain/attendance"
	"github.com/attendly/attendance-backend-go/internal/pkg/database"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
)

type attendanceRepositoryImpl struct {
	db *database.DB
}

func NewAttendanceRepository(db *database.DB) attendance.AttendanceRepository {
	return &attendanceRepositoryImpl{db: db}
}

// Create implements attendance.AttendanceRepository.
func (a *attendanceRepositoryImpl) Create(ctx context.Context, record attendance.Attendance) (attendance.Attendance, error) {
	q := GetQuerier(ctx, a.db)

	query := `
		INSERT INTO attendance (id, employee_id, date, status)
		VALUES ($1, $2, $3, $4)
		RETURNING id, employee_id, date, status, created_at, updated_at
	`

	var created attendance.Attendance
	err := q.QueryRow(ctx, query,
		uuid.NewString(), record.EmployeeID, record.Date, record.Status,
	).Scan(
		&created.ID, &created.EmployeeID, &created.Date,
		&created.Status, &created.CreatedAt, &created.UpdatedAt,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			// unique (employee_id, date): the second concurrent writer for the
			// same day lands here
			return attendance.Attendance{}, attendance.ErrAlreadyMarked
		}
		return attendance.Attendance{}, fmt.Errorf("failed to create attendance: %w", err)
	}
	return created, nil
}

const attendanceColumns = `id, employee_id, date, status, created_at, updated_at`

// ListAll implements attendance.AttendanceRepository.
func (a *attendanceRepositoryImpl) ListAll(ctx context.Context) ([]attendance.Attendance, error) {
	query := fmt.Sprintf(`
		SELECT %s FROM attendance
		ORDER BY date DESC, created_at DESC
	`, attendanceColumns)

	return a.queryRecords(ctx, query)
}

// ListByEmployeeID implements attendance.AttendanceRepository.
func (a *attendanceRepositoryImpl) ListByEmployeeID(ctx context.Context, employeeID string) ([]attendance.Attendance, error) {
	query := fmt.Sprintf(`
		SELECT %s FROM attendance
		WHERE employee_id = $1
		ORDER BY date DESC, created_at DESC
	`, attendanceColumns)

	return a.queryRecords(ctx, query, employeeID)
}

// ListByDateRange implements attendance.AttendanceRepository.
func (a *attendanceRepositoryImpl) ListByDateRange(ctx context.Context, start, end time.Time) ([]attendance.Attendance, error) {
	query := fmt.Sprintf(`
		SELECT %s FROM attendance
		WHERE date >= $1 AND date < $2
		ORDER BY date DESC, created_at DESC
	`, attendanceColumns)

	return a.queryRecords(ctx, query, start, end)
}

// ExistsByEmployeeAndDate implements attendance.AttendanceRepository.
func (a *attendanceRepositoryImpl) ExistsByEmployeeAndDate(ctx context.Context, employeeID string, date time.Time) (bool, error) {
	q := GetQuerier(ctx, a.db)

	query := `SELECT EXISTS(SELECT 1 FROM attendance WHERE employee_id = $1 AND date = $2)`

	var exists bool
	if err := q.QueryRow(ctx, query, employeeID, date).Scan(&exists); err != nil {
		return false, err
	}

	return exists, nil
}

func (a *attendanceRepositoryImpl) queryRecords(ctx context.Context, query string, args ...interface{}) ([]attendance.Attendance, error) {
	q := GetQuerier(ctx, a.db)

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query attendance: %w", err)
	}
	defer rows.Close()

	var records []attendance.Attendance
	for rows.Next() {
		var rec attendance.Attendance
		err := rows.Scan(
			&rec.ID, &rec.EmployeeID, &rec.Date,
			&rec.Status, &rec.CreatedAt, &rec.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan attendance: %w", err)
		}
		records = append(records, rec)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return records, nil
}
