package postgresql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/onsite-hr/attendance-backend-go/internal/domain/attendance"
	"github.com/onsite-hr/attendance-backend-go/internal/pkg/database"
)

type attendanceRepository struct {
	db *database.DB
}

const attendanceColumns = `id, employee_id, employee_name, date, clock_in, clock_out,
	hours_worked, status, location_name, latitude, longitude, distance_from_office,
	is_manual, created_at, updated_at`

func scanAttendance(row pgx.Row) (attendance.Attendance, error) {
	var att attendance.Attendance
	err := row.Scan(
		&att.ID, &att.EmployeeID, &att.EmployeeName, &att.Date, &att.ClockIn, &att.ClockOut,
		&att.HoursWorked, &att.Status, &att.LocationName, &att.Latitude, &att.Longitude,
		&att.DistanceFromOffice, &att.IsManual, &att.CreatedAt, &att.UpdatedAt,
	)
	return att, err
}

// StartSession implements attendance.AttendanceRepository.
//
// The insert relies on the UNIQUE (employee_id, date) constraint: a fresh day
// inserts, a closed session resets in place, and an open session makes the
// conditional upsert match nothing, which surfaces as ErrAlreadyClockedIn.
// The whole transition is a single atomic statement.
func (a *attendanceRepository) StartSession(ctx context.Context, rec attendance.Attendance) (attendance.Attendance, error) {
	q := GetQuerier(ctx, a.db)

	query := `
		INSERT INTO attendance_records (
			id, employee_id, employee_name, date, clock_in, clock_out, hours_worked,
			status, location_name, latitude, longitude, distance_from_office, is_manual
		) VALUES (
			$1, $2, $3, $4, $5, NULL, 0, $6, $7, $8, $9, $10, FALSE
		)
		ON CONFLICT (employee_id, date) DO UPDATE SET
			clock_in             = EXCLUDED.clock_in,
			clock_out            = NULL,
			hours_worked         = 0,
			status               = EXCLUDED.status,
			location_name        = EXCLUDED.location_name,
			latitude             = EXCLUDED.latitude,
			longitude            = EXCLUDED.longitude,
			distance_from_office = EXCLUDED.distance_from_office,
			is_manual            = FALSE,
			updated_at           = NOW()
		WHERE attendance_records.clock_in IS NULL
		   OR attendance_records.clock_out IS NOT NULL
		RETURNING ` + attendanceColumns

	row := q.QueryRow(ctx, query,
		uuid.NewString(),
		rec.EmployeeID,
		rec.EmployeeName,
		rec.Date,
		rec.ClockIn,
		rec.Status,
		rec.LocationName,
		rec.Latitude,
		rec.Longitude,
		rec.DistanceFromOffice,
	)

	created, err := scanAttendance(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return attendance.Attendance{}, attendance.ErrAlreadyClockedIn
		}
		return attendance.Attendance{}, fmt.Errorf("failed to start attendance session: %w", err)
	}

	return created, nil
}

// CompleteSession implements attendance.AttendanceRepository.
//
// The update matches the exact open session the caller observed (clock_out
// unset, clock_in equal to the loaded value), so a concurrent clock-out or
// re-clock-in makes this a no-op reported as ErrNoActiveSession.
func (a *attendanceRepository) CompleteSession(ctx context.Context, employeeID string, date time.Time,
	expectedClockIn time.Time, clockOut time.Time, hoursWorked float64, status attendance.Status) (attendance.Attendance, error) {
	q := GetQuerier(ctx, a.db)

	query := `
		UPDATE attendance_records SET
			clock_out    = $1,
			hours_worked = $2,
			status       = $3,
			updated_at   = NOW()
		WHERE employee_id = $4
		  AND date = $5
		  AND clock_out IS NULL
		  AND clock_in = $6
		RETURNING ` + attendanceColumns

	row := q.QueryRow(ctx, query, clockOut, hoursWorked, status, employeeID, date, expectedClockIn)

	updated, err := scanAttendance(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return attendance.Attendance{}, attendance.ErrNoActiveSession
		}
		return attendance.Attendance{}, fmt.Errorf("failed to complete attendance session: %w", err)
	}

	return updated, nil
}

// CreateManual implements attendance.AttendanceRepository.
func (a *attendanceRepository) CreateManual(ctx context.Context, rec attendance.Attendance) (attendance.Attendance, error) {
	q := GetQuerier(ctx, a.db)

	query := `
		INSERT INTO attendance_records (
			id, employee_id, employee_name, date, clock_in, clock_out, hours_worked,
			status, location_name, latitude, longitude, distance_from_office, is_manual
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, TRUE
		)
		ON CONFLICT (employee_id, date) DO NOTHING
		RETURNING ` + attendanceColumns

	row := q.QueryRow(ctx, query,
		uuid.NewString(),
		rec.EmployeeID,
		rec.EmployeeName,
		rec.Date,
		rec.ClockIn,
		rec.ClockOut,
		rec.HoursWorked,
		rec.Status,
		rec.LocationName,
		rec.Latitude,
		rec.Longitude,
		rec.DistanceFromOffice,
	)

	created, err := scanAttendance(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return attendance.Attendance{}, attendance.ErrDuplicateRecord
		}
		return attendance.Attendance{}, fmt.Errorf("failed to create manual attendance record: %w", err)
	}

	return created, nil
}

// GetByEmployeeAndDate implements attendance.AttendanceRepository.
func (a *attendanceRepository) GetByEmployeeAndDate(ctx context.Context, employeeID string, date time.Time) (*attendance.Attendance, error) {
	q := GetQuerier(ctx, a.db)

	query := `
		SELECT ` + attendanceColumns + `
		FROM attendance_records
		WHERE employee_id = $1
		  AND date = $2
		LIMIT 1
	`

	att, err := scanAttendance(q.QueryRow(ctx, query, employeeID, date))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil // no record for that day
		}
		return nil, fmt.Errorf("failed to get attendance by employee and date: %w", err)
	}

	return &att, nil
}

// ListByDate implements attendance.AttendanceRepository.
func (a *attendanceRepository) ListByDate(ctx context.Context, date time.Time, employeeID *string) ([]attendance.Attendance, error) {
	q := GetQuerier(ctx, a.db)

	query := `
		SELECT ` + attendanceColumns + `
		FROM attendance_records
		WHERE date = $1
	`
	args := []interface{}{date}

	if employeeID != nil {
		query += " AND employee_id = $2"
		args = append(args, *employeeID)
	}
	query += " ORDER BY employee_name ASC"

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query attendance records by date: %w", err)
	}
	defer rows.Close()

	var records []attendance.Attendance
	for rows.Next() {
		att, err := scanAttendance(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan attendance record: %w", err)
		}
		records = append(records, att)
	}

	return records, rows.Err()
}

// List implements attendance.AttendanceRepository.
func (a *attendanceRepository) List(ctx context.Context, filter attendance.ListFilter) ([]attendance.Attendance, int64, error) {
	q := GetQuerier(ctx, a.db)

	baseWhere := "TRUE"
	args := []interface{}{}
	argIdx := 1

	if filter.EmployeeID != nil {
		baseWhere += fmt.Sprintf(" AND employee_id = $%d", argIdx)
		args = append(args, *filter.EmployeeID)
		argIdx++
	}
	if filter.StartDate != nil {
		baseWhere += fmt.Sprintf(" AND date >= $%d", argIdx)
		args = append(args, *filter.StartDate)
		argIdx++
	}
	if filter.EndDate != nil {
		baseWhere += fmt.Sprintf(" AND date <= $%d", argIdx)
		args = append(args, *filter.EndDate)
		argIdx++
	}
	if filter.Status != nil {
		baseWhere += fmt.Sprintf(" AND status = $%d", argIdx)
		args = append(args, *filter.Status)
		argIdx++
	}

	countQuery := "SELECT COUNT(*) FROM attendance_records WHERE " + baseWhere
	var total int64
	if err := q.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count attendance records: %w", err)
	}

	limit := filter.Limit
	if limit == 0 {
		limit = 20
	}
	page := filter.Page
	if page == 0 {
		page = 1
	}
	offset := (page - 1) * limit

	selectQuery := fmt.Sprintf(`
		SELECT `+attendanceColumns+`
		FROM attendance_records
		WHERE %s
		ORDER BY date DESC, created_at DESC
		LIMIT $%d OFFSET $%d
	`, baseWhere, argIdx, argIdx+1)
	args = append(args, limit, offset)

	rows, err := q.Query(ctx, selectQuery, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to query attendance records: %w", err)
	}
	defer rows.Close()

	var records []attendance.Attendance
	for rows.Next() {
		att, err := scanAttendance(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to scan attendance record: %w", err)
		}
		records = append(records, att)
	}

	return records, total, rows.Err()
}

// GetStats implements attendance.AttendanceRepository.
func (a *attendanceRepository) GetStats(ctx context.Context, employeeID string, startDate, endDate time.Time) (attendance.Stats, error) {
	q := GetQuerier(ctx, a.db)

	query := `
		SELECT
			COUNT(*),
			COUNT(*) FILTER (WHERE status = $1),
			COALESCE(AVG(hours_worked), 0)::float8
		FROM attendance_records
		WHERE employee_id = $2
		  AND date >= $3
		  AND date <= $4
	`

	var stats attendance.Stats
	err := q.QueryRow(ctx, query, attendance.StatusPresent, employeeID, startDate, endDate).
		Scan(&stats.TotalRecords, &stats.PresentDays, &stats.AvgHoursWorked)
	if err != nil {
		return attendance.Stats{}, fmt.Errorf("failed to aggregate attendance stats: %w", err)
	}

	return stats, nil
}

// ListStaleOpenSessions implements attendance.AttendanceRepository.
func (a *attendanceRepository) ListStaleOpenSessions(ctx context.Context, before time.Time) ([]attendance.Attendance, error) {
	q := GetQuerier(ctx, a.db)

	query := `
		SELECT ` + attendanceColumns + `
		FROM attendance_records
		WHERE clock_in IS NOT NULL
		  AND clock_out IS NULL
		  AND date < $1
		ORDER BY date
	`

	rows, err := q.Query(ctx, query, before)
	if err != nil {
		return nil, fmt.Errorf("failed to list stale open sessions: %w", err)
	}
	defer rows.Close()

	var records []attendance.Attendance
	for rows.Next() {
		att, err := scanAttendance(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan attendance record: %w", err)
		}
		records = append(records, att)
	}

	return records, rows.Err()
}

// MarkAbsent implements attendance.AttendanceRepository.
func (a *attendanceRepository) MarkAbsent(ctx context.Context, employeeID, employeeName string, date time.Time) (bool, error) {
	q := GetQuerier(ctx, a.db)

	query := `
		INSERT INTO attendance_records (
			id, employee_id, employee_name, date, hours_worked, status, is_manual
		) VALUES (
			$1, $2, $3, $4, 0, $5, FALSE
		)
		ON CONFLICT (employee_id, date) DO NOTHING
	`

	tag, err := q.Exec(ctx, query, uuid.NewString(), employeeID, employeeName, date, attendance.StatusAbsent)
	if err != nil {
		return false, fmt.Errorf("failed to mark employee absent: %w", err)
	}

	return tag.RowsAffected() > 0, nil
}

func NewAttendanceRepository(db *database.DB) attendance.AttendanceRepository {
	return &attendanceRepository{db: db}
}
