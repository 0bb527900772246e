package cron

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/onsite-hr/attendance-backend-go/internal/domain/attendance"
	"github.com/onsite-hr/attendance-backend-go/internal/domain/employee"
)

// AttendanceJobs holds the nightly housekeeping jobs: closing sessions that
// were never clocked out and recording absences for employees with no record
// at all.
type AttendanceJobs struct {
	attendanceRepo attendance.AttendanceRepository
	employeeRepo   employee.EmployeeRepository
	loc            *time.Location
	nowFn          func() time.Time
}

func NewAttendanceJobs(
	attendanceRepo attendance.AttendanceRepository,
	employeeRepo employee.EmployeeRepository,
	loc *time.Location,
) *AttendanceJobs {
	return &AttendanceJobs{
		attendanceRepo: attendanceRepo,
		employeeRepo:   employeeRepo,
		loc:            loc,
		nowFn:          time.Now,
	}
}

func (j *AttendanceJobs) RegisterJobs(scheduler *Scheduler) {
	scheduler.AddJob("close_stale_sessions", 1*time.Hour, j.CloseStaleSessions)
	scheduler.AddJob("mark_absent_employees", 1*time.Hour, j.MarkAbsentEmployees)
}

func (j *AttendanceJobs) today() time.Time {
	now := j.nowFn().In(j.loc)
	return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, j.loc)
}

// CloseStaleSessions closes sessions from previous days that never clocked
// out, crediting hours up to the end of the session's day.
func (j *AttendanceJobs) CloseStaleSessions(ctx context.Context) error {
	today := j.today()

	stale, err := j.attendanceRepo.ListStaleOpenSessions(ctx, today)
	if err != nil {
		return fmt.Errorf("failed to list stale sessions: %w", err)
	}
	if len(stale) == 0 {
		return nil
	}

	closed := 0
	for _, session := range stale {
		day := session.Date.In(j.loc)
		endOfDay := time.Date(day.Year(), day.Month(), day.Day(), 23, 59, 59, 0, j.loc)

		hours := attendance.RoundHours(endOfDay.Sub(*session.ClockIn).Hours())
		status := attendance.Classify(hours)

		_, err := j.attendanceRepo.CompleteSession(ctx, session.EmployeeID, session.Date,
			*session.ClockIn, endOfDay, hours, status)
		if err != nil {
			slog.Error("Cron: failed to close stale session",
				"attendance_id", session.ID,
				"employee_id", session.EmployeeID,
				"error", err)
			continue
		}
		closed++
	}

	slog.Info("Cron: closed stale sessions", "count", closed)
	return nil
}

// MarkAbsentEmployees writes an Absent record for every employee with no
// attendance record for the previous day.
func (j *AttendanceJobs) MarkAbsentEmployees(ctx context.Context) error {
	yesterday := j.today().AddDate(0, 0, -1)

	missing, err := j.employeeRepo.ListWithoutAttendanceOn(ctx, yesterday)
	if err != nil {
		return fmt.Errorf("failed to list employees without attendance: %w", err)
	}
	if len(missing) == 0 {
		return nil
	}

	marked := 0
	for _, emp := range missing {
		written, err := j.attendanceRepo.MarkAbsent(ctx, emp.ID, emp.FullName, yesterday)
		if err != nil {
			slog.Error("Cron: failed to mark employee absent",
				"employee_id", emp.ID,
				"date", yesterday.Format("2006-01-02"),
				"error", err)
			continue
		}
		if written {
			marked++
		}
	}

	slog.Info("Cron: marked absent employees", "date", yesterday.Format("2006-01-02"), "count", marked)
	return nil
}
