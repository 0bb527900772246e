package attendance

import (
	"context"
	"time"
)

// ListFilter is the resolved set of query constraints a caller may apply to
// the history listing. The service pins EmployeeID before the filter reaches
// the store, so authorization never depends on repository behavior.
type ListFilter struct {
	EmployeeID *string
	StartDate  *time.Time
	EndDate    *time.Time
	Status     *Status
	Page       int
	Limit      int
}

// Stats is the aggregate a single query computes over an employee's records
// in a date range.
type Stats struct {
	TotalRecords   int64
	PresentDays    int64
	AvgHoursWorked float64
}

// AttendanceRepository defines data access for attendance records. The
// one-record-per-(employee, day) invariant and the clock-in/out state
// machine are enforced with atomic conditional writes backed by a unique
// constraint on (employee_id, date); there is no find-then-create window.
type AttendanceRepository interface {
	// StartSession creates the day's record, or resets an existing one whose
	// session is closed. Returns ErrAlreadyClockedIn if the record is
	// currently clocked in.
	StartSession(ctx context.Context, rec Attendance) (Attendance, error)

	// CompleteSession closes the open session matching the expected clock-in
	// timestamp. Returns ErrNoActiveSession if no such open session exists
	// (including when a concurrent transition won the race).
	CompleteSession(ctx context.Context, employeeID string, date time.Time, expectedClockIn time.Time,
		clockOut time.Time, hoursWorked float64, status Status) (Attendance, error)

	// CreateManual inserts an admin-created historical record. Returns
	// ErrDuplicateRecord when any record already exists for that day.
	CreateManual(ctx context.Context, rec Attendance) (Attendance, error)

	// GetByEmployeeAndDate retrieves the day's record, or nil when absent.
	GetByEmployeeAndDate(ctx context.Context, employeeID string, date time.Time) (*Attendance, error)

	// ListByDate retrieves all records for a calendar day, optionally scoped
	// to one employee.
	ListByDate(ctx context.Context, date time.Time, employeeID *string) ([]Attendance, error)

	// List retrieves records matching the filter, newest date first, with
	// the total count before pagination.
	List(ctx context.Context, filter ListFilter) ([]Attendance, int64, error)

	// GetStats aggregates one employee's records over a date range.
	GetStats(ctx context.Context, employeeID string, startDate, endDate time.Time) (Stats, error)

	// ListStaleOpenSessions retrieves sessions still open on days before the
	// given date.
	ListStaleOpenSessions(ctx context.Context, before time.Time) ([]Attendance, error)

	// MarkAbsent inserts an Absent record for the day unless any record
	// already exists. Reports whether a row was written.
	MarkAbsent(ctx context.Context, employeeID, employeeName string, date time.Time) (bool, error)
}
