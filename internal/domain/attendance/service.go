package attendance

import (
	"context"
)

// AttendanceService defines business logic for attendance operations. The
// acting identity is read from the request context; employee-scoped
// operations act on the caller, admin scope widens where noted.
type AttendanceService interface {
	// ClockIn starts the caller's work session after geofence validation
	ClockIn(ctx context.Context, req ClockInRequest) (AttendanceResponse, error)

	// ClockOut closes the caller's open session and derives the status
	ClockOut(ctx context.Context) (AttendanceResponse, error)

	// DailySummary reports one calendar day: all employees for admins, the
	// caller's own record otherwise
	DailySummary(ctx context.Context, date string) (DailySummaryResponse, error)

	// History lists records by date descending with pagination
	History(ctx context.Context, req HistoryRequest) (HistoryResponse, error)

	// EmployeeStats aggregates one employee's records over a window
	// (trailing 30 days when unspecified)
	EmployeeStats(ctx context.Context, req StatsRequest) (EmployeeStatsResponse, error)

	// CreateManualEntry records a historical day bypassing live clock events
	CreateManualEntry(ctx context.Context, req ManualEntryRequest) (AttendanceResponse, error)

	// TodayStatus reports whether an employee currently has an open session
	TodayStatus(ctx context.Context, employeeID string) (TodayStatusResponse, error)
}
