package attendance

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/onsite-hr/attendance-backend-go/internal/domain/attendance"
	"github.com/onsite-hr/attendance-backend-go/internal/domain/employee"
	"github.com/onsite-hr/attendance-backend-go/internal/domain/user"
	"github.com/onsite-hr/attendance-backend-go/internal/pkg/database"
	"github.com/onsite-hr/attendance-backend-go/internal/pkg/geo"
	"github.com/onsite-hr/attendance-backend-go/internal/pkg/validator"
	"github.com/onsite-hr/attendance-backend-go/internal/repository/postgresql"
)

// lateArrivalHour is the local clock-in hour from which the daily summary
// counts an arrival as late. Unrelated to the hours-based Late status.
const lateArrivalHour = 10

// defaultStatsWindowDays is the trailing window for employee statistics when
// the caller gives no range.
const defaultStatsWindowDays = 30

type AttendanceServiceImpl struct {
	db postgresql.TxBeginner
	attendance.AttendanceRepository
	employee.EmployeeRepository
	fence geo.Fence
	loc   *time.Location
	nowFn func() time.Time
}

func NewAttendanceService(
	db *database.DB,
	attendanceRepo attendance.AttendanceRepository,
	employeeRepo employee.EmployeeRepository,
	fence geo.Fence,
	loc *time.Location,
) attendance.AttendanceService {
	return &AttendanceServiceImpl{
		db:                   db,
		AttendanceRepository: attendanceRepo,
		EmployeeRepository:   employeeRepo,
		fence:                fence,
		loc:                  loc,
		nowFn:                time.Now,
	}
}

// dayOf truncates a timestamp to its calendar day in the configured zone.
func (s *AttendanceServiceImpl) dayOf(t time.Time) time.Time {
	local := t.In(s.loc)
	return time.Date(local.Year(), local.Month(), local.Day(), 0, 0, 0, 0, s.loc)
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// timePtrToString safely converts a *time.Time to a display string.
func (s *AttendanceServiceImpl) timePtrToString(t *time.Time) *string {
	if t == nil {
		return nil
	}
	formatted := t.In(s.loc).Format("2006-01-02 15:04:05")
	return &formatted
}

func (s *AttendanceServiceImpl) mapAttendanceToResponse(att attendance.Attendance) attendance.AttendanceResponse {
	var location *attendance.LocationResponse
	if att.LocationName != nil || att.Latitude != nil || att.Longitude != nil || att.DistanceFromOffice != nil {
		location = &attendance.LocationResponse{
			Name:               att.LocationName,
			Latitude:           att.Latitude,
			Longitude:          att.Longitude,
			DistanceFromOffice: att.DistanceFromOffice,
		}
	}

	// The date is a calendar day, not an instant; it is formatted as stored
	// rather than converted through the zone.
	return attendance.AttendanceResponse{
		ID:           att.ID,
		EmployeeID:   att.EmployeeID,
		EmployeeName: att.EmployeeName,
		Date:         att.Date.Format("2006-01-02"),
		ClockIn:      s.timePtrToString(att.ClockIn),
		ClockOut:     s.timePtrToString(att.ClockOut),
		HoursWorked:  att.HoursWorked,
		Status:       string(att.Status),
		Location:     location,
		IsManual:     att.IsManual,
		CreatedAt:    att.CreatedAt.In(s.loc).Format("2006-01-02 15:04:05"),
		UpdatedAt:    att.UpdatedAt.In(s.loc).Format("2006-01-02 15:04:05"),
	}
}

// ClockIn implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) ClockIn(ctx context.Context, req attendance.ClockInRequest) (attendance.AttendanceResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.AttendanceResponse{}, err
	}

	actor, err := user.ActorFromContext(ctx)
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}

	// Geofence check comes before any record access; a denied location must
	// leave no trace.
	verdict := s.fence.Check(*req.Latitude, *req.Longitude)
	if !verdict.Allowed {
		return attendance.AttendanceResponse{}, &attendance.GeofenceError{
			DistanceMeters: verdict.DistanceMeters,
			RadiusMeters:   s.fence.RadiusMeters,
		}
	}

	now := s.nowFn().In(s.loc)
	var locationName *string
	if req.LocationName != "" {
		locationName = &req.LocationName
	}

	var created attendance.Attendance
	err = postgresql.WithTransaction(ctx, s.db, func(txCtx context.Context) error {
		emp, err := s.EmployeeRepository.GetByID(txCtx, actor.EmployeeID)
		if err != nil {
			return fmt.Errorf("failed to load employee for clock-in: %w", err)
		}

		rec := attendance.Attendance{
			EmployeeID:         actor.EmployeeID,
			EmployeeName:       emp.FullName,
			Date:               s.dayOf(now),
			ClockIn:            &now,
			Status:             attendance.StatusPresent,
			LocationName:       locationName,
			Latitude:           req.Latitude,
			Longitude:          req.Longitude,
			DistanceFromOffice: &verdict.DistanceMeters,
		}

		created, err = s.AttendanceRepository.StartSession(txCtx, rec)
		return err
	})
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}

	return s.mapAttendanceToResponse(created), nil
}

// ClockOut implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) ClockOut(ctx context.Context) (attendance.AttendanceResponse, error) {
	actor, err := user.ActorFromContext(ctx)
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}

	now := s.nowFn().In(s.loc)
	date := s.dayOf(now)

	rec, err := s.AttendanceRepository.GetByEmployeeAndDate(ctx, actor.EmployeeID, date)
	if err != nil {
		return attendance.AttendanceResponse{}, fmt.Errorf("failed to load today's record: %w", err)
	}
	if rec == nil || !rec.IsClockedIn() {
		return attendance.AttendanceResponse{}, attendance.ErrNoActiveSession
	}

	hours := attendance.RoundHours(now.Sub(*rec.ClockIn).Hours())
	status := attendance.Classify(hours)

	updated, err := s.AttendanceRepository.CompleteSession(ctx, actor.EmployeeID, date, *rec.ClockIn, now, hours, status)
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}

	return s.mapAttendanceToResponse(updated), nil
}

// DailySummary implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) DailySummary(ctx context.Context, dateStr string) (attendance.DailySummaryResponse, error) {
	actor, err := user.ActorFromContext(ctx)
	if err != nil {
		return attendance.DailySummaryResponse{}, err
	}

	date := s.dayOf(s.nowFn())
	if dateStr != "" {
		parsed, ok := validator.IsValidDate(dateStr)
		if !ok {
			return attendance.DailySummaryResponse{}, validator.ValidationErrors{{
				Field:   "date",
				Message: "date must be in YYYY-MM-DD format",
			}}
		}
		date = time.Date(parsed.Year(), parsed.Month(), parsed.Day(), 0, 0, 0, 0, s.loc)
	}

	var scope *string
	if !actor.IsAdmin() {
		scope = &actor.EmployeeID
	}

	records, err := s.AttendanceRepository.ListByDate(ctx, date, scope)
	if err != nil {
		return attendance.DailySummaryResponse{}, fmt.Errorf("failed to list daily records: %w", err)
	}

	summary := attendance.SummaryCounts{Total: len(records)}
	responses := make([]attendance.AttendanceResponse, 0, len(records))
	for _, rec := range records {
		switch rec.Status {
		case attendance.StatusPresent:
			summary.Present++
		case attendance.StatusAbsent:
			summary.Absent++
		}
		// Arrival-based lateness, counted independently of the status label.
		if rec.ClockIn != nil && rec.ClockIn.In(s.loc).Hour() >= lateArrivalHour {
			summary.Late++
		}
		responses = append(responses, s.mapAttendanceToResponse(rec))
	}

	return attendance.DailySummaryResponse{
		Date:    date.Format("2006-01-02"),
		Summary: summary,
		Records: responses,
	}, nil
}

// resolveTargetEmployee applies the uniform access policy: naming another
// employee is rejected for non-admins, an unnamed target falls back to the
// actor for non-admins and to no scope (all employees) for admins.
func resolveTargetEmployee(actor user.Actor, requested *string) (*string, error) {
	if requested != nil && *requested != "" {
		if !actor.CanAccessEmployee(*requested) {
			return nil, user.ErrForbidden
		}
		return requested, nil
	}
	if actor.IsAdmin() {
		return nil, nil
	}
	own := actor.EmployeeID
	return &own, nil
}

// History implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) History(ctx context.Context, req attendance.HistoryRequest) (attendance.HistoryResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.HistoryResponse{}, err
	}

	actor, err := user.ActorFromContext(ctx)
	if err != nil {
		return attendance.HistoryResponse{}, err
	}

	target, err := resolveTargetEmployee(actor, req.EmployeeID)
	if err != nil {
		return attendance.HistoryResponse{}, err
	}

	filter := attendance.ListFilter{
		EmployeeID: target,
		Page:       req.Page,
		Limit:      req.Limit,
	}
	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.Limit < 1 {
		filter.Limit = 20
	}
	if req.StartDate != nil && *req.StartDate != "" {
		parsed, _ := validator.IsValidDate(*req.StartDate)
		start := time.Date(parsed.Year(), parsed.Month(), parsed.Day(), 0, 0, 0, 0, s.loc)
		filter.StartDate = &start
	}
	if req.EndDate != nil && *req.EndDate != "" {
		parsed, _ := validator.IsValidDate(*req.EndDate)
		end := time.Date(parsed.Year(), parsed.Month(), parsed.Day(), 0, 0, 0, 0, s.loc)
		filter.EndDate = &end
	}
	if req.Status != nil && *req.Status != "" {
		status, err := attendance.ParseStatus(*req.Status)
		if err != nil {
			return attendance.HistoryResponse{}, err
		}
		filter.Status = &status
	}

	records, total, err := s.AttendanceRepository.List(ctx, filter)
	if err != nil {
		return attendance.HistoryResponse{}, fmt.Errorf("failed to list attendance history: %w", err)
	}

	responses := make([]attendance.AttendanceResponse, 0, len(records))
	for _, rec := range records {
		responses = append(responses, s.mapAttendanceToResponse(rec))
	}

	return attendance.HistoryResponse{
		Total:   total,
		Page:    filter.Page,
		Pages:   int(math.Ceil(float64(total) / float64(filter.Limit))),
		Records: responses,
	}, nil
}

// EmployeeStats implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) EmployeeStats(ctx context.Context, req attendance.StatsRequest) (attendance.EmployeeStatsResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.EmployeeStatsResponse{}, err
	}

	actor, err := user.ActorFromContext(ctx)
	if err != nil {
		return attendance.EmployeeStatsResponse{}, err
	}
	if !actor.CanAccessEmployee(req.EmployeeID) {
		return attendance.EmployeeStatsResponse{}, user.ErrForbidden
	}

	emp, err := s.EmployeeRepository.GetByID(ctx, req.EmployeeID)
	if err != nil {
		return attendance.EmployeeStatsResponse{}, err
	}

	end := s.dayOf(s.nowFn())
	if req.EndDate != nil && *req.EndDate != "" {
		parsed, _ := validator.IsValidDate(*req.EndDate)
		end = time.Date(parsed.Year(), parsed.Month(), parsed.Day(), 0, 0, 0, 0, s.loc)
	}
	start := end.AddDate(0, 0, -defaultStatsWindowDays)
	if req.StartDate != nil && *req.StartDate != "" {
		parsed, _ := validator.IsValidDate(*req.StartDate)
		start = time.Date(parsed.Year(), parsed.Month(), parsed.Day(), 0, 0, 0, 0, s.loc)
	}

	stats, err := s.AttendanceRepository.GetStats(ctx, req.EmployeeID, start, end)
	if err != nil {
		return attendance.EmployeeStatsResponse{}, err
	}

	page := req.Page
	if page < 1 {
		page = 1
	}
	limit := req.Limit
	if limit < 1 {
		limit = 20
	}

	records, total, err := s.AttendanceRepository.List(ctx, attendance.ListFilter{
		EmployeeID: &req.EmployeeID,
		StartDate:  &start,
		EndDate:    &end,
		Page:       page,
		Limit:      limit,
	})
	if err != nil {
		return attendance.EmployeeStatsResponse{}, fmt.Errorf("failed to list employee records: %w", err)
	}

	var attendanceRate float64
	if stats.TotalRecords > 0 {
		attendanceRate = round2(float64(stats.PresentDays) / float64(stats.TotalRecords) * 100)
	}

	responses := make([]attendance.AttendanceResponse, 0, len(records))
	for _, rec := range records {
		responses = append(responses, s.mapAttendanceToResponse(rec))
	}

	return attendance.EmployeeStatsResponse{
		Employee: attendance.EmployeeInfo{
			ID:       emp.ID,
			FullName: emp.FullName,
			Email:    emp.Email,
			Position: emp.Position,
		},
		Statistics: attendance.Statistics{
			TotalRecords:   stats.TotalRecords,
			PresentDays:    stats.PresentDays,
			AttendanceRate: attendanceRate,
			AvgHoursWorked: round2(stats.AvgHoursWorked),
			CurrentPage:    page,
			TotalPages:     int(math.Ceil(float64(total) / float64(limit))),
		},
		Records: responses,
	}, nil
}

// CreateManualEntry implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) CreateManualEntry(ctx context.Context, req attendance.ManualEntryRequest) (attendance.AttendanceResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.AttendanceResponse{}, err
	}

	actor, err := user.ActorFromContext(ctx)
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}
	if !actor.IsAdmin() {
		return attendance.AttendanceResponse{}, user.ErrAdminPrivilegeRequired
	}

	parsed, _ := validator.IsValidDate(req.Date)
	date := time.Date(parsed.Year(), parsed.Month(), parsed.Day(), 0, 0, 0, 0, s.loc)

	status, err := attendance.ParseStatus(req.Status)
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}

	var clockIn, clockOut *time.Time
	if req.ClockIn != nil {
		t, _ := attendance.ResolveClockTime(*req.ClockIn, date, s.loc)
		clockIn = &t
	}
	if req.ClockOut != nil {
		t, _ := attendance.ResolveClockTime(*req.ClockOut, date, s.loc)
		clockOut = &t
	}

	// Hours are computed exactly once, at creation, and only when both ends
	// of the session are supplied.
	var hours float64
	if clockIn != nil && clockOut != nil {
		if !clockOut.After(*clockIn) {
			return attendance.AttendanceResponse{}, validator.ValidationErrors{{
				Field:   "clock_out",
				Message: "clock_out must be after clock_in",
			}}
		}
		hours = attendance.RoundHours(clockOut.Sub(*clockIn).Hours())
	}

	rec := attendance.Attendance{
		EmployeeID:  req.EmployeeID,
		Date:        date,
		ClockIn:     clockIn,
		ClockOut:    clockOut,
		HoursWorked: hours,
		Status:      status,
		IsManual:    true,
	}
	if req.Location != nil {
		if req.Location.Name != "" {
			name := req.Location.Name
			rec.LocationName = &name
		}
		rec.Latitude = req.Location.Latitude
		rec.Longitude = req.Location.Longitude
		if req.Location.Latitude != nil && req.Location.Longitude != nil {
			verdict := s.fence.Check(*req.Location.Latitude, *req.Location.Longitude)
			rec.DistanceFromOffice = &verdict.DistanceMeters
		}
	}

	var created attendance.Attendance
	err = postgresql.WithTransaction(ctx, s.db, func(txCtx context.Context) error {
		emp, err := s.EmployeeRepository.GetByID(txCtx, req.EmployeeID)
		if err != nil {
			return err
		}
		rec.EmployeeName = emp.FullName

		created, err = s.AttendanceRepository.CreateManual(txCtx, rec)
		return err
	})
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}

	return s.mapAttendanceToResponse(created), nil
}

// TodayStatus implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) TodayStatus(ctx context.Context, employeeID string) (attendance.TodayStatusResponse, error) {
	actor, err := user.ActorFromContext(ctx)
	if err != nil {
		return attendance.TodayStatusResponse{}, err
	}
	if !actor.CanAccessEmployee(employeeID) {
		return attendance.TodayStatusResponse{}, user.ErrForbidden
	}

	rec, err := s.AttendanceRepository.GetByEmployeeAndDate(ctx, employeeID, s.dayOf(s.nowFn()))
	if err != nil {
		return attendance.TodayStatusResponse{}, fmt.Errorf("failed to load today's record: %w", err)
	}
	if rec == nil {
		return attendance.TodayStatusResponse{}, nil
	}

	return attendance.TodayStatusResponse{
		IsClockedIn: rec.IsClockedIn(),
		ClockIn:     s.timePtrToString(rec.ClockIn),
		ClockOut:    s.timePtrToString(rec.ClockOut),
	}, nil
}
