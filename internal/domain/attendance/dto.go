package attendance

import (
	"time"

	"github.com/onsite-hr/attendance-backend-go/internal/pkg/validator"
)

// ========================================
// ATTENDANCE DTOs
// ========================================

type ClockInRequest struct {
	Latitude     *float64 `json:"latitude"`
	Longitude    *float64 `json:"longitude"`
	LocationName string   `json:"location_name"`
}

func (r *ClockInRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.Latitude == nil {
		errs = append(errs, validator.ValidationError{
			Field:   "latitude",
			Message: "latitude is required",
		})
	} else if *r.Latitude < -90 || *r.Latitude > 90 {
		errs = append(errs, validator.ValidationError{
			Field:   "latitude",
			Message: "latitude must be between -90 and 90",
		})
	}

	if r.Longitude == nil {
		errs = append(errs, validator.ValidationError{
			Field:   "longitude",
			Message: "longitude is required",
		})
	} else if *r.Longitude < -180 || *r.Longitude > 180 {
		errs = append(errs, validator.ValidationError{
			Field:   "longitude",
			Message: "longitude must be between -180 and 180",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type ManualLocation struct {
	Name      string   `json:"name"`
	Latitude  *float64 `json:"latitude"`
	Longitude *float64 `json:"longitude"`
}

type ManualEntryRequest struct {
	EmployeeID string          `json:"employee_id"`
	Date       string          `json:"date"`   // YYYY-MM-DD
	Status     string          `json:"status"` // Present, Absent, HalfDay, Late
	ClockIn    *string         `json:"clock_in,omitempty"`
	ClockOut   *string         `json:"clock_out,omitempty"`
	Location   *ManualLocation `json:"location,omitempty"`
}

func (r *ManualEntryRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{
			Field:   "employee_id",
			Message: "employee_id is required",
		})
	}

	if validator.IsEmpty(r.Date) {
		errs = append(errs, validator.ValidationError{
			Field:   "date",
			Message: "date is required",
		})
	} else if _, ok := validator.IsValidDate(r.Date); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "date",
			Message: "date must be in YYYY-MM-DD format",
		})
	}

	if validator.IsEmpty(r.Status) {
		errs = append(errs, validator.ValidationError{
			Field:   "status",
			Message: "status is required",
		})
	} else if !validator.IsInSlice(r.Status, Statuses()) {
		errs = append(errs, validator.ValidationError{
			Field:   "status",
			Message: "status must be one of Present, Absent, HalfDay, Late",
		})
	}

	if r.ClockIn != nil && !isValidClockTime(*r.ClockIn) {
		errs = append(errs, validator.ValidationError{
			Field:   "clock_in",
			Message: "clock_in must be HH:MM, HH:MM:SS or YYYY-MM-DD HH:MM:SS",
		})
	}
	if r.ClockOut != nil && !isValidClockTime(*r.ClockOut) {
		errs = append(errs, validator.ValidationError{
			Field:   "clock_out",
			Message: "clock_out must be HH:MM, HH:MM:SS or YYYY-MM-DD HH:MM:SS",
		})
	}

	if r.Location != nil {
		if r.Location.Latitude != nil && (*r.Location.Latitude < -90 || *r.Location.Latitude > 90) {
			errs = append(errs, validator.ValidationError{
				Field:   "location.latitude",
				Message: "latitude must be between -90 and 90",
			})
		}
		if r.Location.Longitude != nil && (*r.Location.Longitude < -180 || *r.Location.Longitude > 180) {
			errs = append(errs, validator.ValidationError{
				Field:   "location.longitude",
				Message: "longitude must be between -180 and 180",
			})
		}
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

func isValidClockTime(s string) bool {
	if _, ok := validator.ParseTimeOfDay(s); ok {
		return true
	}
	_, err := time.Parse("2006-01-02 15:04:05", s)
	return err == nil
}

// ResolveClockTime combines a clock time string with the record's calendar
// day in the given zone. Full datetimes are taken as-is in that zone.
func ResolveClockTime(s string, date time.Time, loc *time.Location) (time.Time, bool) {
	if t, ok := validator.ParseTimeOfDay(s); ok {
		return time.Date(date.Year(), date.Month(), date.Day(),
			t.Hour(), t.Minute(), t.Second(), 0, loc), true
	}
	if t, err := time.ParseInLocation("2006-01-02 15:04:05", s, loc); err == nil {
		return t, true
	}
	return time.Time{}, false
}

type HistoryRequest struct {
	StartDate  *string `json:"start_date,omitempty"` // YYYY-MM-DD
	EndDate    *string `json:"end_date,omitempty"`   // YYYY-MM-DD
	Status     *string `json:"status,omitempty"`
	EmployeeID *string `json:"employee_id,omitempty"`

	Page  int `json:"page"`
	Limit int `json:"limit"`
}

func (r *HistoryRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.StartDate != nil && *r.StartDate != "" {
		if _, ok := validator.IsValidDate(*r.StartDate); !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "start_date",
				Message: "start_date must be in YYYY-MM-DD format",
			})
		}
	}
	if r.EndDate != nil && *r.EndDate != "" {
		if _, ok := validator.IsValidDate(*r.EndDate); !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "end_date",
				Message: "end_date must be in YYYY-MM-DD format",
			})
		}
	}
	if r.Status != nil && *r.Status != "" && !validator.IsInSlice(*r.Status, Statuses()) {
		errs = append(errs, validator.ValidationError{
			Field:   "status",
			Message: "status must be one of Present, Absent, HalfDay, Late",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type StatsRequest struct {
	EmployeeID string  `json:"employee_id"`
	StartDate  *string `json:"start_date,omitempty"` // YYYY-MM-DD
	EndDate    *string `json:"end_date,omitempty"`   // YYYY-MM-DD

	Page  int `json:"page"`
	Limit int `json:"limit"`
}

func (r *StatsRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{
			Field:   "employee_id",
			Message: "employee_id is required",
		})
	}
	if r.StartDate != nil && *r.StartDate != "" {
		if _, ok := validator.IsValidDate(*r.StartDate); !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "start_date",
				Message: "start_date must be in YYYY-MM-DD format",
			})
		}
	}
	if r.EndDate != nil && *r.EndDate != "" {
		if _, ok := validator.IsValidDate(*r.EndDate); !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "end_date",
				Message: "end_date must be in YYYY-MM-DD format",
			})
		}
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// ========================================
// RESPONSES
// ========================================

type LocationResponse struct {
	Name               *string  `json:"name,omitempty"`
	Latitude           *float64 `json:"latitude,omitempty"`
	Longitude          *float64 `json:"longitude,omitempty"`
	DistanceFromOffice *float64 `json:"distance_from_office,omitempty"`
}

type AttendanceResponse struct {
	ID           string            `json:"id"`
	EmployeeID   string            `json:"employee_id"`
	EmployeeName string            `json:"employee_name"`
	Date         string            `json:"date"`
	ClockIn      *string           `json:"clock_in,omitempty"`
	ClockOut     *string           `json:"clock_out,omitempty"`
	HoursWorked  float64           `json:"hours_worked"`
	Status       string            `json:"status"`
	Location     *LocationResponse `json:"location,omitempty"`
	IsManual     bool              `json:"is_manual"`
	CreatedAt    string            `json:"created_at"`
	UpdatedAt    string            `json:"updated_at"`
}

type SummaryCounts struct {
	Total   int `json:"total"`
	Present int `json:"present"`
	Absent  int `json:"absent"`
	Late    int `json:"late"` // arrival-based: clock-in local hour >= 10
}

type DailySummaryResponse struct {
	Date    string               `json:"date"`
	Summary SummaryCounts        `json:"summary"`
	Records []AttendanceResponse `json:"records"`
}

type HistoryResponse struct {
	Total   int64                `json:"total"`
	Page    int                  `json:"page"`
	Pages   int                  `json:"pages"`
	Records []AttendanceResponse `json:"records"`
}

type EmployeeInfo struct {
	ID       string  `json:"id"`
	FullName string  `json:"full_name"`
	Email    string  `json:"email"`
	Position *string `json:"position,omitempty"`
}

type Statistics struct {
	TotalRecords   int64   `json:"total_records"`
	PresentDays    int64   `json:"present_days"`
	AttendanceRate float64 `json:"attendance_rate"`
	AvgHoursWorked float64 `json:"avg_hours_worked"`
	CurrentPage    int     `json:"current_page"`
	TotalPages     int     `json:"total_pages"`
}

type EmployeeStatsResponse struct {
	Employee   EmployeeInfo         `json:"employee"`
	Statistics Statistics           `json:"statistics"`
	Records    []AttendanceResponse `json:"records"`
}

type TodayStatusResponse struct {
	IsClockedIn bool    `json:"is_clocked_in"`
	ClockIn     *string `json:"clock_in,omitempty"`
	ClockOut    *string `json:"clock_out,omitempty"`
}
