package attendance

import (
	"time"
)

// Attendance is one work session for one employee on one calendar day.
// At most one record exists per (EmployeeID, Date); the uniqueness is
// enforced by the store.
type Attendance struct {
	ID           string
	EmployeeID   string
	EmployeeName string // denormalized snapshot taken at creation, not re-synced
	Date         time.Time
	ClockIn      *time.Time
	ClockOut     *time.Time
	HoursWorked  float64
	Status       Status

	// Location captured at clock-in; empty for manual entries without one.
	LocationName       *string
	Latitude           *float64
	Longitude          *float64
	DistanceFromOffice *float64

	IsManual  bool
	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsClockedIn reports whether the record has an open session.
func (a *Attendance) IsClockedIn() bool {
	return a.ClockIn != nil && a.ClockOut == nil
}
