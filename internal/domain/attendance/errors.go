package attendance

import (
	"errors"
	"fmt"
)

// Attendance domain errors
var (
	// State machine conflicts
	ErrAlreadyClockedIn = errors.New("you are already clocked in today")
	ErrNoActiveSession  = errors.New("no active clock-in session found")
	ErrDuplicateRecord  = errors.New("an attendance record already exists for this employee and date")

	// General errors
	ErrAttendanceNotFound = errors.New("attendance record not found")
)

// GeofenceError reports a clock-in attempt from outside the allowed radius.
// It carries the computed distance so the caller can display how far away
// the employee was. No record is written when this error is returned.
type GeofenceError struct {
	DistanceMeters float64
	RadiusMeters   float64
}

func (e *GeofenceError) Error() string {
	return fmt.Sprintf("you are outside the allowed radius: %.0fm from office (allowed %.0fm)",
		e.DistanceMeters, e.RadiusMeters)
}
