package attendance

import (
	"fmt"
	"math"
)

// Status classifies a day's work. For completed sessions it is derived from
// total hours worked; "Late" here means a short day (4-8h), which is
// unrelated to the arrival-based late count in the daily summary. The two
// are deliberately kept apart.
type Status string

const (
	StatusPresent Status = "Present"
	StatusAbsent  Status = "Absent"
	StatusHalfDay Status = "HalfDay"
	StatusLate    Status = "Late"
)

// Statuses lists all valid status labels.
func Statuses() []string {
	return []string{
		string(StatusPresent),
		string(StatusAbsent),
		string(StatusHalfDay),
		string(StatusLate),
	}
}

// ParseStatus converts a label into a Status, rejecting unknown values.
func ParseStatus(s string) (Status, error) {
	switch Status(s) {
	case StatusPresent, StatusAbsent, StatusHalfDay, StatusLate:
		return Status(s), nil
	default:
		return "", fmt.Errorf("invalid status %q", s)
	}
}

// Classify derives the status for a completed session from hours worked.
// Brackets are closed at the lower end: exactly 4.0 is Late, exactly 8.0 is
// Present.
func Classify(hoursWorked float64) Status {
	switch {
	case hoursWorked < 4:
		return StatusHalfDay
	case hoursWorked < 8:
		return StatusLate
	default:
		return StatusPresent
	}
}

// RoundHours rounds a duration in hours to 2 decimal places, the precision
// HoursWorked is stored at.
func RoundHours(hours float64) float64 {
	return math.Round(hours*100) / 100
}
