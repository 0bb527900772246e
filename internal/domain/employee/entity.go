package employee

import "time"

// Employee is owned by the employee management system; the attendance
// subsystem only reads it, for existence checks and display details.
type Employee struct {
	ID        string
	FullName  string
	Email     string
	Position  *string
	CreatedAt time.Time
	UpdatedAt time.Time
}
