package employee

import (
	"context"
	"time"
)

// EmployeeRepository defines read access to externally-owned employee data.
type EmployeeRepository interface {
	// GetByID retrieves an employee, returning ErrEmployeeNotFound when the
	// id does not exist
	GetByID(ctx context.Context, id string) (Employee, error)

	// ListWithoutAttendanceOn retrieves employees that have no attendance
	// record for the given calendar day
	ListWithoutAttendanceOn(ctx context.Context, date time.Time) ([]Employee, error)
}
