package user

import "fmt"

// Role is the closed set of actor roles this subsystem understands. Roles
// arrive as token claims; anything outside the set is rejected at the
// boundary rather than silently treated as a regular employee.
type Role string

const (
	RoleEmployee Role = "employee" // Can clock in/out and view own records
	RoleAdmin    Role = "admin"    // Full access, including manual entries
)

// ParseRole converts a claim string into a Role, rejecting unknown values.
func ParseRole(s string) (Role, error) {
	switch Role(s) {
	case RoleEmployee:
		return RoleEmployee, nil
	case RoleAdmin:
		return RoleAdmin, nil
	default:
		return "", fmt.Errorf("unknown role %q: %w", s, ErrUnknownRole)
	}
}

// Actor is the authenticated identity attached to a request. Identity
// verification itself happens outside this subsystem; the token claims are
// trusted once the signature checks out.
type Actor struct {
	EmployeeID string
	Role       Role
}

// IsAdmin checks if the actor holds the admin role.
func (a Actor) IsAdmin() bool {
	return a.Role == RoleAdmin
}

// CanAccessEmployee checks if the actor may read records belonging to the
// given employee.
func (a Actor) CanAccessEmployee(employeeID string) bool {
	return a.IsAdmin() || a.EmployeeID == employeeID
}
