package response

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/onsite-hr/attendance-backend-go/internal/domain/attendance"
	"github.com/onsite-hr/attendance-backend-go/internal/domain/employee"
	"github.com/onsite-hr/attendance-backend-go/internal/domain/user"
	"github.com/onsite-hr/attendance-backend-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses.
func HandleError(w http.ResponseWriter, err error) {
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		BadRequest(w, "Validation failed", validationErrs.ToMap())
		return
	}

	var geofenceErr *attendance.GeofenceError
	if errors.As(err, &geofenceErr) {
		ForbiddenWithDetails(w, geofenceErr.Error(), map[string]string{
			"distance_from_office": fmt.Sprintf("%.0f", geofenceErr.DistanceMeters),
			"allowed_radius":       fmt.Sprintf("%.0f", geofenceErr.RadiusMeters),
		})
		return
	}

	switch {
	case errors.Is(err, attendance.ErrAlreadyClockedIn),
		errors.Is(err, attendance.ErrNoActiveSession),
		errors.Is(err, attendance.ErrDuplicateRecord):
		Conflict(w, err.Error())
	case errors.Is(err, attendance.ErrAttendanceNotFound),
		errors.Is(err, employee.ErrEmployeeNotFound):
		NotFound(w, err.Error())
	case errors.Is(err, user.ErrForbidden),
		errors.Is(err, user.ErrAdminPrivilegeRequired),
		errors.Is(err, user.ErrEmployeeRoleRequired):
		Forbidden(w, err.Error())
	case errors.Is(err, user.ErrInvalidToken),
		errors.Is(err, user.ErrUnknownRole):
		Unauthorized(w, err.Error())
	default:
		slog.Error("unhandled error", "error", err)
		InternalServerError(w, "An unexpected error occurred")
	}
}
