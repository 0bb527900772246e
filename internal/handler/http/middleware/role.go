package middleware

import (
	"net/http"

	"github.com/onsite-hr/attendance-backend-go/internal/domain/user"
	"github.com/onsite-hr/attendance-backend-go/internal/handler/http/response"
)

// AdminOnly requires the admin role
func AdminOnly(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		actor, err := user.ActorFromContext(r.Context())
		if err != nil {
			response.HandleError(w, err)
			return
		}

		if !actor.IsAdmin() {
			response.HandleError(w, user.ErrAdminPrivilegeRequired)
			return
		}

		next.ServeHTTP(w, r)
	})
}

// EmployeeOnly requires the employee role. Clock events are tied to the
// acting employee, so admins go through the manual entry endpoint instead.
func EmployeeOnly(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		actor, err := user.ActorFromContext(r.Context())
		if err != nil {
			response.HandleError(w, err)
			return
		}

		if actor.Role != user.RoleEmployee {
			response.HandleError(w, user.ErrEmployeeRoleRequired)
			return
		}

		next.ServeHTTP(w, r)
	})
}
