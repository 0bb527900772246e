package user

import (
	"context"
	"fmt"

	"github.com/go-chi/jwtauth/v5"
)

// ActorFromContext extracts the authenticated actor from the jwtauth claims
// placed on the request context by the token verifier.
func ActorFromContext(ctx context.Context) (Actor, error) {
	_, claims, err := jwtauth.FromContext(ctx)
	if err != nil {
		return Actor{}, fmt.Errorf("failed to extract claims from context: %w", err)
	}

	employeeID, ok := claims["employee_id"].(string)
	if !ok || employeeID == "" {
		return Actor{}, fmt.Errorf("employee_id claim is missing or invalid: %w", ErrInvalidToken)
	}

	roleStr, ok := claims["role"].(string)
	if !ok {
		return Actor{}, fmt.Errorf("role claim is missing or invalid: %w", ErrInvalidToken)
	}

	role, err := ParseRole(roleStr)
	if err != nil {
		return Actor{}, err
	}

	return Actor{EmployeeID: employeeID, Role: role}, nil
}
