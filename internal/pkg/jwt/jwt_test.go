package jwt

import (
	"context"
	"testing"
	"time"

	"github.com/onsite-hr/attendance-backend-go/internal/domain/user"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateAccessToken_ClaimShape(t *testing.T) {
	svc := NewJWTService("test-secret-key", "1h")

	tokenString, expiresAt, err := svc.GenerateAccessToken("emp-1", user.RoleAdmin)
	require.NoError(t, err)
	assert.Greater(t, expiresAt, time.Now().Unix())

	token, err := svc.JWTAuth().Decode(tokenString)
	require.NoError(t, err)

	claims, err := token.AsMap(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "emp-1", claims["employee_id"])
	assert.Equal(t, "admin", claims["role"])
	assert.Equal(t, "access", claims["type"])
}

func TestGenerateAccessToken_InvalidExpiration(t *testing.T) {
	svc := NewJWTService("test-secret-key", "soon")

	_, _, err := svc.GenerateAccessToken("emp-1", user.RoleEmployee)
	require.Error(t, err)
}
