package jwttoken

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"aurum/internal/platform/middleware"
	dErrors "aurum/pkg/domain-errors"
)

var tokenService = NewService("test-signing-key", "test-issuer")

func Test_Generate(t *testing.T) {
	token, claims, err := tokenService.Generate("cust-1", "Ravi Kumar", middleware.RoleCustomer, time.Hour)
	require.NoError(t, err)
	require.NotEmpty(t, token)
	require.NotEmpty(t, claims.SessionID)

	parsed, err := tokenService.Validate(token)
	require.NoError(t, err)
	assert.Equal(t, "cust-1", parsed.ActorID)
	assert.Equal(t, "Ravi Kumar", parsed.ActorName)
	assert.Equal(t, middleware.RoleCustomer, parsed.Role)
	assert.Equal(t, claims.SessionID, parsed.SessionID)
	assert.WithinDuration(t, time.Now().Add(time.Hour), parsed.ExpiresAt.Time, time.Minute)
}

func Test_Validate_InvalidToken(t *testing.T) {
	_, err := tokenService.Validate("invalid-token-string")
	require.ErrorIs(t, err, dErrors.New(dErrors.CodeUnauthorized, "invalid token"))
}

func Test_Validate_ExpiredToken(t *testing.T) {
	token, _, err := tokenService.Generate("off-1", "Anita Sharma", middleware.RoleOfficer, -time.Hour)
	require.NoError(t, err)

	_, err = tokenService.Validate(token)
	require.ErrorIs(t, err, dErrors.New(dErrors.CodeUnauthorized, "token has expired"))
}

func Test_Validate_WrongKey(t *testing.T) {
	other := NewService("another-key", "test-issuer")
	token, _, err := other.Generate("off-1", "Anita Sharma", middleware.RoleOfficer, time.Hour)
	require.NoError(t, err)

	_, err = tokenService.Validate(token)
	require.ErrorIs(t, err, dErrors.New(dErrors.CodeUnauthorized, "invalid token"))
}

func Test_Adapter(t *testing.T) {
	token, _, err := tokenService.Generate("cust-1", "Ravi Kumar", middleware.RoleCustomer, time.Hour)
	require.NoError(t, err)

	claims, err := NewAdapter(tokenService).ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, "cust-1", claims.ActorID)
	assert.Equal(t, middleware.RoleCustomer, claims.Role)
}
