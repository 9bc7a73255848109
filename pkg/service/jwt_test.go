package service

import (
	"testing"
	"time"

	apperrors "bathhouse-orders/pkg/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateAndValidateTokens(t *testing.T) {
	svc := NewJWTService("test-secret", time.Minute, time.Hour)

	access, refresh, err := svc.GenerateTokens("user-1")
	require.NoError(t, err)
	require.NotEmpty(t, access)
	require.NotEmpty(t, refresh)

	accessClaims, err := svc.ValidateToken(access)
	require.NoError(t, err)
	assert.Equal(t, "user-1", accessClaims.UserID)
	assert.False(t, accessClaims.IsRefreshToken)

	refreshClaims, err := svc.ValidateToken(refresh)
	require.NoError(t, err)
	assert.True(t, refreshClaims.IsRefreshToken)
}

func TestValidateTokenWrongSecret(t *testing.T) {
	issuer := NewJWTService("secret-a", time.Minute, time.Hour)
	verifier := NewJWTService("secret-b", time.Minute, time.Hour)

	access, _, err := issuer.GenerateTokens("user-1")
	require.NoError(t, err)

	_, err = verifier.ValidateToken(access)
	assert.ErrorIs(t, err, apperrors.ErrInvalidToken)
}

func TestValidateExpiredToken(t *testing.T) {
	svc := NewJWTService("test-secret", -time.Minute, -time.Minute)

	access, _, err := svc.GenerateTokens("user-1")
	require.NoError(t, err)

	_, err = svc.ValidateToken(access)
	assert.Error(t, err)
}

func TestValidateGarbage(t *testing.T) {
	svc := NewJWTService("test-secret", time.Minute, time.Hour)
	_, err := svc.ValidateToken("не-токен")
	assert.ErrorIs(t, err, apperrors.ErrInvalidToken)
}
