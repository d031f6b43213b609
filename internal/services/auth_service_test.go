package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mtdstore-backend/internal/models"
)

func TestGenerateAndValidateToken(t *testing.T) {
	svc := NewAuthService("test-secret", 3600)

	token, err := svc.GenerateToken(models.User{Username: "mriby", Role: models.UserRoleBuyer})
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := svc.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, "mriby", claims.Username)
	assert.Equal(t, "buyer", claims.Role)
	assert.Equal(t, "mtd-store", claims.Issuer)
	assert.WithinDuration(t, time.Now().Add(time.Hour), claims.ExpiresAt.Time, 5*time.Second)
}

func TestValidateTokenWrongSecret(t *testing.T) {
	token, err := NewAuthService("secret-one", 3600).GenerateToken(models.User{Username: "mriby", Role: models.UserRoleBuyer})
	require.NoError(t, err)

	_, err = NewAuthService("secret-two", 3600).ValidateToken(token)
	assert.Error(t, err)
}

func TestValidateExpiredToken(t *testing.T) {
	svc := NewAuthService("test-secret", -60)

	token, err := svc.GenerateToken(models.User{Username: "mriby", Role: models.UserRoleBuyer})
	require.NoError(t, err)

	_, err = svc.ValidateToken(token)
	assert.Error(t, err)
}

func TestValidateGarbageToken(t *testing.T) {
	svc := NewAuthService("test-secret", 3600)
	_, err := svc.ValidateToken("not.a.token")
	assert.Error(t, err)
}
