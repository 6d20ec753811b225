package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashAndVerifyPassword(t *testing.T) {
	svc := GetAdminAuthService()

	hash, err := svc.HashPassword("correct-horse-battery")
	require.NoError(t, err)
	assert.NotEqual(t, "correct-horse-battery", hash)

	assert.True(t, svc.VerifyPassword(hash, "correct-horse-battery"))
	assert.False(t, svc.VerifyPassword(hash, "wrong-password"))
	assert.False(t, svc.VerifyPassword("not-a-hash", "correct-horse-battery"))
}

func TestValidatePassword(t *testing.T) {
	svc := GetAdminAuthService()

	assert.False(t, svc.ValidatePassword(""))
	assert.False(t, svc.ValidatePassword("short"))
	assert.True(t, svc.ValidatePassword("eightch8"))
}

func TestAdminJWTRoundTrip(t *testing.T) {
	require.NoError(t, InitJWTService("test-secret-key-for-jwt-signing"))

	token, err := GetJWTService().GenerateAdminJWT("admin-123", "admin@freshpress.test")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := VerifyAdminJWT(token)
	require.NoError(t, err)
	assert.Equal(t, "admin-123", claims.AdminID)
	assert.Equal(t, "admin@freshpress.test", claims.Email)
	assert.Equal(t, "freshpress-cms", claims.Issuer)

	_, err = VerifyAdminJWT(token + "tampered")
	assert.Error(t, err)
}

func TestGenerateAdminJWT_RejectsEmptyIdentity(t *testing.T) {
	require.NoError(t, InitJWTService("test-secret-key-for-jwt-signing"))

	_, err := GetJWTService().GenerateAdminJWT("", "admin@freshpress.test")
	assert.Error(t, err)
	_, err = GetJWTService().GenerateAdminJWT("admin-123", "")
	assert.Error(t, err)
}
