package auth

import (
	"testing"

	"vahub_backend/internal/config"
	"vahub_backend/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig(secret string) *config.Config {
	cfg := &config.Config{}
	cfg.JWT.Secret = secret
	cfg.JWT.TTL = 5
	return cfg
}

func TestTokenRoundTrip(t *testing.T) {
	config.AppConfig = testConfig("test-secret")

	token, err := GenerateToken("user-123", models.UserRoleEmployer)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := ParseToken(token)
	require.NoError(t, err)
	assert.Equal(t, "user-123", claims.UserID)
	assert.Equal(t, models.UserRoleEmployer, claims.Role)
}

func TestParseTokenRejectsWrongSecret(t *testing.T) {
	config.AppConfig = testConfig("first-secret")
	token, err := GenerateToken("user-123", models.UserRoleAdmin)
	require.NoError(t, err)

	config.AppConfig = testConfig("second-secret")
	_, err = ParseToken(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestParseTokenRejectsGarbage(t *testing.T) {
	config.AppConfig = testConfig("test-secret")

	_, err := ParseToken("not.a.token")
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestPasswordHashing(t *testing.T) {
	hash, err := HashPassword("correct horse battery")
	require.NoError(t, err)
	assert.NotEqual(t, "correct horse battery", hash)

	assert.True(t, CheckPasswordHash("correct horse battery", hash))
	assert.False(t, CheckPasswordHash("wrong password", hash))
}

func TestValidatePassword(t *testing.T) {
	assert.NoError(t, ValidatePassword("12345678"))
	assert.Error(t, ValidatePassword("1234567"))
}
