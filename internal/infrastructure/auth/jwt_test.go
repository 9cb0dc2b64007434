package auth

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/babyheaven/backend/internal/infrastructure/config"
)

func newTestJWTService() *JWTService {
	return NewJWTService(config.JWTConfig{
		Secret:          "test-secret-key-at-least-32-characters",
		TokenExpiration: time.Hour,
		Issuer:          "babyheaven-test",
	})
}

func TestJWTService_GenerateToken(t *testing.T) {
	service := newTestJWTService()
	userID := uuid.New()

	token, err := service.GenerateToken(userID, "owner@example.com")
	require.NoError(t, err)
	require.NotNil(t, token)

	assert.NotEmpty(t, token.AccessToken)
	assert.Equal(t, "Bearer", token.TokenType)
	assert.WithinDuration(t, time.Now().Add(time.Hour), token.ExpiresAt, 5*time.Second)
}

func TestJWTService_ValidateToken(t *testing.T) {
	service := newTestJWTService()
	userID := uuid.New()

	token, err := service.GenerateToken(userID, "owner@example.com")
	require.NoError(t, err)

	claims, err := service.ValidateToken(token.AccessToken)
	require.NoError(t, err)

	assert.Equal(t, userID.String(), claims.UserID)
	assert.Equal(t, "owner@example.com", claims.Email)
	assert.Equal(t, "babyheaven-test", claims.Issuer)
	assert.NotEmpty(t, claims.ID, "token should carry a JTI for revocation")

	parsed, err := claims.GetUserUUID()
	require.NoError(t, err)
	assert.Equal(t, userID, parsed)
}

func TestJWTService_ValidateToken_Invalid(t *testing.T) {
	service := newTestJWTService()

	tests := []struct {
		name  string
		token string
	}{
		{name: "garbage", token: "not-a-token"},
		{name: "empty", token: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			claims, err := service.ValidateToken(tt.token)
			assert.ErrorIs(t, err, ErrInvalidToken)
			assert.Nil(t, claims)
		})
	}
}

func TestJWTService_ValidateToken_WrongSecret(t *testing.T) {
	service := newTestJWTService()
	other := NewJWTService(config.JWTConfig{
		Secret:          "a-completely-different-secret-key-here",
		TokenExpiration: time.Hour,
		Issuer:          "babyheaven-test",
	})

	token, err := service.GenerateToken(uuid.New(), "owner@example.com")
	require.NoError(t, err)

	_, err = other.ValidateToken(token.AccessToken)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestJWTService_ValidateToken_Expired(t *testing.T) {
	service := NewJWTService(config.JWTConfig{
		Secret:          "test-secret-key-at-least-32-characters",
		TokenExpiration: -time.Minute,
		Issuer:          "babyheaven-test",
	})

	token, err := service.GenerateToken(uuid.New(), "owner@example.com")
	require.NoError(t, err)

	_, err = service.ValidateToken(token.AccessToken)
	assert.ErrorIs(t, err, ErrExpiredToken)
}

func TestClaims_GetRemainingTTL(t *testing.T) {
	service := newTestJWTService()

	token, err := service.GenerateToken(uuid.New(), "owner@example.com")
	require.NoError(t, err)

	claims, err := service.ValidateToken(token.AccessToken)
	require.NoError(t, err)

	ttl := claims.GetRemainingTTL()
	assert.Greater(t, ttl, 55*time.Minute)
	assert.LessOrEqual(t, ttl, time.Hour)
}
