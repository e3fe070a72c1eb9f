package service

import (
	"context"
	"testing"
	"time"

	"github.com/classhub/classhub-backend/internal/config"
	"github.com/classhub/classhub-backend/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testAuthService() *AuthService {
	return &AuthService{
		cfg: &config.Config{
			JWTSecret:  "test-secret",
			JWTExpiry:  time.Hour,
			BcryptCost: 4,
		},
	}
}

func TestTokenRoundTrip(t *testing.T) {
	s := testAuthService()

	// Teacher tokens never touch the session registry.
	token, err := s.generateToken(context.Background(), model.RoleTeacher, 7)
	require.NoError(t, err)

	claims, err := s.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, model.RoleTeacher, claims.Role)
	assert.Equal(t, 7, claims.AccountID)
	assert.Equal(t, "7", claims.Subject)
	assert.NotEmpty(t, claims.ID)
}

func TestValidateTokenRejectsWrongSecret(t *testing.T) {
	s := testAuthService()
	token, err := s.generateToken(context.Background(), model.RoleAdmin, 1)
	require.NoError(t, err)

	other := testAuthService()
	other.cfg.JWTSecret = "different-secret"
	_, err = other.ValidateToken(token)
	assert.Error(t, err)
}

func TestValidateTokenRejectsGarbage(t *testing.T) {
	s := testAuthService()
	_, err := s.ValidateToken("not.a.token")
	assert.Error(t, err)
}

func TestHashAndCheckPassword(t *testing.T) {
	s := testAuthService()

	hash, err := s.HashPassword("s3cret")
	require.NoError(t, err)

	assert.NoError(t, s.CheckPassword(hash, "s3cret"))
	assert.ErrorIs(t, s.CheckPassword(hash, "wrong"), ErrInvalidCredentials)
}
