package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/ignatzorin/tecsolutions-backend/internal/logger"
	"github.com/ignatzorin/tecsolutions-backend/internal/pkg/apperror"
)

func newTestAuthService(t *testing.T) *AuthService {
	t.Helper()
	logger.Discard()
	hash, err := bcrypt.GenerateFromPassword([]byte("s3nha-forte"), bcrypt.MinCost)
	require.NoError(t, err)
	return NewAuthService(
		Operator{Username: "admin", PasswordHash: string(hash)},
		NewTokenManager("test-secret-test-secret-test-secret", 15*time.Minute),
	)
}

func TestAuthService_LoginAndAuthenticate(t *testing.T) {
	s := newTestAuthService(t)

	token, err := s.Login(context.Background(), LoginInput{Username: "admin", Password: "s3nha-forte"})
	require.NoError(t, err)
	assert.NotEmpty(t, token.Token)

	username, err := s.Authenticate(token.Token)
	require.NoError(t, err)
	assert.Equal(t, "admin", username)
}

func TestAuthService_WrongPassword(t *testing.T) {
	s := newTestAuthService(t)

	_, err := s.Login(context.Background(), LoginInput{Username: "admin", Password: "errada"})
	assert.ErrorIs(t, err, apperror.ErrInvalidCredentials)

	_, err = s.Login(context.Background(), LoginInput{Username: "root", Password: "s3nha-forte"})
	assert.ErrorIs(t, err, apperror.ErrInvalidCredentials)
}

func TestAuthService_Disabled(t *testing.T) {
	s := NewAuthService(Operator{Username: "admin"}, NewTokenManager("x", time.Minute))

	assert.False(t, s.Enabled())
	_, err := s.Login(context.Background(), LoginInput{Username: "admin"})
	assert.Error(t, err)
}

func TestTokenManager_RejectsForeignAndExpired(t *testing.T) {
	s := newTestAuthService(t)

	_, err := s.Authenticate("not-a-token")
	assert.True(t, apperror.IsUnauthorized(err))

	other := NewTokenManager("another-secret", time.Minute)
	foreign, err := other.Issue("admin")
	require.NoError(t, err)
	_, err = s.Authenticate(foreign.Token)
	assert.Error(t, err)

	m := NewTokenManager("test-secret-test-secret-test-secret", time.Minute)
	m.now = func() time.Time { return time.Now().Add(-2 * time.Hour) }
	expired, err := m.Issue("admin")
	require.NoError(t, err)
	_, err = s.Authenticate(expired.Token)
	assert.Error(t, err)
}
