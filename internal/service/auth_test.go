package service

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mergington/activities/internal/domain"
	"github.com/mergington/activities/internal/store"
)

func newAuthService(t *testing.T) *AuthService {
	t.Helper()

	path := filepath.Join(t.TempDir(), "teachers.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"mrodriguez": "art123"}`), 0o600))

	teachers := store.NewTeacherDirectory()
	require.NoError(t, teachers.Load(path))

	return NewAuthService(teachers, store.NewSessionStore(0))
}

func TestAuthService_LoginAndResolve(t *testing.T) {
	ctx := context.Background()
	s := newAuthService(t)

	token, err := s.Login(ctx, "mrodriguez", "art123")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	username, err := s.Resolve(ctx, token)
	require.NoError(t, err)
	assert.Equal(t, "mrodriguez", username)
}

func TestAuthService_LoginWrongPassword(t *testing.T) {
	ctx := context.Background()
	s := newAuthService(t)

	_, err := s.Login(ctx, "mrodriguez", "wrong")
	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
}

func TestAuthService_LoginUnknownUsername(t *testing.T) {
	ctx := context.Background()
	s := newAuthService(t)

	_, err := s.Login(ctx, "nobody", "art123")
	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
}

func TestAuthService_Logout(t *testing.T) {
	ctx := context.Background()
	s := newAuthService(t)

	token, err := s.Login(ctx, "mrodriguez", "art123")
	require.NoError(t, err)

	s.Logout(ctx, token)

	_, err = s.Resolve(ctx, token)
	assert.ErrorIs(t, err, domain.ErrUnauthenticated)

	// Logout is idempotent: repeating it, or using a bogus token, is fine
	s.Logout(ctx, token)
	s.Logout(ctx, "never-issued")
}

func TestAuthService_ResolveUnknownToken(t *testing.T) {
	s := newAuthService(t)

	_, err := s.Resolve(context.Background(), "never-issued")
	assert.ErrorIs(t, err, domain.ErrUnauthenticated)
}
