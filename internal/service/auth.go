package service

import (
	"context"
	"crypto/subtle"

	"github.com/mergington/activities/internal/domain"
	"github.com/mergington/activities/internal/store"
)

// AuthService handles teacher login and session resolution
type AuthService struct {
	teachers *store.TeacherDirectory
	sessions *store.SessionStore
}

// NewAuthService creates a new AuthService
func NewAuthService(teachers *store.TeacherDirectory, sessions *store.SessionStore) *AuthService {
	return &AuthService{
		teachers: teachers,
		sessions: sessions,
	}
}

// Login verifies the teacher's credentials and returns a fresh session token.
// The password check is constant-time; an unknown username and a wrong
// password are indistinguishable to the caller.
func (s *AuthService) Login(ctx context.Context, username, password string) (string, error) {
	stored, ok := s.teachers.Lookup(username)
	if !ok {
		return "", domain.ErrInvalidCredentials
	}
	if subtle.ConstantTimeCompare([]byte(stored), []byte(password)) != 1 {
		return "", domain.ErrInvalidCredentials
	}

	return s.sessions.Create(username), nil
}

// Resolve returns the username owning the session token
func (s *AuthService) Resolve(ctx context.Context, token string) (string, error) {
	username, ok := s.sessions.Resolve(token)
	if !ok {
		return "", domain.ErrUnauthenticated
	}
	return username, nil
}

// Logout destroys the session for token. Logging out an unknown or already
// removed token succeeds.
func (s *AuthService) Logout(ctx context.Context, token string) {
	if token != "" {
		s.sessions.Delete(token)
	}
}
