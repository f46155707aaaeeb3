package store

import (
	"sync"
	"time"

	"github.com/google/uuid"
)

// session pairs a logged-in username with its expiry deadline. A zero
// deadline means the session never expires.
type session struct {
	username  string
	expiresAt time.Time
}

// SessionStore maps opaque admin tokens to usernames. Tokens are minted on
// login, removed on logout, and evicted lazily once their TTL passes.
type SessionStore struct {
	mu       sync.RWMutex
	ttl      time.Duration
	sessions map[string]session
	now      func() time.Time
}

// NewSessionStore creates a session store. A ttl of zero disables expiry.
func NewSessionStore(ttl time.Duration) *SessionStore {
	return &SessionStore{
		ttl:      ttl,
		sessions: make(map[string]session),
		now:      time.Now,
	}
}

// Create mints a fresh opaque token for username and records the session.
// The token is guaranteed unique among currently active sessions.
func (s *SessionStore) Create(username string) string {
	s.mu.Lock()
	defer s.mu.Unlock()

	var token string
	for {
		token = uuid.NewString()
		if _, exists := s.sessions[token]; !exists {
			break
		}
	}

	var expiresAt time.Time
	if s.ttl > 0 {
		expiresAt = s.now().Add(s.ttl)
	}
	s.sessions[token] = session{username: username, expiresAt: expiresAt}
	return token
}

// Resolve returns the username for token. Expired sessions are removed and
// reported as absent.
func (s *SessionStore) Resolve(token string) (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, ok := s.sessions[token]
	if !ok {
		return "", false
	}
	if !sess.expiresAt.IsZero() && s.now().After(sess.expiresAt) {
		delete(s.sessions, token)
		return "", false
	}
	return sess.username, true
}

// Delete removes token's session. Deleting an unknown token is a no-op.
func (s *SessionStore) Delete(token string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, token)
}
