package store

import (
	"context"
	"sync"

	"github.com/mergington/activities/internal/domain"
)

// ActivityStore holds the in-memory activity roster. Activities are fixed at
// construction; only participant lists mutate. All access goes through the
// mutex so concurrent signup and unregister calls cannot corrupt a roster.
type ActivityStore struct {
	mu         sync.RWMutex
	activities map[string]*domain.Activity
}

// NewActivityStore creates a store seeded with the school's activity catalog
func NewActivityStore() *ActivityStore {
	s := &ActivityStore{
		activities: make(map[string]*domain.Activity, len(seedActivities)),
	}
	for _, a := range seedActivities {
		activity := a
		activity.Participants = append([]string(nil), a.Participants...)
		s.activities[activity.Name] = &activity
	}
	return s
}

// List returns a snapshot of every activity keyed by name
func (s *ActivityStore) List(ctx context.Context) (map[string]*domain.Activity, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make(map[string]*domain.Activity, len(s.activities))
	for name, a := range s.activities {
		cp := *a
		cp.Participants = append([]string(nil), a.Participants...)
		out[name] = &cp
	}
	return out, nil
}

// Signup appends email to the activity's participant list, preserving signup order
func (s *ActivityStore) Signup(ctx context.Context, activityName, email string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	activity, ok := s.activities[activityName]
	if !ok {
		return domain.ErrActivityNotFound
	}
	if activity.IsSignedUp(email) {
		return domain.ErrAlreadySignedUp
	}

	activity.Participants = append(activity.Participants, email)
	return nil
}

// Unregister removes one occurrence of email from the activity's participant list
func (s *ActivityStore) Unregister(ctx context.Context, activityName, email string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	activity, ok := s.activities[activityName]
	if !ok {
		return domain.ErrActivityNotFound
	}

	for i, p := range activity.Participants {
		if p == email {
			activity.Participants = append(activity.Participants[:i], activity.Participants[i+1:]...)
			return nil
		}
	}
	return domain.ErrNotSignedUp
}
