package service

import (
	"context"

	"github.com/mergington/activities/internal/domain"
)

// ActivityRepository defines the roster operations the service depends on
type ActivityRepository interface {
	// List returns a snapshot of every activity keyed by name
	List(ctx context.Context) (map[string]*domain.Activity, error)

	// Signup adds email to the activity's participant list
	Signup(ctx context.Context, activityName, email string) error

	// Unregister removes email from the activity's participant list
	Unregister(ctx context.Context, activityName, email string) error
}

// ActivityService handles business logic for activity rosters
type ActivityService struct {
	activities ActivityRepository
}

// NewActivityService creates a new ActivityService
func NewActivityService(activities ActivityRepository) *ActivityService {
	return &ActivityService{
		activities: activities,
	}
}

// List retrieves the full activity catalog
func (s *ActivityService) List(ctx context.Context) (map[string]*domain.Activity, error) {
	return s.activities.List(ctx)
}

// Signup adds a student to an activity. max_participants is informational
// and not enforced as a capacity limit.
func (s *ActivityService) Signup(ctx context.Context, activityName, email string) error {
	return s.activities.Signup(ctx, activityName, email)
}

// Unregister removes a student from an activity
func (s *ActivityService) Unregister(ctx context.Context, activityName, email string) error {
	return s.activities.Unregister(ctx, activityName, email)
}
