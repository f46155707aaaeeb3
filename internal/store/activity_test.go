package store

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mergington/activities/internal/domain"
)

func TestActivityStore_Seed(t *testing.T) {
	s := NewActivityStore()

	activities, err := s.List(context.Background())
	require.NoError(t, err)
	assert.Len(t, activities, 9)

	chess, ok := activities["Chess Club"]
	require.True(t, ok, "seed catalog should include Chess Club")
	assert.Equal(t, 12, chess.MaxParticipants)
	assert.Equal(t, []string{"michael@mergington.edu", "daniel@mergington.edu"}, chess.Participants)
}

func TestActivityStore_Signup(t *testing.T) {
	ctx := context.Background()
	s := NewActivityStore()

	err := s.Signup(ctx, "Chess Club", "new@mergington.edu")
	require.NoError(t, err)

	activities, err := s.List(ctx)
	require.NoError(t, err)
	participants := activities["Chess Club"].Participants
	assert.Len(t, participants, 3)
	assert.Equal(t, "new@mergington.edu", participants[2], "signup order should be preserved")

	// A second signup with the same email must not duplicate the entry
	err = s.Signup(ctx, "Chess Club", "new@mergington.edu")
	assert.ErrorIs(t, err, domain.ErrAlreadySignedUp)

	activities, err = s.List(ctx)
	require.NoError(t, err)
	assert.Len(t, activities["Chess Club"].Participants, 3)
}

func TestActivityStore_SignupUnknownActivity(t *testing.T) {
	s := NewActivityStore()

	err := s.Signup(context.Background(), "Knitting Circle", "someone@mergington.edu")
	assert.ErrorIs(t, err, domain.ErrActivityNotFound)
}

func TestActivityStore_Unregister(t *testing.T) {
	ctx := context.Background()
	s := NewActivityStore()

	err := s.Unregister(ctx, "Chess Club", "michael@mergington.edu")
	require.NoError(t, err)

	activities, err := s.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"daniel@mergington.edu"}, activities["Chess Club"].Participants)

	// Unregister is not idempotent: the second call reports the student missing
	err = s.Unregister(ctx, "Chess Club", "michael@mergington.edu")
	assert.ErrorIs(t, err, domain.ErrNotSignedUp)
}

func TestActivityStore_UnregisterUnknownActivity(t *testing.T) {
	s := NewActivityStore()

	err := s.Unregister(context.Background(), "Knitting Circle", "michael@mergington.edu")
	assert.ErrorIs(t, err, domain.ErrActivityNotFound)
}

func TestActivityStore_ListReturnsSnapshot(t *testing.T) {
	ctx := context.Background()
	s := NewActivityStore()

	activities, err := s.List(ctx)
	require.NoError(t, err)

	// Mutating the snapshot must not leak into the store
	activities["Chess Club"].Participants[0] = "tampered@mergington.edu"
	delete(activities, "Math Club")

	fresh, err := s.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, "michael@mergington.edu", fresh["Chess Club"].Participants[0])
	assert.Contains(t, fresh, "Math Club")
}
