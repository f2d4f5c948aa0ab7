package store

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"campus-llm/backend/internal/models"
)

func TestGetUser(t *testing.T) {
	s := NewMemoryStore()

	user, err := s.GetUser(1)
	require.NoError(t, err)
	assert.Equal(t, "Alex Johnson", user.Name)
	assert.Equal(t, 1250, user.Points)

	_, err = s.GetUser(999)
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestAddPoints(t *testing.T) {
	s := NewMemoryStore()

	balance, err := s.AddPoints(1, 50)
	require.NoError(t, err)
	assert.Equal(t, 1300, balance)

	_, err = s.AddPoints(999, 50)
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestToggleRSVP(t *testing.T) {
	s := NewMemoryStore()

	// User 1 is a seeded attendee of event 1.
	action, err := s.ToggleRSVP(1, 1)
	require.NoError(t, err)
	assert.Equal(t, RSVPRemoved, action)

	action, err = s.ToggleRSVP(1, 1)
	require.NoError(t, err)
	assert.Equal(t, RSVPAdded, action)

	_, err = s.ToggleRSVP(999, 1)
	assert.ErrorIs(t, err, ErrEventNotFound)
}

func TestCheckInIdempotent(t *testing.T) {
	s := NewMemoryStore()

	before, err := s.GetUser(3)
	require.NoError(t, err)

	points, err := s.CheckIn(2, 3)
	require.NoError(t, err)
	assert.Equal(t, 75, points)

	_, err = s.CheckIn(2, 3)
	assert.ErrorIs(t, err, ErrAlreadyCheckedIn)

	// Points credited exactly once.
	after, err := s.GetUser(3)
	require.NoError(t, err)
	assert.Equal(t, before.Points+75, after.Points)

	event, err := s.GetEvent(2)
	require.NoError(t, err)
	assert.Equal(t, []int{3}, event.CheckedIn)
}

func TestClaimPrize(t *testing.T) {
	s := NewMemoryStore()

	remaining, err := s.ClaimPrize(1, 2)
	require.NoError(t, err)
	assert.Equal(t, 2000, remaining)

	prizes := s.ListPrizes()
	require.NotEmpty(t, prizes)
	require.NotNil(t, prizes[0].ClaimedBy)
	assert.Equal(t, 2, *prizes[0].ClaimedBy)
	assert.Equal(t, models.PrizeClaimed, prizes[0].Status)

	// A claimed prize cannot be reclaimed.
	_, err = s.ClaimPrize(1, 3)
	assert.ErrorIs(t, err, ErrPrizeClaimed)
}

func TestClaimPrizeInsufficientPoints(t *testing.T) {
	s := NewMemoryStore()

	_, err := s.AddPoints(5, -1000)
	require.NoError(t, err)

	_, err = s.ClaimPrize(1, 5)
	assert.ErrorIs(t, err, ErrInsufficientPoints)

	// Balance and prize state untouched by the rejected claim.
	user, err := s.GetUser(5)
	require.NoError(t, err)
	assert.Equal(t, 100, user.Points)

	prizes := s.ListPrizes()
	assert.Nil(t, prizes[0].ClaimedBy)
	assert.Equal(t, models.PrizeAvailable, prizes[0].Status)
}

func TestClaimPrizeConcurrent(t *testing.T) {
	s := NewMemoryStore()

	// Users 2 and 3 can both afford prize 2; only one claim may win.
	claimants := []int{2, 3}
	errs := make([]error, len(claimants))

	var wg sync.WaitGroup
	for i, userID := range claimants {
		wg.Add(1)
		go func(i, userID int) {
			defer wg.Done()
			_, errs[i] = s.ClaimPrize(2, userID)
		}(i, userID)
	}
	wg.Wait()

	var winners, conflicts int
	for _, err := range errs {
		switch {
		case err == nil:
			winners++
		case err == ErrPrizeClaimed:
			conflicts++
		default:
			t.Fatalf("unexpected claim error: %v", err)
		}
	}
	assert.Equal(t, 1, winners)
	assert.Equal(t, 1, conflicts)

	prizes := s.ListPrizes()
	require.Len(t, prizes, 2)
	require.NotNil(t, prizes[1].ClaimedBy)
	assert.Contains(t, claimants, *prizes[1].ClaimedBy)

	// Exactly one balance was debited.
	sarah, _ := s.GetUser(2)
	mike, _ := s.GetUser(3)
	assert.Equal(t, 1000, (2500-sarah.Points)+(2200-mike.Points))
}

func TestWaitlistMemory(t *testing.T) {
	s := NewMemoryStore()
	ctx := context.Background()

	entry := &models.WaitlistEntry{Name: "Test Student", Email: "test@lmu.edu", StudentID: "12345678"}
	require.NoError(t, s.Add(ctx, entry))
	assert.Equal(t, 1, entry.ID)
	assert.Equal(t, "pending", entry.Status)

	dup := &models.WaitlistEntry{Name: "Other", Email: "test@lmu.edu", StudentID: "87654321"}
	assert.ErrorIs(t, s.Add(ctx, dup), ErrDuplicateSignup)

	dupID := &models.WaitlistEntry{Name: "Other", Email: "other@lmu.edu", StudentID: "12345678"}
	assert.ErrorIs(t, s.Add(ctx, dupID), ErrDuplicateSignup)

	count, err := s.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)
}

func TestRecordsReturnedByValue(t *testing.T) {
	s := NewMemoryStore()

	event, err := s.GetEvent(1)
	require.NoError(t, err)
	event.Attendees[0] = 999

	fresh, err := s.GetEvent(1)
	require.NoError(t, err)
	assert.Equal(t, 1, fresh.Attendees[0])
}
