package service

import (
	"context"

	"campus-llm/backend/internal/models"
	"campus-llm/backend/internal/store"
	"campus-llm/backend/pkg/cache"
)

// EventService handles event listing, RSVP and check-in operations.
type EventService struct {
	events store.EventStore
	cache  *cache.Cache
}

// NewEventService creates a new event service. cache may be nil.
func NewEventService(events store.EventStore, c *cache.Cache) *EventService {
	return &EventService{events: events, cache: c}
}

// ListEvents returns all events.
func (s *EventService) ListEvents() []models.Event {
	return s.events.ListEvents()
}

// GetEvent retrieves an event by id.
func (s *EventService) GetEvent(id int) (models.Event, error) {
	return s.events.GetEvent(id)
}

// ToggleRSVP flips the user's RSVP and reports the action taken.
func (s *EventService) ToggleRSVP(eventID, userID int) (string, error) {
	return s.events.ToggleRSVP(eventID, userID)
}

// CheckIn records attendance and returns the points credited. The
// second check-in for the same pair surfaces store.ErrAlreadyCheckedIn.
// A successful check-in changes a balance, so cached standings are
// invalidated.
func (s *EventService) CheckIn(ctx context.Context, eventID, userID int) (int, error) {
	points, err := s.events.CheckIn(eventID, userID)
	if err != nil {
		return 0, err
	}
	s.cache.Invalidate(ctx, leaderboardCacheKey)
	return points, nil
}
