package service

import (
	"context"

	"campus-llm/backend/internal/models"
	"campus-llm/backend/internal/store"
	"campus-llm/backend/pkg/cache"
)

// UserService handles user-related operations.
type UserService struct {
	users store.UserStore
	cache *cache.Cache
}

// NewUserService creates a new user service. cache may be nil.
func NewUserService(users store.UserStore, c *cache.Cache) *UserService {
	return &UserService{users: users, cache: c}
}

// GetUser retrieves a user by id.
func (s *UserService) GetUser(id int) (models.User, error) {
	return s.users.GetUser(id)
}

// AddPoints credits (or debits) points and returns the new balance.
// Cached standings are invalidated so the leaderboard reflects the
// change immediately.
func (s *UserService) AddPoints(ctx context.Context, id, delta int) (int, error) {
	balance, err := s.users.AddPoints(id, delta)
	if err != nil {
		return 0, err
	}
	s.cache.Invalidate(ctx, leaderboardCacheKey)
	return balance, nil
}
