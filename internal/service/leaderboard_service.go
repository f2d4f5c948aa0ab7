package service

import (
	"context"
	"encoding/json"
	"sort"

	"campus-llm/backend/internal/models"
	"campus-llm/backend/internal/store"
	"campus-llm/backend/pkg/cache"
)

const leaderboardCacheKey = "leaderboard:standings"

// LeaderboardService computes point standings from the user store, with
// an optional Redis read cache in front.
type LeaderboardService struct {
	users store.UserStore
	cache *cache.Cache
}

// NewLeaderboardService creates a new leaderboard service. cache may be
// nil when Redis is not configured.
func NewLeaderboardService(users store.UserStore, c *cache.Cache) *LeaderboardService {
	return &LeaderboardService{users: users, cache: c}
}

// Standings returns all users ordered by points descending with ranks
// assigned. Cached results may lag live balances by the cache TTL.
func (s *LeaderboardService) Standings(ctx context.Context) []models.LeaderboardEntry {
	if raw, ok := s.cache.Get(ctx, leaderboardCacheKey); ok {
		var cached []models.LeaderboardEntry
		if err := json.Unmarshal([]byte(raw), &cached); err == nil {
			return cached
		}
	}

	users := s.users.ListUsers()
	sort.Slice(users, func(i, j int) bool {
		if users[i].Points != users[j].Points {
			return users[i].Points > users[j].Points
		}
		return users[i].ID < users[j].ID
	})

	standings := make([]models.LeaderboardEntry, len(users))
	for i, user := range users {
		standings[i] = models.LeaderboardEntry{
			Rank:   i + 1,
			Name:   user.Name,
			Points: user.Points,
			Avatar: user.Avatar,
		}
	}

	if encoded, err := json.Marshal(standings); err == nil {
		s.cache.Set(ctx, leaderboardCacheKey, string(encoded))
	}
	return standings
}
