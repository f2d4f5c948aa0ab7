package service

import (
	"context"

	"campus-llm/backend/internal/models"
	"campus-llm/backend/internal/store"
	"campus-llm/backend/pkg/cache"
	"campus-llm/backend/pkg/metrics"
)

// PrizeService handles prize listing and claims.
type PrizeService struct {
	prizes store.PrizeStore
	cache  *cache.Cache
}

// NewPrizeService creates a new prize service. cache may be nil.
func NewPrizeService(prizes store.PrizeStore, c *cache.Cache) *PrizeService {
	return &PrizeService{prizes: prizes, cache: c}
}

// ListPrizes returns all prizes.
func (s *PrizeService) ListPrizes() []models.Prize {
	return s.prizes.ListPrizes()
}

// Claim attempts to claim a prize for the user and returns the user's
// remaining points. Conflicts (already claimed, insufficient points)
// surface as store sentinel errors. A successful claim debits the
// balance, so cached standings are invalidated.
func (s *PrizeService) Claim(ctx context.Context, prizeID, userID int) (int, error) {
	remaining, err := s.prizes.ClaimPrize(prizeID, userID)
	if err != nil {
		metrics.PrizeClaims.WithLabelValues("rejected").Inc()
		return 0, err
	}
	metrics.PrizeClaims.WithLabelValues("claimed").Inc()
	s.cache.Invalidate(ctx, leaderboardCacheKey)
	return remaining, nil
}
