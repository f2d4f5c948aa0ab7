package models

import "time"

// Prize statuses.
const (
	PrizeAvailable = "available"
	PrizeClaimed   = "claimed"
)

// Prize is a reward claimable with engagement points. ClaimedBy is nil
// until a claim succeeds and is set at most once.
type Prize struct {
	ID          int       `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Image       string    `json:"image,omitempty"`
	PointCost   int       `json:"pointCost"`
	ClaimedBy   *int      `json:"claimedBy"`
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"created_at"`
}

// ClaimRequest is the body for prize claims.
type ClaimRequest struct {
	UserID int `json:"user_id" binding:"required"`
}
