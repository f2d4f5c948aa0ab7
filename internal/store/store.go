// Package store owns the domain record collections. All compound
// read-modify-write sequences (RSVP toggle, check-in, prize claim,
// point top-up) happen inside the store under a mutual-exclusion
// boundary, so no two concurrent claims on the same prize can both
// succeed and point balances never lose updates.
package store

import (
	"context"
	"errors"

	"campus-llm/backend/internal/models"
)

var (
	ErrUserNotFound       = errors.New("user not found")
	ErrEventNotFound      = errors.New("event not found")
	ErrPrizeNotFound      = errors.New("prize not found")
	ErrAlreadyCheckedIn   = errors.New("already checked in")
	ErrPrizeClaimed       = errors.New("prize already claimed")
	ErrInsufficientPoints = errors.New("insufficient points")
	ErrDuplicateSignup    = errors.New("email or student id already on the waitlist")
)

// RSVP toggle outcomes.
const (
	RSVPAdded   = "added"
	RSVPRemoved = "removed"
)

// UserStore provides access to user records.
type UserStore interface {
	GetUser(id int) (models.User, error)
	ListUsers() []models.User
	// AddPoints applies a point delta and returns the new balance.
	AddPoints(id, delta int) (int, error)
}

// EventStore provides access to event records and their membership
// mutations.
type EventStore interface {
	ListEvents() []models.Event
	GetEvent(id int) (models.Event, error)
	// ToggleRSVP flips the user's attendee membership and reports
	// RSVPAdded or RSVPRemoved. Repeated calls alternate: the
	// operation is deliberately not idempotent.
	ToggleRSVP(eventID, userID int) (string, error)
	// CheckIn records attendance and credits the event's points to
	// the user exactly once. A second check-in for the same pair
	// returns ErrAlreadyCheckedIn with no extra credit.
	CheckIn(eventID, userID int) (int, error)
}

// PrizeStore provides access to prize records.
type PrizeStore interface {
	ListPrizes() []models.Prize
	// ClaimPrize is a compare-and-set claim: "not already claimed"
	// and "sufficient points" are re-validated at the moment of
	// mutation, and the claimed-by assignment plus point deduction
	// form one atomic step. Returns the user's remaining points.
	ClaimPrize(prizeID, userID int) (int, error)
}

// WaitlistStore records pre-launch signups.
type WaitlistStore interface {
	Add(ctx context.Context, entry *models.WaitlistEntry) error
	Count(ctx context.Context) (int64, error)
}
