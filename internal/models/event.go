package models

import "time"

// Event represents a campus event students can RSVP to and check in at.
type Event struct {
	ID          int       `json:"id"`
	Title       string    `json:"title"`
	Type        string    `json:"type"`
	Date        time.Time `json:"date"`
	Location    string    `json:"location"`
	Image       string    `json:"image,omitempty"`
	Host        string    `json:"host"`
	Description string    `json:"description"`
	Attendees   []int     `json:"attendees"`
	MaxCapacity int       `json:"maxCapacity"`
	CheckedIn   []int     `json:"checkedIn"`
	Points      int       `json:"points"`
	Tags        []string  `json:"tags,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}

// EventActionRequest is the body for RSVP and check-in calls.
type EventActionRequest struct {
	UserID int `json:"user_id" binding:"required"`
}
