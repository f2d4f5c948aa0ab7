package models

import "time"

// User represents a student in the engagement program.
type User struct {
	ID        int       `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Avatar    string    `json:"avatar,omitempty"`
	Points    int       `json:"points"`
	Rank      int       `json:"rank"`
	Streak    int       `json:"streak"`
	Orgs      []string  `json:"orgs,omitempty"`
	Badges    []Badge   `json:"badges,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// Badge is an achievement attached to a user profile.
type Badge struct {
	ID          int    `json:"id"`
	Name        string `json:"name"`
	Icon        string `json:"icon"`
	Description string `json:"description"`
}

// AddPointsRequest is the body for point top-ups.
type AddPointsRequest struct {
	Points int `json:"points"`
}

// LeaderboardEntry is one row of the points standings.
type LeaderboardEntry struct {
	Rank   int    `json:"rank"`
	Name   string `json:"name"`
	Points int    `json:"points"`
	Avatar string `json:"avatar,omitempty"`
}
