package ai

import "time"

// Model identifiers reported in chat responses.
const (
	ModelRemote   = "llama-genz-buddy"
	ModelFallback = "fallback"
)

// Turn is one entry of the conversation history, most recent last.
// Type is "user" for student messages and "bot" for buddy replies,
// matching the shape the frontend sends.
type Turn struct {
	Type    string `json:"type"`
	Content string `json:"content"`
}

// Response is the envelope returned for every chat request. It is
// produced fresh per request and never persisted.
type Response struct {
	Text      string `json:"response"`
	Model     string `json:"model"`
	Timestamp string `json:"timestamp"`
	Success   bool   `json:"success"`
	Note      string `json:"note,omitempty"`
}

func nowStamp() string {
	return time.Now().Format(time.RFC3339)
}
