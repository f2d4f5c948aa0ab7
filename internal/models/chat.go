package models

import "campus-llm/backend/ai"

// ChatRequest is the body for the GenZ Buddy endpoint. History is
// ordered oldest-first with the most recent turn last.
type ChatRequest struct {
	Message             string    `json:"message" binding:"required"`
	ConversationHistory []ai.Turn `json:"conversation_history"`
}
