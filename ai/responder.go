package ai

// Responder produces canned replies when the remote model is
// unavailable. It has no external dependencies and never fails, which
// makes it the guaranteed last-resort path for the chat endpoint.
type Responder struct{}

// NewResponder creates a new fallback responder.
func NewResponder() *Responder {
	return &Responder{}
}

// Respond classifies the message, looks up the canned reply for the
// resulting topic and wraps it in a Response envelope. The history is
// accepted for interface symmetry with the gateway but does not
// influence the canned reply.
func (r *Responder) Respond(message string, history []Turn) Response {
	return Response{
		Text:      Reply(Classify(message)),
		Model:     ModelFallback,
		Timestamp: nowStamp(),
		Success:   true,
		Note:      "Using fallback response - Llama model unavailable",
	}
}
