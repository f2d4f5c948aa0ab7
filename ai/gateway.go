package ai

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"campus-llm/backend/pkg/logger"
)

// systemPrompt is the fixed persona instruction sent ahead of every
// conversation. It is the one canonical prompt for the buddy.
const systemPrompt = `You are LMU Buddy, a 2025 LMU student answering questions about campus life.

IMPORTANT RULES:
- Always respond in GenZ style with emojis, casual language, and current slang
- Never reveal you're an AI - act like a real student
- Be positive, energetic, and helpful
- Use LMU-specific knowledge and campus references
- If you don't know something specific, suggest asking around or checking the student portal

LMU CONTEXT:
- Campus locations: Sunken Garden, Gersten Pavilion, William H. Hannon Library, The Lair, The Den
- Popular events: Basketball games, Greek life mixers, RSO fairs, tailgates
- School spirit: LMU Lions, crimson and navy colors, campus traditions

Respond as a friendly, knowledgeable LMU student who loves helping others navigate campus life!`

// historyWindow is how many trailing history turns are forwarded to the
// model. Older turns are silently dropped.
const historyWindow = 5

// DefaultTimeout bounds the remote model call when no timeout is
// configured.
const DefaultTimeout = 30 * time.Second

// GatewayConfig configures the remote model gateway.
type GatewayConfig struct {
	// Endpoint is the model API URL. Empty means unconfigured: every
	// request goes straight to the fallback responder.
	Endpoint string
	// APIKey is an optional bearer credential.
	APIKey string
	// Timeout bounds each remote call.
	Timeout time.Duration
}

// Gateway issues requests to the remote Llama endpoint and falls back
// to canned replies on any failure. Generate never returns an error:
// upstream trouble degrades response quality, not availability.
type Gateway struct {
	endpoint   string
	apiKey     string
	httpClient *http.Client
	fallback   *Responder
	log        *logger.Logger
}

// NewGateway creates a gateway with the given configuration.
func NewGateway(cfg GatewayConfig, log *logger.Logger) *Gateway {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Gateway{
		endpoint:   cfg.Endpoint,
		apiKey:     cfg.APIKey,
		httpClient: &http.Client{Timeout: timeout},
		fallback:   NewResponder(),
		log:        log,
	}
}

// Endpoint returns the configured model endpoint URL.
func (g *Gateway) Endpoint() string {
	return g.endpoint
}

// Generate produces a reply for the message. It makes exactly one
// attempt against the remote model; on any transport error, non-200
// status or malformed payload it delegates to the fallback responder.
func (g *Gateway) Generate(ctx context.Context, message string, history []Turn) Response {
	if g.endpoint == "" {
		return g.fallback.Respond(message, history)
	}

	text, err := g.callRemote(ctx, message, history)
	if err != nil {
		g.log.Warn("remote model unavailable, using fallback",
			"endpoint", g.endpoint,
			"error", err.Error(),
		)
		return g.fallback.Respond(message, history)
	}

	return Response{
		Text:      text,
		Model:     ModelRemote,
		Timestamp: nowStamp(),
		Success:   true,
	}
}

// chatMessage is one role-tagged entry of the chat-completions payload.
type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatRequest struct {
	Messages    []chatMessage `json:"messages"`
	MaxTokens   int           `json:"max_tokens"`
	Temperature float64       `json:"temperature"`
	TopP        float64       `json:"top_p"`
	Stream      bool          `json:"stream"`
}

type promptRequest struct {
	Prompt      string  `json:"prompt"`
	MaxTokens   int     `json:"max_tokens"`
	Temperature float64 `json:"temperature"`
	TopP        float64 `json:"top_p"`
	Stream      bool    `json:"stream"`
}

// modelResponse covers both provider response shapes: chat-completions
// (choices[].message.content), plain completions (choices[].text) and a
// bare {response} body.
type modelResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
		Text string `json:"text"`
	} `json:"choices"`
	Response string `json:"response"`
	Error    *struct {
		Message string `json:"message"`
	} `json:"error,omitempty"`
}

// callRemote performs the single remote attempt and returns an explicit
// result for the gateway to pattern-match on.
func (g *Gateway) callRemote(ctx context.Context, message string, history []Turn) (string, error) {
	messages := g.buildMessages(message, history)

	var payload any
	if g.chatFormat() {
		payload = chatRequest{Messages: messages, MaxTokens: 300, Temperature: 0.8, TopP: 0.9}
	} else {
		payload = promptRequest{Prompt: flattenPrompt(messages), MaxTokens: 300, Temperature: 0.8, TopP: 0.9}
	}

	jsonData, err := json.Marshal(payload)
	if err != nil {
		return "", fmt.Errorf("error marshaling request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, g.endpoint, bytes.NewBuffer(jsonData))
	if err != nil {
		return "", fmt.Errorf("error creating request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if g.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+g.apiKey)
	}

	resp, err := g.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("error making model API request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("error reading response body: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("model API error: %d - %s", resp.StatusCode, string(body))
	}

	var parsed modelResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		return "", fmt.Errorf("error unmarshaling response: %w", err)
	}
	if parsed.Error != nil {
		return "", fmt.Errorf("model API error: %s", parsed.Error.Message)
	}

	if len(parsed.Choices) > 0 {
		if content := parsed.Choices[0].Message.Content; content != "" {
			return content, nil
		}
		if text := parsed.Choices[0].Text; text != "" {
			return text, nil
		}
	}
	if parsed.Response != "" {
		return parsed.Response, nil
	}

	return "", errors.New("no response generated")
}

// chatFormat reports whether the configured endpoint speaks the
// multi-turn chat-completions shape. Endpoints with "chat" in the URL
// get the messages payload, everything else a flattened prompt.
func (g *Gateway) chatFormat() bool {
	return strings.Contains(g.endpoint, "chat")
}

// buildMessages assembles the bounded conversation context: system
// prompt, the trailing historyWindow turns, then the new message.
func (g *Gateway) buildMessages(message string, history []Turn) []chatMessage {
	messages := []chatMessage{{Role: "system", Content: systemPrompt}}

	if len(history) > historyWindow {
		history = history[len(history)-historyWindow:]
	}
	for _, turn := range history {
		role := "assistant"
		if turn.Type == "user" {
			role = "user"
		}
		messages = append(messages, chatMessage{Role: role, Content: turn.Content})
	}

	return append(messages, chatMessage{Role: "user", Content: message})
}

// flattenPrompt renders the conversation as role-prefixed lines ending
// with an open continuation marker for completion-style providers.
func flattenPrompt(messages []chatMessage) string {
	var b strings.Builder
	for _, msg := range messages {
		switch msg.Role {
		case "system":
			b.WriteString("System: ")
		case "assistant":
			b.WriteString("Assistant: ")
		default:
			b.WriteString("User: ")
		}
		b.WriteString(msg.Content)
		b.WriteString("\n")
	}
	b.WriteString("Assistant:")
	return b.String()
}

// StatusReport is the result of a connectivity probe.
type StatusReport struct {
	Available     bool   `json:"available"`
	Status        string `json:"status"`
	ModelEndpoint string `json:"model_endpoint"`
	TestResponse  string `json:"test_response,omitempty"`
	Error         string `json:"error,omitempty"`
}

// Status probes the remote endpoint with a fixed test message. An
// unconfigured gateway degrades to available:false rather than failing.
func (g *Gateway) Status(ctx context.Context) StatusReport {
	if g.endpoint == "" {
		return StatusReport{Available: false, Status: "not_configured"}
	}

	text, err := g.callRemote(ctx, "Hi! Can you tell me about LMU?", nil)
	if err != nil {
		return StatusReport{
			Available:     false,
			Status:        "error",
			ModelEndpoint: g.endpoint,
			Error:         err.Error(),
		}
	}

	return StatusReport{
		Available:     true,
		Status:        "connected",
		ModelEndpoint: g.endpoint,
		TestResponse:  snippet(text, 100),
	}
}

// snippet truncates a probe response for the status report.
func snippet(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n]) + "..."
}
