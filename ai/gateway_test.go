package ai

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"campus-llm/backend/pkg/logger"
)

func quietLogger() *logger.Logger {
	return logger.New(logger.Config{Level: "error", JSON: true, Output: io.Discard})
}

func newTestGateway(endpoint, apiKey string, timeout time.Duration) *Gateway {
	return NewGateway(GatewayConfig{Endpoint: endpoint, APIKey: apiKey, Timeout: timeout}, quietLogger())
}

func TestGenerateChatFormat(t *testing.T) {
	var captured chatRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, json.NewDecoder(r.Body).Decode(&captured))
		json.NewEncoder(w).Encode(map[string]any{
			"choices": []map[string]any{{"message": map[string]any{"content": "yo, welcome to the bluff!"}}},
		})
	}))
	defer srv.Close()

	g := newTestGateway(srv.URL+"/v1/chat/completions", "", 0)
	resp := g.Generate(context.Background(), "hi buddy", nil)

	assert.True(t, resp.Success)
	assert.Equal(t, ModelRemote, resp.Model)
	assert.Equal(t, "yo, welcome to the bluff!", resp.Text)

	require.NotEmpty(t, captured.Messages)
	assert.Equal(t, "system", captured.Messages[0].Role)
	assert.Equal(t, "hi buddy", captured.Messages[len(captured.Messages)-1].Content)
	assert.Equal(t, 300, captured.MaxTokens)
}

func TestGeneratePromptFormat(t *testing.T) {
	var captured promptRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, json.NewDecoder(r.Body).Decode(&captured))
		json.NewEncoder(w).Encode(map[string]any{
			"choices": []map[string]any{{"text": "all good"}},
		})
	}))
	defer srv.Close()

	g := newTestGateway(srv.URL+"/generate", "", 0)
	history := []Turn{
		{Type: "user", Content: "hey"},
		{Type: "bot", Content: "heyyy"},
	}
	resp := g.Generate(context.Background(), "what's up", history)

	assert.Equal(t, ModelRemote, resp.Model)
	assert.Equal(t, "all good", resp.Text)

	assert.True(t, strings.HasPrefix(captured.Prompt, "System: "))
	assert.Contains(t, captured.Prompt, "User: hey\n")
	assert.Contains(t, captured.Prompt, "Assistant: heyyy\n")
	assert.True(t, strings.HasSuffix(captured.Prompt, "Assistant:"))
}

func TestGenerateBearerHeader(t *testing.T) {
	var auth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		auth = r.Header.Get("Authorization")
		json.NewEncoder(w).Encode(map[string]any{"response": "ok"})
	}))
	defer srv.Close()

	g := newTestGateway(srv.URL+"/generate", "sekrit", 0)
	g.Generate(context.Background(), "hi", nil)

	assert.Equal(t, "Bearer sekrit", auth)
}

func TestGenerateHistoryTruncation(t *testing.T) {
	var captured chatRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, json.NewDecoder(r.Body).Decode(&captured))
		json.NewEncoder(w).Encode(map[string]any{
			"choices": []map[string]any{{"message": map[string]any{"content": "noted"}}},
		})
	}))
	defer srv.Close()

	history := make([]Turn, 8)
	for i := range history {
		history[i] = Turn{Type: "user", Content: string(rune('a' + i))}
	}

	g := newTestGateway(srv.URL+"/chat", "", 0)
	g.Generate(context.Background(), "latest", history)

	// system + last 5 history turns + new message
	require.Len(t, captured.Messages, 7)
	assert.Equal(t, "d", captured.Messages[1].Content)
	assert.Equal(t, "h", captured.Messages[5].Content)
	assert.Equal(t, "latest", captured.Messages[6].Content)
}

func TestGenerateFallbackOnServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	defer srv.Close()

	g := newTestGateway(srv.URL+"/generate", "", 0)
	message := "what's the best late-night food"
	resp := g.Generate(context.Background(), message, nil)

	want := NewResponder().Respond(message, nil)
	assert.True(t, resp.Success)
	assert.Equal(t, ModelFallback, resp.Model)
	assert.Equal(t, want.Text, resp.Text)
	assert.NotEmpty(t, resp.Note)
}

func TestGenerateFallbackOnMalformedPayload(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		io.WriteString(w, "{not json")
	}))
	defer srv.Close()

	g := newTestGateway(srv.URL+"/generate", "", 0)
	resp := g.Generate(context.Background(), "hi", nil)
	assert.Equal(t, ModelFallback, resp.Model)
	assert.True(t, resp.Success)
}

func TestGenerateFallbackOnTimeout(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(300 * time.Millisecond)
		json.NewEncoder(w).Encode(map[string]any{"response": "too late"})
	}))
	defer srv.Close()

	g := newTestGateway(srv.URL+"/generate", "", 50*time.Millisecond)
	resp := g.Generate(context.Background(), "hi", nil)
	assert.Equal(t, ModelFallback, resp.Model)
	assert.True(t, resp.Success)
}

func TestGenerateUnconfigured(t *testing.T) {
	g := newTestGateway("", "", 0)
	resp := g.Generate(context.Background(), "pizza?", nil)
	assert.Equal(t, ModelFallback, resp.Model)
	assert.Equal(t, Reply(TopicFood), resp.Text)
}

func TestStatusUnconfigured(t *testing.T) {
	g := newTestGateway("", "", 0)
	report := g.Status(context.Background())
	assert.False(t, report.Available)
	assert.Equal(t, "not_configured", report.Status)
}

func TestStatusConnected(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]any{"response": "LMU is great!"})
	}))
	defer srv.Close()

	g := newTestGateway(srv.URL+"/generate", "", 0)
	report := g.Status(context.Background())
	assert.True(t, report.Available)
	assert.Equal(t, "connected", report.Status)
	assert.Equal(t, srv.URL+"/generate", report.ModelEndpoint)
	assert.Equal(t, "LMU is great!", report.TestResponse)
}

func TestStatusError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "down", http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	g := newTestGateway(srv.URL+"/generate", "", 0)
	report := g.Status(context.Background())
	assert.False(t, report.Available)
	assert.Equal(t, "error", report.Status)
	assert.NotEmpty(t, report.Error)
}
