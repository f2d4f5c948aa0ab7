package router

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"campus-llm/backend/pkg/config"
	"campus-llm/backend/pkg/di"
	"campus-llm/backend/pkg/logger"
)

func testRouter(t *testing.T) *Router {
	t.Helper()
	gin.SetMode(gin.TestMode)

	log := logger.New(logger.Config{Level: "error", JSON: true, Output: io.Discard})
	container := di.New(config.New(), nil, log)
	r := New(container)
	r.SetupRoutes()
	return r
}

func postJSON(r *Router, path, body string) *httptest.ResponseRecorder {
	recorder := httptest.NewRecorder()
	request := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	request.Header.Set("Content-Type", "application/json")
	r.Engine.ServeHTTP(recorder, request)
	return recorder
}

// Validation failures must come back as exactly one JSON document with
// the handler's field-level message, even with the error-handler
// middleware installed.
func TestValidationErrorsSingleDocument(t *testing.T) {
	r := testRouter(t)

	cases := []struct {
		path    string
		body    string
		message string
	}{
		{"/api/genz-buddy", `{}`, "Message is required"},
		{"/api/events/1/rsvp", `{}`, "user_id is required"},
		{"/api/events/1/checkin", `{}`, "user_id is required"},
		{"/api/prizes/1/claim", `{}`, "user_id is required"},
		{"/api/users/1/points", `not json`, "Invalid request format"},
		{"/api/waitlist", `{"name": "Test Student"}`, "name, email and student_id are required"},
	}

	for _, tc := range cases {
		recorder := postJSON(r, tc.path, tc.body)
		require.Equal(t, http.StatusBadRequest, recorder.Code, tc.path)

		var body struct {
			Error string `json:"error"`
		}
		require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &body), "body for %s: %s", tc.path, recorder.Body.String())
		assert.Equal(t, tc.message, body.Error, tc.path)
	}
}

func TestHealthEndpoint(t *testing.T) {
	r := testRouter(t)

	recorder := httptest.NewRecorder()
	request := httptest.NewRequest(http.MethodGet, "/health", nil)
	r.Engine.ServeHTTP(recorder, request)

	require.Equal(t, http.StatusOK, recorder.Code)
	assert.Contains(t, recorder.Body.String(), `"status":"ok"`)
}

func TestBannerReportsLlamaAvailability(t *testing.T) {
	r := testRouter(t)

	recorder := httptest.NewRecorder()
	request := httptest.NewRequest(http.MethodGet, "/", nil)
	r.Engine.ServeHTTP(recorder, request)

	require.Equal(t, http.StatusOK, recorder.Code)

	var banner struct {
		Message        string `json:"message"`
		LlamaAvailable bool   `json:"llama_available"`
	}
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &banner))
	assert.Equal(t, "LMU Campus LLM API", banner.Message)
	assert.False(t, banner.LlamaAvailable)
}
