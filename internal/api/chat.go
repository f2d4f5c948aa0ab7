package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"campus-llm/backend/ai"
	"campus-llm/backend/internal/models"
	"campus-llm/backend/pkg/metrics"
)

// ChatController handles the GenZ Buddy chatbot endpoints
type ChatController struct {
	gateway *ai.Gateway
}

// NewChatController creates a new chat controller
func NewChatController(gateway *ai.Gateway) *ChatController {
	return &ChatController{gateway: gateway}
}

// RegisterRoutes registers the routes for the chat controller
func (c *ChatController) RegisterRoutes(api *gin.RouterGroup) {
	api.POST("/genz-buddy", c.Chat)
	api.GET("/llama/status", c.Status)
}

// Chat generates a buddy reply. Upstream trouble never surfaces as an
// error here: the gateway degrades to the canned fallback catalog and
// the endpoint always answers 200 for a valid request.
func (c *ChatController) Chat(ctx *gin.Context) {
	var request models.ChatRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Message is required"})
		return
	}

	response := c.gateway.Generate(ctx.Request.Context(), request.Message, request.ConversationHistory)
	metrics.ChatResponses.WithLabelValues(response.Model).Inc()

	ctx.JSON(http.StatusOK, response)
}

// Status reports remote model connectivity
func (c *ChatController) Status(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, c.gateway.Status(ctx.Request.Context()))
}
