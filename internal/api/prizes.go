package api

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"campus-llm/backend/internal/models"
	"campus-llm/backend/internal/service"
	"campus-llm/backend/internal/store"
)

// PrizeController handles prize-related API endpoints
type PrizeController struct {
	prizes *service.PrizeService
}

// NewPrizeController creates a new prize controller
func NewPrizeController(prizes *service.PrizeService) *PrizeController {
	return &PrizeController{prizes: prizes}
}

// RegisterRoutes registers the routes for the prize controller
func (c *PrizeController) RegisterRoutes(api *gin.RouterGroup) {
	api.GET("/prizes", c.ListPrizes)
	api.POST("/prizes/:id/claim", c.Claim)
}

// ListPrizes returns all prizes
func (c *PrizeController) ListPrizes(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, c.prizes.ListPrizes())
}

// Claim attempts to claim a prize for a user. The claim is validated
// and applied atomically: concurrent claims for the same prize cannot
// both succeed, and the rejected caller must re-fetch state.
func (c *PrizeController) Claim(ctx *gin.Context) {
	id, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid prize ID"})
		return
	}

	var request models.ClaimRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "user_id is required"})
		return
	}

	remaining, err := c.prizes.Claim(ctx.Request.Context(), id, request.UserID)
	if err != nil {
		switch {
		case errors.Is(err, store.ErrPrizeNotFound):
			ctx.JSON(http.StatusNotFound, gin.H{"error": "Prize not found"})
		case errors.Is(err, store.ErrUserNotFound):
			ctx.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		case errors.Is(err, store.ErrPrizeClaimed):
			ctx.JSON(http.StatusBadRequest, gin.H{"error": "Prize already claimed"})
		case errors.Is(err, store.ErrInsufficientPoints):
			ctx.JSON(http.StatusBadRequest, gin.H{"error": "Insufficient points"})
		default:
			ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		}
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"success": true, "remainingPoints": remaining})
}
