package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"campus-llm/backend/internal/models"
	"campus-llm/backend/internal/service"
	"campus-llm/backend/internal/store"
)

// WaitlistController handles pre-launch signup endpoints
type WaitlistController struct {
	waitlist *service.WaitlistService
}

// NewWaitlistController creates a new waitlist controller
func NewWaitlistController(waitlist *service.WaitlistService) *WaitlistController {
	return &WaitlistController{waitlist: waitlist}
}

// RegisterRoutes registers the routes for the waitlist controller
func (c *WaitlistController) RegisterRoutes(api *gin.RouterGroup) {
	api.POST("/waitlist", c.Join)
	api.GET("/waitlist/count", c.Count)
}

// Join validates and records a waitlist signup
func (c *WaitlistController) Join(ctx *gin.Context) {
	var request models.WaitlistSignupRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "name, email and student_id are required"})
		return
	}

	entry, err := c.waitlist.Join(ctx.Request.Context(), &request)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidStudentID):
			ctx.JSON(http.StatusBadRequest, gin.H{"error": "Student ID must be exactly 8 digits"})
		case errors.Is(err, store.ErrDuplicateSignup):
			ctx.JSON(http.StatusBadRequest, gin.H{"error": "Email or student ID already on the waitlist"})
		default:
			ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		}
		return
	}

	ctx.JSON(http.StatusCreated, gin.H{
		"success": true,
		"message": "You're on the list! We'll reach out soon.",
		"entry":   entry,
	})
}

// Count returns the number of waitlist signups
func (c *WaitlistController) Count(ctx *gin.Context) {
	count, err := c.waitlist.Count(ctx.Request.Context())
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"count": count})
}
