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

// UserController handles user-related API endpoints
type UserController struct {
	users *service.UserService
}

// NewUserController creates a new user controller
func NewUserController(users *service.UserService) *UserController {
	return &UserController{users: users}
}

// RegisterRoutes registers the routes for the user controller
func (c *UserController) RegisterRoutes(api *gin.RouterGroup) {
	api.GET("/users/:id", c.GetUser)
	api.POST("/users/:id/points", c.AddPoints)
}

// GetUser retrieves a user by id
func (c *UserController) GetUser(ctx *gin.Context) {
	id, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid user ID"})
		return
	}

	user, err := c.users.GetUser(id)
	if err != nil {
		ctx.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		return
	}
	ctx.JSON(http.StatusOK, user)
}

// AddPoints credits points to a user and returns the new balance
func (c *UserController) AddPoints(ctx *gin.Context) {
	id, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid user ID"})
		return
	}

	var request models.AddPointsRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	newPoints, err := c.users.AddPoints(ctx.Request.Context(), id, request.Points)
	if err != nil {
		if errors.Is(err, store.ErrUserNotFound) {
			ctx.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
			return
		}
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"success": true, "newPoints": newPoints})
}
