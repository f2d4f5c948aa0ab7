package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"campus-llm/backend/internal/service"
)

// LeaderboardController serves the points standings
type LeaderboardController struct {
	leaderboard *service.LeaderboardService
}

// NewLeaderboardController creates a new leaderboard controller
func NewLeaderboardController(leaderboard *service.LeaderboardService) *LeaderboardController {
	return &LeaderboardController{leaderboard: leaderboard}
}

// RegisterRoutes registers the routes for the leaderboard controller
func (c *LeaderboardController) RegisterRoutes(api *gin.RouterGroup) {
	api.GET("/leaderboard", c.Standings)
}

// Standings returns all users ranked by points
func (c *LeaderboardController) Standings(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, c.leaderboard.Standings(ctx.Request.Context()))
}
