package router

import (
	"time"

	"campus-llm/backend/internal/api"
	"campus-llm/backend/pkg/config"
	"campus-llm/backend/pkg/di"
	"campus-llm/backend/pkg/errors"
	"campus-llm/backend/pkg/logger"
	"campus-llm/backend/pkg/metrics"
	"campus-llm/backend/pkg/middleware"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
)

// Router is the main router for the application
type Router struct {
	Engine    *gin.Engine
	Container *di.Container
	Logger    *logger.Logger
	Config    *config.Config
}

// New creates a new router with the given container
func New(container *di.Container) *Router {
	// Use the container's logger
	logger.SetGlobal(container.Logger)

	// Load configuration
	cfg := config.Get()

	// Configure Gin mode based on environment
	if cfg.Server.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	// Initialize Gin router
	engine := gin.New()

	// Use the logger middleware first to capture all requests
	engine.Use(logger.Middleware(container.Logger))

	// Add custom error handler middleware
	engine.Use(errors.ErrorHandler())

	// Add custom recovery middleware with structured logging instead of default
	engine.Use(errors.RecoveryWithLogger())

	// Record request metrics for every route
	engine.Use(metrics.Middleware())

	// Apply rate limiting to all routes
	limiterOptions := middleware.DefaultRateLimiterOptions()
	limiterOptions.Limit = rate.Limit(cfg.Security.RateLimit)
	limiterOptions.Burst = cfg.Security.RateLimitBurst
	rateLimiter := middleware.NewRateLimiter(container.Logger, limiterOptions)
	engine.Use(rateLimiter.Middleware())

	return &Router{
		Engine:    engine,
		Container: container,
		Logger:    container.Logger,
		Config:    cfg,
	}
}

// SetupRoutes registers all application routes
func (r *Router) SetupRoutes() {
	// Add CORS middleware
	r.Engine.Use(corsMiddleware(r.Config.Security.AllowedOrigins))

	// Initialize controllers
	userController := api.NewUserController(r.Container.UserService)
	eventController := api.NewEventController(r.Container.EventService)
	prizeController := api.NewPrizeController(r.Container.PrizeService)
	leaderboardController := api.NewLeaderboardController(r.Container.LeaderboardService)
	waitlistController := api.NewWaitlistController(r.Container.WaitlistService)
	chatController := api.NewChatController(r.Container.Gateway)

	// Service banner
	r.Engine.GET("/", r.bannerHandler())

	// Health check and metrics endpoints
	r.Engine.GET("/health", r.healthCheckHandler())
	r.Engine.GET("/metrics", metrics.Handler())

	// API routes
	apiGroup := r.Engine.Group("/api")
	{
		userController.RegisterRoutes(apiGroup)
		eventController.RegisterRoutes(apiGroup)
		prizeController.RegisterRoutes(apiGroup)
		leaderboardController.RegisterRoutes(apiGroup)
		waitlistController.RegisterRoutes(apiGroup)
		chatController.RegisterRoutes(apiGroup)
	}
}

// bannerHandler returns the service banner
func (r *Router) bannerHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(200, gin.H{
			"message":         "LMU Campus LLM API",
			"version":         "1.0.0",
			"status":          "running",
			"llama_available": r.Container.Gateway.Endpoint() != "",
		})
	}
}

// healthCheckHandler returns a simple health check handler
func (r *Router) healthCheckHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":  "ok",
			"version": r.Config.Server.Env,
			"time":    time.Now().Format(time.RFC3339),
		})
	}
}

func corsMiddleware(allowed []string) gin.HandlerFunc {
	allowAny := len(allowed) == 0
	for _, origin := range allowed {
		if origin == "*" {
			allowAny = true
		}
	}

	return func(c *gin.Context) {
		origin := c.Request.Header.Get("Origin")
		switch {
		case origin == "":
			origin = "*"
		case !allowAny && !originAllowed(allowed, origin):
			c.Next()
			return
		}

		c.Writer.Header().Set("Access-Control-Allow-Origin", origin)
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept, Accept-Encoding, X-CSRF-Token, Authorization, Origin")
		c.Writer.Header().Set("Access-Control-Max-Age", "86400")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	}
}

func originAllowed(allowed []string, origin string) bool {
	for _, candidate := range allowed {
		if candidate == origin {
			return true
		}
	}
	return false
}
