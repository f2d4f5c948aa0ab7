package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"campus-llm/backend/internal/models"
	"campus-llm/backend/pkg/config"
	"campus-llm/backend/pkg/di"
	"campus-llm/backend/pkg/logger"
	"campus-llm/backend/pkg/router"

	"github.com/joho/godotenv"
	"gorm.io/gorm"
)

func main() {
	// Load environment variables
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found")
	}

	cfg := config.New()

	// Initialize structured logger
	logConfig := logger.DefaultConfig()
	logConfig.Level = cfg.Logging.Level
	logConfig.JSON = cfg.Logging.Format != "text"

	appLog := logger.New(logConfig)
	logger.SetGlobal(appLog)

	appLog.Info("Starting campus LLM backend",
		"env", cfg.Server.Env,
		"llama_endpoint", cfg.Llama.Endpoint,
	)

	// Connect the waitlist database when one is configured; otherwise
	// everything runs on the seeded in-memory store.
	var db *gorm.DB
	if cfg.DatabaseEnabled() {
		var err error
		db, err = config.NewDB()
		if err != nil {
			appLog.LogError(err, "Failed to initialize database")
			os.Exit(1)
		}
		if err := config.TestConnection(db); err != nil {
			appLog.LogError(err, "Database connection check failed")
			os.Exit(1)
		}
		if err := db.AutoMigrate(&models.WaitlistEntry{}); err != nil {
			appLog.LogError(err, "Failed to migrate database")
			os.Exit(1)
		}
	} else {
		appLog.Info("No database configured, using in-memory store")
	}

	// Initialize dependency injection container
	container := di.New(cfg, db, appLog)

	// Initialize and setup router
	r := router.New(container)
	r.SetupRoutes()

	// Create HTTP server
	srv := &http.Server{
		Addr:    ":" + cfg.Server.Port,
		Handler: r.Engine,
	}

	// Start the server in a goroutine
	go func() {
		appLog.Info("Server starting", "port", cfg.Server.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			appLog.LogError(err, "Server failed to start")
			os.Exit(1)
		}
	}()

	// Setup graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	// Block until we receive a signal
	<-quit
	appLog.Info("Shutting down server...")

	// Create a deadline to wait for
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	// Shutdown the server
	if err := srv.Shutdown(ctx); err != nil {
		appLog.LogError(err, "Server forced to shutdown")
	}

	appLog.Info("Server exited gracefully")
}
