// File: /main.go
package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm/logger"

	_ "time/tzdata"

	"driverledger/config"
	"driverledger/database"
	"driverledger/jobs"
	"driverledger/middleware"
	"driverledger/routes"
	"driverledger/services"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		slog.Error("invalid configuration", "error", err)
		os.Exit(1)
	}

	gin.SetMode(cfg.GinMode)
	logLevel := logger.Warn
	if gin.Mode() == gin.DebugMode {
		logLevel = logger.Info
	}

	// Initialize database
	db, err := database.Initialize(cfg.DatabaseDriver, cfg.DatabaseURL, logLevel)
	if err != nil {
		slog.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}

	// Run migrations
	if err := database.Migrate(db); err != nil {
		slog.Error("failed to migrate database", "error", err)
		os.Exit(1)
	}

	if err := database.SeedData(db); err != nil {
		slog.Warn("failed to seed database", "error", err)
	}

	emailService := services.NewEmailService(cfg)

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestLogger())
	router.Use(middleware.SecurityHeaders())
	router.Use(middleware.ErrorHandler())

	if err := routes.SetupRoutes(router, db, cfg, emailService); err != nil {
		slog.Error("failed to set up routes", "error", err)
		os.Exit(1)
	}

	reminderJob := jobs.NewReminderJob(db, emailService, cfg.ReminderInterval, cfg.Location())
	reminderJob.Start()
	defer reminderJob.Stop()

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		slog.Info("starting Driver Ledger", "port", cfg.Port, "mode", gin.Mode())
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("server failed", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		slog.Error("forced shutdown", "error", err)
	}
	slog.Info("server stopped")
}
