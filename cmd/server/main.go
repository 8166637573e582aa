package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/creatorsmela/admin-console/docs"
	"github.com/creatorsmela/admin-console/internal/config"
	"github.com/creatorsmela/admin-console/internal/router"
	"github.com/creatorsmela/admin-console/internal/session"
	"github.com/creatorsmela/admin-console/internal/upstream"
	"github.com/creatorsmela/admin-console/internal/utils"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

// @title CreatorsMela Admin Console API
// @version 1.0
// @description Console gateway for the CreatorsMela influencer marketing dashboard

// @BasePath /api/v1

func main() {
	// Load environment variables
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	cfg := config.Load()
	docs.SwaggerInfo.BasePath = cfg.BasePath

	// Configure logging
	configureLogging(cfg.LogLevel)

	// Initialize Sentry
	utils.InitSentry(cfg.SentryDSN)

	// Local state survives restarts the way a browser's storage would
	storage, err := session.NewFileStorage(cfg.StateFile)
	if err != nil {
		logrus.Fatalf("Failed to open state file: %v", err)
	}

	client := upstream.NewClient(cfg.APIBaseURL, cfg.UpstreamTimeout)
	store := session.NewStore(client, storage)

	// Validate any stored token before serving traffic
	bootstrapCtx, cancelBootstrap := context.WithTimeout(context.Background(), cfg.UpstreamTimeout)
	store.Bootstrap(bootstrapCtx)
	cancelBootstrap()

	// Watch the session token for expiry
	watchdog := session.NewWatchdog(store, time.Minute)
	watchdog.Start()
	defer watchdog.Stop()

	r := router.SetupRouter(store, client, cfg.BasePath)

	srv := &http.Server{
		Addr:    fmt.Sprintf(":%s", cfg.Port),
		Handler: r,
	}

	// Start server in a goroutine
	go func() {
		logrus.Infof("Server starting on port %s", cfg.Port)
		logrus.Infof("API Health Check: http://localhost:%s%s/health", cfg.Port, cfg.BasePath)
		logrus.Infof("Swagger UI: http://localhost:%s/swagger/index.html", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logrus.Fatalf("Failed to start server: %v", err)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logrus.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logrus.Fatalf("Server forced to shutdown: %v", err)
	}

	logrus.Info("Server exited properly")
}

func configureLogging(logLevel string) {
	level, err := logrus.ParseLevel(logLevel)
	if err != nil {
		level = logrus.InfoLevel
	}
	logrus.SetLevel(level)
	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp: true,
	})
}
