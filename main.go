// File: joino/main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"joino/config"
	"joino/cron"
	"joino/database"
	eventRepo "joino/database/repository/event"
	userRepoPkg "joino/database/repository/user"
	"joino/handlers"
	"joino/middleware"
	"joino/routes"
	"joino/services/feed"
	"joino/utils"

	"github.com/gin-gonic/gin"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitCache()
	utils.InitFeedCache()

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())

	// repositories.
	eventsRepo := eventRepo.NewMongoEventRepo()
	usersRepo := userRepoPkg.NewMongoUserRepo()

	// services.
	feedCache := feed.NewCache(utils.GetFeedCacheClient(), utils.GetCacheClient())
	feedService := &feed.DefaultFeedService{
		Events: eventsRepo,
		Users:  usersRepo,
		Cache:  feedCache,
		Clock:  feed.SystemClock{},
	}

	feedHandler := handlers.NewFeedHandler(feedService, logger)

	// Background cache warmer.
	cron.InitFeedWarmWorker(feedService, usersRepo, feedCache)

	// Register routes.
	routes.RegisterRoutes(router, feedHandler)

	// Start the HTTP server.
	port := config.AppConfig.AppPort
	if port == "" {
		port = "8080"
	}
	srv := &http.Server{
		Addr:    "0.0.0.0:" + port,
		Handler: router,
	}

	logger.Sugar().Infof("Starting server on %s...", srv.Addr)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Sugar().Fatalf("main: server failed to start: %v", err)
		}
	}()

	// Wait for an OS signal to gracefully shutdown.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Sugar().Info("main: server is shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Sugar().Fatalf("main: server forced to shutdown: %v", err)
	}

	logger.Sugar().Info("main: server stopped gracefully")
}
