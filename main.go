// File: servicebuddy/main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"servicebuddy/config"
	"servicebuddy/handlers"
	"servicebuddy/middleware"
	"servicebuddy/routes"
	"servicebuddy/services/chat"
	ai "servicebuddy/services/intelligence"
	"servicebuddy/services/profile"
	"servicebuddy/services/transcribe"
	"servicebuddy/services/usage"
	"servicebuddy/utils"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	// Per-session state and quotas live in Redis when configured; an empty
	// REDIS_ADDR falls back to process-local state for single-instance runs.
	var sessionStore profile.SessionStore
	var limiter usage.Limiter
	if config.AppConfig.RedisAddr != "" {
		utils.InitRedis()
		ttl := time.Duration(config.AppConfig.SessionTTLMinutes) * time.Minute
		sessionStore = profile.NewRedisSessionStore(utils.GetSessionCacheClient(), ttl)
		limiter = usage.NewRedisLimiter(utils.GetUsageCacheClient(), config.AppConfig.AIDailyLimit)
		utils.StartHealthMonitor([]*redis.Client{
			utils.GetUsageCacheClient(),
			utils.GetSessionCacheClient(),
		})
	} else {
		logger.Sugar().Warn("main: no Redis configured, using in-process session and usage state")
		sessionStore = profile.NewMemorySessionStore()
		limiter = usage.NewMemoryLimiter(config.AppConfig.AIDailyLimit)
	}

	var generator ai.Generator
	if config.AppConfig.GeminiAPIKey != "" {
		g, err := ai.NewGeminiGenerator(config.AppConfig.GeminiAPIKey)
		if err != nil {
			logger.Sugar().Warnf("main: AI collaborator unavailable: %v", err)
		} else {
			generator = g
		}
	}

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RequestIDMiddleware())
	router.Use(middleware.RateLimitMiddleware())

	// services.
	chatService := &chat.DefaultChatService{
		Sessions:         sessionStore,
		Limiter:          limiter,
		Generator:        generator,
		GeneratorFactory: ai.NewGeminiGenerator,
	}

	chatHandler := handlers.NewChatHandler(chatService)
	usageHandler := handlers.NewUsageHandler(limiter)
	transcribeHandler := handlers.NewTranscribeHandler(transcribe.NewGoogleTranscriber())

	// Assemble the handler bundle.
	handlerBundle := &handlers.HandlerBundle{
		ChatHandler:        chatHandler.HandleChat,
		GetUsageHandler:    usageHandler.GetUsageHandler,
		RecordUsageHandler: usageHandler.RecordUsageHandler,
		TranscribeHandler:  transcribeHandler.HandleTranscribe,
	}

	// Register routes with the assembled handler bundle.
	routes.RegisterRoutes(router, handlerBundle)

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
