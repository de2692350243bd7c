package main

import (
	"fmt"
	"os"

	"github.com/bancoideias/backend-go/internal/api"
	"github.com/bancoideias/backend-go/internal/config"
	"github.com/bancoideias/backend-go/internal/database"
	"github.com/bancoideias/backend-go/internal/database/repository"
	"github.com/bancoideias/backend-go/internal/database/service"
	"github.com/bancoideias/backend-go/internal/handler"
	"github.com/bancoideias/backend-go/internal/logger"
	"github.com/bancoideias/backend-go/internal/middleware"
)

func main() {
	// 1. Config
	cfg := config.LoadConfig()

	// 2. Logger
	appLogger := logger.New(cfg)

	appLogger.Info("🚀 [Go] Starting Banco de Ideias API...",
		"environment", cfg.AppEnv,
	)

	// 3. Connect to Database
	db, err := database.ConnectDatabase(cfg, appLogger)
	if err != nil {
		appLogger.Error("❌ Failed to connect to database", "error", err)
		os.Exit(1)
	}

	// 4. Initialize Repositories
	userRepo := repository.NewUserRepository(db)
	ideaRepo := repository.NewIdeaRepository(db)

	// 5. Initialize Services
	authService := service.NewAuthService(userRepo, cfg, appLogger)
	ideaService := service.NewIdeaService(ideaRepo, appLogger)

	// 6. Initialize Handlers & Middleware
	authHandler := handler.NewAuthHandler(authService, appLogger)
	ideaHandler := handler.NewIdeaHandler(ideaService, appLogger)
	authMiddleware := middleware.NewAuthMiddleware(authService, appLogger)

	// 7. Initialize Rate Limiter
	rateLimiter, err := middleware.NewRateLimiter(cfg, appLogger)
	if err != nil {
		appLogger.Warn("⚠️ Failed to connect to Redis, using no-op rate limiter", "error", err)
		rateLimiter = middleware.NewNoOpRateLimiter(appLogger)
	}
	defer rateLimiter.Close()

	// 8. Router & HTTP Server
	r := api.SetupRouter(authHandler, ideaHandler, authMiddleware, rateLimiter)

	addr := fmt.Sprintf(":%s", cfg.ApiServicePort)
	appLogger.Info("🌍 [Go] HTTP Server running on port...", "port", addr)
	if err := r.Run(addr); err != nil {
		appLogger.Error("❌ HTTP Server failed to start", "error", err)
		os.Exit(1)
	}
}
