package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"gemvault_backend/database"
	"gemvault_backend/internal/config"
	"gemvault_backend/internal/email"
	"gemvault_backend/internal/handlers"
	"gemvault_backend/internal/logger"
	"gemvault_backend/internal/middleware"
	"gemvault_backend/internal/repositories"
	"gemvault_backend/internal/routes"
	"gemvault_backend/internal/services"
	"gemvault_backend/internal/validator"
)

// SetupRouter собирает все зависимости и возвращает готовый роутер.
// Вынесено из Run, чтобы тесты могли поднять приложение на своей БД.
func SetupRouter(db *gorm.DB, cfg *config.Config) (*gin.Engine, error) {
	if err := validator.Init(); err != nil {
		return nil, fmt.Errorf("failed to register validators: %w", err)
	}

	userRepo := repositories.NewUserRepository(db)
	profileRepo := repositories.NewProfileRepository(db)
	portfolioRepo := repositories.NewPortfolioRepository(db)
	referenceRepo := repositories.NewReferenceRepository(db)

	emailProvider := email.NewProvider(cfg)

	authService := services.NewAuthService(userRepo, emailProvider)
	userService := services.NewUserService(userRepo, profileRepo, portfolioRepo)
	referenceService := services.NewReferenceService(referenceRepo)

	authHandler := handlers.NewAuthHandler(authService)
	userHandler := handlers.NewUserHandler(userService)
	referenceHandler := handlers.NewReferenceHandler(referenceService)

	if cfg.Server.Env != "development" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.RequestLogging())
	r.Use(middleware.CORS(cfg))

	routes.SetupRoutes(r, authHandler, userHandler, referenceHandler)

	return r, nil
}

// Run запускает приложение: конфиг, БД, миграции, HTTP-сервер
// с graceful shutdown
func Run() error {
	config.LoadConfig()
	cfg := config.GetConfig()

	logger.Init(cfg.Server.Env)

	db, err := database.Connect(cfg.Database.DSN, cfg.Server.Env)
	if err != nil {
		return err
	}

	if err := database.Migrate(db); err != nil {
		return fmt.Errorf("migration failed: %w", err)
	}

	router, err := SetupRouter(db, cfg)
	if err != nil {
		return err
	}

	srv := &http.Server{
		Addr:              fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		logger.Info("Server starting", "addr", srv.Addr, "env", cfg.Server.Env)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("Server failed", "error", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down server")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		return fmt.Errorf("forced shutdown: %w", err)
	}

	logger.Info("Server stopped")
	return nil
}
