package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/amirhossein-jamali/currency-detector/internal/domain/port/core"
	auditUseCase "github.com/amirhossein-jamali/currency-detector/internal/domain/usecase/audit"
	authUseCase "github.com/amirhossein-jamali/currency-detector/internal/domain/usecase/auth"
	predictionUseCase "github.com/amirhossein-jamali/currency-detector/internal/domain/usecase/prediction"

	"github.com/amirhossein-jamali/currency-detector/internal/infrastructure/adapter/api/handler"
	"github.com/amirhossein-jamali/currency-detector/internal/infrastructure/adapter/api/routes"
	"github.com/amirhossein-jamali/currency-detector/internal/infrastructure/adapter/classifier"
	"github.com/amirhossein-jamali/currency-detector/internal/infrastructure/adapter/database"
	"github.com/amirhossein-jamali/currency-detector/internal/infrastructure/adapter/logger"
	"github.com/amirhossein-jamali/currency-detector/internal/infrastructure/adapter/repository"
	"github.com/amirhossein-jamali/currency-detector/internal/infrastructure/adapter/security"
	"github.com/amirhossein-jamali/currency-detector/internal/infrastructure/adapter/storage"
	timeProvider "github.com/amirhossein-jamali/currency-detector/internal/infrastructure/adapter/time"
	"github.com/amirhossein-jamali/currency-detector/internal/infrastructure/config"

	"github.com/gin-gonic/gin"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	if err := cfg.Validate(); err != nil {
		log.Fatalf("Configuration validation failed: %v", err)
	}

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	appLogger := logger.NewZapLogger(logger.Options{
		Production: cfg.IsProduction(),
		Level:      core.ParseLogLevel(cfg.Logger.Level),
		Service:    "currency-detector",
	})
	defer func() { _ = appLogger.Flush() }()

	if err := run(cfg, appLogger); err != nil {
		appLogger.Error("Server stopped with error", map[string]any{"error": err.Error()})
		_ = appLogger.Flush()
		os.Exit(1)
	}
}

func run(cfg *config.Config, appLogger core.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	tp := timeProvider.NewRealTimeProvider()

	dbManager := database.NewManager(toDatabaseConfig(cfg), appLogger, tp)
	if _, err := dbManager.Connect(); err != nil {
		return err
	}
	defer func() {
		if err := dbManager.Close(); err != nil {
			appLogger.Warn("Failed to close database", map[string]any{"error": err.Error()})
		}
	}()

	if err := dbManager.Migrate(ctx); err != nil {
		return fmt.Errorf("run migrations: %w", err)
	}

	// Repositories
	userRepo := repository.NewUserRepository(dbManager.DB(), appLogger)
	predictionRepo := repository.NewPredictionRepository(dbManager.DB(), appLogger)
	systemLogRepo := repository.NewSystemLogRepository(dbManager.DB(), appLogger)
	uow := dbManager.CreateUnitOfWork()

	// Adapters
	tokens, err := security.NewJWTTokenService(cfg.Auth.SecretKey, cfg.Auth.Algorithm, cfg.Auth.AccessTokenExpiry, tp)
	if err != nil {
		return fmt.Errorf("token service: %w", err)
	}
	hasher := security.NewBcryptHasher(cfg.Auth.BcryptCost)

	imageStore, err := storage.NewLocalImageStore(
		filepath.Join(cfg.Upload.StaticDir, cfg.Upload.Subdir),
		"/static/"+cfg.Upload.Subdir,
		appLogger,
	)
	if err != nil {
		return fmt.Errorf("image store: %w", err)
	}

	gemini, err := classifier.NewGeminiClassifier(ctx, cfg.Gemini.APIKey, cfg.Gemini.Model, appLogger)
	if err != nil {
		return fmt.Errorf("classifier: %w", err)
	}
	defer func() { _ = gemini.Close() }()

	// Use cases
	auditLogger := auditUseCase.NewLogger(systemLogRepo, tp, appLogger)
	authService := authUseCase.NewAuthUseCase(uow, userRepo, hasher, tokens, auditLogger, tp, appLogger)
	predictionService := predictionUseCase.NewPredictionUseCase(
		uow,
		predictionRepo,
		imageStore,
		gemini,
		classifier.NewJSONNormalizer(),
		auditLogger,
		tp,
		appLogger,
	)

	// HTTP
	router := gin.New()
	router.MaxMultipartMemory = cfg.Upload.MaxSizeBytes
	routes.SetupMiddlewares(router, appLogger)
	routes.SetupRoutes(router, routes.Handlers{
		Auth:       handler.NewAuthHandler(authService, appLogger),
		Prediction: handler.NewPredictionHandler(predictionService, cfg.Upload.MaxSizeBytes, appLogger),
		Health:     handler.NewHealthHandler(dbManager, appLogger),
	}, authService, routes.Options{
		StaticDir:      cfg.Upload.StaticDir,
		MaxUploadBytes: cfg.Upload.MaxSizeBytes,
	})

	server := &http.Server{
		Addr:              fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
		Handler:           router,
		ReadTimeout:       cfg.Server.ReadTimeout,
		WriteTimeout:      cfg.Server.WriteTimeout,
		ReadHeaderTimeout: cfg.Server.ReadHeaderTimeout,
		IdleTimeout:       cfg.Server.IdleTimeout,
	}

	serverErr := make(chan error, 1)
	go func() {
		appLogger.Info("Starting server", map[string]any{
			"addr": server.Addr,
			"env":  cfg.Environment,
		})
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
		close(serverErr)
	}()

	select {
	case err := <-serverErr:
		if err != nil {
			return fmt.Errorf("listen: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	appLogger.Info("Shutting down server...", nil)

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		appLogger.Error("Server forced to shutdown", map[string]any{
			"error": err.Error(),
		})
	}

	appLogger.Info("Server exited gracefully", nil)
	return nil
}

// toDatabaseConfig maps application settings onto the database adapter's config.
// A connection URL decides the driver on its own.
func toDatabaseConfig(cfg *config.Config) *database.Config {
	driver := cfg.Database.Driver
	if cfg.Database.URL != "" {
		driver = database.DriverFromURL(cfg.Database.URL)
	}

	return &database.Config{
		Driver:          driver,
		URL:             cfg.Database.URL,
		Host:            cfg.Database.Host,
		Port:            cfg.Database.Port,
		Username:        cfg.Database.Username,
		Password:        cfg.Database.Password,
		Database:        cfg.Database.Database,
		SSLMode:         cfg.Database.SSLMode,
		SQLitePath:      cfg.Database.SQLitePath,
		MaxOpenConns:    cfg.Database.MaxOpenConns,
		MaxIdleConns:    cfg.Database.MaxIdleConns,
		ConnMaxLifetime: cfg.Database.ConnMaxLifetime,
		ConnMaxIdleTime: cfg.Database.ConnMaxIdleTime,
		QueryTimeout:    cfg.Database.QueryTimeout,
		LogLevel:        cfg.Database.LogLevel,
		RetryAttempts:   cfg.Database.RetryAttempts,
		RetryDelay:      cfg.Database.RetryDelay,
	}
}
