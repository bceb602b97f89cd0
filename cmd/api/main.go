package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/mehrdad-arman/daytime-service/internal/domain/port/core"
	clockUseCase "github.com/mehrdad-arman/daytime-service/internal/domain/usecase/clock"
	entryUseCase "github.com/mehrdad-arman/daytime-service/internal/domain/usecase/entry"

	"github.com/mehrdad-arman/daytime-service/internal/domain/format"
	"github.com/mehrdad-arman/daytime-service/internal/infrastructure/adapter/api/handler"
	"github.com/mehrdad-arman/daytime-service/internal/infrastructure/adapter/api/routes"
	"github.com/mehrdad-arman/daytime-service/internal/infrastructure/adapter/database"
	"github.com/mehrdad-arman/daytime-service/internal/infrastructure/adapter/database/migration"
	"github.com/mehrdad-arman/daytime-service/internal/infrastructure/adapter/logger"
	"github.com/mehrdad-arman/daytime-service/internal/infrastructure/adapter/repository"
	timeProvider "github.com/mehrdad-arman/daytime-service/internal/infrastructure/adapter/time"
	"github.com/mehrdad-arman/daytime-service/internal/infrastructure/config"

	"github.com/gin-gonic/gin"
)

func main() {
	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	if err := validateConfig(cfg); err != nil {
		log.Fatalf("Configuration validation failed: %v", err)
	}

	// Set Gin mode based on environment
	if cfg.Environment == config.Production {
		gin.SetMode(gin.ReleaseMode)
	}

	// Create logger
	appLogger := logger.NewZapLogger(cfg.Environment == config.Production)
	appLogger.SetLevel(parseLogLevel(cfg.Logger.Level))

	// Setup database configuration
	dbConfig := &database.Config{
		Driver:          cfg.Database.Driver,
		Host:            cfg.Database.Host,
		Port:            database.ParsePort(cfg.Database.Port),
		Username:        cfg.Database.Username,
		Password:        cfg.Database.Password,
		Database:        cfg.Database.Database,
		SSLMode:         cfg.Database.SSLMode,
		MaxOpenConns:    cfg.Database.MaxOpenConns,
		MaxIdleConns:    cfg.Database.MaxIdleConns,
		ConnMaxLifetime: cfg.Database.ConnMaxLifetime,
		ConnMaxIdleTime: cfg.Database.ConnMaxIdleTime,
		QueryTimeout:    cfg.Database.QueryTimeout,
		LogLevel:        cfg.Logger.Level,
		RetryAttempts:   cfg.Database.RetryAttempts,
		RetryDelay:      cfg.Database.RetryDelay,
	}

	// Initialize time provider
	tp := timeProvider.NewRealTimeProvider()

	// Connect to the database
	dbManager := database.NewManager(dbConfig, appLogger, tp)
	if _, err := dbManager.Connect(); err != nil {
		appLogger.Error("Failed to connect to database", map[string]any{
			"error": err.Error(),
		})
		os.Exit(1)
	}
	defer dbManager.Close()

	// Run migrations
	migrationMgr := migration.NewManager(dbManager.DB(), appLogger, tp)
	if err := migrationMgr.MigrateAll(); err != nil {
		appLogger.Error("Failed to run migrations", map[string]any{
			"error": err.Error(),
		})
		os.Exit(1)
	}

	if cfg.Clock.SeedEntries {
		if err := migrationMgr.SeedDefaultEntries(); err != nil {
			appLogger.Error("Failed to seed default entries", map[string]any{
				"error": err.Error(),
			})
		}
	}

	// Initialize repositories
	entryRepo := repository.NewEntryRepository(dbManager.DB(), tp, appLogger)

	// The built-in resolver registry: H/m/s bound to the formatted value
	registry := format.DefaultRegistry()

	// Initialize use cases
	entryUseCaseImpl := entryUseCase.NewUseCase(entryRepo, registry, tp, appLogger, cfg.Clock.DefaultPattern)
	clockUseCaseImpl := clockUseCase.NewUseCase(registry, tp, appLogger, cfg.Clock.DefaultPattern)

	// Initialize API handlers
	entryHandler := handler.NewEntryHandler(entryUseCaseImpl, appLogger)
	clockHandler := handler.NewClockHandler(clockUseCaseImpl, appLogger)

	// Initialize Gin router
	router := gin.New()
	routes.SetupMiddlewares(router, appLogger)
	routes.SetupRoutes(router, entryHandler, clockHandler)

	// Create HTTP server with configurable timeout values
	server := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:           router,
		ReadTimeout:       cfg.Server.ReadTimeout,
		WriteTimeout:      cfg.Server.WriteTimeout,
		ReadHeaderTimeout: cfg.Server.ReadHeaderTimeout,
		IdleTimeout:       cfg.Server.IdleTimeout,
	}

	// Start the server in a goroutine
	go func() {
		appLogger.Info("Starting server", map[string]any{
			"port": cfg.Server.Port,
			"env":  cfg.Environment,
		})

		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			appLogger.Error("Failed to start server", map[string]any{
				"error": err.Error(),
			})
			os.Exit(1)
		}
	}()

	// Wait for interrupt signal to gracefully shut down the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	appLogger.Info("Shutting down server...", nil)

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		appLogger.Error("Server forced to shutdown", map[string]any{
			"error": err.Error(),
		})
	}

	appLogger.Info("Server exited gracefully", nil)
}

// parseLogLevel maps the configured level name to a core log level
func parseLogLevel(level string) core.LogLevel {
	switch strings.ToLower(level) {
	case "debug":
		return core.LogLevelDebug
	case "warn":
		return core.LogLevelWarn
	case "error":
		return core.LogLevelError
	default:
		return core.LogLevelInfo
	}
}

// validateConfig ensures all required configuration values are present
func validateConfig(cfg *config.Config) error {
	var missingConfigs []string

	if cfg.Server.Port == 0 {
		missingConfigs = append(missingConfigs, "server.port")
	}
	if cfg.Server.ReadTimeout == 0 {
		missingConfigs = append(missingConfigs, "server.readTimeout")
	}
	if cfg.Server.WriteTimeout == 0 {
		missingConfigs = append(missingConfigs, "server.writeTimeout")
	}
	if cfg.Server.ShutdownTimeout == 0 {
		missingConfigs = append(missingConfigs, "server.shutdownTimeout")
	}

	if cfg.Database.Host == "" {
		if cfg.Environment == config.Production && os.Getenv("DT_DB_HOST") == "" {
			missingConfigs = append(missingConfigs, "database.host (or DT_DB_HOST environment variable)")
		} else if cfg.Environment != config.Production {
			missingConfigs = append(missingConfigs, "database.host")
		}
	}
	if cfg.Database.Username == "" {
		if cfg.Environment == config.Production && os.Getenv("DT_DB_USERNAME") == "" {
			missingConfigs = append(missingConfigs, "database.username (or DT_DB_USERNAME environment variable)")
		} else if cfg.Environment != config.Production {
			missingConfigs = append(missingConfigs, "database.username")
		}
	}
	if cfg.Database.Password == "" {
		if cfg.Environment == config.Production && os.Getenv("DT_DB_PASSWORD") == "" {
			missingConfigs = append(missingConfigs, "database.password (or DT_DB_PASSWORD environment variable)")
		} else if cfg.Environment != config.Production {
			missingConfigs = append(missingConfigs, "database.password")
		}
	}
	if cfg.Database.Database == "" {
		if cfg.Environment == config.Production && os.Getenv("DT_DB_NAME") == "" {
			missingConfigs = append(missingConfigs, "database.database (or DT_DB_NAME environment variable)")
		} else if cfg.Environment != config.Production {
			missingConfigs = append(missingConfigs, "database.database")
		}
	}
	if cfg.Database.QueryTimeout == 0 {
		missingConfigs = append(missingConfigs, "database.queryTimeout")
	}

	if cfg.Logger.Level == "" {
		missingConfigs = append(missingConfigs, "logger.level")
	}

	if cfg.Clock.DefaultPattern == "" {
		missingConfigs = append(missingConfigs, "clock.defaultPattern")
	}

	if cfg.Environment == "" {
		missingConfigs = append(missingConfigs, "environment")
	} else if cfg.Environment != config.Development &&
		cfg.Environment != config.Production &&
		cfg.Environment != config.Test {
		return fmt.Errorf("invalid environment value: %s, must be one of: %s, %s, or %s",
			cfg.Environment, config.Development, config.Production, config.Test)
	}

	if len(missingConfigs) > 0 {
		return fmt.Errorf("missing required configurations: %v", missingConfigs)
	}

	return nil
}
