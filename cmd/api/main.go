package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/amirhossein-jamali/meta-model/internal/domain/entity"
	"github.com/amirhossein-jamali/meta-model/internal/domain/metamodel"
	coreport "github.com/amirhossein-jamali/meta-model/internal/domain/port/core"
	"github.com/amirhossein-jamali/meta-model/internal/domain/usecase/credential"
	"github.com/amirhossein-jamali/meta-model/internal/domain/usecase/twofactor"
	"github.com/amirhossein-jamali/meta-model/internal/infrastructure/adapter/api/handler"
	"github.com/amirhossein-jamali/meta-model/internal/infrastructure/adapter/api/routes"
	"github.com/amirhossein-jamali/meta-model/internal/infrastructure/adapter/database"
	"github.com/amirhossein-jamali/meta-model/internal/infrastructure/adapter/database/migration"
	"github.com/amirhossein-jamali/meta-model/internal/infrastructure/adapter/logger"
	timeProvider "github.com/amirhossein-jamali/meta-model/internal/infrastructure/adapter/time"
	"github.com/amirhossein-jamali/meta-model/internal/infrastructure/config"

	"github.com/gin-gonic/gin"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	if cfg.Environment == config.Production {
		gin.SetMode(gin.ReleaseMode)
	}

	appLogger, err := logger.NewZapLogger(logger.Config{
		Level:      cfg.Logger.Level,
		Production: cfg.Environment == config.Production || cfg.Logger.Format == "json",
	})
	if err != nil {
		log.Fatalf("Failed to create logger: %v", err)
	}
	defer func() { _ = appLogger.Flush() }()

	if err := run(cfg, appLogger); err != nil {
		appLogger.Error("Application stopped with error", map[string]any{"error": err.Error()})
		_ = appLogger.Flush()
		os.Exit(1)
	}
}

func run(cfg *config.Config, appLogger coreport.Logger) error {
	tp := timeProvider.NewRealTimeProvider()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	dbManager, err := database.NewManager(cfg, appLogger, tp)
	if err != nil {
		return fmt.Errorf("failed to configure database: %w", err)
	}
	if _, err := dbManager.Connect(ctx); err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	defer func() {
		if err := dbManager.Close(); err != nil {
			appLogger.Error("Failed to close database connections", map[string]any{"error": err.Error()})
		}
	}()

	// Model types carry the customization declared under models.<TypeName>
	credentials := entity.WebAuthnCredentialType(cfg.ModelCustomization(metamodel.TypeName(entity.WebAuthnCredential{})))
	twoFactor := entity.TwoFactorAuthenticationType(cfg.ModelCustomization(metamodel.TypeName(entity.TwoFactorAuthentication{})))

	if err := runMigrations(ctx, cfg, dbManager, credentials, twoFactor, appLogger); err != nil {
		return err
	}

	credentialService := credential.NewService(credentials, dbManager.ModelRepository(), tp, appLogger)
	twoFactorService := twofactor.NewService(twoFactor, dbManager.CreateUnitOfWork(), tp, appLogger)

	router := gin.New()
	routes.SetupMiddlewares(router, appLogger, tp)
	routes.SetupRoutes(router,
		handler.NewCredentialHandler(credentialService, appLogger),
		handler.NewTwoFactorHandler(twoFactorService, appLogger),
	)

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
			return fmt.Errorf("failed to start server: %w", err)
		}
	case <-ctx.Done():
	}

	appLogger.Info("Shutting down server...", nil)

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		appLogger.Error("Server forced to shutdown", map[string]any{"error": err.Error()})
	}

	appLogger.Info("Server exited gracefully", map[string]any{"pool": dbManager.PoolMetrics()})
	return nil
}

// runMigrations registers the bundled migrations and applies or reverts them as configured
func runMigrations(
	ctx context.Context,
	cfg *config.Config,
	dbManager *database.Manager,
	credentials, twoFactor *metamodel.Composer,
	appLogger coreport.Logger,
) error {
	morphType, err := cfg.MorphType()
	if err != nil {
		return err
	}

	migrations, err := dbManager.MigrationManager()
	if err != nil {
		return err
	}
	if err := migration.RegisterBundled(migrations, twoFactor, credentials, morphType); err != nil {
		return err
	}

	switch {
	case cfg.Migration.Rollback:
		reverted, err := migrations.Rollback(ctx)
		if err != nil {
			return fmt.Errorf("failed to roll back migrations: %w", err)
		}
		appLogger.Info("Migrations rolled back", map[string]any{"migrations": reverted})
	case cfg.Migration.AutoRun:
		applied, err := migrations.MigrateAll(ctx)
		if err != nil {
			return fmt.Errorf("failed to run migrations: %w", err)
		}
		appLogger.Info("Migrations applied", map[string]any{"migrations": applied})
	default:
		statuses, err := migrations.Status(ctx)
		if err != nil {
			return fmt.Errorf("failed to read migration status: %w", err)
		}
		for _, status := range statuses {
			if !status.Applied {
				appLogger.Warn("Migration pending", map[string]any{
					"migration":  status.Name,
					"connection": status.Connection,
				})
			}
		}
	}
	return nil
}
