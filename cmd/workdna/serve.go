package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/SAP-F-2025/workdna-service/internal/cache"
	"github.com/SAP-F-2025/workdna-service/internal/catalog"
	"github.com/SAP-F-2025/workdna-service/internal/config"
	"github.com/SAP-F-2025/workdna-service/internal/handlers"
	"github.com/SAP-F-2025/workdna-service/internal/metrics"
	"github.com/SAP-F-2025/workdna-service/internal/repositories"
	"github.com/SAP-F-2025/workdna-service/internal/repositories/memory"
	"github.com/SAP-F-2025/workdna-service/internal/repositories/postgres"
	"github.com/SAP-F-2025/workdna-service/internal/services"
	"github.com/SAP-F-2025/workdna-service/internal/utils"
	"github.com/SAP-F-2025/workdna-service/internal/validator"
	"github.com/SAP-F-2025/workdna-service/pkg"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

const shutdownTimeout = 10 * time.Second

//nolint:gochecknoglobals // Cobra boilerplate
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP service",
	Long: `Starts the candidate and HR HTTP API.

Configuration comes from the environment (and .env when present):
  PORT, ENVIRONMENT, QUESTIONS_FILE, STORAGE_DRIVER, DATABASE_URL,
  REDIS_URL, CACHE_ENABLED, CACHE_TTL, DEMO_TEST_KEY,
  TEST_DURATION_MINUTES, EVENTS_ENABLED, EVENTS_PUBLISHER,
  KAFKA_BROKERS, SUBMISSION_TOPIC`,
	RunE: runServe,
}

//nolint:gochecknoinits // Cobra boilerplate
func init() {
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, _ []string) error {
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil {
			return fmt.Errorf("failed to load env file: %w", err)
		}
	}

	cfg, err := config.LoadConfig()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	logger := utils.NewLogger(cfg.Environment, os.Stdout)
	slogger := utils.ToSlogLogger(logger)
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	v := validator.New()
	questionCatalog := catalog.LoadOrDefault(cfg.QuestionsFile, v, slogger)
	logger.Info("Question catalog loaded",
		"file", cfg.QuestionsFile,
		"job_profiles", questionCatalog.Len(),
		"pass_threshold", questionCatalog.PassThreshold)

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	repo, err := openRepository(ctx, cfg, logger)
	if err != nil {
		return err
	}
	defer func() {
		if err := repo.Close(); err != nil {
			logger.LogError(err, "Failed to close repository")
		}
	}()

	publisher, err := cfg.Events.CreateEventPublisher(slogger)
	if err != nil {
		return fmt.Errorf("failed to create event publisher: %w", err)
	}
	defer func() {
		if err := publisher.Close(); err != nil {
			logger.LogError(err, "Failed to close event publisher")
		}
	}()

	registry, appMetrics := metrics.NewRegistry()

	serviceManager := services.NewServiceManager(services.Dependencies{
		Repo:      repo,
		Catalog:   questionCatalog,
		Publisher: publisher,
		Metrics:   appMetrics,
		Validator: v,
		Logger:    slogger,
		Settings: services.Settings{
			DemoTestKey:         cfg.DemoTestKey,
			TestDurationMinutes: cfg.TestDurationMinutes,
		},
	})

	router := handlers.NewHandlerManager(serviceManager, logger, metrics.HandlerFor(registry), repo.Ping).NewRouter()

	server := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
	}

	serveErr := make(chan error, 1)
	go func() {
		logger.Info("Starting HTTP server", "port", cfg.Port, "environment", cfg.Environment, "storage", cfg.StorageDriver)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
		close(serveErr)
	}()

	select {
	case err := <-serveErr:
		if err != nil {
			return fmt.Errorf("http server failed: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	logger.Info("Shutting down HTTP server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("graceful shutdown failed: %w", err)
	}
	return nil
}

func openRepository(ctx context.Context, cfg *config.Config, logger utils.Logger) (repositories.Repository, error) {
	var repo repositories.Repository

	switch cfg.StorageDriver {
	case config.StoragePostgres:
		db, err := pkg.InitDatabase(cfg)
		if err != nil {
			return nil, err
		}
		if err := postgres.AutoMigrate(db); err != nil {
			return nil, fmt.Errorf("failed to migrate database: %w", err)
		}
		repo = postgres.NewRepository(db)
	default:
		repo = memory.NewRepository()
	}

	if !cfg.CacheEnabled {
		return repo, nil
	}

	client, err := pkg.NewRedisClient(ctx, cfg.RedisURL)
	if err != nil {
		logger.LogError(err, "Redis unavailable, continuing without cache")
		return repo, nil
	}
	logger.Info("Generated test cache enabled", "ttl", cfg.CacheTTL)
	return repositories.NewCachedRepository(repo, cache.NewRedisCache(client, utils.ToSlogLogger(logger), "workdna:"), cfg.CacheTTL, utils.ToSlogLogger(logger)), nil
}
