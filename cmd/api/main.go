// cmd/api/main.go
package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/hibiken/asynq"
	"github.com/redis/go-redis/v9"

	"github.com/amitabhanmolpain/realestate-be/internal/adapters/auth"
	"github.com/amitabhanmolpain/realestate-be/internal/adapters/db"
	redis_a "github.com/amitabhanmolpain/realestate-be/internal/adapters/redis_adapter"
	"github.com/amitabhanmolpain/realestate-be/internal/adapters/storage"
	"github.com/amitabhanmolpain/realestate-be/internal/core/ports"
	"github.com/amitabhanmolpain/realestate-be/internal/core/services"
	"github.com/amitabhanmolpain/realestate-be/internal/handlers"
	"github.com/amitabhanmolpain/realestate-be/internal/handlers/middleware"
	"github.com/amitabhanmolpain/realestate-be/internal/pkg/config"
	"github.com/amitabhanmolpain/realestate-be/internal/pkg/logger"
	"github.com/amitabhanmolpain/realestate-be/internal/pkg/schema"
	"github.com/amitabhanmolpain/realestate-be/internal/workers"
)

// Build information injected at compile time
var (
	Version   = "dev"
	BuildTime = "unknown"
	GoVersion = "unknown"
)

func main() {
	slogger := logger.SetupLogger(&logger.LogConfig{Level: "debug", Format: "json"}).Logger

	slogger.Info("starting real estate catalog API",
		slog.String("version", Version),
		slog.String("build_time", BuildTime),
		slog.String("go_version", GoVersion),
	)

	cfg, err := config.Load(slogger)
	if err != nil {
		slogger.Error("failed to load configuration", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// Reconfigure logger with loaded settings
	slogger = logger.SetupLogger(&logger.LogConfig{
		Level:          cfg.App.LogLevel,
		Format:         cfg.App.LogFormat,
		AddSource:      cfg.App.Debug,
		Environment:    cfg.App.Environment,
		ServiceName:    cfg.App.Name,
		ServiceVersion: Version,
	}).Logger
	slogger.Info("configuration loaded",
		slog.String("environment", cfg.App.Environment),
		slog.String("log_level", cfg.App.LogLevel),
	)

	ctx := context.Background()

	deps, err := initializeDependencies(ctx, cfg, slogger)
	if err != nil {
		slogger.Error("failed to initialize dependencies", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer deps.cleanup()

	server := setupHTTPServer(cfg, deps, slogger)

	serverErrors := make(chan error, 1)
	go func() {
		slogger.Info("starting HTTP server", slog.String("address", cfg.GetServerAddress()))
		serverErrors <- server.ListenAndServe()
	}()

	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM, syscall.SIGQUIT)

	select {
	case err := <-serverErrors:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			slogger.Error("server error", slog.String("error", err.Error()))
		}
	case sig := <-shutdown:
		slogger.Info("shutdown signal received", slog.String("signal", sig.String()))

		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), cfg.Server.GracefulTimeout)
		defer shutdownCancel()

		if err := server.Shutdown(shutdownCtx); err != nil {
			slogger.Error("failed to gracefully shutdown server", slog.String("error", err.Error()))
			server.Close()
		}

		slogger.Info("server shutdown complete")
	}
}

// dependencies holds all application dependencies
type dependencies struct {
	database       *db.Database
	redisClient    *redis.Client
	asynqClient    *asynq.Client
	asynqInspector *asynq.Inspector
	authService    ports.AuthService
	handlers       handlers.Handlers
}

func (d *dependencies) cleanup() {
	if d.asynqInspector != nil {
		d.asynqInspector.Close()
	}
	if d.asynqClient != nil {
		d.asynqClient.Close()
	}
	if d.redisClient != nil {
		d.redisClient.Close()
	}
	if d.database != nil {
		d.database.Close()
	}
}

func initializeDependencies(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*dependencies, error) {
	deps := &dependencies{}

	logger.Info("connecting to database",
		slog.String("host", cfg.Database.Host),
		slog.String("database", cfg.Database.Name),
	)

	database, err := db.NewDatabase(ctx, databaseConfig(cfg), logger)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}
	deps.database = database

	if err := db.RunMigrationsWithRetry(ctx, &db.MigrationConfig{
		DatabaseURL: cfg.GetDatabaseURL(),
		SourcePath:  cfg.Database.MigrationPath,
	}, logger, 3); err != nil {
		deps.cleanup()
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	logger.Info("connecting to Redis", slog.String("address", cfg.Redis.Addr()))

	redisClient := redis.NewClient(&redis.Options{
		Addr:            cfg.Redis.Addr(),
		Password:        cfg.Redis.Password,
		DB:              cfg.Redis.DB,
		MaxRetries:      cfg.Redis.MaxRetries,
		MinRetryBackoff: cfg.Redis.MinRetryBackoff,
		MaxRetryBackoff: cfg.Redis.MaxRetryBackoff,
		DialTimeout:     cfg.Redis.DialTimeout,
		ReadTimeout:     cfg.Redis.ReadTimeout,
		WriteTimeout:    cfg.Redis.WriteTimeout,
		PoolSize:        cfg.Redis.PoolSize,
		MinIdleConns:    cfg.Redis.MinIdleConns,
		PoolTimeout:     cfg.Redis.PoolTimeout,
	})
	deps.redisClient = redisClient

	if err := redisClient.Ping(ctx).Err(); err != nil {
		deps.cleanup()
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	cache := redis_a.NewCache(redisClient, cfg.Redis.TTL, logger)

	store, err := storage.Open(ctx, cfg.Storage.Driver, cfg.Storage.LocalPath, s3Config(cfg), logger)
	if err != nil {
		deps.cleanup()
		return nil, fmt.Errorf("failed to initialize storage: %w", err)
	}

	asynqRedisOpt := asynq.RedisClientOpt{
		Addr:     cfg.Asynq.RedisAddr,
		Password: cfg.Asynq.RedisPassword,
		DB:       cfg.Asynq.RedisDB,
	}
	deps.asynqClient = asynq.NewClient(asynqRedisOpt)
	deps.asynqInspector = asynq.NewInspector(asynqRedisOpt)
	tasks := workers.NewEnqueuer(deps.asynqClient, cfg.Asynq.RetryMax, logger)

	issuer, err := auth.NewJWTIssuer(cfg.Auth.JWTSecret)
	if err != nil {
		deps.cleanup()
		return nil, fmt.Errorf("failed to initialize token issuer: %w", err)
	}

	validator, err := schema.New()
	if err != nil {
		deps.cleanup()
		return nil, fmt.Errorf("failed to compile request schemas: %w", err)
	}

	// Repositories
	properties := db.NewPropertyRepository(database, logger)
	users := db.NewUserRepository(database, logger)
	likes := db.NewLikeRepository(database, logger)
	visits := db.NewVisitRepository(database, logger)
	interests := db.NewInterestRepository(database, logger)

	// Services
	catalogService := services.NewCatalogService(properties, cache, services.CatalogOptions{
		SnapshotTTL:    cfg.Catalog.SnapshotTTL,
		FeaturedLimit:  cfg.Catalog.FeaturedLimit,
		DefaultPerPage: cfg.Catalog.DefaultPerPage,
	}, logger)
	listingService := services.NewListingService(properties, users, store, catalogService, logger)
	engagementService := services.NewEngagementService(properties, likes, interests, visits, users, tasks, logger)
	dashboardService := services.NewDashboardService(properties, interests, visits, cache, logger)
	deps.authService = services.NewAuthService(users, issuer, redis_a.NewSessionStore(cache, logger), cfg.Auth.TokenTTL, logger)

	deps.handlers = handlers.Handlers{
		Health:     handlers.NewHealthHandler(database, redisClient, cache, deps.asynqInspector, cfg, logger),
		Auth:       handlers.NewAuthHandler(deps.authService, logger),
		Property:   handlers.NewPropertyHandler(catalogService, logger),
		Engagement: handlers.NewEngagementHandler(engagementService, logger),
		Seller: handlers.NewSellerHandler(listingService, engagementService, tasks, validator, handlers.SellerLimits{
			ImageMaxBytes:    megabytes(cfg.Storage.ImageMaxMB),
			BrochureMaxBytes: megabytes(cfg.Storage.BrochureMaxMB),
		}, logger),
		Dashboard: handlers.NewDashboardHandler(dashboardService, logger),
		Export:    handlers.NewExportHandler(listingService, logger),
		Import:    handlers.NewImportHandler(store, tasks, logger, megabytes(cfg.Storage.ImportMaxMB)),
	}

	logger.Info("all dependencies initialized successfully",
		slog.String("storage", cfg.Storage.Driver))
	return deps, nil
}

func setupHTTPServer(cfg *config.Config, deps *dependencies, logger *slog.Logger) *http.Server {
	mux := http.NewServeMux()

	handlers.RegisterRoutes(mux, deps.handlers, middleware.Auth(deps.authService, logger))

	// Local uploads are served by the API itself; S3 objects are public URLs.
	if cfg.Storage.Driver != storage.DriverS3 {
		mux.Handle("GET /uploads/", http.StripPrefix("/uploads/", http.FileServer(http.Dir(cfg.Storage.LocalPath))))
	}

	mws := []func(http.Handler) http.Handler{
		middleware.RequestID,
		middleware.Logger(logger),
		middleware.Recovery(logger),
	}
	if cfg.Security.SecureHeaders {
		mws = append(mws, middleware.SecureHeaders)
	}
	if len(cfg.Security.AllowedOrigins) > 0 {
		mws = append(mws, middleware.CORS(cfg.Security.AllowedOrigins))
	}
	if cfg.Security.RateLimitRequests > 0 {
		mws = append(mws, middleware.RateLimit(cfg.Security.RateLimitRequests, cfg.Security.RateLimitDuration))
	}
	if cfg.Security.RequestTimeout > 0 {
		mws = append(mws, middleware.Timeout(cfg.Security.RequestTimeout))
	}

	return &http.Server{
		Addr:           cfg.GetServerAddress(),
		Handler:        middleware.Chain(mux, mws...),
		ReadTimeout:    cfg.Server.ReadTimeout,
		WriteTimeout:   cfg.Server.WriteTimeout,
		IdleTimeout:    cfg.Server.IdleTimeout,
		MaxHeaderBytes: cfg.Server.MaxHeaderBytes,
		ErrorLog:       slog.NewLogLogger(logger.Handler(), slog.LevelError),
	}
}

func databaseConfig(cfg *config.Config) *db.Config {
	return &db.Config{
		Host:               cfg.Database.Host,
		Port:               cfg.Database.Port,
		User:               cfg.Database.User,
		Password:           cfg.Database.Password,
		Database:           cfg.Database.Name,
		SSLMode:            cfg.Database.SSLMode,
		MaxConnections:     cfg.Database.MaxConnections,
		MinConnections:     cfg.Database.MinConnections,
		MaxConnLifetime:    cfg.Database.MaxConnLifetime,
		MaxConnIdleTime:    cfg.Database.MaxConnIdleTime,
		HealthCheckPeriod:  cfg.Database.HealthCheckPeriod,
		ConnectTimeout:     cfg.Database.ConnectTimeout,
		StatementCacheMode: cfg.Database.StatementCacheMode,
		EnableQueryLogging: cfg.Database.EnableQueryLogging,
	}
}

func s3Config(cfg *config.Config) *storage.S3Config {
	return &storage.S3Config{
		Region:          cfg.AWS.Region,
		Bucket:          cfg.AWS.S3Bucket,
		AccessKeyID:     cfg.AWS.AccessKeyID,
		SecretAccessKey: cfg.AWS.SecretAccessKey,
		Endpoint:        cfg.AWS.S3Endpoint,
		UsePathStyle:    cfg.AWS.UsePathStyle,
		PublicBaseURL:   strings.TrimRight(cfg.Storage.PublicBaseURL, "/"),
	}
}

func megabytes(mb int) int64 {
	return int64(mb) << 20
}
