// cmd/worker/main.go
package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/hibiken/asynq"
	"github.com/redis/go-redis/v9"

	"github.com/amitabhanmolpain/realestate-be/internal/adapters/db"
	redis_a "github.com/amitabhanmolpain/realestate-be/internal/adapters/redis_adapter"
	"github.com/amitabhanmolpain/realestate-be/internal/adapters/storage"
	"github.com/amitabhanmolpain/realestate-be/internal/core/services"
	"github.com/amitabhanmolpain/realestate-be/internal/pkg/config"
	"github.com/amitabhanmolpain/realestate-be/internal/pkg/logger"
	"github.com/amitabhanmolpain/realestate-be/internal/workers"
)

func main() {
	slogger := logger.SetupLogger(&logger.LogConfig{Level: "info", Format: "json"}).Logger

	cfg, err := config.Load(slogger)
	if err != nil {
		slogger.Error("failed to load configuration", slog.String("error", err.Error()))
		os.Exit(1)
	}

	slogger = logger.SetupLogger(&logger.LogConfig{
		Level:       cfg.App.LogLevel,
		Format:      cfg.App.LogFormat,
		Environment: cfg.App.Environment,
		ServiceName: cfg.App.Name + "-worker",
	}).Logger
	slogger.Info("starting worker",
		slog.String("environment", cfg.App.Environment),
		slog.String("redis_addr", cfg.Asynq.RedisAddr))

	ctx := context.Background()

	database, err := db.NewDatabase(ctx, &db.Config{
		Host:               cfg.Database.Host,
		Port:               cfg.Database.Port,
		User:               cfg.Database.User,
		Password:           cfg.Database.Password,
		Database:           cfg.Database.Name,
		SSLMode:            cfg.Database.SSLMode,
		MaxConnections:     10, // Fewer connections for worker
		MinConnections:     2,
		MaxConnLifetime:    cfg.Database.MaxConnLifetime,
		MaxConnIdleTime:    cfg.Database.MaxConnIdleTime,
		HealthCheckPeriod:  cfg.Database.HealthCheckPeriod,
		ConnectTimeout:     cfg.Database.ConnectTimeout,
		StatementCacheMode: cfg.Database.StatementCacheMode,
		EnableQueryLogging: cfg.Database.EnableQueryLogging,
	}, slogger)
	if err != nil {
		slogger.Error("failed to initialize database", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer database.Close()

	redisClient := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr(),
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	defer redisClient.Close()
	cache := redis_a.NewCache(redisClient, cfg.Redis.TTL, slogger)

	store, err := storage.Open(ctx, cfg.Storage.Driver, cfg.Storage.LocalPath, &storage.S3Config{
		Region:          cfg.AWS.Region,
		Bucket:          cfg.AWS.S3Bucket,
		AccessKeyID:     cfg.AWS.AccessKeyID,
		SecretAccessKey: cfg.AWS.SecretAccessKey,
		Endpoint:        cfg.AWS.S3Endpoint,
		UsePathStyle:    cfg.AWS.UsePathStyle,
		PublicBaseURL:   strings.TrimRight(cfg.Storage.PublicBaseURL, "/"),
	}, slogger)
	if err != nil {
		slogger.Error("failed to initialize storage", slog.String("error", err.Error()))
		os.Exit(1)
	}

	properties := db.NewPropertyRepository(database, slogger)
	users := db.NewUserRepository(database, slogger)
	visits := db.NewVisitRepository(database, slogger)

	catalogService := services.NewCatalogService(properties, cache, services.CatalogOptions{
		SnapshotTTL:    cfg.Catalog.SnapshotTTL,
		FeaturedLimit:  cfg.Catalog.FeaturedLimit,
		DefaultPerPage: cfg.Catalog.DefaultPerPage,
	}, slogger)
	listingService := services.NewListingService(properties, users, store, catalogService, slogger)

	redisOpt := asynq.RedisClientOpt{
		Addr:     cfg.Asynq.RedisAddr,
		Password: cfg.Asynq.RedisPassword,
		DB:       cfg.Asynq.RedisDB,
	}

	srv := asynq.NewServer(redisOpt, asynq.Config{
		Concurrency:     cfg.Asynq.Concurrency,
		Queues:          cfg.Asynq.Queues,
		StrictPriority:  cfg.Asynq.StrictPriority,
		ErrorHandler:    workers.ErrorHandler(slogger),
		RetryDelayFunc:  workers.ExponentialBackoff,
		ShutdownTimeout: cfg.Asynq.ShutdownTimeout,
		HealthCheckFunc: func(err error) {
			if err != nil {
				slogger.Error("worker health check failed", slog.String("error", err.Error()))
			}
		},
		Logger: workers.NewAsynqLogger(slogger),
	})

	mux := asynq.NewServeMux()
	mux.Use(workers.TaskContext)
	workers.Processors{
		Notifications: workers.NewNotificationProcessor(users, workers.NewLogNotifier(slogger), slogger),
		Catalog:       workers.NewCatalogProcessor(catalogService, slogger),
		Excel:         workers.NewExcelProcessor(listingService, store, slogger),
		Brochure:      workers.NewBrochureProcessor(listingService, store, slogger),
		Cleanup:       workers.NewCleanupProcessor(visits, store, 0, slogger),
	}.Register(mux)

	scheduler := asynq.NewScheduler(redisOpt, &asynq.SchedulerOpts{
		Location: time.UTC,
		Logger:   workers.NewAsynqLogger(slogger),
	})
	if err := workers.RegisterPeriodic(scheduler, workers.Schedules{
		ExpireVisits:   cfg.Asynq.CleanupSchedule,
		CatalogRefresh: cfg.Asynq.CatalogRefreshSchedule,
		CleanupImports: cfg.Asynq.CleanupSchedule,
	}); err != nil {
		slogger.Error("failed to register periodic tasks", slog.String("error", err.Error()))
		os.Exit(1)
	}

	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		if err := srv.Run(mux); err != nil {
			slogger.Error("failed to run worker server", slog.String("error", err.Error()))
			shutdown <- syscall.SIGTERM
		}
	}()

	if err := scheduler.Start(); err != nil {
		slogger.Error("failed to start scheduler", slog.String("error", err.Error()))
		srv.Shutdown()
		os.Exit(1)
	}

	slogger.Info("worker started successfully",
		slog.Int("concurrency", cfg.Asynq.Concurrency),
		slog.Any("queues", cfg.Asynq.Queues))

	sig := <-shutdown
	slogger.Info("shutdown signal received", slog.String("signal", sig.String()))

	scheduler.Shutdown()
	srv.Shutdown()
	slogger.Info("worker shutdown complete")
}
