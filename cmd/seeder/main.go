// cmd/seeder/main.go
package main

import (
	"context"
	_ "embed"
	"flag"
	"log/slog"
	"os"

	"github.com/amitabhanmolpain/realestate-be/internal/adapters/db"
	"github.com/amitabhanmolpain/realestate-be/internal/pkg/config"
	"github.com/amitabhanmolpain/realestate-be/internal/pkg/logger"
	"github.com/amitabhanmolpain/realestate-be/internal/pkg/schema"
)

//go:embed data.json
var defaultData []byte

func main() {
	file := flag.String("file", "", "seed file (defaults to the built-in demo data)")
	reset := flag.Bool("reset", false, "delete all listings before seeding")
	flag.Parse()

	slogger := logger.SetupLogger(&logger.LogConfig{Level: "info", Format: "text"}).Logger

	cfg, err := config.Load(slogger)
	if err != nil {
		slogger.Error("failed to load configuration", slog.String("error", err.Error()))
		os.Exit(1)
	}

	data := defaultData
	if *file != "" {
		if data, err = os.ReadFile(*file); err != nil {
			slogger.Error("failed to read seed file", slog.String("error", err.Error()))
			os.Exit(1)
		}
	}

	ctx := context.Background()

	if err := db.RunMigrationsWithRetry(ctx, &db.MigrationConfig{
		DatabaseURL: cfg.GetDatabaseURL(),
		SourcePath:  cfg.Database.MigrationPath,
	}, slogger, 3); err != nil {
		slogger.Error("failed to run migrations", slog.String("error", err.Error()))
		os.Exit(1)
	}

	database, err := db.NewDatabase(ctx, &db.Config{
		Host:              cfg.Database.Host,
		Port:              cfg.Database.Port,
		User:              cfg.Database.User,
		Password:          cfg.Database.Password,
		Database:          cfg.Database.Name,
		SSLMode:           cfg.Database.SSLMode,
		MaxConnections:    2,
		MinConnections:    1,
		MaxConnLifetime:   cfg.Database.MaxConnLifetime,
		MaxConnIdleTime:   cfg.Database.MaxConnIdleTime,
		HealthCheckPeriod: cfg.Database.HealthCheckPeriod,
		ConnectTimeout:    cfg.Database.ConnectTimeout,
	}, slogger)
	if err != nil {
		slogger.Error("failed to connect to database", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer database.Close()

	if *reset {
		tag, err := database.Exec(ctx, "DELETE FROM properties")
		if err != nil {
			slogger.Error("failed to clear listings", slog.String("error", err.Error()))
			os.Exit(1)
		}
		slogger.Info("cleared existing listings", slog.Int64("deleted", tag.RowsAffected()))
	}

	seeder := NewSeeder(
		db.NewUserRepository(database, slogger),
		db.NewPropertyRepository(database, slogger),
		schema.MustNew(),
		slogger,
	)
	res, err := seeder.Seed(ctx, data)
	if err != nil {
		slogger.Error("seeding failed", slog.String("error", err.Error()))
		os.Exit(1)
	}

	slogger.Info("seeding complete",
		slog.Int("users_created", res.UsersCreated),
		slog.Int("properties", res.PropertiesAdded))
}
