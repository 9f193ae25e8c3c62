// test/helpers/helpers.go
package helpers

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/ory/dockertest/v3"
	"github.com/ory/dockertest/v3/docker"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"

	"github.com/amitabhanmolpain/realestate-be/internal/adapters/db"
	redis_a "github.com/amitabhanmolpain/realestate-be/internal/adapters/redis_adapter"
	"github.com/amitabhanmolpain/realestate-be/internal/core/domain"
	"github.com/amitabhanmolpain/realestate-be/internal/pkg/config"
)

// TestPassword is the plain-text password of users built by CreateTestUser.
const TestPassword = "s3cret-pass"

// TestDB represents a test database instance
type TestDB struct {
	PgxPool  *pgxpool.Pool
	Database *db.Database
	Resource *dockertest.Resource
	Pool     *dockertest.Pool
	Config   *db.Config
}

// TestRedis represents a test Redis instance
type TestRedis struct {
	Client *redis.Client
	Server *miniredis.Miniredis
}

// TestLogger returns a test logger; verbose runs log at debug.
func TestLogger() *slog.Logger {
	if testing.Verbose() {
		return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		}))
	}
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// SetupTestDB starts a PostgreSQL container and applies the embedded
// migrations.
func SetupTestDB(t *testing.T) *TestDB {
	t.Helper()

	pool, err := dockertest.NewPool("")
	require.NoError(t, err, "Could not connect to Docker")

	resource, err := pool.RunWithOptions(&dockertest.RunOptions{
		Repository: "postgres",
		Tag:        "16-alpine",
		Env: []string{
			"POSTGRES_USER=test",
			"POSTGRES_PASSWORD=test",
			"POSTGRES_DB=test_realestate",
			"listen_addresses = '*'",
		},
	}, func(config *docker.HostConfig) {
		config.AutoRemove = true
		config.RestartPolicy = docker.RestartPolicy{Name: "no"}
	})
	require.NoError(t, err, "Could not start PostgreSQL container")

	t.Cleanup(func() {
		if err := pool.Purge(resource); err != nil {
			t.Logf("Could not purge resource: %s", err)
		}
	})

	dbConfig := &db.Config{
		Host:               "localhost",
		Port:               resource.GetPort("5432/tcp"),
		User:               "test",
		Password:           "test",
		Database:           "test_realestate",
		SSLMode:            "disable",
		MaxConnections:     5,
		MinConnections:     1,
		MaxConnLifetime:    time.Hour,
		MaxConnIdleTime:    time.Minute * 30,
		HealthCheckPeriod:  time.Minute,
		ConnectTimeout:     time.Second * 10,
		StatementCacheMode: "describe",
		EnableQueryLogging: testing.Verbose(),
	}

	var database *db.Database
	err = pool.Retry(func() error {
		ctx := context.Background()
		var err error
		database, err = db.NewDatabase(ctx, dbConfig, TestLogger())
		if err != nil {
			return err
		}
		return database.Ping(ctx)
	})
	require.NoError(t, err, "Could not connect to PostgreSQL")
	t.Cleanup(database.Close)

	err = db.RunMigrationsWithRetry(context.Background(), &db.MigrationConfig{
		DatabaseURL: dbConfig.DSN(),
		TableName:   "schema_migrations",
		SchemaName:  "public",
	}, TestLogger(), 3)
	require.NoError(t, err, "Could not run migrations")

	return &TestDB{
		PgxPool:  database.Pool(),
		Database: database,
		Resource: resource,
		Pool:     pool,
		Config:   dbConfig,
	}
}

// SetupTestRedis starts an in-process Redis
func SetupTestRedis(t *testing.T) *TestRedis {
	t.Helper()

	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})

	t.Cleanup(func() {
		client.Close()
	})

	return &TestRedis{Client: client, Server: mr}
}

// SetupTestCache returns a cache backed by an in-process Redis
func SetupTestCache(t *testing.T) (*redis_a.Cache, *miniredis.Miniredis) {
	t.Helper()

	r := SetupTestRedis(t)
	return redis_a.NewCache(r.Client, time.Hour, TestLogger()), r.Server
}

// LoadTestConfig returns a test configuration
func LoadTestConfig() *config.Config {
	return &config.Config{
		App: config.AppConfig{
			Name:        "test-api",
			Environment: "test",
			Version:     "test",
			LogLevel:    "debug",
			LogFormat:   "text",
			Debug:       true,
		},
		Database: config.DatabaseConfig{
			Host:               "localhost",
			Port:               "5432",
			User:               "test",
			Password:           "test",
			Name:               "test_realestate",
			SSLMode:            "disable",
			MaxConnections:     10,
			MinConnections:     2,
			EnableQueryLogging: true,
		},
		Redis: config.RedisConfig{
			Host:     "localhost",
			Port:     "6379",
			DB:       0,
			TTL:      time.Hour,
			PoolSize: 10,
		},
		Storage: config.StorageConfig{
			Driver:        "local",
			LocalPath:     os.TempDir(),
			PublicBaseURL: "http://localhost:8080/uploads",
			ImageMaxMB:    5,
			ImportMaxMB:   5,
			BrochureMaxMB: 5,
		},
		Auth: config.AuthConfig{
			JWTSecret: "test-secret-at-least-sixteen",
			TokenTTL:  7 * 24 * time.Hour,
		},
		Catalog: config.CatalogConfig{
			SnapshotTTL:    time.Minute,
			FeaturedLimit:  6,
			DefaultPerPage: 12,
		},
		Security: config.SecurityConfig{
			RateLimitRequests: 100,
			RateLimitDuration: time.Minute,
			AllowedOrigins:    []string{"http://localhost:5173"},
			SecureHeaders:     false,
			RequestIDHeader:   "X-Request-ID",
			RequestTimeout:    5 * time.Second,
		},
		Server: config.ServerConfig{
			Host:         "localhost",
			Port:         "8080",
			ReadTimeout:  15 * time.Second,
			WriteTimeout: 15 * time.Second,
		},
		Secrets: config.SecretsConfig{Provider: "env"},
	}
}

// CreateTestUser builds an account whose password is TestPassword.
func CreateTestUser(t *testing.T, email string) *domain.User {
	t.Helper()

	u, err := domain.NewUser("Test User", email, TestPassword)
	require.NoError(t, err)
	u.Phone = "+91 98765 43210"
	return u
}

// SessionUser returns a session identity for a fresh user id.
func SessionUser(name string) domain.SessionUser {
	return domain.SessionUser{
		ID:    uuid.New(),
		Name:  name,
		Email: fmt.Sprintf("%s@example.com", name),
	}
}

// CreateTestProperty creates a valid available listing
func CreateTestProperty(overrides ...func(*domain.Property)) *domain.Property {
	now := time.Now().UTC().Truncate(time.Microsecond)
	p := &domain.Property{
		ID:          uuid.New(),
		Title:       "Sea View 2BHK Apartment",
		Description: "Bright apartment with a balcony facing the sea",
		Location:    "Bandra West, Mumbai",
		City:        "Mumbai",
		Type:        domain.TypeApartment,
		Price:       12500000,
		Area:        1100,
		Bedrooms:    2,
		Bathrooms:   2,
		Image:       "https://images.example.com/p/1.jpg",
		Images:      []string{"https://images.example.com/p/1.jpg"},
		Amenities:   []string{"Parking", "Gym"},
		Available:   true,
		Status:      domain.PropertyActive,
		PostedDate:  now.Add(-24 * time.Hour),
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	for _, override := range overrides {
		override(p)
	}
	return p
}

// CreateTestProperties creates count listings across cities, types and
// prices, posted one day apart.
func CreateTestProperties(count int) []domain.Property {
	cities := []string{"Mumbai", "Pune", "Bangalore", "Delhi"}
	types := []domain.PropertyType{domain.TypeApartment, domain.TypeVilla, domain.TypeHouse, domain.TypeStudio}

	list := make([]domain.Property, count)
	for i := 0; i < count; i++ {
		list[i] = *CreateTestProperty(func(p *domain.Property) {
			p.Title = fmt.Sprintf("Listing %d", i+1)
			p.City = cities[i%len(cities)]
			p.Location = "Central, " + p.City
			p.Type = types[i%len(types)]
			p.Bedrooms = 1 + i%4
			p.Price = int64(5000000 + i*750000)
			p.Featured = i%5 == 0
			p.PostedDate = p.PostedDate.Add(-time.Duration(i) * 24 * time.Hour)
		})
	}
	return list
}

// LoadFixture loads a test fixture file
func LoadFixture(t *testing.T, filename string) []byte {
	t.Helper()

	data, err := os.ReadFile(fmt.Sprintf("../../test/fixtures/%s", filename))
	require.NoError(t, err, "Failed to load fixture: %s", filename)
	return data
}

// AssertEventuallyWithTimeout asserts that a condition is met within a timeout
func AssertEventuallyWithTimeout(t *testing.T, condition func() bool, timeout time.Duration, msg string) {
	t.Helper()

	deadline := time.Now().Add(timeout)
	for time.Now().Before(deadline) {
		if condition() {
			return
		}
		time.Sleep(100 * time.Millisecond)
	}

	t.Errorf("Condition not met within %v: %s", timeout, msg)
}

// TruncateAllTables truncates all tables in the test database
func TruncateAllTables(t *testing.T, pool *pgxpool.Pool) {
	t.Helper()

	tables := []string{
		"scheduled_visits",
		"property_interests",
		"property_likes",
		"properties",
		"users",
	}

	for _, table := range tables {
		_, err := pool.Exec(context.Background(), fmt.Sprintf("TRUNCATE TABLE %s CASCADE", table))
		require.NoError(t, err, "Failed to truncate table: %s", table)
	}
}
