// internal/pkg/config/config.go
package config

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds all application configuration
type Config struct {
	App      AppConfig
	Database DatabaseConfig
	Redis    RedisConfig
	Asynq    AsynqConfig
	AWS      AWSConfig
	Storage  StorageConfig
	Auth     AuthConfig
	Catalog  CatalogConfig
	Security SecurityConfig
	Server   ServerConfig
	Secrets  SecretsConfig
}

// AppConfig holds application-specific configuration
type AppConfig struct {
	Name        string `required:"true"`
	Environment string // development, staging, production
	Version     string
	LogLevel    string
	LogFormat   string // json, text
	Debug       bool
}

// DatabaseConfig holds database configuration
type DatabaseConfig struct {
	Host               string `required:"true"`
	Port               string `required:"true"`
	User               string `required:"true"`
	Password           string
	Name               string `required:"true"`
	SSLMode            string
	MaxConnections     int32
	MinConnections     int32
	MaxConnLifetime    time.Duration
	MaxConnIdleTime    time.Duration
	HealthCheckPeriod  time.Duration
	ConnectTimeout     time.Duration
	StatementCacheMode string
	EnableQueryLogging bool
	// MigrationPath overrides the embedded migrations when set.
	MigrationPath string
}

// RedisConfig holds Redis configuration
type RedisConfig struct {
	Host            string `required:"true"`
	Port            string `required:"true"`
	Password        string
	DB              int
	MaxRetries      int
	MinRetryBackoff time.Duration
	MaxRetryBackoff time.Duration
	DialTimeout     time.Duration
	ReadTimeout     time.Duration
	WriteTimeout    time.Duration
	PoolSize        int
	MinIdleConns    int
	PoolTimeout     time.Duration
	TTL             time.Duration
}

// Addr returns host:port
func (r RedisConfig) Addr() string {
	return r.Host + ":" + r.Port
}

// AsynqConfig holds Asynq configuration
type AsynqConfig struct {
	RedisAddr       string
	RedisPassword   string
	RedisDB         int
	Concurrency     int
	Queues          map[string]int // queue name -> priority
	StrictPriority  bool
	RetryMax        int
	ShutdownTimeout time.Duration
	// CleanupSchedule is the cron spec for expiring stale visit requests.
	CleanupSchedule string
	// CatalogRefreshSchedule is the cron spec for rebuilding the catalog cache.
	CatalogRefreshSchedule string
}

// AWSConfig holds AWS configuration
type AWSConfig struct {
	Region          string
	AccessKeyID     string
	SecretAccessKey string
	S3Bucket        string
	S3Endpoint      string // For MinIO in development
	UsePathStyle    bool   // For MinIO compatibility
}

// StorageConfig selects where uploaded files live
type StorageConfig struct {
	Driver        string // s3, local
	LocalPath     string
	PublicBaseURL string
	ImageMaxMB    int
	ImportMaxMB   int
	BrochureMaxMB int
}

// AuthConfig holds session and lockout settings
type AuthConfig struct {
	JWTSecret string
	TokenTTL  time.Duration
}

// CatalogConfig tunes the catalog read path
type CatalogConfig struct {
	SnapshotTTL    time.Duration
	FeaturedLimit  int
	DefaultPerPage int
}

// SecurityConfig holds security configuration
type SecurityConfig struct {
	RateLimitRequests int
	RateLimitDuration time.Duration
	AllowedOrigins    []string
	SecureHeaders     bool
	RequestIDHeader   string
	RequestTimeout    time.Duration
}

// ServerConfig holds HTTP server configuration
type ServerConfig struct {
	Host            string
	Port            string `required:"true"`
	ReadTimeout     time.Duration
	WriteTimeout    time.Duration
	IdleTimeout     time.Duration
	MaxHeaderBytes  int
	GracefulTimeout time.Duration
}

// SecretsConfig selects the secrets backend
type SecretsConfig struct {
	Provider   string // env, aws
	SecretName string
	CacheTTL   time.Duration
}

var defaultOrigins = []string{
	"http://localhost:5173",
	"http://localhost:3000",
	"http://localhost:5000",
}

// Load builds the configuration from the environment, an optional config
// file named by CONFIG_FILE, and the secrets backend.
func Load(logger *slog.Logger) (*Config, error) {
	v := viper.New()
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	env := v.GetString("APP_ENV")
	if env == "" {
		env = "development"
	}

	// Load .env file in development
	if env == "development" || env == "local" {
		if err := godotenv.Load(); err != nil {
			logger.Warn("no .env file found, using environment variables",
				slog.String("error", err.Error()))
		} else {
			logger.Info(".env file loaded successfully")
		}
	}

	if file := v.GetString("CONFIG_FILE"); file != "" {
		v.SetConfigFile(file)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
		logger.Info("config file loaded", slog.String("file", v.ConfigFileUsed()))
	}

	cfg := build(v, env)

	if err := loadSecrets(context.Background(), cfg, logger); err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return cfg, nil
}

func build(v *viper.Viper, env string) *Config {
	r := reader{v: v}
	dev := env == "development" || env == "local"

	redisHost := r.str("REDIS_HOST", "localhost")
	redisPort := r.str("REDIS_PORT", "6379")

	return &Config{
		App: AppConfig{
			Name:        r.str("APP_NAME", "realestate-api"),
			Environment: env,
			Version:     r.str("APP_VERSION", "dev"),
			LogLevel:    r.str("LOG_LEVEL", "debug"),
			LogFormat:   r.str("LOG_FORMAT", "json"),
			Debug:       r.boolean("APP_DEBUG", dev),
		},
		Database: DatabaseConfig{
			Host:               r.str("DB_HOST", "localhost"),
			Port:               r.str("DB_PORT", "5432"),
			User:               r.str("DB_USER", "realestate"),
			Password:           r.str("DB_PASSWORD", "realestate_dev"),
			Name:               r.str("DB_NAME", "realestate"),
			SSLMode:            r.str("DB_SSL_MODE", "disable"),
			MaxConnections:     int32(r.integer("DB_MAX_CONNECTIONS", 25)),
			MinConnections:     int32(r.integer("DB_MIN_CONNECTIONS", 5)),
			MaxConnLifetime:    r.duration("DB_CONNECTION_LIFETIME", time.Hour),
			MaxConnIdleTime:    r.duration("DB_IDLE_TIME", 30*time.Minute),
			HealthCheckPeriod:  r.duration("DB_HEALTH_CHECK_PERIOD", time.Minute),
			ConnectTimeout:     r.duration("DB_CONNECT_TIMEOUT", 10*time.Second),
			StatementCacheMode: r.str("DB_STATEMENT_CACHE_MODE", "describe"),
			EnableQueryLogging: r.boolean("DB_QUERY_LOGGING", dev),
			MigrationPath:      r.str("DB_MIGRATION_PATH", ""),
		},
		Redis: RedisConfig{
			Host:            redisHost,
			Port:            redisPort,
			Password:        r.str("REDIS_PASSWORD", ""),
			DB:              r.integer("REDIS_DB", 0),
			MaxRetries:      r.integer("REDIS_MAX_RETRIES", 3),
			MinRetryBackoff: r.duration("REDIS_MIN_RETRY_BACKOFF", 8*time.Millisecond),
			MaxRetryBackoff: r.duration("REDIS_MAX_RETRY_BACKOFF", 512*time.Millisecond),
			DialTimeout:     r.duration("REDIS_DIAL_TIMEOUT", 5*time.Second),
			ReadTimeout:     r.duration("REDIS_READ_TIMEOUT", 3*time.Second),
			WriteTimeout:    r.duration("REDIS_WRITE_TIMEOUT", 3*time.Second),
			PoolSize:        r.integer("REDIS_POOL_SIZE", 10),
			MinIdleConns:    r.integer("REDIS_MIN_IDLE_CONNS", 2),
			PoolTimeout:     r.duration("REDIS_POOL_TIMEOUT", 4*time.Second),
			TTL:             r.duration("REDIS_TTL", time.Hour),
		},
		Asynq: AsynqConfig{
			RedisAddr:              redisHost + ":" + redisPort,
			RedisPassword:          r.str("REDIS_PASSWORD", ""),
			RedisDB:                r.integer("ASYNQ_REDIS_DB", 1),
			Concurrency:            r.integer("ASYNQ_CONCURRENCY", 10),
			Queues:                 parseQueues(r.str("ASYNQ_QUEUES", "critical:6,default:3,low:1")),
			StrictPriority:         r.boolean("ASYNQ_STRICT_PRIORITY", false),
			RetryMax:               r.integer("ASYNQ_RETRY_MAX", 3),
			ShutdownTimeout:        r.duration("ASYNQ_SHUTDOWN_TIMEOUT", 30*time.Second),
			CleanupSchedule:        r.str("ASYNQ_CLEANUP_SCHEDULE", "@every 1h"),
			CatalogRefreshSchedule: r.str("ASYNQ_CATALOG_REFRESH_SCHEDULE", "@every 10m"),
		},
		AWS: AWSConfig{
			Region:          r.str("AWS_REGION", "us-east-1"),
			AccessKeyID:     r.str("AWS_ACCESS_KEY_ID", ""),
			SecretAccessKey: r.str("AWS_SECRET_ACCESS_KEY", ""),
			S3Bucket:        r.str("AWS_S3_BUCKET", "realestate-uploads"),
			S3Endpoint:      r.str("AWS_S3_ENDPOINT", ""),
			UsePathStyle:    r.boolean("AWS_S3_PATH_STYLE", dev),
		},
		Storage: StorageConfig{
			Driver:        r.str("STORAGE_DRIVER", "local"),
			LocalPath:     r.str("STORAGE_LOCAL_PATH", "./uploads"),
			PublicBaseURL: r.str("STORAGE_PUBLIC_URL", "http://localhost:8080/uploads"),
			ImageMaxMB:    r.integer("IMAGE_MAX_SIZE_MB", 10),
			ImportMaxMB:   r.integer("IMPORT_MAX_SIZE_MB", 20),
			BrochureMaxMB: r.integer("BROCHURE_MAX_SIZE_MB", 25),
		},
		Auth: AuthConfig{
			JWTSecret: r.str("JWT_SECRET", defaultSecret(env)),
			TokenTTL:  r.duration("TOKEN_TTL", 7*24*time.Hour),
		},
		Catalog: CatalogConfig{
			SnapshotTTL:    r.duration("CATALOG_CACHE_TTL", time.Minute),
			FeaturedLimit:  r.integer("CATALOG_FEATURED_LIMIT", 6),
			DefaultPerPage: r.integer("CATALOG_PER_PAGE", 12),
		},
		Security: SecurityConfig{
			RateLimitRequests: r.integer("RATE_LIMIT_REQUESTS", 100),
			RateLimitDuration: r.duration("RATE_LIMIT_DURATION", time.Minute),
			AllowedOrigins:    r.slice("ALLOWED_ORIGINS", defaultOrigins),
			SecureHeaders:     r.boolean("SECURE_HEADERS", env == "production"),
			RequestIDHeader:   r.str("REQUEST_ID_HEADER", "X-Request-ID"),
			RequestTimeout:    r.duration("REQUEST_TIMEOUT", 30*time.Second),
		},
		Server: ServerConfig{
			Host:            r.str("SERVER_HOST", "0.0.0.0"),
			Port:            r.str("SERVER_PORT", "8080"),
			ReadTimeout:     r.duration("SERVER_READ_TIMEOUT", 15*time.Second),
			WriteTimeout:    r.duration("SERVER_WRITE_TIMEOUT", 60*time.Second),
			IdleTimeout:     r.duration("SERVER_IDLE_TIMEOUT", 60*time.Second),
			MaxHeaderBytes:  r.integer("SERVER_MAX_HEADER_BYTES", 1<<20), // 1 MB
			GracefulTimeout: r.duration("SERVER_GRACEFUL_TIMEOUT", 30*time.Second),
		},
		Secrets: SecretsConfig{
			Provider:   r.str("SECRETS_PROVIDER", "env"),
			SecretName: r.str("SECRETS_NAME", "realestate/api"),
			CacheTTL:   r.duration("SECRETS_CACHE_TTL", 5*time.Minute),
		},
	}
}

// Validate runs the basic validator, plus the production and security
// validators outside development.
func (c *Config) Validate() error {
	validators := []Validator{&BasicValidator{}}
	if c.IsProduction() {
		validators = append(validators, &ProductionValidator{}, &SecurityValidator{})
	}
	for _, v := range validators {
		if err := v.Validate(c); err != nil {
			return err
		}
	}
	return nil
}

// GetDatabaseURL returns the formatted database connection string
func (c *Config) GetDatabaseURL() string {
	return fmt.Sprintf(
		"postgresql://%s:%s@%s:%s/%s?sslmode=%s",
		c.Database.User,
		c.Database.Password,
		c.Database.Host,
		c.Database.Port,
		c.Database.Name,
		c.Database.SSLMode,
	)
}

// GetServerAddress returns the formatted server address
func (c *Config) GetServerAddress() string {
	return fmt.Sprintf("%s:%s", c.Server.Host, c.Server.Port)
}

// IsProduction returns true if running in production
func (c *Config) IsProduction() bool {
	return c.App.Environment == "production"
}

// IsDevelopment returns true if running in development
func (c *Config) IsDevelopment() bool {
	return c.App.Environment == "development" || c.App.Environment == "local"
}

// reader reads typed values with defaults; unparsable values fall back to
// the default.
type reader struct {
	v *viper.Viper
}

func (r reader) str(key, def string) string {
	if s := strings.TrimSpace(r.v.GetString(key)); s != "" {
		return s
	}
	return def
}

func (r reader) boolean(key string, def bool) bool {
	if s := r.v.GetString(key); s != "" {
		if b, err := strconv.ParseBool(s); err == nil {
			return b
		}
	}
	return def
}

func (r reader) integer(key string, def int) int {
	if s := r.v.GetString(key); s != "" {
		if i, err := strconv.Atoi(s); err == nil {
			return i
		}
	}
	return def
}

func (r reader) duration(key string, def time.Duration) time.Duration {
	if s := r.v.GetString(key); s != "" {
		if d, err := time.ParseDuration(s); err == nil {
			return d
		}
	}
	return def
}

func (r reader) slice(key string, def []string) []string {
	s := r.v.GetString(key)
	if s == "" {
		return def
	}
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	if len(out) == 0 {
		return def
	}
	return out
}

func parseQueues(queuesStr string) map[string]int {
	queues := make(map[string]int)
	pairs := strings.Split(queuesStr, ",")
	for _, pair := range pairs {
		parts := strings.Split(pair, ":")
		if len(parts) == 2 {
			name := strings.TrimSpace(parts[0])
			priority, err := strconv.Atoi(strings.TrimSpace(parts[1]))
			if err == nil {
				queues[name] = priority
			}
		}
	}
	if len(queues) == 0 {
		queues["default"] = 1
	}
	return queues
}

func defaultSecret(env string) string {
	if env == "production" {
		return "" // Force error in production if not set
	}
	return devSecret
}

const devSecret = "development-secret-change-in-production"
