package config

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/secretsmanager"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuild_Defaults(t *testing.T) {
	cfg := build(viper.New(), "development")

	assert.Equal(t, "realestate-api", cfg.App.Name)
	assert.Equal(t, 7*24*time.Hour, cfg.Auth.TokenTTL)
	assert.Equal(t, 12, cfg.Catalog.DefaultPerPage)
	assert.Equal(t, 6, cfg.Catalog.FeaturedLimit)
	assert.Equal(t, defaultOrigins, cfg.Security.AllowedOrigins)
	assert.Equal(t, "localhost:6379", cfg.Redis.Addr())
	assert.Equal(t, map[string]int{"critical": 6, "default": 3, "low": 1}, cfg.Asynq.Queues)
	assert.True(t, cfg.Database.EnableQueryLogging)
	assert.NoError(t, cfg.Validate())
}

func TestBuild_Overrides(t *testing.T) {
	v := viper.New()
	v.Set("DB_MAX_CONNECTIONS", "40")
	v.Set("TOKEN_TTL", "2h")
	v.Set("ALLOWED_ORIGINS", "https://a.example, https://b.example,")
	v.Set("APP_DEBUG", "not-a-bool")
	v.Set("ASYNQ_QUEUES", "garbage")

	cfg := build(v, "staging")

	assert.Equal(t, int32(40), cfg.Database.MaxConnections)
	assert.Equal(t, 2*time.Hour, cfg.Auth.TokenTTL)
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.Security.AllowedOrigins)
	assert.False(t, cfg.App.Debug)
	assert.Equal(t, map[string]int{"default": 1}, cfg.Asynq.Queues)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		env     string
		mutate  func(*Config)
		wantErr string
	}{
		{
			name:   "development_defaults_pass",
			env:    "development",
			mutate: func(*Config) {},
		},
		{
			name:    "missing_db_host",
			env:     "development",
			mutate:  func(c *Config) { c.Database.Host = "" },
			wantErr: "Database.Host",
		},
		{
			name:    "unknown_storage_driver",
			env:     "development",
			mutate:  func(c *Config) { c.Storage.Driver = "ftp" },
			wantErr: "unknown storage driver",
		},
		{
			name:    "per_page_out_of_range",
			env:     "development",
			mutate:  func(c *Config) { c.Catalog.DefaultPerPage = 500 },
			wantErr: "per_page",
		},
		{
			name:    "production_rejects_dev_secret",
			env:     "production",
			mutate:  func(c *Config) { c.Auth.JWTSecret = devSecret; c.Database.SSLMode = "require" },
			wantErr: "default JWT secret",
		},
		{
			name: "production_rejects_short_secret",
			env:  "production",
			mutate: func(c *Config) {
				c.Auth.JWTSecret = "short-but-not-default"
				c.Database.SSLMode = "require"
			},
			wantErr: "at least 32 characters",
		},
		{
			name: "production_rejects_wildcard_origin",
			env:  "production",
			mutate: func(c *Config) {
				c.Auth.JWTSecret = "0123456789abcdef0123456789abcdef"
				c.Database.SSLMode = "require"
				c.Security.AllowedOrigins = []string{"*"}
			},
			wantErr: "wildcard origin",
		},
		{
			name: "production_valid",
			env:  "production",
			mutate: func(c *Config) {
				c.Auth.JWTSecret = "0123456789abcdef0123456789abcdef"
				c.Database.SSLMode = "require"
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := build(viper.New(), tt.env)
			tt.mutate(cfg)

			err := cfg.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

type fakeSecrets struct {
	value string
	err   error
	calls int
}

func (f *fakeSecrets) GetSecretValue(ctx context.Context, params *secretsmanager.GetSecretValueInput, optFns ...func(*secretsmanager.Options)) (*secretsmanager.GetSecretValueOutput, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	return &secretsmanager.GetSecretValueOutput{SecretString: aws.String(f.value)}, nil
}

func TestAWSSecretsManager_CachesAndApplies(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	fake := &fakeSecrets{value: `{"JWT_SECRET":"from-aws-secret-manager-value-32chars","DB_PASSWORD":"pw"}`}
	sm := newAWSSecretsManager(fake, "realestate/api", time.Minute, logger)

	cfg := build(viper.New(), "development")
	require.NoError(t, applySecrets(context.Background(), cfg, sm))
	assert.Equal(t, "from-aws-secret-manager-value-32chars", cfg.Auth.JWTSecret)
	assert.Equal(t, "pw", cfg.Database.Password)

	v, err := sm.GetSecret(context.Background(), SecretDBPassword)
	require.NoError(t, err)
	assert.Equal(t, "pw", v)
	assert.Equal(t, 1, fake.calls)

	_, err = sm.GetSecret(context.Background(), "MISSING")
	assert.Error(t, err)
}

func TestAWSSecretsManager_FetchError(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	sm := newAWSSecretsManager(&fakeSecrets{err: errors.New("denied")}, "x", 0, logger)

	cfg := build(viper.New(), "development")
	err := applySecrets(context.Background(), cfg, sm)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "denied")
	assert.Equal(t, devSecret, cfg.Auth.JWTSecret)
}

func TestEnvSecretsManager(t *testing.T) {
	t.Setenv("JWT_SECRET", "env-secret")

	sm := NewEnvSecretsManager()
	got, err := sm.GetSecrets(context.Background(), []string{SecretJWT, SecretDBPassword})
	require.NoError(t, err)
	assert.Equal(t, map[string]string{SecretJWT: "env-secret"}, got)

	_, err = sm.GetSecret(context.Background(), "NOT_SET_ANYWHERE")
	assert.Error(t, err)
}
