package config

import (
	"fmt"

	"github.com/caarlos0/env/v9"
)

// Config holds all service configuration, loaded from environment variables.
type Config struct {
	Environment EnvironmentConfig
	HTTPServer  HTTPServerConfig
	Logger      LoggerConfig
	Postgres    PostgresConfig
	Redis       RedisConfig
	MinIO       MinIOConfig
	JWT         JWTConfig
	Encrypter   EncrypterConfig
	Cron        CronConfig
	Slack       SlackConfig
	Meta        MetaConfig
	Email       EmailConfig
}

// EnvironmentConfig is the configuration for the deployment environment.
type EnvironmentConfig struct {
	Name string `env:"ENVIRONMENT" envDefault:"production"`
}

// HTTPServerConfig is the configuration for the HTTP server.
type HTTPServerConfig struct {
	Host string `env:"HTTP_HOST" envDefault:"0.0.0.0"`
	Port int    `env:"HTTP_PORT" envDefault:"8080"`
	Mode string `env:"HTTP_MODE" envDefault:"release"`
}

// LoggerConfig is the configuration for the logger.
type LoggerConfig struct {
	Level        string `env:"LOGGER_LEVEL" envDefault:"info"`
	Mode         string `env:"LOGGER_MODE" envDefault:"production"`
	Encoding     string `env:"LOGGER_ENCODING" envDefault:"json"`
	ColorEnabled bool   `env:"LOGGER_COLOR_ENABLED" envDefault:"false"`
}

// PostgresConfig is the configuration for PostgreSQL.
type PostgresConfig struct {
	Host     string `env:"POSTGRES_HOST" envDefault:"localhost"`
	Port     int    `env:"POSTGRES_PORT" envDefault:"5432"`
	User     string `env:"POSTGRES_USER" envDefault:"postgres"`
	Password string `env:"POSTGRES_PASSWORD"`
	DBName   string `env:"POSTGRES_DB" envDefault:"shield"`
	SSLMode  string `env:"POSTGRES_SSL_MODE" envDefault:"disable"`
}

// RedisConfig is the configuration for Redis.
type RedisConfig struct {
	Host     string `env:"REDIS_HOST" envDefault:"localhost"`
	Port     int    `env:"REDIS_PORT" envDefault:"6379"`
	Password string `env:"REDIS_PASSWORD"`
	DB       int    `env:"REDIS_DB" envDefault:"0"`
}

// MinIOConfig is the configuration for MinIO object storage.
type MinIOConfig struct {
	Endpoint   string `env:"MINIO_ENDPOINT"`
	AccessKey  string `env:"MINIO_ACCESS_KEY"`
	SecretKey  string `env:"MINIO_SECRET_KEY"`
	UseSSL     bool   `env:"MINIO_USE_SSL" envDefault:"false"`
	Region     string `env:"MINIO_REGION"`
	FeedBucket string `env:"MINIO_FEED_BUCKET" envDefault:"alert-feeds"`
}

// JWTConfig is the configuration for JWT auth.
type JWTConfig struct {
	SecretKey string `env:"JWT_SECRET_KEY"`
}

// EncrypterConfig is the configuration for token encryption at rest.
type EncrypterConfig struct {
	Key string `env:"ENCRYPTER_KEY"`
}

// CronConfig is the configuration for scheduled job endpoints.
type CronConfig struct {
	Secret string `env:"CRON_SECRET"`
}

// SlackConfig is the configuration for Slack delivery.
type SlackConfig struct {
	OpsWebhookURL string `env:"SLACK_OPS_WEBHOOK_URL"`
}

// MetaConfig is the configuration for the Meta Graph API.
type MetaConfig struct {
	BaseURL string `env:"META_BASE_URL"`
	Version string `env:"META_API_VERSION" envDefault:"v19.0"`
	Retries int    `env:"META_RETRIES" envDefault:"2"`
}

// EmailConfig is the configuration for transactional email.
type EmailConfig struct {
	APIKey string `env:"RESEND_API_KEY"`
	From   string `env:"EMAIL_FROM" envDefault:"Shield <alerts@shield.app>"`
}

// Load parses configuration from environment variables.
func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	if err := validate(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func validate(cfg *Config) error {
	if cfg.JWT.SecretKey == "" {
		return fmt.Errorf("JWT_SECRET_KEY is required")
	}
	if len(cfg.JWT.SecretKey) < 32 {
		return fmt.Errorf("JWT_SECRET_KEY must be at least 32 characters")
	}
	if cfg.Cron.Secret == "" {
		return fmt.Errorf("CRON_SECRET is required")
	}
	if cfg.Postgres.Host == "" {
		return fmt.Errorf("POSTGRES_HOST is required")
	}
	return nil
}
