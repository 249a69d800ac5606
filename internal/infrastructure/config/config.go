package config

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/sethvargo/go-envconfig"
)

type Config struct {
	Port     string `env:"PORT,      default=8080"`
	Env      string `env:"ENV,       default=development"`
	LogLevel string `env:"LOG_LEVEL, default=info"`

	// JWTSecret signs every session token. There is no fallback: a missing
	// secret is a fatal configuration error at startup, never a runtime
	// default.
	JWTSecret string        `env:"JWT_SECRET"`
	TokenTTL  time.Duration `env:"TOKEN_TTL, default=168h"`

	Admin AdminConfig
	Mongo MongoConfig
	Redis RedisConfig
	S3    S3Config
}

// AdminConfig drives the startup bootstrap of the administrator login. With
// an empty email the bootstrap is skipped entirely.
type AdminConfig struct {
	Email string `env:"ADMIN_EMAIL"`
	Name  string `env:"ADMIN_NAME,  default=System Admin"`
	Phone string `env:"ADMIN_PHONE"`
}

type MongoConfig struct {
	URI      string `env:"MONGO_URI, default=mongodb://localhost:27017"`
	Database string `env:"MONGO_DB,  default=client_portal"`
}

type RedisConfig struct {
	Addr string `env:"REDIS_ADDR, default=localhost:6379"`
	DB   int    `env:"REDIS_DB,   default=0"`
}

type S3Config struct {
	Region    string        `env:"S3_REGION,     default=us-east-1"`
	Endpoint  string        `env:"S3_ENDPOINT"`
	Bucket    string        `env:"S3_BUCKET,     default=client-portal-documents"`
	AccessKey string        `env:"S3_ACCESS_KEY"`
	SecretKey string        `env:"S3_SECRET_KEY"`
	URLTTL    time.Duration `env:"S3_URL_TTL,    default=60s"`
}

// Production reports whether the process runs with production settings
// (controls the Secure flag on the auth cookie, among other things).
func (c *Config) Production() bool {
	return c.Env == "production"
}

// Load reads configuration from environment variables using go-envconfig.
func Load(ctx context.Context) (*Config, error) {
	var cfg Config
	if err := envconfig.Process(ctx, &cfg); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	if cfg.JWTSecret == "" {
		return nil, errors.New("config: JWT_SECRET is required")
	}
	if cfg.TokenTTL <= 0 {
		return nil, errors.New("config: TOKEN_TTL must be positive")
	}
	return &cfg, nil
}
