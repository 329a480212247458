package config

import (
	"context"
	"fmt"
	"time"

	"github.com/joho/godotenv"
	"github.com/sethvargo/go-envconfig"
)

type Config struct {
	Port      string   `env:"PORT,       default=8080"`
	Env       string   `env:"ENV,        default=development"`
	LogLevel  string   `env:"LOG_LEVEL,  default=info"`
	JWTSecret string   `env:"JWT_SECRET"`
	TokenTTL  int      `env:"ACCESS_TOKEN_EXPIRE_MINUTES, default=30"`
	CORS      []string `env:"CORS_ORIGINS, default=*"`

	Postgres PostgresConfig
}

type PostgresConfig struct {
	Host     string `env:"POSTGRES_SERVER,   default=localhost"`
	Port     string `env:"POSTGRES_PORT,     default=5432"`
	User     string `env:"POSTGRES_USER,     default=postgres"`
	Password string `env:"POSTGRES_PASSWORD"`
	DBName   string `env:"POSTGRES_DB,       default=signalements"`
	SSLMode  string `env:"POSTGRES_SSLMODE,  default=disable"`
}

// Load reads configuration from environment variables, after loading a
// local .env file when present.
func Load() (*Config, error) {
	_ = godotenv.Load()

	var cfg Config
	if err := envconfig.Process(context.Background(), &cfg); err != nil {
		return nil, fmt.Errorf("load configuration: %w", err)
	}
	return &cfg, nil
}

// TokenTTLDuration returns the configured token lifetime.
func (c *Config) TokenTTLDuration() time.Duration {
	return time.Duration(c.TokenTTL) * time.Minute
}
