// Package config provides server configuration.
package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all server configuration.
type Config struct {
	Addr           string
	DBPath         string
	JWTSecret      string
	AccessTokenTTL time.Duration
}

// Load читает конфигурацию из .env (если есть) и переменных окружения
func Load() (*Config, error) {
	// .env опционален: в проде конфигурация приходит из окружения
	_ = godotenv.Load()

	cfg := &Config{
		Addr:           getEnv("CODECLIMB_ADDR", ":8080"),
		DBPath:         getEnv("CODECLIMB_DB_PATH", "codeclimb.db"),
		JWTSecret:      getEnv("CODECLIMB_JWT_SECRET", ""),
		AccessTokenTTL: getEnvDuration("CODECLIMB_TOKEN_TTL", 24*time.Hour),
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}

// Validate checks that all required configuration fields are set.
func (c *Config) Validate() error {
	if c.Addr == "" {
		return fmt.Errorf("CODECLIMB_ADDR cannot be empty")
	}
	if c.DBPath == "" {
		return fmt.Errorf("CODECLIMB_DB_PATH cannot be empty")
	}
	if c.JWTSecret == "" {
		return fmt.Errorf("CODECLIMB_JWT_SECRET must be set")
	}
	if len(c.JWTSecret) < 32 {
		return fmt.Errorf("CODECLIMB_JWT_SECRET must be at least 32 characters")
	}
	if c.AccessTokenTTL <= 0 {
		return fmt.Errorf("CODECLIMB_TOKEN_TTL must be positive")
	}
	return nil
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getEnvDuration(key string, fallback time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	if parsed, err := time.ParseDuration(value); err == nil {
		return parsed
	}
	// Голое число трактуем как часы
	if hours, err := strconv.Atoi(value); err == nil && hours > 0 {
		return time.Duration(hours) * time.Hour
	}
	return fallback
}
