package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

type PostgresConfig struct {
	Host     string
	Port     string
	DB       string
	Username string
	Password string
	SSLMode  string
	MaxConns int32
	MinConns int32
}

type RepositoriesConfig struct {
	Postgres PostgresConfig
}

// SessionConfig controls the signed session cookie and the server-side
// session TTL.
type SessionConfig struct {
	SecretKey  string
	TTL        time.Duration
	CookieName string
}

// BackendConfig points at the external jobs/recommendations REST API.
type BackendConfig struct {
	BaseURL string
	Timeout time.Duration
}

type Config struct {
	Repositories RepositoriesConfig
	Session      SessionConfig
	Backend      BackendConfig
	ServerPort   string
}

func Load() (*Config, error) {
	cfg := &Config{
		Repositories: RepositoriesConfig{
			Postgres: PostgresConfig{
				Host:     getEnvOrDefault("POSTGRES_HOST", "localhost"),
				Port:     getEnvOrDefault("POSTGRES_PORT", "5432"),
				DB:       getEnvOrDefault("POSTGRES_DB", "wostup"),
				Username: getEnvOrDefault("POSTGRES_USER", "postgres"),
				Password: getEnvOrDefault("POSTGRES_PASSWORD", ""),
				SSLMode:  getEnvOrDefault("POSTGRES_SSLMODE", "disable"),
				MaxConns: 30,
				MinConns: 5,
			},
		},
		Session: SessionConfig{
			SecretKey:  getEnvOrDefault("SESSION_SECRET_KEY", ""),
			TTL:        getDurationOrDefault("SESSION_TTL", 24*time.Hour),
			CookieName: getEnvOrDefault("SESSION_COOKIE_NAME", "wostup_session"),
		},
		Backend: BackendConfig{
			BaseURL: getEnvOrDefault("BACKEND_API_URL", "http://localhost:9000/api"),
			Timeout: getDurationOrDefault("BACKEND_TIMEOUT", 15*time.Second),
		},
		ServerPort: getEnvOrDefault("SERVER_PORT", "8090"),
	}

	if cfg.Repositories.Postgres.Password == "" {
		return nil, fmt.Errorf("POSTGRES_PASSWORD environment variable is required")
	}
	if cfg.Session.SecretKey == "" {
		return nil, fmt.Errorf("SESSION_SECRET_KEY environment variable is required")
	}

	return cfg, nil
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getDurationOrDefault(key string, defaultValue time.Duration) time.Duration {
	raw := os.Getenv(key)
	if raw == "" {
		return defaultValue
	}
	if d, err := time.ParseDuration(raw); err == nil {
		return d
	}
	// Bare numbers are read as hours (e.g. SESSION_TTL=48).
	if hours, err := strconv.Atoi(raw); err == nil {
		return time.Duration(hours) * time.Hour
	}
	return defaultValue
}
