package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

// Config holds all configuration for the storefront service.
type Config struct {
	Port string
	Env  string

	RedisURL string

	PostgresUser     string
	PostgresPassword string
	PostgresDB       string
	PostgresHost     string
	PostgresPort     string
	PostgresSSLMode  string

	CartTTL           time.Duration
	SessionCookieName string
	RequestTimeout    time.Duration
}

// Load reads configuration from environment variables with sane defaults.
func Load() Config {
	return Config{
		Port: getEnv("PORT", "8087"),
		Env:  getEnv("APP_ENV", "development"),

		// Carts live in db index 1, away from any other Redis users.
		RedisURL: getEnv("REDIS_URL", "redis://localhost:6379/1"),

		PostgresUser:     getEnv("POSTGRES_USER", "postgres"),
		PostgresPassword: os.Getenv("POSTGRES_PASSWORD"),
		PostgresDB:       getEnv("POSTGRES_DB", "storefront"),
		PostgresHost:     getEnv("POSTGRES_HOST", "localhost"),
		PostgresPort:     getEnv("POSTGRES_PORT", "5432"),
		PostgresSSLMode:  getEnv("POSTGRES_SSLMODE", "disable"),

		CartTTL:           time.Duration(getEnvInt("CART_TTL_HOURS", 24)) * time.Hour,
		SessionCookieName: getEnv("SESSION_COOKIE_NAME", "session_id"),
		RequestTimeout:    time.Duration(getEnvInt("REQUEST_TIMEOUT_SECONDS", 30)) * time.Second,
	}
}

// PostgresDSN builds the GORM connection string.
func (c Config) PostgresDSN() string {
	return fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=%s",
		c.PostgresHost, c.PostgresUser, c.PostgresPassword, c.PostgresDB, c.PostgresPort, c.PostgresSSLMode)
}

func getEnv(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}

func getEnvInt(key string, defaultVal int) int {
	if val := os.Getenv(key); val != "" {
		if n, err := strconv.Atoi(val); err == nil {
			return n
		}
	}
	return defaultVal
}
