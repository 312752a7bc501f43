// Package config loads application configuration from environment variables,
// falling back to sensible local-development defaults.
package config

import (
	"fmt"
	"os"
	"strconv"
)

// Config holds all runtime settings. Each field corresponds to an
// environment variable.
type Config struct {
	Port string

	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSSLMode  string

	LogLevel string

	// StampEventDate controls whether event registration overrides the
	// caller-supplied event date with the current date. The original API
	// always stamped "today"; set STAMP_EVENT_DATE=false to honour the
	// date in the request instead.
	StampEventDate bool
}

// Load reads the configuration from the environment.
func Load() Config {
	return Config{
		Port:           getEnv("PORT", "8080"),
		DBHost:         getEnv("DB_HOST", "localhost"),
		DBPort:         getEnv("DB_PORT", "5432"),
		DBUser:         getEnv("DB_USER", "postgres"),
		DBPassword:     getEnv("DB_PASSWORD", "postgres"),
		DBName:         getEnv("DB_NAME", "apievents"),
		DBSSLMode:      getEnv("DB_SSLMODE", "disable"),
		LogLevel:       getEnv("LOG_LEVEL", "info"),
		StampEventDate: getEnvBool("STAMP_EVENT_DATE", true),
	}
}

// DSN builds a libpq-compatible connection string.
func (c Config) DSN() string {
	return fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.DBHost, c.DBPort, c.DBUser, c.DBPassword, c.DBName, c.DBSSLMode,
	)
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvBool(key string, fallback bool) bool {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return fallback
	}
	return b
}
