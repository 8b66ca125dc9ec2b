// Package config reads server settings from the environment, with optional
// .env file support for local development.
package config

import (
	"log/slog"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

// Config holds everything the binaries need at startup.
type Config struct {
	// Addr is the listen address for the API server.
	Addr string
	// DatabaseURL is the SQLite DSN for the key-value backend, or ":memory:"
	// for a purely in-memory run.
	DatabaseURL string
	// JWTSecret signs session tokens.
	JWTSecret string
	// SeedOnStart runs the marker-guarded seeder at boot.
	SeedOnStart bool
	// LogLevel is debug, info, warn, or error.
	LogLevel slog.Level
}

// Load reads the configuration. A .env file in the working directory is
// loaded first if present; real environment variables win over it.
func Load() Config {
	// Ignore the error: a missing .env simply means env-only configuration.
	_ = godotenv.Load()

	return Config{
		Addr:        getEnv("ADDR", ":8080"),
		DatabaseURL: getEnv("DATABASE_URL", "hostel.db?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)"),
		JWTSecret:   getEnv("JWT_SECRET", "changeme-use-a-real-secret-in-production"),
		SeedOnStart: getEnv("SEED_ON_START", "true") == "true",
		LogLevel:    parseLevel(getEnv("LOG_LEVEL", "info")),
	}
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func parseLevel(s string) slog.Level {
	switch strings.ToLower(s) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
