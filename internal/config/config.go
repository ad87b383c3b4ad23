package config

import (
	"log/slog"
	"os"
	"strings"
)

const defaultAPIBaseURL = "https://api.abigailgeneralcleaningservice.com/api"

// Config holds runtime configuration loaded from environment variables.
// CLI flags may override individual fields after Load.
type Config struct {
	APIBaseURL string
	DBPath     string
	LogLevel   slog.Level
}

func Load() Config {
	return Config{
		APIBaseURL: strings.TrimSuffix(envOr("ABIGAIL_API_URL", defaultAPIBaseURL), "/"),
		DBPath:     envOr("ABIGAIL_DB_PATH", "abigail-admin.db"),
		LogLevel:   parseLevel(envOr("ABIGAIL_LOG_LEVEL", "info")),
	}
}

// UploadsBaseURL возвращает корень статики /uploads на том же origin,
// что и API, но без суффикса /api.
func (c Config) UploadsBaseURL() string {
	return strings.TrimSuffix(c.APIBaseURL, "/api") + "/uploads"
}

func envOr(key, fallback string) string {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return fallback
	}
	return value
}

func parseLevel(raw string) slog.Level {
	switch strings.ToLower(raw) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
