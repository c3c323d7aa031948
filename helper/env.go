package helper

import (
	"log/slog"
	"os"
	"strings"
)

// GetEnvOrDefault returns environment variable value or default if not set
func GetEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// GetLogLevelFromEnv parses key as a slog level (debug, info, warn, error).
func GetLogLevelFromEnv(key string) slog.Level {
	switch strings.ToLower(GetEnvOrDefault(key, "info")) {
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
