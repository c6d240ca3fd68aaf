package util

import (
	"log/slog"
	"os"
	"strings"
)

var Logger *slog.Logger

// InitLogger sets up the process-wide JSON logger. LOG_LEVEL selects the
// minimum level (debug/info/warn/error), defaulting to info.
func InitLogger() {
	handler := slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: levelFromEnv(),
	})
	Logger = slog.New(handler).With("service", "storesvc")
	slog.SetDefault(Logger)
}

func GetLogger() *slog.Logger {
	if Logger == nil {
		InitLogger()
	}
	return Logger
}

func levelFromEnv() slog.Level {
	switch strings.ToLower(os.Getenv("LOG_LEVEL")) {
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
