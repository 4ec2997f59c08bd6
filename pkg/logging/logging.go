// Package logging configures the process-wide structured logger.
package logging

import (
	"log/slog"
	"os"
	"strings"
)

// EnvVarLogLevel selects the log level at startup.
const EnvVarLogLevel = "RADIAL_LOG_LEVEL"

// SetDefault installs a JSON slog handler on stderr tagged with the module
// name and version. The level comes from RADIAL_LOG_LEVEL.
func SetDefault(module, version string) {
	level := ParseLevel(os.Getenv(EnvVarLogLevel))
	handler := slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level:     level,
		AddSource: level <= slog.LevelDebug,
	})
	slog.SetDefault(slog.New(handler).With("module", module, "version", version))
}

// ParseLevel maps a level string to a slog.Level, defaulting to Info.
func ParseLevel(level string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(level)) {
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
