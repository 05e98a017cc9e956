// Package logger provides structured logging setup using slog.
package logger

import (
	"io"
	"log/slog"
	"os"
	"strings"
)

// New creates a structured JSON logger at the given level. Unknown level
// strings fall back to info.
func New(level string) *slog.Logger {
	return NewWithOutput(os.Stderr, level)
}

// NewWithOutput is New writing to w; tests use it to capture output.
func NewWithOutput(w io.Writer, level string) *slog.Logger {
	return slog.New(slog.NewJSONHandler(w, &slog.HandlerOptions{
		Level: parseLevel(level),
	}))
}

func parseLevel(level string) slog.Level {
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
