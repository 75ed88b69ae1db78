package logging

import (
	"log/slog"
	"os"
)

// NewLogger returns a structured logger writing to stderr. Diagnostic detail
// for failed searches is logged at debug level, so it stays invisible unless
// debug is enabled.
func NewLogger(debug bool) *slog.Logger {
	level := slog.LevelInfo
	if debug {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	}))
}
