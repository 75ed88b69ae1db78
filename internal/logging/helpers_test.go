package logging

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"strings"
	"testing"
)

func TestHelpersTolerateNilLogger(t *testing.T) {
	// Must not panic.
	Debug(nil, "msg")
	Info(nil, "msg")
	Error(nil, "msg", errors.New("boom"))
}

func TestErrorAppendsCause(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))

	Error(logger, "fetch failed", errors.New("connection reset"))

	out := buf.String()
	if !strings.Contains(out, "fetch failed") {
		t.Errorf("Expected message in output, got: %s", out)
	}
	if !strings.Contains(out, "connection reset") {
		t.Errorf("Expected error cause in output, got: %s", out)
	}
}

func TestNewLoggerDebugLevel(t *testing.T) {
	logger := NewLogger(true)
	if !logger.Enabled(context.Background(), slog.LevelDebug) {
		t.Error("Expected debug level to be enabled")
	}

	logger = NewLogger(false)
	if logger.Enabled(context.Background(), slog.LevelDebug) {
		t.Error("Expected debug level to be disabled by default")
	}
}
