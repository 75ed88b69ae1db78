package config

import (
	"testing"
	"time"

	"fyne.io/fyne/v2/test"
)

func TestNewSettings(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	if settings.app != app {
		t.Error("Settings app reference should match provided app")
	}
}

func TestStatsBaseURL(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	// Test default value
	url := settings.GetStatsBaseURL()
	if url != DefaultStatsBaseURL {
		t.Errorf("Expected default stats base URL %s, got %s", DefaultStatsBaseURL, url)
	}

	// Test setting custom value
	customURL := "http://localhost:8080/api/v1"
	settings.SetStatsBaseURL(customURL)

	if got := settings.GetStatsBaseURL(); got != customURL {
		t.Errorf("Expected stats base URL %s, got %s", customURL, got)
	}
}

func TestImageBaseURL(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	if url := settings.GetImageBaseURL(); url != DefaultImageBaseURL {
		t.Errorf("Expected default image base URL %s, got %s", DefaultImageBaseURL, url)
	}

	customURL := "http://localhost:9090"
	settings.SetImageBaseURL(customURL)

	if got := settings.GetImageBaseURL(); got != customURL {
		t.Errorf("Expected image base URL %s, got %s", customURL, got)
	}
}

func TestHTTPTimeout(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	// Test default value
	timeout := settings.GetHTTPTimeout()
	if timeout != DefaultHTTPTimeoutSec*time.Second {
		t.Errorf("Expected default timeout %ds, got %s", DefaultHTTPTimeoutSec, timeout)
	}

	// Test setting custom value
	settings.SetHTTPTimeoutSec(30)
	if got := settings.GetHTTPTimeout(); got != 30*time.Second {
		t.Errorf("Expected timeout 30s, got %s", got)
	}

	// Test boundary values
	settings.SetHTTPTimeoutSec(0) // Should be clamped to minimum
	if got := settings.GetHTTPTimeout(); got != MinHTTPTimeoutSec*time.Second {
		t.Errorf("Expected timeout clamped to %ds, got %s", MinHTTPTimeoutSec, got)
	}

	settings.SetHTTPTimeoutSec(999) // Should be clamped to maximum
	if got := settings.GetHTTPTimeout(); got != MaxHTTPTimeoutSec*time.Second {
		t.Errorf("Expected timeout clamped to %ds, got %s", MaxHTTPTimeoutSec, got)
	}
}

func TestSpriteCacheDir(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	// Default resolves to a non-empty platform directory
	dir := settings.GetSpriteCacheDir()
	if dir == "" {
		t.Error("Sprite cache directory should not be empty")
	}

	customDir := "/custom/sprites"
	settings.SetSpriteCacheDir(customDir)

	if got := settings.GetSpriteCacheDir(); got != customDir {
		t.Errorf("Expected sprite cache dir %s, got %s", customDir, got)
	}
}

func TestDebugLogging(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	if settings.GetDebugLogging() != DefaultDebugLogging {
		t.Errorf("Expected default debug logging %v", DefaultDebugLogging)
	}

	settings.SetDebugLogging(true)
	if !settings.GetDebugLogging() {
		t.Error("Expected debug logging to be enabled")
	}
}
