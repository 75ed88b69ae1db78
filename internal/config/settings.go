package config

import (
	"time"

	"fyne.io/fyne/v2"

	"github.com/pucknet/puck-scout/internal/platform"
)

// Settings keys for Fyne preferences
const (
	KeyStatsBaseURL   = "stats_base_url"
	KeyImageBaseURL   = "image_base_url"
	KeyHTTPTimeoutSec = "http_timeout_seconds"
	KeySpriteCacheDir = "sprite_cache_directory"
	KeyDebugLogging   = "debug_logging"
)

// Default values
const (
	DefaultStatsBaseURL   = "https://statsapi.web.nhl.com/api/v1"
	DefaultImageBaseURL   = "http://www-league.nhlstatic.com"
	DefaultHTTPTimeoutSec = 10
	DefaultDebugLogging   = false
)

// Timeout bounds
const (
	MinHTTPTimeoutSec = 1
	MaxHTTPTimeoutSec = 120
)

// Settings manages application configuration
type Settings struct {
	app fyne.App
}

// NewSettings creates a new settings manager
func NewSettings(app fyne.App) *Settings {
	return &Settings{app: app}
}

// GetStatsBaseURL returns the base URL of the league stats API
func (s *Settings) GetStatsBaseURL() string {
	url := s.app.Preferences().String(KeyStatsBaseURL)
	if url == "" {
		s.SetStatsBaseURL(DefaultStatsBaseURL)
		return DefaultStatsBaseURL
	}
	return url
}

// SetStatsBaseURL sets the base URL of the league stats API
func (s *Settings) SetStatsBaseURL(url string) {
	s.app.Preferences().SetString(KeyStatsBaseURL, url)
}

// GetImageBaseURL returns the base URL of the logo image host
func (s *Settings) GetImageBaseURL() string {
	url := s.app.Preferences().String(KeyImageBaseURL)
	if url == "" {
		s.SetImageBaseURL(DefaultImageBaseURL)
		return DefaultImageBaseURL
	}
	return url
}

// SetImageBaseURL sets the base URL of the logo image host
func (s *Settings) SetImageBaseURL(url string) {
	s.app.Preferences().SetString(KeyImageBaseURL, url)
}

// GetHTTPTimeout returns the timeout applied to every outbound request
func (s *Settings) GetHTTPTimeout() time.Duration {
	value := s.app.Preferences().Int(KeyHTTPTimeoutSec)
	if value <= 0 {
		s.SetHTTPTimeoutSec(DefaultHTTPTimeoutSec)
		return DefaultHTTPTimeoutSec * time.Second
	}
	return time.Duration(value) * time.Second
}

// SetHTTPTimeoutSec sets the outbound request timeout in seconds
func (s *Settings) SetHTTPTimeoutSec(seconds int) {
	if seconds < MinHTTPTimeoutSec {
		seconds = MinHTTPTimeoutSec
	}
	if seconds > MaxHTTPTimeoutSec {
		seconds = MaxHTTPTimeoutSec
	}
	s.app.Preferences().SetInt(KeyHTTPTimeoutSec, seconds)
}

// GetSpriteCacheDir returns the directory holding cached team logos
func (s *Settings) GetSpriteCacheDir() string {
	dir := s.app.Preferences().String(KeySpriteCacheDir)
	if dir == "" {
		defaultDir := platform.DefaultSpriteCacheDir()
		s.SetSpriteCacheDir(defaultDir)
		return defaultDir
	}
	return dir
}

// SetSpriteCacheDir sets the directory holding cached team logos
func (s *Settings) SetSpriteCacheDir(dir string) {
	s.app.Preferences().SetString(KeySpriteCacheDir, dir)
}

// GetDebugLogging returns whether diagnostic logging is enabled
func (s *Settings) GetDebugLogging() bool {
	return s.app.Preferences().BoolWithFallback(KeyDebugLogging, DefaultDebugLogging)
}

// SetDebugLogging sets whether diagnostic logging is enabled
func (s *Settings) SetDebugLogging(enabled bool) {
	s.app.Preferences().SetBool(KeyDebugLogging, enabled)
}
