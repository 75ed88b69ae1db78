package sprite

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/pucknet/puck-scout/internal/logging"
	"github.com/pucknet/puck-scout/internal/model"
	"github.com/pucknet/puck-scout/internal/platform"
)

type httpDoer interface {
	Do(req *http.Request) (*http.Response, error)
}

// Config controls where sprites are fetched from and cached to.
type Config struct {
	BaseURL    string
	CacheDir   string
	HTTPClient *http.Client
	Timeout    time.Duration
	Logger     *slog.Logger
}

// Service resolves a team id to a local SVG file. A file already present at
// the deterministic cache path is returned as is; it is never re-validated or
// re-downloaded.
type Service struct {
	baseURL    string
	cacheDir   string
	httpClient httpDoer
	logger     *slog.Logger
}

// NewService creates a sprite resolver with the provided configuration.
func NewService(cfg Config) *Service {
	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	cacheDir := cfg.CacheDir
	if cacheDir == "" {
		cacheDir = platform.DefaultSpriteCacheDir()
	}

	httpClient := httpDoer(cfg.HTTPClient)
	if cfg.HTTPClient == nil {
		timeout := cfg.Timeout
		if timeout <= 0 {
			timeout = defaultHTTPTimeout
		}
		httpClient = &http.Client{Timeout: timeout}
	}

	return &Service{
		baseURL:    strings.TrimSuffix(baseURL, "/"),
		cacheDir:   cacheDir,
		httpClient: httpClient,
		logger:     cfg.Logger,
	}
}

// PathFor computes the deterministic cache path for a team id.
func (s *Service) PathFor(id uint) string {
	return platform.SpritePath(s.cacheDir, id)
}

// URLFor builds the remote logo URL for a team id.
func (s *Service) URLFor(id uint) string {
	return s.baseURL + fmt.Sprintf(logoPathFormat, id)
}

// Resolve returns the local path of the team's logo, downloading it first
// unless a cached file already exists. Any failure is surfaced as the
// classified error kind.
func (s *Service) Resolve(ctx context.Context, id uint) (string, error) {
	path := s.PathFor(id)

	if platform.IsRegularFile(path) {
		logging.Debug(s.logger, "sprite cache hit",
			logging.FieldTeamID, id,
			logging.FieldPath, path,
			logging.FieldCacheHit, true)
		return path, nil
	}

	body, err := s.fetch(ctx, id)
	if err != nil {
		return "", model.NewAPIError("sprite.fetch", err)
	}

	if err := platform.WriteSprite(path, body); err != nil {
		return "", model.NewAPIError("sprite.write", err)
	}

	logging.Debug(s.logger, "sprite fetched",
		logging.FieldTeamID, id,
		logging.FieldPath, path,
		logging.FieldCacheHit, false)
	return path, nil
}

func (s *Service) fetch(ctx context.Context, id uint) ([]byte, error) {
	url := s.URLFor(id)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status %d for %s", resp.StatusCode, url)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}
	return body, nil
}
