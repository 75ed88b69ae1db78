package stats

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/pucknet/puck-scout/internal/model"
)

// Config controls how the stats client reaches the league API.
type Config struct {
	BaseURL    string
	HTTPClient *http.Client
	Timeout    time.Duration
}

// Client fetches the team directory from the league stats API and maps it to
// domain records. Every failure is surfaced as the classified error kind.
type Client struct {
	baseURL    string
	httpClient httpDoer
}

// NewClient constructs a stats client with the provided configuration.
func NewClient(cfg Config) *Client {
	return &Client{
		baseURL:    normalizeBaseURL(cfg.BaseURL),
		httpClient: resolveHTTPClient(cfg.HTTPClient, cfg.Timeout),
	}
}

// Teams retrieves the full team directory in the order the API returns it.
func (c *Client) Teams(ctx context.Context) ([]model.TeamRecord, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+teamsPath, nil)
	if err != nil {
		return nil, model.NewAPIError("stats.teams", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, model.NewAPIError("stats.teams", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		err := fmt.Errorf("unexpected status %d: %s", resp.StatusCode, strings.TrimSpace(string(body)))
		return nil, model.NewAPIError("stats.teams", err)
	}

	var payload teamsResponse
	if decodeErr := json.NewDecoder(resp.Body).Decode(&payload); decodeErr != nil {
		return nil, model.NewAPIError("stats.teams", decodeErr)
	}

	return mapTeams(payload), nil
}
