package stats

import "time"

const (
	defaultBaseURL     = "https://statsapi.web.nhl.com/api/v1"
	defaultHTTPTimeout = 10 * time.Second

	teamsPath = "/teams"
)
