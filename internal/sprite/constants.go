package sprite

import "time"

const (
	defaultBaseURL     = "http://www-league.nhlstatic.com"
	defaultHTTPTimeout = 10 * time.Second

	// logoPathFormat takes the team id.
	logoPathFormat = "/images/logos/teams-current-circle/%d.svg"
)
