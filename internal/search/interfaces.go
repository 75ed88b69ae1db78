package search

import (
	"context"

	"github.com/pucknet/puck-scout/internal/model"
)

// TeamSource provides the full team directory.
type TeamSource interface {
	Teams(ctx context.Context) ([]model.TeamRecord, error)
}

// SpriteResolver turns a team id into a local logo file, fetching and caching
// it when needed.
type SpriteResolver interface {
	Resolve(ctx context.Context, id uint) (string, error)
}

// Searcher defines the interface for the search service.
type Searcher interface {
	SetOutcomeCallback(func(model.SearchOutcome))
	Search(ctx context.Context) (*model.Team, error)
	Start(ctx context.Context) uint64
}
