package search

import (
	"context"
	"errors"
	"log/slog"
	"math/rand/v2"
	"sync"
	"time"

	"fyne.io/fyne/v2"
	"github.com/google/uuid"

	"github.com/pucknet/puck-scout/internal/logging"
	"github.com/pucknet/puck-scout/internal/model"
)

// ErrEmptyDirectory is the cause recorded when the league returns zero teams.
var ErrEmptyDirectory = errors.New("team directory is empty")

// Service runs one search: fetch the team directory, pick a team at random,
// resolve its logo, assemble the Team. Searches started through Start are
// generation-stamped; a slow search that finishes after a newer one started
// is dropped instead of overwriting the newer result.
type Service struct {
	source    TeamSource
	resolver  SpriteResolver
	logger    *slog.Logger
	pickIndex func(n int) int
	loadImage func(path string) (fyne.Resource, error)

	mu         sync.Mutex
	generation uint64
	onOutcome  func(model.SearchOutcome)
}

// NewService creates a search service over the given directory source and
// sprite resolver.
func NewService(source TeamSource, resolver SpriteResolver, logger *slog.Logger) *Service {
	return &Service{
		source:    source,
		resolver:  resolver,
		logger:    logger,
		pickIndex: rand.IntN,
		loadImage: fyne.LoadResourceFromPath,
	}
}

// SetOutcomeCallback sets the callback receiving search completions. The
// callback is invoked from the search goroutine; UI code must hop to the
// render thread itself.
func (s *Service) SetOutcomeCallback(callback func(model.SearchOutcome)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.onOutcome = callback
}

// SetIndexPicker replaces the uniform random picker. The function receives
// the directory size and must return an index in [0, n).
func (s *Service) SetIndexPicker(pick func(n int) int) {
	s.pickIndex = pick
}

// Search runs the pipeline synchronously and returns the assembled team or
// the classified error. Stages run in strict sequence; the first failure
// short-circuits the rest.
func (s *Service) Search(ctx context.Context) (*model.Team, error) {
	teams, err := s.source.Teams(ctx)
	if err != nil {
		return nil, model.NewAPIError("stats.teams", err)
	}
	if len(teams) == 0 {
		return nil, model.NewAPIError("stats.teams", ErrEmptyDirectory)
	}

	rec := teams[s.pickIndex(len(teams))]
	logging.Debug(s.logger, "team selected",
		logging.FieldTeamID, rec.ID,
		logging.FieldTeamName, rec.Name,
		logging.FieldTeamCount, len(teams))

	path, err := s.resolver.Resolve(ctx, rec.ID)
	if err != nil {
		return nil, model.NewAPIError("sprite.resolve", err)
	}

	image, err := s.loadImage(path)
	if err != nil {
		return nil, model.NewAPIError("sprite.load", err)
	}

	return model.NewTeam(rec, image, path), nil
}

// Start launches an asynchronous search and returns its generation. The
// outcome reaches the callback only if no newer search has started since.
func (s *Service) Start(ctx context.Context) uint64 {
	s.mu.Lock()
	s.generation++
	gen := s.generation
	s.mu.Unlock()

	searchID := "search-" + uuid.NewString()

	go func() {
		started := time.Now()
		team, err := s.Search(ctx)
		if err != nil {
			logging.Error(s.logger, "search failed", err,
				logging.FieldSearchID, searchID,
				logging.FieldGeneration, gen)
		} else {
			logging.Debug(s.logger, "search completed",
				logging.FieldSearchID, searchID,
				logging.FieldGeneration, gen,
				logging.FieldTeamID, team.Number,
				logging.FieldDurationMS, time.Since(started).Milliseconds())
		}

		s.deliver(model.SearchOutcome{
			Generation: gen,
			SearchID:   searchID,
			Team:       team,
			Err:        err,
		})
	}()

	return gen
}

// deliver forwards an outcome to the callback unless a newer search has been
// started, in which case the outcome is stale and dropped.
func (s *Service) deliver(outcome model.SearchOutcome) {
	s.mu.Lock()
	if outcome.Generation < s.generation {
		s.mu.Unlock()
		logging.Debug(s.logger, "stale search outcome dropped",
			logging.FieldSearchID, outcome.SearchID,
			logging.FieldGeneration, outcome.Generation)
		return
	}
	callback := s.onOutcome
	s.mu.Unlock()

	if callback != nil {
		callback(outcome)
	}
}
