package model

// SearchState represents the state of the single search screen
type SearchState string

const (
	// StateLoading means a search is in flight and nothing is displayed yet
	StateLoading SearchState = "Loading"

	// StateLoaded means a team is displayed
	StateLoaded SearchState = "Loaded"

	// StateErrored means the last search failed
	StateErrored SearchState = "Errored"
)

// String returns the string representation of SearchState
func (s SearchState) String() string {
	return string(s)
}

// IsBusy returns true while a search is in flight
func (s SearchState) IsBusy() bool {
	return s == StateLoading
}

// IsSettled returns true if the state is a resting state (loaded or errored)
func (s SearchState) IsSettled() bool {
	return s == StateLoaded || s == StateErrored
}

// SearchOutcome is the completion message delivered by the search service.
// Exactly one of Team or Err is set. Generation orders outcomes so a slow
// search cannot overwrite the result of one started after it.
type SearchOutcome struct {
	Generation uint64
	SearchID   string
	Team       *Team
	Err        error
}

// State returns the resting state this outcome settles into.
func (o SearchOutcome) State() SearchState {
	if o.Err != nil {
		return StateErrored
	}
	return StateLoaded
}
