package model

import "errors"

// APIError is the single error kind surfaced to the UI. Every failure in the
// search pipeline (transport, bad response, filesystem write) collapses into
// it; the underlying cause is kept only for the debug log.
type APIError struct {
	Op  string // pipeline stage, e.g. "stats.teams" or "sprite.fetch"
	Err error
}

func (e *APIError) Error() string {
	if e.Err != nil {
		return "api error: " + e.Op + ": " + e.Err.Error()
	}
	return "api error: " + e.Op
}

func (e *APIError) Unwrap() error {
	return e.Err
}

// NewAPIError classifies err under the given pipeline stage. An err that is
// already an APIError is returned as is so stages never double-wrap.
func NewAPIError(op string, err error) *APIError {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr
	}
	return &APIError{Op: op, Err: err}
}

// IsAPIError reports whether err is (or wraps) the classified error kind.
func IsAPIError(err error) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr)
}
