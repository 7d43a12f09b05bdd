package usecase

import "github.com/cockroachdb/errors"

var (
	ErrInvalidInput          = errors.New("invalid input")
	ErrNotFound              = errors.New("resource not found")
	ErrDependencyUnavailable = errors.New("dependency unavailable")
)

// Narrower causes for the browser. Each still matches its broad sentinel with errors.Is.
var (
	ErrSessionNotFound = errors.Wrap(ErrNotFound, "browser session")
	ErrGameNotFound    = errors.Wrap(ErrNotFound, "game")
	ErrRoundNotActive  = errors.Wrap(ErrInvalidInput, "round is not the current round")
)
