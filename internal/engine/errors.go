package engine

import "errors"

// Error definitions for the engine package.
var (
	ErrNotFound = errors.New("no engine registered for task")
	ErrFailure  = errors.New("inference engine failure")
)
