package script

import "errors"

// Errors for script operations.
var (
	// ErrEngineClosed is returned when operating on a closed engine.
	ErrEngineClosed = errors.New("script engine is closed")

	// ErrUnknownAction is returned by an ActionRunner for an unbound name.
	ErrUnknownAction = errors.New("unknown action")
)
