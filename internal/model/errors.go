package model

import "errors"

// Common errors used across the client
var (
	// Session errors
	ErrNoSession        = errors.New("no session")
	ErrSessionMalformed = errors.New("persisted session is malformed")

	// Player errors
	ErrPlayerNotSet = errors.New("player id is not set")

	// Farm errors
	ErrActionInFlight = errors.New("another farm action is in flight")
)
