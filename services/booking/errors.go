package booking

import "errors"

var (
	// ErrSessionNotFound is returned when a session id does not resolve
	// (never created, expired, or cancelled).
	ErrSessionNotFound = errors.New("booking session not found or expired")
)
