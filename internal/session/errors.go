package session

import "errors"

var (
	// ErrSessionNotFound indicates no session exists for the user
	ErrSessionNotFound = errors.New("session not found")

	// ErrStateNotFound indicates no session matches the OAuth state
	ErrStateNotFound = errors.New("no session matches oauth state")
)
