package credstore

import "errors"

var (
	// ErrNotFound indicates no credentials are stored for the user
	ErrNotFound = errors.New("credentials not found")
)
