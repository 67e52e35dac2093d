package credstore

import "context"

// Store persists Google Ads credentials across restarts. Refresh tokens
// are encrypted at rest.
type Store interface {
	// Get retrieves the stored credentials for a user. Returns
	// ErrNotFound when the user has never authenticated.
	Get(ctx context.Context, userID string) (*Credentials, error)

	// Put creates or replaces the credentials for a user.
	Put(ctx context.Context, creds *Credentials) error

	// Delete removes the credentials for a user.
	Delete(ctx context.Context, userID string) error

	// Close releases the underlying resources.
	Close() error
}
