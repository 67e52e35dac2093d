package credstore

import "time"

// Credentials holds a user's Google Ads API access material.
type Credentials struct {
	UserID       string
	CustomerID   string
	RefreshToken string
	Email        string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
