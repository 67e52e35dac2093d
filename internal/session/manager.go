package session

import (
	"context"
	"errors"
	"os"
	"sync"
	"time"

	"github.com/denissa4/ads-manager/internal/credstore"
	"github.com/denissa4/ads-manager/pkg/log"
)

// Config holds session manager settings.
type Config struct {
	InactivityTimeout time.Duration // idle time before a session is reaped
	ReapInterval      time.Duration // how often the reaper runs
	MemoryLimit       int           // max conversation messages kept per session
}

// Manager owns the in-memory session table. Its lock covers the table
// only; agent runs hold individual sessions, never the table lock.
type Manager struct {
	mu       sync.Mutex
	sessions map[string]*Session

	cfg    Config
	creds  credstore.Store
	logger log.Logger
}

// NewManager creates a session manager backed by the credential store.
func NewManager(cfg Config, creds credstore.Store, logger log.Logger) *Manager {
	if cfg.InactivityTimeout <= 0 {
		cfg.InactivityTimeout = 30 * time.Minute
	}
	if cfg.ReapInterval <= 0 {
		cfg.ReapInterval = 5 * time.Minute
	}

	return &Manager{
		sessions: make(map[string]*Session),
		cfg:      cfg,
		creds:    creds,
		logger:   logger,
	}
}

// GetOrCreate returns the session for a user, creating it on first
// contact. New sessions are preloaded with stored credentials so a
// returning user does not re-authenticate.
func (m *Manager) GetOrCreate(ctx context.Context, userID string) *Session {
	m.mu.Lock()
	if s, ok := m.sessions[userID]; ok {
		s.mu.Lock()
		s.LastActiveAt = time.Now()
		s.mu.Unlock()
		m.mu.Unlock()
		return s
	}

	s := &Session{
		UserID:       userID,
		Auth:         Auth{Stage: StageUnauthenticated},
		memoryLimit:  m.cfg.MemoryLimit,
		LastActiveAt: time.Now(),
	}
	m.sessions[userID] = s
	m.mu.Unlock()

	m.preloadCredentials(ctx, s)
	return s
}

// preloadCredentials restores persisted Ads credentials into a fresh
// session. A missing record is the normal first-time case.
func (m *Manager) preloadCredentials(ctx context.Context, s *Session) {
	if m.creds == nil {
		return
	}

	stored, err := m.creds.Get(ctx, s.UserID)
	if err != nil {
		if !errors.Is(err, credstore.ErrNotFound) {
			m.logger.Warnf(ctx, "Failed to load stored credentials for user %s: %v", s.UserID, err)
		}
		return
	}

	s.mu.Lock()
	s.Auth.Stage = StageReady
	s.Auth.CustomerID = stored.CustomerID
	s.Auth.RefreshToken = stored.RefreshToken
	s.Auth.Email = stored.Email
	s.mu.Unlock()

	m.logger.Infof(ctx, "Restored stored credentials for user %s", s.UserID)
}

// Get returns the session for a user without creating one.
func (m *Manager) Get(userID string) (*Session, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	s, ok := m.sessions[userID]
	if !ok {
		return nil, ErrSessionNotFound
	}
	return s, nil
}

// Touch updates the session's last activity time.
func (m *Manager) Touch(userID string) {
	m.mu.Lock()
	s, ok := m.sessions[userID]
	m.mu.Unlock()
	if !ok {
		return
	}

	s.mu.Lock()
	s.LastActiveAt = time.Now()
	s.mu.Unlock()
}

// Reset clears a session's conversation memory and artifacts while
// preserving authentication, so "refresh" does not force a new OAuth
// round trip.
func (m *Manager) Reset(ctx context.Context, userID string) error {
	s, err := m.Get(userID)
	if err != nil {
		return err
	}

	m.removeFiles(ctx, s.ArtifactPaths())

	s.mu.Lock()
	s.memory = nil
	s.Artifacts = Artifacts{}
	s.LastActiveAt = time.Now()
	s.mu.Unlock()

	m.logger.Infof(ctx, "Session reset for user %s", userID)
	return nil
}

// BeginAuth records a pending OAuth flow for the session.
func (m *Manager) BeginAuth(ctx context.Context, userID, oauthState string) *Session {
	s := m.GetOrCreate(ctx, userID)

	s.mu.Lock()
	s.Auth.Stage = StageAwaitingCallback
	s.Auth.OAuthState = oauthState
	s.mu.Unlock()

	return s
}

// FindByOAuthState locates the session whose pending OAuth flow carries
// the given anti-forgery state. The state stays valid through the token
// exchange so the customer-id form POST can be matched by it too, and
// is only retired once credentials are injected. Unmatched states are a
// terminal error for the caller.
func (m *Manager) FindByOAuthState(state string) (*Session, error) {
	if state == "" {
		return nil, ErrStateNotFound
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	for _, s := range m.sessions {
		s.mu.Lock()
		inFlight := s.Auth.Stage == StageAwaitingCallback || s.Auth.Stage == StageTokenReceived
		match := inFlight && s.Auth.OAuthState == state
		s.mu.Unlock()
		if match {
			return s, nil
		}
	}
	return nil, ErrStateNotFound
}

// CompleteTokenExchange stores tokens after the OAuth callback. The
// session is not Ready until a customer ID is also provided; the OAuth
// state is kept so the follow-up form POST can still be matched to it.
func (m *Manager) CompleteTokenExchange(s *Session, accessToken, refreshToken, email string) {
	s.mu.Lock()
	s.Auth.Stage = StageTokenReceived
	s.Auth.AccessToken = accessToken
	s.Auth.RefreshToken = refreshToken
	s.Auth.Email = email
	s.LastActiveAt = time.Now()
	s.mu.Unlock()
}

// InjectCredentials finalizes authentication with a customer ID and
// persists the credentials for future sessions.
func (m *Manager) InjectCredentials(ctx context.Context, s *Session, customerID string) error {
	s.mu.Lock()
	s.Auth.Stage = StageReady
	s.Auth.CustomerID = customerID
	s.Auth.OAuthState = ""
	s.LastActiveAt = time.Now()
	refreshToken := s.Auth.RefreshToken
	email := s.Auth.Email
	userID := s.UserID
	s.mu.Unlock()

	if m.creds == nil {
		return nil
	}

	err := m.creds.Put(ctx, &credstore.Credentials{
		UserID:       userID,
		CustomerID:   customerID,
		RefreshToken: refreshToken,
		Email:        email,
	})
	if err != nil {
		m.logger.Errorf(ctx, "Failed to persist credentials for user %s: %v", userID, err)
		return err
	}

	m.logger.Infof(ctx, "Credentials stored for user %s", userID)
	return nil
}

// Count returns the number of live sessions.
func (m *Manager) Count() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.sessions)
}

// RunReaper periodically removes inactive sessions until the context is
// cancelled.
func (m *Manager) RunReaper(ctx context.Context) {
	ticker := time.NewTicker(m.cfg.ReapInterval)
	defer ticker.Stop()

	m.logger.Infof(ctx, "Session reaper started: interval=%s timeout=%s",
		m.cfg.ReapInterval, m.cfg.InactivityTimeout)

	for {
		select {
		case <-ctx.Done():
			m.logger.Info(ctx, "Session reaper stopped")
			return
		case <-ticker.C:
			m.reapOnce(ctx)
		}
	}
}

// reapOnce removes sessions idle past the timeout and deletes their
// artifact files.
func (m *Manager) reapOnce(ctx context.Context) {
	cutoff := time.Now().Add(-m.cfg.InactivityTimeout)

	m.mu.Lock()
	var expired []*Session
	for userID, s := range m.sessions {
		s.mu.Lock()
		idle := s.LastActiveAt.Before(cutoff)
		s.mu.Unlock()
		if idle {
			expired = append(expired, s)
			delete(m.sessions, userID)
		}
	}
	m.mu.Unlock()

	for _, s := range expired {
		m.removeFiles(ctx, s.ArtifactPaths())
		m.logger.Infof(ctx, "Reaped inactive session for user %s", s.UserID)
	}
}

// removeFiles deletes artifact files, logging and skipping failures so
// one bad path never blocks the rest.
func (m *Manager) removeFiles(ctx context.Context, paths []string) {
	for _, path := range paths {
		if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
			m.logger.Warnf(ctx, "Failed to remove session file %s: %v", path, err)
		}
	}
}
