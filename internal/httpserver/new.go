package httpserver

import (
	"context"
	"errors"

	"github.com/gin-gonic/gin"
	"golang.org/x/oauth2"

	"github.com/denissa4/ads-manager/internal/artifact"
	"github.com/denissa4/ads-manager/internal/middleware"
	"github.com/denissa4/ads-manager/internal/session"
	"github.com/denissa4/ads-manager/pkg/log"
)

// promptRunner drives one agent turn, streaming incremental output
// through the emitter.
type promptRunner interface {
	ProcessPrompt(ctx context.Context, sess *session.Session, prompt string, emit func(string)) (string, error)
}

// oauthFlow is the slice of the OAuth helper the gateway needs.
type oauthFlow interface {
	AuthCodeURL(state string) string
	Exchange(ctx context.Context, code string) (*oauth2.Token, error)
	Userinfo(ctx context.Context, token *oauth2.Token) (string, error)
}

// HTTPServer holds all dependencies for the HTTP server.
type HTTPServer struct {
	// Server
	gin         *gin.Engine
	l           log.Logger
	port        int
	mode        string
	environment string
	baseURL     string

	// Conversational assistant
	sessions  *session.Manager
	agent     promptRunner
	artifacts *artifact.Store
	limiter   *middleware.RateLimiter

	// OAuth handshake
	oauth oauthFlow

	// Static artifact serving
	filesDir string
}

// Config is the dependency bag passed to New().
type Config struct {
	Logger      log.Logger
	Port        int
	Mode        string
	Environment string
	BaseURL     string

	SessionManager *session.Manager
	Agent          promptRunner
	ArtifactStore  *artifact.Store
	RateLimiter    *middleware.RateLimiter

	OAuthFlow oauthFlow

	FilesDir string
}

// New creates a new HTTPServer instance.
func New(logger log.Logger, cfg Config) (*HTTPServer, error) {
	gin.SetMode(cfg.Mode)

	srv := &HTTPServer{
		l:           logger,
		gin:         gin.Default(),
		port:        cfg.Port,
		mode:        cfg.Mode,
		environment: cfg.Environment,
		baseURL:     cfg.BaseURL,
		sessions:    cfg.SessionManager,
		agent:       cfg.Agent,
		artifacts:   cfg.ArtifactStore,
		limiter:     cfg.RateLimiter,
		oauth:       cfg.OAuthFlow,
		filesDir:    cfg.FilesDir,
	}

	if err := srv.validate(); err != nil {
		return nil, err
	}

	if err := srv.mapHandlers(); err != nil {
		return nil, err
	}

	return srv, nil
}

func (srv *HTTPServer) validate() error {
	if srv.l == nil {
		return errors.New("logger is required")
	}
	if srv.mode == "" {
		return errors.New("mode is required")
	}
	if srv.port == 0 {
		return errors.New("port is required")
	}
	if srv.baseURL == "" {
		return errors.New("base URL is required")
	}
	if srv.sessions == nil {
		return errors.New("session manager is required")
	}
	if srv.agent == nil {
		return errors.New("agent is required")
	}
	return nil
}
