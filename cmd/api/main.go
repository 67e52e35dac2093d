package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/denissa4/ads-manager/config"
	_ "github.com/denissa4/ads-manager/docs" // Swagger docs
	"github.com/denissa4/ads-manager/internal/agent"
	"github.com/denissa4/ads-manager/internal/agent/orchestrator"
	"github.com/denissa4/ads-manager/internal/agent/tools"
	"github.com/denissa4/ads-manager/internal/artifact"
	"github.com/denissa4/ads-manager/internal/credstore"
	"github.com/denissa4/ads-manager/internal/httpserver"
	"github.com/denissa4/ads-manager/internal/middleware"
	"github.com/denissa4/ads-manager/internal/session"
	"github.com/denissa4/ads-manager/pkg/encrypter"
	"github.com/denissa4/ads-manager/pkg/googleads"
	"github.com/denissa4/ads-manager/pkg/googleauth"
	"github.com/denissa4/ads-manager/pkg/llmprovider"
	"github.com/denissa4/ads-manager/pkg/log"
)

// @title       Ads Manager API
// @description Conversational Google Ads campaign management backed by an LLM agent.
// @version     1
// @host        localhost:8000
// @schemes     http
func main() {
	// .env is optional; real deployments use environment variables.
	_ = godotenv.Load()

	// 1. Configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		return
	}

	// 2. Logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info(ctx, "Starting Ads Manager...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)
	logger.Infof(ctx, "Base URL: %s", cfg.App.BaseURL)

	// 3. Credential store (encrypted refresh tokens at rest)
	enc, err := encrypter.New([]byte(cfg.CredStore.EncryptionKey))
	if err != nil {
		logger.Error(ctx, "Invalid credential encryption key: ", err)
		return
	}
	creds, err := credstore.NewSQLite(cfg.CredStore.Path, enc)
	if err != nil {
		logger.Error(ctx, "Failed to open credential store: ", err)
		return
	}
	defer creds.Close()

	// 4. External clients
	adsClient := googleads.NewClient(googleads.Config{
		DeveloperToken: cfg.GoogleAds.DeveloperToken,
		ClientID:       cfg.GoogleAds.ClientID,
		ClientSecret:   cfg.GoogleAds.ClientSecret,
		ManagerID:      cfg.GoogleAds.ManagerID,
	})

	oauthFlow := googleauth.New(
		cfg.GoogleAds.ClientID,
		cfg.GoogleAds.ClientSecret,
		cfg.App.BaseURL+cfg.OAuth.RedirectPath,
	)

	// 5. LLM providers with priority fallback
	providers, err := llmprovider.InitializeProviders(ctx, providerConfigs(cfg), logger)
	if err != nil {
		logger.Error(ctx, "Failed to initialize LLM providers: ", err)
		return
	}
	llm := llmprovider.NewManager(providers, &llmprovider.Config{
		FallbackEnabled: cfg.LLM.FallbackEnabled,
		RetryAttempts:   cfg.LLM.RetryAttempts,
		RetryDelay:      parseDuration(cfg.LLM.RetryDelay, time.Second),
		MaxTotalTimeout: parseDuration(cfg.LLM.MaxTotalTimeout, 5*time.Minute),
	}, logger)

	// 6. Artifacts and sessions
	artifacts, err := artifact.NewStore(cfg.App.FilesDir, cfg.App.UploadsDir, cfg.App.BaseURL)
	if err != nil {
		logger.Error(ctx, "Failed to initialize artifact store: ", err)
		return
	}

	sessions := session.NewManager(session.Config{
		InactivityTimeout: cfg.Session.InactivityTimeout,
		ReapInterval:      cfg.Session.ReapInterval,
		MemoryLimit:       cfg.Session.MemoryLimit,
	}, creds, logger)
	go sessions.RunReaper(ctx)

	// 7. Agent runtime
	registry := agent.NewToolRegistry()
	tools.RegisterAll(registry, adsClient, llm, artifacts, logger)
	agentRunner := orchestrator.New(llm, registry, logger, cfg.App.BaseURL)
	logger.Infof(ctx, "Agent initialized with %d tools", len(registry.List()))

	// 8. HTTP Server
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Logger:         logger,
		Port:           cfg.HTTPServer.Port,
		Mode:           cfg.HTTPServer.Mode,
		Environment:    cfg.Environment.Name,
		BaseURL:        cfg.App.BaseURL,
		SessionManager: sessions,
		Agent:          agentRunner,
		ArtifactStore:  artifacts,
		RateLimiter:    middleware.NewRateLimiter(cfg.Session.RateLimitPerMin),
		OAuthFlow:      oauthFlow,
		FilesDir:       cfg.App.FilesDir,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		return
	}

	// 9. Run
	if err := httpServer.Run(ctx); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		return
	}

	logger.Info(ctx, "Server stopped gracefully")
}

func providerConfigs(cfg *config.Config) []llmprovider.ProviderConfig {
	out := make([]llmprovider.ProviderConfig, 0, len(cfg.LLM.Providers))
	for _, p := range cfg.LLM.Providers {
		out = append(out, llmprovider.ProviderConfig{
			Name:     p.Name,
			Enabled:  p.Enabled,
			Priority: p.Priority,
			APIKey:   p.APIKey,
			BaseURL:  p.BaseURL,
			Model:    p.Model,
			Region:   p.Region,
		})
	}
	return out
}

func parseDuration(raw string, fallback time.Duration) time.Duration {
	d, err := time.ParseDuration(raw)
	if err != nil || d <= 0 {
		return fallback
	}
	return d
}
