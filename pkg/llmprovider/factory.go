package llmprovider

import (
	"context"
	"fmt"
	"sort"

	"github.com/denissa4/ads-manager/pkg/bedrock"
	"github.com/denissa4/ads-manager/pkg/gemini"
	"github.com/denissa4/ads-manager/pkg/log"
)

// ProviderConfig describes a single provider entry from configuration
type ProviderConfig struct {
	Name     string
	Enabled  bool
	Priority int // lower value = higher priority
	APIKey   string
	BaseURL  string
	Model    string
	Region   string
}

// InitializeProviders creates provider instances from configuration,
// sorted by priority. Disabled providers are skipped; a provider that
// fails to initialize is logged and skipped so the rest can serve.
func InitializeProviders(ctx context.Context, configs []ProviderConfig, logger log.Logger) ([]Provider, error) {
	sorted := make([]ProviderConfig, len(configs))
	copy(sorted, configs)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Priority < sorted[j].Priority
	})

	var providers []Provider

	for _, cfg := range sorted {
		if !cfg.Enabled {
			logger.Infof(ctx, "Skipping disabled provider: %s", cfg.Name)
			continue
		}

		provider, err := buildProvider(ctx, cfg)
		if err != nil {
			logger.Warnf(ctx, "Failed to initialize provider %s: %v", cfg.Name, err)
			continue
		}

		logger.Infof(ctx, "Initialized provider: %s (model: %s, priority: %d)",
			cfg.Name, provider.Model(), cfg.Priority)
		providers = append(providers, provider)
	}

	if len(providers) == 0 {
		return nil, ErrNoProvidersConfigured
	}

	return providers, nil
}

func buildProvider(ctx context.Context, cfg ProviderConfig) (Provider, error) {
	switch cfg.Name {
	case "bedrock":
		client, err := bedrock.New(ctx, bedrock.Config{
			Model:  cfg.Model,
			Region: cfg.Region,
		})
		if err != nil {
			return nil, err
		}
		return NewBedrockAdapter(client, cfg.Name), nil

	case "gemini":
		client, err := gemini.New(gemini.Config{
			APIKey:  cfg.APIKey,
			Model:   cfg.Model,
			BaseURL: cfg.BaseURL,
		})
		if err != nil {
			return nil, err
		}
		return NewGeminiAdapter(client, cfg.Name), nil

	default:
		return nil, fmt.Errorf("unknown provider: %s", cfg.Name)
	}
}
