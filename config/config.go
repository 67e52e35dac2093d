package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all service configuration.
type Config struct {
	// Environment
	Environment EnvironmentConfig

	// Server
	HTTPServer HTTPServerConfig
	Logger     LoggerConfig

	// Ads manager specifics
	App       AppConfig
	GoogleAds GoogleAdsConfig
	OAuth     OAuthConfig
	CredStore CredStoreConfig
	Session   SessionConfig

	// LLM provider abstraction
	LLM LLMConfig
}

type EnvironmentConfig struct {
	Name string
}

type HTTPServerConfig struct {
	Port int
	Mode string
}

type LoggerConfig struct {
	Level        string
	Mode         string
	Encoding     string
	ColorEnabled bool
}

// AppConfig holds the public-facing URL and artifact directories.
type AppConfig struct {
	BaseURL    string // public base URL for download links and OAuth redirect
	FilesDir   string // where generated reports are written and served from
	UploadsDir string // per-user uploaded/fetched reference files
}

// GoogleAdsConfig holds Google Ads API credentials.
type GoogleAdsConfig struct {
	DeveloperToken string
	ClientID       string
	ClientSecret   string
	ManagerID      string // login-customer-id header (MCC account)
}

// OAuthConfig holds the consent-flow settings layered on App.BaseURL.
type OAuthConfig struct {
	RedirectPath string // appended to App.BaseURL, default "/callback"
}

// CredStoreConfig holds the persistent credential store settings.
type CredStoreConfig struct {
	Path          string // sqlite database file
	EncryptionKey string // raw AES key (16/24/32 bytes) for refresh tokens at rest
}

// SessionConfig holds session lifecycle tuning.
type SessionConfig struct {
	InactivityTimeout time.Duration
	ReapInterval      time.Duration
	MemoryLimit       int // max retained conversation messages per session
	RateLimitPerMin   int // per-user /prompt rate limit
}

// LLMConfig holds configuration for the LLM provider abstraction layer.
type LLMConfig struct {
	Providers       []ProviderConfig `yaml:"providers"`
	FallbackEnabled bool             `yaml:"fallback_enabled"`
	RetryAttempts   int              `yaml:"retry_attempts"`
	RetryDelay      string           `yaml:"retry_delay"`
	MaxTotalTimeout string           `yaml:"max_total_timeout"`
}

// ProviderConfig holds configuration for a single LLM provider.
type ProviderConfig struct {
	Name     string `yaml:"name"`
	Enabled  bool   `yaml:"enabled"`
	Priority int    `yaml:"priority"`
	APIKey   string `yaml:"api_key"`
	BaseURL  string `yaml:"base_url,omitempty"`
	Model    string `yaml:"model"`
	Region   string `yaml:"region,omitempty"`
}

// Load loads configuration using Viper.
// Config file name: config.yaml — searched in ./config, ., /etc/app/
func Load() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath("./config")
	viper.AddConfigPath(".")
	viper.AddConfigPath("/etc/app/")

	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	cfg := &Config{}

	// Environment & Server
	cfg.Environment.Name = viper.GetString("environment.name")
	cfg.HTTPServer.Port = viper.GetInt("http_server.port")
	cfg.HTTPServer.Mode = viper.GetString("http_server.mode")
	cfg.Logger.Level = viper.GetString("logger.level")
	cfg.Logger.Mode = viper.GetString("logger.mode")
	cfg.Logger.Encoding = viper.GetString("logger.encoding")
	cfg.Logger.ColorEnabled = viper.GetBool("logger.color_enabled")

	// App
	cfg.App.BaseURL = strings.TrimRight(viper.GetString("app.base_url"), "/")
	cfg.App.FilesDir = viper.GetString("app.files_dir")
	cfg.App.UploadsDir = viper.GetString("app.uploads_dir")
	if appURL := viper.GetString("app_url"); appURL != "" {
		cfg.App.BaseURL = strings.TrimRight(appURL, "/")
	}

	// Google Ads
	cfg.GoogleAds.DeveloperToken = viper.GetString("google_ads.developer_token")
	cfg.GoogleAds.ClientID = viper.GetString("google_ads.client_id")
	cfg.GoogleAds.ClientSecret = viper.GetString("google_ads.client_secret")
	cfg.GoogleAds.ManagerID = viper.GetString("google_ads.manager_id")
	if tok := viper.GetString("google_ads_developer_token"); tok != "" {
		cfg.GoogleAds.DeveloperToken = tok
	}
	if id := viper.GetString("google_client_id"); id != "" {
		cfg.GoogleAds.ClientID = id
	}
	if secret := viper.GetString("google_client_secret"); secret != "" {
		cfg.GoogleAds.ClientSecret = secret
	}
	if mgr := viper.GetString("google_ads_manager_id"); mgr != "" {
		cfg.GoogleAds.ManagerID = mgr
	}

	// OAuth
	cfg.OAuth.RedirectPath = viper.GetString("oauth.redirect_path")

	// Credential store
	cfg.CredStore.Path = viper.GetString("credstore.path")
	cfg.CredStore.EncryptionKey = expandEnvVar(viper.GetString("credstore.encryption_key"))
	if key := viper.GetString("credstore_encryption_key"); key != "" {
		cfg.CredStore.EncryptionKey = key
	}

	// Session lifecycle
	cfg.Session.InactivityTimeout = viper.GetDuration("session.inactivity_timeout")
	cfg.Session.ReapInterval = viper.GetDuration("session.reap_interval")
	cfg.Session.MemoryLimit = viper.GetInt("session.memory_limit")
	cfg.Session.RateLimitPerMin = viper.GetInt("session.rate_limit_per_min")

	// LLM provider abstraction
	cfg.LLM.FallbackEnabled = viper.GetBool("llm.fallback_enabled")
	cfg.LLM.RetryAttempts = viper.GetInt("llm.retry_attempts")
	cfg.LLM.RetryDelay = viper.GetString("llm.retry_delay")
	cfg.LLM.MaxTotalTimeout = viper.GetString("llm.max_total_timeout")

	if viper.IsSet("llm.providers") {
		providersRaw := viper.Get("llm.providers")
		if providersList, ok := providersRaw.([]interface{}); ok {
			for _, p := range providersList {
				if providerMap, ok := p.(map[string]interface{}); ok {
					provider := ProviderConfig{
						Name:     getStringFromMap(providerMap, "name"),
						Enabled:  getBoolFromMap(providerMap, "enabled"),
						Priority: getIntFromMap(providerMap, "priority"),
						APIKey:   expandEnvVar(getStringFromMap(providerMap, "api_key")),
						BaseURL:  getStringFromMap(providerMap, "base_url"),
						Model:    getStringFromMap(providerMap, "model"),
						Region:   getStringFromMap(providerMap, "region"),
					}
					cfg.LLM.Providers = append(cfg.LLM.Providers, provider)
				}
			}
		}
	}

	if len(cfg.LLM.Providers) == 0 {
		return nil, fmt.Errorf("no LLM providers configured - please add llm.providers section to config.yaml")
	}

	return cfg, nil
}

func setDefaults() {
	viper.SetDefault("environment.name", "development")
	viper.SetDefault("http_server.port", 8000)
	viper.SetDefault("http_server.mode", "debug")
	viper.SetDefault("logger.level", "debug")
	viper.SetDefault("logger.mode", "debug")
	viper.SetDefault("logger.encoding", "console")
	viper.SetDefault("logger.color_enabled", true)

	viper.SetDefault("app.files_dir", "./static/files")
	viper.SetDefault("app.uploads_dir", "./user_uploads")

	viper.SetDefault("oauth.redirect_path", "/callback")

	viper.SetDefault("credstore.path", "./data/credentials.db")

	viper.SetDefault("session.inactivity_timeout", 30*time.Minute)
	viper.SetDefault("session.reap_interval", 5*time.Minute)
	viper.SetDefault("session.memory_limit", 40)
	viper.SetDefault("session.rate_limit_per_min", 30)

	// LLM defaults
	viper.SetDefault("llm.fallback_enabled", true)
	viper.SetDefault("llm.retry_attempts", 3)
	viper.SetDefault("llm.retry_delay", "1s")
	viper.SetDefault("llm.max_total_timeout", "300s")
}

// expandEnvVar expands environment variables in the format ${VAR_NAME}
func expandEnvVar(value string) string {
	if value == "" {
		return value
	}

	if strings.HasPrefix(value, "${") && strings.HasSuffix(value, "}") {
		envVar := value[2 : len(value)-1]
		if envValue := viper.GetString(envVar); envValue != "" {
			return envValue
		}
		if envValue := viper.GetString(strings.ToLower(envVar)); envValue != "" {
			return envValue
		}
		if envValue := os.Getenv(envVar); envValue != "" {
			return envValue
		}
	}

	return value
}

// Helper functions to safely extract values from map[string]interface{}
func getStringFromMap(m map[string]interface{}, key string) string {
	if val, ok := m[key]; ok {
		if str, ok := val.(string); ok {
			return str
		}
	}
	return ""
}

func getBoolFromMap(m map[string]interface{}, key string) bool {
	if val, ok := m[key]; ok {
		if b, ok := val.(bool); ok {
			return b
		}
	}
	return false
}

func getIntFromMap(m map[string]interface{}, key string) int {
	if val, ok := m[key]; ok {
		if i, ok := val.(int); ok {
			return i
		}
		// Handle float64 from JSON unmarshaling
		if f, ok := val.(float64); ok {
			return int(f)
		}
	}
	return 0
}
