package config

import (
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Output formats understood by the CLI.
const (
	OutputJSON = "json"
	OutputYAML = "yaml"
	OutputText = "text"
)

// Config holds the application configuration loaded from files and environment variables.
type Config struct {
	AppName  string `mapstructure:"app_name"`
	Env      string `mapstructure:"app_env"`
	LogLevel string `mapstructure:"log_level"`

	APIKey         string `mapstructure:"gmaps_api_key"`
	ClientID       string `mapstructure:"gmaps_client_id"`
	SigningKey     string `mapstructure:"gmaps_signing_key"`
	DetailsBaseURI string `mapstructure:"details_base_uri"`
	UserAgent      string `mapstructure:"user_agent"`
	OutputFormat   string `mapstructure:"output_format"`

	HTTPTimeoutSeconds int64         `mapstructure:"http_timeout_seconds"`
	HTTPTimeout        time.Duration `mapstructure:"-"`

	StorageType            string        `mapstructure:"storage_type"`
	BBoltPath              string        `mapstructure:"bbolt_path"`
	StorageTTLSeconds      int64         `mapstructure:"storage_ttl_seconds"`
	StorageCleanupSeconds  int64         `mapstructure:"storage_cleanup_interval_seconds"`
	StorageTTL             time.Duration `mapstructure:"-"`
	StorageCleanupInterval time.Duration `mapstructure:"-"`
}

// Load reads configuration from environment variables and config files.
func Load() (*Config, error) {
	_ = godotenv.Load("configs/.env")

	v := viper.New()

	v.SetDefault("app_name", "gmaps")
	v.SetDefault("app_env", "development")
	v.SetDefault("log_level", "info")
	v.SetDefault("gmaps_api_key", "")
	v.SetDefault("gmaps_client_id", "")
	v.SetDefault("gmaps_signing_key", "")
	v.SetDefault("details_base_uri", "")
	v.SetDefault("user_agent", "gmaps-go")
	v.SetDefault("output_format", OutputText)
	v.SetDefault("http_timeout_seconds", 15)
	v.SetDefault("storage_type", "bbolt")
	v.SetDefault("bbolt_path", "./data/places.db")
	v.SetDefault("storage_ttl_seconds", int64((30*24*time.Hour)/time.Second))
	v.SetDefault("storage_cleanup_interval_seconds", int64((12*time.Hour)/time.Second))

	v.AutomaticEnv()

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	if err := cfg.Finalize(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Finalize validates the raw values and fills in derived durations. Callers
// that change fields after Load (e.g. from CLI flags) run it again.
func (cfg *Config) Finalize() error {
	cfg.OutputFormat = strings.ToLower(strings.TrimSpace(cfg.OutputFormat))
	switch cfg.OutputFormat {
	case OutputJSON, OutputYAML, OutputText:
	default:
		return fmt.Errorf("invalid output_format %q (expected json, yaml or text)", cfg.OutputFormat)
	}

	if cfg.HTTPTimeoutSeconds <= 0 {
		return fmt.Errorf("invalid http_timeout_seconds (must be positive seconds)")
	}
	cfg.HTTPTimeout = time.Duration(cfg.HTTPTimeoutSeconds) * time.Second

	if cfg.StorageTTLSeconds <= 0 {
		return fmt.Errorf("invalid storage_ttl_seconds (must be positive seconds)")
	}
	if cfg.StorageCleanupSeconds <= 0 {
		return fmt.Errorf("invalid storage_cleanup_interval_seconds (must be positive seconds)")
	}
	cfg.StorageTTL = time.Duration(cfg.StorageTTLSeconds) * time.Second
	cfg.StorageCleanupInterval = time.Duration(cfg.StorageCleanupSeconds) * time.Second

	cfg.DetailsBaseURI = strings.TrimSpace(cfg.DetailsBaseURI)
	if cfg.DetailsBaseURI != "" {
		u, err := url.Parse(cfg.DetailsBaseURI)
		if err != nil || u.Scheme == "" || u.Host == "" {
			return fmt.Errorf("invalid details_base_uri %q (expected absolute URL)", cfg.DetailsBaseURI)
		}
	}

	if (cfg.ClientID == "") != (cfg.SigningKey == "") {
		return fmt.Errorf("gmaps_client_id and gmaps_signing_key must be set together")
	}
	return nil
}

// BaseURI returns the parsed details_base_uri, or nil when unset.
func (cfg *Config) BaseURI() *url.URL {
	if cfg == nil || cfg.DetailsBaseURI == "" {
		return nil
	}
	u, err := url.Parse(cfg.DetailsBaseURI)
	if err != nil {
		return nil
	}
	return u
}

// Redacted returns a copy safe to log.
func (cfg Config) Redacted() Config {
	if cfg.APIKey != "" {
		cfg.APIKey = "*****"
	}
	if cfg.SigningKey != "" {
		cfg.SigningKey = "*****"
	}
	return cfg
}
