// Package platform assembles the content source, image resolver, page
// resolver, mailer, and metrics into a running application. Configuration
// comes from the environment, optionally overlaid with a YAML file.
package platform

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Environment variables read by FromEnv.
const (
	EnvSanityProjectID  = "SANITY_PROJECT_ID"
	EnvSanityDataset    = "SANITY_DATASET"
	EnvSanityAPIVersion = "SANITY_API_VERSION"
	EnvResendAPIKey     = "RESEND_API_KEY"
	EnvAddr             = "PORTFOLIO_ADDR"
	EnvContentDir       = "PORTFOLIO_CONTENT_DIR"
	EnvConfigFile       = "PORTFOLIO_CONFIG"
)

const (
	defaultDataset    = "production"
	defaultAPIVersion = "2024-01-01"
	defaultAddr       = ":8080"
)

// Config is the application configuration.
type Config struct {
	// SanityProjectID and SanityDataset identify the hosted content store.
	// When ContentDir is set they are ignored for fetching but still feed
	// the image URL builder.
	SanityProjectID  string `yaml:"sanity_project_id"`
	SanityDataset    string `yaml:"sanity_dataset"`
	SanityAPIVersion string `yaml:"sanity_api_version"`

	// ResendAPIKey enables outbound email. Empty means the contact form
	// reports the send service as unavailable.
	ResendAPIKey string `yaml:"resend_api_key"`

	// Addr is the HTTP listen address.
	Addr string `yaml:"addr"`

	// ContentDir, when set, serves content from local YAML/JSON documents
	// instead of the hosted store.
	ContentDir string `yaml:"content_dir"`
}

// FromEnv builds a Config from the process environment. If EnvConfigFile
// points at a YAML file it is loaded first and the environment overrides it.
func FromEnv() (Config, error) {
	var cfg Config

	if path := os.Getenv(EnvConfigFile); path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return Config{}, fmt.Errorf("platform: reading config file: %w", err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return Config{}, fmt.Errorf("platform: parsing config file: %w", err)
		}
	}

	overlay(&cfg.SanityProjectID, EnvSanityProjectID)
	overlay(&cfg.SanityDataset, EnvSanityDataset)
	overlay(&cfg.SanityAPIVersion, EnvSanityAPIVersion)
	overlay(&cfg.ResendAPIKey, EnvResendAPIKey)
	overlay(&cfg.Addr, EnvAddr)
	overlay(&cfg.ContentDir, EnvContentDir)

	cfg.applyDefaults()
	return cfg, nil
}

func overlay(dst *string, key string) {
	if v := os.Getenv(key); v != "" {
		*dst = v
	}
}

func (c *Config) applyDefaults() {
	if c.SanityDataset == "" {
		c.SanityDataset = defaultDataset
	}
	if c.SanityAPIVersion == "" {
		c.SanityAPIVersion = defaultAPIVersion
	}
	if c.Addr == "" {
		c.Addr = defaultAddr
	}
}

// Validate checks that a content source can be constructed: either a local
// content directory or a hosted project ID.
func (c Config) Validate() error {
	if c.ContentDir == "" && c.SanityProjectID == "" {
		return fmt.Errorf("platform: no content source configured: set %s or %s", EnvSanityProjectID, EnvContentDir)
	}
	return nil
}
