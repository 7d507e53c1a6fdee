// Package config loads process configuration from the environment.
package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	"github.com/rs/zerolog/log"

	"github.com/thebtf/promptlab/internal/store"
	"github.com/thebtf/promptlab/internal/tags"
)

// Config holds the application configuration. Store settings are read once
// here and are immutable for the store's lifetime.
type Config struct {
	Addr        string `envconfig:"PROMPTLAB_ADDR" default:":8000"`
	LogLevel    string `envconfig:"LOG_LEVEL" default:"info"`
	LibraryPath string `envconfig:"LIBRARY_PATH"`

	MaxVersionsPerPrompt store.VersionCap `envconfig:"MAX_VERSIONS_PER_PROMPT" default:"unlimited"`
	MaxTags              int              `envconfig:"MAX_TAGS" default:"10"`
	MaxTagLength         int              `envconfig:"MAX_TAG_LENGTH" default:"30"`

	CORSAllowedOrigins string `envconfig:"CORS_ALLOWED_ORIGINS" default:"*"`
}

// Load reads an optional .env file, then the environment.
func Load(envFile string) (*Config, error) {
	if envFile != "" {
		if _, err := os.Stat(envFile); err == nil {
			if err := godotenv.Load(envFile); err != nil {
				log.Warn().Err(err).Str("path", envFile).Msg("Could not load env file")
			}
		}
	}

	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("process environment: %w", err)
	}
	if cfg.MaxTags <= 0 {
		return nil, fmt.Errorf("MAX_TAGS must be positive, got %d", cfg.MaxTags)
	}
	if cfg.MaxTagLength <= 0 {
		return nil, fmt.Errorf("MAX_TAG_LENGTH must be positive, got %d", cfg.MaxTagLength)
	}
	return &cfg, nil
}

// TagLimits returns the configured tag limits.
func (c *Config) TagLimits() tags.Limits {
	return tags.Limits{MaxTags: c.MaxTags, MaxTagLength: c.MaxTagLength}
}

// AllowedOrigins splits CORSAllowedOrigins into a slice.
func (c *Config) AllowedOrigins() []string {
	if c.CORSAllowedOrigins == "" {
		return nil
	}
	return strings.Split(strings.ReplaceAll(c.CORSAllowedOrigins, " ", ""), ",")
}
