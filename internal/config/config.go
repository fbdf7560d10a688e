// Package config loads the server configuration from an optional YAML
// file and the PLAIN_* environment variables.
package config

import (
	"fmt"

	"github.com/spf13/viper"
)

// DefaultBaseURL is the Plain.com GraphQL endpoint used when no override
// is configured.
const DefaultBaseURL = "https://core-api.uk.plain.com/graphql/v1"

// Config holds everything needed to reach the Plain.com API.
type Config struct {
	APIKey  string `mapstructure:"api_key"`
	BaseURL string `mapstructure:"base_url"`
}

// Load reads configuration from the given file path (optional; when empty
// a plainmcp.yaml in the working directory is used if present) and from
// the environment. PLAIN_API_KEY is required; PLAIN_API_URL overrides the
// endpoint. A missing API key is a startup fault, not a per-call one.
func Load(path string) (*Config, error) {
	v := viper.New()
	v.SetDefault("base_url", DefaultBaseURL)

	v.SetEnvPrefix("PLAIN")
	if err := v.BindEnv("api_key"); err != nil {
		return nil, err
	}
	if err := v.BindEnv("base_url", "PLAIN_API_URL"); err != nil {
		return nil, err
	}

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	} else {
		v.SetConfigName("plainmcp")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		if err := v.ReadInConfig(); err != nil {
			if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
				return nil, fmt.Errorf("failed to read config file: %w", err)
			}
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	if cfg.APIKey == "" {
		return nil, fmt.Errorf("api_key is required (set PLAIN_API_KEY)")
	}
	return &cfg, nil
}
