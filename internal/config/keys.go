// Package config provides API key management utilities.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/chorusworks/chorus/pkg/models"
)

// ErrNoAPIKey is returned when no API key is configured for a provider.
var ErrNoAPIKey = errors.New("no API key configured")

// envVarFor returns the environment variable carrying a provider's API key.
func envVarFor(p models.Provider) string {
	switch p {
	case models.ProviderGemini:
		return "GEMINI_API_KEY"
	case models.ProviderOpenAI:
		return "OPENAI_API_KEY"
	case models.ProviderAnthropic:
		return "ANTHROPIC_API_KEY"
	default:
		return ""
	}
}

// configuredKey returns the raw key stored in the config for a provider.
func configuredKey(cfg *Config, p models.Provider) string {
	if cfg == nil {
		return ""
	}
	switch p {
	case models.ProviderGemini:
		return cfg.Gemini.APIKey
	case models.ProviderOpenAI:
		return cfg.OpenAI.APIKey
	case models.ProviderAnthropic:
		return cfg.Anthropic.APIKey
	default:
		return ""
	}
}

// GetAPIKey returns a provider's API key.
// It checks in order: environment variable, config file.
func GetAPIKey(cfg *Config, p models.Provider) (string, error) {
	// First check environment variable directly
	if env := envVarFor(p); env != "" {
		if key := os.Getenv(env); key != "" {
			return key, nil
		}
	}

	// Then check config
	if raw := configuredKey(cfg, p); raw != "" {
		// Expand any remaining env var references
		key := os.ExpandEnv(raw)
		if key != "" && !strings.HasPrefix(key, "${") {
			return key, nil
		}
	}

	return "", fmt.Errorf("%s: %w", p, ErrNoAPIKey)
}

// MaskAPIKey returns a masked version of an API key for display.
// Shows the first 7 characters and last 4 characters.
func MaskAPIKey(key string) string {
	if key == "" {
		return "(not set)"
	}

	if len(key) <= 15 {
		return "***"
	}

	return key[:7] + "..." + key[len(key)-4:]
}

// KeySource represents where an API key was loaded from.
type KeySource string

const (
	KeySourceEnv    KeySource = "environment"
	KeySourceConfig KeySource = "config_file"
	KeySourceNone   KeySource = "none"
)

// GetAPIKeySource returns where a provider's API key was sourced from.
func GetAPIKeySource(cfg *Config, p models.Provider) KeySource {
	if env := envVarFor(p); env != "" && os.Getenv(env) != "" {
		return KeySourceEnv
	}

	if raw := configuredKey(cfg, p); raw != "" {
		key := os.ExpandEnv(raw)
		if key != "" && !strings.HasPrefix(key, "${") {
			return KeySourceConfig
		}
	}

	return KeySourceNone
}
