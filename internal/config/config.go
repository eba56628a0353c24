// Copyright 2026 The React2HTML Authors
// SPDX-License-Identifier: MIT

// Package config resolves react2html settings from defaults, a .env file,
// an optional .react2html.yaml settings file, the environment, and flags.
package config

import (
	"errors"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/davetashner/react2html/internal/redact"
)

// Supported providers.
const (
	ProviderGroq      = "groq"
	ProviderAnthropic = "anthropic"
)

// FileName is the settings file looked up in the working directory.
const FileName = ".react2html.yaml"

// EnvPrefix prefixes environment overrides for non-credential settings,
// e.g. REACT2HTML_MODEL.
const EnvPrefix = "REACT2HTML"

var (
	// ErrMissingAPIKey is returned by RequireAPIKey when the selected
	// provider has no credential.
	ErrMissingAPIKey = errors.New("config: API key not set")

	// ErrUnknownProvider is returned by Load for an unsupported provider.
	ErrUnknownProvider = errors.New("config: unknown provider")
)

// Config holds the resolved settings for one run.
type Config struct {
	Provider        string `mapstructure:"provider" yaml:"provider"`
	Model           string `mapstructure:"model" yaml:"model,omitempty"`
	BaseURL         string `mapstructure:"base_url" yaml:"base_url,omitempty"`
	Input           string `mapstructure:"input" yaml:"input,omitempty"`
	Output          string `mapstructure:"output" yaml:"output"`
	Open            bool   `mapstructure:"open" yaml:"open"`
	GroqAPIKey      string `mapstructure:"groq_api_key" yaml:"groq_api_key,omitempty"`
	AnthropicAPIKey string `mapstructure:"anthropic_api_key" yaml:"anthropic_api_key,omitempty"`

	// Source is the settings file that was read, if any.
	Source string `mapstructure:"-" yaml:"-"`
}

// APIKey returns the credential for the selected provider.
func (c *Config) APIKey() string {
	if c.Provider == ProviderAnthropic {
		return c.AnthropicAPIKey
	}
	return c.GroqAPIKey
}

// APIKeyEnv names the environment variable the selected provider reads.
func (c *Config) APIKeyEnv() string {
	if c.Provider == ProviderAnthropic {
		return "ANTHROPIC_API_KEY"
	}
	return "GROQ_API_KEY"
}

// RequireAPIKey reports ErrMissingAPIKey when the selected provider has no
// credential.
func (c *Config) RequireAPIKey() error {
	if c.APIKey() == "" {
		return fmt.Errorf("%w: set %s in the environment, .env, or %s", ErrMissingAPIKey, c.APIKeyEnv(), FileName)
	}
	return nil
}

// Write renders cfg as YAML to w with credentials masked.
func Write(w io.Writer, cfg *Config) error {
	masked := *cfg
	masked.GroqAPIKey = redact.Mask(cfg.GroqAPIKey)
	masked.AnthropicAPIKey = redact.Mask(cfg.AnthropicAPIKey)

	enc := yaml.NewEncoder(w)
	defer enc.Close() //nolint:errcheck // best-effort close
	enc.SetIndent(2)
	return enc.Encode(&masked)
}
