// Copyright 2026 The React2HTML Authors
// SPDX-License-Identifier: MIT

package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/davetashner/react2html/internal/redact"
)

// Default setting values.
const (
	DefaultProvider = ProviderGroq
	DefaultOutput   = "index.html"
)

// flagKeys maps command-line flag names to settings keys.
var flagKeys = map[string]string{
	"provider": "provider",
	"model":    "model",
	"base-url": "base_url",
	"input":    "input",
	"output":   "output",
}

// Options controls where Load looks for settings.
type Options struct {
	// Dir is searched for .env and .react2html.yaml. Empty means ".".
	Dir string

	// File, when set, is read instead of searching Dir. A missing File is
	// an error.
	File string

	// Flags, when set, provides the highest-precedence overrides. Only
	// flags the user changed take effect.
	Flags *pflag.FlagSet
}

// Load resolves settings. Precedence, lowest first: defaults, settings file,
// environment (.env values fill only unset variables), flags.
func Load(opts Options) (*Config, error) {
	dir := opts.Dir
	if dir == "" {
		dir = "."
	}

	envPath := filepath.Join(dir, ".env")
	if err := godotenv.Load(envPath); err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("config: load %s: %w", envPath, err)
		}
	} else {
		slog.Debug("loaded environment file", "path", envPath)
	}

	v := viper.New()
	v.SetDefault("provider", DefaultProvider)
	v.SetDefault("output", DefaultOutput)
	v.SetDefault("open", true)
	// AutomaticEnv only reaches Unmarshal for keys viper already knows.
	for _, key := range []string{"model", "base_url", "input"} {
		v.SetDefault(key, "")
	}

	v.SetEnvPrefix(EnvPrefix)
	v.AutomaticEnv()
	for key, env := range map[string]string{
		"groq_api_key":      "GROQ_API_KEY",
		"anthropic_api_key": "ANTHROPIC_API_KEY",
	} {
		if err := v.BindEnv(key, env); err != nil {
			return nil, fmt.Errorf("config: bind %s: %w", env, err)
		}
	}

	if opts.File != "" {
		v.SetConfigFile(opts.File)
	} else {
		v.SetConfigName(strings.TrimSuffix(FileName, ".yaml"))
		v.SetConfigType("yaml")
		v.AddConfigPath(dir)
	}
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if opts.File != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("config: read settings: %w", err)
		}
	} else {
		slog.Debug("loaded settings file", "path", v.ConfigFileUsed())
	}

	if opts.Flags != nil {
		for name, key := range flagKeys {
			if f := opts.Flags.Lookup(name); f != nil && f.Changed {
				if err := v.BindPFlag(key, f); err != nil {
					return nil, fmt.Errorf("config: bind flag %s: %w", name, err)
				}
			}
		}
		if f := opts.Flags.Lookup("no-open"); f != nil && f.Changed && f.Value.String() == "true" {
			v.Set("open", false)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("config: decode settings: %w", err)
	}
	cfg.Source = v.ConfigFileUsed()

	switch cfg.Provider {
	case ProviderGroq, ProviderAnthropic:
	default:
		return nil, fmt.Errorf("%w: %q (want %s or %s)", ErrUnknownProvider, cfg.Provider, ProviderGroq, ProviderAnthropic)
	}

	redact.Register(cfg.GroqAPIKey)
	redact.Register(cfg.AnthropicAPIKey)
	return &cfg, nil
}
