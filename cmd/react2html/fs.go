// Copyright 2026 The React2HTML Authors
// SPDX-License-Identifier: MIT

package main

import (
	"fmt"

	"github.com/davetashner/react2html/internal/config"
	"github.com/davetashner/react2html/internal/llm"
	"github.com/davetashner/react2html/internal/testable"
)

// cmdFS is the file system implementation used by CLI commands.
// Override in tests with a testable.MockFileSystem.
var cmdFS testable.FileSystem = testable.DefaultFS

// cmdOpener launches the viewer. Override in tests with a
// testable.MockBrowserOpener.
var cmdOpener testable.BrowserOpener = testable.DefaultOpener()

// newProvider builds the completion provider selected by cfg. Override in
// tests to return an llm.MockProvider.
var newProvider = defaultProvider

func defaultProvider(cfg *config.Config) (llm.Provider, error) {
	switch cfg.Provider {
	case config.ProviderAnthropic:
		return llm.NewAnthropicProvider(
			llm.WithAnthropicAPIKey(cfg.AnthropicAPIKey),
			llm.WithAnthropicModel(cfg.Model),
			llm.WithAnthropicBaseURL(cfg.BaseURL),
		)
	case config.ProviderGroq:
		return llm.NewGroqProvider(
			llm.WithGroqAPIKey(cfg.GroqAPIKey),
			llm.WithGroqModel(cfg.Model),
			llm.WithGroqBaseURL(cfg.BaseURL),
		)
	default:
		return nil, fmt.Errorf("%w: %q", config.ErrUnknownProvider, cfg.Provider)
	}
}
