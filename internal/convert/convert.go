// Copyright 2026 The React2HTML Authors
// SPDX-License-Identifier: MIT

// Package convert turns React component source into a static HTML document
// by asking a hosted model for a schema-constrained JSON reply.
package convert

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/davetashner/react2html/internal/llm"
)

// Converter drives a single conversion through an llm.Provider. The sampling
// parameters are fixed: temperature zero, JSON object output, no streaming.
type Converter struct {
	provider llm.Provider
	model    string
}

// New returns a Converter using provider. An empty model leaves the choice to
// the provider's default.
func New(provider llm.Provider, model string) *Converter {
	return &Converter{provider: provider, model: model}
}

// Request builds the provider request for input. It is deterministic: the
// same input always yields the same request.
func (c *Converter) Request(input string) llm.Request {
	p := BuildPrompt(input)
	// The Groq provider sends a zero temperature as the smallest positive
	// float32 (about 1e-45) because go-openai omits a literal 0. MaxTokens
	// stays zero so each provider applies its own output limit.
	return llm.Request{
		SystemPrompt: p.System,
		Prompt:       p.User,
		Model:        c.model,
		Temperature:  llm.Float(0),
		JSONMode:     true,
	}
}

// Convert sends input to the provider once and validates the reply.
// Provider failures are returned wrapped; a malformed reply yields a
// *ValidationError.
func (c *Converter) Convert(ctx context.Context, input string) (*Result, error) {
	req := c.Request(input)

	slog.Debug("requesting conversion", "model", req.Model, "input_bytes", len(input))
	resp, err := c.provider.Complete(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("convert: %w", err)
	}
	slog.Debug("completion received",
		"model", resp.Model,
		"input_tokens", resp.Usage.InputTokens,
		"output_tokens", resp.Usage.OutputTokens,
	)

	return Validate(resp.Content)
}
