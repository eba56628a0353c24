// Copyright 2026 The React2HTML Authors
// SPDX-License-Identifier: MIT

// Package llm provides a provider-agnostic completion interface and the
// hosted-model implementations react2html can convert markup with.
package llm

import (
	"context"
	"errors"
)

// Provider abstracts a hosted completion API behind a single synchronous,
// non-streaming completion method.
type Provider interface {
	// Complete sends one request and returns the model's reply.
	// Implementations make exactly one attempt and must respect context
	// cancellation and deadlines.
	Complete(ctx context.Context, req Request) (*Response, error)
}

// Sentinel errors shared by providers.
var (
	// ErrMissingAPIKey is returned at construction when no credential is
	// available for the provider.
	ErrMissingAPIKey = errors.New("llm: API key not set")

	// ErrEmptyResponse is returned when the service answered successfully
	// but carried no completion choice.
	ErrEmptyResponse = errors.New("llm: response contained no choices")
)

// Request describes a single completion request.
type Request struct {
	// Prompt is the user message to send.
	Prompt string

	// SystemPrompt sets the system instruction for the completion.
	SystemPrompt string

	// Model overrides the provider's default model. If empty, the provider
	// uses its configured default.
	Model string

	// MaxTokens limits the response length. If zero, the provider uses its
	// own default.
	MaxTokens int

	// Temperature controls randomness. If nil, the provider uses its default.
	Temperature *float64

	// JSONMode asks the service to constrain its output to a JSON object.
	JSONMode bool
}

// Response holds the result of a completion call.
type Response struct {
	// Content is the text returned by the model.
	Content string

	// Model is the model that actually served the request (may differ from
	// the requested model if the provider remapped it).
	Model string

	// Usage reports token consumption.
	Usage Usage
}

// Usage tracks input and output token counts for a single request.
type Usage struct {
	InputTokens  int
	OutputTokens int
}

// Float returns a pointer to v, for filling Request.Temperature.
func Float(v float64) *float64 { return &v }
