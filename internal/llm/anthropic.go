// Copyright 2026 The React2HTML Authors
// SPDX-License-Identifier: MIT

package llm

import (
	"context"
	"fmt"
	"os"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"
)

const (
	// DefaultAnthropicModel is the model used when no override is provided.
	DefaultAnthropicModel = "claude-sonnet-4-5-20250929"

	// AnthropicAPIKeyEnv names the environment variable holding the key.
	AnthropicAPIKeyEnv = "ANTHROPIC_API_KEY"

	// defaultMaxTokens is the default maximum output tokens per request.
	// A full HTML page with inline styles needs more room than a chat reply.
	defaultMaxTokens = 8192
)

// AnthropicProvider implements Provider using the official Anthropic SDK.
// The Messages API has no JSON response mode, so Request.JSONMode is carried
// by the system prompt alone.
type AnthropicProvider struct {
	client     anthropic.Client
	model      string
	maxRetries int
}

// Compile-time check that AnthropicProvider satisfies the Provider interface.
var _ Provider = (*AnthropicProvider)(nil)

// AnthropicOption configures an AnthropicProvider.
type AnthropicOption func(*anthropicConfig)

type anthropicConfig struct {
	apiKey     string
	model      string
	baseURL    string
	maxRetries int
}

// WithAnthropicAPIKey sets the API key. If not provided, the provider reads
// ANTHROPIC_API_KEY from the environment.
func WithAnthropicAPIKey(key string) AnthropicOption {
	return func(c *anthropicConfig) {
		c.apiKey = key
	}
}

// WithAnthropicModel overrides the default model for all requests.
func WithAnthropicModel(model string) AnthropicOption {
	return func(c *anthropicConfig) {
		if model != "" {
			c.model = model
		}
	}
}

// WithAnthropicBaseURL points the SDK at a different host.
func WithAnthropicBaseURL(url string) AnthropicOption {
	return func(c *anthropicConfig) {
		c.baseURL = url
	}
}

// WithAnthropicMaxRetries enables the SDK's automatic retries on transient
// errors. The default is zero: one attempt per conversion.
func WithAnthropicMaxRetries(n int) AnthropicOption {
	return func(c *anthropicConfig) {
		c.maxRetries = n
	}
}

// NewAnthropicProvider creates a new Anthropic provider.
// It returns ErrMissingAPIKey if no API key is available (neither via option
// nor env).
func NewAnthropicProvider(opts ...AnthropicOption) (*AnthropicProvider, error) {
	cfg := anthropicConfig{
		model: DefaultAnthropicModel,
	}
	for _, o := range opts {
		o(&cfg)
	}

	apiKey := cfg.apiKey
	if apiKey == "" {
		apiKey = os.Getenv(AnthropicAPIKeyEnv)
	}
	if apiKey == "" {
		return nil, fmt.Errorf("%w: %s", ErrMissingAPIKey, AnthropicAPIKeyEnv)
	}

	clientOpts := []option.RequestOption{
		option.WithAPIKey(apiKey),
		option.WithMaxRetries(cfg.maxRetries),
	}
	if cfg.baseURL != "" {
		clientOpts = append(clientOpts, option.WithBaseURL(cfg.baseURL))
	}

	return &AnthropicProvider{
		client:     anthropic.NewClient(clientOpts...),
		model:      cfg.model,
		maxRetries: cfg.maxRetries,
	}, nil
}

// Complete sends a completion request to the Anthropic Messages API.
func (p *AnthropicProvider) Complete(ctx context.Context, req Request) (*Response, error) {
	model := p.model
	if req.Model != "" {
		model = req.Model
	}

	maxTokens := int64(defaultMaxTokens)
	if req.MaxTokens > 0 {
		maxTokens = int64(req.MaxTokens)
	}

	params := anthropic.MessageNewParams{
		Model:     anthropic.Model(model),
		MaxTokens: maxTokens,
		Messages: []anthropic.MessageParam{
			anthropic.NewUserMessage(anthropic.NewTextBlock(req.Prompt)),
		},
	}

	if req.SystemPrompt != "" {
		params.System = []anthropic.TextBlockParam{
			{Text: req.SystemPrompt},
		}
	}

	if req.Temperature != nil {
		params.Temperature = anthropic.Float(*req.Temperature)
	}

	msg, err := p.client.Messages.New(ctx, params)
	if err != nil {
		return nil, fmt.Errorf("anthropic: completion failed: %w", err)
	}

	var content string
	for _, block := range msg.Content {
		if variant, ok := block.AsAny().(anthropic.TextBlock); ok {
			content += variant.Text
		}
	}

	return &Response{
		Content: content,
		Model:   string(msg.Model),
		Usage: Usage{
			InputTokens:  int(msg.Usage.InputTokens),
			OutputTokens: int(msg.Usage.OutputTokens),
		},
	}, nil
}

// Model returns the default model configured for this provider.
func (p *AnthropicProvider) Model() string {
	return p.model
}

// MaxRetries returns the configured max retry count.
func (p *AnthropicProvider) MaxRetries() int {
	return p.maxRetries
}
