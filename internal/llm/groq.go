// Copyright 2026 The React2HTML Authors
// SPDX-License-Identifier: MIT

package llm

import (
	"context"
	"fmt"
	"math"
	"net/http"
	"os"

	openai "github.com/sashabaranov/go-openai"
)

const (
	// DefaultGroqModel is the model used when no override is provided.
	DefaultGroqModel = "llama-3.3-70b-versatile"

	// DefaultGroqBaseURL is Groq's OpenAI-compatible endpoint.
	DefaultGroqBaseURL = "https://api.groq.com/openai/v1"

	// GroqAPIKeyEnv names the environment variable holding the Groq key.
	GroqAPIKeyEnv = "GROQ_API_KEY"
)

// GroqProvider implements Provider against Groq's OpenAI-compatible chat
// completions API using the go-openai client. It never retries.
type GroqProvider struct {
	client  *openai.Client
	model   string
	baseURL string
}

// Compile-time check that GroqProvider satisfies the Provider interface.
var _ Provider = (*GroqProvider)(nil)

// GroqOption configures a GroqProvider.
type GroqOption func(*groqConfig)

type groqConfig struct {
	apiKey     string
	model      string
	baseURL    string
	httpClient *http.Client
}

// WithGroqAPIKey sets the API key. If not provided, the provider reads
// GROQ_API_KEY from the environment.
func WithGroqAPIKey(key string) GroqOption {
	return func(c *groqConfig) {
		c.apiKey = key
	}
}

// WithGroqModel overrides the default model for all requests.
func WithGroqModel(model string) GroqOption {
	return func(c *groqConfig) {
		if model != "" {
			c.model = model
		}
	}
}

// WithGroqBaseURL points the client at a different OpenAI-compatible host.
func WithGroqBaseURL(url string) GroqOption {
	return func(c *groqConfig) {
		if url != "" {
			c.baseURL = url
		}
	}
}

// WithGroqHTTPClient replaces the HTTP client used for requests.
func WithGroqHTTPClient(hc *http.Client) GroqOption {
	return func(c *groqConfig) {
		c.httpClient = hc
	}
}

// NewGroqProvider creates a new Groq provider.
// It returns ErrMissingAPIKey if no API key is available (neither via option
// nor env).
func NewGroqProvider(opts ...GroqOption) (*GroqProvider, error) {
	cfg := groqConfig{
		model:   DefaultGroqModel,
		baseURL: DefaultGroqBaseURL,
	}
	for _, o := range opts {
		o(&cfg)
	}

	apiKey := cfg.apiKey
	if apiKey == "" {
		apiKey = os.Getenv(GroqAPIKeyEnv)
	}
	if apiKey == "" {
		return nil, fmt.Errorf("%w: %s", ErrMissingAPIKey, GroqAPIKeyEnv)
	}

	clientCfg := openai.DefaultConfig(apiKey)
	clientCfg.BaseURL = cfg.baseURL
	if cfg.httpClient != nil {
		clientCfg.HTTPClient = cfg.httpClient
	}

	return &GroqProvider{
		client:  openai.NewClientWithConfig(clientCfg),
		model:   cfg.model,
		baseURL: cfg.baseURL,
	}, nil
}

// Complete sends a chat completion request and returns the first choice.
func (p *GroqProvider) Complete(ctx context.Context, req Request) (*Response, error) {
	model := p.model
	if req.Model != "" {
		model = req.Model
	}

	var messages []openai.ChatCompletionMessage
	if req.SystemPrompt != "" {
		messages = append(messages, openai.ChatCompletionMessage{
			Role:    openai.ChatMessageRoleSystem,
			Content: req.SystemPrompt,
		})
	}
	messages = append(messages, openai.ChatCompletionMessage{
		Role:    openai.ChatMessageRoleUser,
		Content: req.Prompt,
	})

	params := openai.ChatCompletionRequest{
		Model:     model,
		Messages:  messages,
		MaxTokens: req.MaxTokens,
		Stream:    false,
	}

	if req.Temperature != nil {
		params.Temperature = encodeTemperature(*req.Temperature)
	}

	if req.JSONMode {
		params.ResponseFormat = &openai.ChatCompletionResponseFormat{
			Type: openai.ChatCompletionResponseFormatTypeJSONObject,
		}
	}

	resp, err := p.client.CreateChatCompletion(ctx, params)
	if err != nil {
		return nil, fmt.Errorf("groq: completion failed: %w", err)
	}
	if len(resp.Choices) == 0 {
		return nil, fmt.Errorf("groq: %w", ErrEmptyResponse)
	}

	return &Response{
		Content: resp.Choices[0].Message.Content,
		Model:   resp.Model,
		Usage: Usage{
			InputTokens:  resp.Usage.PromptTokens,
			OutputTokens: resp.Usage.CompletionTokens,
		},
	}, nil
}

// encodeTemperature maps t onto the client's float32 field. go-openai drops
// a zero temperature from the JSON body, so zero is sent as the smallest
// non-zero float32 instead.
func encodeTemperature(t float64) float32 {
	if t <= 0 {
		return math.SmallestNonzeroFloat32
	}
	return float32(t)
}

// Model returns the default model configured for this provider.
func (p *GroqProvider) Model() string {
	return p.model
}

// BaseURL returns the endpoint requests are sent to.
func (p *GroqProvider) BaseURL() string {
	return p.baseURL
}
