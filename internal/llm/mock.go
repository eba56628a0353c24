// Copyright 2026 The React2HTML Authors
// SPDX-License-Identifier: MIT

package llm

import (
	"context"
	"sync"
)

// MockResponse defines a canned reply for the mock provider.
type MockResponse struct {
	Content string
	Model   string
	Err     error
}

// MockProvider is a test double that replays canned responses in order,
// repeating the last one once exhausted. It records every request it
// receives so tests can assert on the exact parameters sent.
type MockProvider struct {
	mu        sync.Mutex
	responses []MockResponse
	calls     []Request
	idx       int
}

// Compile-time check that MockProvider satisfies the Provider interface.
var _ Provider = (*MockProvider)(nil)

// NewMockProvider creates a mock that returns the given responses in order.
// If no responses are provided, Complete returns an empty Response.
func NewMockProvider(responses ...MockResponse) *MockProvider {
	return &MockProvider{
		responses: responses,
	}
}

// Complete returns the next canned response and records the request.
// A cancelled context is reported without recording the call.
func (m *MockProvider) Complete(ctx context.Context, req Request) (*Response, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	m.calls = append(m.calls, req)

	if len(m.responses) == 0 {
		return &Response{Model: "mock"}, nil
	}

	r := m.responses[m.idx]
	if m.idx < len(m.responses)-1 {
		m.idx++
	}
	if r.Err != nil {
		return nil, r.Err
	}

	model := r.Model
	if model == "" {
		model = "mock"
	}
	return &Response{
		Content: r.Content,
		Model:   model,
		Usage:   Usage{InputTokens: len(req.SystemPrompt) + len(req.Prompt), OutputTokens: len(r.Content)},
	}, nil
}

// Calls returns a copy of all requests received by this mock.
func (m *MockProvider) Calls() []Request {
	m.mu.Lock()
	defer m.mu.Unlock()

	out := make([]Request, len(m.calls))
	copy(out, m.calls)
	return out
}
