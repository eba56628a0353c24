// Copyright 2026 The React2HTML Authors
// SPDX-License-Identifier: MIT

package testable

import "sync"

// MockBrowserOpener is a test double for BrowserOpener. Every call is
// recorded; nothing is launched.
type MockBrowserOpener struct {
	mu sync.Mutex

	// Err, when non-nil, is returned by OpenFile after recording the call.
	Err error

	// Calls records the path passed to every OpenFile call.
	Calls []string
}

// OpenFile records path and returns Err.
func (m *MockBrowserOpener) OpenFile(path string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Calls = append(m.Calls, path)
	return m.Err
}

// Recorded returns a copy of the recorded paths.
func (m *MockBrowserOpener) Recorded() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]string, len(m.Calls))
	copy(out, m.Calls)
	return out
}

// Compile-time interface check.
var _ BrowserOpener = (*MockBrowserOpener)(nil)
