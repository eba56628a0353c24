// Copyright 2026 The React2HTML Authors
// SPDX-License-Identifier: MIT

// Package testable provides seams over OS-level operations (browser
// launching, file creation) so callers can inject doubles in tests.
package testable

import (
	"io"

	"github.com/pkg/browser"
)

// BrowserOpener abstracts browser.OpenFile so the viewer can be tested
// without opening a real browser.
type BrowserOpener interface {
	// OpenFile opens path with the host's default application.
	OpenFile(path string) error
}

// RealBrowserOpener is the production implementation that delegates to
// github.com/pkg/browser.
type RealBrowserOpener struct{}

// OpenFile wraps browser.OpenFile. Handler output is discarded so it cannot
// interleave with the CLI's own stdout.
func (RealBrowserOpener) OpenFile(path string) error {
	browser.Stdout = io.Discard
	browser.Stderr = io.Discard
	return browser.OpenFile(path)
}

// DefaultOpener returns the production BrowserOpener.
func DefaultOpener() BrowserOpener {
	return RealBrowserOpener{}
}
