// Copyright 2026 The React2HTML Authors
// SPDX-License-Identifier: MIT

package sink

import (
	"fmt"
	"log/slog"

	"github.com/davetashner/react2html/internal/testable"
)

// Viewer opens files with the host's default handler.
type Viewer struct {
	opener testable.BrowserOpener
	fs     testable.FileSystem
}

// NewViewer returns a Viewer that launches through opener.
func NewViewer(opener testable.BrowserOpener, fsys testable.FileSystem) *Viewer {
	return &Viewer{opener: opener, fs: fsys}
}

// Open asks the default handler to display path. Only a failure to launch the
// handler is reported; what the handler does afterwards is not observed.
func (v *Viewer) Open(path string) error {
	abs, err := v.fs.Abs(path)
	if err != nil {
		return fmt.Errorf("sink: resolve %s: %w", path, err)
	}

	if err := v.opener.OpenFile(abs); err != nil {
		return fmt.Errorf("sink: open %s: %w", abs, err)
	}
	slog.Debug("viewer started", "path", abs)
	return nil
}
