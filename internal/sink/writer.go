// Copyright 2026 The React2HTML Authors
// SPDX-License-Identifier: MIT

// Package sink delivers a conversion result: it writes the HTML document to
// disk and asks the host to open it.
package sink

import (
	"fmt"
	"io"

	"github.com/davetashner/react2html/internal/testable"
)

// WriteFile creates or truncates path and writes content verbatim. Go strings
// are byte sequences, so UTF-8 input is written as UTF-8 with nothing
// appended. The file is closed before WriteFile returns and a failed close is
// reported.
func WriteFile(fsys testable.FileSystem, path, content string) (err error) {
	f, err := fsys.Create(path)
	if err != nil {
		return fmt.Errorf("sink: create %s: %w", path, err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("sink: close %s: %w", path, cerr)
		}
	}()

	if _, err := io.WriteString(f, content); err != nil {
		return fmt.Errorf("sink: write %s: %w", path, err)
	}
	return nil
}
