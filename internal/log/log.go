// Copyright 2026 The React2HTML Authors
// SPDX-License-Identifier: MIT

// Package log configures structured logging for react2html using log/slog.
package log

import (
	"io"
	"log/slog"
	"os"

	"github.com/google/uuid"
)

// Setup configures the default slog logger based on verbosity flags and
// returns the run identifier attached to every record.
//
//   - quiet mode:   only WARN and ERROR messages
//   - normal mode:  INFO and above
//   - verbose mode: DEBUG and above
//
// Output is written to stderr using slog.TextHandler.
func Setup(verbose, quiet bool) string {
	return SetupWriter(os.Stderr, verbose, quiet)
}

// SetupWriter is Setup with an explicit destination.
func SetupWriter(w io.Writer, verbose, quiet bool) string {
	var level slog.Level
	switch {
	case quiet:
		level = slog.LevelWarn
	case verbose:
		level = slog.LevelDebug
	default:
		level = slog.LevelInfo
	}

	runID := uuid.NewString()
	handler := slog.NewTextHandler(w, &slog.HandlerOptions{
		Level: level,
	})
	slog.SetDefault(slog.New(handler).With("run", runID))
	return runID
}
