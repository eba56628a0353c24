// Copyright 2026 The React2HTML Authors
// SPDX-License-Identifier: MIT

package main

import "fmt"

// Exit codes for the react2html CLI, one per failure class.
const (
	ExitOK         = 0 // Document written (viewer launch failures do not count).
	ExitConfig     = 1 // Bad flags, settings, input file, or missing credential.
	ExitTransport  = 2 // The completion service could not be reached or refused.
	ExitValidation = 3 // The service replied with an unexpected shape.
	ExitFilesystem = 4 // The output file could not be written.
)

type exitCodeError struct {
	code int
	msg  string
	err  error
}

func (e *exitCodeError) Error() string { return e.msg }

// Unwrap exposes the underlying cause, if any.
func (e *exitCodeError) Unwrap() error { return e.err }

// ExitCode returns the exit code for this error.
func (e *exitCodeError) ExitCode() int { return e.code }

// exitError wraps err with an exit code and a "react2html: <what>: <err>"
// message.
func exitError(code int, what string, err error) *exitCodeError {
	return &exitCodeError{
		code: code,
		msg:  fmt.Sprintf("react2html: %s: %v", what, err),
		err:  err,
	}
}
