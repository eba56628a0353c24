// Copyright 2026 The React2HTML Authors
// SPDX-License-Identifier: MIT

package main

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/require"

	"github.com/davetashner/react2html/internal/config"
	"github.com/davetashner/react2html/internal/llm"
	"github.com/davetashner/react2html/internal/redact"
	"github.com/davetashner/react2html/internal/testable"
)

const testAPIKey = "gsk_cmdtestkey0123456789" //nolint:gosec // fake test credential

// harness isolates one CLI invocation: a fresh working directory, a clean
// environment, and injected provider and browser doubles.
type harness struct {
	dir       string
	out       *bytes.Buffer
	opener    *testable.MockBrowserOpener
	mock      *llm.MockProvider
	providers int
}

func newHarness(t *testing.T, responses ...llm.MockResponse) *harness {
	t.Helper()

	dir := t.TempDir()
	dir, err := filepath.EvalSymlinks(dir)
	require.NoError(t, err)
	testChdir(t, dir)

	for _, k := range []string{
		"GROQ_API_KEY", "ANTHROPIC_API_KEY",
		"REACT2HTML_PROVIDER", "REACT2HTML_MODEL", "REACT2HTML_BASE_URL",
		"REACT2HTML_INPUT", "REACT2HTML_OUTPUT", "REACT2HTML_OPEN",
	} {
		t.Setenv(k, "")
		require.NoError(t, os.Unsetenv(k))
	}
	t.Setenv("GROQ_API_KEY", testAPIKey)
	redact.ResetForTest()

	h := &harness{
		dir:    dir,
		out:    new(bytes.Buffer),
		opener: &testable.MockBrowserOpener{},
		mock:   llm.NewMockProvider(responses...),
	}

	origProvider, origOpener, origFS := newProvider, cmdOpener, cmdFS
	newProvider = func(*config.Config) (llm.Provider, error) {
		h.providers++
		return h.mock, nil
	}
	cmdOpener = h.opener
	t.Cleanup(func() {
		newProvider, cmdOpener, cmdFS = origProvider, origOpener, origFS
		resetFlags()
		redact.ResetForTest()
	})

	resetFlags()
	return h
}

// run executes the root command with args.
func (h *harness) run(args ...string) error {
	rootCmd.SetOut(h.out)
	rootCmd.SetErr(h.out)
	rootCmd.SetArgs(args)
	return rootCmd.Execute()
}

func (h *harness) path(name string) string {
	return filepath.Join(h.dir, name)
}

func (h *harness) write(t *testing.T, name, content string) string {
	t.Helper()
	p := h.path(name)
	require.NoError(t, os.WriteFile(p, []byte(content), 0o600))
	return p
}

// resetFlags restores every flag to its default so invocations don't leak
// into each other through the shared command tree.
func resetFlags() {
	reset := func(fs *pflag.FlagSet) {
		fs.VisitAll(func(f *pflag.Flag) {
			_ = f.Value.Set(f.DefValue)
			f.Changed = false
		})
	}
	reset(rootCmd.PersistentFlags())
	reset(rootCmd.Flags())
	for _, c := range rootCmd.Commands() {
		reset(c.Flags())
	}
}

// exitCode returns the exit code carried by err, or -1.
func exitCode(err error) int {
	var ece *exitCodeError
	if errors.As(err, &ece) {
		return ece.code
	}
	return -1
}
