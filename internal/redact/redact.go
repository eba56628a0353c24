// Copyright 2026 The React2HTML Authors
// SPDX-License-Identifier: MIT

// Package redact strips credential values from strings before they reach
// stderr, logs, or printed configuration.
package redact

import (
	"os"
	"strings"
	"sync"
)

// sensitiveEnvVars lists environment variables whose values must never
// appear in output.
var sensitiveEnvVars = []string{
	"GROQ_API_KEY",
	"ANTHROPIC_API_KEY",
	"OPENAI_API_KEY",
}

// minSecretLen guards against redacting short, common substrings.
const minSecretLen = 4

var (
	mu      sync.Mutex
	secrets []string
	loaded  bool
)

// Register adds value to the set of secrets masked by String. Values loaded
// from a settings file rather than the environment are registered this way.
func Register(value string) {
	if len(value) < minSecretLen {
		return
	}
	mu.Lock()
	defer mu.Unlock()
	loadLocked()
	for _, s := range secrets {
		if s == value {
			return
		}
	}
	secrets = append(secrets, value)
}

// String replaces every known secret in s with "[REDACTED]".
func String(s string) string {
	mu.Lock()
	defer mu.Unlock()
	loadLocked()
	for _, secret := range secrets {
		s = strings.ReplaceAll(s, secret, "[REDACTED]")
	}
	return s
}

// Mask renders a credential for display, keeping only its last four
// characters. Empty input yields an empty string.
func Mask(value string) string {
	switch {
	case value == "":
		return ""
	case len(value) <= 8:
		return "****"
	default:
		return "****" + value[len(value)-4:]
	}
}

// ResetForTest forgets all cached secrets so tests can change the
// environment with t.Setenv between calls.
func ResetForTest() {
	mu.Lock()
	defer mu.Unlock()
	secrets = nil
	loaded = false
}

func loadLocked() {
	if loaded {
		return
	}
	loaded = true
	for _, envVar := range sensitiveEnvVars {
		if val := os.Getenv(envVar); len(val) >= minSecretLen {
			secrets = append(secrets, val)
		}
	}
}
