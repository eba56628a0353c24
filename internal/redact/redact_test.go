// Copyright 2026 The React2HTML Authors
// SPDX-License-Identifier: MIT

package redact

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestString_RedactsKnownEnvVars(t *testing.T) {
	const secret = "gsk_TESTSECRETVALUE1234567890" //nolint:gosec // fake test credential
	t.Setenv("GROQ_API_KEY", secret)
	ResetForTest()
	t.Cleanup(ResetForTest)

	got := String("error, status code: 401, message: Invalid API Key gsk_TESTSECRETVALUE1234567890")
	assert.Equal(t, "error, status code: 401, message: Invalid API Key [REDACTED]", got)
}

func TestString_NoSecretSetIsNoop(t *testing.T) {
	t.Setenv("GROQ_API_KEY", "")
	t.Setenv("ANTHROPIC_API_KEY", "")
	t.Setenv("OPENAI_API_KEY", "")
	ResetForTest()
	t.Cleanup(ResetForTest)

	assert.Equal(t, "some normal error message", String("some normal error message"))
}

func TestString_ShortValuesIgnored(t *testing.T) {
	t.Setenv("GROQ_API_KEY", "abc")
	ResetForTest()
	t.Cleanup(ResetForTest)

	assert.Equal(t, "abc is in the string abc", String("abc is in the string abc"))
}

func TestString_MultipleSecrets(t *testing.T) {
	t.Setenv("GROQ_API_KEY", "test-token-aaaa")
	t.Setenv("ANTHROPIC_API_KEY", "test-token-bbbb")
	ResetForTest()
	t.Cleanup(ResetForTest)

	got := String("keys test-token-aaaa and test-token-bbbb")
	assert.Equal(t, "keys [REDACTED] and [REDACTED]", got)
}

func TestRegister(t *testing.T) {
	t.Setenv("GROQ_API_KEY", "")
	ResetForTest()
	t.Cleanup(ResetForTest)

	Register("from-settings-file-key")
	Register("from-settings-file-key")
	Register("xy")

	assert.Equal(t, "key=[REDACTED] xy", String("key=from-settings-file-key xy"))
}

func TestMask(t *testing.T) {
	assert.Equal(t, "", Mask(""))
	assert.Equal(t, "****", Mask("short"))
	assert.Equal(t, "****wxyz", Mask("gsk_abcdefwxyz"))
}
