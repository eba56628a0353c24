// Copyright 2026 The React2HTML Authors
// SPDX-License-Identifier: MIT

package sink

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/davetashner/react2html/internal/testable"
)

func TestWriteFile_ExactContent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "index.html")

	require.NoError(t, WriteFile(testable.DefaultFS, path, "<html>hi</html>"))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "<html>hi</html>", string(data))
}

func TestWriteFile_UTF8Verbatim(t *testing.T) {
	path := filepath.Join(t.TempDir(), "index.html")
	content := "<p>café – 日本語 🚀</p>\r\n"

	require.NoError(t, WriteFile(testable.DefaultFS, path, content))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, []byte(content), data)
}

func TestWriteFile_TruncatesExisting(t *testing.T) {
	path := filepath.Join(t.TempDir(), "index.html")
	require.NoError(t, os.WriteFile(path, []byte("<html>a much longer previous document</html>"), 0o600))

	require.NoError(t, WriteFile(testable.DefaultFS, path, "<p/>"))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "<p/>", string(data))
}

func TestWriteFile_EmptyContent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "index.html")

	require.NoError(t, WriteFile(testable.DefaultFS, path, ""))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Zero(t, info.Size())
}

func TestWriteFile_CreateFailure(t *testing.T) {
	denied := errors.New("permission denied")
	fsys := &testable.MockFileSystem{
		CreateFn: func(string) (*os.File, error) { return nil, denied },
	}

	err := WriteFile(fsys, "index.html", "<p/>")
	require.Error(t, err)
	assert.ErrorIs(t, err, denied)
	assert.Contains(t, err.Error(), "sink: create index.html")
}

func TestWriteFile_MissingDirectory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing", "index.html")

	err := WriteFile(testable.DefaultFS, path, "<p/>")
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestWriteFile_WriteFailure(t *testing.T) {
	// A file opened read-only rejects writes.
	path := filepath.Join(t.TempDir(), "index.html")
	require.NoError(t, os.WriteFile(path, nil, 0o600))

	fsys := &testable.MockFileSystem{
		CreateFn: func(name string) (*os.File, error) { return os.Open(name) },
	}

	err := WriteFile(fsys, path, "<p/>")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "sink: write")
}
