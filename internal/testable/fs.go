// Copyright 2026 The React2HTML Authors
// SPDX-License-Identifier: MIT

package testable

import (
	"os"
	"path/filepath"
)

// FileSystem abstracts the file operations react2html performs so tests can
// inject failures. The production implementation (OsFileSystem) delegates to
// the standard library.
type FileSystem interface {
	// Abs returns an absolute representation of path.
	Abs(path string) (string, error)

	// Create creates or truncates the named file.
	Create(name string) (*os.File, error)

	// ReadFile reads the named file and returns the contents.
	ReadFile(name string) ([]byte, error)
}

// OsFileSystem is the production implementation of FileSystem.
type OsFileSystem struct{}

// Abs wraps filepath.Abs.
func (OsFileSystem) Abs(path string) (string, error) {
	return filepath.Abs(path)
}

// Create wraps os.Create.
func (OsFileSystem) Create(name string) (*os.File, error) {
	return os.Create(name) //nolint:gosec // caller controls path
}

// ReadFile wraps os.ReadFile.
func (OsFileSystem) ReadFile(name string) ([]byte, error) {
	return os.ReadFile(name) //nolint:gosec // caller controls path
}

// DefaultFS is the production FileSystem.
var DefaultFS FileSystem = OsFileSystem{}
