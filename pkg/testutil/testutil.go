// Package testutil provides test environments for remod packages.
//
// Environments are backed by an in-memory afero filesystem, so tests never
// touch the real disk and need no cleanup.
package testutil

import (
	"io/fs"
	"path/filepath"
	"testing"

	"github.com/spf13/afero"

	"github.com/arthur-debert/remod/pkg/filesystem"
	"github.com/arthur-debert/remod/pkg/types"
)

// TestEnvironment provides an isolated filesystem rooted at Root.
type TestEnvironment struct {
	// FS is the filesystem handed to the code under test
	FS types.FS

	// Root is the scan root, pre-created
	Root string

	t *testing.T
}

// NewMemoryEnvironment creates an in-memory environment with an empty scan
// root at /src.
func NewMemoryEnvironment(t *testing.T) *TestEnvironment {
	t.Helper()

	env := &TestEnvironment{
		FS:   filesystem.NewAferoFS(afero.NewMemMapFs()),
		Root: "/src",
		t:    t,
	}
	if err := env.FS.MkdirAll(env.Root, 0755); err != nil {
		t.Fatalf("failed to create scan root: %v", err)
	}
	return env
}

// WriteSource writes a file relative to the scan root, creating parent
// directories, and returns its full path.
func (e *TestEnvironment) WriteSource(relPath, content string) string {
	e.t.Helper()

	path := filepath.Join(e.Root, relPath)
	if err := e.FS.MkdirAll(filepath.Dir(path), 0755); err != nil {
		e.t.Fatalf("failed to create directories for %s: %v", path, err)
	}
	if err := e.FS.WriteFile(path, []byte(content), 0644); err != nil {
		e.t.Fatalf("failed to write %s: %v", path, err)
	}
	return path
}

// ReadFile returns the contents of path, failing the test if it cannot be
// read.
func (e *TestEnvironment) ReadFile(path string) string {
	e.t.Helper()

	data, err := e.FS.ReadFile(path)
	if err != nil {
		e.t.Fatalf("failed to read %s: %v", path, err)
	}
	return string(data)
}

// Exists reports whether path exists.
func (e *TestEnvironment) Exists(path string) bool {
	_, err := e.FS.Stat(path)
	return err == nil
}

// Stat returns file info for path, failing the test on error.
func (e *TestEnvironment) Stat(path string) fs.FileInfo {
	e.t.Helper()

	info, err := e.FS.Stat(path)
	if err != nil {
		e.t.Fatalf("failed to stat %s: %v", path, err)
	}
	return info
}
