package testutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/arthur-debert/xpile/pkg/filesystem"
	"github.com/spf13/afero"
)

// EnvType defines the type of test environment
type EnvType int

const (
	EnvMemoryOnly EnvType = iota // Pure in-memory, no real filesystem
	EnvIsolated                  // Real filesystem in temp directory
)

// TestEnvironment provides a file system for config fixtures plus an
// isolated log directory.
type TestEnvironment struct {
	// Root is the directory fixture files are written under.
	Root string
	// FS reads the fixtures back.
	FS   filesystem.FS
	Type EnvType

	t   *testing.T
	mem afero.Fs
}

// NewTestEnvironment creates a new test environment. Logs go to a temporary
// state directory and colors are disabled for the duration of the test.
func NewTestEnvironment(t *testing.T, envType EnvType) *TestEnvironment {
	t.Helper()

	t.Setenv("XDG_STATE_HOME", t.TempDir())
	t.Setenv("NO_COLOR", "1")

	env := &TestEnvironment{t: t, Type: envType}
	switch envType {
	case EnvMemoryOnly:
		env.FS, env.mem = filesystem.NewMemory()
		env.Root = "/"
	case EnvIsolated:
		env.FS = filesystem.NewOS()
		env.Root = t.TempDir()
	default:
		t.Fatalf("unknown environment type %d", envType)
	}
	return env
}

// Path returns the absolute path of name inside the environment.
func (e *TestEnvironment) Path(name string) string {
	return filepath.Join(e.Root, name)
}

// WriteFile stores content at name and returns its absolute path.
func (e *TestEnvironment) WriteFile(name, content string) string {
	e.t.Helper()

	path := e.Path(name)
	var err error
	switch e.Type {
	case EnvMemoryOnly:
		err = afero.WriteFile(e.mem, path, []byte(content), 0644)
	case EnvIsolated:
		if err = os.MkdirAll(filepath.Dir(path), 0755); err == nil {
			err = os.WriteFile(path, []byte(content), 0644)
		}
	}
	if err != nil {
		e.t.Fatalf("failed to write fixture %s: %v", path, err)
	}
	return path
}

// WriteFiles stores every name/content pair.
func (e *TestEnvironment) WriteFiles(files map[string]string) {
	e.t.Helper()
	for name, content := range files {
		e.WriteFile(name, content)
	}
}

// Mkdir creates a directory at name and returns its absolute path.
func (e *TestEnvironment) Mkdir(name string) string {
	e.t.Helper()

	path := e.Path(name)
	var err error
	switch e.Type {
	case EnvMemoryOnly:
		err = e.mem.MkdirAll(path, 0755)
	case EnvIsolated:
		err = os.MkdirAll(path, 0755)
	}
	if err != nil {
		e.t.Fatalf("failed to create directory %s: %v", path, err)
	}
	return path
}
