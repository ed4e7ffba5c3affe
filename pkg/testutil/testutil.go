// Package testutil provides test helpers shared across packages.
package testutil

import (
	"os"
	"path/filepath"
	"testing"
)

// CreateFile creates a file with the given content under dir, making
// parent directories as needed. It fails the test on error.
func CreateFile(t *testing.T, dir, name, content string) string {
	t.Helper()

	path := filepath.Join(dir, name)

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		t.Fatalf("Failed to create parent directories for %s: %v", path, err)
	}

	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("Failed to create file %s: %v", path, err)
	}

	return path
}

// StubTool installs an executable shell script named name into a fresh
// directory prepended to PATH, so code under test invokes the stub
// instead of a real external binary. Returns the stub's path.
func StubTool(t *testing.T, name, script string) string {
	t.Helper()

	dir := t.TempDir()
	path := filepath.Join(dir, name)

	content := "#!/bin/sh\n" + script + "\n"
	if err := os.WriteFile(path, []byte(content), 0755); err != nil {
		t.Fatalf("Failed to create stub tool %s: %v", path, err)
	}

	t.Setenv("PATH", dir+string(os.PathListSeparator)+os.Getenv("PATH"))
	return path
}

// HideTool points PATH at an empty directory so lookups for external
// binaries fail, simulating a machine without the tool installed.
func HideTool(t *testing.T) {
	t.Helper()
	t.Setenv("PATH", t.TempDir())
}
