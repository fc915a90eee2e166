package pathutil

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"
)

func TestFindToolInPathFound(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("fixture uses a unix shell script")
	}

	dir := t.TempDir()
	tool := filepath.Join(dir, "fake-browser")
	if err := os.WriteFile(tool, []byte("#!/bin/sh\n"), 0o755); err != nil {
		t.Fatal(err)
	}
	t.Setenv("PATH", dir)

	got := FindToolInPath("fake-browser")
	if got != tool {
		t.Errorf("FindToolInPath(%q) = %q, want %q", "fake-browser", got, tool)
	}
}

func TestFindToolInPathMissing(t *testing.T) {
	t.Setenv("PATH", t.TempDir())

	if got := FindToolInPath("definitely-not-installed"); got != "" {
		t.Errorf("FindToolInPath for missing tool = %q, want empty", got)
	}
}

func TestFindToolInPathNonExecutable(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("permission bits are unix-specific")
	}

	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "not-a-tool"), []byte("data"), 0o644); err != nil {
		t.Fatal(err)
	}
	t.Setenv("PATH", dir)

	if got := FindToolInPath("not-a-tool"); got != "" {
		t.Errorf("FindToolInPath for non-executable = %q, want empty", got)
	}
}
