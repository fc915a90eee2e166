package fileutil

import (
	"os"
	"path/filepath"
)

// PathExists reports whether path exists, as a file, directory, or macOS
// .app bundle. Any stat error (missing, permission denied, broken link) is
// treated as absence.
func PathExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

// FileExists checks if a specific file exists in the given directory.
func FileExists(dir string, filename string) bool {
	return PathExists(filepath.Join(dir, filename))
}
