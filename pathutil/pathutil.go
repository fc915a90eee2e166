package pathutil

import (
	"os/exec"
	"runtime"
	"strings"
)

// FindToolInPath searches for an executable in the system PATH.
// Returns the full path to the executable if found, empty string otherwise.
func FindToolInPath(toolName string) string {
	// Add .exe extension on Windows if not present
	searchName := toolName
	if runtime.GOOS == "windows" && !strings.HasSuffix(strings.ToLower(toolName), ".exe") {
		searchName = toolName + ".exe"
	}

	path, err := exec.LookPath(searchName)
	if err != nil {
		return ""
	}

	return path
}
