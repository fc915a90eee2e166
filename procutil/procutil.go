package procutil

import (
	"context"
	"fmt"
	"os/exec"

	"github.com/shirou/gopsutil/v4/process"
)

// StartDetached starts argv[0] with the remaining elements as arguments and
// releases the child so the parent never waits on it. The child's output is
// discarded and its exit code is never observed. Returns the child PID.
func StartDetached(argv []string) (int, error) {
	if len(argv) == 0 {
		return 0, fmt.Errorf("empty command")
	}

	cmd := exec.Command(argv[0], argv[1:]...)
	setDetachAttrs(cmd)

	if err := cmd.Start(); err != nil {
		return 0, fmt.Errorf("failed to start %s: %w", argv[0], err)
	}

	pid := cmd.Process.Pid
	// Release drops the handle; without it the child would stay a zombie
	// on Unix until the parent exits.
	_ = cmd.Process.Release()

	return pid, nil
}

// StillRunning reports whether the process with the given PID exists.
// Indeterminate results (probe errors) are treated as running, so callers
// only act on a confident "already gone".
func StillRunning(ctx context.Context, pid int) bool {
	if pid <= 0 {
		return false
	}

	running, err := process.PidExistsWithContext(ctx, int32(pid))
	if err != nil {
		return true
	}
	return running
}
