//go:build !windows
// +build !windows

package procutil

import (
	"os/exec"
	"syscall"
)

// setDetachAttrs puts the child in its own session so it survives the
// parent exiting and never receives the parent's terminal signals.
func setDetachAttrs(cmd *exec.Cmd) {
	cmd.SysProcAttr = &syscall.SysProcAttr{
		Setsid: true,
	}
}
