//go:build windows
// +build windows

package procutil

import (
	"os/exec"
	"syscall"
)

// setDetachAttrs starts the child in a new process group so console events
// aimed at the parent never reach it.
func setDetachAttrs(cmd *exec.Cmd) {
	cmd.SysProcAttr = &syscall.SysProcAttr{
		CreationFlags: syscall.CREATE_NEW_PROCESS_GROUP,
	}
}
