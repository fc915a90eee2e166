package procutil

import (
	"context"
	"os"
	"testing"
)

func TestStartDetachedEmptyCommand(t *testing.T) {
	if _, err := StartDetached(nil); err == nil {
		t.Error("expected error for empty command")
	}
}

func TestStartDetachedMissingBinary(t *testing.T) {
	_, err := StartDetached([]string{"definitely-not-a-real-binary-xyz", "arg"})
	if err == nil {
		t.Error("expected error for missing binary")
	}
}

func TestStillRunningSelf(t *testing.T) {
	if !StillRunning(context.Background(), os.Getpid()) {
		t.Error("StillRunning reported the test process as gone")
	}
}

func TestStillRunningInvalidPID(t *testing.T) {
	if StillRunning(context.Background(), 0) {
		t.Error("StillRunning(0) = true, want false")
	}
	if StillRunning(context.Background(), -5) {
		t.Error("StillRunning(-5) = true, want false")
	}
}
