package testutil

import (
	"fmt"
	"testing"
)

func TestCaptureOutput(t *testing.T) {
	out := CaptureOutput(t, func() error {
		fmt.Println("captured line")
		return nil
	})
	if !Contains(out, "captured line") {
		t.Errorf("output %q missing expected text", out)
	}
}

func TestContains(t *testing.T) {
	if !Contains("Detected browsers: None", "None") {
		t.Error("Contains missed an existing substring")
	}
	if Contains("abc", "xyz") {
		t.Error("Contains reported a missing substring")
	}
}
