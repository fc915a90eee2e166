package notify

import (
	"testing"
	"time"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	if cfg.AppName != "oxrr" {
		t.Errorf("AppName = %q, want oxrr", cfg.AppName)
	}
	if cfg.Timeout != 5*time.Second {
		t.Errorf("Timeout = %v, want 5s", cfg.Timeout)
	}
}

func TestNew(t *testing.T) {
	n, err := New(DefaultConfig())
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	if !n.IsAvailable() {
		t.Error("beeep notifier reported unavailable")
	}
	if err := n.Close(); err != nil {
		t.Errorf("Close() error = %v", err)
	}
}
