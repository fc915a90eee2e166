package logutil

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"
)

func TestDebugEnabled(t *testing.T) {
	tests := []struct {
		value string
		want  bool
	}{
		{"true", true},
		{"TRUE", true},
		{"1", true},
		{"false", false},
		{"0", false},
		{"", false},
		{"yes", false},
	}

	for _, tt := range tests {
		t.Run("value="+tt.value, func(t *testing.T) {
			t.Setenv(EnvDebug, tt.value)
			if got := DebugEnabled(); got != tt.want {
				t.Errorf("DebugEnabled() with %s=%q = %v, want %v", EnvDebug, tt.value, got, tt.want)
			}
		})
	}
}

func TestSetupLoggerLevels(t *testing.T) {
	var buf bytes.Buffer
	SetupLogger(false, false)
	SetOutput(&buf)
	t.Cleanup(func() { SetupLogger(false, false) })

	slog.Debug("hidden")
	slog.Info("shown")

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Error("debug message logged at info level")
	}
	if !strings.Contains(out, "shown") {
		t.Error("info message missing")
	}

	buf.Reset()
	SetupLogger(true, false)
	SetOutput(&buf)

	slog.Debug("now visible")
	if !strings.Contains(buf.String(), "now visible") {
		t.Error("debug message missing at debug level")
	}
}

func TestSetupLoggerJSON(t *testing.T) {
	var buf bytes.Buffer
	SetupLogger(false, true)
	SetOutput(&buf)
	t.Cleanup(func() { SetupLogger(false, false) })

	slog.Info("structured", "key", "value")

	out := buf.String()
	if !strings.Contains(out, `"msg":"structured"`) {
		t.Errorf("expected JSON log line, got %q", out)
	}
}
