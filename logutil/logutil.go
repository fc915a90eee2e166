package logutil

import (
	"io"
	"log/slog"
	"os"
	"strings"
	"sync"
)

// Environment variable names for logging configuration.
const (
	// EnvDebug enables debug logging when set to "true" or "1".
	EnvDebug = "OXRR_DEBUG"
)

var (
	mu           sync.Mutex
	debugEnabled           = false
	structured             = false
	outputWriter io.Writer = os.Stderr
)

func init() {
	SetupLogger(false, false)
}

// DebugEnabled reports whether EnvDebug requests debug logging.
func DebugEnabled() bool {
	v := strings.ToLower(os.Getenv(EnvDebug))
	return v == "true" || v == "1"
}

// SetupFromEnv configures the global logger from the environment.
func SetupFromEnv() {
	SetupLogger(DebugEnabled(), false)
}

// SetupLogger configures the global slog logger.
//
// Parameters:
//   - debug: when true, enables debug-level logging
//   - jsonOutput: when true, emits JSON-formatted logs instead of text
//
// Safe for concurrent use.
func SetupLogger(debug, jsonOutput bool) {
	mu.Lock()
	defer mu.Unlock()

	debugEnabled = debug
	structured = jsonOutput
	rebuild()
}

// SetOutput redirects log output, which is useful in tests.
// Safe for concurrent use.
func SetOutput(w io.Writer) {
	mu.Lock()
	defer mu.Unlock()

	outputWriter = w
	rebuild()
}

// rebuild recreates the default logger. Caller must hold mu.
func rebuild() {
	level := slog.LevelInfo
	if debugEnabled {
		level = slog.LevelDebug
	}

	opts := &slog.HandlerOptions{Level: level}

	var handler slog.Handler
	if structured {
		handler = slog.NewJSONHandler(outputWriter, opts)
	} else {
		handler = slog.NewTextHandler(outputWriter, opts)
	}

	slog.SetDefault(slog.New(handler))
}
