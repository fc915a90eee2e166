// Package logutil configures the process-wide slog logger. Debug logging is
// enabled with the OXRR_DEBUG environment variable; output goes to stderr so
// it never mixes with user-facing diagnostics on stdout.
package logutil
