// Package launcher turns a URL into a running browser window.
//
// The per-OS differences (how browsers are probed, how an app-mode command
// line is shaped, how the default browser is opened) are captured once in a
// Platform strategy instead of being re-branched at every step. The
// Launcher orchestrates the full flow:
//
//	normalize URL -> detect installed browsers -> select one ->
//	spawn detached -> verify it stayed up
//
// with a fallback tier at every decision point. Nothing here blocks on the
// child process; spawns are fire-and-forget apart from a short grace-period
// liveness check. Every failure degrades to the next tier rather than
// aborting.
package launcher
