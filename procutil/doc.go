// Package procutil provides the process-spawn primitives used to launch
// browsers: a detached fire-and-forget start, and a best-effort liveness
// check (via github.com/shirou/gopsutil) for catching children that exit
// immediately after a successful start.
//
// Platform-specific detachment attributes live in procutil_unix.go and
// procutil_windows.go.
package procutil
