// Package testutil provides shared test helpers: capturing stdout during a
// test (CaptureOutput) and a substring assertion convenience (Contains).
// All helpers use t.Helper() for proper test line reporting.
package testutil
