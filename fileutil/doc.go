// Package fileutil provides small read-only filesystem helpers.
//
// PathExists is the existence probe behind Windows and macOS browser
// detection, where a catalog locator is an absolute file or bundle path.
// Probes never execute anything; a stat miss simply reports absence.
package fileutil
