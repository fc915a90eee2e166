// Package pathutil resolves command names against the PATH environment
// variable. It backs the Linux browser-detection probe, where a catalog
// locator is a bare command name rather than an absolute path.
//
// On Windows the conventional .exe extension is appended automatically when
// missing. A name that does not resolve yields the empty string; resolution
// failures are never errors.
package pathutil
