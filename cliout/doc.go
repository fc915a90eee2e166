// Package cliout provides the user-facing diagnostic output for the
// launcher: detected OS and browsers, the chosen browser, and fallback
// notices. Output uses ANSI colors with Unicode symbols, degrading to ASCII
// on terminals without Unicode support and to plain text when stdout is not
// a terminal.
package cliout
