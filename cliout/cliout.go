package cliout

import (
	"fmt"
	"os"
	"runtime"
	"strings"
	"sync"

	"golang.org/x/term"
)

// ANSI color codes for consistent styling
const (
	Reset = "\033[0m"
	Bold  = "\033[1m"
	Dim   = "\033[2m"

	BrightRed    = "\033[91m"
	BrightGreen  = "\033[92m"
	BrightYellow = "\033[93m"
	BrightBlue   = "\033[94m"
)

// Unicode symbols with ASCII fallbacks
const (
	SymbolCheck   = "✓"
	SymbolCross   = "✗"
	SymbolWarning = "⚠"
	SymbolInfo    = "ℹ"

	ASCIICheck   = "[+]"
	ASCIICross   = "[-]"
	ASCIIWarning = "[!]"
	ASCIIInfo    = "[i]"
)

// noColor disables all color output. Defaults to true when stdout is not a
// terminal so piped output stays clean.
var noColor = !term.IsTerminal(int(os.Stdout.Fd()))

// mu protects noColor
var mu sync.RWMutex

// ForceColor enables color output regardless of terminal detection.
func ForceColor() {
	mu.Lock()
	noColor = false
	mu.Unlock()
}

// NoColor disables color output.
func NoColor() {
	mu.Lock()
	noColor = true
	mu.Unlock()
}

func getNoColor() bool {
	mu.RLock()
	defer mu.RUnlock()
	return noColor
}

// colorize wraps text in the given color unless colors are disabled.
func colorize(color, text string) string {
	if getNoColor() {
		return text
	}
	return color + text + Reset
}

// supportsUnicode detects if the terminal supports Unicode symbols
var supportsUnicode = detectUnicodeSupport()

// detectUnicodeSupport checks if the terminal can display Unicode properly
func detectUnicodeSupport() bool {
	if runtime.GOOS == "windows" {
		// Windows Terminal, VS Code, ConEmu and PowerShell handle
		// Unicode; legacy cmd.exe does not.
		if os.Getenv("WT_SESSION") != "" {
			return true
		}
		if os.Getenv("TERM_PROGRAM") == "vscode" {
			return true
		}
		if os.Getenv("ConEmuPID") != "" {
			return true
		}
		if os.Getenv("PSModulePath") != "" || os.Getenv("POWERSHELL_DISTRIBUTION_CHANNEL") != "" {
			return true
		}
		if os.Getenv("TERM") != "" {
			return true
		}
		return false
	}

	// Unix-like systems generally support Unicode
	return true
}

// getIcon returns the appropriate icon based on Unicode support
func getIcon(unicode, ascii string) string {
	if supportsUnicode {
		return unicode
	}
	return ascii
}

// Header prints a bold header with a divider
func Header(text string) {
	fmt.Printf("\n%s\n", colorize(Bold, text))
	fmt.Println(strings.Repeat("=", len(text)))
}

// Success prints a success message with a green checkmark
func Success(format string, args ...interface{}) {
	msg := fmt.Sprintf(format, args...)
	fmt.Printf("%s %s\n", colorize(BrightGreen, getIcon(SymbolCheck, ASCIICheck)), msg)
}

// Error prints an error message with a red cross
func Error(format string, args ...interface{}) {
	msg := fmt.Sprintf(format, args...)
	fmt.Printf("%s %s\n", colorize(BrightRed, getIcon(SymbolCross, ASCIICross)), msg)
}

// Warning prints a warning message with a yellow triangle
func Warning(format string, args ...interface{}) {
	msg := fmt.Sprintf(format, args...)
	fmt.Printf("%s  %s\n", colorize(BrightYellow, getIcon(SymbolWarning, ASCIIWarning)), msg)
}

// Info prints an informational message with a blue info icon
func Info(format string, args ...interface{}) {
	msg := fmt.Sprintf(format, args...)
	fmt.Printf("%s  %s\n", colorize(BrightBlue, getIcon(SymbolInfo, ASCIIInfo)), msg)
}

// Item prints an indented item
func Item(format string, args ...interface{}) {
	msg := fmt.Sprintf(format, args...)
	fmt.Printf("   %s\n", msg)
}

// Label prints an indented label and value pair
func Label(label, value string) {
	fmt.Printf("   %s %s\n", colorize(Dim, fmt.Sprintf("%-12s", label+":")), value)
}
