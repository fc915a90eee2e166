package launcher

import (
	"fmt"

	"github.com/omt66/oxrr/browser"
)

// App window geometry. Fixed by design; kiosk windows are not resizable
// through this tool.
const (
	windowWidth  = 960
	windowHeight = 800
)

// profileDir is the throwaway Chromium profile used for app windows, so
// kiosk sessions never touch the user's real browser profile.
const profileDir = "/tmp/temp-profile"

// Platform captures the OS-specific pieces of a launch: probing for
// installed browsers, shaping the app-mode command line, and opening the
// system default browser.
type Platform interface {
	// OS returns the platform identifier.
	OS() browser.OS

	// DetectInstalled filters catalog to the browsers present on the host.
	DetectInstalled(catalog []browser.Descriptor, probes browser.Probes) []browser.Descriptor

	// AppCommand builds the argv for launching d in app mode at url.
	AppCommand(d browser.Descriptor, url string) []string

	// DefaultOpenCommand builds the argv for opening url with the OS
	// default browser handler.
	DefaultOpenCommand(url string) []string

	// SpawnsBrowserDirectly reports whether AppCommand starts the browser
	// binary itself. macOS goes through the `open` trampoline, which exits
	// immediately, so its child PID says nothing about the browser.
	SpawnsBrowserDirectly() bool
}

// ForOS returns the strategy for the given OS, or ok=false when the OS is
// outside the supported set.
func ForOS(osid browser.OS) (Platform, bool) {
	switch osid {
	case browser.OSWindows:
		return windowsPlatform{}, true
	case browser.OSMacOS:
		return darwinPlatform{}, true
	case browser.OSLinux:
		return linuxPlatform{}, true
	default:
		return nil, false
	}
}

// desktopAppArgs builds the flag set passed to the browser binary itself.
// Gecko browsers size the window directly; Chromium browsers get a true
// chromeless app window with a throwaway profile.
func desktopAppArgs(d browser.Descriptor, url string) []string {
	if d.Engine == browser.EngineGecko {
		return []string{
			url,
			fmt.Sprintf("--width=%d", windowWidth),
			fmt.Sprintf("--height=%d", windowHeight),
		}
	}
	return []string{
		"--app=" + url,
		fmt.Sprintf("--window-size=%d,%d", windowWidth, windowHeight),
		"--new-window",
		"--user-data-dir=" + profileDir,
	}
}

type windowsPlatform struct{}

func (windowsPlatform) OS() browser.OS { return browser.OSWindows }

func (p windowsPlatform) DetectInstalled(catalog []browser.Descriptor, probes browser.Probes) []browser.Descriptor {
	return browser.Installed(p.OS(), catalog, probes)
}

func (windowsPlatform) AppCommand(d browser.Descriptor, url string) []string {
	return append([]string{d.Locator}, desktopAppArgs(d, url)...)
}

func (windowsPlatform) DefaultOpenCommand(url string) []string {
	// start is a cmd builtin; the empty string is the window title so the
	// URL is never mistaken for one.
	return []string{"cmd", "/c", "start", "", url}
}

func (windowsPlatform) SpawnsBrowserDirectly() bool { return true }

type linuxPlatform struct{}

func (linuxPlatform) OS() browser.OS { return browser.OSLinux }

func (p linuxPlatform) DetectInstalled(catalog []browser.Descriptor, probes browser.Probes) []browser.Descriptor {
	return browser.Installed(p.OS(), catalog, probes)
}

func (linuxPlatform) AppCommand(d browser.Descriptor, url string) []string {
	return append([]string{d.Locator}, desktopAppArgs(d, url)...)
}

func (linuxPlatform) DefaultOpenCommand(url string) []string {
	return []string{"xdg-open", url}
}

func (linuxPlatform) SpawnsBrowserDirectly() bool { return true }

type darwinPlatform struct{}

func (darwinPlatform) OS() browser.OS { return browser.OSMacOS }

func (p darwinPlatform) DetectInstalled(catalog []browser.Descriptor, probes browser.Probes) []browser.Descriptor {
	return browser.Installed(p.OS(), catalog, probes)
}

// AppCommand launches through `open -na` so a fresh instance of the app
// bundle starts even when the browser is already running. Chromium flags
// must ride behind --args; Gecko flags are understood by open's document
// handling, and macOS windows take their size from --width/--height alone.
func (darwinPlatform) AppCommand(d browser.Descriptor, url string) []string {
	if d.Engine == browser.EngineGecko {
		return []string{
			"open", "-na", d.Locator,
			url,
			fmt.Sprintf("--width=%d", windowWidth),
			fmt.Sprintf("--height=%d", windowHeight),
		}
	}
	return []string{
		"open", "-na", d.Locator,
		"--args",
		"--app=" + url,
		"--new-window",
		"--user-data-dir=" + profileDir,
	}
}

func (darwinPlatform) DefaultOpenCommand(url string) []string {
	return []string{"open", url}
}

func (darwinPlatform) SpawnsBrowserDirectly() bool { return false }
