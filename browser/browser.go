package browser

// Engine identifies the flag dialect a browser speaks when launched in
// app/kiosk mode. Chromium-family browsers take --app and --window-size;
// Gecko-family browsers take --width and --height.
type Engine string

const (
	// EngineChromium covers Chrome, Edge, Brave, Chromium and friends.
	EngineChromium Engine = "chromium"
	// EngineGecko covers Firefox and its derivatives.
	EngineGecko Engine = "gecko"
)

// ParseEngine converts a configuration string to an Engine.
// The empty string defaults to EngineChromium.
func ParseEngine(s string) (Engine, bool) {
	switch Engine(s) {
	case EngineChromium, "":
		return EngineChromium, true
	case EngineGecko:
		return EngineGecko, true
	default:
		return "", false
	}
}

// Descriptor describes one known browser: a display name, how to find it on
// the host, and which launch-flag dialect it understands.
type Descriptor struct {
	// Name is the display name, also used for preference matching.
	Name string
	// Locator is an absolute path (Windows/macOS) or a command name
	// resolved via PATH (Linux).
	Locator string
	// Engine selects the app-mode flag dialect.
	Engine Engine
}

// OS is the closed set of platforms the catalog knows about.
type OS string

const (
	OSWindows OS = "windows"
	OSMacOS   OS = "macos"
	OSLinux   OS = "linux"
	// OSOther is any platform without a catalog. Detection on OSOther
	// yields nothing and callers fall through to their unsupported branch.
	OSOther OS = "other"
)

// FromGOOS maps a runtime.GOOS value onto the catalog's OS set.
func FromGOOS(goos string) OS {
	switch goos {
	case "windows":
		return OSWindows
	case "darwin":
		return OSMacOS
	case "linux":
		return OSLinux
	default:
		return OSOther
	}
}
