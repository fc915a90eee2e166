package browser

// catalogs is the static per-OS table of known browsers. Order here is
// detection order and doubles as the last-resort fallback order; it is not
// the selection priority (see preferences).
var catalogs = map[OS][]Descriptor{
	OSWindows: {
		{Name: "Chrome", Locator: `C:\Program Files\Google\Chrome\Application\chrome.exe`, Engine: EngineChromium},
		{Name: "Edge", Locator: `C:\Program Files (x86)\Microsoft\Edge\Application\msedge.exe`, Engine: EngineChromium},
		{Name: "Brave", Locator: `C:\Program Files\BraveSoftware\Brave-Browser\Application\brave.exe`, Engine: EngineChromium},
		{Name: "Firefox", Locator: `C:\Program Files\Mozilla Firefox\firefox.exe`, Engine: EngineGecko},
	},
	OSMacOS: {
		{Name: "Chrome", Locator: "/Applications/Google Chrome.app", Engine: EngineChromium},
		{Name: "Edge", Locator: "/Applications/Microsoft Edge.app", Engine: EngineChromium},
		{Name: "Brave", Locator: "/Applications/Brave Browser.app", Engine: EngineChromium},
		{Name: "Firefox", Locator: "/Applications/Firefox.app", Engine: EngineGecko},
	},
	OSLinux: {
		{Name: "Chrome", Locator: "google-chrome", Engine: EngineChromium},
		{Name: "Chromium", Locator: "chromium", Engine: EngineChromium},
		{Name: "Edge", Locator: "microsoft-edge", Engine: EngineChromium},
		{Name: "Brave", Locator: "brave-browser", Engine: EngineChromium},
		{Name: "Firefox", Locator: "firefox", Engine: EngineGecko},
	},
}

// preferences is the per-OS selection priority, expressed as display names.
// It is an intentional reordering of the catalog and may omit entries.
var preferences = map[OS][]string{
	OSWindows: {"Chrome", "Edge", "Firefox", "Brave"},
	OSMacOS:   {"Chrome", "Brave", "Edge", "Firefox"},
	OSLinux:   {"Chrome", "Chromium", "Brave", "Firefox", "Edge"},
}

// Catalog returns a copy of the built-in browser table for the given OS.
// An OS without a catalog yields nil.
func Catalog(osid OS) []Descriptor {
	entries, ok := catalogs[osid]
	if !ok {
		return nil
	}
	out := make([]Descriptor, len(entries))
	copy(out, entries)
	return out
}

// Preference returns a copy of the selection priority for the given OS.
// An unrecognized OS yields an empty list, so selection degrades to the
// first-detected fallback.
func Preference(osid OS) []string {
	names, ok := preferences[osid]
	if !ok {
		return nil
	}
	out := make([]string, len(names))
	copy(out, names)
	return out
}
