// Package browser holds the per-OS catalog of known web browsers and the
// logic for detecting which of them are installed and selecting the best
// candidate for an app-mode launch.
//
// # Catalog
//
// Each OS has a static, compile-time catalog of Descriptor entries. A
// descriptor's Locator is an absolute path on Windows and macOS, or a bare
// command name resolved via PATH on Linux. Catalog order is detection order,
// not selection priority; selection priority comes from a separate per-OS
// preference table.
//
// # Detection
//
// Detect filters the catalog down to the browsers actually present on the
// host. Probes are injectable so tests never touch the real filesystem or
// PATH. A probe failure is recorded as "not installed" and never surfaces as
// an error.
//
// # Selection
//
// Select walks the preference table and picks the first name that is also
// detected. When no preferred name matches, the first detected browser (in
// catalog order) is used. With nothing detected at all, selection reports
// failure and the caller falls back to the system default browser.
//
// # Example
//
//	osid := browser.FromGOOS(runtime.GOOS)
//	detected := browser.Detect(osid)
//	if chosen, ok := browser.Select(detected, browser.Preference(osid)); ok {
//	    fmt.Printf("launching %s\n", chosen.Name)
//	}
package browser
