package browser

import "testing"

func TestFromGOOS(t *testing.T) {
	tests := []struct {
		goos string
		want OS
	}{
		{"windows", OSWindows},
		{"darwin", OSMacOS},
		{"linux", OSLinux},
		{"freebsd", OSOther},
		{"js", OSOther},
		{"", OSOther},
	}

	for _, tt := range tests {
		t.Run(tt.goos, func(t *testing.T) {
			if got := FromGOOS(tt.goos); got != tt.want {
				t.Errorf("FromGOOS(%q) = %q, want %q", tt.goos, got, tt.want)
			}
		})
	}
}

func TestParseEngine(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  Engine
		ok    bool
	}{
		{"chromium", "chromium", EngineChromium, true},
		{"gecko", "gecko", EngineGecko, true},
		{"empty defaults to chromium", "", EngineChromium, true},
		{"unknown engine", "webkit", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ParseEngine(tt.input)
			if got != tt.want || ok != tt.ok {
				t.Errorf("ParseEngine(%q) = (%q, %v), want (%q, %v)", tt.input, got, ok, tt.want, tt.ok)
			}
		})
	}
}

func TestCatalogKnownOS(t *testing.T) {
	for _, osid := range []OS{OSWindows, OSMacOS, OSLinux} {
		t.Run(string(osid), func(t *testing.T) {
			entries := Catalog(osid)
			if len(entries) == 0 {
				t.Fatalf("Catalog(%q) is empty", osid)
			}
			for _, d := range entries {
				if d.Name == "" || d.Locator == "" {
					t.Errorf("incomplete descriptor %+v", d)
				}
				if d.Engine != EngineChromium && d.Engine != EngineGecko {
					t.Errorf("descriptor %q has unknown engine %q", d.Name, d.Engine)
				}
			}
		})
	}
}

func TestCatalogUnknownOS(t *testing.T) {
	if got := Catalog(OSOther); got != nil {
		t.Errorf("Catalog(OSOther) = %v, want nil", got)
	}
	if got := Preference(OSOther); got != nil {
		t.Errorf("Preference(OSOther) = %v, want nil", got)
	}
}

// Every preference name must refer to a catalog entry, otherwise it can
// never match during selection.
func TestPreferenceNamesExistInCatalog(t *testing.T) {
	for _, osid := range []OS{OSWindows, OSMacOS, OSLinux} {
		t.Run(string(osid), func(t *testing.T) {
			known := make(map[string]bool)
			for _, d := range Catalog(osid) {
				known[d.Name] = true
			}
			for _, name := range Preference(osid) {
				if !known[name] {
					t.Errorf("preference %q has no catalog entry on %s", name, osid)
				}
			}
		})
	}
}

func TestCatalogReturnsCopy(t *testing.T) {
	first := Catalog(OSLinux)
	first[0].Name = "mutated"
	if Catalog(OSLinux)[0].Name == "mutated" {
		t.Error("mutating the returned slice changed the catalog")
	}

	prefs := Preference(OSLinux)
	prefs[0] = "mutated"
	if Preference(OSLinux)[0] == "mutated" {
		t.Error("mutating the returned slice changed the preference table")
	}
}
