package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/omt66/oxrr/browser"
	"github.com/omt66/oxrr/fileutil"
)

// EnvConfig overrides the default config file location.
const EnvConfig = "OXRR_CONFIG"

// Entry is one user-defined browser in the config file.
type Entry struct {
	Name    string `yaml:"name"`
	Locator string `yaml:"locator"`
	Engine  string `yaml:"engine"`
}

// File is the parsed user configuration. Maps are keyed by OS identifier
// (windows, macos, linux).
type File struct {
	Browsers   map[string][]Entry  `yaml:"browsers"`
	Preference map[string][]string `yaml:"preference"`
}

// Path returns the config file location: $OXRR_CONFIG when set, otherwise
// <user config dir>/oxrr/browsers.yaml. The empty string means no usable
// location exists.
func Path() string {
	if p := os.Getenv(EnvConfig); p != "" {
		return p
	}
	base, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(base, "oxrr", "browsers.yaml")
}

// Load reads and parses the config file at Path. A missing file yields an
// empty config and no error; a present but malformed file is an error so
// typos don't silently drop user browsers.
func Load() (*File, error) {
	return LoadFrom(Path())
}

// LoadFrom reads and parses a config file at an explicit path.
func LoadFrom(path string) (*File, error) {
	if path == "" || !fileutil.PathExists(path) {
		return &File{}, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config %s: %w", path, err)
	}

	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	if err := f.validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return &f, nil
}

func (f *File) validate() error {
	for osid, entries := range f.Browsers {
		for _, e := range entries {
			if e.Name == "" || e.Locator == "" {
				return fmt.Errorf("browser entry under %q needs both name and locator", osid)
			}
			if _, ok := browser.ParseEngine(e.Engine); !ok {
				return fmt.Errorf("browser %q has unknown engine %q (want chromium or gecko)", e.Name, e.Engine)
			}
		}
	}
	return nil
}

// Descriptors returns the user-defined browsers for the given OS as catalog
// descriptors, in file order.
func (f *File) Descriptors(osid browser.OS) []browser.Descriptor {
	entries := f.Browsers[string(osid)]
	if len(entries) == 0 {
		return nil
	}

	out := make([]browser.Descriptor, 0, len(entries))
	for _, e := range entries {
		engine, ok := browser.ParseEngine(e.Engine)
		if !ok {
			continue
		}
		out = append(out, browser.Descriptor{
			Name:    e.Name,
			Locator: e.Locator,
			Engine:  engine,
		})
	}
	return out
}

// Preferred returns the user's extra preference names for the given OS.
func (f *File) Preferred(osid browser.OS) []string {
	return f.Preference[string(osid)]
}
