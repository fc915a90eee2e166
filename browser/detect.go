package browser

import (
	"github.com/omt66/oxrr/fileutil"
	"github.com/omt66/oxrr/pathutil"
)

// Probes supplies the read-only host checks used during detection. Tests
// swap these out; production code uses DefaultProbes.
type Probes struct {
	// PathExists reports whether a filesystem path exists. Used for the
	// absolute-path locators on Windows and macOS.
	PathExists func(path string) bool
	// LookPath resolves a command name via PATH, returning the resolved
	// path or "" when the command is not found.
	LookPath func(name string) string
}

// DefaultProbes returns probes backed by the real filesystem and PATH.
func DefaultProbes() Probes {
	return Probes{
		PathExists: fileutil.PathExists,
		LookPath:   pathutil.FindToolInPath,
	}
}

// Detect returns the built-in catalog browsers installed on the host,
// preserving catalog order.
func Detect(osid OS) []Descriptor {
	return Installed(osid, Catalog(osid), DefaultProbes())
}

// Installed filters an arbitrary catalog down to the browsers present on the
// host. The probe for each entry depends on the OS: path existence on
// Windows and macOS, PATH resolution on Linux. Probe misses are silent; an
// OS outside the known set yields nil.
func Installed(osid OS, catalog []Descriptor, probes Probes) []Descriptor {
	var present func(Descriptor) bool
	switch osid {
	case OSWindows, OSMacOS:
		present = func(d Descriptor) bool { return probes.PathExists(d.Locator) }
	case OSLinux:
		present = func(d Descriptor) bool { return probes.LookPath(d.Locator) != "" }
	default:
		return nil
	}

	var detected []Descriptor
	for _, d := range catalog {
		if present(d) {
			detected = append(detected, d)
		}
	}
	return detected
}
