// Package config loads the optional user browser catalog. The built-in
// catalog is compile-time immutable; a YAML file can only append extra
// browsers and extra preference names after the built-ins. A missing file is
// not an error.
//
// The file lives at $OXRR_CONFIG if set, otherwise
// <user config dir>/oxrr/browsers.yaml. Format:
//
//	browsers:
//	  linux:
//	    - name: Vivaldi
//	      locator: vivaldi
//	      engine: chromium
//	preference:
//	  linux: [Vivaldi]
//
// The engine field accepts "chromium" (default) or "gecko".
package config
