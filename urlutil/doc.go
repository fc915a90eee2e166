// Package urlutil provides the URL normalization applied to the positional
// argument before launching a browser.
//
// Normalization is a deliberate prefix test, not an RFC 3986 parse: anything
// starting with "http" is passed through untouched, "localhost" hosts get an
// http:// prefix (local dev servers rarely speak TLS), and everything else
// gets https://.
package urlutil
