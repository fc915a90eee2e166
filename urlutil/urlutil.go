package urlutil

import "strings"

// Normalize ensures the raw argument carries a scheme so browsers treat it
// as a URL rather than a search query.
//
// The check is a plain prefix test: "http://", "https://" and anything else
// beginning with "http" pass through unchanged (so "httpfoo.com" is treated
// as already schemed), "localhost..." gets http://, everything else https://.
func Normalize(raw string) string {
	switch {
	case strings.HasPrefix(raw, "http"):
		return raw
	case strings.HasPrefix(raw, "localhost"):
		return "http://" + raw
	default:
		return "https://" + raw
	}
}
