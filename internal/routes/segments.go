package routes

import "strings"

// Structural segment markers stripped from internal route identifiers.
// Route groups are parenthesized, parallel routes start with "@", and
// page/route/default are leaf markers with no path contribution.
const parallelMarker = "@"

var leafMarkers = map[string]bool{
	"page":    true,
	"route":   true,
	"default": true,
}

// localeWrapper is the placeholder segment wrapping every page under
// the locale root in the source tree.
const localeWrapper = "[locale]"

// canonicalFromSegments filters structural segments out of a
// slash-separated internal route identifier and returns the canonical
// path. Returns "/" when nothing survives.
func canonicalFromSegments(segs []string) string {
	var kept []string
	for _, seg := range segs {
		switch {
		case seg == "" || seg == localeWrapper:
		case strings.HasPrefix(seg, "(") && strings.HasSuffix(seg, ")"):
		case strings.HasPrefix(seg, parallelMarker):
		case leafMarkers[seg]:
		default:
			kept = append(kept, seg)
		}
	}
	if len(kept) == 0 {
		return "/"
	}
	return "/" + strings.Join(kept, "/")
}
