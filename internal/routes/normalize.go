package routes

import "strings"

const vsSeparator = "-vs-"

// CompareNormalizer collapses semantically-symmetric two-sided compare
// slugs into one canonical ordering so "a-vs-b" and "b-vs-a" cannot
// both reach the sitemap.
type CompareNormalizer struct {
	// Prefix is the comparison route prefix, e.g. "/compare". Empty
	// disables normalization.
	Prefix string
}

// Normalize rewrites the final segment of a compare path to put the
// lexicographically smaller side first. Paths outside the prefix, or
// whose final segment is not an exact two-sided "left-vs-right" form,
// pass through unchanged. Idempotent.
func (n CompareNormalizer) Normalize(path string) string {
	if n.Prefix == "" || !strings.HasPrefix(path, n.Prefix+"/") {
		return path
	}
	rest := strings.TrimPrefix(path, n.Prefix+"/")
	if rest == "" || strings.Contains(rest, "/") {
		return path
	}
	parts := strings.SplitN(rest, vsSeparator, 2)
	if len(parts) != 2 || parts[0] == "" || parts[1] == "" {
		return path
	}
	// Reject slugs with more than one separator; their sides are ambiguous.
	if strings.Contains(parts[1], vsSeparator) {
		return path
	}
	left, right := parts[0], parts[1]
	if left > right {
		left, right = right, left
	}
	return n.Prefix + "/" + left + vsSeparator + right
}
