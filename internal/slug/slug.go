// Package slug maps display names to URL path segments and back.
//
// There is no stored reverse mapping: a segment decodes to a display value X
// only when Slugify(X) equals the segment for some X among the candidates.
package slug

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"
)

var (
	whitespace = regexp.MustCompile(`[\s\x{0B}\x{85}\p{Z}]+`)
	disallowed = regexp.MustCompile(`[^a-z0-9-]`)
	hyphens    = regexp.MustCompile(`-{2,}`)
)

// Slugify lower-cases s, turns whitespace runs (Unicode spaces included) into a hyphen, drops anything
// outside [a-z0-9-], collapses repeated hyphens and trims them at both ends.
// Non-ASCII letters are dropped, not transliterated.
func Slugify(s string) string {
	out := strings.ToLower(s)
	out = whitespace.ReplaceAllString(out, "-")
	out = disallowed.ReplaceAllString(out, "")
	out = hyphens.ReplaceAllString(out, "-")
	return strings.Trim(out, "-")
}

// Resolve returns the first candidate whose slug equals segment.
func Resolve(segment string, candidates []string) (string, bool) {
	for _, c := range candidates {
		if Slugify(c) == segment {
			return c, true
		}
	}
	return "", false
}

// Label builds a readable heading from a segment: "big-bear-lake" -> "Big Bear Lake".
func Label(segment string) string {
	parts := strings.Split(segment, "-")
	for i, p := range parts {
		if p == "" {
			continue
		}
		r, n := utf8.DecodeRuneInString(p)
		parts[i] = string(unicode.ToUpper(r)) + p[n:]
	}
	return strings.Join(parts, " ")
}

// ResolveOrLabel resolves segment against candidates and falls back to Label.
func ResolveOrLabel(segment string, candidates []string) string {
	if v, ok := Resolve(segment, candidates); ok {
		return v
	}
	return Label(segment)
}
