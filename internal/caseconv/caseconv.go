// Package caseconv rewrites field names into wire keys.
package caseconv

import (
	"strings"
	"unicode"
)

// Camel converts snake_case or kebab-case names to camelCase. Runs of
// separators collapse; the first word gets a lower first rune, later words
// get an upper first rune.
func Camel(name string) string {
	var b strings.Builder
	b.Grow(len(name))
	upperNext := false
	wroteAny := false
	for _, r := range name {
		if r == '_' || r == '-' || r == ' ' {
			upperNext = wroteAny
			continue
		}
		switch {
		case upperNext:
			b.WriteRune(unicode.ToUpper(r))
			upperNext = false
		case !wroteAny:
			b.WriteRune(unicode.ToLower(r))
		default:
			b.WriteRune(r)
		}
		wroteAny = true
	}
	return b.String()
}

// Lower lowercases the whole name.
func Lower(name string) string { return strings.ToLower(name) }
