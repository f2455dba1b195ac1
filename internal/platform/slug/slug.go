// Package slug derives filesystem-safe names for journal notes and cached
// resources.
package slug

import (
	"regexp"
	"strings"
)

var unsafe = regexp.MustCompile(`[^a-z0-9]+`)

// Slugs cap out well under common filename limits; note names still carry
// a date prefix and an extension on top.
const maxLen = 80

// Make lowercases the input and collapses every other run of characters to
// a single dash, so "Intro to SQL" becomes "intro-to-sql". An input with
// nothing usable (or an empty one) falls back to "untitled".
func Make(input string) string {
	s := unsafe.ReplaceAllString(strings.ToLower(strings.TrimSpace(input)), "-")
	s = strings.Trim(s, "-")
	if len(s) > maxLen {
		s = strings.Trim(s[:maxLen], "-")
	}
	if s == "" {
		return "untitled"
	}
	return s
}
