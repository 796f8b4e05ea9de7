package utils

import (
	"strings"
)

// NormalizeSpace collapses repeated whitespace into a single space.
func NormalizeSpace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

// FilenamePart keeps user text in a filename but removes path separators and control characters.
func FilenamePart(s string) string {
	return strings.Map(func(r rune) rune {
		switch {
		case r == '/', r == '\\':
			return '_'
		case r < 0x20, r == 0x7f:
			return -1
		}
		return r
	}, s)
}
