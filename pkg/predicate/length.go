package predicate

import (
	"strings"
	"unicode/utf8"
)

// NotBlank reports whether s has content other than whitespace.
func NotBlank(s string) bool {
	return strings.TrimSpace(s) != ""
}

// MinLen returns a predicate requiring at least n runes.
func MinLen(n int) func(string) bool {
	return func(s string) bool {
		return utf8.RuneCountInString(s) >= n
	}
}

// MaxLen returns a predicate allowing at most n runes.
func MaxLen(n int) func(string) bool {
	return func(s string) bool {
		return utf8.RuneCountInString(s) <= n
	}
}

// LenBetween returns a predicate requiring between min and max runes, inclusive.
func LenBetween(min, max int) func(string) bool {
	return func(s string) bool {
		n := utf8.RuneCountInString(s)
		return n >= min && n <= max
	}
}
