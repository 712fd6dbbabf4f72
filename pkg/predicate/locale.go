package predicate

import (
	"strings"

	"golang.org/x/text/language"
)

// LanguageTag reports whether s is a well-formed BCP 47 language tag.
func LanguageTag(s string) bool {
	if strings.TrimSpace(s) == "" {
		return false
	}
	_, err := language.Parse(s)
	return err == nil
}

// LanguageIn returns a predicate reporting whether its input is a language
// tag that matches one of supported with at least high confidence.
func LanguageIn(supported ...language.Tag) func(string) bool {
	if len(supported) == 0 {
		return func(string) bool { return false }
	}
	matcher := language.NewMatcher(supported)
	return func(s string) bool {
		if !LanguageTag(s) {
			return false
		}
		tag, _ := language.Parse(s)
		_, _, conf := matcher.Match(tag)
		return conf >= language.High
	}
}
