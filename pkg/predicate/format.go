package predicate

import (
	"net/mail"
	"net/url"
	"regexp"
	"strings"

	"github.com/google/uuid"
)

var (
	// international format with optional country code
	phoneRegex = regexp.MustCompile(`^\+?[1-9]\d{1,14}$`)

	alphanumericRegex = regexp.MustCompile(`^[a-zA-Z0-9]+$`)
)

// Email reports whether s is an RFC 5322 address with a dotted domain.
func Email(s string) bool {
	if strings.TrimSpace(s) == "" {
		return false
	}

	addr, err := mail.ParseAddress(s)
	if err != nil {
		return false
	}

	local, domain, ok := strings.Cut(addr.Address, "@")
	if !ok || local == "" || strings.Contains(domain, "@") {
		return false
	}

	if !strings.Contains(domain, ".") {
		return false
	}
	for part := range strings.SplitSeq(domain, ".") {
		if part == "" {
			return false
		}
	}
	return true
}

// URL reports whether s is an absolute URL with a scheme and a host.
func URL(s string) bool {
	if strings.TrimSpace(s) == "" {
		return false
	}
	u, err := url.ParseRequestURI(s)
	if err != nil {
		return false
	}
	return u.Scheme != "" && u.Host != ""
}

// UUID reports whether s is a canonical, hyphenated UUID.
func UUID(s string) bool {
	// Fast rejection before parsing.
	if len(s) != 36 || s[8] != '-' || s[13] != '-' || s[18] != '-' || s[23] != '-' {
		return false
	}
	_, err := uuid.Parse(s)
	return err == nil
}

// NonNilUUID reports whether s is a canonical UUID other than the nil UUID.
func NonNilUUID(s string) bool {
	if !UUID(s) {
		return false
	}
	return uuid.MustParse(s) != uuid.Nil
}

// Phone reports whether s looks like an E.164 phone number. Spaces, dashes
// and parentheses are ignored.
func Phone(s string) bool {
	cleaned := strings.NewReplacer(" ", "", "-", "", "(", "", ")", "").Replace(s)
	return phoneRegex.MatchString(cleaned)
}

// Alphanumeric reports whether s is non-empty and only holds ASCII letters
// and digits.
func Alphanumeric(s string) bool {
	return alphanumericRegex.MatchString(s)
}

// Matches returns a predicate reporting whether its input matches re.
func Matches(re *regexp.Regexp) func(string) bool {
	return func(s string) bool {
		return re != nil && re.MatchString(s)
	}
}
