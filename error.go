package fieldcheck

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"
)

// ErrValidationFailed is matched by every error returned from OrElse and Err.
var ErrValidationFailed = errors.New("validation failed")

// Error carries the violations of a finished validation session.
type Error struct {
	violations Violations
}

// NewError wraps violations in an *Error. The map is owned by the error
// afterwards.
func NewError(violations Violations) *Error {
	if violations == nil {
		violations = make(Violations)
	}
	return &Error{violations: violations}
}

// Error implements the error interface.
// Returns a human-readable summary with paths in lexical order.
func (e *Error) Error() string {
	if len(e.violations) == 0 {
		return ErrValidationFailed.Error()
	}

	var parts []string
	for _, path := range e.violations.Paths() {
		for _, msg := range e.violations[path] {
			parts = append(parts, fmt.Sprintf("%s %s", path, msg))
		}
	}
	return ErrValidationFailed.Error() + ": " + strings.Join(parts, "; ")
}

// Is reports whether target is ErrValidationFailed.
func (e *Error) Is(target error) bool {
	return target == ErrValidationFailed
}

// Violations returns a copy of the carried violations.
func (e *Error) Violations() Violations {
	return e.violations.Clone()
}

// Has reports whether path has at least one violation.
func (e *Error) Has(path string) bool {
	return len(e.violations[path]) > 0
}

// Get returns the messages recorded at path.
func (e *Error) Get(path string) []string {
	return append([]string(nil), e.violations[path]...)
}

// Fields returns the violated paths in lexical order.
func (e *Error) Fields() []string {
	return e.violations.Paths()
}

// LogValue renders the violations as a group keyed by path.
func (e *Error) LogValue() slog.Value {
	attrs := make([]slog.Attr, 0, len(e.violations))
	for _, path := range e.violations.Paths() {
		attrs = append(attrs, slog.Any(path, e.violations[path]))
	}
	return slog.GroupValue(attrs...)
}

// AsError extracts an *Error from err's chain.
func AsError(err error) (*Error, bool) {
	var verr *Error
	if errors.As(err, &verr) {
		return verr, true
	}
	return nil, false
}

// IsValidationError reports whether err's chain holds an *Error.
func IsValidationError(err error) bool {
	_, ok := AsError(err)
	return ok
}
