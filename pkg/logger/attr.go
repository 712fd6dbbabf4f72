package logger

import (
	"log/slog"
	"strconv"

	"github.com/dmitrymomot/fieldcheck"
)

// Group creates a slog group attribute from the provided attributes.
func Group(name string, attrs ...slog.Attr) slog.Attr {
	return slog.Attr{Key: name, Value: slog.GroupValue(attrs...)}
}

// Errors groups multiple non-nil errors under the key "errors".
// If all errors are nil, it returns an empty Attr.
func Errors(errs ...error) slog.Attr {
	as := make([]slog.Attr, 0, len(errs))
	for i, err := range errs {
		if err != nil {
			as = append(as, slog.Any(strconv.Itoa(i), err))
		}
	}
	if len(as) == 0 {
		return slog.Attr{}
	}
	return slog.Attr{Key: "errors", Value: slog.GroupValue(as...)}
}

// Error creates an attribute for a single error under the key "error".
// If err is nil, it returns an empty Attr.
func Error(err error) slog.Attr {
	if err == nil {
		return slog.Attr{}
	}
	return slog.Any("error", err)
}

// Component records the component name under the key "component".
func Component(name string) slog.Attr {
	return slog.String("component", name)
}

// SessionID records a validation session identifier under the key "session_id".
// If id is nil, it returns an empty Attr.
func SessionID(id any) slog.Attr {
	if id == nil {
		return slog.Attr{}
	}
	return slog.Any("session_id", id)
}

// Source records where validated input came from under the key "source".
func Source(name string) slog.Attr {
	return slog.String("source", name)
}

// Duration records a duration under the key "duration".
func Duration(d any) slog.Attr {
	return slog.Any("duration", d)
}

// Violations groups a violation report by path under the key "violations".
// An empty report yields an empty Attr.
func Violations(v fieldcheck.Violations) slog.Attr {
	if len(v) == 0 {
		return slog.Attr{}
	}
	attrs := make([]slog.Attr, 0, len(v))
	for _, path := range v.Paths() {
		attrs = append(attrs, slog.Any(path, v[path]))
	}
	return Group("violations", attrs...)
}

// ViolationCount records the number of violated paths under the key "violation_count".
func ViolationCount(v fieldcheck.Violations) slog.Attr {
	return slog.Int("violation_count", len(v))
}
