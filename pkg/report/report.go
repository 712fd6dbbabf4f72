package report

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/dmitrymomot/fieldcheck"
)

// Format selects the output encoding.
type Format string

const (
	FormatText Format = "text"
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// ErrUnknownFormat is returned by Render and ParseFormat for unsupported formats.
var ErrUnknownFormat = errors.New("unknown report format")

// Formats lists every supported format.
func Formats() []Format {
	return []Format{FormatText, FormatJSON, FormatYAML}
}

// ParseFormat maps a case-insensitive name to a Format.
func ParseFormat(name string) (Format, error) {
	f := Format(strings.ToLower(strings.TrimSpace(name)))
	switch f {
	case FormatText, FormatJSON, FormatYAML:
		return f, nil
	case "yml":
		return FormatYAML, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownFormat, name)
}

type options struct {
	header string
	indent int
}

// Option tunes Render.
type Option func(*options)

// WithHeader writes a line before text output. Ignored for other formats and
// for empty reports.
func WithHeader(header string) Option {
	return func(o *options) { o.header = header }
}

// WithIndent sets the indentation width for JSON and YAML. Values below 1
// are ignored.
func WithIndent(n int) Option {
	return func(o *options) {
		if n > 0 {
			o.indent = n
		}
	}
}

// Render writes v to w in format f.
func Render(w io.Writer, v fieldcheck.Violations, f Format, opts ...Option) error {
	o := options{indent: 2}
	for _, opt := range opts {
		opt(&o)
	}

	if v == nil {
		v = fieldcheck.Violations{}
	}

	switch f {
	case FormatText:
		return renderText(w, v, o)
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", strings.Repeat(" ", o.indent))
		if err := enc.Encode(v); err != nil {
			return fmt.Errorf("encode json report: %w", err)
		}
		return nil
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(o.indent)
		if err := enc.Encode(map[string][]string(v)); err != nil {
			return fmt.Errorf("encode yaml report: %w", err)
		}
		if err := enc.Close(); err != nil {
			return fmt.Errorf("encode yaml report: %w", err)
		}
		return nil
	}
	return fmt.Errorf("%w: %q", ErrUnknownFormat, f)
}

func renderText(w io.Writer, v fieldcheck.Violations, o options) error {
	if len(v) == 0 {
		return nil
	}
	var b strings.Builder
	if o.header != "" {
		b.WriteString(o.header)
		b.WriteByte('\n')
	}
	for _, path := range v.Paths() {
		for _, msg := range v[path] {
			fmt.Fprintf(&b, "%s %s\n", path, msg)
		}
	}
	_, err := io.WriteString(w, b.String())
	return err
}
