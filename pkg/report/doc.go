// Package report renders a fieldcheck.Violations report for people and
// machines.
//
// Three formats are supported:
//
//   - FormatText: one "<path> <message>" line per message, paths sorted.
//   - FormatJSON: an object mapping paths to message arrays.
//   - FormatYAML: the same mapping as a YAML document.
//
// An empty report renders as nothing in text format, "{}" in JSON and "{}"
// in YAML, so output stays machine-readable either way.
package report
