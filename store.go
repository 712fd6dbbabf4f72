package fieldcheck

import (
	"fmt"
	"maps"
	"slices"

	"dario.cat/mergo"
)

// Violations maps a dotted field path to the messages recorded for it,
// in the order they were recorded.
type Violations map[string][]string

// Merge appends every message of src after the messages v already holds for
// the same path. Paths missing from v are added.
func (v Violations) Merge(src Violations) {
	if v == nil || len(src) == 0 {
		return
	}
	nonEmpty := make(Violations, len(src))
	for path, msgs := range src {
		if len(msgs) > 0 {
			nonEmpty[path] = slices.Clone(msgs)
		}
	}
	if err := appendMessages(v, nonEmpty); err != nil {
		panic(fmt.Errorf("fieldcheck: merge violations: %w", err))
	}
}

// appendMessages appends the messages of src to dst path by path.
func appendMessages(dst, src Violations) error {
	return mergo.Merge(&dst, src, mergo.WithAppendSlice)
}

// Paths returns the violated paths in lexical order.
func (v Violations) Paths() []string {
	return slices.Sorted(maps.Keys(v))
}

// Clone returns a deep copy of v.
func (v Violations) Clone() Violations {
	if v == nil {
		return nil
	}
	out := make(Violations, len(v))
	for path, msgs := range v {
		out[path] = slices.Clone(msgs)
	}
	return out
}

// Store accumulates violations for one validation session. It remembers the
// order in which paths were first recorded. A Store is not safe for
// concurrent use.
type Store struct {
	paths   []string
	entries Violations
}

// NewStore returns an empty store.
func NewStore() *Store {
	return &Store{entries: make(Violations)}
}

// Add appends message at path.
func (s *Store) Add(path, message string) {
	if _, ok := s.entries[path]; !ok {
		s.paths = append(s.paths, path)
	}
	s.entries[path] = append(s.entries[path], message)
}

// Len returns the number of violated paths.
func (s *Store) Len() int {
	return len(s.entries)
}

// IsEmpty reports whether no violation has been recorded.
func (s *Store) IsEmpty() bool {
	return len(s.entries) == 0
}

// Paths returns the violated paths in the order they were first recorded.
func (s *Store) Paths() []string {
	return slices.Clone(s.paths)
}

// Messages returns the messages recorded at path.
func (s *Store) Messages(path string) []string {
	return slices.Clone(s.entries[path])
}

// Merge folds other into s. Merging a store into itself is a no-op, which is
// the common case for descendants sharing their parent's store.
func (s *Store) Merge(other *Store) {
	if other == nil || other == s {
		return
	}
	s.merge(other.paths, other.entries)
}

// MergeViolations folds a detached report into s. New paths are recorded in
// lexical order.
func (s *Store) MergeViolations(v Violations) {
	s.merge(v.Paths(), v)
}

func (s *Store) merge(order []string, src Violations) {
	for _, path := range order {
		if _, ok := s.entries[path]; !ok && len(src[path]) > 0 {
			s.paths = append(s.paths, path)
		}
	}
	s.entries.Merge(src)
}

// Violations returns a copy of the recorded violations.
func (s *Store) Violations() Violations {
	return s.entries.Clone()
}
