package fieldcheck

import (
	"fmt"
	"strings"
)

// Validator runs checks against a bound value and records every failure in a
// store shared by the whole validation session.
//
// A Validator is built with Of, driven through a chain of checks and
// descents, and finished with HasViolations, FullErrorMessage, OrElse or Err.
type Validator[T any] struct {
	value       T
	present     bool
	prefix      string
	description string
	store       *Store
}

// Of starts a validation session for value.
func Of[T any](value T) *Validator[T] {
	return &Validator[T]{
		value:   value,
		present: !isNil(value),
		store:   NewStore(),
	}
}

// descendant binds value to path within the session that owns store.
// The description is copied, so later Description calls on the parent do not
// reach it.
func descendant[B any](value B, path, description string, store *Store) *Validator[B] {
	return &Validator[B]{
		value:       value,
		present:     true,
		prefix:      path + ".",
		description: description,
		store:       store,
	}
}

// Description sets the label prepended to FullErrorMessage.
// Descendants created before the call keep the previous description.
func (v *Validator[T]) Description(text string) *Validator[T] {
	v.description = text
	return v
}

// Validate records message at fieldPath when predicate does not hold for the
// bound value. A panicking predicate counts as not holding. Nothing is checked
// when the bound value is absent.
func (v *Validator[T]) Validate(fieldPath, message string, predicate func(T) bool) *Validator[T] {
	if !v.present {
		return v
	}
	if !evaluate(v.value, predicate).passed {
		v.store.Add(v.path(fieldPath), message)
	}
	return v
}

// Merge folds violations recorded by an independent session into this one.
func (v *Validator[T]) Merge(other Violations) *Validator[T] {
	v.store.MergeViolations(other)
	return v
}

// HasViolations reports whether any check failed in this session.
func (v *Validator[T]) HasViolations() bool {
	return !v.store.IsEmpty()
}

// Violations returns a copy of the violations recorded in this session.
func (v *Validator[T]) Violations() Violations {
	return v.store.Violations()
}

// FullErrorMessage renders all violations as the description followed by a
// bracketed, comma separated list of "<path> <message>" items. Paths appear in
// the order they were first recorded. It returns "" when there are none.
func (v *Validator[T]) FullErrorMessage() string {
	if !v.HasViolations() {
		return ""
	}
	var items []string
	for _, path := range v.store.paths {
		for _, msg := range v.store.entries[path] {
			items = append(items, fmt.Sprintf("%s %s", path, msg))
		}
	}
	return v.description + bracketed(items)
}

// OrElse returns the error built by factory from FullErrorMessage, or nil when
// there are no violations. A nil factory, or one that returns nil, yields an
// error wrapping ErrValidationFailed.
func (v *Validator[T]) OrElse(factory func(message string) error) error {
	if !v.HasViolations() {
		return nil
	}
	msg := v.FullErrorMessage()
	if factory != nil {
		if err := factory(msg); err != nil {
			return err
		}
	}
	return fmt.Errorf("%w: %s", ErrValidationFailed, msg)
}

// Err returns an *Error carrying the recorded violations, or nil when there
// are none.
func (v *Validator[T]) Err() error {
	if !v.HasViolations() {
		return nil
	}
	return NewError(v.store.Violations())
}

func (v *Validator[T]) path(fieldPath string) string {
	return v.prefix + fieldPath
}

func bracketed(items []string) string {
	return "[" + strings.Join(items, ", ") + "]"
}
