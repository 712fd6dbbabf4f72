package fieldcheck

import (
	"fmt"
	"reflect"
)

// extracted is the outcome of running a caller-supplied extractor.
// present is false when the extractor panicked or returned a nil value.
type extracted[B any] struct {
	value   B
	present bool
	err     error
}

// evaluation is the outcome of running a caller-supplied predicate.
// passed is false when the predicate returned false or panicked.
type evaluation struct {
	passed bool
	err    error
}

// extract applies fn to value and converts any panic into an absent result.
func extract[T, B any](value T, fn func(T) B) (res extracted[B]) {
	defer func() {
		if r := recover(); r != nil {
			var zero B
			res = extracted[B]{value: zero, err: recovered(r)}
		}
	}()

	v := fn(value)
	return extracted[B]{value: v, present: !isNil(v)}
}

// evaluate applies fn to value and converts any panic into a failed result.
func evaluate[T any](value T, fn func(T) bool) (res evaluation) {
	defer func() {
		if r := recover(); r != nil {
			res = evaluation{err: recovered(r)}
		}
	}()

	return evaluation{passed: fn(value)}
}

func recovered(r any) error {
	if err, ok := r.(error); ok {
		return err
	}
	return fmt.Errorf("%v", r)
}

// isNil reports whether v is a nil interface or a typed nil of a nilable kind.
func isNil(v any) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Interface, reflect.Func, reflect.Chan:
		return rv.IsNil()
	}
	return false
}
