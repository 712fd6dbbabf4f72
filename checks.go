package fieldcheck

import (
	"fmt"
	"reflect"
)

// Messages recorded by the built-in checks.
const (
	MsgMustNotBeNull  = "must not be NULL"
	MsgMustBeNull     = "must be NULL"
	MsgMustNotBeEmpty = "must not be EMPTY"
	MsgNotAllowed     = "is not allowed"
	MsgZeroOrNull     = "must be 0 or NULL"

	msgNotEquals    = "doesn't equal to '%v'"
	msgNotEqualsAny = "actual value `%v` is not equal to any item of %s"
	msgSize         = "must contain only <%d> object(s)"

	nullText = "null"
)

// NonNull requires the extracted field to be present.
func (v *Validator[T]) NonNull(fieldPath string, extractor func(T) any) *Validator[T] {
	return v.Validate(fieldPath, MsgMustNotBeNull, func(t T) bool {
		return extract(t, extractor).present
	})
}

// IsNull requires the extracted field to be absent.
func (v *Validator[T]) IsNull(fieldPath string, extractor func(T) any) *Validator[T] {
	return v.Validate(fieldPath, MsgMustBeNull, func(t T) bool {
		return !extract(t, extractor).present
	})
}

// StringNotEmpty requires the extracted string to be non-empty. An extractor
// that panics counts as an empty string.
func (v *Validator[T]) StringNotEmpty(fieldPath string, extractor func(T) string) *Validator[T] {
	return v.Validate(fieldPath, MsgMustNotBeEmpty, func(t T) bool {
		res := extract(t, extractor)
		return res.present && res.value != ""
	})
}

// Equals requires the extracted field to equal expected. Two absent values
// are equal; otherwise values are compared with reflect.DeepEqual, so the
// dynamic types must match.
func (v *Validator[T]) Equals(fieldPath string, expected any, extractor func(T) any) *Validator[T] {
	msg := fmt.Sprintf(msgNotEquals, expected)
	return v.Validate(fieldPath, msg, func(t T) bool {
		res := extract(t, extractor)
		return equal(expected, res.value, res.present)
	})
}

// EqualsAny requires the extracted field to equal one of candidates.
func (v *Validator[T]) EqualsAny(fieldPath string, extractor func(T) any, candidates ...any) *Validator[T] {
	res := extract(v.value, extractor)
	actual := any(nullText)
	if res.present {
		actual = res.value
	}
	msg := fmt.Sprintf(msgNotEqualsAny, actual, formatList(candidates))
	return v.Validate(fieldPath, msg, func(T) bool {
		for _, c := range candidates {
			if equal(c, res.value, res.present) {
				return true
			}
		}
		return false
	})
}

// IsZeroOrNull fails only when the extracted field is a non-zero number.
// An absent field passes. A present field that is not a number fails.
func (v *Validator[T]) IsZeroOrNull(fieldPath string, extractor func(T) any) *Validator[T] {
	res := extract(v.value, extractor)
	if !res.present {
		return v
	}
	return v.Validate(fieldPath, MsgZeroOrNull, func(T) bool {
		return isZeroNumber(res.value)
	})
}

// SizeEquals requires the extracted container to hold exactly expected
// elements. An absent container is reported as by NonNull.
func (v *Validator[T]) SizeEquals(fieldPath string, expected int, extractor func(T) any) *Validator[T] {
	res := extract(v.value, extractor)
	if !res.present {
		return v.NonNull(fieldPath, extractor)
	}
	return v.Validate(fieldPath, fmt.Sprintf(msgSize, expected), func(T) bool {
		return length(res.value) == expected
	})
}

// CollectionIsNotEmpty requires the extracted container to hold at least one
// element. An absent container is reported as by NonNull.
func (v *Validator[T]) CollectionIsNotEmpty(fieldPath string, extractor func(T) any) *Validator[T] {
	res := extract(v.value, extractor)
	if !res.present {
		return v.NonNull(fieldPath, extractor)
	}
	return v.Validate(fieldPath, MsgMustNotBeEmpty, func(T) bool {
		return length(res.value) > 0
	})
}

// CollectionIsEmpty rejects a non-empty container. An absent container passes.
func (v *Validator[T]) CollectionIsEmpty(fieldPath string, extractor func(T) any) *Validator[T] {
	res := extract(v.value, extractor)
	if !res.present {
		return v
	}
	return v.Validate(fieldPath, MsgNotAllowed, func(T) bool {
		return length(res.value) == 0
	})
}

func equal(expected, actual any, present bool) bool {
	if isNil(expected) || !present {
		return isNil(expected) && !present
	}
	return reflect.DeepEqual(expected, actual)
}

// length panics for values without a length; callers evaluate it inside a
// predicate.
func length(v any) int {
	return reflect.ValueOf(v).Len()
}

func isZeroNumber(v any) bool {
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return rv.Int() == 0
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return rv.Uint() == 0
	case reflect.Float32, reflect.Float64:
		return rv.Float() == 0
	case reflect.Pointer:
		return isZeroNumber(rv.Elem().Interface())
	}
	return false
}

func formatList(items []any) string {
	out := make([]string, len(items))
	for i, item := range items {
		if isNil(item) {
			out[i] = nullText
			continue
		}
		out[i] = fmt.Sprint(item)
	}
	return bracketed(out)
}
