package predicate

import "slices"

// Numeric is satisfied by every integer and float type.
type Numeric interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64
}

// Between returns a predicate requiring min <= n <= max.
func Between[N Numeric](min, max N) func(N) bool {
	return func(n N) bool {
		return n >= min && n <= max
	}
}

// Positive reports whether n is greater than zero.
func Positive[N Numeric](n N) bool {
	return n > 0
}

// OneOf returns a predicate requiring its input to equal one of allowed.
func OneOf[C comparable](allowed ...C) func(C) bool {
	return func(c C) bool {
		return slices.Contains(allowed, c)
	}
}

// NoneOf returns a predicate rejecting every value in forbidden.
func NoneOf[C comparable](forbidden ...C) func(C) bool {
	return func(c C) bool {
		return !slices.Contains(forbidden, c)
	}
}

// Unique reports whether items holds no duplicates.
func Unique[C comparable](items []C) bool {
	seen := make(map[C]struct{}, len(items))
	for _, item := range items {
		if _, ok := seen[item]; ok {
			return false
		}
		seen[item] = struct{}{}
	}
	return true
}
