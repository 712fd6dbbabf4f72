package fieldcheck

import "strconv"

// Map descends into the value returned by extractor and hands a Validator
// bound to it to fn. Paths recorded by that Validator are prefixed with
// fieldPath and a dot. When the nested value is absent, or the extractor
// panics, Map records a NonNull violation at fieldPath instead.
//
// Map is a function rather than a method because methods cannot introduce
// the type parameter B.
func Map[T, B any](v *Validator[T], fieldPath string, extractor func(T) B, fn func(*Validator[B])) *Validator[T] {
	if !v.present {
		return v
	}
	res := extract(v.value, extractor)
	if !res.present {
		return v.NonNull(fieldPath, func(t T) any { return extractor(t) })
	}

	child := descendant(res.value, v.path(fieldPath), v.description, v.store)
	if fn != nil {
		fn(child)
	}
	v.store.Merge(child.store)
	return v
}

// MapEach descends into every element of the slice returned by extractor.
// Element i is validated under "fieldPath[i]". A nil slice is reported as by
// NonNull at fieldPath; a nil element as NonNull at its indexed path.
func MapEach[T, B any](v *Validator[T], fieldPath string, extractor func(T) []B, fn func(*Validator[B])) *Validator[T] {
	if !v.present {
		return v
	}
	res := extract(v.value, extractor)
	if !res.present {
		return v.NonNull(fieldPath, func(t T) any { return extractor(t) })
	}

	for i, item := range res.value {
		itemPath := fieldPath + "[" + strconv.Itoa(i) + "]"
		Map(v, itemPath, func(T) B { return item }, fn)
	}
	return v
}
