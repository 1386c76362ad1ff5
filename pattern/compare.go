package pattern

import "cmp"

// Equal reports whether a and b are structurally equal: equal values, equal
// element counts, and pairwise equal elements.
func Equal[V comparable](a, b Pattern[V]) bool {
	return EqualFunc(a, b, func(x, y V) bool { return x == y })
}

// EqualFunc is Equal with value equality supplied by eq.
func EqualFunc[V any](a, b Pattern[V], eq func(V, V) bool) bool {
	if !eq(a.Value, b.Value) {
		return false
	}
	if len(a.Elements) != len(b.Elements) {
		return false
	}
	for i := range a.Elements {
		if !EqualFunc(a.Elements[i], b.Elements[i], eq) {
			return false
		}
	}
	return true
}

// Compare returns an integer comparing two patterns.
// The result will be 0 if a==b, -1 if a < b, and +1 if a > b.
//
// Values are compared first; if they differ, that result is the answer.
// Otherwise element sequences are compared lexicographically, with the
// shorter prefix-equal sequence ordered first.
func Compare[V cmp.Ordered](a, b Pattern[V]) int {
	return CompareFunc(a, b, cmp.Compare[V])
}

// CompareFunc is Compare with value ordering supplied by compare.
func CompareFunc[V any](a, b Pattern[V], compare func(V, V) int) int {
	if c := compare(a.Value, b.Value); c != 0 {
		return c
	}
	minLen := min(len(a.Elements), len(b.Elements))
	for i := 0; i < minLen; i++ {
		if c := CompareFunc(a.Elements[i], b.Elements[i], compare); c != 0 {
			return c
		}
	}
	return cmp.Compare(len(a.Elements), len(b.Elements))
}
