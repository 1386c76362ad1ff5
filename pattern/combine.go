package pattern

// Combine merges two patterns: values are combined with cv and element lists
// are concatenated, a's elements first. When cv is associative, Combine is
// associative over patterns.
func Combine[V any](a, b Pattern[V], cv func(V, V) V) Pattern[V] {
	res := Pattern[V]{Value: cv(a.Value, b.Value)}
	if len(a.Elements)+len(b.Elements) == 0 {
		return res
	}
	res.Elements = make([]Pattern[V], 0, len(a.Elements)+len(b.Elements))
	res.Elements = append(res.Elements, a.Elements...)
	res.Elements = append(res.Elements, b.Elements...)
	return res
}

// ZipWith pairs patterns from left and right pointwise, building for each
// pair a pattern whose value is computed by f and whose elements are the
// pair. The result has min(len(left), len(right)) patterns.
func ZipWith[V any](left, right []Pattern[V], f func(Pattern[V], Pattern[V]) V) []Pattern[V] {
	n := min(len(left), len(right))
	res := make([]Pattern[V], 0, n)
	for i := 0; i < n; i++ {
		res = append(res, Pattern[V]{
			Value:    f(left[i], right[i]),
			Elements: []Pattern[V]{left[i], right[i]},
		})
	}
	return res
}

// Zip3 pairs patterns from left and right pointwise with values, building
// for each triple a pattern with the given value and elements [left, right].
func Zip3[V any](left, right []Pattern[V], values []V) []Pattern[V] {
	n := min(len(left), min(len(right), len(values)))
	res := make([]Pattern[V], 0, n)
	for i := 0; i < n; i++ {
		res = append(res, Pattern[V]{
			Value:    values[i],
			Elements: []Pattern[V]{left[i], right[i]},
		})
	}
	return res
}
