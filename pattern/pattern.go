package pattern

// Pattern is a recursive decorated sequence: one value plus an ordered
// sequence of element patterns. An empty element sequence makes the pattern
// atomic.
type Pattern[V any] struct {
	Value    V
	Elements []Pattern[V]
}

// Point returns an atomic pattern holding v.
func Point[V any](v V) Pattern[V] {
	return Pattern[V]{Value: v}
}

// New returns a composite pattern with the given value and elements.
func New[V any](v V, elements []Pattern[V]) Pattern[V] {
	return Pattern[V]{Value: v, Elements: elements}
}

// Of returns a composite pattern from a value and variadic elements.
func Of[V any](v V, elements ...Pattern[V]) Pattern[V] {
	return Pattern[V]{Value: v, Elements: elements}
}

// FromValues returns a pattern whose root holds v and whose elements are
// atomic points holding each of values in order.
func FromValues[V any](v V, values ...V) Pattern[V] {
	if len(values) == 0 {
		return Point(v)
	}
	elems := make([]Pattern[V], len(values))
	for i, ev := range values {
		elems[i] = Point(ev)
	}
	return Pattern[V]{Value: v, Elements: elems}
}

// IsAtomic reports whether the pattern has no elements.
func (p Pattern[V]) IsAtomic() bool {
	return len(p.Elements) == 0
}

// Length returns the number of direct elements, not recursive.
func (p Pattern[V]) Length() int {
	return len(p.Elements)
}

// Clone returns a deep copy whose element slices share nothing with p.
// The values themselves are copied by assignment.
func (p Pattern[V]) Clone() Pattern[V] {
	res := Pattern[V]{Value: p.Value}
	if len(p.Elements) == 0 {
		return res
	}
	res.Elements = make([]Pattern[V], len(p.Elements))
	for i, e := range p.Elements {
		res.Elements[i] = e.Clone()
	}
	return res
}
