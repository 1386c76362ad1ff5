package pattern

// Fold visits values in pre-order (this value first, then each element's
// subtree left to right), threading the accumulator through combine.
func Fold[V, A any](p Pattern[V], init A, combine func(A, V) A) A {
	acc := combine(init, p.Value)
	for _, e := range p.Elements {
		acc = Fold(e, acc, combine)
	}
	return acc
}

// Size returns the total node count: 1 plus the sizes of all elements.
func (p Pattern[V]) Size() int {
	n := 1
	for _, e := range p.Elements {
		n += e.Size()
	}
	return n
}

// Depth returns 0 for an atomic pattern, otherwise 1 plus the maximum
// element depth.
func (p Pattern[V]) Depth() int {
	d := 0
	for _, e := range p.Elements {
		if ed := e.Depth() + 1; ed > d {
			d = ed
		}
	}
	return d
}

// Values returns every value in pre-order. The result has length Size().
func (p Pattern[V]) Values() []V {
	return p.appendValues(make([]V, 0, p.Size()))
}

func (p Pattern[V]) appendValues(vs []V) []V {
	vs = append(vs, p.Value)
	for _, e := range p.Elements {
		vs = e.appendValues(vs)
	}
	return vs
}

// AnyValue reports whether at least one value satisfies pred. Evaluation
// stops at the first match.
func (p Pattern[V]) AnyValue(pred func(V) bool) bool {
	if pred(p.Value) {
		return true
	}
	for _, e := range p.Elements {
		if e.AnyValue(pred) {
			return true
		}
	}
	return false
}

// AllValues reports whether every value satisfies pred. Evaluation stops at
// the first failure.
func (p Pattern[V]) AllValues(pred func(V) bool) bool {
	if !pred(p.Value) {
		return false
	}
	for _, e := range p.Elements {
		if !e.AllValues(pred) {
			return false
		}
	}
	return true
}

// Filter returns every subpattern (the root included) satisfying pred, in
// pre-order. Every node is visited; there is no short-circuit.
func (p Pattern[V]) Filter(pred func(Pattern[V]) bool) []Pattern[V] {
	var res []Pattern[V]
	p.filterInto(pred, &res)
	return res
}

func (p Pattern[V]) filterInto(pred func(Pattern[V]) bool, res *[]Pattern[V]) {
	if pred(p) {
		*res = append(*res, p)
	}
	for _, e := range p.Elements {
		e.filterInto(pred, res)
	}
}

// FindFirst returns the first subpattern in pre-order satisfying pred.
func (p Pattern[V]) FindFirst(pred func(Pattern[V]) bool) (Pattern[V], bool) {
	if pred(p) {
		return p, true
	}
	for _, e := range p.Elements {
		if found, ok := e.FindFirst(pred); ok {
			return found, true
		}
	}
	return Pattern[V]{}, false
}

// MatchesFunc reports whether p and other have identical structure and
// pairwise equal values under eq.
func (p Pattern[V]) MatchesFunc(other Pattern[V], eq func(V, V) bool) bool {
	return EqualFunc(p, other, eq)
}

// ContainsFunc reports whether other occurs as a subpattern of p under eq.
func (p Pattern[V]) ContainsFunc(other Pattern[V], eq func(V, V) bool) bool {
	if p.MatchesFunc(other, eq) {
		return true
	}
	for _, e := range p.Elements {
		if e.ContainsFunc(other, eq) {
			return true
		}
	}
	return false
}
