package pattern

// Extract returns the decoration at the current position.
func (p Pattern[V]) Extract() V {
	return p.Value
}

// Extend computes a new decoration at every position from the full
// subpattern rooted there, preserving shape. Together with Extract it
// satisfies the comonad laws: Extend(p, f).Extract() == f(p) and
// Extend(p, Pattern[V].Extract) is identical to p.
func Extend[V, W any](p Pattern[V], f func(Pattern[V]) W) Pattern[W] {
	res := Pattern[W]{Value: f(p)}
	if len(p.Elements) == 0 {
		return res
	}
	res.Elements = make([]Pattern[W], len(p.Elements))
	for i, e := range p.Elements {
		res.Elements[i] = Extend(e, f)
	}
	return res
}

// DepthAt decorates every position with the depth of its subtree.
func DepthAt[V any](p Pattern[V]) Pattern[int] {
	return Extend(p, func(sp Pattern[V]) int { return sp.Depth() })
}

// SizeAt decorates every position with the node count of its subtree.
func SizeAt[V any](p Pattern[V]) Pattern[int] {
	return Extend(p, func(sp Pattern[V]) int { return sp.Size() })
}

// IndicesAt decorates every position with its element-index path from the
// root. The root path is empty.
func IndicesAt[V any](p Pattern[V]) Pattern[[]int] {
	return indicesAt(p, nil)
}

func indicesAt[V any](p Pattern[V], path []int) Pattern[[]int] {
	here := make([]int, len(path))
	copy(here, path)
	res := Pattern[[]int]{Value: here}
	if len(p.Elements) == 0 {
		return res
	}
	res.Elements = make([]Pattern[[]int], len(p.Elements))
	for i, e := range p.Elements {
		res.Elements[i] = indicesAt(e, append(path, i))
	}
	return res
}
