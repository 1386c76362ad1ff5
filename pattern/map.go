package pattern

// Map applies f to every value in pre-order and rebuilds a pattern with
// identical shape. f must be total; Map cannot fail.
func Map[V, W any](p Pattern[V], f func(V) W) Pattern[W] {
	res := Pattern[W]{Value: f(p.Value)}
	if len(p.Elements) == 0 {
		return res
	}
	res.Elements = make([]Pattern[W], len(p.Elements))
	for i, e := range p.Elements {
		res.Elements[i] = Map(e, f)
	}
	return res
}
