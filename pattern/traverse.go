package pattern

import "context"

// TraverseOption applies f to every value in traversal order, rebuilding a
// pattern with identical shape. If any application reports absence the whole
// traversal reports absence immediately; no later value is visited.
func TraverseOption[V, W any](p Pattern[V], f func(V) (W, bool)) (Pattern[W], bool) {
	v, ok := f(p.Value)
	if !ok {
		return Pattern[W]{}, false
	}
	res := Pattern[W]{Value: v}
	if len(p.Elements) == 0 {
		return res, true
	}
	res.Elements = make([]Pattern[W], len(p.Elements))
	for i, e := range p.Elements {
		ew, ok := TraverseOption(e, f)
		if !ok {
			return Pattern[W]{}, false
		}
		res.Elements[i] = ew
	}
	return res, true
}

// TraverseResult applies f to every value in traversal order, rebuilding a
// pattern with identical shape. The first error stops the traversal and is
// returned unwrapped; no later value is visited.
func TraverseResult[V, W any](p Pattern[V], f func(V) (W, error)) (Pattern[W], error) {
	v, err := f(p.Value)
	if err != nil {
		return Pattern[W]{}, err
	}
	res := Pattern[W]{Value: v}
	if len(p.Elements) == 0 {
		return res, nil
	}
	res.Elements = make([]Pattern[W], len(p.Elements))
	for i, e := range p.Elements {
		ew, err := TraverseResult(e, f)
		if err != nil {
			return Pattern[W]{}, err
		}
		res.Elements[i] = ew
	}
	return res, nil
}

// ValidateAll applies f to every value regardless of earlier failures,
// collecting all errors in traversal order, root first. The rebuilt pattern
// is returned only when the error list is empty.
//
// ValidateAll is the error-accumulating traversal; structural limit checking
// is a separate concern, see CheckLimits.
func ValidateAll[V, W any](p Pattern[V], f func(V) (W, error)) (Pattern[W], []error) {
	var errs []error
	res := validateAll(p, f, &errs)
	if len(errs) > 0 {
		return Pattern[W]{}, errs
	}
	return res, nil
}

func validateAll[V, W any](p Pattern[V], f func(V) (W, error), errs *[]error) Pattern[W] {
	v, err := f(p.Value)
	if err != nil {
		*errs = append(*errs, err)
	}
	res := Pattern[W]{Value: v}
	if len(p.Elements) == 0 {
		return res
	}
	res.Elements = make([]Pattern[W], len(p.Elements))
	for i, e := range p.Elements {
		res.Elements[i] = validateAll(e, f, errs)
	}
	return res
}

// TraverseContext applies f to every value strictly in traversal order, one
// blocking call at a time, never concurrently. The first error stops the
// traversal exactly as in TraverseResult. Context cancellation is checked
// before each application.
func TraverseContext[V, W any](ctx context.Context, p Pattern[V], f func(context.Context, V) (W, error)) (Pattern[W], error) {
	if err := ctx.Err(); err != nil {
		return Pattern[W]{}, err
	}
	v, err := f(ctx, p.Value)
	if err != nil {
		return Pattern[W]{}, err
	}
	res := Pattern[W]{Value: v}
	if len(p.Elements) == 0 {
		return res, nil
	}
	res.Elements = make([]Pattern[W], len(p.Elements))
	for i, e := range p.Elements {
		ew, err := TraverseContext(ctx, e, f)
		if err != nil {
			return Pattern[W]{}, err
		}
		res.Elements[i] = ew
	}
	return res, nil
}

// Checked pairs a value with the error produced while obtaining it. It is
// the element type for SequenceResult.
type Checked[W any] struct {
	Value W
	Err   error
}

// SequenceOption flips a pattern of optional values (nil meaning absent)
// into an optional pattern, with TraverseOption's short-circuit rule.
func SequenceOption[W any](p Pattern[*W]) (Pattern[W], bool) {
	return TraverseOption(p, func(v *W) (W, bool) {
		if v == nil {
			var zero W
			return zero, false
		}
		return *v, true
	})
}

// SequenceResult flips a pattern of checked values into a checked pattern,
// with TraverseResult's fail-fast rule.
func SequenceResult[W any](p Pattern[Checked[W]]) (Pattern[W], error) {
	return TraverseResult(p, func(c Checked[W]) (W, error) {
		return c.Value, c.Err
	})
}
