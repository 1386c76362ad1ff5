package subject

import (
	"fmt"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"

	"github.com/relateby/pattern-go/debug"
)

// CompilePredicate compiles a boolean expression over a subject into a
// predicate suitable for AnyValue, AllValues, and Filter. The expression
// sees three identifiers:
//
//   - identity: the identity symbol as a string
//   - labels: a map from label to true, so `labels.Person` and
//     `"Person" in labels` both work
//   - properties: the property record with natural payloads
//     (integers, floats, booleans, strings, arrays, maps)
//
// A runtime evaluation error makes the predicate return false for that
// subject.
func CompilePredicate(src string) (func(Subject) bool, error) {
	program, err := expr.Compile(src, expr.AsBool())
	if err != nil {
		return nil, fmt.Errorf("compile predicate %q: %w", src, err)
	}
	return func(s Subject) bool {
		out, err := vm.Run(program, predicateEnv(s))
		if err != nil {
			if debug.Predicate() {
				debug.Logf("predicate %q on %s: %v\n", src, s, err)
			}
			return false
		}
		b, ok := out.(bool)
		return ok && b
	}, nil
}

func predicateEnv(s Subject) map[string]any {
	labels := make(map[string]bool, len(s.Labels))
	for l := range s.Labels {
		labels[l] = true
	}
	props := make(map[string]any, len(s.Properties))
	for k, v := range s.Properties {
		props[k] = envValue(v)
	}
	return map[string]any{
		"identity":   string(s.Identity),
		"labels":     labels,
		"properties": props,
	}
}

// envValue exposes a property value to expressions with natural payloads.
func envValue(v Value) any {
	switch v.Kind {
	case IntegerKind:
		return v.Int64
	case DecimalKind:
		return v.Float64
	case BooleanKind:
		return v.Bool
	case StringKind, SymbolKind:
		return v.Text
	case TaggedKind:
		return map[string]any{"tag": v.Tag, "content": v.Text}
	case ArrayKind:
		arr := make([]any, len(v.Values))
		for i, item := range v.Values {
			arr[i] = envValue(item)
		}
		return arr
	case MapKind:
		m := make(map[string]any, len(v.Fields))
		for k, item := range v.Fields {
			m[k] = envValue(item)
		}
		return m
	case RangeKind:
		m := map[string]any{}
		if v.Lower != nil {
			m["lower"] = *v.Lower
		}
		if v.Upper != nil {
			m["upper"] = *v.Upper
		}
		return m
	case MeasurementKind:
		return map[string]any{"unit": v.Unit, "value": v.Float64}
	}
	return nil
}
