package subject

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/goccy/go-yaml"
)

// Wire form: integers, decimals, booleans, strings, arrays, and maps use
// their natural JSON/YAML shapes; the remaining kinds encode as objects
// carrying a "$kind" discriminator so they survive a round trip.
const kindKey = "$kind"

func (v Value) toWire() any {
	switch v.Kind {
	case IntegerKind:
		return v.Int64
	case DecimalKind:
		return v.Float64
	case BooleanKind:
		return v.Bool
	case StringKind:
		return v.Text
	case SymbolKind:
		return map[string]any{kindKey: "symbol", "value": v.Text}
	case TaggedKind:
		return map[string]any{kindKey: "tagged", "tag": v.Tag, "content": v.Text}
	case ArrayKind:
		arr := make([]any, len(v.Values))
		for i, item := range v.Values {
			arr[i] = item.toWire()
		}
		return arr
	case MapKind:
		m := make(map[string]any, len(v.Fields))
		for k, item := range v.Fields {
			m[k] = item.toWire()
		}
		return m
	case RangeKind:
		m := map[string]any{kindKey: "range"}
		if v.Lower != nil {
			m["lower"] = *v.Lower
		}
		if v.Upper != nil {
			m["upper"] = *v.Upper
		}
		return m
	case MeasurementKind:
		return map[string]any{kindKey: "measurement", "unit": v.Unit, "value": v.Float64}
	}
	return nil
}

func valueFromWire(x any) (Value, error) {
	switch t := x.(type) {
	case bool:
		return FromBool(t), nil
	case string:
		return FromString(t), nil
	case int:
		return FromInt(int64(t)), nil
	case int64:
		return FromInt(t), nil
	case uint64:
		return FromInt(int64(t)), nil
	case float64:
		return FromFloat(t), nil
	case json.Number:
		if i, err := t.Int64(); err == nil {
			return FromInt(i), nil
		}
		f, err := t.Float64()
		if err != nil {
			return Value{}, fmt.Errorf("bad number %q: %w", t.String(), err)
		}
		return FromFloat(f), nil
	case []any:
		vs := make([]Value, len(t))
		for i, item := range t {
			v, err := valueFromWire(item)
			if err != nil {
				return Value{}, err
			}
			vs[i] = v
		}
		return FromArray(vs...), nil
	case map[string]any:
		if kind, ok := t[kindKey].(string); ok {
			return taggedFromWire(kind, t)
		}
		fields := make(map[string]Value, len(t))
		for k, item := range t {
			v, err := valueFromWire(item)
			if err != nil {
				return Value{}, err
			}
			fields[k] = v
		}
		return FromMap(fields), nil
	case nil:
		return Value{}, fmt.Errorf("null is not a valid property value")
	}
	return Value{}, fmt.Errorf("unsupported wire value of type %T", x)
}

func taggedFromWire(kind string, m map[string]any) (Value, error) {
	switch kind {
	case "symbol":
		s, _ := m["value"].(string)
		return FromSymbol(s), nil
	case "tagged":
		tag, _ := m["tag"].(string)
		content, _ := m["content"].(string)
		return FromTagged(tag, content), nil
	case "range":
		lower, err := wireBound(m, "lower")
		if err != nil {
			return Value{}, err
		}
		upper, err := wireBound(m, "upper")
		if err != nil {
			return Value{}, err
		}
		return FromRange(lower, upper), nil
	case "measurement":
		unit, _ := m["unit"].(string)
		v, err := wireFloat(m["value"])
		if err != nil {
			return Value{}, fmt.Errorf("measurement value: %w", err)
		}
		return FromMeasurement(unit, v), nil
	}
	return Value{}, fmt.Errorf("unknown %s %q", kindKey, kind)
}

func wireBound(m map[string]any, key string) (*float64, error) {
	x, ok := m[key]
	if !ok || x == nil {
		return nil, nil
	}
	f, err := wireFloat(x)
	if err != nil {
		return nil, fmt.Errorf("range %s: %w", key, err)
	}
	return &f, nil
}

func wireFloat(x any) (float64, error) {
	switch t := x.(type) {
	case float64:
		return t, nil
	case int:
		return float64(t), nil
	case int64:
		return float64(t), nil
	case uint64:
		return float64(t), nil
	case json.Number:
		return t.Float64()
	}
	return 0, fmt.Errorf("not a number: %v (%T)", x, x)
}

// MarshalJSON encodes the value in wire form.
func (v Value) MarshalJSON() ([]byte, error) {
	return json.Marshal(v.toWire())
}

// UnmarshalJSON decodes a value from wire form. Numbers without a fraction
// decode as integers.
func (v *Value) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	var x any
	if err := dec.Decode(&x); err != nil {
		return err
	}
	got, err := valueFromWire(x)
	if err != nil {
		return err
	}
	*v = got
	return nil
}

// MarshalYAML encodes the value in wire form.
func (v Value) MarshalYAML() (any, error) {
	return v.toWire(), nil
}

// UnmarshalYAML decodes a value from wire form.
func (v *Value) UnmarshalYAML(data []byte) error {
	var x any
	if err := yaml.Unmarshal(data, &x); err != nil {
		return err
	}
	got, err := valueFromWire(x)
	if err != nil {
		return err
	}
	*v = got
	return nil
}
