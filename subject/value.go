package subject

import (
	"cmp"
	"fmt"
	"maps"
	"slices"
	"strconv"
	"strings"
)

// Kind discriminates the payload of a Value.
type Kind int

const (
	InvalidKind Kind = iota
	IntegerKind
	DecimalKind
	BooleanKind
	StringKind
	SymbolKind
	TaggedKind
	ArrayKind
	MapKind
	RangeKind
	MeasurementKind
)

func (k Kind) String() string {
	switch k {
	case IntegerKind:
		return "integer"
	case DecimalKind:
		return "decimal"
	case BooleanKind:
		return "boolean"
	case StringKind:
		return "string"
	case SymbolKind:
		return "symbol"
	case TaggedKind:
		return "tagged"
	case ArrayKind:
		return "array"
	case MapKind:
		return "map"
	case RangeKind:
		return "range"
	case MeasurementKind:
		return "measurement"
	}
	return "invalid"
}

// Value is a typed property value. It works as a tagged union: the payload
// field in use depends on Kind.
//
//   - IntegerKind: Int64
//   - DecimalKind: Float64
//   - BooleanKind: Bool
//   - StringKind, SymbolKind: Text
//   - TaggedKind: Tag and Text
//   - ArrayKind: Values
//   - MapKind: Fields
//   - RangeKind: Lower and Upper, nil meaning unbounded
//   - MeasurementKind: Unit and Float64
type Value struct {
	Kind Kind

	Int64   int64
	Float64 float64
	Bool    bool
	Text    string
	Tag     string
	Unit    string
	Values  []Value
	Fields  map[string]Value
	Lower   *float64
	Upper   *float64
}

func FromInt(v int64) Value {
	return Value{Kind: IntegerKind, Int64: v}
}

func FromFloat(v float64) Value {
	return Value{Kind: DecimalKind, Float64: v}
}

func FromBool(v bool) Value {
	return Value{Kind: BooleanKind, Bool: v}
}

func FromString(v string) Value {
	return Value{Kind: StringKind, Text: v}
}

func FromSymbol(v string) Value {
	return Value{Kind: SymbolKind, Text: v}
}

func FromTagged(tag, content string) Value {
	return Value{Kind: TaggedKind, Tag: tag, Text: content}
}

func FromArray(vs ...Value) Value {
	return Value{Kind: ArrayKind, Values: vs}
}

func FromMap(fields map[string]Value) Value {
	return Value{Kind: MapKind, Fields: fields}
}

// FromRange returns a range value. A nil bound means unbounded on that side.
func FromRange(lower, upper *float64) Value {
	return Value{Kind: RangeKind, Lower: lower, Upper: upper}
}

func FromMeasurement(unit string, v float64) Value {
	return Value{Kind: MeasurementKind, Unit: unit, Float64: v}
}

// Equal reports structural equality of two values.
func (v Value) Equal(o Value) bool {
	if v.Kind != o.Kind {
		return false
	}
	switch v.Kind {
	case IntegerKind:
		return v.Int64 == o.Int64
	case DecimalKind:
		return v.Float64 == o.Float64
	case BooleanKind:
		return v.Bool == o.Bool
	case StringKind, SymbolKind:
		return v.Text == o.Text
	case TaggedKind:
		return v.Tag == o.Tag && v.Text == o.Text
	case ArrayKind:
		return slices.EqualFunc(v.Values, o.Values, Value.Equal)
	case MapKind:
		return maps.EqualFunc(v.Fields, o.Fields, Value.Equal)
	case RangeKind:
		return boundEqual(v.Lower, o.Lower) && boundEqual(v.Upper, o.Upper)
	case MeasurementKind:
		return v.Unit == o.Unit && v.Float64 == o.Float64
	}
	return true
}

func boundEqual(a, b *float64) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return *a == *b
}

// CompareValues returns an integer comparing two values: kind rank first,
// then payload. The result will be 0 if a==b, -1 if a < b, and +1 if a > b.
func CompareValues(a, b Value) int {
	if a.Kind != b.Kind {
		return cmp.Compare(a.Kind, b.Kind)
	}
	switch a.Kind {
	case IntegerKind:
		return cmp.Compare(a.Int64, b.Int64)
	case DecimalKind:
		return cmp.Compare(a.Float64, b.Float64)
	case BooleanKind:
		if a.Bool == b.Bool {
			return 0
		}
		if !a.Bool {
			return -1
		}
		return 1
	case StringKind, SymbolKind:
		return strings.Compare(a.Text, b.Text)
	case TaggedKind:
		if c := strings.Compare(a.Tag, b.Tag); c != 0 {
			return c
		}
		return strings.Compare(a.Text, b.Text)
	case ArrayKind:
		return slices.CompareFunc(a.Values, b.Values, CompareValues)
	case MapKind:
		return compareFields(a.Fields, b.Fields)
	case RangeKind:
		if c := compareBound(a.Lower, b.Lower); c != 0 {
			return c
		}
		return compareBound(a.Upper, b.Upper)
	case MeasurementKind:
		if c := strings.Compare(a.Unit, b.Unit); c != 0 {
			return c
		}
		return cmp.Compare(a.Float64, b.Float64)
	}
	return 0
}

func compareFields(a, b map[string]Value) int {
	aKeys := slices.Sorted(maps.Keys(a))
	bKeys := slices.Sorted(maps.Keys(b))
	minLen := min(len(aKeys), len(bKeys))
	for i := 0; i < minLen; i++ {
		if c := strings.Compare(aKeys[i], bKeys[i]); c != 0 {
			return c
		}
		if c := CompareValues(a[aKeys[i]], b[bKeys[i]]); c != 0 {
			return c
		}
	}
	return cmp.Compare(len(aKeys), len(bKeys))
}

// nil bound sorts before any bounded value
func compareBound(a, b *float64) int {
	if a == nil || b == nil {
		if a == b {
			return 0
		}
		if a == nil {
			return -1
		}
		return 1
	}
	return cmp.Compare(*a, *b)
}

func (v Value) String() string {
	switch v.Kind {
	case IntegerKind:
		return strconv.FormatInt(v.Int64, 10)
	case DecimalKind:
		return strconv.FormatFloat(v.Float64, 'g', -1, 64)
	case BooleanKind:
		return strconv.FormatBool(v.Bool)
	case StringKind:
		return strconv.Quote(v.Text)
	case SymbolKind:
		return v.Text
	case TaggedKind:
		return v.Tag + ":" + v.Text
	case ArrayKind:
		var sb strings.Builder
		sb.WriteByte('[')
		for i, item := range v.Values {
			if i > 0 {
				sb.WriteString(", ")
			}
			sb.WriteString(item.String())
		}
		sb.WriteByte(']')
		return sb.String()
	case MapKind:
		var sb strings.Builder
		sb.WriteByte('{')
		for i, k := range slices.Sorted(maps.Keys(v.Fields)) {
			if i > 0 {
				sb.WriteString(", ")
			}
			fmt.Fprintf(&sb, "%s: %s", k, v.Fields[k])
		}
		sb.WriteByte('}')
		return sb.String()
	case RangeKind:
		return formatBound(v.Lower) + ".." + formatBound(v.Upper)
	case MeasurementKind:
		return strconv.FormatFloat(v.Float64, 'g', -1, 64) + v.Unit
	}
	return "<invalid>"
}

func formatBound(b *float64) string {
	if b == nil {
		return ""
	}
	return strconv.FormatFloat(*b, 'g', -1, 64)
}

// Clone returns a deep copy of v.
func (v Value) Clone() Value {
	res := v
	if v.Values != nil {
		res.Values = make([]Value, len(v.Values))
		for i, item := range v.Values {
			res.Values[i] = item.Clone()
		}
	}
	if v.Fields != nil {
		res.Fields = make(map[string]Value, len(v.Fields))
		for k, item := range v.Fields {
			res.Fields[k] = item.Clone()
		}
	}
	if v.Lower != nil {
		l := *v.Lower
		res.Lower = &l
	}
	if v.Upper != nil {
		u := *v.Upper
		res.Upper = &u
	}
	return res
}
