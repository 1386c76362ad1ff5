package subject

import (
	"maps"
	"slices"
	"strings"
)

// Symbol is an identifier. Symbols compare and display as their text.
type Symbol string

func (s Symbol) String() string { return string(s) }

// Labels is a set of classification labels.
type Labels map[string]struct{}

// NewLabels returns a label set holding the given labels.
func NewLabels(labels ...string) Labels {
	l := make(Labels, len(labels))
	for _, s := range labels {
		l[s] = struct{}{}
	}
	return l
}

func (l Labels) Has(s string) bool {
	_, ok := l[s]
	return ok
}

func (l Labels) Add(s string)    { l[s] = struct{}{} }
func (l Labels) Remove(s string) { delete(l, s) }

// Sorted returns the labels in lexicographic order.
func (l Labels) Sorted() []string {
	return slices.Sorted(maps.Keys(l))
}

func (l Labels) Equal(o Labels) bool {
	if len(l) != len(o) {
		return false
	}
	for s := range l {
		if !o.Has(s) {
			return false
		}
	}
	return true
}

// SubsetOf reports whether every label in l is in o.
func (l Labels) SubsetOf(o Labels) bool {
	for s := range l {
		if !o.Has(s) {
			return false
		}
	}
	return true
}

// PropertyRecord maps property names to typed values.
type PropertyRecord map[string]Value

func (r PropertyRecord) Equal(o PropertyRecord) bool {
	return maps.EqualFunc(r, o, Value.Equal)
}

// Subject is a self-descriptive value: an identity symbol, a label set, and
// a property record.
type Subject struct {
	Identity   Symbol
	Labels     Labels
	Properties PropertyRecord
}

// New returns a subject with the given identity and empty labels and
// properties.
func New(identity Symbol) Subject {
	return Subject{
		Identity:   identity,
		Labels:     Labels{},
		Properties: PropertyRecord{},
	}
}

func (s Subject) HasLabel(label string) bool {
	return s.Labels.Has(label)
}

// Property returns the named property value.
func (s Subject) Property(name string) (Value, bool) {
	v, ok := s.Properties[name]
	return v, ok
}

// Equal reports structural equality over identity, labels, and properties.
func (s Subject) Equal(o Subject) bool {
	return s.Identity == o.Identity &&
		s.Labels.Equal(o.Labels) &&
		s.Properties.Equal(o.Properties)
}

// Compare returns an integer comparing two subjects: identity first, then
// sorted labels lexicographically, then properties by sorted key.
func Compare(a, b Subject) int {
	if c := strings.Compare(string(a.Identity), string(b.Identity)); c != 0 {
		return c
	}
	if c := slices.Compare(a.Labels.Sorted(), b.Labels.Sorted()); c != 0 {
		return c
	}
	return compareFields(a.Properties, b.Properties)
}

func (s Subject) String() string {
	var sb strings.Builder
	sb.WriteString(string(s.Identity))
	if len(s.Labels) > 0 {
		sb.WriteByte(':')
		sb.WriteString(strings.Join(s.Labels.Sorted(), "::"))
	}
	if len(s.Properties) > 0 {
		sb.WriteString(" {")
		for i, k := range slices.Sorted(maps.Keys(s.Properties)) {
			if i > 0 {
				sb.WriteString(", ")
			}
			sb.WriteString(k)
			sb.WriteString(": ")
			sb.WriteString(s.Properties[k].String())
		}
		sb.WriteByte('}')
	}
	return sb.String()
}

// Clone returns a deep copy of s.
func (s Subject) Clone() Subject {
	res := Subject{Identity: s.Identity}
	if s.Labels != nil {
		res.Labels = maps.Clone(s.Labels)
	}
	if s.Properties != nil {
		res.Properties = make(PropertyRecord, len(s.Properties))
		for k, v := range s.Properties {
			res.Properties[k] = v.Clone()
		}
	}
	return res
}

// Refines reports whether s carries a subset of the information in sup:
// same identity, labels a subset of sup's, and every property present with
// an equal value in sup.
func (s Subject) Refines(sup Subject) bool {
	if s.Identity != sup.Identity {
		return false
	}
	if !s.Labels.SubsetOf(sup.Labels) {
		return false
	}
	for k, v := range s.Properties {
		sv, ok := sup.Properties[k]
		if !ok || !sv.Equal(v) {
			return false
		}
	}
	return true
}
