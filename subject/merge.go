package subject

import (
	"encoding/json"
	"fmt"
	"maps"

	jsonpatch "github.com/evanphx/json-patch"

	"github.com/relateby/pattern-go/debug"
)

// LabelMerge selects how two label sets merge.
type LabelMerge int

const (
	// UnionLabels keeps every label from both sides.
	UnionLabels LabelMerge = iota
	// IntersectLabels keeps only labels present on both sides.
	IntersectLabels
	// ReplaceLabels keeps the incoming side's labels.
	ReplaceLabels
)

// PropertyMerge selects how two property records merge.
type PropertyMerge int

const (
	// ShallowMergeProperties keeps keys from both sides; the incoming side
	// wins on conflicts.
	ShallowMergeProperties PropertyMerge = iota
	// ReplaceProperties keeps the incoming side's record.
	ReplaceProperties
	// MergePatchProperties applies the incoming record to the existing one
	// as an RFC 7386 merge patch over the JSON wire forms, so nested map
	// values merge recursively instead of being replaced wholesale.
	MergePatchProperties
)

// MergeStrategy configures Merge.
type MergeStrategy struct {
	Labels     LabelMerge
	Properties PropertyMerge
}

// DefaultMergeStrategy unions labels and shallow-merges properties.
func DefaultMergeStrategy() MergeStrategy {
	return MergeStrategy{Labels: UnionLabels, Properties: ShallowMergeProperties}
}

// Merge combines two subjects. a is the existing value and b the incoming
// one; the result keeps a's identity.
func Merge(strategy MergeStrategy, a, b Subject) (Subject, error) {
	props, err := mergeProperties(strategy.Properties, a.Properties, b.Properties)
	if err != nil {
		return Subject{}, fmt.Errorf("merge %s: %w", a.Identity, err)
	}
	res := Subject{
		Identity:   a.Identity,
		Labels:     mergeLabels(strategy.Labels, a.Labels, b.Labels),
		Properties: props,
	}
	if debug.Merge() {
		debug.Logf("merged %s + %s -> %s\n", a, b, res)
	}
	return res, nil
}

// Combine merges with the default strategy. It has no failure path and is
// suitable as the value combiner for pattern.Combine.
func Combine(a, b Subject) Subject {
	res, _ := Merge(DefaultMergeStrategy(), a, b)
	return res
}

func mergeLabels(strategy LabelMerge, a, b Labels) Labels {
	switch strategy {
	case IntersectLabels:
		res := Labels{}
		for s := range a {
			if b.Has(s) {
				res.Add(s)
			}
		}
		return res
	case ReplaceLabels:
		return maps.Clone(b)
	default:
		res := maps.Clone(a)
		if res == nil {
			res = Labels{}
		}
		for s := range b {
			res.Add(s)
		}
		return res
	}
}

func mergeProperties(strategy PropertyMerge, a, b PropertyRecord) (PropertyRecord, error) {
	switch strategy {
	case ReplaceProperties:
		return maps.Clone(b), nil
	case MergePatchProperties:
		return mergePatchProperties(a, b)
	default:
		res := maps.Clone(a)
		if res == nil {
			res = PropertyRecord{}
		}
		maps.Copy(res, b)
		return res, nil
	}
}

func mergePatchProperties(a, b PropertyRecord) (PropertyRecord, error) {
	if a == nil {
		a = PropertyRecord{}
	}
	if b == nil {
		b = PropertyRecord{}
	}
	doc, err := json.Marshal(a)
	if err != nil {
		return nil, err
	}
	patch, err := json.Marshal(b)
	if err != nil {
		return nil, err
	}
	merged, err := jsonpatch.MergePatch(doc, patch)
	if err != nil {
		return nil, err
	}
	var res PropertyRecord
	if err := json.Unmarshal(merged, &res); err != nil {
		return nil, err
	}
	return res, nil
}
