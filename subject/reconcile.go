package subject

import (
	"errors"
	"fmt"

	"github.com/relateby/pattern-go/debug"
	"github.com/relateby/pattern-go/pattern"
)

// DuplicatePolicy selects how duplicate identities resolve during
// reconciliation.
type DuplicatePolicy int

const (
	// LastWriteWins keeps the last occurrence's subject.
	LastWriteWins DuplicatePolicy = iota
	// FirstWriteWins keeps the first occurrence's subject.
	FirstWriteWins
	// MergeDuplicates folds all occurrences together with the configured
	// merge strategy.
	MergeDuplicates
	// Strict fails when duplicate identities carry different content.
	Strict
)

// ElementStrategy selects how the element lists of duplicate occurrences
// merge under MergeDuplicates.
type ElementStrategy int

const (
	// UnionElements deduplicates elements by identity, first seen wins.
	UnionElements ElementStrategy = iota
	// ReplaceElements keeps only the last occurrence's elements.
	ReplaceElements
	// AppendElements concatenates all element lists in traversal order.
	AppendElements
)

// ReconcilePolicy configures Reconcile.
type ReconcilePolicy struct {
	Duplicates DuplicatePolicy
	// Elements applies only under MergeDuplicates; the other policies union.
	Elements ElementStrategy
	// Values applies only under MergeDuplicates.
	Values MergeStrategy
}

// ErrConflict is returned by Reconcile under the Strict policy when
// duplicate identities carry different content.
var ErrConflict = errors.New("duplicate identities with different content")

// Reconcile normalizes a pattern of subjects by resolving duplicate
// identities according to the policy: every occurrence of an identity is
// replaced by one canonical subtree, and repeats below the first occurrence
// are elided.
func Reconcile(policy ReconcilePolicy, p pattern.Pattern[Subject]) (pattern.Pattern[Subject], error) {
	ids, occurrences := collectByIdentity(p)
	if policy.Duplicates == Strict {
		for _, id := range ids {
			occ := occurrences[id]
			for _, other := range occ[1:] {
				if !other.Value.Equal(occ[0].Value) {
					return pattern.Pattern[Subject]{}, fmt.Errorf("%s: %w", id, ErrConflict)
				}
			}
		}
		policy = ReconcilePolicy{Duplicates: FirstWriteWins}
	}

	canonical := make(map[Symbol]pattern.Pattern[Subject], len(ids))
	for _, id := range ids {
		c, err := reconcileOccurrences(policy, occurrences[id])
		if err != nil {
			return pattern.Pattern[Subject]{}, err
		}
		canonical[id] = c
	}
	if debug.Reconcile() {
		debug.Logf("reconcile: %d identities, %d nodes\n", len(ids), p.Size())
	}
	visited := map[Symbol]bool{}
	return rebuild(visited, canonical, p), nil
}

func reconcileOccurrences(policy ReconcilePolicy, occ []pattern.Pattern[Subject]) (pattern.Pattern[Subject], error) {
	switch policy.Duplicates {
	case FirstWriteWins:
		return pattern.Pattern[Subject]{
			Value:    occ[0].Value,
			Elements: mergeElements(UnionElements, occ),
		}, nil
	case MergeDuplicates:
		merged := occ[0].Value
		for _, o := range occ[1:] {
			var err error
			merged, err = Merge(policy.Values, merged, o.Value)
			if err != nil {
				return pattern.Pattern[Subject]{}, err
			}
		}
		return pattern.Pattern[Subject]{
			Value:    merged,
			Elements: mergeElements(policy.Elements, occ),
		}, nil
	default: // LastWriteWins
		return pattern.Pattern[Subject]{
			Value:    occ[len(occ)-1].Value,
			Elements: mergeElements(UnionElements, occ),
		}, nil
	}
}

func mergeElements(strategy ElementStrategy, occ []pattern.Pattern[Subject]) []pattern.Pattern[Subject] {
	switch strategy {
	case ReplaceElements:
		last := occ[len(occ)-1].Elements
		if len(last) == 0 {
			return nil
		}
		return append([]pattern.Pattern[Subject](nil), last...)
	case AppendElements:
		var res []pattern.Pattern[Subject]
		for _, o := range occ {
			res = append(res, o.Elements...)
		}
		return res
	default: // UnionElements, first seen wins, insertion order kept
		seen := map[Symbol]bool{}
		var res []pattern.Pattern[Subject]
		for _, o := range occ {
			for _, e := range o.Elements {
				if seen[e.Value.Identity] {
					continue
				}
				seen[e.Value.Identity] = true
				res = append(res, e)
			}
		}
		return res
	}
}

func rebuild(visited map[Symbol]bool, canonical map[Symbol]pattern.Pattern[Subject], p pattern.Pattern[Subject]) pattern.Pattern[Subject] {
	source := p
	if c, ok := canonical[p.Value.Identity]; ok {
		source = c
	}
	visited[p.Value.Identity] = true

	var elems []pattern.Pattern[Subject]
	for _, e := range source.Elements {
		if visited[e.Value.Identity] {
			continue
		}
		elems = append(elems, rebuild(visited, canonical, e))
	}
	return pattern.Pattern[Subject]{Value: source.Value, Elements: elems}
}

// collectByIdentity groups every subpattern by its subject identity,
// returning identities in first-seen pre-order for determinism.
func collectByIdentity(p pattern.Pattern[Subject]) ([]Symbol, map[Symbol][]pattern.Pattern[Subject]) {
	var ids []Symbol
	m := map[Symbol][]pattern.Pattern[Subject]{}
	var walk func(pattern.Pattern[Subject])
	walk = func(node pattern.Pattern[Subject]) {
		id := node.Value.Identity
		if _, ok := m[id]; !ok {
			ids = append(ids, id)
		}
		m[id] = append(m[id], node)
		for _, e := range node.Elements {
			walk(e)
		}
	}
	walk(p)
	return ids, m
}
