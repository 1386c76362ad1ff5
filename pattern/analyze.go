package pattern

import (
	"fmt"
	"strings"
)

// StructureAnalysis summarizes the shape of a pattern.
type StructureAnalysis struct {
	// DepthDistribution[d] is the number of nodes at distance d from the
	// root.
	DepthDistribution []int
	// ElementCounts[d] is the total number of direct elements held by nodes
	// at distance d from the root. Trailing zero levels are trimmed.
	ElementCounts []int
	// NestingPatterns holds shape labels: "atomic", "linear", "tree",
	// "balanced".
	NestingPatterns []string
	// Summary is a human-readable description.
	Summary string
}

// AnalyzeStructure computes a StructureAnalysis for p. The walk is
// level-by-level, so deep nesting cannot exhaust the call stack.
func AnalyzeStructure[V any](p Pattern[V]) StructureAnalysis {
	var depthDist, elemCounts []int
	level := []Pattern[V]{p}
	for len(level) > 0 {
		depthDist = append(depthDist, len(level))
		elems := 0
		var next []Pattern[V]
		for _, node := range level {
			elems += len(node.Elements)
			next = append(next, node.Elements...)
		}
		elemCounts = append(elemCounts, elems)
		level = next
	}
	for len(elemCounts) > 0 && elemCounts[len(elemCounts)-1] == 0 {
		elemCounts = elemCounts[:len(elemCounts)-1]
	}

	size := 0
	for _, n := range depthDist {
		size += n
	}
	patterns := nestingPatterns(size, elemCounts)
	summary := fmt.Sprintf("%d nodes across %d levels, %s structure",
		size, len(depthDist), strings.Join(patterns, "+"))

	return StructureAnalysis{
		DepthDistribution: depthDist,
		ElementCounts:     elemCounts,
		NestingPatterns:   patterns,
		Summary:           summary,
	}
}

func nestingPatterns(size int, elemCounts []int) []string {
	if size == 1 {
		return []string{"atomic"}
	}
	var patterns []string
	linear := true
	tree := false
	for _, n := range elemCounts {
		if n != 1 {
			linear = false
		}
		if n > 1 {
			tree = true
		}
	}
	if linear {
		patterns = append(patterns, "linear")
	}
	if tree {
		patterns = append(patterns, "tree")
	}
	if isBalanced(elemCounts) {
		patterns = append(patterns, "balanced")
	}
	return patterns
}

// isBalanced reports whether consecutive non-leaf levels carry consistent
// element counts (adjacent ratios within [0.5, 2.0]). Zero-count levels are
// leaf levels and do not participate.
func isBalanced(elemCounts []int) bool {
	var counts []int
	for _, n := range elemCounts {
		if n > 0 {
			counts = append(counts, n)
		}
	}
	if len(counts) < 2 {
		return false
	}
	for i := 1; i < len(counts); i++ {
		ratio := float64(counts[i]) / float64(counts[i-1])
		if ratio < 0.5 || ratio > 2.0 {
			return false
		}
	}
	return true
}
