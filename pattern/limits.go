package pattern

import (
	"fmt"
	"strconv"
)

// Limits bounds the structure of a pattern. A zero or negative bound means
// unlimited.
type Limits struct {
	// MaxDepth is the maximum nesting depth, measured as distance from the
	// root. A pattern of depth d has nodes at distances 0..d.
	MaxDepth int
	// MaxElements is the maximum number of direct elements per node.
	MaxElements int
}

// LimitError reports the first structural limit violation found.
type LimitError struct {
	// Rule names the violated limit, "max_depth" or "max_elements".
	Rule string
	// Message is a human-readable description.
	Message string
	// Location is the path from the root to the violating node, alternating
	// "elements" and a decimal index.
	Location []string
}

func (e *LimitError) Error() string {
	return fmt.Sprintf("%s: %s", e.Rule, e.Message)
}

type limitFrame[V any] struct {
	p     Pattern[V]
	depth int
	loc   []string
}

// CheckLimits walks p and returns a *LimitError for the first node violating
// limits, in pre-order. The walk is iterative, so pathologically deep input
// cannot exhaust the call stack.
//
// CheckLimits is structural limit checking; the error-accumulating value
// traversal is a separate concern, see ValidateAll.
func CheckLimits[V any](p Pattern[V], limits Limits) error {
	stack := []limitFrame[V]{{p: p}}
	for len(stack) > 0 {
		fr := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if limits.MaxDepth > 0 && fr.depth > limits.MaxDepth {
			return &LimitError{
				Rule:     "max_depth",
				Message:  fmt.Sprintf("node at depth %d exceeds max depth %d", fr.depth, limits.MaxDepth),
				Location: fr.loc,
			}
		}
		if limits.MaxElements > 0 && len(fr.p.Elements) > limits.MaxElements {
			return &LimitError{
				Rule:     "max_elements",
				Message:  fmt.Sprintf("node has %d elements, max is %d", len(fr.p.Elements), limits.MaxElements),
				Location: fr.loc,
			}
		}
		// push in reverse so the leftmost element is checked first
		for i := len(fr.p.Elements) - 1; i >= 0; i-- {
			loc := make([]string, 0, len(fr.loc)+2)
			loc = append(loc, fr.loc...)
			loc = append(loc, "elements", strconv.Itoa(i))
			stack = append(stack, limitFrame[V]{
				p:     fr.p.Elements[i],
				depth: fr.depth + 1,
				loc:   loc,
			})
		}
	}
	return nil
}
