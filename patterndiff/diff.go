// Package patterndiff renders the textual difference between two patterns
// for diagnostics.
package patterndiff

import (
	"strings"

	diffpatch "github.com/sergi/go-diff/diffmatchpatch"

	"github.com/relateby/pattern-go/pattern"
)

// Diff returns a readable character diff between two rendered forms.
func Diff(from, to string) string {
	diffCfg := diffpatch.New()
	doMultiLine := strings.Contains(from, "\n") && strings.Contains(to, "\n")
	diffs := diffCfg.DiffMain(from, to, doMultiLine)
	return diffCfg.DiffPrettyText(diffs)
}

// Patterns renders both patterns with the given options and diffs the
// results.
func Patterns[V any](from, to pattern.Pattern[V], opts ...pattern.RenderOption) string {
	return Diff(pattern.Render(from, opts...), pattern.Render(to, opts...))
}
