package patterndiff

import (
	"strings"
	"testing"

	"github.com/relateby/pattern-go/pattern"
)

func TestDiffIdentical(t *testing.T) {
	if got := Diff("(a (b))", "(a (b))"); got != "(a (b))" {
		t.Errorf("identical inputs should diff to themselves: %q", got)
	}
}

func TestDiffHighlightsChange(t *testing.T) {
	got := Diff("(a (b))", "(a (c))")
	if !strings.Contains(got, "b") || !strings.Contains(got, "c") {
		t.Errorf("diff should carry both sides of the change: %q", got)
	}
	if got == "(a (b))" || got == "(a (c))" {
		t.Errorf("diff should mark the change: %q", got)
	}
}

func TestPatterns(t *testing.T) {
	from := pattern.Of("a", pattern.Point("b"))
	to := pattern.Of("a", pattern.Point("c"))
	got := Patterns(from, to)
	if !strings.Contains(got, "a") {
		t.Errorf("diff should keep the common prefix: %q", got)
	}
	if !strings.Contains(got, "b") || !strings.Contains(got, "c") {
		t.Errorf("diff should carry the changed values: %q", got)
	}
}

func TestPatternsHonorsRenderOptions(t *testing.T) {
	from := pattern.Of("x", pattern.Point("y"))
	to := pattern.Of("x", pattern.Point("z"))
	got := Patterns(from, to, pattern.FormatValue(func(v any) string {
		return "<" + v.(string) + ">"
	}))
	if !strings.Contains(got, "<x>") {
		t.Errorf("render options should shape the diffed text: %q", got)
	}
}
