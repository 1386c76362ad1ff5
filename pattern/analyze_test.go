package pattern

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestAnalyzeAtomic(t *testing.T) {
	got := AnalyzeStructure(Point(42))
	if diff := cmp.Diff([]int{1}, got.DepthDistribution); diff != "" {
		t.Errorf("DepthDistribution (-want +got):\n%s", diff)
	}
	if len(got.ElementCounts) != 0 {
		t.Errorf("ElementCounts = %v, want empty after trimming", got.ElementCounts)
	}
	if diff := cmp.Diff([]string{"atomic"}, got.NestingPatterns); diff != "" {
		t.Errorf("NestingPatterns (-want +got):\n%s", diff)
	}
	if !strings.Contains(got.Summary, "1 nodes across 1 levels") {
		t.Errorf("Summary = %q", got.Summary)
	}
}

func TestAnalyzeFlat(t *testing.T) {
	got := AnalyzeStructure(FromValues(0, 1, 2, 3))
	if diff := cmp.Diff([]int{1, 3}, got.DepthDistribution); diff != "" {
		t.Errorf("DepthDistribution (-want +got):\n%s", diff)
	}
	// the leaf level's zero is trimmed
	if diff := cmp.Diff([]int{3}, got.ElementCounts); diff != "" {
		t.Errorf("ElementCounts (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]string{"tree"}, got.NestingPatterns); diff != "" {
		t.Errorf("NestingPatterns (-want +got):\n%s", diff)
	}
}

func TestAnalyzeLinear(t *testing.T) {
	p := Point(0)
	for i := 1; i <= 4; i++ {
		p = Of(i, p)
	}
	got := AnalyzeStructure(p)
	if diff := cmp.Diff([]int{1, 1, 1, 1, 1}, got.DepthDistribution); diff != "" {
		t.Errorf("DepthDistribution (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]int{1, 1, 1, 1}, got.ElementCounts); diff != "" {
		t.Errorf("ElementCounts (-want +got):\n%s", diff)
	}
	want := []string{"linear", "balanced"}
	if diff := cmp.Diff(want, got.NestingPatterns); diff != "" {
		t.Errorf("NestingPatterns (-want +got):\n%s", diff)
	}
}

func TestAnalyzeBalancedTree(t *testing.T) {
	leaf := func(v int) Pattern[int] { return Point(v) }
	p := Of(0,
		Of(1, leaf(3), leaf(4)),
		Of(2, leaf(5), leaf(6)),
	)
	got := AnalyzeStructure(p)
	if diff := cmp.Diff([]int{1, 2, 4}, got.DepthDistribution); diff != "" {
		t.Errorf("DepthDistribution (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]int{2, 4}, got.ElementCounts); diff != "" {
		t.Errorf("ElementCounts (-want +got):\n%s", diff)
	}
	want := []string{"tree", "balanced"}
	if diff := cmp.Diff(want, got.NestingPatterns); diff != "" {
		t.Errorf("NestingPatterns (-want +got):\n%s", diff)
	}
	if got.Summary != "7 nodes across 3 levels, tree+balanced structure" {
		t.Errorf("Summary = %q", got.Summary)
	}
}

func TestAnalyzeUnbalancedTree(t *testing.T) {
	// 10 elements at one level then 1 at the next breaks the ratio bound
	wide := FromValues(0, make([]int, 10)...)
	wide.Elements[0] = Of(1, Point(2))
	got := AnalyzeStructure(wide)
	for _, label := range got.NestingPatterns {
		if label == "balanced" {
			t.Errorf("NestingPatterns = %v, should not be balanced", got.NestingPatterns)
		}
	}
}

func TestAnalyzeWide(t *testing.T) {
	got := AnalyzeStructure(FromValues(0, make([]int, 9999)...))
	if diff := cmp.Diff([]int{1, 9999}, got.DepthDistribution); diff != "" {
		t.Errorf("DepthDistribution (-want +got):\n%s", diff)
	}
	if !strings.Contains(got.Summary, "10000 nodes across 2 levels") {
		t.Errorf("Summary = %q", got.Summary)
	}
}

func TestAnalyzeDeep(t *testing.T) {
	p := Point(0)
	for i := 1; i <= 100; i++ {
		p = Of(i, p)
	}
	got := AnalyzeStructure(p)
	if len(got.DepthDistribution) != 101 {
		t.Errorf("levels = %d, want 101", len(got.DepthDistribution))
	}
	found := false
	for _, label := range got.NestingPatterns {
		if label == "linear" {
			found = true
		}
	}
	if !found {
		t.Errorf("NestingPatterns = %v, want a linear label", got.NestingPatterns)
	}
}
