package pattern

import (
	"strconv"
	"testing"
)

func TestMapIdentity(t *testing.T) {
	p := Of(1, Of(2, Point(3)), Point(4))
	got := Map(p, func(v int) int { return v })
	if !Equal(p, got) {
		t.Errorf("Map(identity) changed the pattern: %s", Render(got))
	}
}

func TestMapTransformsEveryValue(t *testing.T) {
	p := Of(1, Of(2, Point(3)), Point(4))
	got := Map(p, strconv.Itoa)
	want := Of("1", Of("2", Point("3")), Point("4"))
	if !Equal(got, want) {
		t.Errorf("Map(itoa) = %s, want %s", Render(got), Render(want))
	}
}

func TestMapPreservesShape(t *testing.T) {
	p := Of(1, Of(2, Point(3), Point(4)), Point(5))
	got := Map(p, func(v int) int { return v * 10 })
	if got.Size() != p.Size() || got.Depth() != p.Depth() || got.Length() != p.Length() {
		t.Errorf("shape changed: size %d->%d depth %d->%d length %d->%d",
			p.Size(), got.Size(), p.Depth(), got.Depth(), p.Length(), got.Length())
	}
}

func TestMapDeepNesting(t *testing.T) {
	p := Point(0)
	for i := 1; i <= 300; i++ {
		p = Of(i, p)
	}
	got := Map(p, func(v int) int { return -v })
	if got.Depth() != 300 {
		t.Fatalf("Depth() = %d, want 300", got.Depth())
	}
	if got.Value != -300 {
		t.Errorf("root = %d, want -300", got.Value)
	}
}
