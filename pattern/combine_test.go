package pattern

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func concat(a, b string) string { return a + b }

func TestCombineAtoms(t *testing.T) {
	got := Combine(Point("hello"), Point(" world"), concat)
	if got.Value != "hello world" {
		t.Errorf("Value = %q, want %q", got.Value, "hello world")
	}
	if !got.IsAtomic() {
		t.Error("combining atoms should stay atomic")
	}
}

func TestCombineAppendsElements(t *testing.T) {
	a := Of("a", Point("b"), Point("c"))
	b := Of("d", Point("e"))
	got := Combine(a, b, concat)
	if got.Value != "ad" {
		t.Errorf("Value = %q, want %q", got.Value, "ad")
	}
	var elems []string
	for _, e := range got.Elements {
		elems = append(elems, e.Value)
	}
	if diff := cmp.Diff([]string{"b", "c", "e"}, elems); diff != "" {
		t.Errorf("elements mismatch (-want +got):\n%s", diff)
	}
}

func TestCombineAssociativity(t *testing.T) {
	a := Of("a", Point("1"))
	b := Of("b", Point("2"))
	c := Of("c", Point("3"))
	left := Combine(Combine(a, b, concat), c, concat)
	right := Combine(a, Combine(b, c, concat), concat)
	if !Equal(left, right) {
		t.Errorf("Combine not associative: %s vs %s", Render(left), Render(right))
	}
}

func TestCombineDoesNotMutate(t *testing.T) {
	a := Of("a", Point("1"))
	b := Of("b", Point("2"))
	got := Combine(a, b, concat)
	got.Elements[0].Value = "changed"
	if a.Elements[0].Value != "1" {
		t.Error("Combine result must not alias its inputs")
	}
}

func TestZipWith(t *testing.T) {
	people := []Pattern[string]{Point("alice"), Point("bob")}
	companies := []Pattern[string]{Point("acme"), Point("initech")}
	rels := ZipWith(people, companies, func(l, r Pattern[string]) string {
		return l.Value + "->" + r.Value
	})
	if len(rels) != 2 {
		t.Fatalf("got %d relationships, want 2", len(rels))
	}
	if rels[0].Value != "alice->acme" || rels[0].Length() != 2 {
		t.Errorf("rels[0] = %s", Render(rels[0]))
	}
	if rels[1].Elements[1].Value != "initech" {
		t.Errorf("rels[1] = %s", Render(rels[1]))
	}
}

func TestZip3(t *testing.T) {
	left := []Pattern[string]{Point("alice"), Point("bob")}
	right := []Pattern[string]{Point("acme"), Point("proj")}
	got := Zip3(left, right, []string{"WORKS_FOR", "MANAGES"})
	if len(got) != 2 {
		t.Fatalf("got %d patterns, want 2", len(got))
	}
	want := Of("WORKS_FOR", Point("alice"), Point("acme"))
	if !Equal(got[0], want) {
		t.Errorf("got[0] = %s, want %s", Render(got[0]), Render(want))
	}
}

func TestZipUnevenLengths(t *testing.T) {
	left := []Pattern[int]{Point(1), Point(2), Point(3)}
	right := []Pattern[int]{Point(4)}
	if got := Zip3(left, right, []int{9, 9}); len(got) != 1 {
		t.Errorf("Zip3 length = %d, want 1", len(got))
	}
}
