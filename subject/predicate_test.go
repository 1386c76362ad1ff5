package subject

import (
	"testing"

	"github.com/relateby/pattern-go/pattern"
)

func TestCompilePredicateIdentity(t *testing.T) {
	pred, err := CompilePredicate(`identity == "alice"`)
	if err != nil {
		t.Fatalf("CompilePredicate: %v", err)
	}
	if !pred(New("alice")) {
		t.Error("predicate should match alice")
	}
	if pred(New("bob")) {
		t.Error("predicate should not match bob")
	}
}

func TestCompilePredicateLabels(t *testing.T) {
	pred, err := CompilePredicate(`labels.Person and not labels.Admin`)
	if err != nil {
		t.Fatalf("CompilePredicate: %v", err)
	}
	if !pred(person("alice", "Person")) {
		t.Error("Person without Admin should match")
	}
	if pred(person("alice", "Person", "Admin")) {
		t.Error("Person with Admin should not match")
	}
	if pred(person("alice")) {
		t.Error("no labels should not match")
	}
}

func TestCompilePredicateMembership(t *testing.T) {
	pred, err := CompilePredicate(`"Person" in labels`)
	if err != nil {
		t.Fatalf("CompilePredicate: %v", err)
	}
	if !pred(person("alice", "Person")) {
		t.Error("membership form should match")
	}
}

func TestCompilePredicateProperties(t *testing.T) {
	pred, err := CompilePredicate(`properties.age >= 18 && properties.city == "Oslo"`)
	if err != nil {
		t.Fatalf("CompilePredicate: %v", err)
	}
	adult := New("alice")
	adult.Properties["age"] = FromInt(30)
	adult.Properties["city"] = FromString("Oslo")
	if !pred(adult) {
		t.Error("matching properties should satisfy the predicate")
	}
	minor := New("bob")
	minor.Properties["age"] = FromInt(12)
	minor.Properties["city"] = FromString("Oslo")
	if pred(minor) {
		t.Error("a failing comparison should not match")
	}
}

func TestCompilePredicateMissingPropertyIsFalse(t *testing.T) {
	pred, err := CompilePredicate(`properties.age > 10`)
	if err != nil {
		t.Fatalf("CompilePredicate: %v", err)
	}
	if pred(New("alice")) {
		t.Error("a missing property should make the predicate false, not panic")
	}
}

func TestCompilePredicateCompileError(t *testing.T) {
	if _, err := CompilePredicate(`identity ==`); err == nil {
		t.Error("a malformed expression should fail at compile time")
	}
	if _, err := CompilePredicate(`identity`); err == nil {
		t.Error("a non-boolean expression should fail at compile time")
	}
}

func TestCompilePredicateWithQueries(t *testing.T) {
	pred, err := CompilePredicate(`labels.Person`)
	if err != nil {
		t.Fatalf("CompilePredicate: %v", err)
	}
	p := pattern.Of(person("root", "Group"),
		pattern.Point(person("alice", "Person")),
		pattern.Point(person("bob", "Person")),
	)
	if !p.AnyValue(pred) {
		t.Error("AnyValue should find a Person")
	}
	if p.AllValues(pred) {
		t.Error("AllValues should fail on the Group root")
	}
	matches := p.Filter(func(sp pattern.Pattern[Subject]) bool { return pred(sp.Value) })
	if len(matches) != 2 {
		t.Errorf("Filter found %d matches, want 2", len(matches))
	}
}
