package sexptree

import (
	"testing"

	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func TestLeafConstruction(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New()
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	leaf := NewLeaf("a")
	if !leaf.IsLeaf() {
		t.Error("expected leaf node, got tuple")
	}
	if leaf.Value() != "a" {
		t.Errorf("expected value 'a', got '%s'", leaf.Value())
	}
	if leaf.IsVariable() {
		t.Error("'a' should not be a variable")
	}
}

func TestTupleConstruction(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New()
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	tuple := NewTuple(NewLeaf("a"), NewLeaf("b"))
	if tuple.IsLeaf() {
		t.Error("expected tuple node, got leaf")
	}
	if len(tuple.Children()) != 2 {
		t.Errorf("expected 2 children, have %d", len(tuple.Children()))
	}
	empty := NewTuple()
	if empty.IsLeaf() || len(empty.Children()) != 0 {
		t.Error("expected empty tuple")
	}
}

func TestReservedWordFolding(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New()
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	if v := NewLeaf("ROLE").Value(); v != "role" {
		t.Errorf("expected 'ROLE' to fold to 'role', got '%s'", v)
	}
	if v := NewLeaf("Distinct").Value(); v != "distinct" {
		t.Errorf("expected 'Distinct' to fold to 'distinct', got '%s'", v)
	}
	if v := NewLeaf("NOT_RESERVED").Value(); v != "NOT_RESERVED" {
		t.Errorf("expected 'NOT_RESERVED' to stay verbatim, got '%s'", v)
	}
	if v := NewLeaf("role").Value(); v != "role" {
		t.Errorf("folding should be idempotent, got '%s'", v)
	}
}

func TestVariables(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New()
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	if !NewLeaf("?x").IsVariable() {
		t.Error("'?x' should be a variable")
	}
	if NewLeaf("x").IsVariable() {
		t.Error("'x' should not be a variable")
	}
	if NewLeaf(Connective).IsVariable() {
		t.Error("the rule connective should not be a variable")
	}
	if NewTuple(NewLeaf("?x")).IsVariable() {
		t.Error("a tuple should never be a variable")
	}
}

func TestEquality(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New()
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	a := NewLeaf("a")
	if !a.Equals(NewLeaf("a")) {
		t.Error("equal leaves reported unequal")
	}
	if a.Equals(NewLeaf("b")) {
		t.Error("different leaves reported equal")
	}
	if a.Equals(NewTuple(NewLeaf("a"))) {
		t.Error("a leaf must never equal a tuple")
	}
	ab := NewTuple(NewLeaf("a"), NewLeaf("b"))
	if !ab.Equals(NewTuple(NewLeaf("a"), NewLeaf("b"))) {
		t.Error("equal tuples reported unequal")
	}
	if ab.Equals(NewTuple(NewLeaf("b"), NewLeaf("a"))) {
		t.Error("child order must matter for equality")
	}
	if ab.Equals(NewTuple(NewLeaf("a"))) {
		t.Error("tuples of different length reported equal")
	}
}

func TestDebugString(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New()
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	if s := NewLeaf("a").String(); s != "leaf:a" {
		t.Errorf("unexpected debug rendering '%s'", s)
	}
	tuple := NewTuple(NewLeaf("a"), NewLeaf("b"))
	if s := tuple.String(); s != "non-leaf[2]( leaf:a leaf:b )" {
		t.Errorf("unexpected debug rendering '%s'", s)
	}
}

func TestSexpr(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New()
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	if s := NewLeaf("a").Sexpr(); s != "a" {
		t.Errorf("expected 'a', got '%s'", s)
	}
	if s := NewTuple().Sexpr(); s != "()" {
		t.Errorf("expected '()', got '%s'", s)
	}
	nested := NewTuple(NewLeaf("a"), NewTuple(NewLeaf("b"), NewLeaf("c")))
	if s := nested.Sexpr(); s != "(a (b c))" {
		t.Errorf("expected '(a (b c))', got '%s'", s)
	}
}

func TestReplaceAtomsNode(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New()
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	tree := NewTuple(NewLeaf("f"), NewLeaf("a"), NewTuple(NewLeaf("g"), NewLeaf("a")))
	replaced := tree.ReplaceAtoms("a", "b")
	if s := replaced.Sexpr(); s != "(f b (g b))" {
		t.Errorf("expected '(f b (g b))', got '%s'", s)
	}
	if s := tree.Sexpr(); s != "(f a (g a))" {
		t.Errorf("original tree was mutated: '%s'", s)
	}
	same := tree.ReplaceAtoms("missing", "b")
	if !same.Equals(tree) {
		t.Error("replacing an absent atom must leave the tree structurally equal")
	}
}
