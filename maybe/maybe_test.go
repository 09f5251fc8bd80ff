package maybe_test

import (
	"testing"

	"github.com/npillmayer/cascade/cascade"
	"github.com/npillmayer/cascade/maybe"
	"github.com/npillmayer/cascade/value"
)

func shadow(src string) cascade.Declared {
	return cascade.Declared{
		Layer:       cascade.LayerUser,
		Instance:    "box",
		StyleSource: "theme",
		Property:    "box-shadow",
		Value:       value.Tuple{Items: []value.Value{value.Px(1), value.Px(2), value.K(src)}},
	}
}

// Declarations carry slices in their values, so they are not comparable
// with ==. Matching must not compare them.
func TestMatchDeclaration(t *testing.T) {
	winner := maybe.Just(shadow("gray"))
	var d cascade.Declared
	switch m := winner.Match(); m {
	case m.Nothing():
		t.Errorf("expected a winning declaration, is Nothing")
	case m.Just(&d):
		t.Logf("winner is %s", d)
	}
	if !value.Equal(d.Value, shadow("gray").Value) {
		t.Errorf("expected winner to carry the shadow tuple, is %v", d.Value)
	}
	if winner.IsNothing() {
		t.Errorf("expected Just not to be Nothing")
	}
}

func TestMatchNothing(t *testing.T) {
	none := maybe.Nothing[cascade.Declared]()
	var d cascade.Declared
	matched := ""
	switch m := none.Match(); m {
	case m.Just(&d):
		matched = "just"
	case m.Nothing():
		matched = "nothing"
	}
	if matched != "nothing" {
		t.Errorf("expected Nothing to match Nothing, matched %q", matched)
	}
	if d.Value != nil {
		t.Errorf("expected no declaration to be extracted, is %v", d)
	}
}

func TestFirst(t *testing.T) {
	first := maybe.First[cascade.Declared](
		nil,
		maybe.Nothing[cascade.Declared](),
		maybe.Just(shadow("red")),
		maybe.Just(shadow("blue")),
	)
	var d cascade.Declared
	if first.Match().Just(&d) == nil {
		t.Fatalf("expected a declaration, is Nothing")
	}
	if !value.Equal(d.Value, shadow("red").Value) {
		t.Errorf("expected first declaration to be the red shadow, is %v", d.Value)
	}
	if !maybe.First[cascade.Declared]().IsNothing() {
		t.Errorf("expected First of nothing to be Nothing")
	}
	if !maybe.First(maybe.Nothing[int](), maybe.Nothing[int]()).IsNothing() {
		t.Errorf("expected First of Nothings to be Nothing")
	}
}
