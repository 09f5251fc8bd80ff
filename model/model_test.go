package model_test

import (
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/npillmayer/cascade/model"
	"github.com/npillmayer/cascade/value"
)

func TestSelector(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "cascade.model")
	defer teardown()
	//
	snap := model.NewBuilder().
		Instance("body", "Body", "body").
		Child("body", "box", "Box", "div").
		Child("box", "text", "Text", "p").
		Build()
	sel := snap.Selector("text")
	if len(sel) != 3 || sel.Leaf() != "text" || sel[2] != "body" {
		t.Errorf("expected selector text < box < body, is %s", sel)
	}
	if sel.Parent().Leaf() != "box" {
		t.Errorf("expected parent of text to be box, is %s", sel.Parent().Leaf())
	}
	assert.Equal(t, []model.InstanceID{"body", "box", "text"}, snap.Instances())
	assert.Equal(t, []model.InstanceID{"text"}, snap.Children("box"))
	assert.Equal(t, model.Selector{"ghost"}, snap.Selector("ghost"))
}

func TestBreakpoints(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "cascade.model")
	defer teardown()
	//
	snap := model.NewBuilder().
		Breakpoint("large", 1024).
		Breakpoint("small", 480).
		Breakpoint("medium", 768).
		Build()
	bps := snap.Breakpoints()
	require.Len(t, bps, 4)
	ids := []model.BreakpointID{bps[0].ID, bps[1].ID, bps[2].ID, bps[3].ID}
	assert.Equal(t, []model.BreakpointID{"base", "small", "medium", "large"}, ids)
	assert.Equal(t, []model.BreakpointID{"base", "small", "medium"}, snap.MatchingBreakpoints(800))
	assert.Equal(t, []model.BreakpointID{"base"}, snap.MatchingBreakpoints(100))
}

func TestAttachOrder(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "cascade.model")
	defer teardown()
	//
	snap := model.NewBuilder().
		Instance("box", "Box", "div").
		StyleSource(model.StyleSource{ID: "a", Kind: model.TokenSource, Name: "Primary"}).
		StyleSource(model.StyleSource{ID: "b", Kind: model.TokenSource, Name: "Large"}).
		Attach("box", "a", "b").
		Attach("box", "a").
		Build()
	assert.Equal(t, []model.StyleSourceID{"b", "a"}, snap.StyleSources("box"))
	src, ok := snap.StyleSource("a")
	require.True(t, ok)
	assert.Equal(t, "token", src.Kind.String())
	snap = snap.Edit().Detach("box", "b").Build()
	assert.Equal(t, []model.StyleSourceID{"a"}, snap.StyleSources("box"))
}

func TestCopyOnWrite(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "cascade.model")
	defer teardown()
	//
	b := model.NewBuilder().Instance("box", "Box", "div")
	local := b.LocalStyleSource("box")
	key := model.DeclKey{Breakpoint: model.BaseBreakpoint, Property: "width"}
	s1 := b.Declare(model.Declaration{StyleSource: local, Property: "width", Value: value.Px(10)}).
		Build()
	s2 := s1.Edit().
		Declare(model.Declaration{StyleSource: local, Property: "width", Value: value.Px(20)}).
		Preset("Box", "div", "", "display", value.K("flex")).
		Build()
	if !value.Equal(s1.Declarations(local)[key], value.Px(10)) {
		t.Errorf("expected old snapshot to keep width 10px, is %v", s1.Declarations(local)[key])
	}
	if !value.Equal(s2.Declarations(local)[key], value.Px(20)) {
		t.Errorf("expected new snapshot to have width 20px, is %v", s2.Declarations(local)[key])
	}
	assert.Empty(t, s1.Presets("Box", "div"))
	assert.Len(t, s2.Presets("Box", "div"), 1)
	//
	s3 := s2.Edit().Remove(local, key).Build()
	assert.Empty(t, s3.Declarations(local))
	assert.Len(t, s2.Declarations(local), 1)
	//
	// builder keeps working after Build without touching built snapshots
	b = s3.Edit()
	s4 := b.Declare(model.Declaration{StyleSource: local, Property: "height", Value: value.Px(1)}).Build()
	s5 := b.Declare(model.Declaration{StyleSource: local, Property: "height", Value: value.Px(2)}).Build()
	hkey := model.DeclKey{Breakpoint: model.BaseBreakpoint, Property: "height"}
	assert.True(t, value.Equal(value.Px(1), s4.Declarations(local)[hkey]))
	assert.True(t, value.Equal(value.Px(2), s5.Declarations(local)[hkey]))
}

func TestTagDefaults(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "cascade.model")
	defer teardown()
	//
	snap := model.Empty()
	if v := snap.TagDefaults("div")["display"]; !value.Equal(v, value.K("block")) {
		t.Errorf("expected div to default to display block, is %v", v)
	}
	if v := snap.TagDefaults("H1")["font-weight"]; !value.Equal(v, value.K("bold")) {
		t.Errorf("expected h1 to default to bold, is %v", v)
	}
	assert.Empty(t, snap.TagDefaults("no-such-element"))
	assert.Empty(t, snap.TagDefaults("span"))
	//
	s2 := snap.Edit().TagDefault("div", "display", value.K("flex")).Build()
	assert.True(t, value.Equal(value.K("flex"), s2.TagDefaults("div")["display"]))
	assert.True(t, value.Equal(value.K("block"), snap.TagDefaults("div")["display"]))
	assert.True(t, value.Equal(value.K("block"), model.BrowserDefaults("div")["display"]),
		"overrides must not modify the browser defaults")
}

func TestBuilderPanicsOnEmptyID(t *testing.T) {
	assert.Panics(t, func() {
		model.NewBuilder().Instance("", "Box", "div")
	})
}
