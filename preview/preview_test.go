package preview_test

import (
	"strings"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/net/html"

	"github.com/npillmayer/cascade/cascade"
	"github.com/npillmayer/cascade/model"
	"github.com/npillmayer/cascade/model/snapshotfile"
	"github.com/npillmayer/cascade/preview"
	"github.com/npillmayer/cascade/value"
)

func load(t *testing.T) *model.Snapshot {
	snap, err := snapshotfile.LoadFile("../model/snapshotfile/testdata/page.yaml")
	require.NoError(t, err)
	return snap
}

func TestDeclared(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "cascade.preview")
	defer teardown()
	//
	snap := load(t)
	props := preview.Declared(snap, "card")
	assert.Contains(t, props, "width")
	assert.Contains(t, props, "padding-top")
	assert.Contains(t, props, "border-top-color")
	assert.Contains(t, props, "display") // tag default of <div>
	assert.NotContains(t, props, "color")
	assert.Contains(t, preview.Declared(snap, "button"), "cursor")
	assert.Empty(t, preview.Declared(snap, "nowhere"))
}

// Bulk enumeration has to produce the same results as resolving a single
// property on its own.
func TestBulkEqualsSingle(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "cascade.preview")
	defer teardown()
	//
	snap := load(t)
	configs := [][]cascade.Option{
		nil,
		{cascade.WithBreakpoints(snap.MatchingBreakpoints(800)...)},
		{cascade.WithBreakpoints(snap.MatchingBreakpoints(2000)...), cascade.WithStates(":hover")},
	}
	for _, opts := range configs {
		entries := preview.Compute(snap, opts...)
		require.NotEmpty(t, entries)
		for _, e := range entries {
			single := cascade.Resolve(snap, snap.Selector(e.Instance), e.Property, opts...)
			if !value.Equal(single.Computed, e.Result.Computed) || !value.Equal(single.Used, e.Result.Used) {
				t.Errorf("%s of %s: bulk %v/%v, single %v/%v", e.Property, e.Instance,
					e.Result.Computed, e.Result.Used, single.Computed, single.Used)
			}
		}
	}
}

func TestStylesheet(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "cascade.preview")
	defer teardown()
	//
	snap := load(t)
	sheet := preview.Stylesheet(preview.Compute(snap, cascade.WithBreakpoints("small")))
	require.False(t, sheet.Empty())
	card, ok := sheet.Rule(preview.Selector("card"))
	require.True(t, ok)
	assert.Equal(t, `[data-ws-id="card"]`, card.Selector())
	assert.Equal(t, "100%", card.Value("width"))
	assert.Equal(t, "4px", card.Value("padding-top"))
	assert.Equal(t, "8px", card.Value("padding-left"))
	assert.Equal(t, "blue", card.Value("border-top-color"))
	body, ok := sheet.Rule(preview.Selector("body"))
	require.True(t, ok)
	assert.Equal(t, "Helvetica, sans-serif", body.Value("font-family"))
	button, ok := sheet.Rule(preview.Selector("button"))
	require.True(t, ok)
	assert.Equal(t, "flex", button.Value("display"))
	//
	text := preview.Text(snap, cascade.WithStates(":hover"))
	t.Logf("\n%s", text)
	assert.Contains(t, text, `[data-ws-id="button"] {`)
	assert.Contains(t, text, "color: red;")
	assert.Contains(t, text, "width: 50%;")
}

func TestStylesheetLeavesOutInvalid(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "cascade.preview")
	defer teardown()
	//
	entries := []preview.Entry{
		{Instance: "a", Property: "width", Result: cascade.Result{Computed: value.Px(1), Used: value.Px(1)}},
		{Instance: "a", Property: "--x", Result: cascade.Result{Computed: value.Invalid{}, Used: value.Invalid{}}},
		{Instance: "b", Property: "--y", Result: cascade.Result{Computed: value.GuaranteedInvalid{}, Used: value.GuaranteedInvalid{}}},
	}
	sheet := preview.Stylesheet(entries)
	rules := sheet.Rules()
	require.Len(t, rules, 1)
	assert.Equal(t, []string{"width"}, rules[0].Properties())
	other := preview.Stylesheet(entries[:1])
	sheet.AppendRules(other)
	assert.Len(t, sheet.Rules(), 2)
	assert.Equal(t, 2, strings.Count(sheet.String(), "width: 1px;"))
}

func TestFind(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "cascade.preview")
	defer teardown()
	//
	doc, err := html.Parse(strings.NewReader(`<html><body data-ws-id="body">
<div data-ws-id="card"><h2 data-ws-id="title">Hello</h2></div>
<button data-ws-id="button">OK</button></body></html>`))
	require.NoError(t, err)
	nodes, err := preview.Find(doc, "title")
	require.NoError(t, err)
	require.Len(t, nodes, 1)
	assert.Equal(t, "h2", nodes[0].Data)
	nodes, err = preview.Find(doc, "ghost")
	require.NoError(t, err)
	assert.Empty(t, nodes)
}

func TestSelectorEscaping(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "cascade.preview")
	defer teardown()
	//
	assert.Equal(t, `[data-ws-id="say \"hi\"\\x"]`, preview.Selector(`say "hi"\x`))
	assert.Equal(t, `[data-ws-id="größe"]`, preview.Selector("größe"))
	assert.Equal(t, `[data-ws-id="a\9 b"]`, preview.Selector("a\tb"))
	doc, err := html.Parse(strings.NewReader(`<body>
<p data-ws-id="say &#34;hi&#34;\x">1</p>
<p data-ws-id="größe">2</p>
<p data-ws-id="a&#9;b">3</p></body>`))
	require.NoError(t, err)
	for id, text := range map[model.InstanceID]string{`say "hi"\x`: "1", "größe": "2", "a\tb": "3"} {
		nodes, err := preview.Find(doc, id)
		require.NoError(t, err, string(id))
		if len(nodes) != 1 || nodes[0].FirstChild == nil || nodes[0].FirstChild.Data != text {
			t.Errorf("expected instance %q to find element %s, found %d elements", id, text, len(nodes))
		}
	}
}
