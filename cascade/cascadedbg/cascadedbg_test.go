package cascadedbg_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"

	"github.com/npillmayer/cascade/cascade"
	"github.com/npillmayer/cascade/cascade/cascadedbg"
	"github.com/npillmayer/cascade/model"
	"github.com/npillmayer/cascade/value"
)

func snapshot() *model.Snapshot {
	return model.NewBuilder().
		Instance("body", "Body", "body").
		Child("body", "box", "Box", "div").
		Child("box", "text", "Text", "p").
		StyleSource(model.StyleSource{ID: "theme"}).
		Attach("body", "theme").
		Declare(model.Declaration{StyleSource: "theme", Property: "color", Value: value.K("blue")}).
		Declare(model.Declaration{StyleSource: "theme", Property: "--w", Value: value.Ref("--w")}).
		Declare(model.Declaration{StyleSource: "theme", Property: "width", Value: value.RefOr("--w", value.Px(3))}).
		Build()
}

func TestTree(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "cascade.resolve")
	defer teardown()
	//
	r := cascade.NewResolver(snapshot())
	out := cascadedbg.Tree(r.Explain(model.Selector{"text", "ghost", "box", "body"}, "color"))
	t.Logf("\n%s", out)
	lines := strings.Split(strings.TrimSpace(out), "\n")
	if len(lines) != 6 {
		t.Fatalf("expected 6 lines of output, have %d", len(lines))
	}
	assert.Equal(t, "color of text = blue, declared at body", lines[0])
	assert.Contains(t, lines[1], "[body]")
	assert.Contains(t, lines[2], "* color: blue [theme@base]")
	assert.Contains(t, lines[4], "pass-through")
	//
	out = cascadedbg.Tree(r.Explain(model.Selector{"body"}, "width"))
	t.Logf("\n%s", out)
	assert.Contains(t, out, "width of body = 3px")
	assert.Contains(t, out, "[note]")
}

func TestToGraphViz(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "cascade.resolve")
	defer teardown()
	//
	snap := snapshot()
	var buf bytes.Buffer
	err := cascadedbg.ToGraphViz(snap, cascade.NewResolver(snap), []string{"color", "display"}, &buf)
	assert.NoError(t, err)
	dot := buf.String()
	assert.True(t, strings.HasPrefix(dot, "digraph g {"))
	assert.Contains(t, dot, "inst00001 -> inst00002")
	assert.Contains(t, dot, "inst00002 -> inst00003")
	assert.Contains(t, dot, "<td>blue</td>")
	assert.Contains(t, dot, "<td>block</td>")
}
