package property_test

import (
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/npillmayer/cascade/property"
	"github.com/npillmayer/cascade/value"
)

func TestLookupKnown(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "cascade.property")
	defer teardown()
	//
	tab := property.Defaults()
	r := property.Lookup(tab, "color")
	if !r.Inherited {
		t.Error("expected color to be inherited, isn't")
	}
	r = property.Lookup(tab, "width")
	if r.Inherited || !value.Equal(r.Initial, value.K("auto")) {
		t.Errorf("expected width to be non-inherited with initial auto, is %+v", r)
	}
	r = property.Lookup(tab, "border-top-color")
	if !value.IsCurrentColor(r.Initial) {
		t.Errorf("expected border-top-color to have initial currentcolor, has %v", r.Initial)
	}
}

func TestLookupCustomAndUnknown(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "cascade.property")
	defer teardown()
	//
	r := property.Lookup(nil, "--brand")
	assert.True(t, r.Inherited)
	assert.Equal(t, value.KindGuaranteedInvalid, r.Initial.Kind())
	r = property.Lookup(property.Defaults(), "no-such-thing")
	assert.False(t, r.Inherited)
	assert.Equal(t, value.KindInvalid, r.Initial.Kind())
}

func TestTableWith(t *testing.T) {
	base := property.Defaults()
	ext := base.With("accent-color", property.Record{Inherited: true, Initial: value.K("auto")})
	_, ok := base.Record("accent-color")
	assert.False(t, ok, "With must not modify the receiver")
	r, ok := ext.Record("accent-color")
	require.True(t, ok)
	assert.True(t, r.Inherited)
}

func TestExpandShorthand(t *testing.T) {
	lh, err := property.ExpandShorthand("padding", value.Px(3))
	require.NoError(t, err)
	require.Len(t, lh, 4)
	for _, l := range lh {
		if !value.Equal(l.Value, value.Px(3)) {
			t.Errorf("expected %s to be 3px, is %v", l.Name, l.Value)
		}
	}
	lh, err = property.ExpandShorthand("margin", value.MustParse("1px 2px 3px"))
	require.NoError(t, err)
	want := map[string]value.Value{
		"margin-top":    value.Px(1),
		"margin-right":  value.Px(2),
		"margin-bottom": value.Px(3),
		"margin-left":   value.Px(2),
	}
	for _, l := range lh {
		assert.True(t, value.Equal(want[l.Name], l.Value), "%s = %v", l.Name, l.Value)
	}
	lh, err = property.ExpandShorthand("border-radius", value.MustParse("4px 8px"))
	require.NoError(t, err)
	assert.Equal(t, "border-top-left-radius", lh[0].Name)
	assert.True(t, value.Equal(value.Px(8), lh[1].Value))
	_, err = property.ExpandShorthand("width", value.Px(1))
	assert.Error(t, err)
	_, err = property.ExpandShorthand("margin", value.MustParse("1px 2px 3px 4px 5px"))
	assert.Error(t, err)
}
