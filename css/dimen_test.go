package css_test

import (
	"errors"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/npillmayer/tyse/core/dimen"
	"github.com/npillmayer/tyse/core/percent"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/npillmayer/cascade/css"
	"github.com/npillmayer/cascade/value"
)

func TestDimenBasic(t *testing.T) {
	ten := css.JustDimen(dimen.PT * 10)
	var du dimen.DU
	switch m := ten.Match(); m {
	case m.Just(&du):
		t.Logf("du = %d", du)
	default:
		t.Errorf("expected Just(10pt) to be a fixed value, isn't: %#v", ten)
	}

	auto := css.Auto()
	switch m := auto.Match(); m {
	case m.IsKind(css.Inherit()):
		t.Errorf("expected dimen auto not to match inherit")
	case m.IsKind(css.Auto()):
		t.Logf("dimen is auto")
	default:
		t.Errorf("expected dimen auto to match auto, isn't: %#v", auto)
	}

	pcnt := css.Percentage(percent.FromInt(80))
	var p percent.Percent
	switch m := pcnt.Match(); m {
	case m.Just(nil):
		t.Errorf("expected Percentage(80) not to be a fixed value")
	case m.Percentage(&p):
		t.Logf("percent = %v", p)
	default:
		t.Errorf("expected Percentage(80) to be a percentage value, isn't: %#v", pcnt)
	}
	if p != percent.FromInt(80) {
		t.Errorf("expected percentage to be extracted, is %v", p)
	}
}

func TestDimenPattern(t *testing.T) {
	ten := css.JustDimen(dimen.PT * 10)
	var du dimen.DU
	m := css.DimenPattern[int](ten)
	zehn := m.OneOf(css.DimenPatterns[int]{
		Just:    m.With(&du).Const(10),
		Auto:    0,
		Default: -1,
	})
	if zehn != 10 {
		t.Errorf("expected zehn == 10, isn't: %#v", zehn)
	}

	d := css.JustDimen(dimen.PT * 10)
	e := css.DimenPattern[dimen.DU](d)
	distance := e.OneOf(css.DimenPatterns[dimen.DU]{
		Just:    e.With(&du).Const(2 * du),
		Auto:    0,
		Default: -1,
	})
	if distance != 2*10*dimen.PT {
		t.Errorf("expected distance to be %v, isn't: %#v", 2*10*dimen.PT, distance)
	}

	kind := func(d css.DimenT) string {
		return css.DimenPattern[string](d).OneOf(css.DimenPatterns[string]{
			Auto:     "auto",
			Inherit:  "inherit",
			Initial:  "initial",
			Just:     "just",
			Relative: "relative",
			Default:  "other",
		})
	}
	assert.Equal(t, "inherit", kind(css.Inherit()))
	assert.Equal(t, "initial", kind(css.Initial()))
	assert.Equal(t, "relative", kind(css.FontRelative(2, "em")))
	assert.Equal(t, "other", kind(css.Content(css.DimenContentMax)))
}

func TestFromValue(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "cascade.css")
	defer teardown()
	//
	abs := map[string]dimen.DU{
		"10pt": 10 * dimen.PT,
		"4px":  3 * dimen.PT,
		"1pc":  12 * dimen.PT,
		"1in":  72 * dimen.PT,
		"0":    0,
		"-2PT": -2 * dimen.PT,
	}
	for text, expected := range abs {
		d, err := css.FromValue(value.MustParse(text))
		require.NoError(t, err, text)
		var du dimen.DU
		if d.Match().Just(&du) == nil || du != expected {
			t.Errorf("expected %s to be %d DU, is %#v", text, expected, d)
		}
	}
	d, err := css.FromValue(value.Percent(50))
	require.NoError(t, err)
	var p percent.Percent
	require.NotNil(t, d.Match().Percentage(&p))
	assert.Equal(t, percent.FromInt(50), p)
	//
	d, err = css.FromValue(value.K("auto"))
	require.NoError(t, err)
	assert.NotNil(t, d.Match().IsKind(css.Auto()))
	d, err = css.FromValue(value.K("inherit"))
	require.NoError(t, err)
	assert.NotNil(t, d.Match().IsKind(css.Inherit()))
	d, err = css.FromValue(value.K("fit-content"))
	require.NoError(t, err)
	assert.NotNil(t, d.Match().IsKind(css.Content(css.DimenContentMin)))
	//
	d, err = css.FromValue(value.MustParse("1.5em"))
	require.NoError(t, err)
	var f float64
	require.NotNil(t, d.Match().Relative(&f))
	assert.Equal(t, 1.5, f)
	assert.True(t, d.IsRelative())
	assert.False(t, d.IsAbsolute())
}

func TestFromValueErrors(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "cascade.css")
	defer teardown()
	//
	for _, v := range []value.Value{
		value.K("blue"),
		value.Number(3),
		value.Unit{Number: 2, Unit: "furlong"},
		value.Invalid{},
		value.Ref("--x"),
		nil,
	} {
		if _, err := css.FromValue(v); !errors.Is(err, css.ErrNotADimension) {
			t.Errorf("expected %v not to be a dimension, error is %v", v, err)
		}
	}
}

func TestResolve(t *testing.T) {
	ctx := css.Context{
		FontSize:       16 * dimen.PT,
		RootFontSize:   10 * dimen.PT,
		ViewportWidth:  800 * dimen.PT,
		ViewportHeight: 600 * dimen.PT,
		PercentBase:    200 * dimen.PT,
	}
	cases := map[string]dimen.DU{
		"12pt":   12 * dimen.PT,
		"2em":    32 * dimen.PT,
		"1ex":    8 * dimen.PT,
		"3rem":   30 * dimen.PT,
		"10vw":   80 * dimen.PT,
		"50vh":   300 * dimen.PT,
		"10vmin": 60 * dimen.PT,
		"10vmax": 80 * dimen.PT,
		"25%":    50 * dimen.PT,
	}
	for text, expected := range cases {
		d, err := css.FromValue(value.MustParse(text))
		require.NoError(t, err, text)
		du, ok := d.Resolve(ctx)
		if !ok || du != expected {
			t.Errorf("expected %s to resolve to %d, is %d (%v)", text, expected, du, ok)
		}
	}
	if _, ok := css.Auto().Resolve(ctx); ok {
		t.Errorf("expected auto not to be resolvable")
	}
}
