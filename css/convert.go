package css

import (
	"errors"
	"fmt"
	"math"

	"github.com/npillmayer/cascade/value"
	"github.com/npillmayer/tyse/core/dimen"
	"github.com/npillmayer/tyse/core/percent"
)

// ErrNotADimension is returned by FromValue for values which do not denote
// a length.
var ErrNotADimension = errors.New("css: value is not a dimension")

// Absolute units, expressed in printer's points.
var absoluteUnits = map[string]float64{
	"pt": 1,
	"px": 0.75,
	"pc": 12,
	"in": 72,
	"cm": 72 / 2.54,
	"mm": 72 / 25.4,
	"q":  72 / 101.6,
}

// FromValue converts a resolved value into a dimension.
//
// Absolute lengths are converted to dimen.DU, percentages to a Percentage.
// Font relative (em, ex, ch, rem) and viewport relative (vw, vh, vmin, vmax)
// lengths keep their factor and have to be made absolute with Resolve.
// A unitless zero is a fixed dimension of 0. Keywords auto, initial and inherit
// map to the respective option, min-content, max-content and fit-content to
// content dependent dimensions.
func FromValue(v value.Value) (DimenT, error) {
	switch x := v.(type) {
	case value.Keyword:
		switch x.Name {
		case "auto":
			return Auto(), nil
		case "initial":
			return Initial(), nil
		case "inherit":
			return Inherit(), nil
		case "min-content":
			return Content(DimenContentMin), nil
		case "max-content":
			return Content(DimenContentMax), nil
		case "fit-content":
			return Content(DimenContentFit), nil
		}
	case value.Unit:
		return fromUnit(x)
	case nil:
		return DimenT{}, fmt.Errorf("%w: <nil>", ErrNotADimension)
	}
	tracer().Debugf("css: cannot convert %v to a dimension", v)
	return DimenT{}, fmt.Errorf("%w: %v", ErrNotADimension, v)
}

func fromUnit(u value.Unit) (DimenT, error) {
	if pt, ok := absoluteUnits[u.Unit]; ok {
		return JustDimen(points(u.Number * pt)), nil
	}
	switch u.Unit {
	case "":
		if u.Number == 0 {
			return JustDimen(0), nil
		}
	case "%":
		d := Percentage(percent.FromInt(int(math.Round(u.Number))))
		d.factor = u.Number
		return d, nil
	case "em", "ex", "ch", "rem":
		return FontRelative(u.Number, u.Unit), nil
	case "vw", "vh", "vmin", "vmax":
		return ViewportRelative(u.Number, u.Unit), nil
	}
	return DimenT{}, fmt.Errorf("%w: %v", ErrNotADimension, u)
}

func points(n float64) dimen.DU {
	return dimen.DU(math.Round(n * float64(dimen.PT)))
}

// Context holds the reference lengths needed to make relative dimensions
// absolute.
type Context struct {
	FontSize       dimen.DU // em; ex and ch are approximated as half an em
	RootFontSize   dimen.DU // rem
	ViewportWidth  dimen.DU
	ViewportHeight dimen.DU
	PercentBase    dimen.DU // reference length for percentages, e.g. the containing block width
}

// Resolve makes a dimension absolute. It returns false for keywords and
// content dependent dimensions, which need layout information.
func (d DimenT) Resolve(ctx Context) (dimen.DU, bool) {
	if d.IsAbsolute() {
		return d.d, true
	}
	var base dimen.DU
	factor := d.factor
	switch d.flags & relativeMask {
	case dimenEM:
		base = ctx.FontSize
	case dimenEX, dimenCH:
		base = ctx.FontSize / 2
	case dimenREM:
		base = ctx.RootFontSize
	case dimenVW:
		base, factor = ctx.ViewportWidth, factor/100
	case dimenVH:
		base, factor = ctx.ViewportHeight, factor/100
	case dimenVMIN:
		base, factor = minDU(ctx.ViewportWidth, ctx.ViewportHeight), factor/100
	case dimenVMAX:
		base, factor = maxDU(ctx.ViewportWidth, ctx.ViewportHeight), factor/100
	case dimenPercent:
		base, factor = ctx.PercentBase, factor/100
	default:
		return 0, false
	}
	return dimen.DU(math.Round(float64(base) * factor)), true
}

func minDU(a, b dimen.DU) dimen.DU {
	if a < b {
		return a
	}
	return b
}

func maxDU(a, b dimen.DU) dimen.DU {
	if a > b {
		return a
	}
	return b
}
