package property

import (
	"github.com/npillmayer/cascade/value"
)

func inherited(initial value.Value) Record {
	return Record{Inherited: true, Initial: initial}
}

func reset(initial value.Value) Record {
	return Record{Inherited: false, Initial: initial}
}

var (
	auto      = value.K("auto")
	none      = value.K("none")
	normal    = value.K("normal")
	medium    = value.K("medium")
	visible   = value.K("visible")
	zero      = value.Px(0)
	currColor = value.CurrentColor
)

// defaultTable lists the initial values for properties. It is never handed
// out directly, see Defaults().
var defaultTable = Map{
	// inherited properties
	"color":               inherited(value.K("black")),
	"cursor":              inherited(auto),
	"direction":           inherited(value.K("ltr")),
	"font-family":         inherited(value.K("serif")),
	"font-size":           inherited(medium),
	"font-style":          inherited(normal),
	"font-weight":         inherited(normal),
	"hyphens":             inherited(value.K("manual")),
	"letter-spacing":      inherited(normal),
	"line-height":         inherited(normal),
	"list-style-image":    inherited(none),
	"list-style-position": inherited(value.K("outside")),
	"list-style-type":     inherited(value.K("disc")),
	"overflow-wrap":       inherited(normal),
	"quotes":              inherited(auto),
	"text-align":          inherited(value.K("start")),
	"text-indent":         inherited(zero),
	"text-shadow":         inherited(none),
	"text-transform":      inherited(none),
	"visibility":          inherited(visible),
	"white-space":         inherited(normal),
	"word-break":          inherited(normal),
	"word-spacing":        inherited(normal),
	// box and positioning
	"display":    reset(value.K("inline")),
	"position":   reset(value.K("static")),
	"float":      reset(none),
	"box-sizing": reset(value.K("content-box")),
	"top":        reset(auto),
	"right":      reset(auto),
	"bottom":     reset(auto),
	"left":       reset(auto),
	"z-index":    reset(auto),
	"overflow-x": reset(visible),
	"overflow-y": reset(visible),
	"opacity":    reset(value.Number(1)),
	// dimensions
	"width":      reset(auto),
	"height":     reset(auto),
	"min-width":  reset(auto),
	"min-height": reset(auto),
	"max-width":  reset(none),
	"max-height": reset(none),
	// margins and padding
	"margin-top":     reset(zero),
	"margin-right":   reset(zero),
	"margin-bottom":  reset(zero),
	"margin-left":    reset(zero),
	"padding-top":    reset(zero),
	"padding-right":  reset(zero),
	"padding-bottom": reset(zero),
	"padding-left":   reset(zero),
	// borders
	"border-top-color":           reset(currColor),
	"border-right-color":         reset(currColor),
	"border-bottom-color":        reset(currColor),
	"border-left-color":          reset(currColor),
	"border-top-style":           reset(none),
	"border-right-style":         reset(none),
	"border-bottom-style":        reset(none),
	"border-left-style":          reset(none),
	"border-top-width":           reset(medium),
	"border-right-width":         reset(medium),
	"border-bottom-width":        reset(medium),
	"border-left-width":          reset(medium),
	"border-top-left-radius":     reset(zero),
	"border-top-right-radius":    reset(zero),
	"border-bottom-right-radius": reset(zero),
	"border-bottom-left-radius":  reset(zero),
	"outline-color":              reset(currColor),
	"outline-style":              reset(none),
	"outline-width":              reset(medium),
	// backgrounds and effects
	"background-color":      reset(value.K("transparent")),
	"background-image":      reset(none),
	"box-shadow":            reset(none),
	"transform":             reset(none),
	"text-decoration-line":  reset(none),
	"text-decoration-color": reset(currColor),
	"vertical-align":        reset(value.K("baseline")),
	"content":               reset(normal),
	// flex and grid
	"flex-direction":        reset(value.K("row")),
	"flex-wrap":             reset(value.K("nowrap")),
	"flex-grow":             reset(value.Number(0)),
	"flex-shrink":           reset(value.Number(1)),
	"flex-basis":            reset(auto),
	"order":                 reset(value.Number(0)),
	"justify-content":       reset(normal),
	"align-items":           reset(normal),
	"align-content":         reset(normal),
	"row-gap":               reset(normal),
	"column-gap":            reset(normal),
	"grid-template-columns": reset(none),
	"grid-template-rows":    reset(none),
}

// Defaults returns a fresh copy of the default property table. Clients may
// extend it with Map.With.
func Defaults() Map {
	m := make(Map, len(defaultTable))
	for k, v := range defaultTable {
		m[k] = v
	}
	return m
}
