package property

import (
	"fmt"

	"github.com/npillmayer/cascade/value"
)

// Longhand is a single (fine grained) property together with its value.
type Longhand struct {
	Name  string
	Value value.Value
}

// IsShorthand returns true for the box shorthands ExpandShorthand knows about.
func IsShorthand(name string) bool {
	_, ok := shorthands[name]
	return ok
}

type shorthand struct {
	prefix, suffix string
	dirs           [4]string
}

var shorthands = map[string]shorthand{
	"margin":        {"margin", "", fourDirs},
	"padding":       {"padding", "", fourDirs},
	"border-color":  {"border", "color", fourDirs},
	"border-width":  {"border", "width", fourDirs},
	"border-style":  {"border", "style", fourDirs},
	"border-radius": {"border", "radius", fourCorners},
}

var fourDirs = [4]string{"top", "right", "bottom", "left"}
var fourCorners = [4]string{"top-left", "top-right", "bottom-right", "bottom-left"}

// ExpandShorthand splits up a box shorthand property into its individual
// components.
// Example:
//
//    ExpandShorthand("padding", value.Px(3))
//
// will return
//
//    "padding-top"    => 3px
//    "padding-right"  => 3px
//    "padding-bottom" => 3px
//    "padding-left"   => 3px
//
// A Tuple value distributes its 1–4 items clockwise, following the usual CSS
// rules. Defaulting keywords and var() references are copied to all four
// longhands.
func ExpandShorthand(name string, v value.Value) ([]Longhand, error) {
	sh, ok := shorthands[name]
	if !ok {
		return nil, fmt.Errorf("property: not recognized as shorthand: %s", name)
	}
	var fields []value.Value
	if t, ok := v.(value.Tuple); ok {
		fields = t.Items
	} else {
		fields = []value.Value{v}
	}
	l := len(fields)
	if l == 0 || l > 4 {
		return nil, fmt.Errorf("property: expecting 1–4 values for %s, have %d", name, l)
	}
	// index of the field to use for each of the four sides
	var pick [4]int
	switch l {
	case 1:
		pick = [4]int{0, 0, 0, 0}
	case 2:
		pick = [4]int{0, 1, 0, 1}
	case 3:
		pick = [4]int{0, 1, 2, 1}
	case 4:
		pick = [4]int{0, 1, 2, 3}
	}
	r := make([]Longhand, 4)
	for i := range r {
		r[i] = Longhand{Name: longhandName(sh.prefix, sh.suffix, sh.dirs[i]), Value: fields[pick[i]]}
	}
	return r, nil
}

func longhandName(prefix, suffix, dir string) string {
	if suffix == "" {
		return prefix + "-" + dir
	}
	return prefix + "-" + dir + "-" + suffix
}
