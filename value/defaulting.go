package value

// Defaulting classifies a value as one of the CSS-wide defaulting keywords
// (plus currentcolor, which behaves like one for property `color`).
type Defaulting uint8

// Defaulting keywords.
const (
	NoDefaulting        Defaulting = iota // any other value
	DefaultInitial                        // `initial`
	DefaultInherit                        // `inherit`
	DefaultUnset                          // `unset`
	DefaultCurrentColor                   // `currentcolor`
)

// Well known keyword values.
var (
	Initial      = Keyword{Name: "initial"}
	Inherit      = Keyword{Name: "inherit"}
	Unset        = Keyword{Name: "unset"}
	CurrentColor = Keyword{Name: "currentcolor"}
)

// DefaultingOf returns the defaulting class of v. nil and non-keyword values
// are NoDefaulting.
func DefaultingOf(v Value) Defaulting {
	k, ok := v.(Keyword)
	if !ok {
		return NoDefaulting
	}
	switch k.Name {
	case "initial":
		return DefaultInitial
	case "inherit":
		return DefaultInherit
	case "unset":
		return DefaultUnset
	case "currentcolor":
		return DefaultCurrentColor
	}
	return NoDefaulting
}

// IsCurrentColor is true if v is the keyword `currentcolor`.
func IsCurrentColor(v Value) bool {
	return DefaultingOf(v) == DefaultCurrentColor
}

func (d Defaulting) String() string {
	switch d {
	case DefaultInitial:
		return "initial"
	case DefaultInherit:
		return "inherit"
	case DefaultUnset:
		return "unset"
	case DefaultCurrentColor:
		return "currentcolor"
	}
	return "none"
}
