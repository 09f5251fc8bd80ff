package value

import (
	"strconv"
	"strings"
)

// Kind is the discriminant of a Value.
type Kind uint8

// Kinds of values.
const (
	KindInvalid           Kind = iota // explicit invalid marker
	KindGuaranteedInvalid             // initial value of custom properties
	KindKeyword                       // e.g. "auto", "inherit", "blue"
	KindUnit                          // number with unit, e.g. "10px", "50%", "1.5"
	KindFunc                          // function call, e.g. "rgb(0, 0, 255)"
	KindTuple                         // space separated list
	KindVar                           // custom property reference
	KindUnparsed                      // opaque CSS text
)

// Value is a structured CSS value. The set of implementations is closed;
// clients switch over Kind() or use a type switch.
type Value interface {
	Kind() Kind
	String() string
	isValue()
}

// --- Keyword ---------------------------------------------------------------

// Keyword is an identifier value. Keyword names are always lower case.
type Keyword struct {
	Name string
}

// K creates a keyword value. The name is converted to lower case, as CSS
// keywords are ASCII case-insensitive.
func K(name string) Keyword {
	return Keyword{Name: strings.ToLower(name)}
}

func (k Keyword) Kind() Kind     { return KindKeyword }
func (k Keyword) String() string { return k.Name }
func (k Keyword) isValue()       {}

// --- Unit ------------------------------------------------------------------

// Unit is a numeric value with an optional unit. Percentages use unit "%",
// plain numbers use an empty unit.
type Unit struct {
	Number float64
	Unit   string
}

// Px creates a length in CSS pixels.
func Px(n float64) Unit {
	return Unit{Number: n, Unit: "px"}
}

// Number creates a unit-less number.
func Number(n float64) Unit {
	return Unit{Number: n}
}

// Percent creates a percentage.
func Percent(n float64) Unit {
	return Unit{Number: n, Unit: "%"}
}

func (u Unit) Kind() Kind { return KindUnit }
func (u Unit) isValue()   {}

func (u Unit) String() string {
	return strconv.FormatFloat(u.Number, 'f', -1, 64) + u.Unit
}

// --- Func ------------------------------------------------------------------

// Func is a function call value other than var(…).
type Func struct {
	Name string
	Args []Value
}

func (f Func) Kind() Kind { return KindFunc }
func (f Func) isValue()   {}

func (f Func) String() string {
	return f.Name + "(" + join(f.Args, ", ") + ")"
}

// --- Tuple -----------------------------------------------------------------

// Tuple is a space separated sequence of values, e.g. "1px solid red".
type Tuple struct {
	Items []Value
}

func (t Tuple) Kind() Kind     { return KindTuple }
func (t Tuple) String() string { return join(t.Items, " ") }
func (t Tuple) isValue()       {}

// --- Var -------------------------------------------------------------------

// Var is a reference to a custom property, optionally with a fallback value.
// Name includes the leading "--".
type Var struct {
	Name     string
	Fallback Value // nil if no fallback has been given
}

// Ref creates a custom property reference without fallback.
func Ref(name string) Var {
	return Var{Name: name}
}

// RefOr creates a custom property reference with a fallback.
func RefOr(name string, fallback Value) Var {
	return Var{Name: name, Fallback: fallback}
}

// HasFallback is true if a fallback value has been supplied.
func (v Var) HasFallback() bool {
	return v.Fallback != nil
}

func (v Var) Kind() Kind { return KindVar }
func (v Var) isValue()   {}

func (v Var) String() string {
	if v.Fallback == nil {
		return "var(" + v.Name + ")"
	}
	return "var(" + v.Name + ", " + v.Fallback.String() + ")"
}

// --- Unparsed --------------------------------------------------------------

// Unparsed carries CSS text the structured model has no variant for,
// e.g. colors in hex notation or strings.
type Unparsed struct {
	Text string
}

func (u Unparsed) Kind() Kind     { return KindUnparsed }
func (u Unparsed) String() string { return u.Text }
func (u Unparsed) isValue()       {}

// --- Sentinels -------------------------------------------------------------

// Invalid is the result of a custom property dependency cycle.
type Invalid struct{}

func (Invalid) Kind() Kind     { return KindInvalid }
func (Invalid) String() string { return "<invalid>" }
func (Invalid) isValue()       {}

// GuaranteedInvalid is the initial value of every custom property.
type GuaranteedInvalid struct{}

func (GuaranteedInvalid) Kind() Kind     { return KindGuaranteedInvalid }
func (GuaranteedInvalid) String() string { return "<guaranteed-invalid>" }
func (GuaranteedInvalid) isValue()       {}

// IsSentinel returns true for Invalid and GuaranteedInvalid (and nil).
func IsSentinel(v Value) bool {
	if v == nil {
		return true
	}
	k := v.Kind()
	return k == KindInvalid || k == KindGuaranteedInvalid
}

// --- Equality --------------------------------------------------------------

// Equal compares two values structurally. nil equals nil only.
func Equal(a, b Value) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	if a.Kind() != b.Kind() {
		return false
	}
	switch x := a.(type) {
	case Keyword:
		return x == b.(Keyword)
	case Unit:
		return x == b.(Unit)
	case Unparsed:
		return x == b.(Unparsed)
	case Invalid, GuaranteedInvalid:
		return true
	case Func:
		y := b.(Func)
		return x.Name == y.Name && equalAll(x.Args, y.Args)
	case Tuple:
		return equalAll(x.Items, b.(Tuple).Items)
	case Var:
		y := b.(Var)
		return x.Name == y.Name && Equal(x.Fallback, y.Fallback)
	}
	return false
}

func equalAll(a, b []Value) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !Equal(a[i], b[i]) {
			return false
		}
	}
	return true
}

func join(vals []Value, sep string) string {
	var b strings.Builder
	for i, v := range vals {
		if i > 0 {
			b.WriteString(sep)
		}
		if v == nil {
			continue
		}
		b.WriteString(v.String())
	}
	return b.String()
}
