package property

import (
	"strings"

	"github.com/npillmayer/cascade/value"
)

// CustomPrefix is the reserved prefix of custom property names.
const CustomPrefix = "--"

// IsCustom returns true if name denotes a custom property, e.g. "--main-color".
func IsCustom(name string) bool {
	return strings.HasPrefix(name, CustomPrefix)
}

// Record is the metadata of a single CSS property.
type Record struct {
	Inherited bool        // is the property inherited by default?
	Initial   value.Value // initial value as of the CSS specification
}

// Table is an interface for property metadata lookup. A second return value
// of false signals an unknown property.
type Table interface {
	Record(name string) (Record, bool)
}

// Map is a Table implemented as a map from property names to records.
type Map map[string]Record

// Record is part of interface Table.
func (m Map) Record(name string) (Record, bool) {
	r, ok := m[name]
	return r, ok
}

// With returns a copy of m with a record for name added or replaced.
func (m Map) With(name string, r Record) Map {
	c := make(Map, len(m)+1)
	for k, v := range m {
		c[k] = v
	}
	c[name] = r
	return c
}

var customRecord = Record{Inherited: true, Initial: value.GuaranteedInvalid{}}

// unknownRecord is used for property names not found in a table. Such names
// are a caller contract violation; we degrade to a non-inherited property
// with an invalid initial value instead of failing.
var unknownRecord = Record{Inherited: false, Initial: value.Invalid{}}

// Lookup returns the metadata record for name, respecting the rules for
// custom properties. Unknown names do not fail, but return a non-inherited
// record with an invalid initial value.
func Lookup(t Table, name string) Record {
	if IsCustom(name) {
		return customRecord
	}
	if t != nil {
		if r, ok := t.Record(name); ok {
			return r
		}
	}
	tracer().P("property", name).Infof("unknown property %q", name)
	return unknownRecord
}

// IsInherited returns whether the standard behaviour for a property is to be
// inherited or not.
func IsInherited(t Table, name string) bool {
	return Lookup(t, name).Inherited
}
