/*
Package property holds metadata for CSS properties: whether a property is
inherited and what its initial value is.

CSS knows a whole lot of properties. The table in this package covers the
properties a visual builder commonly exposes in its style panel; clients may
supply their own table to the cascade resolver (see type Table).

Custom properties—names starting with "--"—are never listed. They are
always inherited and their initial value is the guaranteed-invalid value.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package property

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'cascade.property'.
func tracer() tracing.Trace {
	return tracing.Select("cascade.property")
}
