/*
Package value implements structured CSS property values.

Declarations of the style object model never carry raw CSS text. Instead,
values arrive already parsed into a small tagged union:

    Value
        = Keyword name
        | Unit number unit
        | Func name args
        | Tuple items
        | Var name fallback
        | Unparsed text
        | Invalid
        | GuaranteedInvalid

Values are immutable and structurally comparable (see Equal). The two
sentinels Invalid and GuaranteedInvalid are used by the cascade resolver to
express failed custom-property substitution and unset custom properties.

Status

Early draft—API may change frequently. Please stay patient.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package value

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'cascade.value'.
func tracer() tracing.Trace {
	return tracing.Select("cascade.value")
}
