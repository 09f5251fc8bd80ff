/*
Package css converts resolved style values into dimensions for rendering.

The cascade resolver produces structured values (see package value). A
renderer needs lengths in device-independent units instead. FromValue turns
a resolved value into an option type DimenT, which is either a fixed
dimension, a percentage, a length relative to the font or the viewport, or
one of the keywords auto, initial and inherit. Relative dimensions are made
absolute with DimenT.Resolve, given a Context.

Status

Early draft—API may change frequently. Please stay patient.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package css

import "github.com/npillmayer/schuko/tracing"

// tracer traces with key 'cascade.css'.
func tracer() tracing.Trace {
	return tracing.Select("cascade.css")
}
