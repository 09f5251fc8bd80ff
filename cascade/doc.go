/*
Package cascade resolves the value of a style property for an instance of a
document tree.

Given an instance selector (the queried instance followed by its ancestors up
to the root) and a property name, the resolver computes the value which
actually applies, following the CSS cascade, CSS inheritance and the rules for
custom properties (var() references).

Declarations come from three layers, lowest precedence first:

    1. built-in tag defaults of a browser
    2. design-system presets per (component, tag)
    3. declarations of the style sources attached to an instance

Within the user layer, a declaration guarded by a matching state beats any
declaration without a state; then a later matching breakpoint beats an
earlier one; then a style source attached later beats one attached earlier.
Declarations for breakpoints or states which do not match are never
considered.

For every level of the selector, root first, the winning declaration is
turned into a specified value (defaulting keywords initial, inherit, unset
and currentcolor are applied) and then into a computed value (custom
property references are substituted). The computed value of a level is the
inherited value of the next one. Finally the used value replaces
currentcolor with the value of property color.

Resolution never fails. Unresolvable references and reference cycles
produce the sentinel values value.GuaranteedInvalid and value.Invalid, which
take part in fallback substitution and inheritance like any other value.

The resolver reads a model.Model and never changes it. A Resolver may be
used concurrently from several goroutines.

Status

Early draft—API may change frequently. Please stay patient.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package cascade

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'cascade.resolve'.
func tracer() tracing.Trace {
	return tracing.Select("cascade.resolve")
}
