/*
Package model implements the style object model of a document: which style
sources are attached to which instance, the declarations of every style
source split by breakpoint and state, design-system presets per component
and tag, and the built-in element defaults of a browser.

Overview

A document is a tree of component instances. Styling is never attached to an
instance directly, but rather through style sources: an instance-local rule
set or a reusable, named token. Every style source carries declarations
keyed by

    (breakpoint, state, property)

The cascade resolver reads a model through interface Model only. This package
provides an immutable implementation, Snapshot, which is created and patched
with a Builder. Patching is copy-on-write: a snapshot handed to a resolver
will never change underneath it.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package model

import (
	"fmt"

	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'cascade.model'.
func tracer() tracing.Trace {
	return tracing.Select("cascade.model")
}

func assertThat(that bool, msg string, msgargs ...interface{}) {
	if !that {
		msg = fmt.Sprintf("model: "+msg, msgargs...)
		panic(msg)
	}
}
