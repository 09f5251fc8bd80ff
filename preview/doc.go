/*
Package preview resolves all declared properties of a document in bulk and
renders them as CSS.

A builder's CSS preview shows, for every instance, the value of every
property declared for it. Compute produces these values by calling the
cascade resolver once per (instance, property), exactly as a single-property
recompute after an edit would, so both ways of looking at a document always
agree.

Stylesheet turns the results into a style sheet with one rule per instance,
selecting the instance by its data-ws-id attribute:

    [data-ws-id="box"] {
      color: blue;
      width: 50%;
    }

Style sheets are represented with package douceur/css and are wrapped into
type Sheet, which offers read access to rules and declarations.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package preview

import "github.com/npillmayer/schuko/tracing"

// tracer traces with key 'cascade.preview'.
func tracer() tracing.Trace {
	return tracing.Select("cascade.preview")
}
