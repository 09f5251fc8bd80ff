/*
Package snapshotfile loads style object model snapshots from YAML documents.

Snapshot files are used to seed documents for tests and tools. A file
describes breakpoints, the instance tree, style sources, design-system
presets and overrides of browser defaults:

    breakpoints:
      - id: small
        minWidth: 480
    sources:
      - id: primary
        kind: token
        name: Primary
        declarations:
          - css: "color: blue; --gap: 4px"
          - breakpoint: small
            state: ":hover"
            css: "padding: 2px 4px"
    instances:
      - id: body
        component: Body
        tag: body
        styles: [primary]
        local:
          - css: "margin: 0"
        children:
          - id: box
            component: Box
            tag: div
    presets:
      - component: Box
        tag: div
        css: "display: flex"
    tagDefaults:
      - tag: div
        css: "display: block"

Declaration blocks are written as CSS declaration text. Box shorthands are
expanded into their longhands. Local declarations of an instance go into a
local style source with ID "<instance>/local", attached after all the named
sources of the instance.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package snapshotfile

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'cascade.model'.
func tracer() tracing.Trace {
	return tracing.Select("cascade.model")
}
