/*
Package text defines the textual element kinds of the document model and
their style properties.

Overview

The element kinds are closed record types registered with the content
package at initialization: plain text, word spaces, explicit horizontal
spacing, line breaks, and the two emphasis forms. Strong and regular
emphasis implement the render-transform capability: they rewrite themselves
into their body carrying one more style scope, folding a font-weight delta
in resp. toggling the italic state. Spaces and line breaks implement the
flow-behaviour capability consumed by the line assembly stage.

The case and small-caps transformations operate on dynamic values: a string
argument is transformed directly, content is wrapped in an override-style
scope instead.

___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package text

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'satz.text'.
func tracer() tracing.Trace {
	return tracing.Select("satz.text")
}
