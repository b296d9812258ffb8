/*
Package flow classifies how document elements behave when a linear sequence
of content is reduced to flowing text.

Overview

Elements that take part in flow assembly expose a Behaviour, a closed tagged
classification: weak elements (spaces of various insistence) collapse
against structurally adjacent weak elements, destructive elements (line
breaks) are hard, order-significant break points. The remaining tags
(invisible, ignorant, supportive) are declared extension points of the same
closed set and are not produced by the element kinds currently defined.

The package also contains a reference Assembler implementing the
consumption contract: weak collapsing by priority and the asymmetric
treatment of trailing destructive elements (the first trailing break is
absorbed, every further one yields a visible empty line).

___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package flow

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'satz.flow'.
func tracer() tracing.Trace {
	return tracing.Select("satz.flow")
}
