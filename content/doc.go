/*
Package content implements the uniform representation of document elements.

Overview

Every document element, no matter its kind, travels through the compiler as
a Content value: an immutable carrier wrapping exactly one typed element
instance (a Node) plus zero or more layered style scopes. Element kinds are
a closed, statically known set, registered at package initialization time;
each kind may implement a subset of a small, closed list of capabilities
(render-transform, flow behaviour, label exclusion).

Constructor arguments arrive dynamically typed from the script/markup
evaluator. The package converts them into the concrete types a constructor
expects through per-target-type casters, failing with typed, source-located
errors. Construction is all-or-nothing: there is no partially constructed
content value.

Nothing in this package mutates in place. Attaching a style scope, a label,
or rewriting an element through its render-transform capability all return
fresh values, so content may be shared freely across concurrent compiler
invocations.

___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package content

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'satz.content'.
func tracer() tracing.Trace {
	return tracing.Select("satz.content")
}
