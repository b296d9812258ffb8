/*
Package style implements scoped style properties and their cascaded
resolution.

Overview

Style properties are declared statically, each with an owning name, a base
default value and a combination discipline. A property either overrides
(the innermost enclosing assignment wins outright) or folds (each enclosing
assignment is combined with the accumulated outer value through a
type-specific combinator).

Assignments of property values are grouped into scopes. A scope is attached
to a content subtree and conceptually pushed onto a stack when rendering
enters that subtree. The stack of active scopes, innermost first, is a
Chain; Resolve answers property queries against a chain.

All types in this package are immutable values: pushing a scope returns a
new chain, the input chain stays valid.

___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package style

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'satz.style'.
func tracer() tracing.Trace {
	return tracing.Select("satz.style")
}
