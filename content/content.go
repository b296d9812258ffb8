package content

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"fmt"

	"github.com/npillmayer/satz/flow"
	"github.com/npillmayer/satz/maybe"
	"github.com/npillmayer/satz/style"
)

// Content is the uniform carrier for document elements: exactly one element
// instance plus zero or more layered style scopes and an optional label.
// Content is an immutable value type; operations return fresh values and
// nesting is by value containment, a parent exclusively owns its children.
type Content struct {
	node   Node
	scopes []style.Scope // innermost first
	label  string
}

// Pack wraps a typed element instance as a content value with an empty
// style-scope chain.
func Pack(node Node) Content {
	return Content{node: node}
}

// Node unwraps the typed element instance. Capability implementations
// operate on the instance; everything else in the pipeline operates on the
// Content carrier.
func (c Content) Node() Node {
	return c.node
}

// Kind returns the element kind name.
func (c Content) Kind() string {
	if c.node == nil {
		return "none"
	}
	return c.node.Kind()
}

// Field returns the named, publicly exposed attribute of the element
// instance, or Nothing if this kind does not expose it. Used for read-only
// introspection by the scripting layer.
func (c Content) Field(name string) maybe.Maybe[Value] {
	if c.node == nil {
		return maybe.Nothing[Value]()
	}
	return c.node.Field(name)
}

// Styled returns a new content value with one additional style scope
// containing the given assignments, pushed as the new innermost scope. The
// receiver is left untouched.
func (c Content) Styled(assignments ...style.Assignment) Content {
	scopes := make([]style.Scope, 0, len(c.scopes)+1)
	scopes = append(scopes, style.NewScope(assignments...))
	scopes = append(scopes, c.scopes...)
	return Content{node: c.node, scopes: scopes, label: c.label}
}

// Scopes returns the attached style scopes, innermost first. The returned
// slice is shared and must be treated as read-only.
func (c Content) Scopes() []style.Scope {
	return c.scopes
}

// Chain extends an outer style chain with this content value's attached
// scopes, yielding the chain effective for the element instance inside.
func (c Content) Chain(outer style.Chain) style.Chain {
	return outer.PushAll(c.scopes)
}

// Label returns the user-assigned label, or "".
func (c Content) Label() string {
	return c.label
}

// Labelled returns a new content value carrying the given label. Element
// kinds with the label-exclusion capability cannot be labelled.
func (c Content) Labelled(label string) (Content, error) {
	if _, ok := c.node.(Unlabellable); ok {
		return Content{}, fmt.Errorf("cannot label '%s' element", c.Kind())
	}
	return Content{node: c.node, scopes: c.scopes, label: label}, nil
}

// Equal compares two content values structurally: element kind, element
// data, attached style scopes and label all have to agree.
func (c Content) Equal(other Content) bool {
	if c.node == nil || other.node == nil {
		return c.node == nil && other.node == nil
	}
	if !c.node.Equals(other.node) || c.label != other.label {
		return false
	}
	if len(c.scopes) != len(other.scopes) {
		return false
	}
	for i, scope := range c.scopes {
		if !scope.Equal(other.scopes[i]) {
			return false
		}
	}
	return true
}

func (c Content) String() string {
	if c.node == nil {
		return "[none]"
	}
	return "[" + c.node.Kind() + "]"
}

// --- Capability dispatch ---------------------------------------------------

// BehaviourOf returns the flow classification of a content value's element
// instance, with ok false if the kind does not implement the flow-behaviour
// capability.
func BehaviourOf(c Content) (flow.Behaviour, bool) {
	if b, ok := c.node.(Behaved); ok {
		return b.Behaviour(), true
	}
	return flow.Behaviour{}, false
}

// Show applies the render-transform capability of a content value under the
// given outer style chain. The element receives the chain extended by the
// content value's own scopes; the replacement keeps those scopes attached,
// wrapped around whatever the rewrite produced. ok is false if the kind
// does not implement the capability; the renderer invokes Show repeatedly,
// fixpoint-style, until it is.
func Show(c Content, outer style.Chain) (Content, bool, error) {
	sh, ok := c.node.(Showable)
	if !ok {
		return c, false, nil
	}
	tracer().Debugf("show rewrite of '%s' element", c.Kind())
	rewritten, err := sh.Show(c.Chain(outer))
	if err != nil {
		return Content{}, true, err
	}
	return rewritten.withOuterScopes(c.scopes), true, nil
}

// withOuterScopes layers additional scopes outside the existing ones.
func (c Content) withOuterScopes(outer []style.Scope) Content {
	if len(outer) == 0 {
		return c
	}
	scopes := make([]style.Scope, 0, len(c.scopes)+len(outer))
	scopes = append(scopes, c.scopes...)
	scopes = append(scopes, outer...)
	return Content{node: c.node, scopes: scopes, label: c.label}
}
