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

// Node is one typed element instance, e.g. a line break or a strong
// emphasis wrapping a body. Element kinds are closed record types,
// registered once at package initialization; the rest of the pipeline only
// ever sees the capability-erased Content carrier.
type Node interface {
	// Kind returns the registered name of the element kind.
	Kind() string
	// Fields lists the publicly exposed attribute names, in declaration
	// order. May be empty.
	Fields() []string
	// Field returns a named attribute, or Nothing if the kind does not
	// expose it. Field never mutates.
	Field(name string) maybe.Maybe[Value]
	// Equals compares with another element instance. Instances of
	// different kinds are never equal.
	Equals(other Node) bool
}

// --- Capabilities ----------------------------------------------------------
//
// Capabilities are optional behaviours of an element kind, declared by
// implementing one of the interfaces below on the kind's Node type. The
// capability set is closed: render-transform, flow behaviour, and label
// exclusion.

// Showable is the render-transform capability. Show receives the effective
// style chain at the element's position and returns a replacement content
// value. Show is a pure rewrite rule: it must not consult anything beyond
// its own state and the passed chain, and it must terminate (nested
// emphasis relies on the fold combinators of the style properties it sets,
// not on recursive re-invocation).
type Showable interface {
	Node
	Show(chain style.Chain) (Content, error)
}

// Behaved is the flow-behaviour capability: a pure function from the
// element's state to its flow classification.
type Behaved interface {
	Node
	Behaviour() flow.Behaviour
}

// Unlabellable marks element kinds that cannot be the target of a
// user-assigned label.
type Unlabellable interface {
	Node
	Unlabellable()
}

// --- Kind registry ---------------------------------------------------------

// Spec declares one element kind: its registered name and its constructor.
// The constructor consumes its declared parameters from the argument list
// (required positional ones with Expect, optional named ones with Named)
// and finishes with args.Finish.
type Spec struct {
	Name      string
	Construct func(args *Args) (Node, error)
}

var registry = map[string]Spec{}

// Register declares an element kind. The kind set is fixed at compile time
// of the system: Register is to be called from package init functions only,
// and panics on a duplicate name.
func Register(spec Spec) {
	if _, ok := registry[spec.Name]; ok {
		panic(fmt.Sprintf("content: duplicate registration of element kind %q", spec.Name))
	}
	registry[spec.Name] = spec
}

// Construct validates args against the declared parameter list of the
// given element kind and returns the new element, packed as a content
// value with an empty style-scope chain. Construction is all-or-nothing;
// on error no content value exists.
//
// Errors are *ArgumentError (missing required or unknown named parameter)
// and *TypeError (argument of inadmissible dynamic type).
func Construct(kind string, args *Args) (Content, error) {
	spec, ok := registry[kind]
	if !ok {
		return Content{}, fmt.Errorf("unknown element kind: %s", kind)
	}
	tracer().Debugf("constructing '%s' element", kind)
	node, err := spec.Construct(args)
	if err != nil {
		return Content{}, err
	}
	return Pack(node), nil
}
