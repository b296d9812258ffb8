package style

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/

import "fmt"

// propID gives every declared property a unique identity. Assignments refer
// to their property through this pointer, which lets Resolve match
// assignments without comparing names.
type propID struct {
	name string
}

// Prop is a declared style property with value type V. Properties are
// identified by their declaration, not their name; declare each property
// exactly once, at package level, in the package owning the element kind it
// belongs to. Names follow the convention "<kind>.<property>", e.g.
// "text.weight-delta".
//
// A property's combination discipline is fixed at declaration time: NewProp
// declares an override property, NewFoldProp a folding one.
type Prop[V comparable] struct {
	id   *propID
	base V
	fold func(self, outer V) V
}

// NewProp declares an override-discipline property: the innermost enclosing
// assignment supplies the effective value, base is used when no scope
// assigns the property.
func NewProp[V comparable](name string, base V) Prop[V] {
	return Prop[V]{id: &propID{name: name}, base: base}
}

// NewFoldProp declares a fold-discipline property: enclosing assignments
// are combined outside-in, starting from base, through the given
// combinator. The combinator receives the newly contributed value and the
// already-resolved outer accumulation.
func NewFoldProp[V comparable](name string, base V, fold func(self, outer V) V) Prop[V] {
	if fold == nil {
		panic(fmt.Sprintf("style: fold property %q declared without combinator", name))
	}
	return Prop[V]{id: &propID{name: name}, base: base, fold: fold}
}

// Name returns the name the property was declared with.
func (p Prop[V]) Name() string {
	return p.id.name
}

// Base returns the property's declared base default.
func (p Prop[V]) Base() V {
	return p.base
}

// Set creates an assignment of value v to this property, for inclusion in a
// style scope.
func (p Prop[V]) Set(v V) Assignment {
	return assignment[V]{prop: p, value: v}
}

// --- Assignments and scopes ------------------------------------------------

// Assignment is one property/value pair inside a style scope. Assignments
// are created exclusively through Prop.Set; the set of assignment shapes is
// closed.
type Assignment interface {
	// Key returns the name of the assigned property.
	Key() string
	// Equal compares two assignments for property identity and value.
	Equal(other Assignment) bool
	fmt.Stringer

	id() *propID
}

type assignment[V comparable] struct {
	prop  Prop[V]
	value V
}

func (a assignment[V]) Key() string {
	return a.prop.id.name
}

func (a assignment[V]) id() *propID {
	return a.prop.id
}

func (a assignment[V]) Equal(other Assignment) bool {
	if other == nil || a.prop.id != other.id() {
		return false
	}
	b, ok := other.(assignment[V])
	return ok && a.value == b.value
}

func (a assignment[V]) String() string {
	return fmt.Sprintf("%s = %v", a.prop.id.name, a.value)
}

// Scope is an ordered list of property assignments, attached as one layer
// to a content subtree. Within a scope, a later assignment to the same
// property is the more specific one.
type Scope []Assignment

// NewScope creates a scope from a list of assignments.
func NewScope(assignments ...Assignment) Scope {
	return Scope(assignments)
}

// Equal compares two scopes assignment by assignment.
func (s Scope) Equal(other Scope) bool {
	if len(s) != len(other) {
		return false
	}
	for i, a := range s {
		if !a.Equal(other[i]) {
			return false
		}
	}
	return true
}

func (s Scope) String() string {
	str := "{"
	for i, a := range s {
		if i > 0 {
			str += "; "
		}
		str += a.String()
	}
	return str + "}"
}
