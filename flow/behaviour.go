package flow

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/

import "fmt"

// Behaviour classifies an element's role during flow assembly. The zero
// Behaviour carries no classification (the element takes no part in
// collapsing). The set of classifications is closed; values are created
// through the constructor functions below.
type Behaviour struct {
	kind     behaviourKind
	priority int
}

type behaviourKind int8

const (
	none behaviourKind = iota
	weak
	destructive
	invisible
	ignorant
	supportive
)

// Weak classifies an element that survives only against weaker neighbours:
// of two or more structurally adjacent weak elements, the one with the
// highest priority survives.
func Weak(priority int) Behaviour {
	return Behaviour{kind: weak, priority: priority}
}

// Destructive classifies a hard, order-significant break point.
func Destructive() Behaviour {
	return Behaviour{kind: destructive}
}

// Invisible classifies an element that produces no visible output but is
// otherwise kept in place.
func Invisible() Behaviour {
	return Behaviour{kind: invisible}
}

// Ignorant classifies an element that neither collapses nor supports weak
// neighbours.
func Ignorant() Behaviour {
	return Behaviour{kind: ignorant}
}

// Supportive classifies an ordinary visible element; weak elements survive
// only between supportive neighbours.
func Supportive() Behaviour {
	return Behaviour{kind: supportive}
}

// IsNone is true for the zero Behaviour.
func (b Behaviour) IsNone() bool {
	return b.kind == none
}

// IsWeak is true for weak classifications.
func (b Behaviour) IsWeak() bool {
	return b.kind == weak
}

// IsDestructive is true for destructive classifications.
func (b Behaviour) IsDestructive() bool {
	return b.kind == destructive
}

// Priority returns a weak element's collapse priority; it is meaningless
// for other classifications.
func (b Behaviour) Priority() int {
	return b.priority
}

func (b Behaviour) String() string {
	switch b.kind {
	case weak:
		return fmt.Sprintf("weak(%d)", b.priority)
	case destructive:
		return "destructive"
	case invisible:
		return "invisible"
	case ignorant:
		return "ignorant"
	case supportive:
		return "supportive"
	}
	return "none"
}
