package style

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/

// Chain is the stack of style scopes active at a point of a document tree,
// innermost scope first. The empty (nil) chain is legal and resolves every
// property to its base default.
type Chain []Scope

// Push returns a new chain with scope s as the new innermost scope. The
// receiver chain is left unchanged and stays valid.
func (ch Chain) Push(s Scope) Chain {
	chain := make(Chain, 0, len(ch)+1)
	chain = append(chain, s)
	return append(chain, ch...)
}

// PushAll pushes a list of scopes, given innermost first, onto the chain.
func (ch Chain) PushAll(scopes []Scope) Chain {
	if len(scopes) == 0 {
		return ch
	}
	chain := make(Chain, 0, len(ch)+len(scopes))
	chain = append(chain, scopes...)
	return append(chain, ch...)
}

// Resolve answers a property query against a chain of style scopes.
//
// For an override-discipline property the chain is walked from the
// innermost scope outwards and the first assignment found supplies the
// effective value. For a fold-discipline property the assignments are
// accumulated outside-in, starting from the property's base default, using
// the property's combinator; the innermost assignment is combined last.
//
// A chain that does not assign the property at all resolves to the base
// default, for both disciplines.
func Resolve[V comparable](p Prop[V], ch Chain) V {
	if p.fold == nil {
		for _, scope := range ch { // innermost first
			for i := len(scope) - 1; i >= 0; i-- {
				if a, ok := find(p, scope[i]); ok {
					tracer().Debugf("resolve %s (override) = %v", p.id.name, a.value)
					return a.value
				}
			}
		}
		return p.base
	}
	acc := p.base
	for i := len(ch) - 1; i >= 0; i-- { // outermost first
		for _, asgn := range ch[i] {
			if a, ok := find(p, asgn); ok {
				acc = p.fold(a.value, acc)
			}
		}
	}
	tracer().Debugf("resolve %s (fold) = %v", p.id.name, acc)
	return acc
}

// find matches an assignment against a property declaration. Property
// identity is pointer identity of the declaration, so properties of equal
// name but separate declarations never match.
func find[V comparable](p Prop[V], a Assignment) (assignment[V], bool) {
	if a == nil || a.id() != p.id {
		return assignment[V]{}, false
	}
	av, ok := a.(assignment[V])
	return av, ok
}
