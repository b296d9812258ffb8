package content

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/

// Args is the argument list for an element constructor: positional values
// in order plus named values, each carrying its source span. Constructors
// consume arguments with Expect and Named and then call Finish, which
// rejects leftovers.
//
// Args is the one mutable type of this package; an Args value belongs to a
// single Construct call and must not be shared.
type Args struct {
	span  Span
	pos   []Spanned[Value]
	named map[string]Spanned[Value]
}

// NewArgs creates an empty argument list, spanning the whole call site.
func NewArgs(span Span) *Args {
	return &Args{span: span}
}

// Pos appends a positional argument. It returns the Args for chaining.
func (a *Args) Pos(v Value, span Span) *Args {
	a.pos = append(a.pos, At(v, span))
	return a
}

// Named sets a named argument. It returns the Args for chaining.
func (a *Args) Named(name string, v Value, span Span) *Args {
	if a.named == nil {
		a.named = make(map[string]Spanned[Value])
	}
	a.named[name] = At(v, span)
	return a
}

// Span returns the source span of the whole argument list.
func (a *Args) Span() Span {
	return a.span
}

// Finish checks that every argument has been consumed. Leftover arguments
// flag an *ArgumentError for the first offender.
func (a *Args) Finish() error {
	for name, v := range a.named {
		return &ArgumentError{Name: name, Unknown: true, Span: v.Span}
	}
	if len(a.pos) > 0 {
		return &ArgumentError{Unknown: true, Span: a.pos[0].Span}
	}
	return nil
}

// Expect consumes the next positional argument, coerced to T. A missing
// argument flags an *ArgumentError carrying the parameter name.
func Expect[T any](a *Args, name string, cast Caster[T]) (T, error) {
	if len(a.pos) == 0 {
		var zero T
		return zero, &ArgumentError{Name: name, Span: a.span}
	}
	arg := a.pos[0]
	a.pos = a.pos[1:]
	return cast.Cast(arg)
}

// Named consumes the named argument name, coerced to T, or returns def if
// the argument was omitted.
func Named[T any](a *Args, name string, cast Caster[T], def T) (T, error) {
	arg, ok := a.named[name]
	if !ok {
		return def, nil
	}
	delete(a.named, name)
	return cast.Cast(arg)
}
