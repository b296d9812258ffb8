package content

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/

import "strconv"

// Value is a dynamically typed argument value, as handed over by the
// script/markup evaluator. The set of value kinds is closed: none, boolean,
// integer, string, and nested content.
type Value struct {
	kind ValueKind
	b    bool
	i    int64
	s    string
	c    Content
}

// ValueKind discriminates the dynamic type of a Value.
type ValueKind int8

const (
	NoneKind ValueKind = iota
	BoolKind
	IntKind
	StrKind
	ContentKind
)

// None is the absent value. It is also the zero Value.
func None() Value {
	return Value{}
}

// Bool wraps a boolean.
func Bool(b bool) Value {
	return Value{kind: BoolKind, b: b}
}

// Int wraps an integer.
func Int(i int64) Value {
	return Value{kind: IntKind, i: i}
}

// Str wraps a string.
func Str(s string) Value {
	return Value{kind: StrKind, s: s}
}

// Wrap wraps a content value for use as a dynamic argument value.
func Wrap(c Content) Value {
	return Value{kind: ContentKind, c: c}
}

// Kind returns the dynamic kind of the value.
func (v Value) Kind() ValueKind {
	return v.kind
}

// TypeName returns the name of the value's dynamic type, as used in
// type-mismatch diagnostics.
func (v Value) TypeName() string {
	switch v.kind {
	case BoolKind:
		return "boolean"
	case IntKind:
		return "integer"
	case StrKind:
		return "string"
	case ContentKind:
		return "content"
	}
	return "none"
}

func (v Value) String() string {
	switch v.kind {
	case BoolKind:
		return strconv.FormatBool(v.b)
	case IntKind:
		return strconv.FormatInt(v.i, 10)
	case StrKind:
		return strconv.Quote(v.s)
	case ContentKind:
		return "[" + v.c.Kind() + "]"
	}
	return "none"
}

// --- Matching --------------------------------------------------------------

// Match returns a matcher for use in a switch statement:
//
//	var s string
//	switch m := v.Match(); m {
//	case m.Str(&s):
//	    …
//	default:
//	    …
//	}
func (v Value) Match() *ValueMatcher {
	return &ValueMatcher{v: v}
}

type ValueMatcher struct {
	v Value
}

func (m *ValueMatcher) None() *ValueMatcher {
	if m.v.kind == NoneKind {
		return m
	}
	return nil
}

func (m *ValueMatcher) Bool(b *bool) *ValueMatcher {
	if m.v.kind == BoolKind {
		if b != nil {
			*b = m.v.b
		}
		return m
	}
	return nil
}

func (m *ValueMatcher) Int(i *int64) *ValueMatcher {
	if m.v.kind == IntKind {
		if i != nil {
			*i = m.v.i
		}
		return m
	}
	return nil
}

func (m *ValueMatcher) Str(s *string) *ValueMatcher {
	if m.v.kind == StrKind {
		if s != nil {
			*s = m.v.s
		}
		return m
	}
	return nil
}

func (m *ValueMatcher) Content(c *Content) *ValueMatcher {
	if m.v.kind == ContentKind {
		if c != nil {
			*c = m.v.c
		}
		return m
	}
	return nil
}

// --- Spans -----------------------------------------------------------------

// Span locates a value in the markup source, as byte offsets. Spans travel
// with constructor arguments so that errors can point at the offending
// input.
type Span struct {
	Start int
	End   int
}

// Spanned pairs a value with its source span.
type Spanned[T any] struct {
	V    T
	Span Span
}

// At attaches a source span to a value.
func At[T any](v T, span Span) Spanned[T] {
	return Spanned[T]{V: v, Span: span}
}

// --- Coercion --------------------------------------------------------------

// Caster converts dynamic values into a concrete target type T. The
// admissible source shapes are declared in order at construction time; the
// first shape matching the dynamic value wins. A value matching no shape is
// a type mismatch, never a silent default.
type Caster[T any] struct {
	expects string
	shapes  []func(Value) (T, bool)
}

// NewCaster declares a caster for target type T. expects is the human
// readable description of the admissible shapes, e.g. "string or content".
func NewCaster[T any](expects string, shapes ...func(Value) (T, bool)) Caster[T] {
	return Caster[T]{expects: expects, shapes: shapes}
}

// Cast converts a dynamic value, or fails with a *TypeError naming the
// expected and actual types.
func (c Caster[T]) Cast(v Spanned[Value]) (T, error) {
	for _, shape := range c.shapes {
		if t, ok := shape(v.V); ok {
			return t, nil
		}
	}
	var zero T
	return zero, &TypeError{Expected: c.expects, Actual: v.V.TypeName(), Span: v.Span}
}

// Expects returns the description of the caster's admissible shapes.
func (c Caster[T]) Expects() string {
	return c.expects
}

// Casters for the primitive value kinds.
var (
	CastBool = NewCaster("boolean", func(v Value) (bool, bool) {
		var b bool
		switch m := v.Match(); m {
		case m.Bool(&b):
			return b, true
		}
		return false, false
	})

	CastInt = NewCaster("integer", func(v Value) (int, bool) {
		var i int64
		switch m := v.Match(); m {
		case m.Int(&i):
			return int(i), true
		}
		return 0, false
	})

	CastStr = NewCaster("string", func(v Value) (string, bool) {
		var s string
		switch m := v.Match(); m {
		case m.Str(&s):
			return s, true
		}
		return "", false
	})

	CastContent = NewCaster("content", func(v Value) (Content, bool) {
		var c Content
		switch m := v.Match(); m {
		case m.Content(&c):
			return c, true
		}
		return Content{}, false
	})
)
