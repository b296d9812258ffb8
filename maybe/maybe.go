package maybe

// Maybe is an option type: a value of type T that may be absent. It is used
// throughout this module for optional lookup results (element fields) and
// for style property payloads that distinguish "no transformation" from a
// concrete one.
//
// Maybe is a plain value type; a Maybe over a comparable T is itself
// comparable and may serve as a style property value.
type Maybe[T any] struct {
	value T
	tag   bool
}

// Just wraps a present value.
func Just[T any](x T) Maybe[T] {
	return Maybe[T]{value: x, tag: true}
}

// Nothing is the absent value.
func Nothing[T any]() Maybe[T] {
	return Maybe[T]{}
}

// FromPair lifts Go's (value, ok) idiom into a Maybe.
func FromPair[T any](x T, ok bool) Maybe[T] {
	if ok {
		return Just(x)
	}
	return Nothing[T]()
}

// IsJust is true if a value is present.
func (m Maybe[T]) IsJust() bool {
	return m.tag
}

// WithDefault returns the wrapped value, or def if absent.
func (m Maybe[T]) WithDefault(def T) T {
	if m.tag {
		return m.value
	}
	return def
}

// Map applies f to a present value and leaves Nothing untouched.
func (m Maybe[T]) Map(f func(T) T) Maybe[T] {
	if m.tag {
		return Just(f(m.value))
	}
	return m
}

// Map applies f to a present value and leaves Nothing untouched.
func Map[T any](f func(T) T, x Maybe[T]) Maybe[T] {
	return x.Map(f)
}

// AndThen chains a computation which may itself fail to produce a value.
func AndThen[T, S any](f func(T) Maybe[S], x Maybe[T]) Maybe[S] {
	var v T
	switch m := x.Match(); m {
	case m.Just(&v):
		return f(v)
	case m.Nothing():
	}
	return Nothing[S]()
}

// --- Matching --------------------------------------------------------------

// Match returns a Matcher for use in a switch statement:
//
//	var v T
//	switch m := x.Match(); m {
//	case m.Just(&v):
//	    …
//	case m.Nothing():
//	    …
//	}
//
// The matcher is handed out by pointer: the case comparison then is a
// pointer identity check, which keeps the idiom safe for non-comparable T
// (a Maybe over a slice-carrying type, say).
func (m Maybe[T]) Match() Matcher[T] {
	return &matcher[T]{m: m}
}

type Matcher[T any] interface {
	Just(*T) Matcher[T]
	Nothing() Matcher[T]
}

type matcher[T any] struct {
	m Maybe[T]
}

func (mm *matcher[T]) Just(v *T) Matcher[T] {
	if mm.m.tag {
		*v = mm.m.value
		return mm
	}
	return nil
}

func (mm *matcher[T]) Nothing() Matcher[T] {
	if !mm.m.tag {
		return mm
	}
	return nil
}
