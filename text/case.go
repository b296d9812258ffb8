package text

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"strings"

	"github.com/npillmayer/satz/content"
	"github.com/npillmayer/satz/maybe"
)

// Case is a case transformation on text.
type Case int8

const (
	// LowerCase lowercases everything.
	LowerCase Case = iota
	// UpperCase uppercases everything.
	UpperCase
)

// Apply applies the case transformation to a string.
func (c Case) Apply(s string) string {
	if c == UpperCase {
		return strings.ToUpper(s)
	}
	return strings.ToLower(s)
}

func (c Case) String() string {
	if c == UpperCase {
		return "upper"
	}
	return "lower"
}

// Lower converts text or content to lowercase. A string argument is
// transformed directly; content is wrapped in a case-transform style scope
// instead of touching the text inside. Any other argument type is a type
// mismatch.
func Lower(arg content.Spanned[content.Value]) (content.Value, error) {
	return recase(LowerCase, arg)
}

// Upper converts text or content to uppercase; see Lower.
func Upper(arg content.Spanned[content.Value]) (content.Value, error) {
	return recase(UpperCase, arg)
}

func recase(c Case, arg content.Spanned[content.Value]) (content.Value, error) {
	var (
		s    string
		body content.Content
	)
	switch m := arg.V.Match(); m {
	case m.Str(&s):
		return content.Str(c.Apply(s)), nil
	case m.Content(&body):
		tracer().Debugf("wrapping '%s' element in %s-case scope", body.Kind(), c)
		return content.Wrap(body.Styled(CaseOf.Set(maybe.Just(c)))), nil
	}
	return content.None(), &content.TypeError{
		Expected: "string or content",
		Actual:   arg.V.TypeName(),
		Span:     arg.Span,
	}
}

// SmallCapped displays content in small capitals by wrapping it in an
// override-style scope. Fonts without a smallcaps feature render the text
// unchanged; that decision is up to the glyph subsystem.
func SmallCapped(body content.Content) content.Content {
	return body.Styled(SmallCaps.Set(true))
}
