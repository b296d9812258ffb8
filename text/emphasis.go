package text

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"github.com/npillmayer/satz/content"
	"github.com/npillmayer/satz/maybe"
	"github.com/npillmayer/satz/style"
)

// DefaultStrongDelta is the font-weight increase of strong emphasis when no
// explicit delta is requested.
const DefaultStrongDelta = 300

// Strong emphasizes its body by increasing the font weight. Required
// positional parameter 'body'; named parameter 'delta' (default 300) is the
// weight increase to apply.
//
// Strong implements the render-transform capability: it rewrites itself
// into its body carrying one more style scope which folds the weight delta
// into the effective font weight. Nested strong regions therefore
// accumulate their deltas additively rather than the innermost winning.
type Strong struct {
	Body  content.Content
	Delta int
}

func (n Strong) Kind() string {
	return "strong"
}

func (n Strong) Fields() []string {
	return []string{"body", "delta"}
}

func (n Strong) Field(name string) maybe.Maybe[content.Value] {
	switch name {
	case "body":
		return maybe.Just(content.Wrap(n.Body))
	case "delta":
		return maybe.Just(content.Int(int64(n.Delta)))
	}
	return maybe.Nothing[content.Value]()
}

func (n Strong) Equals(other content.Node) bool {
	o, ok := other.(Strong)
	return ok && n.Delta == o.Delta && n.Body.Equal(o.Body)
}

func (n Strong) Show(style.Chain) (content.Content, error) {
	return n.Body.Styled(WeightDelta.Set(n.Delta)), nil
}

// Emph emphasizes its body by toggling the italic state: upright body text
// becomes italic, already-italic body text turns back upright. Required
// positional parameter 'body'.
//
// Emph implements the render-transform capability: it rewrites itself into
// its body with one more toggle scope added. Termination of nested emphasis
// relies on the toggle combinator of the Italic property, not on recursive
// re-invocation of the rewrite.
type Emph struct {
	Body content.Content
}

func (n Emph) Kind() string {
	return "emph"
}

func (n Emph) Fields() []string {
	return []string{"body"}
}

func (n Emph) Field(name string) maybe.Maybe[content.Value] {
	if name == "body" {
		return maybe.Just(content.Wrap(n.Body))
	}
	return maybe.Nothing[content.Value]()
}

func (n Emph) Equals(other content.Node) bool {
	o, ok := other.(Emph)
	return ok && n.Body.Equal(o.Body)
}

func (n Emph) Show(style.Chain) (content.Content, error) {
	return n.Body.Styled(Italic.Set(true)), nil
}

func init() {
	content.Register(content.Spec{
		Name: "strong",
		Construct: func(args *content.Args) (content.Node, error) {
			body, err := content.Expect(args, "body", content.CastContent)
			if err != nil {
				return nil, err
			}
			delta, err := content.Named(args, "delta", content.CastInt, DefaultStrongDelta)
			if err != nil {
				return nil, err
			}
			if err := args.Finish(); err != nil {
				return nil, err
			}
			return Strong{Body: body, Delta: delta}, nil
		},
	})
	content.Register(content.Spec{
		Name: "emph",
		Construct: func(args *content.Args) (content.Node, error) {
			body, err := content.Expect(args, "body", content.CastContent)
			if err != nil {
				return nil, err
			}
			if err := args.Finish(); err != nil {
				return nil, err
			}
			return Emph{Body: body}, nil
		},
	})
}
