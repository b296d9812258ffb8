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
)

// Text is a run of plain text.
type Text struct {
	Text string
}

// Of wraps a string as a plain-text content value.
func Of(s string) content.Content {
	return content.Pack(Text{Text: s})
}

func (n Text) Kind() string {
	return "text"
}

func (n Text) Fields() []string {
	return []string{"text"}
}

func (n Text) Field(name string) maybe.Maybe[content.Value] {
	if name == "text" {
		return maybe.Just(content.Str(n.Text))
	}
	return maybe.Nothing[content.Value]()
}

func (n Text) Equals(other content.Node) bool {
	o, ok := other.(Text)
	return ok && n.Text == o.Text
}

func init() {
	content.Register(content.Spec{
		Name: "text",
		Construct: func(args *content.Args) (content.Node, error) {
			s, err := content.Expect(args, "text", content.CastStr)
			if err != nil {
				return nil, err
			}
			if err := args.Finish(); err != nil {
				return nil, err
			}
			return Text{Text: s}, nil
		},
	})
}
