package text

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"github.com/npillmayer/satz/content"
	"github.com/npillmayer/satz/flow"
	"github.com/npillmayer/satz/maybe"
)

// Linebreak advances the paragraph to the next line. It classifies as
// destructive: breaks are order-significant and never collapse against each
// other, though the assembly stage absorbs a single break in final
// position.
//
// The named parameter 'justify' (default false) requests justification of
// the line ending at the break.
type Linebreak struct {
	Justify bool
}

func (n Linebreak) Kind() string {
	return "linebreak"
}

func (n Linebreak) Fields() []string {
	return []string{"justify"}
}

func (n Linebreak) Field(name string) maybe.Maybe[content.Value] {
	if name == "justify" {
		return maybe.Just(content.Bool(n.Justify))
	}
	return maybe.Nothing[content.Value]()
}

func (n Linebreak) Equals(other content.Node) bool {
	o, ok := other.(Linebreak)
	return ok && n.Justify == o.Justify
}

func (Linebreak) Behaviour() flow.Behaviour {
	return flow.Destructive()
}

func init() {
	content.Register(content.Spec{
		Name: "linebreak",
		Construct: func(args *content.Args) (content.Node, error) {
			justify, err := content.Named(args, "justify", content.CastBool, false)
			if err != nil {
				return nil, err
			}
			if err := args.Finish(); err != nil {
				return nil, err
			}
			return Linebreak{Justify: justify}, nil
		},
	})
}
