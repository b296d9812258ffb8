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
	"github.com/npillmayer/tyse/core/dimen"
)

// Space is an implicit word space. It classifies as weak(2): adjacent weak
// elements of higher priority, such as explicit spacing, suppress it.
// Spaces cannot carry a label.
type Space struct{}

func (Space) Kind() string {
	return "space"
}

func (Space) Fields() []string {
	return nil
}

func (Space) Field(string) maybe.Maybe[content.Value] {
	return maybe.Nothing[content.Value]()
}

func (Space) Equals(other content.Node) bool {
	_, ok := other.(Space)
	return ok
}

func (Space) Behaviour() flow.Behaviour {
	return flow.Weak(2)
}

func (Space) Unlabellable() {}

// HSpace is an explicit horizontal space of a given width. It classifies as
// weak(3), one above the implicit word space, so that an explicit spacing
// request suppresses a word space at the same position.
type HSpace struct {
	Width dimen.DU
}

func (n HSpace) Kind() string {
	return "hspace"
}

func (n HSpace) Fields() []string {
	return []string{"amount"}
}

func (n HSpace) Field(name string) maybe.Maybe[content.Value] {
	if name == "amount" {
		return maybe.Just(content.Int(int64(n.Width / dimen.PT)))
	}
	return maybe.Nothing[content.Value]()
}

func (n HSpace) Equals(other content.Node) bool {
	o, ok := other.(HSpace)
	return ok && n.Width == o.Width
}

func (HSpace) Behaviour() flow.Behaviour {
	return flow.Weak(3)
}

func (HSpace) Unlabellable() {}

// castLength accepts an integer number of points.
var castLength = content.NewCaster("length", func(v content.Value) (dimen.DU, bool) {
	var i int64
	switch m := v.Match(); m {
	case m.Int(&i):
		return dimen.DU(i) * dimen.PT, true
	}
	return 0, false
})

func init() {
	content.Register(content.Spec{
		Name: "space",
		Construct: func(args *content.Args) (content.Node, error) {
			if err := args.Finish(); err != nil {
				return nil, err
			}
			return Space{}, nil
		},
	})
	content.Register(content.Spec{
		Name: "hspace",
		Construct: func(args *content.Args) (content.Node, error) {
			width, err := content.Expect(args, "amount", castLength)
			if err != nil {
				return nil, err
			}
			if err := args.Finish(); err != nil {
				return nil, err
			}
			return HSpace{Width: width}, nil
		},
	})
}
