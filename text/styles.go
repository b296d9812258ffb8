package text

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"github.com/npillmayer/satz/maybe"
	"github.com/npillmayer/satz/style"
)

// Style properties of textual content.
//
// WeightDelta and Italic fold: nested strong regions accumulate their
// weight increase additively, nested emphasis toggles the italic state back
// and forth instead of re-asserting it. CaseOf and SmallCaps override: the
// nearest enclosing assignment wins outright.
var (
	// WeightDelta is the accumulated font-weight adjustment relative to the
	// surrounding text.
	WeightDelta = style.NewFoldProp[int]("text.weight-delta", 0, func(self, outer int) int {
		return outer + self
	})

	// Italic toggles between the upright and the italic font style; the
	// payload of an assignment is ignored, each enclosing assignment flips
	// the state once.
	Italic = style.NewFoldProp[bool]("text.italic", false, func(self, outer bool) bool {
		return !outer
	})

	// CaseOf is the case transformation in effect, Nothing meaning none.
	CaseOf = style.NewProp[maybe.Maybe[Case]]("text.case", maybe.Nothing[Case]())

	// SmallCaps renders text in small capitals.
	SmallCaps = style.NewProp[bool]("text.smallcaps", false)
)
