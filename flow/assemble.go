package flow

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/

// Assembler reduces a linear sequence of items to lines of flowing text.
// It is the reference consumer of the Behaviour contract; layout stages
// with richer needs may implement their own, but must satisfy the same
// rules:
//
//   - Of two or more adjacent weak items, only the one with the highest
//     priority survives. Strictly greater priority replaces; on equal
//     priority the later item wins (documented policy choice).
//   - Weak items need visible support: a weak item at the start or end of
//     a line is discarded, as is one directly preceding a destructive item.
//   - Destructive items terminate the current line. They never collapse
//     against each other, but the final item of a run, if destructive, is
//     absorbed: it opens no further line. A second (and every further)
//     trailing destructive item in direct succession therefore leaves a
//     visible empty line.
//
// An Assembler is generic over the item type; classify reports an item's
// behaviour (a zero Behaviour marks an ordinary item). The zero Assembler
// is not usable, create one with NewAssembler.
type Assembler[T any] struct {
	classify func(T) Behaviour
	lines    [][]T
	current  []T
	pending  *pendingWeak[T]
	lastCut  bool // was the most recent item destructive?
	count    int
}

type pendingWeak[T any] struct {
	item     T
	priority int
}

// NewAssembler creates an assembler over items of type T, classified by the
// given function.
func NewAssembler[T any](classify func(T) Behaviour) *Assembler[T] {
	return &Assembler[T]{classify: classify}
}

// Push appends the next item of the sequence.
func (asm *Assembler[T]) Push(item T) {
	b := asm.classify(item)
	asm.count++
	tracer().Debugf("flow item %d classifies as %s", asm.count, b)
	switch {
	case b.IsWeak():
		if len(asm.current) == 0 {
			return // no visible support to the left
		}
		if asm.pending == nil || b.Priority() >= asm.pending.priority {
			asm.pending = &pendingWeak[T]{item: item, priority: b.Priority()}
		}
		asm.lastCut = false
	case b.IsDestructive():
		asm.pending = nil // weak item directly before a break is discarded
		asm.lines = append(asm.lines, asm.current)
		asm.current = nil
		asm.lastCut = true
	default:
		if asm.pending != nil {
			asm.current = append(asm.current, asm.pending.item)
			asm.pending = nil
		}
		asm.current = append(asm.current, item)
		asm.lastCut = false
	}
}

// PushAll appends a sequence of items in order.
func (asm *Assembler[T]) PushAll(items []T) {
	for _, item := range items {
		asm.Push(item)
	}
}

// Finish closes the run and returns the assembled lines. A trailing weak
// item is discarded; a single trailing destructive item has already
// terminated the last line and is absorbed rather than opening an empty
// one.
func (asm *Assembler[T]) Finish() [][]T {
	asm.pending = nil
	if !asm.lastCut && len(asm.current) > 0 {
		asm.lines = append(asm.lines, asm.current)
	}
	lines := asm.lines
	asm.lines = nil
	asm.current = nil
	asm.lastCut = false
	tracer().Debugf("flow run of %d items assembled into %d line(s)", asm.count, len(lines))
	return lines
}
