package flow_test

import (
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/npillmayer/satz/content"
	"github.com/npillmayer/satz/flow"
	"github.com/npillmayer/satz/text"
	"github.com/npillmayer/tyse/core/dimen"
	"github.com/stretchr/testify/require"
)

func classify(c content.Content) flow.Behaviour {
	b, ok := content.BehaviourOf(c)
	if !ok {
		return flow.Behaviour{}
	}
	return b
}

func assemble(items ...content.Content) [][]content.Content {
	asm := flow.NewAssembler(classify)
	asm.PushAll(items)
	return asm.Finish()
}

var (
	space = content.Pack(text.Space{})
	brk   = content.Pack(text.Linebreak{})
)

func kinds(line []content.Content) []string {
	names := make([]string, len(line))
	for i, c := range line {
		names[i] = c.Kind()
	}
	return names
}

func TestAssembleSimpleRun(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "satz.flow")
	defer teardown()
	//
	lines := assemble(text.Of("a"), space, text.Of("b"))
	require.Len(t, lines, 1)
	require.Equal(t, []string{"text", "space", "text"}, kinds(lines[0]))
}

func TestSingleTrailingBreakAbsorbed(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "satz.flow")
	defer teardown()
	//
	lines := assemble(text.Of("a"), brk)
	require.Len(t, lines, 1, "a single trailing break must not open an empty line")
	require.Equal(t, []string{"text"}, kinds(lines[0]))
}

func TestDoubleTrailingBreakLeavesEmptyLine(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "satz.flow")
	defer teardown()
	//
	lines := assemble(text.Of("a"), brk, brk)
	require.Len(t, lines, 2, "a second trailing break must leave one empty line")
	require.Empty(t, lines[1])

	lines = assemble(text.Of("a"), brk, brk, brk)
	require.Len(t, lines, 3, "every further trailing break leaves another empty line")
	require.Empty(t, lines[1])
	require.Empty(t, lines[2])
}

func TestInteriorBreaksAreOrderSignificant(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "satz.flow")
	defer teardown()
	//
	lines := assemble(text.Of("a"), brk, text.Of("b"))
	require.Len(t, lines, 2)
	require.Equal(t, []string{"text"}, kinds(lines[0]))
	require.Equal(t, []string{"text"}, kinds(lines[1]))

	lines = assemble(text.Of("a"), brk, brk, text.Of("b"))
	require.Len(t, lines, 3, "interior breaks never collapse against each other")
	require.Empty(t, lines[1])
}

func TestWeakCollapseByPriority(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "satz.flow")
	defer teardown()
	//
	wide := content.Pack(text.HSpace{Width: 12 * dimen.PT})
	// explicit spacing suppresses the word space, in either order
	lines := assemble(text.Of("a"), space, wide, text.Of("b"))
	require.Len(t, lines, 1)
	require.Equal(t, []string{"text", "hspace", "text"}, kinds(lines[0]))

	lines = assemble(text.Of("a"), wide, space, text.Of("b"))
	require.Len(t, lines, 1)
	require.Equal(t, []string{"text", "hspace", "text"}, kinds(lines[0]))
}

func TestWeakEqualPriorityLastWins(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "satz.flow")
	defer teardown()
	//
	first := content.Pack(text.HSpace{Width: 10 * dimen.PT})
	second := content.Pack(text.HSpace{Width: 20 * dimen.PT})
	lines := assemble(text.Of("a"), first, second, text.Of("b"))
	require.Len(t, lines, 1)
	require.Len(t, lines[0], 3)
	require.True(t, lines[0][1].Equal(second), "on equal priority the later weak item wins")
}

func TestWeakNeedsSupport(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "satz.flow")
	defer teardown()
	//
	// leading, trailing, and pre-break weak items are discarded
	lines := assemble(space, text.Of("a"), space)
	require.Len(t, lines, 1)
	require.Equal(t, []string{"text"}, kinds(lines[0]))

	lines = assemble(text.Of("a"), space, brk, text.Of("b"))
	require.Len(t, lines, 2)
	require.Equal(t, []string{"text"}, kinds(lines[0]))
}

func TestAssembleEmptyRun(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "satz.flow")
	defer teardown()
	//
	require.Empty(t, assemble())
}
