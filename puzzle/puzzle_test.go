package puzzle_test

import (
	"strings"
	"testing"

	"github.com/katalvlaran/adc2019/block"
	"github.com/katalvlaran/adc2019/position"
	"github.com/katalvlaran/adc2019/puzzle"
	"github.com/stretchr/testify/require"
)

func oBlock(t *testing.T, id int, labels map[position.Position]int) *block.Block {
	t.Helper()
	offsets := []position.Position{
		position.New(0, 0), position.New(1, 0), position.New(0, 1), position.New(1, 1),
	}
	b, err := block.New(id, offsets, labels)
	require.NoError(t, err)
	return b
}

func TestProblemTerminalIndex(t *testing.T) {
	p := puzzle.NewProblem(3, 3)
	b := oBlock(t, 1, map[position.Position]int{
		position.New(0, 0): 1,
		position.New(1, 1): 2,
	})
	p.AddBlock(b)

	require.Equal(t, []int{1, 2}, p.LineIDs())

	// Line 1 has one terminal here, so Terminals reports the count
	// violation while still returning the registered terminal.
	ts, err := p.Terminals(1)
	require.ErrorIs(t, err, puzzle.ErrBadTerminalCount)
	require.Equal(t, 1, ts[0].BlockID)
	require.Equal(t, position.New(0, 0), ts[0].Offset)
}

func TestProblemUnknownLine(t *testing.T) {
	p := puzzle.NewProblem(3, 3)
	_, err := p.Terminals(99)
	require.ErrorIs(t, err, puzzle.ErrUnknownLine)
}

func TestProblemWriteTo(t *testing.T) {
	p := puzzle.NewProblem(3, 3)
	p.AddBlock(oBlock(t, 1, map[position.Position]int{
		position.New(0, 0): 1,
		position.New(1, 1): 2,
	}))

	var buf strings.Builder
	_, err := p.WriteTo(&buf)
	require.NoError(t, err)

	out := buf.String()
	require.Contains(t, out, "SIZE 3X3")
	require.Contains(t, out, "BLOCK_NUM 1")
	require.Contains(t, out, "BLOCK#1 2X2")
}

func TestAnswerLabelsAndPlacement(t *testing.T) {
	a := puzzle.NewAnswer(3, 1)
	a.SetLabel(position.New(1, 0), 7)
	a.SetBlockPos(1, position.New(0, 0))

	require.Equal(t, 7, a.Label(position.New(1, 0)))
	require.Equal(t, 0, a.Label(position.New(0, 0)))

	pos, err := a.BlockPos(1)
	require.NoError(t, err)
	require.Equal(t, position.New(0, 0), pos)
}

func TestAnswerOutOfRangePanics(t *testing.T) {
	a := puzzle.NewAnswer(2, 2)
	require.Panics(t, func() {
		a.SetLabel(position.New(5, 5), 1)
	})
}

func TestAnswerWriteTo(t *testing.T) {
	a := puzzle.NewAnswer(3, 1)
	a.SetLabel(position.New(0, 0), 1)
	a.SetLabel(position.New(1, 0), 1)
	a.SetLabel(position.New(2, 0), 1)
	a.SetBlockPos(1, position.New(0, 0))

	var buf strings.Builder
	_, err := a.WriteTo(&buf)
	require.NoError(t, err)
	require.Contains(t, buf.String(), " 1, 1, 1")
	require.Contains(t, buf.String(), "BLOCK#1 @(0,0)")
}
