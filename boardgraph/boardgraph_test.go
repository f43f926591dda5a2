package boardgraph

import (
	"testing"

	"github.com/katalvlaran/adc2019/position"
	"github.com/katalvlaran/adc2019/puzzle"
	"github.com/stretchr/testify/require"
)

func TestValidateRouteAcceptsSimplePath(t *testing.T) {
	ans := puzzle.NewAnswer(3, 1)
	ans.SetLabel(position.New(0, 0), 1)
	ans.SetLabel(position.New(1, 0), 1)
	ans.SetLabel(position.New(2, 0), 1)

	bg := NewBoardGraph(ans)
	require.NoError(t, bg.ValidateRoute(1, position.New(0, 0), position.New(2, 0)))
}

func TestValidateRouteRejectsBranch(t *testing.T) {
	// A plus-shaped set of cells around (1,1) on a 3x3 board: the center
	// has four same-line neighbors, which is not a simple path.
	ans := puzzle.NewAnswer(3, 3)
	for _, p := range []position.Position{
		position.New(1, 0), position.New(1, 1), position.New(1, 2),
		position.New(0, 1), position.New(2, 1),
	} {
		ans.SetLabel(p, 1)
	}

	bg := NewBoardGraph(ans)
	err := bg.ValidateRoute(1, position.New(1, 0), position.New(1, 2))
	require.ErrorIs(t, err, ErrBranchingRoute)
}

func TestValidateRouteRejectsDisconnected(t *testing.T) {
	ans := puzzle.NewAnswer(3, 1)
	ans.SetLabel(position.New(0, 0), 1)
	ans.SetLabel(position.New(2, 0), 1)
	// (1,0) left unlabeled: the two cells are not adjacent.

	bg := NewBoardGraph(ans)
	err := bg.ValidateRoute(1, position.New(0, 0), position.New(2, 0))
	require.Error(t, err)
}

func TestValidateRouteSingleCellRoute(t *testing.T) {
	ans := puzzle.NewAnswer(1, 1)
	ans.SetLabel(position.New(0, 0), 1)

	bg := NewBoardGraph(ans)
	require.NoError(t, bg.ValidateRoute(1, position.New(0, 0), position.New(0, 0)))
}
