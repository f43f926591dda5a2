package boardgraph

import (
	"fmt"

	"github.com/katalvlaran/adc2019/algorithms"
	"github.com/katalvlaran/adc2019/core"
	"github.com/katalvlaran/adc2019/gridgraph"
	"github.com/katalvlaran/adc2019/position"
	"github.com/katalvlaran/adc2019/puzzle"
)

// BoardGraph is the full 4-connected grid graph underlying one decoded
// puzzle.Answer: one vertex per cell, one edge per orthogonal neighbor
// pair, built once and reused across ValidateRoute calls.
type BoardGraph struct {
	width, height int
	labels        func(position.Position) int
	full          *core.Graph
}

// NewBoardGraph builds the full board graph for ans by treating the
// solved grid's line labels as cell values in a gridgraph.GridGraph, then
// converting that to a *core.Graph (4-connected, one vertex per cell).
// The land/water threshold is irrelevant here: ValidateRoute filters by
// exact label match, not by land/water, so every cell is kept as a
// vertex regardless of its label value.
func NewBoardGraph(ans *puzzle.Answer) *BoardGraph {
	w, h := ans.Width(), ans.Height()
	values := make([][]int, h)
	for y := 0; y < h; y++ {
		values[y] = make([]int, w)
		for x := 0; x < w; x++ {
			values[y][x] = ans.Label(position.New(x, y))
		}
	}

	gg, err := gridgraph.NewGridGraph(values, gridgraph.GridOptions{Conn: gridgraph.Conn4})
	if err != nil {
		panic(fmt.Sprintf("boardgraph: decoded answer produced an invalid grid: %v", err))
	}

	return &BoardGraph{
		width:  w,
		height: h,
		labels: ans.Label,
		full:   gg.ToCoreGraph(),
	}
}

func vertexID(x, y int) string {
	return fmt.Sprintf("%d,%d", x, y)
}

// ValidateRoute checks that lineID's labeled cells form a single
// connected simple path between term1 and term2 (spec.md §4.5 "the
// route is a simple path between its two terminals").
func (bg *BoardGraph) ValidateRoute(lineID int, term1, term2 position.Position) error {
	keep := make(map[string]bool)
	for y := 0; y < bg.height; y++ {
		for x := 0; x < bg.width; x++ {
			p := position.New(x, y)
			if bg.labels(p) == lineID {
				keep[vertexID(x, y)] = true
			}
		}
	}

	sub := core.InducedSubgraph(bg.full, keep)

	for id := range keep {
		_, _, degree, err := sub.Degree(id)
		if err != nil {
			return fmt.Errorf("boardgraph: line %d: %w", lineID, err)
		}
		if degree > 2 {
			return fmt.Errorf("%w: line %d at %s", ErrBranchingRoute, lineID, id)
		}
	}

	if err := bg.checkTerminalDegree(sub, lineID, term1, term2); err != nil {
		return err
	}

	return bg.checkConnected(sub, lineID, term1, keep)
}

func (bg *BoardGraph) checkTerminalDegree(sub *core.Graph, lineID int, term1, term2 position.Position) error {
	single := term1.Equal(term2)
	for _, t := range []position.Position{term1, term2} {
		_, _, degree, err := sub.Degree(vertexID(t.X, t.Y))
		if err != nil {
			return fmt.Errorf("boardgraph: line %d terminal %s: %w", lineID, t, err)
		}
		want := 1
		if single {
			want = 0
		}
		if degree != want {
			return fmt.Errorf("%w: line %d terminal %s has degree %d, want %d", ErrTerminalDegree, lineID, t, degree, want)
		}
	}
	return nil
}

func (bg *BoardGraph) checkConnected(sub *core.Graph, lineID int, start position.Position, keep map[string]bool) error {
	res, err := algorithms.BFS(sub, vertexID(start.X, start.Y), nil)
	if err != nil {
		return fmt.Errorf("boardgraph: line %d: %w", lineID, err)
	}
	if len(res.Order) != len(keep) {
		return fmt.Errorf("%w: line %d", ErrDisconnectedRoute, lineID)
	}
	return nil
}
