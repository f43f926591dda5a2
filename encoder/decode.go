package encoder

import (
	"fmt"

	"github.com/katalvlaran/adc2019/position"
	"github.com/katalvlaran/adc2019/puzzle"
	"github.com/katalvlaran/adc2019/satsolver"
)

// GetAnswer walks a satisfying model and reconstructs the corresponding
// puzzle.Answer (spec.md §4.5): block placements from the unique true
// X/Y bit per block, then each line's route by walking true edges from
// one terminal to the other.
//
// Panics wrapping ErrMissingPlacement or ErrRouteBroken if the model is
// inconsistent with the CNF this Encoder generated — spec.md §4.5/§7
// treat these as fatal, not recoverable API errors.
func (e *Encoder) GetAnswer(model []satsolver.Value) *puzzle.Answer {
	if !e.placementDone || !e.routingDone {
		panic(ErrNotGenerated)
	}

	ans := puzzle.NewAnswer(e.width, e.height)

	for _, b := range e.problem.Blocks() {
		x, ok := e.uniqueTrueCoord(model, e.width, func(c int) int { return e.blockXVar(b.ID(), c) })
		if !ok {
			panic(fmt.Errorf("%w: block %d column", ErrMissingPlacement, b.ID()))
		}
		y, ok := e.uniqueTrueCoord(model, e.height, func(c int) int { return e.blockYVar(b.ID(), c) })
		if !ok {
			panic(fmt.Errorf("%w: block %d row", ErrMissingPlacement, b.ID()))
		}
		ans.SetBlockPos(b.ID(), position.New(x, y))
	}

	for _, lineID := range e.problem.LineIDs() {
		ts, err := e.problem.Terminals(lineID)
		if err != nil {
			panic(err)
		}

		pos1, err1 := ans.BlockPos(ts[0].BlockID)
		pos2, err2 := ans.BlockPos(ts[1].BlockID)
		if err1 != nil || err2 != nil {
			panic(fmt.Errorf("%w: line %d terminal block missing placement", ErrMissingPlacement, lineID))
		}
		g1 := pos1.Add(ts[0].Offset)
		g2 := pos2.Add(ts[1].Offset)

		route := e.walkRoute(model, g1, g2, lineID)
		for _, p := range route {
			ans.SetLabel(p, lineID)
		}
	}

	return ans
}

func (e *Encoder) uniqueTrueCoord(model []satsolver.Value, limit int, varFor func(int) int) (int, bool) {
	for c := 0; c < limit; c++ {
		if model[varFor(c)] == satsolver.True {
			return c, true
		}
	}
	return 0, false
}

// walkRoute reconstructs line lineID's simple path from pos1 to pos2 by
// following true edges, never stepping back to the immediately
// preceding cell (spec.md §4.5 step 2).
func (e *Encoder) walkRoute(model []satsolver.Value, pos1, pos2 position.Position, lineID int) []position.Position {
	requireLabelTrue := func(p position.Position) {
		v := e.lineVar(p, lineID)
		if model[v] != satsolver.True {
			panic(fmt.Errorf("%w: line %d terminal %s not labeled true", ErrRouteBroken, lineID, p))
		}
	}
	requireLabelTrue(pos1)
	requireLabelTrue(pos2)

	route := []position.Position{}
	pos := pos1
	var prev *position.Position

	for {
		route = append(route, pos)
		if pos.Equal(pos2) {
			break
		}

		next, ok := e.forwardStep(model, pos, prev)
		if !ok {
			panic(fmt.Errorf("%w: line %d stuck at %s", ErrRouteBroken, lineID, pos))
		}
		prevCopy := pos
		prev = &prevCopy
		pos = next
	}

	return route
}

func (e *Encoder) forwardStep(model []satsolver.Value, pos position.Position, prev *position.Position) (position.Position, bool) {
	for _, dir := range allDirections {
		eVar, ok := e.eVar[edgeKey{pos, dir}]
		if !ok {
			continue
		}
		if model[eVar] != satsolver.True {
			continue
		}
		next := pos.Adjacent(dir)
		if prev != nil && next.Equal(*prev) {
			continue
		}
		return next, true
	}
	return position.Position{}, false
}
