package encoder

import "github.com/katalvlaran/adc2019/position"

// GenRoutingConstraint builds the routing CNF (spec.md §4.3): per-cell
// label at-most-one, terminal reification and the terminal umbrella,
// empty-covered-cell label exclusion, edge variables and their per-cell
// degree constraints, label continuity across active edges, and the
// 2x2 U-turn exclusion. Call exactly once, after GenPlacementConstraint.
func (e *Encoder) GenRoutingConstraint() {
	lineIDs := e.problem.LineIDs()

	for _, pos := range e.gridPositions {
		lVars := make([]int, 0, len(lineIDs))
		for _, lineID := range lineIDs {
			v := e.driver.NewVariable()
			e.lVar[gridLineKey{pos, lineID}] = v
			lVars = append(lVars, v)
		}
		e.genAtMostOne(lVars)

		bVar := e.bVar[pos]

		tAllVar := e.driver.NewVariable()
		e.tVar[pos] = tAllVar

		tVars := make([]int, 0, len(lineIDs))
		for _, lineID := range lineIDs {
			t1Var := e.terminalHereVar(pos, lineID)

			lVar := e.lineVar(pos, lineID)
			e.driver.AddClause(-t1Var, lVar)
			e.driver.AddClause(-t1Var, tAllVar)

			tVars = append(tVars, t1Var)
		}
		e.driver.AddClause(append([]int{-tAllVar}, tVars...)...)

		for _, lineID := range lineIDs {
			lVar := e.lineVar(pos, lineID)
			e.driver.AddClause(tAllVar, -bVar, -lVar)
		}
	}

	e.allocateEdgeVars()

	for _, pos := range e.gridPositions {
		edgeVars := e.incidentEdgeVars(pos)

		tVar := e.tVar[pos]
		bVar := e.bVar[pos]

		e.genOneHotWithCond(edgeVars, tVar)

		for _, v := range edgeVars {
			e.driver.AddClause(-bVar, tVar, -v)
		}

		e.genZeroOrTwoWithCond(edgeVars, -bVar)
	}

	for _, pos1 := range e.gridPositions {
		for _, dir := range allDirections {
			eVar, ok := e.eVar[edgeKey{pos1, dir}]
			if !ok {
				continue
			}
			pos2 := pos1.Adjacent(dir)
			for _, lineID := range lineIDs {
				l1 := e.lineVar(pos1, lineID)
				l2 := e.lineVar(pos2, lineID)
				e.driver.AddClause(-eVar, l1, -l2)
				e.driver.AddClause(-eVar, -l1, l2)
			}
		}
	}

	e.genUTurnExclusion()

	e.routingDone = true
}

var allDirections = []position.Direction{position.N, position.E, position.S, position.W}

// terminalHereVar reifies T_line(pos): whether a terminal of lineID's
// two registered terminals sits at pos (spec.md §4.3.2).
func (e *Encoder) terminalHereVar(pos position.Position, lineID int) int {
	ts, err := e.problem.Terminals(lineID)
	if err != nil {
		panic(err)
	}

	var candidates []int
	for _, t := range ts {
		origin := pos.Sub(t.Offset)
		if !origin.InRange(e.width, e.height) {
			continue
		}
		xVar := e.blockXVar(t.BlockID, origin.X)
		yVar := e.blockYVar(t.BlockID, origin.Y)
		candidates = append(candidates, e.reifyAnd(xVar, yVar))
	}

	switch len(candidates) {
	case 0:
		v := e.driver.NewVariable()
		e.driver.AddClause(-v)
		return v
	case 1:
		return candidates[0]
	default:
		v1, v2 := candidates[0], candidates[1]
		t1 := e.driver.NewVariable()
		e.driver.AddClause(-v1, t1)
		e.driver.AddClause(-v2, t1)
		e.driver.AddClause(v1, v2, -t1)
		return t1
	}
}

// allocateEdgeVars allocates one variable per internal grid edge and
// indexes it under both endpoints' directional keys (spec.md §4.1 "Edge
// variables are shared").
func (e *Encoder) allocateEdgeVars() {
	for x := 0; x < e.width; x++ {
		for y := 0; y < e.height-1; y++ {
			v := e.driver.NewVariable()
			e.eVar[edgeKey{position.New(x, y), position.S}] = v
			e.eVar[edgeKey{position.New(x, y+1), position.N}] = v
		}
	}
	for y := 0; y < e.height; y++ {
		for x := 0; x < e.width-1; x++ {
			v := e.driver.NewVariable()
			e.eVar[edgeKey{position.New(x, y), position.E}] = v
			e.eVar[edgeKey{position.New(x+1, y), position.W}] = v
		}
	}
}

func (e *Encoder) incidentEdgeVars(pos position.Position) []int {
	var out []int
	for _, dir := range allDirections {
		if v, ok := e.eVar[edgeKey{pos, dir}]; ok {
			out = append(out, v)
		}
	}
	return out
}

// genUTurnExclusion forbids three or more of a 2x2 block's four
// perimeter edges from being simultaneously true (spec.md §4.3.7).
func (e *Encoder) genUTurnExclusion() {
	for _, pos := range e.gridPositions {
		e1, ok := e.eVar[edgeKey{pos, position.S}]
		if !ok {
			continue
		}
		e2, ok := e.eVar[edgeKey{pos, position.E}]
		if !ok {
			continue
		}
		south := pos.Add(position.New(0, 1))
		e3, ok := e.eVar[edgeKey{south, position.E}]
		if !ok {
			continue
		}
		east := pos.Add(position.New(1, 0))
		e4, ok := e.eVar[edgeKey{east, position.S}]
		if !ok {
			continue
		}

		e.driver.AddClause(-e1, -e2, -e3)
		e.driver.AddClause(-e1, -e2, -e4)
		e.driver.AddClause(-e1, -e3, -e4)
		e.driver.AddClause(-e2, -e3, -e4)
	}
}
