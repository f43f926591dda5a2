package encoder

// GenPlacementConstraint builds the placement CNF (spec.md §4.2): one-hot
// column/row variables per block, at-most-one occupancy per cell, and
// the X/Y -> G/B linking and activation clauses. Call exactly once,
// before GenRoutingConstraint.
func (e *Encoder) GenPlacementConstraint() {
	for _, b := range e.problem.Blocks() {
		bw, bh := b.Width(), b.Height()

		xVars := make([]int, 0, e.width)
		for x := 0; x < e.width; x++ {
			v := e.driver.NewVariable()
			e.xVar[xyKey{b.ID(), x}] = v
			if x+bw > e.width {
				// Block would overhang the right edge; this column is
				// infeasible for b.
				e.driver.AddClause(-v)
			} else {
				xVars = append(xVars, v)
			}
		}
		e.genOneHot(xVars)

		yVars := make([]int, 0, e.height)
		for y := 0; y < e.height; y++ {
			v := e.driver.NewVariable()
			e.yVar[xyKey{b.ID(), y}] = v
			if y+bh > e.height {
				e.driver.AddClause(-v)
			} else {
				yVars = append(yVars, v)
			}
		}
		e.genOneHot(yVars)
	}

	blocks := e.problem.Blocks()

	for _, pos := range e.gridPositions {
		bVar := e.driver.NewVariable()
		e.bVar[pos] = bVar

		gVars := make([]int, 0, len(blocks))
		for _, b := range blocks {
			gVar := e.driver.NewVariable()
			e.gVar[gridBlockKey{pos, b.ID()}] = gVar

			for _, offset := range b.Offsets() {
				origin := pos.Sub(offset)
				if !origin.InRange(e.width, e.height) {
					continue
				}
				xVar := e.blockXVar(b.ID(), origin.X)
				yVar := e.blockYVar(b.ID(), origin.Y)
				e.driver.AddClause(-xVar, -yVar, gVar)
				e.driver.AddClause(-xVar, -yVar, bVar)
			}
			gVars = append(gVars, gVar)
		}
		e.genAtMostOne(gVars)
		e.driver.AddClause(append([]int{-bVar}, gVars...)...)
	}

	e.placementDone = true
}
