package encoder

import (
	"github.com/katalvlaran/adc2019/position"
	"github.com/katalvlaran/adc2019/puzzle"
	"github.com/katalvlaran/adc2019/satsolver"
)

// xyKey identifies one block's column or row one-hot variable.
type xyKey struct {
	BlockID int
	Coord   int
}

// gridBlockKey identifies G(p, b): whether block b covers cell p.
type gridBlockKey struct {
	Pos     position.Position
	BlockID int
}

// gridLineKey identifies L(p, line): whether cell p carries line's label.
type gridLineKey struct {
	Pos  position.Position
	Line int
}

// edgeKey identifies E(p, d): the directed view of one grid edge. Both
// directions of a shared edge map to the same allocated variable
// (spec.md §4.1 "Edge variables are shared").
type edgeKey struct {
	Pos position.Position
	Dir position.Direction
}

// Encoder builds the CNF encoding of one puzzle.Problem onto a board of
// the given width/height (which need not match the Problem's own
// max_width/max_height — spec.md §9) and reconstructs a puzzle.Answer
// from a satisfying model. Encoder holds a non-owning reference to the
// Problem; its variable dictionaries are owned by itself.
//
// GenPlacementConstraint and GenRoutingConstraint must each be
// called exactly once, in that order, before GetAnswer.
type Encoder struct {
	driver  *satsolver.Driver
	problem *puzzle.Problem
	width   int
	height  int

	gridPositions []position.Position

	xVar map[xyKey]int
	yVar map[xyKey]int
	gVar map[gridBlockKey]int
	bVar map[position.Position]int
	lVar map[gridLineKey]int
	tVar map[position.Position]int
	eVar map[edgeKey]int

	placementDone bool
	routingDone   bool
}

// New constructs an Encoder that will write its clauses into driver.
func New(driver *satsolver.Driver, problem *puzzle.Problem, width, height int) *Encoder {
	gridPositions := make([]position.Position, 0, width*height)
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			gridPositions = append(gridPositions, position.New(x, y))
		}
	}

	return &Encoder{
		driver:        driver,
		problem:       problem,
		width:         width,
		height:        height,
		gridPositions: gridPositions,
		xVar:          make(map[xyKey]int),
		yVar:          make(map[xyKey]int),
		gVar:          make(map[gridBlockKey]int),
		bVar:          make(map[position.Position]int),
		lVar:          make(map[gridLineKey]int),
		tVar:          make(map[position.Position]int),
		eVar:          make(map[edgeKey]int),
	}
}

func (e *Encoder) blockXVar(blockID, x int) int { return e.xVar[xyKey{blockID, x}] }
func (e *Encoder) blockYVar(blockID, y int) int { return e.yVar[xyKey{blockID, y}] }
func (e *Encoder) gridVar(pos position.Position, blockID int) int {
	return e.gVar[gridBlockKey{pos, blockID}]
}
func (e *Encoder) lineVar(pos position.Position, lineID int) int {
	return e.lVar[gridLineKey{pos, lineID}]
}
