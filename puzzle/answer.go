package puzzle

import (
	"fmt"
	"io"
	"sort"

	"github.com/katalvlaran/adc2019/position"
)

// Answer holds the solved board's dimensions, a flat per-cell line-label
// grid, and each block's top-left placement. Answer owns its arrays.
type Answer struct {
	width, height int
	labels        []int // index y*width+x; 0 == no line
	placements    map[int]position.Position
}

// NewAnswer constructs an empty Answer of the given dimensions, with
// every cell unlabeled and no block placements set.
func NewAnswer(width, height int) *Answer {
	return &Answer{
		width:      width,
		height:     height,
		labels:     make([]int, width*height),
		placements: make(map[int]position.Position),
	}
}

// Width returns the board width.
func (a *Answer) Width() int { return a.width }

// Height returns the board height.
func (a *Answer) Height() int { return a.height }

func (a *Answer) index(p position.Position) (int, error) {
	if !p.InRange(a.width, a.height) {
		return 0, ErrOutOfRange
	}
	return p.Y*a.width + p.X, nil
}

// Label returns the line label at p (0 == no line).
//
// Panics with ErrOutOfRange if p lies outside the board: callers are
// expected to only query positions the decoder itself produced, so an
// out-of-range position is a programmer error (spec.md §7).
func (a *Answer) Label(p position.Position) int {
	idx, err := a.index(p)
	if err != nil {
		panic(err)
	}
	return a.labels[idx]
}

// SetLabel sets the line label at p.
//
// Panics with ErrOutOfRange if p lies outside the board.
func (a *Answer) SetLabel(p position.Position, label int) {
	idx, err := a.index(p)
	if err != nil {
		panic(err)
	}
	a.labels[idx] = label
}

// BlockPos returns the top-left placement of blockID.
func (a *Answer) BlockPos(blockID int) (position.Position, error) {
	p, ok := a.placements[blockID]
	if !ok {
		return position.Position{}, ErrUnknownBlock
	}
	return p, nil
}

// SetBlockPos records blockID's top-left placement.
//
// Panics with ErrOutOfRange if pos lies outside the board.
func (a *Answer) SetBlockPos(blockID int, pos position.Position) {
	if !pos.InRange(a.width, a.height) {
		panic(ErrOutOfRange)
	}
	a.placements[blockID] = pos
}

// BlockIDs returns every block id with a recorded placement, sorted
// ascending.
func (a *Answer) BlockIDs() []int {
	ids := make([]int, 0, len(a.placements))
	for id := range a.placements {
		ids = append(ids, id)
	}
	sort.Ints(ids)
	return ids
}

// WriteTo renders the answer in the textual answer format described in
// spec.md §6.
func (a *Answer) WriteTo(w io.Writer) (int64, error) {
	cw := &countingWriter{w: w}
	fmt.Fprintf(cw, "SIZE %dX%d\n", a.width, a.height)
	for y := 0; y < a.height; y++ {
		for x := 0; x < a.width; x++ {
			if x > 0 {
				fmt.Fprint(cw, ",")
			}
			fmt.Fprintf(cw, "%2d", a.Label(position.New(x, y)))
		}
		fmt.Fprint(cw, "\n")
	}
	for _, id := range a.BlockIDs() {
		pos := a.placements[id]
		fmt.Fprintf(cw, "BLOCK#%d @%s\n", id, pos.String())
	}
	return cw.n, cw.err
}
