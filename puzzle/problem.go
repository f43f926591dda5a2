// Package puzzle defines Problem and Answer: the board-level data model
// that the parser reads, the encoder consumes, and the decoder produces
// (spec.md §3 Problem, Answer).
package puzzle

import (
	"fmt"
	"io"
	"sort"

	"github.com/katalvlaran/adc2019/block"
	"github.com/katalvlaran/adc2019/position"
)

// Terminal identifies one endpoint of a line: the block it sits on and
// the block-relative offset of the terminal cell.
type Terminal struct {
	BlockID int
	Offset  position.Position
}

// Problem holds the board's maximum dimensions, its ordered block list,
// and a terminal index mapping each line id to its two terminals.
// Problem owns its Blocks; the terminal index is rebuilt as blocks are
// added and never referenced by the blocks themselves (spec.md §9).
type Problem struct {
	maxWidth  int
	maxHeight int
	blocks    []*block.Block
	terminals map[int][]Terminal
}

// NewProblem constructs an empty Problem with the given maximum board
// dimensions.
func NewProblem(maxWidth, maxHeight int) *Problem {
	return &Problem{
		maxWidth:  maxWidth,
		maxHeight: maxHeight,
		terminals: make(map[int][]Terminal),
	}
}

// MaxWidth returns the board's maximum width.
func (p *Problem) MaxWidth() int { return p.maxWidth }

// MaxHeight returns the board's maximum height.
func (p *Problem) MaxHeight() int { return p.maxHeight }

// AddBlock appends b to the problem and indexes every positive-labeled
// offset it carries as one terminal of that label's line.
func (p *Problem) AddBlock(b *block.Block) {
	p.blocks = append(p.blocks, b)
	for _, t := range b.Terminals() {
		p.terminals[t.Label] = append(p.terminals[t.Label], Terminal{BlockID: b.ID(), Offset: t.Offset})
	}
}

// BlockNum returns the number of blocks added so far.
func (p *Problem) BlockNum() int { return len(p.blocks) }

// Blocks returns the problem's blocks in insertion order. The returned
// slice is a copy of the header; callers must not mutate Problem state
// through the *block.Block pointers.
func (p *Problem) Blocks() []*block.Block {
	out := make([]*block.Block, len(p.blocks))
	copy(out, p.blocks)
	return out
}

// Block returns the block with the given 1-based id.
func (p *Problem) Block(id int) (*block.Block, error) {
	if id < 1 || id > len(p.blocks) {
		return nil, ErrUnknownBlock
	}
	b := p.blocks[id-1]
	if b.ID() != id {
		return nil, ErrUnknownBlock
	}
	return b, nil
}

// LineIDs returns every line id with registered terminals, sorted
// ascending.
func (p *Problem) LineIDs() []int {
	ids := make([]int, 0, len(p.terminals))
	for id := range p.terminals {
		ids = append(ids, id)
	}
	sort.Ints(ids)
	return ids
}

// Terminals returns the two terminals registered for lineID.
//
// Returns ErrUnknownLine if no terminal was ever registered for lineID,
// ErrBadTerminalCount if the registered count is not exactly two — both
// are invariant violations the encoder assumes cannot happen (spec.md §3
// "Each line id is associated with exactly two terminals"). With
// ErrBadTerminalCount the result still holds the first registered
// terminals, up to two.
func (p *Problem) Terminals(lineID int) ([2]Terminal, error) {
	var out [2]Terminal
	ts, ok := p.terminals[lineID]
	if !ok {
		return out, ErrUnknownLine
	}
	copy(out[:], ts)
	if len(ts) != 2 {
		return out, ErrBadTerminalCount
	}
	return out, nil
}

// WriteTo renders the problem in the textual problem format described in
// spec.md §6.
func (p *Problem) WriteTo(w io.Writer) (int64, error) {
	cw := &countingWriter{w: w}
	fmt.Fprintf(cw, "SIZE %dX%d\n", p.maxWidth, p.maxHeight)
	fmt.Fprintf(cw, "BLOCK_NUM %d\n", len(p.blocks))
	for _, b := range p.blocks {
		writeBlock(cw, b)
	}
	return cw.n, cw.err
}

func writeBlock(w io.Writer, b *block.Block) {
	bw, bh := b.Width(), b.Height()
	fmt.Fprintf(w, "BLOCK#%d %dX%d\n", b.ID(), bw, bh)
	for y := 0; y < bh; y++ {
		for x := 0; x < bw; x++ {
			if x > 0 {
				fmt.Fprint(w, ",")
			}
			l := b.Label(position.New(x, y))
			switch {
			case l == -1:
				fmt.Fprint(w, " 0")
			case l == 0:
				fmt.Fprint(w, " +")
			default:
				fmt.Fprintf(w, "%2d", l)
			}
		}
		fmt.Fprint(w, "\n")
	}
}

// countingWriter tracks total bytes written and the first error
// encountered, matching the io.WriterTo contract with minimal ceremony.
type countingWriter struct {
	w   io.Writer
	n   int64
	err error
}

func (c *countingWriter) Write(p []byte) (int, error) {
	if c.err != nil {
		return 0, c.err
	}
	n, err := c.w.Write(p)
	c.n += int64(n)
	c.err = err
	return n, err
}
