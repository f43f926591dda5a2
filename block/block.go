// Package block defines Block, one polyomino-shaped puzzle piece carrying
// labeled terminal cells, along with fixed-orientation tetromino
// classification (spec.md §3 Block).
package block

import (
	"github.com/katalvlaran/adc2019/position"
)

// Block is one polyomino placed on the board in a single fixed
// orientation (no rotation). Offsets and labels are immutable after
// construction; Width/Height/Type are derived once at construction time.
type Block struct {
	id      int
	offsets []position.Position
	labels  map[position.Position]int // terminal cells only; absent == no terminal
	width   int
	height  int
	kind    TetrominoType
}

// New constructs a Block from its 1-based id, the ordered list of
// interior cell offsets relative to its top-left origin, and a mapping
// from offset to positive line label for terminal cells (non-terminal
// offsets must not appear as keys).
//
// Returns ErrEmptyShape if offsets is empty, ErrNegativeOffset if any
// offset has a negative coordinate (offsets are always relative to the
// block's own top-left corner, so negative coordinates are never valid).
func New(id int, offsets []position.Position, labels map[position.Position]int) (*Block, error) {
	if len(offsets) == 0 {
		return nil, ErrEmptyShape
	}

	maxX, maxY := 0, 0
	for _, p := range offsets {
		if p.X < 0 || p.Y < 0 {
			return nil, ErrNegativeOffset
		}
		if p.X > maxX {
			maxX = p.X
		}
		if p.Y > maxY {
			maxY = p.Y
		}
	}

	offsetsCopy := make([]position.Position, len(offsets))
	copy(offsetsCopy, offsets)

	labelsCopy := make(map[position.Position]int, len(labels))
	for p, l := range labels {
		if l > 0 {
			labelsCopy[p] = l
		}
	}

	return &Block{
		id:      id,
		offsets: offsetsCopy,
		labels:  labelsCopy,
		width:   maxX + 1,
		height:  maxY + 1,
		kind:    classify(offsetsCopy),
	}, nil
}

// ID returns the block's 1-based identifier.
func (b *Block) ID() int { return b.id }

// Width returns 1 + the maximum X offset.
func (b *Block) Width() int { return b.width }

// Height returns 1 + the maximum Y offset.
func (b *Block) Height() int { return b.height }

// Type returns the block's derived tetromino type, or TypeX if its
// offsets do not match any catalog entry.
func (b *Block) Type() TetrominoType { return b.kind }

// Offsets returns the block's interior cell offsets in construction
// order. The returned slice is a copy; callers may not mutate the
// block through it.
func (b *Block) Offsets() []position.Position {
	out := make([]position.Position, len(b.offsets))
	copy(out, b.offsets)
	return out
}

// Label returns the line label at offset p, 0 if p is inside the block
// but carries no terminal, or -1 if p is not part of the block at all.
func (b *Block) Label(p position.Position) int {
	if l, ok := b.labels[p]; ok {
		return l
	}
	for _, o := range b.offsets {
		if o.Equal(p) {
			return 0
		}
	}
	return -1
}

// Terminals returns every (offset, label) pair for offsets that carry a
// positive line label, in unspecified order.
func (b *Block) Terminals() []struct {
	Offset position.Position
	Label  int
} {
	out := make([]struct {
		Offset position.Position
		Label  int
	}, 0, len(b.labels))
	for p, l := range b.labels {
		out = append(out, struct {
			Offset position.Position
			Label  int
		}{Offset: p, Label: l})
	}
	return out
}
