package block

import (
	"sort"

	"github.com/katalvlaran/adc2019/position"
)

// TetrominoType is one of the seven named tetromino shapes, or X for any
// other polyomino (including non-tetromino cell counts).
type TetrominoType byte

const (
	TypeI TetrominoType = 'I'
	TypeO TetrominoType = 'O'
	TypeT TetrominoType = 'T'
	TypeJ TetrominoType = 'J'
	TypeL TetrominoType = 'L'
	TypeS TetrominoType = 'S'
	TypeZ TetrominoType = 'Z'
	TypeX TetrominoType = 'X'
)

// String renders the type as its single-letter code.
func (t TetrominoType) String() string {
	return string(rune(t))
}

// catalog lists, per tetromino type, every rotation's offset set in its
// own top-left-normalized form. Each entry must already be normalized
// (min X == 0, min Y == 0); classify normalizes the input the same way
// before comparing, so entries here are the ground truth for every
// rotation a fixed-orientation block may arrive in.
var catalog = map[TetrominoType][][]position.Position{
	TypeI: {
		{position.New(0, 0), position.New(0, 1), position.New(0, 2), position.New(0, 3)},
		{position.New(0, 0), position.New(1, 0), position.New(2, 0), position.New(3, 0)},
	},
	TypeO: {
		{position.New(0, 0), position.New(1, 0), position.New(0, 1), position.New(1, 1)},
	},
	TypeT: {
		{position.New(1, 0), position.New(0, 1), position.New(1, 1), position.New(2, 1)},
		{position.New(1, 0), position.New(0, 1), position.New(1, 1), position.New(1, 2)},
		{position.New(0, 0), position.New(1, 0), position.New(2, 0), position.New(1, 1)},
		{position.New(0, 0), position.New(0, 1), position.New(1, 1), position.New(0, 2)},
	},
	TypeJ: {
		{position.New(1, 0), position.New(1, 1), position.New(0, 2), position.New(1, 2)},
		{position.New(0, 0), position.New(0, 1), position.New(1, 1), position.New(2, 1)},
		{position.New(0, 0), position.New(1, 0), position.New(0, 1), position.New(0, 2)},
		{position.New(0, 0), position.New(1, 0), position.New(2, 0), position.New(2, 1)},
	},
	TypeL: {
		{position.New(0, 0), position.New(0, 1), position.New(0, 2), position.New(1, 2)},
		{position.New(0, 0), position.New(1, 0), position.New(2, 0), position.New(0, 1)},
		{position.New(0, 0), position.New(1, 0), position.New(1, 1), position.New(1, 2)},
		{position.New(2, 0), position.New(0, 1), position.New(1, 1), position.New(2, 1)},
	},
	TypeS: {
		{position.New(1, 0), position.New(2, 0), position.New(0, 1), position.New(1, 1)},
		{position.New(0, 0), position.New(0, 1), position.New(1, 1), position.New(1, 2)},
	},
	TypeZ: {
		{position.New(0, 0), position.New(1, 0), position.New(1, 1), position.New(2, 1)},
		{position.New(1, 0), position.New(0, 1), position.New(1, 1), position.New(0, 2)},
	},
}

// typeOrder fixes a deterministic scan order over the catalog so that
// classify's result does not depend on Go's randomized map iteration.
var typeOrder = []TetrominoType{TypeI, TypeO, TypeT, TypeJ, TypeL, TypeS, TypeZ}

// signature returns a sorted, top-left-normalized copy of offsets, used
// as a multiset key for shape comparison.
func signature(offsets []position.Position) []position.Position {
	if len(offsets) == 0 {
		return nil
	}
	minX, minY := offsets[0].X, offsets[0].Y
	for _, p := range offsets[1:] {
		if p.X < minX {
			minX = p.X
		}
		if p.Y < minY {
			minY = p.Y
		}
	}
	sig := make([]position.Position, len(offsets))
	for i, p := range offsets {
		sig[i] = position.New(p.X-minX, p.Y-minY)
	}
	sort.Slice(sig, func(i, j int) bool { return sig[i].Less(sig[j]) })
	return sig
}

// sameMultiset reports whether a and b contain the same positions,
// ignoring order. Both must already be sorted (e.g. via signature).
func sameMultiset(a, b []position.Position) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !a[i].Equal(b[i]) {
			return false
		}
	}
	return true
}

// classify determines the tetromino type of a block's offsets by
// comparing its top-left-normalized multiset against the catalog. It
// returns TypeX if no catalog entry matches, including whenever the
// offset count is not four.
func classify(offsets []position.Position) TetrominoType {
	sig := signature(offsets)
	for _, t := range typeOrder {
		for _, pat := range catalog[t] {
			if sameMultiset(sig, signature(pat)) {
				return t
			}
		}
	}
	return TypeX
}
