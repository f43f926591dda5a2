package block

import "errors"

// Sentinel errors for block construction and lookup.
var (
	// ErrEmptyShape indicates a block was constructed with no offsets.
	ErrEmptyShape = errors.New("block: pos_list must contain at least one cell")
	// ErrNegativeOffset indicates an offset outside the non-negative quadrant.
	ErrNegativeOffset = errors.New("block: offsets must be non-negative")
)
