package puzzle

import "errors"

// Sentinel errors for Problem/Answer construction and access.
var (
	// ErrUnknownBlock indicates a reference to a block id that was never added.
	ErrUnknownBlock = errors.New("puzzle: unknown block id")
	// ErrUnknownLine indicates a reference to a line id with no terminals.
	ErrUnknownLine = errors.New("puzzle: unknown line id")
	// ErrBadTerminalCount indicates a line does not have exactly two terminals.
	ErrBadTerminalCount = errors.New("puzzle: line must have exactly two terminals")
	// ErrOutOfRange indicates a position or placement outside [0,W)x[0,H).
	ErrOutOfRange = errors.New("puzzle: position out of board range")
)
