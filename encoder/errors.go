// Package encoder builds the placement + routing CNF over a
// puzzle.Problem (spec.md §4, the encoder) and reconstructs a
// puzzle.Answer from a satisfying SAT model (spec.md §4.5, the
// decoder). This is the hard part of the system: everything else is
// glue around this variable model.
package encoder

import "errors"

// Sentinel errors for Encoder operations. These correspond to spec.md
// §4.4/§4.5 "programmer errors"/"fatal" conditions: a well-formed
// Problem and a model produced by GenPlacementConstraint +
// GenRoutingConstraint together never trigger them.
var (
	// ErrMissingPlacement indicates the model has no TRUE bit among a
	// block's X(b,*) or Y(b,*) variables.
	ErrMissingPlacement = errors.New("encoder: no true placement bit for block")
	// ErrRouteBroken indicates the decoder's edge walk could not reach
	// the line's second terminal.
	ErrRouteBroken = errors.New("encoder: route walk failed to reach second terminal")
	// ErrNotGenerated indicates GetAnswer was called before both
	// GenPlacementConstraint and GenRoutingConstraint.
	ErrNotGenerated = errors.New("encoder: constraints not fully generated")
)
