package satsolver

import "errors"

// Sentinel errors for Driver operations.
var (
	// ErrZeroLiteral indicates AddClause was called with a literal of 0,
	// which DIMACS reserves as the clause terminator.
	ErrZeroLiteral = errors.New("satsolver: 0 is not a valid literal")
	// ErrLiteralOutOfRange indicates a literal referencing a variable id
	// never returned by NewVariable.
	ErrLiteralOutOfRange = errors.New("satsolver: literal out of range")
	// ErrNoModel indicates Value was queried before a SAT solve populated one.
	ErrNoModel = errors.New("satsolver: no model available")
)
