// Package parser reads the textual problem and answer formats described
// in spec.md §6. ParseProblem collects every error encountered (not just
// the first) before reporting failure, in the style of the reference
// implementation (spec.md §7); ParseAnswer stops at the first error.
package parser

import (
	"errors"
	"fmt"
)

// ErrParse is a sentinel any SyntaxError / ErrorList wraps, so callers
// can errors.Is a failed parse without inspecting individual messages.
var ErrParse = errors.New("parser: syntax error")

// SyntaxError is one parse error, tied to the 1-based line number it was
// found on and the raw line text, matching the original parser's
// "Error at line N: msg" / "     <line>" two-line report.
type SyntaxError struct {
	Line    int
	Text    string
	Message string
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("line %d: %s: %q", e.Line, e.Message, e.Text)
}

func (e *SyntaxError) Unwrap() error { return ErrParse }

// ErrorList accumulates every SyntaxError seen while parsing one file.
// A non-empty ErrorList means parsing yielded a nil Problem/Answer
// (spec.md §7 "a single error yields a null problem/answer").
type ErrorList []*SyntaxError

func (el ErrorList) Error() string {
	if len(el) == 1 {
		return el[0].Error()
	}
	return fmt.Sprintf("%d parse errors, first: %s", len(el), el[0].Error())
}

func (el ErrorList) Unwrap() error { return ErrParse }
