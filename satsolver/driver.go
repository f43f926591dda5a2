// Package satsolver maintains the CNF variable/clause buffer the encoder
// writes into, and drives an external SAT solver executable over the
// DIMACS text protocol (spec.md §4.1, §6 SAT interface, §5 resource
// model). The solver program itself is an external collaborator; Driver
// only writes its input, invokes it, and parses its output.
package satsolver

import (
	"bufio"
	"fmt"
	"os"
	"os/exec"
	"strconv"
	"strings"
)

// Driver maintains a monotonically growing variable count and clause
// buffer, and knows how to invoke one external SAT solver program on
// them. A Driver is used for exactly one instance: construct a fresh one
// per solve.
type Driver struct {
	satProg    string
	varCount   int
	clauses    [][]int
	assumption []int
	model      []Value

	// err is sticky: once AddClause drops a malformed literal, it holds
	// the first cause (ErrZeroLiteral or ErrLiteralOutOfRange) and is
	// never cleared, mirroring bufio.Scanner's Err() convention.
	err error

	// Debug retains the DIMACS input and solver output temp files, once
	// both have been created, after Solve returns (success or failure)
	// instead of removing them, for
	// inspection. Mirrors the original implementation's debug flag
	// (spec.md §7 "On error the encoder does not guarantee cleanup").
	Debug bool
}

// NewDriver constructs a Driver that will invoke satProg as
// "<satProg> <input.cnf> <output.txt>".
func NewDriver(satProg string) *Driver {
	return &Driver{satProg: satProg}
}

// NewVariable allocates and returns a fresh 1-based variable id.
func (d *Driver) NewVariable() int {
	d.varCount++
	return d.varCount
}

// VarCount returns the number of variables allocated so far.
func (d *Driver) VarCount() int { return d.varCount }

// Clauses returns a copy of the accumulated clause buffer, primarily for
// tests that want to inspect or brute-force check the generated CNF
// without running an external solver.
func (d *Driver) Clauses() [][]int {
	out := make([][]int, len(d.clauses))
	for i, c := range d.clauses {
		cc := make([]int, len(c))
		copy(cc, c)
		out[i] = cc
	}
	return out
}

// AddClause appends one clause, the disjunction of the given literals.
// A literal is a nonzero int whose absolute value is a variable id
// returned by NewVariable and whose sign is its polarity (negative ==
// negated). Clauses with any out-of-range or zero literal are dropped,
// matching the reference implementation's add_clause — this is a
// defensive no-op against programmer error in constraint-generation
// code, not a reported failure, but the cause is latched into Err() for
// callers that want to assert no clause was ever dropped.
func (d *Driver) AddClause(lits ...int) {
	clause := make([]int, 0, len(lits))
	for _, lit := range lits {
		if err := d.checkLiteral(lit); err != nil {
			if d.err == nil {
				d.err = err
			}
			return
		}
		clause = append(clause, lit)
	}
	d.clauses = append(d.clauses, clause)
}

// Err returns the first error latched by AddClause when it dropped a
// malformed literal, or nil if every clause passed so far was well-formed.
func (d *Driver) Err() error { return d.err }

func (d *Driver) checkLiteral(lit int) error {
	if lit == 0 {
		return ErrZeroLiteral
	}
	v := lit
	if v < 0 {
		v = -v
	}
	if v > d.varCount {
		return ErrLiteralOutOfRange
	}
	return nil
}

// Assume appends unit-clause assumptions, written to the DIMACS file as
// additional single-literal clauses (spec.md §6 "Assumptions are
// appended as unit clauses").
func (d *Driver) Assume(lits ...int) {
	d.assumption = append(d.assumption, lits...)
}

// Solve writes the accumulated clauses as DIMACS CNF, invokes the
// configured SAT program as a subprocess, and parses its result.
//
// On ResultSAT, the returned model is indexed by variable id (index 0
// unused); model[v] is Unknown if the solver left v unassigned.
func (d *Driver) Solve() (Result, []Value, error) {
	inFile, err := os.CreateTemp("", "adc2019-*.cnf")
	if err != nil {
		return ResultUnknown, nil, fmt.Errorf("satsolver: create input temp file: %w", err)
	}
	inPath := inFile.Name()
	if err := d.writeDimacs(inFile); err != nil {
		inFile.Close()
		os.Remove(inPath)
		return ResultUnknown, nil, fmt.Errorf("satsolver: write DIMACS input: %w", err)
	}
	if err := inFile.Close(); err != nil {
		os.Remove(inPath)
		return ResultUnknown, nil, fmt.Errorf("satsolver: close DIMACS input: %w", err)
	}

	outFile, err := os.CreateTemp("", "adc2019-*.out")
	if err != nil {
		os.Remove(inPath)
		return ResultUnknown, nil, fmt.Errorf("satsolver: create output temp file: %w", err)
	}
	outPath := outFile.Name()
	outFile.Close()

	if !d.Debug {
		defer os.Remove(inPath)
		defer os.Remove(outPath)
	}

	cmd := exec.Command(d.satProg, inPath, outPath)
	// The solver's own stdout/stderr are not part of the protocol
	// (spec.md §6); its result is read back from outPath.
	if err := cmd.Run(); err != nil {
		return ResultUnknown, nil, fmt.Errorf("satsolver: run %q: %w", d.satProg, err)
	}

	result, model, err := d.readResult(outPath)
	d.model = model
	return result, model, err
}

// Value returns the solved assignment for variable id v. It returns
// ErrNoModel if Solve has not yet produced a SAT model, and
// ErrLiteralOutOfRange if v was never allocated by NewVariable.
func (d *Driver) Value(v int) (Value, error) {
	if d.model == nil {
		return Unknown, ErrNoModel
	}
	if v < 1 || v >= len(d.model) {
		return Unknown, ErrLiteralOutOfRange
	}
	return d.model[v], nil
}

func (d *Driver) writeDimacs(w *os.File) error {
	bw := bufio.NewWriter(w)
	if _, err := fmt.Fprintf(bw, "p cnf %d %d\n", d.varCount, len(d.clauses)); err != nil {
		return err
	}
	for _, clause := range d.clauses {
		for _, lit := range clause {
			if _, err := fmt.Fprintf(bw, "%d ", lit); err != nil {
				return err
			}
		}
		if _, err := fmt.Fprint(bw, "0\n"); err != nil {
			return err
		}
	}
	for _, lit := range d.assumption {
		if _, err := fmt.Fprintf(bw, "%d 0\n", lit); err != nil {
			return err
		}
	}
	return bw.Flush()
}

func (d *Driver) readResult(outPath string) (Result, []Value, error) {
	f, err := os.Open(outPath)
	if err != nil {
		return ResultUnknown, nil, fmt.Errorf("satsolver: open solver output: %w", err)
	}
	defer f.Close()

	sc := bufio.NewScanner(f)
	sc.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)
	if !sc.Scan() {
		return ResultUnknown, nil, nil
	}
	switch strings.TrimSpace(sc.Text()) {
	case "SAT":
		model := make([]Value, d.varCount+1)
		if sc.Scan() {
			for _, tok := range strings.Fields(sc.Text()) {
				val, err := strconv.Atoi(tok)
				if err != nil {
					continue
				}
				if val == 0 {
					continue
				}
				v := val
				assigned := True
				if v < 0 {
					v = -v
					assigned = False
				}
				if v >= 1 && v < len(model) {
					model[v] = assigned
				}
			}
		}
		return ResultSAT, model, nil
	case "UNSAT":
		return ResultUNSAT, nil, nil
	default:
		return ResultUnknown, nil, nil
	}
}
