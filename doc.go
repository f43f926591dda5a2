// Package adc2019 packs polyomino blocks onto a board and routes
// labeled lines between matching terminal pairs through the empty
// cells, by reducing the puzzle to Boolean satisfiability.
//
// What:
//
//   - position/block/puzzle model the board, its pieces, and the
//     solved grid.
//   - parser reads the textual problem/answer formats (puzzle's WriteTo
//     methods write them).
//   - satsolver drives an external SAT solver over DIMACS CNF.
//   - encoder builds the placement and routing CNF and reconstructs a
//     puzzle.Answer from a satisfying model.
//   - boardgraph independently re-checks that a decoded route is a
//     single connected simple path.
//   - cmd/adcsolve and cmd/adcview are the solve/view CLI entry points.
//
// Why:
//
//   - Packing (no overlap) and routing (disjoint simple paths) are both
//     naturally combinatorial; CNF plus an external solver handles their
//     interaction without a bespoke search algorithm.
//
// Complexity:
//
//   - Variable and clause counts are polynomial in board size and block
//     count (encoder/cnf.go); see spec.md §5 for the exact bounds.
//
// Errors:
//
//   - Library packages return errors; only programmer-error conditions
//     that indicate an inconsistent model (a decoder precondition
//     violated, a route the CNF should have forbidden) panic, per
//     package.
package adc2019
