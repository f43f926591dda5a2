// Package gridgraph treats a 2D grid of cells as a graph.
//
// What:
//
//   - GridGraph wraps a rectangular [][]int grid with tunable connectivity.
//   - Converts the grid to a *core.Graph for arbitrary graph algorithms.
//
// Why:
//
//   - boardgraph.NewBoardGraph builds a GridGraph from a decoded answer's
//     line-label grid and converts it with ToCoreGraph instead of
//     constructing a *core.Graph by hand, so the board-to-graph
//     conversion reuses the same code a generic grid problem would.
//
// Complexity:
//
//   - ToCoreGraph: O(W×H×d + E), Memory: O(W×H + E)  (d = number of
//     neighbors, 4 or 8).
//
// Options:
//
//   - GridOptions.Conn: Conn4 (4-neighbors) or Conn8 (8-neighbors).
//
// Errors:
//
//   - ErrEmptyGrid: input grid has no rows or no columns.
//   - ErrNonRectangular: rows have differing lengths.
package gridgraph
