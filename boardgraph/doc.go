// Package boardgraph treats a decoded puzzle.Answer as a 4-connected
// grid graph and independently verifies that each line's labeled cells
// form a single connected simple path between its two terminals.
//
// What:
//
//   - Builds one *core.Graph per board, vertex IDs "x,y", edges between
//     orthogonal neighbors.
//   - ValidateRoute takes the induced subgraph over one line's labeled
//     cells and checks it is a simple path: no cell has degree above 2,
//     exactly the two terminals have degree 1, and a BFS from one
//     terminal reaches every labeled cell including the other terminal.
//
// Why:
//
//   - The encoder's CNF already forces this shape (degree and
//     continuity clauses), so ValidateRoute is a second, independent
//     check of the decoder's output — useful as a guard against an
//     encoder/decoder mismatch rather than as the primary correctness
//     mechanism.
//
// Complexity:
//
//   - NewBoardGraph: O(W×H).
//   - ValidateRoute: O(W×H) to build the induced subgraph plus O(V+E)
//     for the BFS, where V is the number of cells labeled with the line.
//
// Errors:
//
//   - ErrDisconnectedRoute: the labeled cells do not form one component.
//   - ErrBranchingRoute: some labeled cell has degree more than 2.
//   - ErrTerminalDegree: a terminal cell's degree is not 1 (or not 0 on
//     a single-cell route where the two terminals coincide).
package boardgraph
