package boardgraph

import "errors"

var (
	// ErrDisconnectedRoute indicates a line's labeled cells split across
	// more than one connected component.
	ErrDisconnectedRoute = errors.New("boardgraph: route is not connected")
	// ErrBranchingRoute indicates a labeled cell has more than two
	// same-line neighbors, so the route is not a simple path.
	ErrBranchingRoute = errors.New("boardgraph: route branches at a cell")
	// ErrTerminalDegree indicates a terminal cell's degree within the
	// route is inconsistent with it being a path endpoint.
	ErrTerminalDegree = errors.New("boardgraph: terminal has wrong degree")
)
