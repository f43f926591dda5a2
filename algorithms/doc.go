// Package algorithms implements BFS (Breadth-First Search) traversal on
// core.Graph.
//
// BFS accepts a *core.Graph and returns simple Go types (slices, maps).
// A hookable BFSOptions struct lets callers inject custom logic during
// traversal — boardgraph.ValidateRoute uses BFS's resulting visit order
// to confirm a decoded route is one connected component.
package algorithms
