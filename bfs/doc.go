// Package bfs provides breadth-first search over a core.Graph, returning the
// fewest-hop path between two city indices.
//
// What
//
//   - Explores cities in non-decreasing hop count from a source index.
//   - Stops as soon as the target index is discovered, or when the frontier
//     empties.
//   - Returns a Result containing:
//   - Order:  dequeue sequence
//   - Depth:  hop count per index (-1 if never discovered)
//   - Parent: predecessor per index (core.NoCity for the source)
//   - Supports two hooks: OnEnqueue (discovery) and OnVisit (dequeue; may
//     abort with an error).
//
// Determinism
//
//	core.Graph keeps each adjacency list ordered most-recently-added first,
//	and BFS enqueues neighbors in that order. Among several paths with the
//	same hop count, the one returned is therefore fixed by the order in
//	which roads were added.
//
// Complexity (V = cities, E = roads)
//
//   - Time:   O(V + E)
//   - Memory: O(V)
//
// Usage
//
//	res, err := bfs.ShortestPath(g, src, dst)
//	if err != nil {
//	    // ErrGraphNil, core.ErrIndexOutOfRange, or an OnVisit error
//	}
//	path, err := res.PathTo() // core.ErrNoPath if dst is unreachable
//
// Errors
//
//   - ErrGraphNil             if the graph pointer is nil.
//   - core.ErrIndexOutOfRange if src or dst is not a valid index.
//   - core.ErrNoPath          from Result.PathTo when dst was never reached.
//   - Wrapped user-supplied hook errors from OnVisit.
package bfs
