// Package dijkstra computes weighted shortest paths between two cities of a
// core.Graph.
//
// What
//
//   - Classic Dijkstra over non-negative int64 road distances.
//   - The next city to settle is chosen by a linear scan of the unvisited
//     set. core.Graph holds at most a few hundred cities, so this beats a
//     heap in practice and keeps tie-breaking obvious: lowest index first.
//   - Relaxation is overflow-safe: a sum that would reach Infinity is skipped.
//   - Returns a Result with per-index distances, predecessors and the
//     settle order; PathTo rebuilds Source → Target.
//
// Complexity (V = cities, E = roads)
//
//   - Time:   O(V² + E)
//   - Memory: O(V)
//
// Usage
//
//	res, err := dijkstra.ShortestPath(g, src, dst)
//	if err != nil {
//	    // ErrNilGraph or core.ErrIndexOutOfRange
//	}
//	path, err := res.PathTo()    // core.ErrNoPath if dst is unreachable
//	total, _ := res.Distance()
//
// Errors
//
//   - ErrNilGraph             if the graph pointer is nil.
//   - core.ErrIndexOutOfRange if src or dst is not a valid index.
//   - core.ErrNoPath          from Result.PathTo and Result.Distance.
package dijkstra
