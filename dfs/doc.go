// Package dfs provides depth-first traversal over a core.Graph.
//
// The CLI uses it to count connected components for the stats view. The
// search follows adjacency order, so results are deterministic for a given
// sequence of road additions.
//
// Usage
//
//	res, err := dfs.Components(g)
//	fmt.Println(res.Components)            // number of separate road networks
//	same := res.Component[a] == res.Component[b]
//
//	idx, err := dfs.Reachable(g, src)      // every index reachable from src
//
// Errors
//
//   - ErrGraphNil             if g is nil.
//   - core.ErrIndexOutOfRange if src is invalid in single-source mode.
//   - context errors          if the WithContext context is done.
//   - wrapped OnVisit errors.
package dfs
