// Package dfs implements depth-first search on core.Graph by city index.
//
// Complexity:
//
//   - Time:   O(V + E), plus the cost of hooks.
//   - Memory: O(V) for the recursion stack and per-index slices.
package dfs

import (
	"fmt"

	"github.com/katalvlaran/citymap/core"
)

// walker encapsulates state during DFS.
type walker struct {
	graph *core.Graph
	opts  Options
	res   *Result
	comp  int // label of the tree being grown
}

// DFS performs depth-first search on g from src, or over every component
// when WithFullTraversal is set (src is then ignored).
// Returns the partial Result together with any context or hook error.
func DFS(g *core.Graph, src int, opts ...Option) (*Result, error) {
	// 1. Validate input graph
	if g == nil {
		return nil, ErrGraphNil
	}

	// 2. Apply options
	o := DefaultOptions()
	for _, fn := range opts {
		fn(&o)
	}

	// 3. Single-source mode: verify src
	n := g.CityCount()
	if !o.FullTraversal && (src < 0 || src >= n) {
		return nil, fmt.Errorf("dfs: %w: %d with %d cities", core.ErrIndexOutOfRange, src, n)
	}

	// 4. Initialize result
	res := &Result{
		Order:     make([]int, 0, n),
		Depth:     make([]int, n),
		Parent:    make([]int, n),
		Component: make([]int, n),
	}
	for i := 0; i < n; i++ {
		res.Depth[i] = -1
		res.Parent[i] = core.NoCity
		res.Component[i] = -1
	}
	w := &walker{graph: g, opts: o, res: res}

	// 5. Traverse: forest or single tree
	if !o.FullTraversal {
		return res, w.tree(src)
	}
	for u := 0; u < n; u++ {
		if !res.Visited(u) {
			if err := w.tree(u); err != nil {
				return res, err
			}
		}
	}

	return res, nil
}

// Components labels every connected component of g.
func Components(g *core.Graph) (*Result, error) {
	return DFS(g, 0, WithFullTraversal())
}

// Reachable returns every index reachable from src, including src, in index order.
func Reachable(g *core.Graph, src int) ([]int, error) {
	res, err := DFS(g, src)
	if err != nil {
		return nil, err
	}

	return res.Members(0), nil
}

// tree grows one DFS tree rooted at root.
func (w *walker) tree(root int) error {
	err := w.traverse(root, 0)
	w.comp++
	w.res.Components = w.comp

	return err
}

// traverse visits u at the given depth and recurses into undiscovered neighbors.
func (w *walker) traverse(u, depth int) error {
	// 1. Cancellation check
	select {
	case <-w.opts.Ctx.Done():
		return w.opts.Ctx.Err()
	default:
	}

	// 2. Depth limit
	if w.opts.MaxDepth >= 0 && depth > w.opts.MaxDepth {
		return nil
	}

	// 3. Mark discovered
	w.res.Depth[u] = depth
	w.res.Component[u] = w.comp

	// 4. Pre-order hook
	if w.opts.OnVisit != nil {
		if err := w.opts.OnVisit(u, depth); err != nil {
			return fmt.Errorf("dfs: OnVisit hook for %d: %w", u, err)
		}
	}

	// 5. Explore neighbors in adjacency order
	roads, err := w.graph.Neighbors(u)
	if err != nil {
		return fmt.Errorf("dfs: neighbors of %d: %w", u, err)
	}
	for _, r := range roads {
		if w.res.Visited(r.To) {
			continue
		}
		// a neighbor beyond the depth limit stays undiscovered
		if w.opts.MaxDepth >= 0 && depth+1 > w.opts.MaxDepth {
			continue
		}
		w.res.Parent[r.To] = u
		if err := w.traverse(r.To, depth+1); err != nil {
			return err
		}
	}

	// 6. Record finish order
	w.res.Order = append(w.res.Order, u)

	return nil
}
