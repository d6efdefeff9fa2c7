// Package bfs provides breadth-first search over a core.Graph,
// returning fewest-hop paths, parent links, and visit order.
package bfs

import (
	"fmt"

	"github.com/katalvlaran/citymap/core"
)

// queueItem pairs a city index with its BFS depth.
type queueItem struct {
	id    int
	depth int
}

// walker encapsulates mutable BFS state.
type walker struct {
	graph *core.Graph
	opts  Options
	queue []queueItem
	res   *Result
}

// ShortestPath runs breadth-first search on g from index src until dst is
// discovered or the frontier empties.
//
// Neighbors are enqueued in adjacency order (most recently added road
// first), so among several fewest-hop paths the one returned is fixed by
// the order in which roads were added.
//
// Returns ErrGraphNil, core.ErrIndexOutOfRange for bad indices, or any
// error returned by the OnVisit hook. An unreachable dst is not an error
// here; Result.PathTo reports it as core.ErrNoPath.
//
// Complexity: O(V + E) time, O(V) memory.
func ShortestPath(g *core.Graph, src, dst int, opts ...Option) (*Result, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	n := g.CityCount()
	if src < 0 || src >= n || dst < 0 || dst >= n {
		return nil, fmt.Errorf("bfs: %w: %d → %d with %d cities", core.ErrIndexOutOfRange, src, dst, n)
	}

	w := &walker{
		graph: g,
		opts:  o,
		queue: make([]queueItem, 0, n),
		res: &Result{
			Source: src,
			Target: dst,
			Order:  make([]int, 0, n),
			Depth:  make([]int, n),
			Parent: make([]int, n),
		},
	}
	for i := 0; i < n; i++ {
		w.res.Depth[i] = -1
		w.res.Parent[i] = core.NoCity
	}

	// Seed queue with the source (no parent).
	w.enqueue(src, 0, core.NoCity)

	return w.res, w.loop()
}

// enqueue marks id discovered at depth d, records its parent and queues it.
func (w *walker) enqueue(id, d, parent int) {
	w.res.Depth[id] = d
	w.res.Parent[id] = parent
	w.opts.OnEnqueue(id, d)
	w.queue = append(w.queue, queueItem{id: id, depth: d})
}

// loop processes the queue until the target is discovered, the queue is
// empty, or a hook fails.
func (w *walker) loop() error {
	for len(w.queue) > 0 && !w.res.Reached() {
		item := w.queue[0]
		w.queue = w.queue[1:]

		w.res.Order = append(w.res.Order, item.id)
		if err := w.opts.OnVisit(item.id, item.depth); err != nil {
			return fmt.Errorf("bfs: OnVisit error at %d: %w", item.id, err)
		}
		if err := w.enqueueNeighbors(item); err != nil {
			return err
		}
	}

	return nil
}

// enqueueNeighbors discovers every unseen neighbor of item, stopping early
// once the target is found.
func (w *walker) enqueueNeighbors(item queueItem) error {
	roads, err := w.graph.Neighbors(item.id)
	if err != nil {
		return fmt.Errorf("bfs: neighbors of %d: %w", item.id, err)
	}
	for _, r := range roads {
		if w.res.Depth[r.To] >= 0 {
			continue
		}
		w.enqueue(r.To, item.depth+1, item.id)
		if r.To == w.res.Target {
			return nil
		}
	}

	return nil
}
