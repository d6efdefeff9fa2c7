// Package dijkstra implements Dijkstra's shortest-path algorithm on a core.Graph.
//
// The graph is bounded by a small fixed capacity, so the next city to settle
// is found by a linear scan over the unvisited set instead of a heap.
//
// Complexity:
//
//   - Time:  O(V² + E)
//   - V iterations, each scanning V tentative distances.
//   - Each road is relaxed at most twice (once per direction).
//   - Space: O(V) for the distance, predecessor and visited slices.
package dijkstra

import (
	"fmt"

	"github.com/katalvlaran/citymap/core"
)

// ShortestPath computes shortest distances from src over g and records the
// predecessor of every reached index.
//
// Preconditions and validation (in order):
//  1. g must be non-nil (ErrNilGraph).
//  2. src and dst must be valid indices (core.ErrIndexOutOfRange).
//
// The loop ends when every reachable city is settled or no unvisited city
// has a finite distance. An unreachable dst is not an error here;
// Result.PathTo and Result.Distance report it as core.ErrNoPath.
//
// Ties between equal tentative distances are broken by the lower index;
// a relaxation only replaces a predecessor on a strictly shorter distance.
func ShortestPath(g *core.Graph, src, dst int, opts ...Option) (*Result, error) {
	// 1) Build options
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	// 2) Validate inputs
	if g == nil {
		return nil, ErrNilGraph
	}
	n := g.CityCount()
	if src < 0 || src >= n || dst < 0 || dst >= n {
		return nil, fmt.Errorf("dijkstra: %w: %d → %d with %d cities", core.ErrIndexOutOfRange, src, dst, n)
	}

	// 3) Initialize runner state and run.
	r := &runner{
		g:       g,
		options: cfg,
		visited: make([]bool, n),
		res: &Result{
			Source:  src,
			Target:  dst,
			Dist:    make([]int64, n),
			Parent:  make([]int, n),
			Settled: make([]int, 0, n),
		},
	}
	r.init()
	if err := r.process(); err != nil {
		return nil, err
	}

	return r.res, nil
}

// runner holds the mutable state for a single Dijkstra execution.
type runner struct {
	g       *core.Graph // read-only within Dijkstra
	options Options
	visited []bool // index → distance finalized
	res     *Result
}

// init sets every distance to Infinity and predecessor to NoCity, then the source to zero.
func (r *runner) init() {
	for v := range r.res.Dist {
		r.res.Dist[v] = Infinity
		r.res.Parent[v] = core.NoCity
	}
	r.res.Dist[r.res.Source] = 0
}

// process repeatedly settles the closest unvisited index and relaxes its roads.
func (r *runner) process() error {
	for {
		u := r.closestUnvisited()
		if u == core.NoCity {
			return nil
		}
		r.visited[u] = true
		r.res.Settled = append(r.res.Settled, u)
		r.options.OnSettle(u, r.res.Dist[u])

		roads, err := r.g.Neighbors(u)
		if err != nil {
			return fmt.Errorf("dijkstra: neighbors of %d: %w", u, err)
		}
		for _, road := range roads {
			r.relax(u, road)
		}
	}
}

// closestUnvisited scans for the unvisited index with the smallest finite
// distance; NoCity when none is left.
func (r *runner) closestUnvisited() int {
	best := core.NoCity
	bestDist := Infinity
	for v, d := range r.res.Dist {
		if !r.visited[v] && d < bestDist {
			best, bestDist = v, d
		}
	}

	return best
}

// relax lowers the tentative distance of road.To through u when strictly shorter.
func (r *runner) relax(u int, road core.Road) {
	v := road.To
	if r.visited[v] {
		return
	}
	du := r.res.Dist[u]
	// overflow guard: du + road.Distance must stay below Infinity
	if road.Distance >= Infinity-du {
		return
	}
	if alt := du + road.Distance; alt < r.res.Dist[v] {
		r.res.Dist[v] = alt
		r.res.Parent[v] = u
	}
}
