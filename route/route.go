// SPDX-License-Identifier: MIT
//
// File: route.go
// Role: name-keyed Find facade over bfs/dijkstra and predecessor-chain reconstruction.

package route

import (
	"fmt"
	"slices"

	"github.com/katalvlaran/citymap/bfs"
	"github.com/katalvlaran/citymap/core"
	"github.com/katalvlaran/citymap/dijkstra"
)

// SearchOptions carries optional tracing hooks forwarded to the engines.
type SearchOptions struct {
	BFS      []bfs.Option
	Dijkstra []dijkstra.Option
}

// Find resolves the two city names, runs the engine selected by method and
// returns the reconstructed Route.
//
// Errors: core.ErrCityNotFound for an unknown name, ErrUnknownMethod,
// core.ErrNoPath when to is unreachable from from.
func Find(g *core.Graph, from, to string, method Method) (*Route, error) {
	return FindWith(g, from, to, method, SearchOptions{})
}

// FindWith is Find with engine hooks.
func FindWith(g *core.Graph, from, to string, method Method, so SearchOptions) (*Route, error) {
	src, err := g.IndexOf(from)
	if err != nil {
		return nil, fmt.Errorf("route: find %q -> %q: %w", from, to, err)
	}
	dst, err := g.IndexOf(to)
	if err != nil {
		return nil, fmt.Errorf("route: find %q -> %q: %w", from, to, err)
	}

	var path []int
	switch method {
	case BFS:
		res, err := bfs.ShortestPath(g, src, dst, so.BFS...)
		if err != nil {
			return nil, err
		}
		if path, err = res.PathTo(); err != nil {
			return nil, fmt.Errorf("route: find %q -> %q: %w", from, to, err)
		}
	case Dijkstra:
		res, err := dijkstra.ShortestPath(g, src, dst, so.Dijkstra...)
		if err != nil {
			return nil, err
		}
		if path, err = res.PathTo(); err != nil {
			return nil, fmt.Errorf("route: find %q -> %q: %w", from, to, err)
		}
	default:
		return nil, fmt.Errorf("%w: %d", ErrUnknownMethod, int(method))
	}

	return fromIndices(g, path, method)
}

// FromParents rebuilds the route ending at dst from a predecessor slice,
// walking back until core.NoCity and reversing.
//
// The caller must know dst was reached; an unreached dst has no predecessor
// and yields a single-stop route.
func FromParents(g *core.Graph, parent []int, dst int, method Method) (*Route, error) {
	if dst < 0 || dst >= len(parent) {
		return nil, fmt.Errorf("route: %w: %d", core.ErrIndexOutOfRange, dst)
	}
	path := make([]int, 0, 8)
	for v := dst; v != core.NoCity; v = parent[v] {
		if v < 0 || v >= len(parent) || len(path) > len(parent) {
			return nil, fmt.Errorf("%w at %d", ErrBrokenChain, v)
		}
		path = append(path, v)
	}
	slices.Reverse(path)

	return fromIndices(g, path, method)
}

// fromIndices resolves names and leg distances for an index path.
func fromIndices(g *core.Graph, path []int, method Method) (*Route, error) {
	r := &Route{
		Method:  method,
		Indices: path,
		Stops:   make([]string, len(path)),
	}
	for i, u := range path {
		name, err := g.Name(u)
		if err != nil {
			return nil, fmt.Errorf("route: %w", err)
		}
		r.Stops[i] = name
	}
	if len(path) > 1 {
		r.Legs = make([]Leg, 0, len(path)-1)
	}
	for i := 1; i < len(path); i++ {
		d, err := g.RoadWeight(path[i-1], path[i])
		if err != nil {
			return nil, fmt.Errorf("route: leg %s -> %s: %w", r.Stops[i-1], r.Stops[i], err)
		}
		r.Legs = append(r.Legs, Leg{From: r.Stops[i-1], To: r.Stops[i], Distance: d})
	}

	return r, nil
}
