// SPDX-License-Identifier: MIT
//
// File: methods_roads.go
// Role: Road lifecycle (AddRoad/AddRoadAt/RemoveRoad) and road queries.
// Determinism:
//   - Neighbors(u) lists the most recently added road first; BFS tie-breaks
//     depend on this order.
//   - Roads() walks cities in index order and each list in adjacency order.
// Concurrency:
//   - Mutations under mu write lock; queries under mu read lock.

package core

import (
	"fmt"
	"slices"
)

// AddRoad connects two named cities with an undirected road.
//
// Steps:
//  1. Resolve both names (ErrCityNotFound).
//  2. Reject negative distances, self-loops and a second road between the pair.
//  3. Prepend (b,d) to a's list and (a,d) to b's list.
//
// Complexity: O(deg(a) + deg(b)).
func (g *Graph) AddRoad(a, b string, distance int64) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	u, ok := g.index[a]
	if !ok {
		return fmt.Errorf("%w: %q", ErrCityNotFound, a)
	}
	v, ok := g.index[b]
	if !ok {
		return fmt.Errorf("%w: %q", ErrCityNotFound, b)
	}
	if err := g.linkRoad(u, v, distance); err != nil {
		return fmt.Errorf("core: add road %q-%q: %w", a, b, err)
	}

	return nil
}

// AddRoadAt is AddRoad addressed by index. It exists for loaders that
// rebuild a graph from index-based records.
func (g *Graph) AddRoadAt(u, v int, distance int64) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	if !g.inRange(u) || !g.inRange(v) {
		return fmt.Errorf("%w: road %d-%d with %d cities", ErrIndexOutOfRange, u, v, len(g.names))
	}

	return g.linkRoad(u, v, distance)
}

// linkRoad validates and inserts the symmetric pair. Caller holds the write lock.
func (g *Graph) linkRoad(u, v int, distance int64) error {
	if distance < 0 {
		return fmt.Errorf("%w: %d", ErrNegativeDistance, distance)
	}
	if u == v {
		return ErrSelfLoop
	}
	if findRoad(g.adj[u], v) >= 0 {
		return ErrDuplicateRoad
	}

	g.adj[u] = slices.Insert(g.adj[u], 0, Road{To: v, Distance: distance})
	g.adj[v] = slices.Insert(g.adj[v], 0, Road{To: u, Distance: distance})

	return nil
}

// RemoveRoad deletes the road between two named cities in both directions.
// It reports whether a road was removed; a missing road is not an error.
func (g *Graph) RemoveRoad(a, b string) (bool, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	u, ok := g.index[a]
	if !ok {
		return false, fmt.Errorf("%w: %q", ErrCityNotFound, a)
	}
	v, ok := g.index[b]
	if !ok {
		return false, fmt.Errorf("%w: %q", ErrCityNotFound, b)
	}

	existed := findRoad(g.adj[u], v) >= 0
	g.adj[u] = deleteRoad(g.adj[u], v)
	g.adj[v] = deleteRoad(g.adj[v], u)

	return existed, nil
}

// RoadWeight returns the distance of the road u–v by scanning u's list only.
func (g *Graph) RoadWeight(u, v int) (int64, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	if !g.inRange(u) || !g.inRange(v) {
		return 0, fmt.Errorf("%w: %d-%d", ErrIndexOutOfRange, u, v)
	}
	i := findRoad(g.adj[u], v)
	if i < 0 {
		return 0, fmt.Errorf("%w: %d-%d", ErrRoadNotFound, u, v)
	}

	return g.adj[u][i].Distance, nil
}

// Distance is RoadWeight addressed by name.
func (g *Graph) Distance(a, b string) (int64, error) {
	u, err := g.IndexOf(a)
	if err != nil {
		return 0, err
	}
	v, err := g.IndexOf(b)
	if err != nil {
		return 0, err
	}

	return g.RoadWeight(u, v)
}

// HasRoad reports whether the two named cities are directly connected.
func (g *Graph) HasRoad(a, b string) bool {
	_, err := g.Distance(a, b)
	return err == nil
}

// Neighbors returns a copy of u's adjacency list in iteration order.
func (g *Graph) Neighbors(u int) ([]Road, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	if !g.inRange(u) {
		return nil, fmt.Errorf("%w: %d", ErrIndexOutOfRange, u)
	}

	return slices.Clone(g.adj[u]), nil
}

// Roads lists every undirected road exactly once (From < To).
func (g *Graph) Roads() []Edge {
	g.mu.RLock()
	defer g.mu.RUnlock()

	var out []Edge
	for u, list := range g.adj {
		for _, r := range list {
			if u < r.To {
				out = append(out, Edge{From: u, To: r.To, Distance: r.Distance})
			}
		}
	}

	return out
}

// RoadCount returns the number of undirected roads.
func (g *Graph) RoadCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	n := 0
	for _, list := range g.adj {
		n += len(list)
	}

	return n / 2
}

// findRoad returns the position of the entry pointing at v, or -1.
func findRoad(list []Road, v int) int {
	return slices.IndexFunc(list, func(r Road) bool { return r.To == v })
}

// deleteRoad removes the entry pointing at v, keeping the order of the rest.
func deleteRoad(list []Road, v int) []Road {
	if i := findRoad(list, v); i >= 0 {
		return slices.Delete(list, i, i+1)
	}

	return list
}
