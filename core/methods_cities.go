// SPDX-License-Identifier: MIT
//
// File: methods_cities.go
// Role: City lifecycle (AddCity/RemoveCity) and name↔index resolution.
// Determinism:
//   - Cities() and Suggest() return names in index order.
// Concurrency:
//   - Mutations under mu write lock; queries under mu read lock.

package core

import (
	"fmt"
	"strings"
)

// AddCity appends a new city at the next free index and returns that index.
//
// Steps:
//  1. Validate the name (non-empty, at most MaxNameLen bytes).
//  2. Reject duplicates by exact, case-sensitive match.
//  3. Reject when the graph is at capacity.
//  4. Append the name and an empty adjacency slot.
//
// A failed call leaves the graph unchanged.
// Complexity: O(1) amortized.
func (g *Graph) AddCity(name string) (int, error) {
	if err := validateName(name); err != nil {
		return NoCity, err
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	if _, exists := g.index[name]; exists {
		return NoCity, fmt.Errorf("%w: %q", ErrCityExists, name)
	}
	if len(g.names) >= g.capacity {
		return NoCity, fmt.Errorf("%w: limit is %d", ErrCapacityExceeded, g.capacity)
	}

	return g.appendCity(name), nil
}

// appendCity registers name at the next index. Caller holds the write lock
// and has already validated the name, uniqueness and capacity.
func (g *Graph) appendCity(name string) int {
	idx := len(g.names)
	g.names = append(g.names, name)
	g.adj = append(g.adj, nil)
	g.index[name] = idx

	return idx
}

// RemoveCity deletes a city and every road touching it, then compacts the
// index space so that indices stay dense.
//
// Steps:
//  1. Resolve the name (ErrCityNotFound).
//  2. Drop the city's own adjacency and every incoming entry pointing at it.
//  3. Shift names and adjacency slots after idx one position to the left.
//  4. Decrement every adjacency target greater than idx.
//  5. Rebuild the name index for the shifted cities.
//
// All five steps run under one write lock; readers observe either the old
// graph or the fully renumbered one.
// Complexity: O(V + E).
func (g *Graph) RemoveCity(name string) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	idx, ok := g.index[name]
	if !ok {
		return fmt.Errorf("%w: %q", ErrCityNotFound, name)
	}

	// 2) Incoming entries live only in the lists of the city's neighbors.
	for _, r := range g.adj[idx] {
		g.adj[r.To] = deleteRoad(g.adj[r.To], idx)
	}
	g.adj[idx] = nil

	// 3) Compact positions.
	copy(g.names[idx:], g.names[idx+1:])
	g.names = g.names[:len(g.names)-1]
	copy(g.adj[idx:], g.adj[idx+1:])
	g.adj[len(g.adj)-1] = nil
	g.adj = g.adj[:len(g.adj)-1]

	// 4) Renumber adjacency targets that pointed past the removed slot.
	for u := range g.adj {
		for i := range g.adj[u] {
			if g.adj[u][i].To > idx {
				g.adj[u][i].To--
			}
		}
	}

	// 5) Names after idx moved down by one.
	delete(g.index, name)
	for i := idx; i < len(g.names); i++ {
		g.index[g.names[i]] = i
	}

	return nil
}

// IndexOf resolves a name to its current index.
func (g *Graph) IndexOf(name string) (int, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	idx, ok := g.index[name]
	if !ok {
		return NoCity, fmt.Errorf("%w: %q", ErrCityNotFound, name)
	}

	return idx, nil
}

// HasCity reports whether a city with this exact name exists.
func (g *Graph) HasCity(name string) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()
	_, ok := g.index[name]

	return ok
}

// Name returns the name stored at index u.
func (g *Graph) Name(u int) (string, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	if !g.inRange(u) {
		return "", fmt.Errorf("%w: %d", ErrIndexOutOfRange, u)
	}

	return g.names[u], nil
}

// Cities returns a copy of all names in index order.
func (g *Graph) Cities() []string {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := make([]string, len(g.names))
	copy(out, g.names)

	return out
}

// CityCount returns the number of cities.
func (g *Graph) CityCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.names)
}

// Capacity returns the maximum number of cities.
func (g *Graph) Capacity() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.capacity
}

// Suggest returns, in index order, every city whose name starts with prefix,
// compared case-insensitively. An empty prefix matches every city.
func (g *Graph) Suggest(prefix string) []string {
	g.mu.RLock()
	defer g.mu.RUnlock()

	prefix = strings.ToLower(prefix)
	var out []string
	for _, name := range g.names {
		if strings.HasPrefix(strings.ToLower(name), prefix) {
			out = append(out, name)
		}
	}

	return out
}

// Clear removes every city and road; capacity is preserved.
func (g *Graph) Clear() {
	g.mu.Lock()
	defer g.mu.Unlock()

	g.names = g.names[:0]
	g.adj = g.adj[:0]
	clear(g.index)
}

// validateName enforces the non-empty, bounded-length name policy.
func validateName(name string) error {
	if name == "" {
		return fmt.Errorf("%w: empty", ErrInvalidName)
	}
	if len(name) > MaxNameLen {
		return fmt.Errorf("%w: %q is longer than %d bytes", ErrInvalidName, name, MaxNameLen)
	}

	return nil
}

// inRange reports whether u is a valid index. Caller holds a lock.
func (g *Graph) inRange(u int) bool { return u >= 0 && u < len(g.names) }
