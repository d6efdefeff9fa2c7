// SPDX-License-Identifier: MIT
//
// File: api.go
// Role: Read-only whole-graph summaries: Stats and AdjacencyMatrix.
// Policy:
//   - No mutation here; every function takes the read lock once and returns a snapshot.

package core

// Stats is a snapshot summary of the graph.
type Stats struct {
	// Cities is the number of cities.
	Cities int

	// Roads is the number of undirected roads (directed entries / 2).
	Roads int

	// AverageDistance is the mean distance over all directed adjacency
	// entries, so each road contributes twice. 0 when there are no roads.
	AverageDistance float64

	// MostConnected is the index with the longest adjacency list, the lowest
	// such index on ties, or NoCity for an empty graph.
	MostConnected int

	// MostConnectedName is the name at MostConnected, or "" for an empty graph.
	MostConnectedName string
}

// Stats computes the graph summary in one pass over the adjacency lists.
//
// The average is taken over directed entries, so each road is counted once
// per direction.
//
// Complexity: O(V + E).
func (g *Graph) Stats() Stats {
	g.mu.RLock()
	defer g.mu.RUnlock()

	s := Stats{Cities: len(g.names), MostConnected: NoCity}

	entries := 0
	var sum int64
	maxDegree := -1
	for u, list := range g.adj {
		for _, r := range list {
			sum += r.Distance
		}
		entries += len(list)
		if len(list) > maxDegree { // strict: first maximum wins
			maxDegree = len(list)
			s.MostConnected = u
		}
	}

	s.Roads = entries / 2
	if entries > 0 {
		s.AverageDistance = float64(sum) / float64(entries)
	}
	if s.MostConnected != NoCity {
		s.MostConnectedName = g.names[s.MostConnected]
	}

	return s
}

// AdjacencyMatrix returns a V×V matrix where cell [i][j] holds the distance
// of road i–j and 0 means "no direct road".
//
// Complexity: O(V² + E) time and space.
func (g *Graph) AdjacencyMatrix() [][]int64 {
	g.mu.RLock()
	defer g.mu.RUnlock()

	n := len(g.names)
	m := make([][]int64, n)
	for i := range m {
		m[i] = make([]int64, n)
		for _, r := range g.adj[i] {
			m[i][r.To] = r.Distance
		}
	}

	return m
}
