// Package core provides the city store: a small, capacity-bounded,
// undirected weighted graph of uniquely named cities connected by roads.
//
// Model:
//
//   - Every city has a unique, case-sensitive name and a dense index in
//     [0, CityCount()). Indices are positions, not identities: RemoveCity
//     shifts every later city down by one and renumbers every road that
//     pointed past the removed slot, in one locked step.
//   - Roads are symmetric: AddRoad(a, b, d) stores (b,d) in a's list and
//     (a,d) in b's list. There is at most one road per pair and no self-loops.
//   - Adjacency lists are ordered, most recently added road first. Search
//     packages iterate in this order, which makes their tie-breaks
//     reproducible.
//
// Algorithms (bfs, dijkstra) work on indices for speed; callers resolve
// names at the boundary with IndexOf and render results with Name.
//
// Core Methods:
//
//	// City lifecycle
//	AddCity(name string) (int, error)          // O(1)
//	RemoveCity(name string) error              // O(V+E), renumbers indices
//	IndexOf(name string) (int, error)          // O(1)
//	Name(u int) (string, error)                // O(1)
//	Cities() []string                          // O(V), index order
//	Suggest(prefix string) []string            // O(V), case-insensitive
//
//	// Road lifecycle
//	AddRoad(a, b string, d int64) error        // O(deg)
//	AddRoadAt(u, v int, d int64) error         // O(deg), index-keyed
//	RemoveRoad(a, b string) (bool, error)      // O(deg), missing road is a no-op
//	RoadWeight(u, v int) (int64, error)        // O(deg(u))
//	Neighbors(u int) ([]Road, error)           // O(deg(u)) copy
//	Roads() []Edge                             // O(V+E), each road once
//
//	// Summaries
//	Stats() Stats                              // O(V+E)
//	AdjacencyMatrix() [][]int64                // O(V²)
//
// Errors:
//
//	ErrInvalidName      – empty name or longer than MaxNameLen bytes
//	ErrCityExists       – duplicate name
//	ErrCapacityExceeded – graph is full
//	ErrCityNotFound     – unknown name
//	ErrSelfLoop         – road from a city to itself
//	ErrDuplicateRoad    – second road between the same pair
//	ErrNegativeDistance – distance below zero
//	ErrRoadNotFound     – no road between the pair
//	ErrIndexOutOfRange  – index outside [0, CityCount())
//	ErrNoPath           – destination unreachable (returned by search packages)
//
// A Graph is safe to share between goroutines: every method takes an
// internal RWMutex. Callers cannot reach the underlying slices.
package core
