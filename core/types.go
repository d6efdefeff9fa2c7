// SPDX-License-Identifier: MIT
//
// File: types.go
// Role: Road, Edge, Graph, GraphOption, sentinel errors and the NewGraph constructor.
// Invariants:
//   - names and adj always have the same length (one slot per city index).
//   - adj is symmetric: (v,d) in adj[u] iff (u,d) in adj[v].
//   - Every adjacency target is in [0, len(names)).

package core

import (
	"errors"
	"sync"
)

// Sentinel errors for core graph operations.
var (
	// ErrInvalidName indicates an empty city name or one longer than MaxNameLen bytes.
	ErrInvalidName = errors.New("core: invalid city name")

	// ErrCityExists indicates an insertion of a name that is already present.
	ErrCityExists = errors.New("core: city already exists")

	// ErrCapacityExceeded indicates an insertion into a full graph.
	ErrCapacityExceeded = errors.New("core: city capacity exceeded")

	// ErrCityNotFound indicates an operation referenced a non-existent city name.
	ErrCityNotFound = errors.New("core: city not found")

	// ErrSelfLoop indicates a road from a city to itself.
	ErrSelfLoop = errors.New("core: road from a city to itself")

	// ErrDuplicateRoad indicates a second road between the same pair of cities.
	ErrDuplicateRoad = errors.New("core: road already exists")

	// ErrNegativeDistance indicates a road with a distance below zero.
	ErrNegativeDistance = errors.New("core: negative road distance")

	// ErrRoadNotFound indicates that no road connects the requested pair.
	ErrRoadNotFound = errors.New("core: road not found")

	// ErrIndexOutOfRange indicates a city index outside [0, CityCount()).
	ErrIndexOutOfRange = errors.New("core: city index out of range")

	// ErrNoPath indicates that the destination is unreachable from the source.
	ErrNoPath = errors.New("core: no path between cities")
)

const (
	// DefaultCapacity is the number of cities a Graph holds unless WithCapacity says otherwise.
	DefaultCapacity = 100

	// MaxNameLen is the longest accepted city name, in bytes.
	MaxNameLen = 29

	// NoCity marks "no index": the predecessor of a search source, or the
	// most connected city of an empty graph.
	NoCity = -1
)

// Road is one adjacency entry: the neighbor index and the road distance.
type Road struct {
	// To is the index of the neighboring city.
	To int

	// Distance is the road length; never negative.
	Distance int64
}

// Edge is an undirected road reported once, with From < To.
type Edge struct {
	From     int
	To       int
	Distance int64
}

// GraphOption configures a Graph before creation.
type GraphOption func(g *Graph)

// WithCapacity sets the maximum number of cities. Values below 1 are ignored.
func WithCapacity(n int) GraphOption {
	return func(g *Graph) {
		if n > 0 {
			g.capacity = n
		}
	}
}

// Graph is the city store: a dense, index-addressed set of named cities and
// a symmetric weighted adjacency relation between them.
//
// Indices are positions, not identities: RemoveCity shifts every later city
// down by one and renumbers all adjacency targets in the same locked step.
// The zero value is not usable; construct with NewGraph.
type Graph struct {
	mu sync.RWMutex // guards every field below

	capacity int

	names []string       // index → name
	index map[string]int // name → index
	adj   [][]Road       // index → neighbors, most recently added road first
}

// NewGraph creates an empty Graph with DefaultCapacity unless overridden.
// Complexity: O(1)
func NewGraph(opts ...GraphOption) *Graph {
	g := &Graph{capacity: DefaultCapacity}
	for _, opt := range opts {
		opt(g)
	}
	g.names = make([]string, 0, g.capacity)
	g.index = make(map[string]int, g.capacity)
	g.adj = make([][]Road, 0, g.capacity)

	return g
}
