// SPDX-License-Identifier: MIT
//
// File: types.go
// Role: Method, Leg, Route and sentinel errors of the route package.

package route

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for route construction.
var (
	// ErrUnknownMethod indicates a Method outside {BFS, Dijkstra} or an unparsable method name.
	ErrUnknownMethod = errors.New("route: unknown search method")

	// ErrBrokenChain indicates a predecessor slice that loops or points outside the graph.
	ErrBrokenChain = errors.New("route: broken predecessor chain")
)

// Method selects the path engine used to compute a Route.
type Method int

const (
	// BFS finds the route with the fewest roads.
	BFS Method = iota

	// Dijkstra finds the route with the least total distance.
	Dijkstra
)

// String returns the human-readable label written into route reports.
func (m Method) String() string {
	switch m {
	case BFS:
		return "BFS (Least Hops)"
	case Dijkstra:
		return "Dijkstra (Weighted)"
	default:
		return fmt.Sprintf("Method(%d)", int(m))
	}
}

// ParseMethod maps "bfs" or "dijkstra" (any case) to a Method.
func ParseMethod(s string) (Method, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "bfs":
		return BFS, nil
	case "dijkstra":
		return Dijkstra, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownMethod, s)
	}
}

// Leg is one road travelled along a Route.
type Leg struct {
	From     string
	To       string
	Distance int64
}

// Route is a rendering-ready path between two cities.
//
// Indices and Stops are parallel: Stops[i] is the name at Indices[i].
// Legs has one element per consecutive pair of stops.
type Route struct {
	Method  Method
	Indices []int
	Stops   []string
	Legs    []Leg
}

// TotalDistance sums the distances of all legs.
func (r *Route) TotalDistance() int64 {
	var total int64
	for _, l := range r.Legs {
		total += l.Distance
	}

	return total
}

// LegCount is the number of roads travelled (len(Stops) - 1, or 0).
func (r *Route) LegCount() int {
	return len(r.Legs)
}

// AverageLeg is TotalDistance / LegCount, 0 for a single-stop route.
func (r *Route) AverageLeg() float64 {
	if len(r.Legs) == 0 {
		return 0
	}

	return float64(r.TotalDistance()) / float64(len(r.Legs))
}

// String joins the stops with " -> ".
func (r *Route) String() string {
	return strings.Join(r.Stops, " -> ")
}
