// Package dijkstra defines core types and configuration options
// for Dijkstra's shortest-path algorithm on a core.Graph.
//
// Errors (sentinel):
//
//	– ErrNilGraph             if the provided graph pointer is nil.
//	– core.ErrIndexOutOfRange if the source or destination index is invalid.
//	– core.ErrNoPath          from Result.PathTo when the destination is unreachable.
package dijkstra

import (
	"errors"
	"fmt"
	"math"
	"slices"

	"github.com/katalvlaran/citymap/core"
)

// ErrNilGraph indicates that a nil *core.Graph was passed to ShortestPath.
var ErrNilGraph = errors.New("dijkstra: graph is nil")

// Infinity is the tentative distance of a city not reached yet.
// It is larger than any representable path sum.
const Infinity int64 = math.MaxInt64

// Options configures observation hooks for a Dijkstra run.
//
// OnSettle – called each time a city index is settled, with its final distance.
type Options struct {
	OnSettle func(u int, dist int64)
}

// Option represents a functional option for configuring Dijkstra.
type Option func(*Options)

// WithOnSettle registers a callback invoked when an index is settled.
func WithOnSettle(fn func(u int, dist int64)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnSettle = fn
		}
	}
}

// DefaultOptions returns Options with a no-op OnSettle hook.
func DefaultOptions() Options {
	return Options{OnSettle: func(int, int64) {}}
}

// Result holds the outcome of one Dijkstra run from Source towards Target.
//
// Dist[v]   – final or tentative distance from Source; Infinity if never reached.
// Parent[v] – predecessor on the best known path; core.NoCity for Source and unreached v.
// Settled   – indices in the order they were settled.
type Result struct {
	Source  int
	Target  int
	Dist    []int64
	Parent  []int
	Settled []int
}

// Reached reports whether Target has a finite distance.
func (r *Result) Reached() bool {
	return r.Target >= 0 && r.Target < len(r.Dist) && r.Dist[r.Target] != Infinity
}

// Distance returns the shortest distance to Target, or core.ErrNoPath.
func (r *Result) Distance() (int64, error) {
	if !r.Reached() {
		return 0, fmt.Errorf("dijkstra: %d → %d: %w", r.Source, r.Target, core.ErrNoPath)
	}

	return r.Dist[r.Target], nil
}

// PathTo reconstructs the path Source → Target by walking Parent backwards
// and reversing. Returns core.ErrNoPath if Target stayed at Infinity.
func (r *Result) PathTo() ([]int, error) {
	if !r.Reached() {
		return nil, fmt.Errorf("dijkstra: %d → %d: %w", r.Source, r.Target, core.ErrNoPath)
	}
	path := []int{}
	for v := r.Target; v != core.NoCity; v = r.Parent[v] {
		path = append(path, v)
	}
	slices.Reverse(path)

	return path, nil
}
