// Package bfs provides tunable options and error definitions
// for breadth-first search over a core.Graph.
package bfs

import (
	"errors"
	"fmt"
	"slices"

	"github.com/katalvlaran/citymap/core"
)

// ErrGraphNil is returned if a nil graph pointer is passed.
var ErrGraphNil = errors.New("bfs: graph is nil")

// Option configures BFS behavior via functional arguments.
type Option func(*Options)

// Options holds callbacks to observe a BFS run.
type Options struct {
	// OnEnqueue is called when a city index is discovered, with its hop depth.
	OnEnqueue func(u int, depth int)

	// OnVisit is called when a city index is dequeued. If it returns an
	// error, BFS aborts and propagates that error.
	OnVisit func(u int, depth int) error
}

// DefaultOptions returns Options with no-op hooks.
func DefaultOptions() Options {
	return Options{
		OnEnqueue: func(int, int) {},
		OnVisit:   func(int, int) error { return nil },
	}
}

// WithOnEnqueue registers a callback to run on discovery.
func WithOnEnqueue(fn func(u int, depth int)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnEnqueue = fn
		}
	}
}

// WithOnVisit registers a callback to run on dequeue; returning an error
// from this callback stops the BFS.
func WithOnVisit(fn func(u int, depth int) error) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnVisit = fn
		}
	}
}

// Result holds the outcome of a BFS run from Source towards Target:
//   - Order: indices in dequeue sequence.
//   - Depth: hop count per index, -1 for indices never discovered.
//   - Parent: predecessor per index in the BFS tree, core.NoCity for the
//     source and for undiscovered indices.
type Result struct {
	Source int
	Target int
	Order  []int
	Depth  []int
	Parent []int
}

// Reached reports whether Target was discovered.
func (r *Result) Reached() bool {
	return r.Target >= 0 && r.Target < len(r.Depth) && r.Depth[r.Target] >= 0
}

// PathTo reconstructs the path Source → Target.
// Returns core.ErrNoPath if Target was not reached.
func (r *Result) PathTo() ([]int, error) {
	if !r.Reached() {
		return nil, fmt.Errorf("bfs: %d → %d: %w", r.Source, r.Target, core.ErrNoPath)
	}
	// build reversed path
	path := []int{}
	for cur := r.Target; cur != core.NoCity; cur = r.Parent[cur] {
		path = append(path, cur)
	}
	// reverse to get source → target
	slices.Reverse(path)

	return path, nil
}

// Hops returns the number of roads on the path, or -1 if Target was not reached.
func (r *Result) Hops() int {
	if !r.Reached() {
		return -1
	}

	return r.Depth[r.Target]
}
