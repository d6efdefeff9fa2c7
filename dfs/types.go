// Package dfs defines types and options for depth-first traversal of a
// core.Graph by city index: cancellation, a pre-order hook, a depth limit
// and full-graph (forest) traversal that labels connected components.
package dfs

import (
	"context"
	"errors"
)

// ErrGraphNil is returned when a nil *core.Graph is passed to DFS or Components.
var ErrGraphNil = errors.New("dfs: graph is nil")

// Option configures optional behavior of DFS traversal.
type Option func(*Options)

// Options holds configurable parameters for DFS traversal.
type Options struct {
	// Ctx allows cancellation; defaults to context.Background().
	Ctx context.Context

	// OnVisit, if non-nil, is invoked when an index is discovered (pre-order).
	// Returning an error aborts traversal with that error.
	OnVisit func(u, depth int) error

	// MaxDepth, if non-negative, limits recursion to the given depth.
	// A depth of 0 visits only the start index. Default is -1 (no limit).
	MaxDepth int

	// FullTraversal restarts from every undiscovered index in index order,
	// covering every connected component.
	FullTraversal bool
}

// DefaultOptions returns Options with a background context, no hook,
// no depth limit and single-source traversal.
func DefaultOptions() Options {
	return Options{
		Ctx:      context.Background(),
		MaxDepth: -1,
	}
}

// WithContext sets the cancellation context. A nil ctx is ignored.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithOnVisit installs fn as a pre-order hook.
func WithOnVisit(fn func(u, depth int) error) Option {
	return func(o *Options) {
		o.OnVisit = fn
	}
}

// WithMaxDepth limits traversal depth to limit.
func WithMaxDepth(limit int) Option {
	return func(o *Options) {
		o.MaxDepth = limit
	}
}

// WithFullTraversal enables forest traversal over all components.
func WithFullTraversal() Option {
	return func(o *Options) {
		o.FullTraversal = true
	}
}

// Result captures the outcome of a depth-first traversal. All slices are
// indexed by city index.
type Result struct {
	// Order records indices in the sequence they finished (post-order).
	Order []int

	// Depth is the tree depth of each discovered index, -1 if never reached.
	Depth []int

	// Parent is the index each city was discovered from; core.NoCity for
	// tree roots and unreached indices.
	Parent []int

	// Component labels each discovered index with its tree number in
	// discovery order (0, 1, ...); -1 if never reached.
	Component []int

	// Components is the number of trees grown.
	Components int
}

// Visited reports whether u was reached.
func (r *Result) Visited(u int) bool {
	return u >= 0 && u < len(r.Depth) && r.Depth[u] >= 0
}

// Members returns the indices labeled with component c, in index order.
func (r *Result) Members(c int) []int {
	var out []int
	for u, comp := range r.Component {
		if comp == c {
			out = append(out, u)
		}
	}

	return out
}
