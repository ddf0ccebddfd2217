package dfs

import (
	"context"
	"errors"

	"github.com/katalvlaran/stickloop/geom"
)

var (
	// ErrGraphNil is returned when a nil *core.Graph is passed to FindCycle.
	ErrGraphNil = errors.New("dfs: graph is nil")

	// ErrStartVertexNotFound indicates that the vertex given to WithStart
	// does not exist in the graph.
	ErrStartVertexNotFound = errors.New("dfs: start vertex not found")
)

// Option configures optional behavior of FindCycle.
type Option func(*Options)

// Options holds the configurable parameters of a cycle search.
type Options struct {
	// Ctx allows cancellation or timeouts; defaults to context.Background().
	Ctx context.Context

	// OnVisit, if non-nil, is invoked when a vertex is pushed on the path.
	// Returning an error aborts the search with that error.
	OnVisit func(k geom.Key) error

	// OnExit, if non-nil, is invoked when an exhausted vertex is popped.
	// Returning an error aborts the search with that error.
	OnExit func(k geom.Key) error

	// Start restricts the search to a single start vertex when HasStart is set.
	Start    geom.Key
	HasStart bool
}

// DefaultOptions returns Options with a background context, no hooks and
// every vertex tried as the start.
func DefaultOptions() Options {
	return Options{Ctx: context.Background()}
}

// WithContext sets the context used for cancellation.
// Passing a nil context has no effect.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithOnVisit installs fn as a pre-order hook.
func WithOnVisit(fn func(k geom.Key) error) Option {
	return func(o *Options) {
		o.OnVisit = fn
	}
}

// WithOnExit installs fn as a hook called when a vertex is backtracked over.
// It is not called for the vertices of a returned cycle.
func WithOnExit(fn func(k geom.Key) error) Option {
	return func(o *Options) {
		o.OnExit = fn
	}
}

// WithStart restricts the search to paths starting at k.
func WithStart(k geom.Key) Option {
	return func(o *Options) {
		o.Start = k
		o.HasStart = true
	}
}
