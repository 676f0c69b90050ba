package dfs

import (
	"context"
	"errors"
	"fmt"
)

// Visitation states of a vertex during a depth-first search.
const (
	White = iota // not visited yet
	Gray         // on the current DFS path
	Black        // fully explored
)

var (
	// ErrGraphNil is returned when a nil adjacency list is passed in.
	ErrGraphNil = errors.New("dfs: graph is nil")

	// ErrVertexOutOfRange indicates an arc whose head is outside [0, V).
	ErrVertexOutOfRange = errors.New("dfs: arc points outside the graph")

	// ErrCycleDetected indicates that TopologicalSort met a directed cycle.
	ErrCycleDetected = errors.New("dfs: cycle detected")
)

// Options holds settings shared by the traversals in this package.
type Options struct {
	// Ctx allows cancellation; defaults to context.Background().
	Ctx context.Context
}

// Option configures a traversal.
type Option func(*Options)

// WithContext sets the cancellation context. A nil ctx has no effect.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// DefaultOptions returns Options with a background context.
func DefaultOptions() Options {
	return Options{Ctx: context.Background()}
}

func buildOptions(opts []Option) Options {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// checkGraph rejects a nil graph and dangling arcs.
func checkGraph(graph [][]int) error {
	if graph == nil {
		return ErrGraphNil
	}
	n := len(graph)
	for u, nbs := range graph {
		for _, v := range nbs {
			if v < 0 || v >= n {
				return fmt.Errorf("%w: %d→%d with %d vertices", ErrVertexOutOfRange, u, v, n)
			}
		}
	}

	return nil
}

// cancelEvery is how many vertices a traversal processes between
// context checks.
const cancelEvery = 1024

func canceled(ctx context.Context, step int) error {
	if step%cancelEvery != 0 {
		return nil
	}

	return ctx.Err()
}
