package dijkstra

import (
	"errors"
	"math"
)

// Sentinel errors returned by the Dijkstra implementation.
var (
	// ErrNilGraph indicates that a nil adjacency list was passed to Dijkstra.
	ErrNilGraph = errors.New("dijkstra: graph is nil")

	// ErrVertexNotFound indicates that the source vertex is outside [0, V).
	ErrVertexNotFound = errors.New("dijkstra: source vertex not found in graph")

	// ErrBadArc indicates an arc whose head is outside [0, V).
	ErrBadArc = errors.New("dijkstra: arc points outside the graph")

	// ErrNegativeWeight indicates that a negative arc weight was detected.
	ErrNegativeWeight = errors.New("dijkstra: negative edge weight encountered")

	// ErrBadMaxDistance indicates that MaxDistance was set to a negative value.
	ErrBadMaxDistance = errors.New("dijkstra: MaxDistance must be non-negative")

	// ErrBadInfThreshold indicates that InfEdgeThreshold was set to zero or
	// negative, which would make every arc impassable.
	ErrBadInfThreshold = errors.New("dijkstra: InfEdgeThreshold must be positive")
)

// Unreachable is the distance reported for vertices that were not reached.
const Unreachable = math.MaxInt64

// Arc is one outgoing edge in an adjacency list.
type Arc struct {
	To     int
	Weight int64
}

// Edge is an edge in an edge list, used by FromEdges.
type Edge struct {
	From, To int
	Weight   int64
}

// Options configures the behavior of the Dijkstra algorithm.
//
// Source           : starting vertex id.
// MaxDistance      : vertices whose distance would exceed this are not explored.
// InfEdgeThreshold : arcs with weight ≥ this threshold are impassable.
type Options struct {
	Source           int
	MaxDistance      int64
	InfEdgeThreshold int64
}

// Option represents a functional option for configuring Dijkstra.
type Option func(*Options)

// Source sets the starting vertex.
func Source(s int) Option {
	return func(o *Options) {
		o.Source = s
	}
}

// WithMaxDistance caps exploration at distance max.
// Panics with ErrBadMaxDistance if max < 0.
func WithMaxDistance(max int64) Option {
	return func(o *Options) {
		if max < 0 {
			panic(ErrBadMaxDistance.Error())
		}
		o.MaxDistance = max
	}
}

// WithInfEdgeThreshold treats arcs with weight ≥ threshold as walls.
// Panics with ErrBadInfThreshold if threshold ≤ 0.
func WithInfEdgeThreshold(threshold int64) Option {
	return func(o *Options) {
		if threshold <= 0 {
			panic(ErrBadInfThreshold.Error())
		}
		o.InfEdgeThreshold = threshold
	}
}

// DefaultOptions returns Options with Source 0 and no distance or weight caps.
func DefaultOptions() Options {
	return Options{
		Source:           0,
		MaxDistance:      math.MaxInt64,
		InfEdgeThreshold: math.MaxInt64,
	}
}
