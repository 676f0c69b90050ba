package tree

import "errors"

// Sentinel errors returned by the conversion and validation helpers.
var (
	// ErrEmpty indicates a tree with no vertices.
	ErrEmpty = errors.New("tree: no vertices")

	// ErrVertexOutOfRange indicates a vertex id outside [0, n).
	ErrVertexOutOfRange = errors.New("tree: vertex out of range")

	// ErrSelfLoop indicates an edge from a vertex to itself.
	ErrSelfLoop = errors.New("tree: self-loop")

	// ErrEdgeCount indicates that a connected graph has more than n-1
	// undirected edges. It is always reported together with ErrCycle.
	ErrEdgeCount = errors.New("tree: edge count must be n-1")

	// ErrAsymmetric indicates an adjacency list where u lists v but v does
	// not list u the same number of times.
	ErrAsymmetric = errors.New("tree: adjacency list is not symmetric")

	// ErrCycle indicates that the edges contain a cycle.
	ErrCycle = errors.New("tree: cycle detected")

	// ErrDisconnected indicates more than one connected component.
	ErrDisconnected = errors.New("tree: graph is disconnected")

	// ErrNoRoot indicates a parent array without a root marker.
	ErrNoRoot = errors.New("tree: parent array has no root")

	// ErrMultipleRoots indicates a parent array with more than one root marker.
	ErrMultipleRoots = errors.New("tree: parent array has more than one root")
)

// NoParent is the parent recorded for a traversal root.
const NoParent = -1
