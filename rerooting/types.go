package rerooting

import "errors"

// Sentinel errors for engine construction and operator checks.
var (
	// ErrNilOperator indicates that Merge or AddRoot was not supplied.
	ErrNilOperator = errors.New("rerooting: merge and addRoot must be non-nil")

	// ErrBadRoot indicates a start vertex outside [0, N).
	ErrBadRoot = errors.New("rerooting: root vertex out of range")

	// ErrMalformedTree indicates that the adjacency list does not describe
	// a tree. The specific tree.Err* cause is wrapped as well.
	ErrMalformedTree = errors.New("rerooting: adjacency list is not a tree")

	// ErrLawViolation indicates that Merge is not associative or that the
	// identity is not a two-sided identity on the sampled values.
	ErrLawViolation = errors.New("rerooting: monoid law violated")
)

// Merge combines two aggregates. It must be associative with a two-sided
// identity; a is the contribution of the earlier neighbors.
type Merge[T any] func(a, b T) T

// AddRoot folds vertex v's own contribution into acc, the merged value of
// v's neighbors, producing what v passes across the edge to its parent
// (or, at the root, the answer for v).
type AddRoot[T any] func(acc T, v int) T

// PutEdge lifts val, the value stored in slot adj[from][slot], across the
// directed edge from→adj[from][slot] before it is merged into from's
// aggregate. Typical uses add an edge weight or length.
type PutEdge[T any] func(val T, from, slot int) T

// Operators bundles the algebra the engine runs on.
type Operators[T any] struct {
	// Identity is the two-sided identity of Merge.
	Identity T

	// Merge is the associative combination of neighbor contributions.
	Merge Merge[T]

	// AddRoot incorporates a vertex into its merged neighbor value.
	AddRoot AddRoot[T]

	// PutEdge, if non-nil, lifts every slot value before it is merged.
	PutEdge PutEdge[T]
}

// Options configures engine construction.
type Options struct {
	// Root is the start vertex of the downward pass. Answers do not depend
	// on it; it only changes which slots the reroot pass corrects.
	Root int

	// Validate runs tree.Validate on the adjacency list before any operator
	// is called. Defaults to true.
	Validate bool
}

// Option configures Options.
type Option func(*Options)

// DefaultOptions returns Options with Root 0 and validation on.
func DefaultOptions() Options {
	return Options{
		Root:     0,
		Validate: true,
	}
}

// WithRoot starts the downward pass at vertex r instead of 0.
func WithRoot(r int) Option {
	return func(o *Options) {
		o.Root = r
	}
}

// WithoutValidation skips the O(N α(N)) tree check. Out-of-range ids then
// panic and asymmetric adjacency gives unspecified answers; cycles and
// unreachable vertices are still reported as ErrMalformedTree because the
// passes count the vertices they visit.
func WithoutValidation() Option {
	return func(o *Options) {
		o.Validate = false
	}
}
