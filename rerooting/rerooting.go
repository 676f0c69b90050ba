package rerooting

import (
	"fmt"

	"github.com/katalvlaran/kyopro/tree"
)

// Engine holds the result of one all-roots tree DP.
type Engine[T any] struct {
	adj [][]int
	ops Operators[T]

	// dp[v][i] is the value flowing into v from neighbor adj[v][i], with the
	// tree oriented away from v. After construction every slot holds its
	// fully rerooted value.
	dp [][]T

	// ans[v] is AddRoot(merge of all of v's slots, v).
	ans []T
}

// New computes, for every vertex of the tree adj, the value AddRoot would
// produce at the root if the tree were rooted there.
//
// adj[v] lists v's neighbors; each undirected edge must appear in both
// endpoint lists. identity must be a two-sided identity of merge.
//
// Preconditions and validation (in order):
//  1. merge and addRoot are non-nil (ErrNilOperator).
//  2. adj is a tree (ErrMalformedTree wrapping the tree.Err* cause),
//     unless WithoutValidation is given.
//  3. The start vertex is in range (ErrBadRoot).
//
// Complexity: O(N) operator calls, O(N) memory.
func New[T any](adj [][]int, identity T, merge Merge[T], addRoot AddRoot[T], opts ...Option) (*Engine[T], error) {
	return Build(adj, Operators[T]{
		Identity: identity,
		Merge:    merge,
		AddRoot:  addRoot,
	}, opts...)
}

// Build is New with the full operator set, including PutEdge.
func Build[T any](adj [][]int, ops Operators[T], opts ...Option) (*Engine[T], error) {
	// 1) Apply options.
	cfg := DefaultOptions()
	var opt Option
	for _, opt = range opts {
		opt(&cfg)
	}

	// 2) Operators.
	if ops.Merge == nil || ops.AddRoot == nil {
		return nil, ErrNilOperator
	}

	// 3) Structure.
	if cfg.Validate {
		if err := tree.Validate(adj); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrMalformedTree, err)
		}
	}
	n := len(adj)
	if cfg.Root < 0 || cfg.Root >= n {
		return nil, fmt.Errorf("%w: %d with %d vertices", ErrBadRoot, cfg.Root, n)
	}

	// 4) Slot table and answers, every entry at the identity.
	e := &Engine[T]{
		adj: adj,
		ops: ops,
		dp:  make([][]T, n),
		ans: make([]T, n),
	}
	for v := range adj {
		row := make([]T, len(adj[v]))
		for i := range row {
			row[i] = ops.Identity
		}
		e.dp[v] = row
		e.ans[v] = ops.Identity
	}

	// 5) Two passes.
	rootVal, err := e.down(cfg.Root)
	if err != nil {
		return nil, err
	}
	e.ans[cfg.Root] = rootVal
	e.reroot(cfg.Root)

	return e, nil
}

// Len returns the number of vertices.
func (e *Engine[T]) Len() int { return len(e.ans) }

// Answers returns a copy of every vertex's answer, indexed by vertex id.
func (e *Engine[T]) Answers() []T {
	out := make([]T, len(e.ans))
	copy(out, e.ans)

	return out
}

// Answer returns the answer for vertex v. Panics if v is out of range.
func (e *Engine[T]) Answer(v int) T { return e.ans[v] }

// Incoming returns the rerooted value flowing into v from neighbor
// adj[v][slot]: the aggregate of the component containing that neighbor
// once the edge is cut, as seen from v.
func (e *Engine[T]) Incoming(v, slot int) T { return e.dp[v][slot] }

// lift returns slot i of v as it enters v's merge.
func (e *Engine[T]) lift(v, i int) T {
	if e.ops.PutEdge == nil {
		return e.dp[v][i]
	}

	return e.ops.PutEdge(e.dp[v][i], v, i)
}
