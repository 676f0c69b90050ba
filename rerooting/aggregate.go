package rerooting

import (
	"fmt"

	"github.com/katalvlaran/kyopro/tree"
)

// Aggregate runs only the downward pass with the tree rooted at root and
// returns AddRoot at the root. It is the single-root special case of Build
// and costs O(N) operator calls per call; use Build when more than one root
// is needed.
func Aggregate[T any](adj [][]int, root int, ops Operators[T]) (T, error) {
	var zero T
	if ops.Merge == nil || ops.AddRoot == nil {
		return zero, ErrNilOperator
	}
	if err := tree.Validate(adj); err != nil {
		return zero, fmt.Errorf("%w: %w", ErrMalformedTree, err)
	}
	if root < 0 || root >= len(adj) {
		return zero, fmt.Errorf("%w: %d with %d vertices", ErrBadRoot, root, len(adj))
	}
	e := &Engine[T]{adj: adj, ops: ops, dp: make([][]T, len(adj))}
	for v := range adj {
		e.dp[v] = make([]T, len(adj[v]))
	}

	return e.down(root)
}
