package rerooting

import (
	"fmt"

	"github.com/katalvlaran/kyopro/tree"
)

// downFrame is one vertex of the downward pass.
type downFrame[T any] struct {
	v, parent int
	next      int // next adjacency position to examine
	pending   int // slot awaiting the child's result, or -1
	merged    T   // merge of the finished children, in adjacency order
}

// down runs the downward aggregator from root and returns the root's value.
// For every non-root vertex c with parent p it fills dp[p][i] (adj[p][i] == c)
// with AddRoot(merge of c's children's slots, c).
//
// Equivalent recursive form:
//
//	func f(v, p) T {
//	    m := identity
//	    for i, c := range adj[v] { if c != p { dp[v][i] = f(c, v); m = merge(m, lift(v, i)) } }
//	    return addRoot(m, v)
//	}
func (e *Engine[T]) down(root int) (T, error) {
	n := len(e.adj)
	stack := make([]downFrame[T], 0, 64)
	stack = append(stack, downFrame[T]{v: root, parent: tree.NoParent, pending: -1, merged: e.ops.Identity})
	visited := 1

	var ret T // value of the frame that finished last
	for len(stack) > 0 {
		top := len(stack) - 1
		f := &stack[top]

		// A child just finished: store it and fold it in.
		if f.pending >= 0 {
			e.dp[f.v][f.pending] = ret
			f.merged = e.ops.Merge(f.merged, e.lift(f.v, f.pending))
			f.pending = -1
		}

		// Descend into the next child, if any.
		nbs := e.adj[f.v]
		descended := false
		for f.next < len(nbs) {
			i := f.next
			c := nbs[i]
			f.next++
			if c == f.parent {
				continue
			}
			visited++
			if visited > n {
				var zero T
				return zero, fmt.Errorf("%w: vertex %d reached twice", ErrMalformedTree, c)
			}
			f.pending = i
			// f is invalid after append may reallocate.
			stack = append(stack, downFrame[T]{v: c, parent: f.v, pending: -1, merged: e.ops.Identity})
			descended = true
			break
		}
		if descended {
			continue
		}

		ret = e.ops.AddRoot(f.merged, f.v)
		stack = stack[:top]
	}

	if visited != n {
		var zero T
		return zero, fmt.Errorf("%w: reached %d of %d vertices", ErrMalformedTree, visited, n)
	}

	return ret, nil
}

// upFrame is one vertex of the reroot pass: v, its parent in the current
// rooting and the value flowing into v across the edge to that parent.
type upFrame[T any] struct {
	v, parent int
	incoming  T
}

// reroot runs the reroot propagator from root (which has no parent).
//
// For each vertex v with parent p and incoming value x:
//  1. dp[v][j] = x where adj[v][j] == p (the downward pass left it stale).
//  2. left[i]  = lift(0) ⊕ … ⊕ lift(i-1);  right[i] = lift(i) ⊕ … ⊕ lift(d-1).
//  3. ans[v]   = AddRoot(left[d], v).
//  4. Child adj[v][i] receives AddRoot(left[i] ⊕ right[i+1], v).
//
// All of a vertex's outgoing values are computed before any child is
// processed, so pending children are pushed (in reverse, to keep
// adjacency visiting order) and no per-frame scratch outlives its vertex.
func (e *Engine[T]) reroot(root int) {
	maxDeg := 0
	for _, nbs := range e.adj {
		if len(nbs) > maxDeg {
			maxDeg = len(nbs)
		}
	}
	left := make([]T, maxDeg+1)
	right := make([]T, maxDeg+1)

	merge, addRoot, id := e.ops.Merge, e.ops.AddRoot, e.ops.Identity
	stack := make([]upFrame[T], 0, 64)
	stack = append(stack, upFrame[T]{v: root, parent: tree.NoParent, incoming: id})

	for len(stack) > 0 {
		f := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		v, nbs := f.v, e.adj[f.v]
		d := len(nbs)

		// 1) and prefix merges.
		left[0] = id
		for i := 1; i <= d; i++ {
			if nbs[i-1] == f.parent {
				e.dp[v][i-1] = f.incoming
			}
			left[i] = merge(left[i-1], e.lift(v, i-1))
		}

		// 2) Suffix merges; the slot stays on the left to keep order.
		right[d] = id
		for i := d - 1; i >= 0; i-- {
			right[i] = merge(e.lift(v, i), right[i+1])
		}

		// 3) Answer.
		e.ans[v] = addRoot(left[d], v)

		// 4) Children, pushed in reverse.
		for i := d - 1; i >= 0; i-- {
			c := nbs[i]
			if c == f.parent {
				continue
			}
			stack = append(stack, upFrame[T]{
				v:        c,
				parent:   v,
				incoming: addRoot(merge(left[i], right[i+1]), v),
			})
		}
	}
}
