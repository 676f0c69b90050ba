package segtree

import "errors"

var (
	// ErrNilOp indicates that no combining function was supplied.
	ErrNilOp = errors.New("segtree: op is nil")

	// ErrIndexOutOfRange indicates a leaf index or range bound outside the tree.
	ErrIndexOutOfRange = errors.New("segtree: index out of range")
)

// Op combines two aggregates; the first argument covers the left range.
type Op[T any] func(left, right T) T
