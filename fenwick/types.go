package fenwick

import "errors"

// ErrIndexOutOfRange indicates a leaf index or range bound outside the tree.
var ErrIndexOutOfRange = errors.New("fenwick: index out of range")

// Number is any type with + and - that a Fenwick tree can sum.
type Number interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64
}
