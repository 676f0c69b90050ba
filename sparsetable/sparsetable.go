package sparsetable

import (
	"errors"
	"fmt"
	"math/bits"
)

var (
	// ErrNilOp indicates that no combining function was supplied.
	ErrNilOp = errors.New("sparsetable: op is nil")

	// ErrIndexOutOfRange indicates an empty range or a bound outside the table.
	ErrIndexOutOfRange = errors.New("sparsetable: index out of range")
)

// Table holds op over every power-of-two block of the input:
// levels[k][i] = op(a[i], ..., a[i + 2^k - 1]).
type Table[T any] struct {
	levels [][]T
	op     func(a, b T) T
}

// New builds a table over a copy of a.
func New[T any](a []T, op func(a, b T) T) (*Table[T], error) {
	if op == nil {
		return nil, ErrNilOp
	}
	n := len(a)
	base := make([]T, n)
	copy(base, a)
	levels := [][]T{base}
	for k := 1; 1<<k <= n; k++ {
		prev, half := levels[k-1], 1<<(k-1)
		cur := make([]T, n-(1<<k)+1)
		for i := range cur {
			cur[i] = op(prev[i], prev[i+half])
		}
		levels = append(levels, cur)
	}

	return &Table[T]{levels: levels, op: op}, nil
}

// Len returns the number of elements.
func (t *Table[T]) Len() int { return len(t.levels[0]) }

// Query returns op over [l, r). Panics unless 0 <= l < r <= Len().
func (t *Table[T]) Query(l, r int) T {
	if l < 0 || r > t.Len() || l >= r {
		panic(fmt.Sprintf("sparsetable: Query(%d, %d) with %d elements", l, r, t.Len()))
	}
	k := bits.Len(uint(r-l)) - 1
	row := t.levels[k]

	return t.op(row[l], row[r-(1<<k)])
}

// QueryE is Query returning ErrIndexOutOfRange instead of panicking.
func (t *Table[T]) QueryE(l, r int) (T, error) {
	if l < 0 || r > t.Len() || l >= r {
		var zero T
		return zero, fmt.Errorf("%w: [%d, %d) with %d elements", ErrIndexOutOfRange, l, r, t.Len())
	}

	return t.Query(l, r), nil
}
