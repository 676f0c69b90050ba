package rerooting_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/kyopro/rerooting"
)

func eqInt(a, b int) bool { return a == b }

func TestCheckLaws(t *testing.T) {
	sum := func(a, b int) int { return a + b }
	assert.NoError(t, rerooting.CheckLaws(0, sum, eqInt, -3, 0, 4, 9))

	// Subtraction is neither associative nor two-sided with 0.
	sub := func(a, b int) int { return a - b }
	assert.ErrorIs(t, rerooting.CheckLaws(0, sub, eqInt, 1, 2, 3), rerooting.ErrLawViolation)

	// Wrong identity for max over non-negative values.
	maxOp := func(a, b int) int {
		if a > b {
			return a
		}
		return b
	}
	assert.NoError(t, rerooting.CheckLaws(0, maxOp, eqInt, 0, 1, 5))
	assert.ErrorIs(t, rerooting.CheckLaws(7, maxOp, eqInt, 0, 1, 5), rerooting.ErrLawViolation)

	assert.ErrorIs(t, rerooting.CheckLaws[int](0, nil, eqInt, 1), rerooting.ErrNilOperator)
}

// TestOperatorSetsObeyLaws guards the operator sets the other tests trust.
func TestOperatorSetsObeyLaws(t *testing.T) {
	seq := seqOps()
	eqSeq := func(a, b []int) bool { return assert.ObjectsAreEqual(a, b) }
	assert.NoError(t, rerooting.CheckLaws(seq.Identity, seq.Merge, eqSeq, []int{1}, []int{2, 3}, []int{}, []int{4}))

	ds := distSumOps()
	eqCS := func(a, b cntSum) bool { return a == b }
	assert.NoError(t, rerooting.CheckLaws(ds.Identity, ds.Merge, eqCS, cntSum{1, 0}, cntSum{3, 5}, cntSum{2, 7}))

	h := hashOps()
	eqH := func(a, b rolling) bool { return a == b }
	a := h.AddRoot(h.Identity, 1)
	b := h.AddRoot(a, 2)
	c := h.AddRoot(h.Identity, 3)
	assert.NoError(t, rerooting.CheckLaws(h.Identity, h.Merge, eqH, a, b, c))
}
