package segtree_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/kyopro/segtree"
)

// SumSuite runs point updates and range sums on a fresh tree per test.
type SumSuite struct {
	suite.Suite
	st *segtree.Tree[int]
}

func (s *SumSuite) SetupTest() {
	st, err := segtree.New([]int{5, 3, 7, 9, 6, 4, 1, 2}, 0, func(a, b int) int { return a + b })
	require.NoError(s.T(), err)
	s.st = st
}

// TestInitialSums checks sums right after construction.
func (s *SumSuite) TestInitialSums() {
	require.Equal(s.T(), 37, s.st.All())
	require.Equal(s.T(), 19, s.st.Query(1, 4))
	require.Equal(s.T(), 0, s.st.Query(3, 3), "empty range is the identity")
}

// TestUpdate: overwriting a leaf changes every range that covers it.
func (s *SumSuite) TestUpdate() {
	s.st.Update(2, 0)
	require.Equal(s.T(), 0, s.st.Get(2))
	require.Equal(s.T(), 12, s.st.Query(1, 4))
	require.Equal(s.T(), 30, s.st.All())
	require.Equal(s.T(), 13, s.st.Query(4, 8), "ranges right of the update are untouched")
}

// TestClampedQuery: the unchecked query clamps to [0, Len()).
func (s *SumSuite) TestClampedQuery() {
	require.Equal(s.T(), s.st.All(), s.st.Query(-5, 100))

	_, err := s.st.QueryE(-1, 3)
	require.ErrorIs(s.T(), err, segtree.ErrIndexOutOfRange)
}

func TestSumSuite(t *testing.T) {
	suite.Run(t, new(SumSuite))
}
