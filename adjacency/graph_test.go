package adjacency_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zhouning/landswap/adjacency"
)

//----------------------------------------------------------------------------//
// PairListBuilder
//----------------------------------------------------------------------------//

// TestPairListBuilder_Canonicalizes verifies that one-sided, duplicated,
// and self-loop pairs all collapse into the same canonical graph.
func TestPairListBuilder_Canonicalizes(t *testing.T) {
	b := adjacency.PairListBuilder{
		N: 4,
		Pairs: [][2]int32{
			{0, 1},         // one-sided
			{2, 1}, {1, 2}, // both sides
			{1, 2},         // duplicate
			{3, 3},         // self-loop, dropped
		},
	}
	g, err := b.Build()
	require.NoError(t, err)

	assert.Equal(t, 4, g.Len())
	assert.Equal(t, 2, g.EdgeCount())
	assert.Equal(t, []int32{1}, g.Neighbors(0))
	assert.Equal(t, []int32{0, 2}, g.Neighbors(1))
	assert.Equal(t, []int32{1}, g.Neighbors(2))
	assert.Empty(t, g.Neighbors(3))
	assert.False(t, g.Has(3, 3), "self-loops are dropped")
}

// TestPairListBuilder_Errors covers the too-few-parcels and bad-index cases.
func TestPairListBuilder_Errors(t *testing.T) {
	_, err := adjacency.PairListBuilder{N: 1}.Build()
	assert.ErrorIs(t, err, adjacency.ErrInsufficientGeometry)

	_, err = adjacency.PairListBuilder{N: 3, Pairs: [][2]int32{{0, 3}}}.Build()
	assert.ErrorIs(t, err, adjacency.ErrIndexRange)

	_, err = adjacency.PairListBuilder{N: 3, Pairs: [][2]int32{{-1, 0}}}.Build()
	assert.ErrorIs(t, err, adjacency.ErrIndexRange)
}

//----------------------------------------------------------------------------//
// Graph invariants
//----------------------------------------------------------------------------//

// TestGraph_Symmetry checks (i,j) present ⇔ (j,i) present across a
// non-trivial pair table.
func TestGraph_Symmetry(t *testing.T) {
	g, err := adjacency.PairListBuilder{
		N:     6,
		Pairs: [][2]int32{{0, 1}, {1, 2}, {2, 3}, {3, 0}, {4, 2}, {5, 0}},
	}.Build()
	require.NoError(t, err)

	for i := 0; i < g.Len(); i++ {
		for _, j := range g.Neighbors(i) {
			assert.True(t, g.Has(int(j), i), "edge (%d,%d) present but mirror missing", i, j)
		}
	}
}

// TestGraph_HasAndDegree exercises Has on present, absent, and
// out-of-range queries.
func TestGraph_HasAndDegree(t *testing.T) {
	g, err := adjacency.PairListBuilder{
		N:     3,
		Pairs: [][2]int32{{0, 1}, {1, 2}},
	}.Build()
	require.NoError(t, err)

	assert.True(t, g.Has(0, 1))
	assert.True(t, g.Has(2, 1))
	assert.False(t, g.Has(0, 2))
	assert.False(t, g.Has(-1, 0))
	assert.False(t, g.Has(7, 0))
	assert.Equal(t, 2, g.Degree(1))
}
