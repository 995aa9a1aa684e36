package metrics_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zhouning/landswap/adjacency"
	"github.com/zhouning/landswap/metrics"
	"github.com/zhouning/landswap/parcel"
)

func newStore(t *testing.T, slope []float64, types []parcel.LandType) *parcel.Store {
	t.Helper()

	ids := make([]int64, len(slope))
	for i := range ids {
		ids[i] = int64(i + 1)
	}
	s, err := parcel.NewStore(ids, slope, make([]float64, len(slope)), types)
	require.NoError(t, err)

	return s
}

// TestAverageSlope_Basic checks the mean over farmland only.
func TestAverageSlope_Basic(t *testing.T) {
	s := newStore(t,
		[]float64{10, 20, 99, 30},
		[]parcel.LandType{parcel.Farmland, parcel.Farmland, parcel.Forest, parcel.Farmland},
	)
	assert.InDelta(t, 20.0, metrics.AverageSlope(s), 1e-12)
}

// TestAverageSlope_Empty returns 0 on an empty farmland set.
func TestAverageSlope_Empty(t *testing.T) {
	s := newStore(t, []float64{5, 8}, []parcel.LandType{parcel.Forest, parcel.Other})
	assert.Equal(t, 0.0, metrics.AverageSlope(s))
}

// TestContiguity_ScenarioD pins the two boundary cases: two isolated
// farmland parcels score 0.0, two adjacent farmland parcels score 1.0.
func TestContiguity_ScenarioD(t *testing.T) {
	types := []parcel.LandType{parcel.Farmland, parcel.Farmland}
	s := newStore(t, []float64{1, 2}, types)

	isolated, err := adjacency.PairListBuilder{N: 2}.Build()
	require.NoError(t, err)
	assert.Equal(t, 0.0, metrics.Contiguity(s, isolated))

	connected, err := adjacency.PairListBuilder{N: 2, Pairs: [][2]int32{{0, 1}}}.Build()
	require.NoError(t, err)
	assert.Equal(t, 1.0, metrics.Contiguity(s, connected))
}

// TestContiguity_MixedNeighborhood exercises the per-parcel fraction and
// the zero-degree exclusion together.
func TestContiguity_MixedNeighborhood(t *testing.T) {
	// 0-1 farmland pair, 2 forest between 1 and 3, 3 farmland, 4 isolated farmland.
	types := []parcel.LandType{
		parcel.Farmland, parcel.Farmland, parcel.Forest, parcel.Farmland, parcel.Farmland,
	}
	s := newStore(t, make([]float64, 5), types)
	g, err := adjacency.PairListBuilder{
		N:     5,
		Pairs: [][2]int32{{0, 1}, {1, 2}, {2, 3}},
	}.Build()
	require.NoError(t, err)

	// Parcel 0: 1/1 farmland neighbors. Parcel 1: 1/2. Parcel 3: 0/1.
	// Parcel 4 has no neighbors and is excluded.
	want := (1.0 + 0.5 + 0.0) / 3.0
	assert.InDelta(t, want, metrics.Contiguity(s, g), 1e-12)
}
