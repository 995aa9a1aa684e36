package parcel_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zhouning/landswap/parcel"
)

//----------------------------------------------------------------------------//
// Store construction
//----------------------------------------------------------------------------//

// TestNewStore_ColumnMismatch verifies that ragged columns are rejected.
func TestNewStore_ColumnMismatch(t *testing.T) {
	ids := []int64{1, 2, 3}
	slope := []float64{5, 10} // one short
	area := []float64{1, 1, 1}
	orig := []parcel.LandType{parcel.Farmland, parcel.Forest, parcel.Other}

	_, err := parcel.NewStore(ids, slope, area, orig)
	assert.ErrorIs(t, err, parcel.ErrColumnMismatch)
}

// TestNewStore_CopiesInput ensures mutating the caller's slices after
// construction does not leak into the Store.
func TestNewStore_CopiesInput(t *testing.T) {
	ids := []int64{10, 20}
	slope := []float64{5, 15}
	area := []float64{1, 2}
	orig := []parcel.LandType{parcel.Farmland, parcel.Forest}

	s, err := parcel.NewStore(ids, slope, area, orig)
	require.NoError(t, err)

	slope[0] = 99
	orig[0] = parcel.Other
	assert.Equal(t, 5.0, s.Slope(0))
	assert.Equal(t, parcel.Farmland, s.Original(0))
	assert.Equal(t, parcel.Farmland, s.Current(0), "current initialized from original")
}

//----------------------------------------------------------------------------//
// Mutation and type closure
//----------------------------------------------------------------------------//

// TestSetCurrent_OtherIsFrozen verifies that parcels classified Other can
// never be retyped.
func TestSetCurrent_OtherIsFrozen(t *testing.T) {
	s, err := parcel.NewStore(
		[]int64{1, 2},
		[]float64{0, 0},
		[]float64{1, 1},
		[]parcel.LandType{parcel.Other, parcel.Farmland},
	)
	require.NoError(t, err)

	s.SetCurrent(0, parcel.Forest)
	assert.Equal(t, parcel.Other, s.Current(0))

	s.SetCurrent(1, parcel.Forest)
	assert.Equal(t, parcel.Forest, s.Current(1))
	assert.Equal(t, parcel.Farmland, s.Original(1), "original never changes")
}

// TestCountsAndIndices checks Count, IndicesOf, and Swappable on a mixed store.
func TestCountsAndIndices(t *testing.T) {
	orig := []parcel.LandType{
		parcel.Farmland, parcel.Other, parcel.Forest,
		parcel.Farmland, parcel.Forest, parcel.Other,
	}
	s, err := parcel.NewStore(
		[]int64{1, 2, 3, 4, 5, 6},
		make([]float64, 6),
		make([]float64, 6),
		orig,
	)
	require.NoError(t, err)

	assert.Equal(t, 2, s.Count(parcel.Farmland))
	assert.Equal(t, 2, s.Count(parcel.Forest))
	assert.Equal(t, 2, s.Count(parcel.Other))
	assert.Equal(t, []int32{0, 3}, s.IndicesOf(parcel.Farmland))
	assert.Equal(t, []int32{2, 4}, s.IndicesOf(parcel.Forest))
	assert.Equal(t, []int32{0, 2, 3, 4}, s.Swappable())

	s.SetCurrent(0, parcel.Forest)
	assert.Equal(t, 1, s.Count(parcel.Farmland))
	assert.Equal(t, []int32{0, 2, 4}, s.IndicesOf(parcel.Forest))
	assert.Equal(t, []int32{0, 2, 3, 4}, s.Swappable(), "swappable set is load-time, not current")
}

//----------------------------------------------------------------------------//
// Classification
//----------------------------------------------------------------------------//

// TestClassify_ExactMatch verifies exact, case-sensitive membership.
func TestClassify_ExactMatch(t *testing.T) {
	labels := []string{"0101", "0301", "0101K", "", "0302"}
	got, err := parcel.Classify(labels, []string{"0101"}, []string{"0301", "0302"})
	require.NoError(t, err)
	want := []parcel.LandType{
		parcel.Farmland, parcel.Forest, parcel.Other, parcel.Other, parcel.Forest,
	}
	assert.Equal(t, want, got)
}

// TestClassify_LabelOverlap rejects a label listed in both sets.
func TestClassify_LabelOverlap(t *testing.T) {
	_, err := parcel.Classify([]string{"a"}, []string{"a", "b"}, []string{"c", "a"})
	assert.ErrorIs(t, err, parcel.ErrLabelOverlap)
}
