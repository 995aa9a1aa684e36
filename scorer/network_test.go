package scorer_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zhouning/landswap/scorer"
)

// tinyCheckpoint is a hand-sized network (k_parcel=2, k_global=1,
// hidden [2], output 1) whose forward pass is verified against
// hand-computed values below.
func tinyCheckpoint() scorer.Checkpoint {
	return scorer.Checkpoint{
		KParcel: 2,
		KGlobal: 1,
		Weights: [][][]float32{
			{{1, 0, 0.5}, {-1, 2, 0}},
			{{1, -1}},
		},
		Biases: [][]float32{
			{0, 0.5},
			{0.25},
		},
	}
}

//----------------------------------------------------------------------------//
// Construction / validation
//----------------------------------------------------------------------------//

// TestNew_ShapeValidation walks the ErrModelLoad cases.
func TestNew_ShapeValidation(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*scorer.Checkpoint)
	}{
		{"NoLayers", func(cp *scorer.Checkpoint) { cp.Weights, cp.Biases = nil, nil }},
		{"BadDeclaredWidth", func(cp *scorer.Checkpoint) { cp.KParcel = 4 }},
		{"RaggedRow", func(cp *scorer.Checkpoint) { cp.Weights[0][1] = []float32{1} }},
		{"BiasCountMismatch", func(cp *scorer.Checkpoint) { cp.Biases[0] = []float32{0} }},
		{"MultiOutput", func(cp *scorer.Checkpoint) {
			cp.Weights[1] = [][]float32{{1, 0}, {0, 1}}
			cp.Biases[1] = []float32{0, 0}
		}},
		{"ZeroGlobalWidth", func(cp *scorer.Checkpoint) { cp.KGlobal = 0 }},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cp := tinyCheckpoint()
			tc.mutate(&cp)
			_, err := scorer.New(cp)
			assert.ErrorIs(t, err, scorer.ErrModelLoad)
		})
	}
}

//----------------------------------------------------------------------------//
// Forward pass
//----------------------------------------------------------------------------//

// TestEvaluate_GoldenValues pins the forward pass to hand-computed
// reference values within the 1e-5 numeric contract.
func TestEvaluate_GoldenValues(t *testing.T) {
	net, err := scorer.New(tinyCheckpoint())
	require.NoError(t, err)

	features := [][]float32{{0.5, 1.0}, {0, 0}}
	global := []float32{2.0}
	scores, err := net.Evaluate(features, global, []bool{true, true})
	require.NoError(t, err)
	require.Len(t, scores, 2)

	// Candidate 0: tanh(0.5+0.5*2) - tanh(-0.5+2+0.5) + 0.25
	want0 := math.Tanh(1.5) - math.Tanh(2.0) + 0.25
	// Candidate 1: tanh(0.5*2) - tanh(0.5) + 0.25
	want1 := math.Tanh(1.0) - math.Tanh(0.5) + 0.25
	assert.InDelta(t, want0, float64(scores[0]), 1e-5)
	assert.InDelta(t, want1, float64(scores[1]), 1e-5)
}

// TestEvaluate_Deterministic requires bitwise-identical scores across
// repeated evaluations.
func TestEvaluate_Deterministic(t *testing.T) {
	net, err := scorer.New(tinyCheckpoint())
	require.NoError(t, err)

	features := [][]float32{{0.1, 0.9}, {0.4, 0.3}, {0.7, 0.2}}
	global := []float32{0.6}
	mask := []bool{true, true, true}

	first, err := net.Evaluate(features, global, mask)
	require.NoError(t, err)
	second, err := net.Evaluate(features, global, mask)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

// TestEvaluate_Masking forces masked-out entries to -Inf.
func TestEvaluate_Masking(t *testing.T) {
	net, err := scorer.New(tinyCheckpoint())
	require.NoError(t, err)

	scores, err := net.Evaluate(
		[][]float32{{1, 1}, {1, 1}},
		[]float32{0},
		[]bool{false, true},
	)
	require.NoError(t, err)
	assert.True(t, math.IsInf(float64(scores[0]), -1))
	assert.False(t, math.IsInf(float64(scores[1]), -1))
}

// TestEvaluate_ShapeErrors covers the ErrInputShape taxonomy.
func TestEvaluate_ShapeErrors(t *testing.T) {
	net, err := scorer.New(tinyCheckpoint())
	require.NoError(t, err)

	_, err = net.Evaluate(nil, []float32{0}, nil)
	assert.ErrorIs(t, err, scorer.ErrInputShape, "empty batch")

	_, err = net.Evaluate([][]float32{{1, 2, 3}}, []float32{0}, []bool{true})
	assert.ErrorIs(t, err, scorer.ErrInputShape, "feature width")

	_, err = net.Evaluate([][]float32{{1, 2}}, []float32{0, 0}, []bool{true})
	assert.ErrorIs(t, err, scorer.ErrInputShape, "global width")

	_, err = net.Evaluate([][]float32{{1, 2}}, []float32{0}, []bool{true, false})
	assert.ErrorIs(t, err, scorer.ErrInputShape, "mask length")
}

//----------------------------------------------------------------------------//
// Selection
//----------------------------------------------------------------------------//

// TestSelectAction_ArgmaxAndTieBreak verifies masked argmax and the
// lowest-index tie-break.
func TestSelectAction_ArgmaxAndTieBreak(t *testing.T) {
	// Zero weights make every unmasked score equal (the shared bias),
	// exposing the tie-break.
	flat := scorer.Checkpoint{
		KParcel: 1,
		KGlobal: 1,
		Weights: [][][]float32{{{0, 0}}},
		Biases:  [][]float32{{0.5}},
	}
	net, err := scorer.New(flat)
	require.NoError(t, err)

	features := [][]float32{{1}, {2}, {3}}
	global := []float32{0}

	got, err := net.SelectAction(features, global, []bool{true, true, true})
	require.NoError(t, err)
	assert.Equal(t, 0, got, "all-equal scores pick the lowest index")

	got, err = net.SelectAction(features, global, []bool{false, true, true})
	require.NoError(t, err)
	assert.Equal(t, 1, got, "masked-out lowest index is skipped")
}

// TestSelectAction_PrefersHigherScore checks plain argmax behavior.
func TestSelectAction_PrefersHigherScore(t *testing.T) {
	// Identity-ish single layer: score = feature value.
	ident := scorer.Checkpoint{
		KParcel: 1,
		KGlobal: 1,
		Weights: [][][]float32{{{1, 0}}},
		Biases:  [][]float32{{0}},
	}
	net, err := scorer.New(ident)
	require.NoError(t, err)

	got, err := net.SelectAction(
		[][]float32{{0.2}, {0.9}, {0.4}},
		[]float32{0},
		[]bool{true, true, true},
	)
	require.NoError(t, err)
	assert.Equal(t, 1, got)
}
