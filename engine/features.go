package engine

import (
	"math"

	"github.com/zhouning/landswap/parcel"
)

// Feature widths fixed at training time. The loaded network must
// declare the same widths or New rejects it.
const (
	// KParcel is the per-parcel feature width.
	KParcel = 6
	// KGlobal is the global-context feature width.
	KGlobal = 8
)

// contiguityScale normalizes the raw contiguity into roughly [0,1] for
// the global-context vector, matching the training-time convention.
const contiguityScale = 10.0

// features builds the per-candidate feature matrix over the swappable
// set, one row of width KParcel per candidate:
//
//	0: normalized slope              (static)
//	1: is currently farmland
//	2: farmland-neighbor fraction
//	3: neighbor mean normalized slope (static)
//	4: normalized area               (static)
//	5: slope relative to current farmland average
//
// Complexity: O(S).
func (s *state) features() [][]float32 {
	avg := s.avgSlope()
	relDiv := math.Abs(avg) + rangeEps
	out := make([][]float32, len(s.sw))
	for i, k := range s.sw {
		row := make([]float32, KParcel)
		row[0] = s.normSlope[k]
		if s.store.Current(int(k)) == parcel.Farmland {
			row[1] = 1
		}
		row[2] = float32(s.farmNbr[k]) / float32(math.Max(float64(s.degree[k]), 1))
		row[3] = s.nbrSlope[k]
		row[4] = s.normArea[k]
		row[5] = float32((s.store.Slope(int(k)) - avg) / relDiv)
		out[i] = row
	}

	return out
}

// global builds the KGlobal-wide context vector for the given phase and
// step position:
//
//	0: farmland average slope, normalized into the dataset slope range
//	1: raw contiguity / contiguityScale
//	2: phase (0 or 1)
//	3: step progress within the run
//	4: farmland share of all parcels
//	5: forest share of all parcels
//	6: average slope change relative to the initial value
//	7: raw contiguity change relative to the initial value
func (s *state) global(phase, step, maxSteps int) []float32 {
	avg := s.avgSlope()
	cont := s.rawContiguity()
	n := float64(s.store.Len())

	return []float32{
		float32((avg - s.slopeMin) / s.slopeRange),
		float32(cont / contiguityScale),
		float32(phase),
		float32(float64(step) / float64(maxSteps)),
		float32(float64(s.nFarm) / n),
		float32(float64(s.nForest) / n),
		float32((avg - s.initAvgSlope) / (math.Abs(s.initAvgSlope) + rangeEps)),
		float32((cont - s.initRawCont) / (math.Abs(s.initRawCont) + rangeEps)),
	}
}
