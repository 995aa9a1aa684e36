package engine

import (
	"math"

	"github.com/zhouning/landswap/adjacency"
	"github.com/zhouning/landswap/parcel"
)

// rangeEps keeps normalization divisors non-zero on constant columns.
// The value is part of the numeric contract with the trained network.
const rangeEps = 1e-8

// state carries the mutable optimization state of one run plus the
// incremental aggregates that keep per-phase feature construction at
// O(S + d) instead of O(N + E).
type state struct {
	store *parcel.Store
	graph *adjacency.Graph

	// Swappable candidate indices (original Farmland ∪ Forest),
	// ascending; the scorer batch is always this set.
	sw []int32
	// touched[i] marks sw[i] as converted this run.
	touched []bool

	// Static normalized features, fixed at construction.
	slopeMin   float64
	slopeRange float64
	normSlope  []float32 // per parcel
	normArea   []float32 // per parcel
	nbrSlope   []float32 // per parcel: mean normSlope over neighbors
	degree     []float32 // per parcel

	// Mutable aggregates, maintained by the swap operations exactly the
	// way the reference does, so feature values stay bit-compatible.
	farmNbr      []int32 // farmland neighbors per parcel
	nFarm        int
	nForest      int
	farmSlopeSum float64 // Σ slope over current farmland
	farmAdjSum   int     // Σ farmNbr over current farmland

	initAvgSlope float64
	initRawCont  float64
	initNFarm    int
}

func newState(store *parcel.Store, graph *adjacency.Graph) *state {
	n := store.Len()
	s := &state{
		store:     store,
		graph:     graph,
		sw:        store.Swappable(),
		normSlope: make([]float32, n),
		normArea:  make([]float32, n),
		nbrSlope:  make([]float32, n),
		degree:    make([]float32, n),
		farmNbr:   make([]int32, n),
	}
	s.touched = make([]bool, len(s.sw))

	sMin, sMax := math.Inf(1), math.Inf(-1)
	aMin, aMax := math.Inf(1), math.Inf(-1)
	for i := 0; i < n; i++ {
		sMin = math.Min(sMin, store.Slope(i))
		sMax = math.Max(sMax, store.Slope(i))
		aMin = math.Min(aMin, store.Area(i))
		aMax = math.Max(aMax, store.Area(i))
	}
	s.slopeMin = sMin
	s.slopeRange = sMax - sMin + rangeEps
	aRange := aMax - aMin + rangeEps
	for i := 0; i < n; i++ {
		s.normSlope[i] = float32((store.Slope(i) - sMin) / s.slopeRange)
		s.normArea[i] = float32((store.Area(i) - aMin) / aRange)
		s.degree[i] = float32(graph.Degree(i))
	}
	for i := 0; i < n; i++ {
		nbrs := graph.Neighbors(i)
		if len(nbrs) == 0 {
			continue
		}
		sum := 0.0
		for _, j := range nbrs {
			sum += float64(s.normSlope[j])
		}
		s.nbrSlope[i] = float32(sum / float64(len(nbrs)))
	}

	s.recompute()
	s.initAvgSlope = s.avgSlope()
	s.initRawCont = s.rawContiguity()
	s.initNFarm = s.nFarm

	return s
}

// recompute rebuilds every mutable aggregate from scratch. Called once
// at construction; the swap operations keep them current afterwards.
func (s *state) recompute() {
	s.nFarm, s.nForest = 0, 0
	s.farmSlopeSum = 0
	s.farmAdjSum = 0
	for i := 0; i < s.store.Len(); i++ {
		cnt := int32(0)
		for _, j := range s.graph.Neighbors(i) {
			if s.store.Current(int(j)) == parcel.Farmland {
				cnt++
			}
		}
		s.farmNbr[i] = cnt
	}
	for i := 0; i < s.store.Len(); i++ {
		switch s.store.Current(i) {
		case parcel.Farmland:
			s.nFarm++
			s.farmSlopeSum += s.store.Slope(i)
			s.farmAdjSum += int(s.farmNbr[i])
		case parcel.Forest:
			s.nForest++
		}
	}
}

// avgSlope is the running mean slope of current farmland.
func (s *state) avgSlope() float64 {
	return s.farmSlopeSum / float64(max(s.nFarm, 1))
}

// rawContiguity is the running mean farmland-neighbor count over
// current farmland. This is the unnormalized quantity the trained
// network saw; the reported KPI uses metrics.Contiguity instead.
func (s *state) rawContiguity() float64 {
	return float64(s.farmAdjSum) / float64(max(s.nFarm, 1))
}

// swapToForest converts farmland parcel k to forest, updating every
// aggregate incrementally. Complexity: O(d).
func (s *state) swapToForest(k int32) {
	s.farmAdjSum -= int(s.farmNbr[k])
	s.farmSlopeSum -= s.store.Slope(int(k))
	s.store.SetCurrent(int(k), parcel.Forest)
	s.nFarm--
	s.nForest++
	for _, j := range s.graph.Neighbors(int(k)) {
		s.farmNbr[j]--
		if s.store.Current(int(j)) == parcel.Farmland {
			s.farmAdjSum--
		}
	}
}

// swapToFarmland converts forest parcel k to farmland; exact inverse of
// swapToForest. Complexity: O(d).
func (s *state) swapToFarmland(k int32) {
	s.store.SetCurrent(int(k), parcel.Farmland)
	s.nFarm++
	s.nForest--
	s.farmSlopeSum += s.store.Slope(int(k))
	s.farmAdjSum += int(s.farmNbr[k])
	for _, j := range s.graph.Neighbors(int(k)) {
		s.farmNbr[j]++
		if s.store.Current(int(j)) == parcel.Farmland {
			s.farmAdjSum++
		}
	}
}

// phaseMask returns, per swappable candidate, whether its current type
// is want and it has not been converted this run.
func (s *state) phaseMask(want parcel.LandType) ([]bool, int) {
	mask := make([]bool, len(s.sw))
	eligible := 0
	for i, k := range s.sw {
		if !s.touched[i] && s.store.Current(int(k)) == want {
			mask[i] = true
			eligible++
		}
	}

	return mask, eligible
}
