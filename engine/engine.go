package engine

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/zhouning/landswap/adjacency"
	"github.com/zhouning/landswap/metrics"
	"github.com/zhouning/landswap/parcel"
	"github.com/zhouning/landswap/scorer"
)

// Config holds the per-run knobs.
type Config struct {
	// Pairs is the requested number of swap rounds. The effective count
	// is clamped to min(Pairs, n_farmland, n_forest).
	Pairs int
	// Sink receives per-round progress; nil means NopSink.
	Sink ProgressSink
}

// Engine runs paired swap optimization over one dataset. One instance
// serves one run: Run mutates the store it was built around.
type Engine struct {
	store *parcel.Store
	graph *adjacency.Graph
	net   *scorer.Network
}

// New validates the collaborators and builds an Engine.
// Returns ErrDimensionMismatch when store and graph disagree on the
// parcel count, and scorer.ErrModelLoad when the network's declared
// feature widths differ from the KParcel/KGlobal this engine produces.
func New(store *parcel.Store, graph *adjacency.Graph, net *scorer.Network) (*Engine, error) {
	if store.Len() != graph.Len() {
		return nil, fmt.Errorf("%w: %d parcels, %d graph nodes", ErrDimensionMismatch, store.Len(), graph.Len())
	}
	if net.KParcel() != KParcel || net.KGlobal() != KGlobal {
		return nil, fmt.Errorf("%w: network declares k_parcel=%d k_global=%d, engine produces %d/%d",
			scorer.ErrModelLoad, net.KParcel(), net.KGlobal(), KParcel, KGlobal)
	}

	return &Engine{store: store, graph: graph, net: net}, nil
}

// Run executes up to cfg.Pairs swap rounds and returns the final
// Result. Pre-flight failures (ErrNoFarmland, ErrNoForest,
// ErrPairCount) abort before any mutation. Scoring failures abort the
// whole run and are propagated unchanged. Cancellation via ctx is
// honored at round boundaries only; the partial result is conserved.
func (e *Engine) Run(ctx context.Context, cfg Config) (*Result, error) {
	if cfg.Pairs <= 0 {
		return nil, fmt.Errorf("%w: got %d", ErrPairCount, cfg.Pairs)
	}
	sink := cfg.Sink
	if sink == nil {
		sink = NopSink
	}

	st := newState(e.store, e.graph)
	if st.nFarm == 0 {
		return nil, fmt.Errorf("%w: %d parcels total", ErrNoFarmland, e.store.Len())
	}
	if st.nForest == 0 {
		return nil, fmt.Errorf("%w: %d parcels total", ErrNoForest, e.store.Len())
	}

	effective := min(cfg.Pairs, st.nFarm, st.nForest)
	maxSteps := effective * 2

	res := &Result{
		RunID:             uuid.NewString(),
		RequestedPairs:    cfg.Pairs,
		EffectivePairs:    effective,
		InitialAvgSlope:   st.avgSlope(),
		InitialContiguity: metrics.Contiguity(e.store, e.graph),
		Trace:             make([]RoundMetrics, 0, effective),
	}

	step := 0
	for round := 1; round <= effective; round++ {
		if ctx.Err() != nil {
			res.Canceled = true
			break
		}

		// Phase 0: farmland → forest.
		mask, eligible := st.phaseMask(parcel.Farmland)
		if eligible == 0 {
			break
		}
		a, err := e.net.SelectAction(st.features(), st.global(0, step, maxSteps), mask)
		if err != nil {
			return nil, err
		}
		out := st.sw[a]
		st.swapToForest(out)
		st.touched[a] = true
		step++

		// Phase 1: forest → farmland. The phase-0 parcel is touched and
		// therefore never a candidate here.
		mask, eligible = st.phaseMask(parcel.Forest)
		if eligible == 0 {
			// Revert the half-finished round: a result must never leave
			// the farmland count off by one.
			st.swapToFarmland(out)
			st.touched[a] = false
			break
		}
		b, err := e.net.SelectAction(st.features(), st.global(1, step, maxSteps), mask)
		if err != nil {
			return nil, err
		}
		st.swapToFarmland(st.sw[b])
		st.touched[b] = true
		step++

		res.CompletedPairs++
		avg := st.avgSlope()
		cont := metrics.Contiguity(e.store, e.graph)
		res.Trace = append(res.Trace, RoundMetrics{Round: round, AvgSlope: avg, Contiguity: cont})
		sink.Progress(round, effective, avg, cont)
	}

	res.FinalTypes = make([]parcel.LandType, e.store.Len())
	for i := range res.FinalTypes {
		res.FinalTypes[i] = e.store.Current(i)
	}
	res.FinalAvgSlope = st.avgSlope()
	res.FinalContiguity = metrics.Contiguity(e.store, e.graph)
	res.SlopeChange = res.FinalAvgSlope - res.InitialAvgSlope
	res.SlopeChangePct = res.SlopeChange / res.InitialAvgSlope * 100
	res.ContiguityChange = res.FinalContiguity - res.InitialContiguity
	res.FarmlandChange = st.nFarm - st.initNFarm

	return res, nil
}
