package engine

import "github.com/zhouning/landswap/parcel"

// RoundMetrics is one entry of the per-round metric trace.
type RoundMetrics struct {
	Round      int
	AvgSlope   float64
	Contiguity float64
}

// Result is the immutable outcome of one run.
type Result struct {
	// RunID uniquely identifies this run for logging and provenance.
	RunID string

	// FinalTypes holds the current type of every parcel after the run.
	FinalTypes []parcel.LandType

	RequestedPairs int
	EffectivePairs int
	CompletedPairs int

	// Canceled marks a run stopped by the caller's context at a round
	// boundary. The result is still conserved and usable.
	Canceled bool

	InitialAvgSlope   float64
	FinalAvgSlope     float64
	InitialContiguity float64
	FinalContiguity   float64

	// SlopeChange and ContiguityChange are final minus initial;
	// SlopeChangePct is the slope change as a percentage of the initial
	// average.
	SlopeChange      float64
	SlopeChangePct   float64
	ContiguityChange float64

	// FarmlandChange is final minus initial farmland count. Zero for
	// every run this engine returns.
	FarmlandChange int

	// Trace records metrics after each completed round.
	Trace []RoundMetrics
}

// Partial reports whether the run completed fewer pairs than requested.
func (r *Result) Partial() bool {
	return r.CompletedPairs < r.RequestedPairs
}

// ProgressSink receives a notification after each completed round.
// Implementations must not block; the engine functions identically with
// the no-op sink.
type ProgressSink interface {
	Progress(round, total int, avgSlope, contiguity float64)
}

// SinkFunc adapts a function to the ProgressSink interface.
type SinkFunc func(round, total int, avgSlope, contiguity float64)

// Progress implements ProgressSink.
func (f SinkFunc) Progress(round, total int, avgSlope, contiguity float64) {
	f(round, total, avgSlope, contiguity)
}

// NopSink discards all progress notifications.
var NopSink ProgressSink = SinkFunc(func(int, int, float64, float64) {})
