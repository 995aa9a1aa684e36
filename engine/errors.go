package engine

import "errors"

// Sentinel errors for pre-flight validation. All of them abort the run
// before any parcel is mutated.
var (
	// ErrNoFarmland indicates the dataset has no farmland parcels.
	ErrNoFarmland = errors.New("engine: no farmland parcels in input")

	// ErrNoForest indicates the dataset has no forest parcels.
	ErrNoForest = errors.New("engine: no forest parcels in input")

	// ErrDimensionMismatch indicates store and graph disagree on the
	// number of parcels.
	ErrDimensionMismatch = errors.New("engine: store and adjacency graph sizes differ")

	// ErrPairCount indicates a non-positive requested pair count.
	ErrPairCount = errors.New("engine: requested pair count must be positive")
)
