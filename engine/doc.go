// Package engine runs the paired land-use swap optimization.
//
// What:
//
//   - One Engine instance owns one run over a parcel store, an
//     adjacency graph, and a loaded scorer network.
//   - Each round converts exactly one farmland parcel to forest
//     (phase 0) and one forest parcel to farmland (phase 1), selected
//     by masked argmax over the scorer's candidate scores, so the net
//     farmland count never changes (FC=0).
//   - The round loop is strictly sequential: phase-1 scoring depends on
//     the global-context vector refreshed after phase 0. Cancellation
//     is honored at round boundaries only, which keeps a canceled run
//     conserved.
//
// Invariants (checked by the test suite):
//
//   - farmland_count(after round) == farmland_count(before round).
//   - Parcels originally classified Other are never retyped.
//   - A parcel is converted at most once per run; in particular the
//     phase-0 parcel of a round is never the phase-1 parcel of the
//     same round.
//   - Two runs over identical inputs produce identical final types and
//     identical metric traces.
//
// Errors:
//
//   - ErrNoFarmland / ErrNoForest: pre-flight, nothing was mutated.
//   - ErrDimensionMismatch: store and graph disagree on parcel count.
//   - ErrPairCount: requested pair count is not positive.
//   - scorer.ErrModelLoad: the network's declared feature widths do not
//     match what this engine produces.
//   - scorer.ErrInputShape: propagated unchanged; fatal, aborts the run.
//
// A run that stops early because candidates ran out is a partial
// completion, reported through Result.CompletedPairs, not an error.
package engine
