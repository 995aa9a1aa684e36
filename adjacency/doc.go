// Package adjacency builds and serves the undirected parcel-neighbor
// graph used by the swap engine.
//
// What:
//
//   - Graph: frozen neighbor lists over parcel indices 0..N-1. No
//     self-loops, no duplicate edges, symmetric by construction,
//     neighbor lists sorted ascending for deterministic traversal.
//   - Builder: one contract, two strategies.
//   - PairListBuilder (fast path): canonicalizes a precomputed
//     neighbor-pair table supplied by the host environment.
//   - GeometryBuilder (fallback): pairwise boundary-intersection test
//     over polygon geometries, bounded by a uniform grid index over
//     bounding boxes. Both strategies must produce the identical edge
//     set on the same input; this is a correctness requirement, covered
//     by the equivalence tests.
//
// Why:
//
//   - The host's native neighbor query is license-gated; when it is
//     unavailable the engine still needs the exact same graph, so the
//     fallback is an alternative implementation, not an approximation.
//
// Complexity:
//
//   - PairListBuilder: O(E log d) time, O(N + E) memory.
//   - GeometryBuilder: O(N + K·c) expected with the grid index, where K
//     is the number of candidate bbox pairs; degrades toward O(N²)
//     segment tests only when all bounding boxes overlap.
//
// Errors:
//
//   - ErrInsufficientGeometry: fewer than 2 usable polygons supplied.
//   - ErrIndexRange: a neighbor pair references an unknown parcel index.
package adjacency
