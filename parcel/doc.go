// Package parcel holds the columnar per-parcel state of one optimization
// run and the label-set classification that derives land-use types.
//
// What:
//
//   - LandType enumerates the three categories the engine tracks:
//     Other, Farmland, Forest.
//   - Store keeps per-parcel slope, area, original type, and current
//     type as parallel columns indexed 0..N-1, bijective with the
//     persistent feature identifiers the host dataset uses.
//   - Classify maps classification labels to LandTypes by exact,
//     case-sensitive membership in caller-supplied label sets.
//
// Why:
//
//   - The swap engine mutates only the current-type column; everything
//     else is frozen at load. A columnar layout keeps the hot loop on
//     flat slices instead of per-parcel structs.
//
// Errors:
//
//   - ErrColumnMismatch: input columns have differing lengths.
//   - ErrLabelOverlap: a label appears in both the farmland and the
//     forest label set (caller configuration error).
//
// Complexity: all Store accessors are O(1) or O(N); Classify is O(N).
package parcel
