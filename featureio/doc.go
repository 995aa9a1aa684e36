// Package featureio reads parcel datasets from GeoJSON and writes
// optimization results back as annotated GeoJSON.
//
// What:
//
//   - Read decodes a FeatureCollection into a parcel.Store plus the
//     polygon geometries the adjacency builder needs, classifying each
//     feature's label against the caller's farmland/forest label sets.
//   - Write re-emits the input features with four result properties:
//     orig_label, opt_label, opt_type (numeric LandType code), and
//     chg_flag (0 unchanged, 1 farmland→forest, 2 forest→farmland).
//
// Missing slope or area values default to 0 and the planar geometry
// area respectively; missing labels classify as Other. This mirrors the
// tolerant reader the host environment uses.
//
// Errors:
//
//   - ErrDecode: the input is not a GeoJSON feature collection.
//   - parcel.ErrLabelOverlap: propagated from classification.
package featureio
