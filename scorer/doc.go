// Package scorer evaluates the trained parcel-conversion policy network
// as a pure numeric forward pass.
//
// What:
//
//   - Network: a fixed multilayer perceptron. Input is one parcel's
//     feature vector (width KParcel) concatenated with the shared
//     global-context vector (width KGlobal); hidden layers are
//     Linear+Tanh; the output layer is Linear to a single scalar score.
//   - Evaluate scores a whole candidate batch against one global vector
//     and forces masked-out entries to -Inf so downstream argmax can
//     never pick them.
//   - SelectAction is Evaluate plus deterministic argmax with
//     lowest-index tie-break.
//   - Two physical checkpoint formats deserialize into the same logical
//     Checkpoint: NumPy .npz archives (the training exporter's format)
//     and a native JSON checkpoint. The numeric contract is identical
//     for both.
//
// Numeric contract:
//
//   - All arithmetic is float32 with row-major weight·input accumulation
//     in input order, matching the reference evaluation to an absolute
//     error below 1e-5. Nothing here is randomized or order-dependent
//     across candidates.
//
// Errors:
//
//   - ErrModelLoad: unreadable or corrupt blob, or declared feature
//     widths inconsistent with the parameter shapes.
//   - ErrInputShape: feature width, global width, or mask length does
//     not match the loaded network.
package scorer
