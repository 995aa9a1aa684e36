package scorer

import (
	"errors"
	"fmt"
	"math"
)

// Sentinel errors for model loading and evaluation.
var (
	// ErrModelLoad indicates an unreadable, corrupt, or shape-inconsistent
	// weights blob.
	ErrModelLoad = errors.New("scorer: cannot load model weights")

	// ErrInputShape indicates inputs whose shape does not match the
	// loaded network. This is an integration error, never expected in
	// correct usage.
	ErrInputShape = errors.New("scorer: invalid input shape")
)

// negInf is the sentinel for masked-out candidates.
var negInf = float32(math.Inf(-1))

// Checkpoint is the logical parameter blob, independent of the physical
// format that supplied it. Weights[l] is row-major [out][in]; the last
// layer must have a single output row.
type Checkpoint struct {
	KParcel int
	KGlobal int
	Weights [][][]float32
	Biases  [][]float32
}

// Network is the loaded scorer. It is stateless after construction:
// Evaluate allocates its own scratch, so a Network is safe for
// concurrent use.
type Network struct {
	kParcel int
	kGlobal int
	weights [][][]float32
	biases  [][]float32
}

// New validates a Checkpoint and builds a Network.
//
// Validation: at least one layer; every layer rectangular with a bias
// per output row; first-layer input width equals KParcel+KGlobal;
// each layer's input width equals the previous layer's output width;
// final layer has exactly one output. Any violation is ErrModelLoad
// with the offending shapes in the message.
func New(cp Checkpoint) (*Network, error) {
	if cp.KParcel <= 0 || cp.KGlobal <= 0 {
		return nil, fmt.Errorf("%w: declared widths k_parcel=%d k_global=%d", ErrModelLoad, cp.KParcel, cp.KGlobal)
	}
	if len(cp.Weights) == 0 || len(cp.Weights) != len(cp.Biases) {
		return nil, fmt.Errorf("%w: %d weight layers, %d bias layers", ErrModelLoad, len(cp.Weights), len(cp.Biases))
	}
	in := cp.KParcel + cp.KGlobal
	for l, w := range cp.Weights {
		if len(w) == 0 {
			return nil, fmt.Errorf("%w: layer %d has no rows", ErrModelLoad, l)
		}
		for _, row := range w {
			if len(row) != in {
				return nil, fmt.Errorf("%w: layer %d expects input width %d, weight row has %d", ErrModelLoad, l, in, len(row))
			}
		}
		if len(cp.Biases[l]) != len(w) {
			return nil, fmt.Errorf("%w: layer %d has %d rows but %d biases", ErrModelLoad, l, len(w), len(cp.Biases[l]))
		}
		in = len(w)
	}
	if in != 1 {
		return nil, fmt.Errorf("%w: final layer has %d outputs, want 1", ErrModelLoad, in)
	}

	return &Network{
		kParcel: cp.KParcel,
		kGlobal: cp.KGlobal,
		weights: cp.Weights,
		biases:  cp.Biases,
	}, nil
}

// KParcel returns the per-parcel feature width fixed at training time.
func (n *Network) KParcel() int { return n.kParcel }

// KGlobal returns the global-context feature width fixed at training time.
func (n *Network) KGlobal() int { return n.kGlobal }

// Evaluate scores every candidate in the batch against the shared
// global-context vector. mask[i]==false forces scores[i] to -Inf.
// Returns ErrInputShape on any width or length mismatch, or on an
// empty batch. Complexity: O(batch · Σ layer sizes).
func (n *Network) Evaluate(features [][]float32, global []float32, mask []bool) ([]float32, error) {
	if len(features) == 0 {
		return nil, fmt.Errorf("%w: empty candidate batch", ErrInputShape)
	}
	if len(global) != n.kGlobal {
		return nil, fmt.Errorf("%w: global width %d, want %d", ErrInputShape, len(global), n.kGlobal)
	}
	if len(mask) != len(features) {
		return nil, fmt.Errorf("%w: mask length %d, batch size %d", ErrInputShape, len(mask), len(features))
	}

	in := make([]float32, n.kParcel+n.kGlobal)
	scores := make([]float32, len(features))
	for i, f := range features {
		if len(f) != n.kParcel {
			return nil, fmt.Errorf("%w: candidate %d feature width %d, want %d", ErrInputShape, i, len(f), n.kParcel)
		}
		if !mask[i] {
			scores[i] = negInf
			continue
		}
		copy(in, f)
		copy(in[n.kParcel:], global)
		scores[i] = n.forward(in)
	}

	return scores, nil
}

// SelectAction evaluates the batch and returns the index of the highest
// score, breaking ties toward the lowest index. Returns ErrInputShape
// from Evaluate unchanged, and -1 when every candidate is masked out.
func (n *Network) SelectAction(features [][]float32, global []float32, mask []bool) (int, error) {
	scores, err := n.Evaluate(features, global, mask)
	if err != nil {
		return 0, err
	}
	best := -1
	bestScore := negInf
	for i, s := range scores {
		// Strict > keeps the lowest index on equal scores.
		if s > bestScore || (best == -1 && mask[i]) {
			best, bestScore = i, s
		}
	}

	return best, nil
}

// forward runs one input vector through the network. Accumulation is
// sequential in input order; this is what pins the result to the
// reference implementation.
func (n *Network) forward(in []float32) float32 {
	cur := in
	for l, w := range n.weights {
		out := make([]float32, len(w))
		for o, row := range w {
			acc := n.biases[l][o]
			for k, x := range cur {
				acc += row[k] * x
			}
			if l < len(n.weights)-1 {
				acc = float32(math.Tanh(float64(acc)))
			}
			out[o] = acc
		}
		cur = out
	}

	return cur[0]
}
