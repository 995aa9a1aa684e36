package scorer

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// jsonCheckpoint is the native checkpoint layout. It carries the same
// logical fields as the .npz export, so either format yields the same
// Network.
type jsonCheckpoint struct {
	KParcel int         `json:"k_parcel"`
	KGlobal int         `json:"k_global"`
	Layers  []jsonLayer `json:"layers"`
}

type jsonLayer struct {
	Weight [][]float32 `json:"weight"`
	Bias   []float32   `json:"bias"`
}

// LoadJSON reads a native JSON checkpoint from r.
func LoadJSON(r io.Reader) (*Network, error) {
	var jc jsonCheckpoint
	if err := json.NewDecoder(r).Decode(&jc); err != nil {
		return nil, fmt.Errorf("%w: decode json checkpoint: %v", ErrModelLoad, err)
	}
	cp := Checkpoint{KParcel: jc.KParcel, KGlobal: jc.KGlobal}
	for _, l := range jc.Layers {
		cp.Weights = append(cp.Weights, l.Weight)
		cp.Biases = append(cp.Biases, l.Bias)
	}

	return New(cp)
}

// Load opens a checkpoint file and dispatches on its extension:
// ".npz" for NumPy archives, ".json" for native checkpoints.
func Load(path string) (*Network, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".npz":
		return LoadNPZ(path)
	case ".json":
		f, err := os.Open(path)
		if err != nil {
			return nil, fmt.Errorf("%w: open %s: %v", ErrModelLoad, path, err)
		}
		defer f.Close()

		return LoadJSON(f)
	default:
		return nil, fmt.Errorf("%w: unknown checkpoint format %q", ErrModelLoad, filepath.Ext(path))
	}
}
