package scorer

import (
	"archive/zip"
	"fmt"

	"github.com/sbinet/npyio"
)

// LoadNPZ reads a NumPy .npz checkpoint as written by the training-side
// exporter: scalar entries k_parcel, k_global, n_layers and 2-D/1-D
// arrays weight_i / bias_i for i in 0..n_layers-1.
func LoadNPZ(path string) (*Network, error) {
	zr, err := zip.OpenReader(path)
	if err != nil {
		return nil, fmt.Errorf("%w: open %s: %v", ErrModelLoad, path, err)
	}
	defer zr.Close()

	entries := make(map[string]*zip.File, len(zr.File))
	for _, f := range zr.File {
		entries[f.Name] = f
	}

	kParcel, err := npzInt(entries, "k_parcel")
	if err != nil {
		return nil, err
	}
	kGlobal, err := npzInt(entries, "k_global")
	if err != nil {
		return nil, err
	}
	nLayers, err := npzInt(entries, "n_layers")
	if err != nil {
		return nil, err
	}

	cp := Checkpoint{KParcel: kParcel, KGlobal: kGlobal}
	for l := 0; l < nLayers; l++ {
		flat, shape, err := npzFloats(entries, fmt.Sprintf("weight_%d", l))
		if err != nil {
			return nil, err
		}
		if len(shape) != 2 || shape[0]*shape[1] != len(flat) {
			return nil, fmt.Errorf("%w: weight_%d has shape %v", ErrModelLoad, l, shape)
		}
		rows := make([][]float32, shape[0])
		for o := range rows {
			rows[o] = flat[o*shape[1] : (o+1)*shape[1]]
		}
		bias, bshape, err := npzFloats(entries, fmt.Sprintf("bias_%d", l))
		if err != nil {
			return nil, err
		}
		if len(bshape) != 1 {
			return nil, fmt.Errorf("%w: bias_%d has shape %v", ErrModelLoad, l, bshape)
		}
		cp.Weights = append(cp.Weights, rows)
		cp.Biases = append(cp.Biases, bias)
	}

	return New(cp)
}

// npzEntry opens the named array inside the archive. np.savez stores
// each array under "<name>.npy".
func npzEntry(entries map[string]*zip.File, name string) (*npyio.Reader, func() error, error) {
	f, ok := entries[name+".npy"]
	if !ok {
		return nil, nil, fmt.Errorf("%w: missing array %q", ErrModelLoad, name)
	}
	rc, err := f.Open()
	if err != nil {
		return nil, nil, fmt.Errorf("%w: read array %q: %v", ErrModelLoad, name, err)
	}
	r, err := npyio.NewReader(rc)
	if err != nil {
		rc.Close()
		return nil, nil, fmt.Errorf("%w: parse array %q: %v", ErrModelLoad, name, err)
	}

	return r, rc.Close, nil
}

// npzInt reads a 0-d or length-1 integer array.
func npzInt(entries map[string]*zip.File, name string) (int, error) {
	r, done, err := npzEntry(entries, name)
	if err != nil {
		return 0, err
	}
	defer done()

	var vals []int64
	if err = r.Read(&vals); err != nil {
		return 0, fmt.Errorf("%w: decode array %q: %v", ErrModelLoad, name, err)
	}
	if len(vals) != 1 {
		return 0, fmt.Errorf("%w: array %q holds %d values, want 1", ErrModelLoad, name, len(vals))
	}

	return int(vals[0]), nil
}

// npzFloats reads a float32 array and returns its flat data and shape.
func npzFloats(entries map[string]*zip.File, name string) ([]float32, []int, error) {
	r, done, err := npzEntry(entries, name)
	if err != nil {
		return nil, nil, err
	}
	defer done()

	var vals []float32
	if err = r.Read(&vals); err != nil {
		return nil, nil, fmt.Errorf("%w: decode array %q: %v", ErrModelLoad, name, err)
	}

	return vals, r.Header.Descr.Shape, nil
}
