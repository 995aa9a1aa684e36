package featureio

import (
	"errors"
	"fmt"
	"io"
	"math"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"
	"github.com/paulmach/orb/planar"

	"github.com/zhouning/landswap/parcel"
)

// ErrDecode indicates the input is not a readable GeoJSON feature
// collection.
var ErrDecode = errors.New("featureio: cannot decode feature collection")

// Options configures how features map to parcel columns.
type Options struct {
	// LabelProperty names the classification-label property.
	LabelProperty string
	// SlopeProperty names the slope property (degrees).
	SlopeProperty string
	// AreaProperty names the area property. Empty means "compute the
	// planar polygon area instead".
	AreaProperty string
	// FarmlandLabels and ForestLabels are the disjoint label sets that
	// drive classification.
	FarmlandLabels []string
	ForestLabels   []string
}

// Dataset is a decoded parcel dataset: the store the engine mutates,
// the geometries the adjacency builder consumes, and the original
// features for the writer. Parcel index i corresponds to feature i.
type Dataset struct {
	Store  *parcel.Store
	Geoms  []orb.MultiPolygon
	Labels []string

	fc *geojson.FeatureCollection
}

// Read decodes GeoJSON from r into a Dataset.
// Complexity: O(N + vertices).
func Read(r io.Reader, opts Options) (*Dataset, error) {
	raw, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDecode, err)
	}
	fc, err := geojson.UnmarshalFeatureCollection(raw)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDecode, err)
	}

	n := len(fc.Features)
	ids := make([]int64, n)
	slope := make([]float64, n)
	area := make([]float64, n)
	labels := make([]string, n)
	geoms := make([]orb.MultiPolygon, n)
	for i, f := range fc.Features {
		ids[i] = featureID(f, i)
		labels[i] = f.Properties.MustString(opts.LabelProperty, "")
		slope[i] = f.Properties.MustFloat64(opts.SlopeProperty, 0)
		geoms[i] = asMultiPolygon(f.Geometry)
		if opts.AreaProperty != "" {
			area[i] = f.Properties.MustFloat64(opts.AreaProperty, 0)
		} else if geoms[i] != nil {
			area[i] = math.Abs(planar.Area(geoms[i]))
		}
	}

	types, err := parcel.Classify(labels, opts.FarmlandLabels, opts.ForestLabels)
	if err != nil {
		return nil, err
	}
	store, err := parcel.NewStore(ids, slope, area, types)
	if err != nil {
		return nil, err
	}

	return &Dataset{Store: store, Geoms: geoms, Labels: labels, fc: fc}, nil
}

// featureID extracts a stable numeric identifier, falling back to the
// 1-based feature position when the feature carries none.
func featureID(f *geojson.Feature, i int) int64 {
	switch id := f.ID.(type) {
	case float64:
		return int64(id)
	case int:
		return int64(id)
	case int64:
		return id
	}
	if v, ok := f.Properties["OBJECTID"]; ok {
		if fv, ok := v.(float64); ok {
			return int64(fv)
		}
	}

	return int64(i + 1)
}

func asMultiPolygon(g orb.Geometry) orb.MultiPolygon {
	switch geom := g.(type) {
	case orb.Polygon:
		return orb.MultiPolygon{geom}
	case orb.MultiPolygon:
		return geom
	default:
		return nil
	}
}
