package featureio

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/zhouning/landswap/engine"
	"github.com/zhouning/landswap/parcel"
)

// Change-flag codes persisted on output features.
const (
	chgNone     = 0
	chgToForest = 1
	chgToFarm   = 2
)

// WriteCounts reports how many parcels were converted each way. Equal
// counts mean the farmland-count invariant held.
type WriteCounts struct {
	ToForest int
	ToFarm   int
}

// Conserved reports whether the conversion counts balance.
func (c WriteCounts) Conserved() bool { return c.ToForest == c.ToFarm }

// Write annotates the dataset's features with the run outcome and
// encodes the collection to w. Converted parcels get the first label of
// the opposite set as their new label, mirroring how the host writes
// its output table. Complexity: O(N).
func (d *Dataset) Write(w io.Writer, res *engine.Result, opts Options) (WriteCounts, error) {
	var counts WriteCounts
	if len(res.FinalTypes) != d.Store.Len() {
		return counts, fmt.Errorf("featureio: result covers %d parcels, dataset has %d",
			len(res.FinalTypes), d.Store.Len())
	}

	forestLabel := firstOr(opts.ForestLabels, parcel.Forest.String())
	farmLabel := firstOr(opts.FarmlandLabels, parcel.Farmland.String())
	for i, f := range d.fc.Features {
		orig := d.Labels[i]
		final := res.FinalTypes[i]
		f.Properties["orig_label"] = orig
		f.Properties["opt_type"] = int(final)
		switch {
		case d.Store.Original(i) == parcel.Farmland && final == parcel.Forest:
			f.Properties["opt_label"] = forestLabel
			f.Properties["chg_flag"] = chgToForest
			counts.ToForest++
		case d.Store.Original(i) == parcel.Forest && final == parcel.Farmland:
			f.Properties["opt_label"] = farmLabel
			f.Properties["chg_flag"] = chgToFarm
			counts.ToFarm++
		default:
			f.Properties["opt_label"] = orig
			f.Properties["chg_flag"] = chgNone
		}
	}

	enc := json.NewEncoder(w)
	if err := enc.Encode(d.fc); err != nil {
		return counts, fmt.Errorf("featureio: encode feature collection: %w", err)
	}

	return counts, nil
}

func firstOr(list []string, fallback string) string {
	if len(list) > 0 {
		return list[0]
	}

	return fallback
}
