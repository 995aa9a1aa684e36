package parcel

import "errors"

// Sentinel errors for parcel store construction and classification.
var (
	// ErrColumnMismatch indicates the input columns have differing lengths.
	ErrColumnMismatch = errors.New("parcel: input columns must have equal length")

	// ErrLabelOverlap indicates a label is present in both the farmland
	// and the forest label set.
	ErrLabelOverlap = errors.New("parcel: label present in both farmland and forest sets")
)

// LandType is the land-use category of a parcel.
//
// The numeric codes (Other=0, Farmland=1, Forest=2) are persisted by the
// result writer and must stay stable.
type LandType int8

const (
	// Other marks parcels outside the optimization: never converted.
	Other LandType = iota
	// Farmland marks cultivated parcels.
	Farmland
	// Forest marks forested parcels.
	Forest
)

// String returns the lower-case name of the land type.
func (t LandType) String() string {
	switch t {
	case Farmland:
		return "farmland"
	case Forest:
		return "forest"
	default:
		return "other"
	}
}
