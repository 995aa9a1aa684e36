package parcel

// Classify maps classification labels to land types by exact,
// case-sensitive membership: labels in farmland become Farmland, labels
// in forest become Forest, everything else becomes Other.
//
// A label listed in both sets is a caller configuration error and
// returns ErrLabelOverlap: silently resolving it either way would let
// the farmland-conservation invariant break without a trace.
// Complexity: O(len(farmland)+len(forest)+len(labels)).
func Classify(labels []string, farmland, forest []string) ([]LandType, error) {
	farmSet := make(map[string]struct{}, len(farmland))
	for _, l := range farmland {
		farmSet[l] = struct{}{}
	}
	for _, l := range forest {
		if _, dup := farmSet[l]; dup {
			return nil, ErrLabelOverlap
		}
	}
	forestSet := make(map[string]struct{}, len(forest))
	for _, l := range forest {
		forestSet[l] = struct{}{}
	}

	out := make([]LandType, len(labels))
	for i, l := range labels {
		if _, ok := farmSet[l]; ok {
			out[i] = Farmland
		} else if _, ok = forestSet[l]; ok {
			out[i] = Forest
		}
	}

	return out, nil
}
