package parcel

// Store is the columnar per-parcel state of one optimization run.
//
// Columns are parallel slices indexed by the stable parcel index
// 0..Len()-1. IDs carries the persistent feature identifier for each
// index. Slope, Area, original types, and IDs are frozen after
// construction; only the current-type column is mutated, and only
// through SetCurrent.
type Store struct {
	ids      []int64
	slope    []float64
	area     []float64
	original []LandType
	current  []LandType
}

// NewStore builds a Store from parallel columns. The original types are
// copied into the current-type column. Returns ErrColumnMismatch if any
// column length differs. Complexity: O(N) time and memory.
func NewStore(ids []int64, slope, area []float64, original []LandType) (*Store, error) {
	n := len(ids)
	if len(slope) != n || len(area) != n || len(original) != n {
		return nil, ErrColumnMismatch
	}
	s := &Store{
		ids:      append([]int64(nil), ids...),
		slope:    append([]float64(nil), slope...),
		area:     append([]float64(nil), area...),
		original: append([]LandType(nil), original...),
		current:  append([]LandType(nil), original...),
	}

	return s, nil
}

// Len returns the number of parcels.
func (s *Store) Len() int { return len(s.ids) }

// ID returns the persistent identifier of parcel i.
func (s *Store) ID(i int) int64 { return s.ids[i] }

// Slope returns the slope (degrees) of parcel i.
func (s *Store) Slope(i int) float64 { return s.slope[i] }

// Area returns the area of parcel i.
func (s *Store) Area(i int) float64 { return s.area[i] }

// Original returns the immutable load-time land type of parcel i.
func (s *Store) Original(i int) LandType { return s.original[i] }

// Current returns the current land type of parcel i.
func (s *Store) Current(i int) LandType { return s.current[i] }

// SetCurrent sets the current land type of parcel i.
// Parcels with Original(i) == Other must never be retyped; SetCurrent
// is a no-op for them so the closure invariant cannot be broken by a
// misbehaving caller.
func (s *Store) SetCurrent(i int, t LandType) {
	if s.original[i] == Other {
		return
	}
	s.current[i] = t
}

// Count returns the number of parcels whose current type equals t.
// Complexity: O(N).
func (s *Store) Count(t LandType) int {
	n := 0
	for _, c := range s.current {
		if c == t {
			n++
		}
	}

	return n
}

// IndicesOf returns the ascending parcel indices whose current type
// equals t. Complexity: O(N) time and memory.
func (s *Store) IndicesOf(t LandType) []int32 {
	out := make([]int32, 0, len(s.current))
	for i, c := range s.current {
		if c == t {
			out = append(out, int32(i))
		}
	}

	return out
}

// Swappable returns the ascending indices of parcels that participate
// in optimization: those whose original type is Farmland or Forest.
// Complexity: O(N) time and memory.
func (s *Store) Swappable() []int32 {
	out := make([]int32, 0, len(s.original))
	for i, t := range s.original {
		if t == Farmland || t == Forest {
			out = append(out, int32(i))
		}
	}

	return out
}
