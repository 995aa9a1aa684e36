package adjacency

import "fmt"

// PairListBuilder is the fast-path strategy: the host environment has
// already run its native polygon-neighbor query and hands us the raw
// pair table. The table may list each edge once or from both sides and
// in any order; Build canonicalizes it either way.
type PairListBuilder struct {
	// N is the number of parcels (nodes), including isolated ones.
	N int
	// Pairs lists neighbor relationships as (src, nbr) index pairs.
	Pairs [][2]int32
}

// Build canonicalizes the pair table into a Graph.
// Returns ErrInsufficientGeometry if N < 2 and ErrIndexRange if a pair
// references an index outside 0..N-1.
// Complexity: O(N + E log d) time, O(N + E) memory.
func (b PairListBuilder) Build() (*Graph, error) {
	if b.N < 2 {
		return nil, fmt.Errorf("%w: got %d parcels", ErrInsufficientGeometry, b.N)
	}
	raw := make([][]int32, b.N)
	for _, p := range b.Pairs {
		src, nbr := p[0], p[1]
		if src < 0 || int(src) >= b.N || nbr < 0 || int(nbr) >= b.N {
			return nil, fmt.Errorf("%w: pair (%d,%d) with %d parcels", ErrIndexRange, src, nbr, b.N)
		}
		raw[src] = append(raw[src], nbr)
	}

	return newGraph(raw), nil
}
