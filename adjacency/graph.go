package adjacency

import (
	"errors"
	"sort"
)

// Sentinel errors for adjacency graph construction.
var (
	// ErrInsufficientGeometry indicates fewer than 2 usable polygons.
	ErrInsufficientGeometry = errors.New("adjacency: need at least two usable polygons")

	// ErrIndexRange indicates a neighbor pair references an unknown parcel index.
	ErrIndexRange = errors.New("adjacency: neighbor pair index out of range")
)

// Graph is the frozen undirected parcel-neighbor graph.
//
// Neighbor lists are sorted ascending and contain no self-loops and no
// duplicates; (i,j) present implies (j,i) present. A Graph is never
// mutated after its builder returns it.
type Graph struct {
	nbr   [][]int32
	edges int
}

// Builder constructs the adjacency graph once per run. Implementations
// must satisfy the same contract so they can be swapped freely: same
// edge set, same canonical form.
type Builder interface {
	Build() (*Graph, error)
}

// newGraph canonicalizes raw neighbor sets into a Graph: sorts each
// list, drops duplicates and self-loops, and mirrors every edge so the
// result is symmetric. Complexity: O(N + E log d).
func newGraph(raw [][]int32) *Graph {
	n := len(raw)
	sets := make([]map[int32]struct{}, n)
	for i := range sets {
		sets[i] = make(map[int32]struct{}, len(raw[i]))
	}
	for i, list := range raw {
		for _, j := range list {
			if int32(i) == j {
				continue
			}
			sets[i][j] = struct{}{}
			sets[j][int32(i)] = struct{}{}
		}
	}
	nbr := make([][]int32, n)
	edges := 0
	for i, set := range sets {
		list := make([]int32, 0, len(set))
		for j := range set {
			list = append(list, j)
		}
		sort.Slice(list, func(a, b int) bool { return list[a] < list[b] })
		nbr[i] = list
		edges += len(list)
	}

	return &Graph{nbr: nbr, edges: edges / 2}
}

// Len returns the number of parcels (nodes).
func (g *Graph) Len() int { return len(g.nbr) }

// Degree returns the number of neighbors of parcel i.
func (g *Graph) Degree(i int) int { return len(g.nbr[i]) }

// Neighbors returns the ascending neighbor list of parcel i.
// The slice is shared with the graph and must not be modified.
func (g *Graph) Neighbors(i int) []int32 { return g.nbr[i] }

// EdgeCount returns the number of undirected edges.
func (g *Graph) EdgeCount() int { return g.edges }

// Has reports whether the undirected edge (i,j) exists.
// Complexity: O(log d) via binary search on the sorted neighbor list.
func (g *Graph) Has(i, j int) bool {
	if i < 0 || i >= len(g.nbr) {
		return false
	}
	list := g.nbr[i]
	k := sort.Search(len(list), func(m int) bool { return list[m] >= int32(j) })

	return k < len(list) && list[k] == int32(j)
}
