package adjacency

import (
	"math"

	"github.com/paulmach/orb"
)

// boundGrid is a uniform spatial hash over parcel bounding boxes. Each
// parcel is registered in every cell its bbox overlaps; candidate pairs
// are parcels sharing at least one cell. It only prunes: correctness
// comes from the exact test run on each candidate.
type boundGrid struct {
	cell  float64
	cells map[[2]int32][]int32
}

// newBoundGrid sizes cells from the mean bbox extent, which keeps the
// expected per-cell population small for realistic parcel tessellations.
func newBoundGrid(bounds []orb.Bound, segs [][]segment) *boundGrid {
	sum, cnt := 0.0, 0
	for i, b := range bounds {
		if len(segs[i]) == 0 {
			continue
		}
		sum += (b.Max[0] - b.Min[0]) + (b.Max[1] - b.Min[1])
		cnt++
	}
	cell := sum / float64(2*cnt)
	if cell <= 0 || math.IsNaN(cell) {
		cell = 1
	}
	g := &boundGrid{cell: cell, cells: make(map[[2]int32][]int32)}
	for i, b := range bounds {
		if len(segs[i]) == 0 {
			continue
		}
		x0, y0 := g.cellOf(b.Min)
		x1, y1 := g.cellOf(b.Max)
		for x := x0; x <= x1; x++ {
			for y := y0; y <= y1; y++ {
				key := [2]int32{x, y}
				g.cells[key] = append(g.cells[key], int32(i))
			}
		}
	}

	return g
}

func (g *boundGrid) cellOf(p orb.Point) (int32, int32) {
	return int32(math.Floor(p[0] / g.cell)), int32(math.Floor(p[1] / g.cell))
}

// candidatePairs visits every (i, j) with i < j sharing a cell. A pair
// spanning multiple cells is visited once per shared cell; callers
// dedupe.
func (g *boundGrid) candidatePairs(visit func(i, j int)) {
	for _, members := range g.cells {
		for a := 0; a < len(members); a++ {
			for b := a + 1; b < len(members); b++ {
				i, j := members[a], members[b]
				if i > j {
					i, j = j, i
				}
				visit(int(i), int(j))
			}
		}
	}
}
