package adjacency

import (
	"fmt"
	"math"

	"github.com/paulmach/orb"
)

// GeometryBuilder is the fallback strategy: no native neighbor query is
// available, so adjacency is detected by testing polygon boundaries for
// intersection. A uniform grid over bounding boxes prunes the candidate
// pairs; every surviving pair runs an exact segment-intersection test,
// so the resulting edge set matches the fast path on the same geometry.
type GeometryBuilder struct {
	// Geoms holds one multipolygon per parcel index. Empty geometries
	// are tolerated and yield isolated nodes.
	Geoms []orb.MultiPolygon
}

type segment struct {
	a, b orb.Point
}

// Build detects neighbors by boundary intersection.
// Returns ErrInsufficientGeometry if fewer than 2 geometries are usable.
// Complexity: expected O(N + K·c) with K candidate bbox pairs; worst
// case O(N²) segment tests when every bounding box overlaps.
func (b GeometryBuilder) Build() (*Graph, error) {
	n := len(b.Geoms)
	bounds := make([]orb.Bound, n)
	segs := make([][]segment, n)
	usable := 0
	for i, mp := range b.Geoms {
		segs[i] = boundarySegments(mp)
		if len(segs[i]) == 0 {
			continue
		}
		bounds[i] = mp.Bound()
		usable++
	}
	if usable < 2 {
		return nil, fmt.Errorf("%w: got %d usable of %d parcels", ErrInsufficientGeometry, usable, n)
	}

	grid := newBoundGrid(bounds, segs)
	raw := make([][]int32, n)
	tested := make(map[int64]struct{})
	grid.candidatePairs(func(i, j int) {
		key := int64(i)<<32 | int64(j)
		if _, done := tested[key]; done {
			return
		}
		tested[key] = struct{}{}
		if !bounds[i].Intersects(bounds[j]) {
			return
		}
		if boundariesTouch(segs[i], segs[j]) {
			raw[i] = append(raw[i], int32(j))
		}
	})

	return newGraph(raw), nil
}

// boundarySegments flattens all ring edges of a multipolygon.
func boundarySegments(mp orb.MultiPolygon) []segment {
	var out []segment
	for _, poly := range mp {
		for _, ring := range poly {
			for k := 1; k < len(ring); k++ {
				out = append(out, segment{a: ring[k-1], b: ring[k]})
			}
		}
	}

	return out
}

// boundariesTouch reports whether any boundary segment of one parcel
// intersects any boundary segment of the other. For a polygon coverage
// (no interior overlap) this is exactly the "not disjoint" predicate
// the native neighbor query uses.
func boundariesTouch(sa, sb []segment) bool {
	for _, s := range sa {
		sb1 := s.bound()
		for _, t := range sb {
			if !sb1.Intersects(t.bound()) {
				continue
			}
			if segmentsIntersect(s.a, s.b, t.a, t.b) {
				return true
			}
		}
	}

	return false
}

func (s segment) bound() orb.Bound {
	min := orb.Point{math.Min(s.a[0], s.b[0]), math.Min(s.a[1], s.b[1])}
	max := orb.Point{math.Max(s.a[0], s.b[0]), math.Max(s.a[1], s.b[1])}

	return orb.Bound{Min: min, Max: max}
}

// orientation returns the sign of the cross product (b-a)×(c-a):
// +1 counter-clockwise, -1 clockwise, 0 collinear.
func orientation(a, b, c orb.Point) int {
	v := (b[0]-a[0])*(c[1]-a[1]) - (b[1]-a[1])*(c[0]-a[0])
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	default:
		return 0
	}
}

// onSegment reports whether collinear point p lies within segment ab.
func onSegment(a, b, p orb.Point) bool {
	return math.Min(a[0], b[0]) <= p[0] && p[0] <= math.Max(a[0], b[0]) &&
		math.Min(a[1], b[1]) <= p[1] && p[1] <= math.Max(a[1], b[1])
}

// segmentsIntersect reports whether segments pq and rs share at least
// one point, including shared endpoints and collinear overlap.
func segmentsIntersect(p, q, r, s orb.Point) bool {
	o1 := orientation(p, q, r)
	o2 := orientation(p, q, s)
	o3 := orientation(r, s, p)
	o4 := orientation(r, s, q)

	if o1 != o2 && o3 != o4 {
		return true
	}
	// Collinear cases: endpoint of one segment lies on the other.
	if o1 == 0 && onSegment(p, q, r) {
		return true
	}
	if o2 == 0 && onSegment(p, q, s) {
		return true
	}
	if o3 == 0 && onSegment(r, s, p) {
		return true
	}
	if o4 == 0 && onSegment(r, s, q) {
		return true
	}

	return false
}
