// Package metrics computes the two scalar KPIs the optimizer steers by:
// average farmland slope and farmland contiguity. Both are pure
// functions of the parcel store and the adjacency graph.
package metrics

import (
	"github.com/zhouning/landswap/adjacency"
	"github.com/zhouning/landswap/parcel"
)

// AverageSlope returns the arithmetic mean slope over current farmland
// parcels, or 0 when there is no farmland. The engine's pre-flight
// check guarantees it never asks for the empty case; the 0 return is
// for defensive callers only. Complexity: O(N).
func AverageSlope(store *parcel.Store) float64 {
	sum, n := 0.0, 0
	for i := 0; i < store.Len(); i++ {
		if store.Current(i) == parcel.Farmland {
			sum += store.Slope(i)
			n++
		}
	}
	if n == 0 {
		return 0
	}

	return sum / float64(n)
}

// Contiguity returns the mean, over farmland parcels with at least one
// neighbor, of the fraction of their neighbors that are also farmland.
// Farmland parcels with no neighbors are excluded from the denominator;
// the result is 0 when no farmland parcel has a neighbor.
// Range [0, 1]: 0 means fully scattered, 1 fully clustered.
// Complexity: O(N + E).
func Contiguity(store *parcel.Store, g *adjacency.Graph) float64 {
	sum, n := 0.0, 0
	for i := 0; i < store.Len(); i++ {
		if store.Current(i) != parcel.Farmland {
			continue
		}
		deg := g.Degree(i)
		if deg == 0 {
			continue
		}
		same := 0
		for _, j := range g.Neighbors(i) {
			if store.Current(int(j)) == parcel.Farmland {
				same++
			}
		}
		sum += float64(same) / float64(deg)
		n++
	}
	if n == 0 {
		return 0
	}

	return sum / float64(n)
}
