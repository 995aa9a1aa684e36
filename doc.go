// Package landswap optimizes the spatial layout of land parcels by
// swapping paired parcel uses — one farmland parcel to forest, one
// forest parcel to farmland per round — so the farmland average slope
// falls and farmland contiguity rises while the total farmland count
// stays exactly constant.
//
// The module is organized as small, flat packages:
//
//	parcel/    — columnar per-parcel state and label classification
//	adjacency/ — the undirected neighbor graph, two build strategies
//	scorer/    — the trained policy network as a pure forward pass
//	metrics/   — the two scalar KPIs: average slope and contiguity
//	engine/    — the paired swap-selection loop and its invariants
//	featureio/ — GeoJSON in, annotated GeoJSON out
//	config/    — the CLI's YAML run configuration
//	cmd/landswap — the command-line entrypoint
//
// A minimal run wires the packages like the CLI does:
//
//	ds, _ := featureio.Read(f, opts)
//	graph, _ := adjacency.GeometryBuilder{Geoms: ds.Geoms}.Build()
//	net, _ := scorer.Load("scorer_weights.npz")
//	eng, _ := engine.New(ds.Store, graph, net)
//	res, _ := eng.Run(ctx, engine.Config{Pairs: 100})
package landswap
