// Package roadsearch is an instrumented shortest-path toolkit for real road
// networks — run Dijkstra and weighted A* over the same OpenStreetMap graph
// and measure exactly what the heuristic buys you.
//
// 🚀 What is roadsearch?
//
//	A small, focused library (plus a CLI) that brings together:
//		• roadnet/  — a directed road multigraph: nodes with WGS-84 coordinates,
//		              parallel edges with named attributes ("length", "travel_time")
//		• search/   — a generic priority-search kernel with lazy decrease-key,
//		              instantiated as Dijkstra and weighted A*, reporting path,
//		              total cost and nodes-expanded statistics
//		• geo/      — numerically stable haversine great-circle distances
//		• osmload/  — build a road graph straight from an .osm.pbf extract,
//		              derive speeds & travel times, snap raw coordinates to nodes
//		• compare/  — run both algorithms head-to-head, render result tables,
//		              export routes as GeoJSON
//
// ✨ Why choose roadsearch?
//
//   - Honest metrics – every search reports how many nodes it finalized,
//     so "A* is faster" becomes a number, not a feeling
//   - Deterministic – equal-priority frontier ties break on node ID;
//     identical inputs always reproduce identical runs
//   - Safe by contract – negative weights are rejected, unknown endpoints
//     error out immediately, unreachable targets are a result, not a crash
//   - Pure library core – the engine performs no I/O and holds no global
//     state; concurrent searches over one immutable graph are safe
//
// Quick taste:
//
//	g := roadnet.NewGraph()
//	// ... add nodes & edges (or osmload.Load a .pbf extract) ...
//	best, err := search.Dijkstra[int64](g, from, to)
//	fast, err := search.AStar[int64](g, from, to, 1.0) // weight factor is explicit
//	fmt.Println(best.Cost, best.Expanded, "vs", fast.Expanded)
//
// Start with search/doc.go for the engine contract, then osmload/ and
// compare/ for the end-to-end comparison pipeline used by cmd/roadsearch.
//
//	go get github.com/katalvlaran/roadsearch
package roadsearch
