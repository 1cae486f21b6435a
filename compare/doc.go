// Package compare runs Dijkstra and weighted A* head-to-head over the same
// road graph and turns the outcomes into human-readable reports.
//
// The workflow:
//
//  1. LoadConfig reads a YAML scenario file: the .osm.pbf extract to use, a
//     mandatory A* weight factor and a list of named scenarios, each a pair
//     of raw WGS-84 coordinates.
//  2. Run snaps both coordinates onto graph nodes, executes Dijkstra and
//     weighted A* between them with wall-clock timing, and optionally the
//     fastest route by travel time. It reports route length, nodes expanded,
//     elapsed time, A* speedup and node reduction relative to Dijkstra.
//  3. RenderTable prints the reports as an aligned text table with per-column
//     averages; WriteGeoJSON exports the computed routes as a GeoJSON
//     FeatureCollection of LineStrings for map inspection.
//
// Errors (sentinel):
//
//	ErrNoScenarios      – config parsed but names no scenarios.
//	ErrNoWeightFactor   – config omits the A* weight factor.
//	ErrUnknownAttribute – a report asked for an attribute no path edge carries.
//
// An unreachable scenario is reported, not failed: its rows render with
// "unreachable" markers and it is excluded from the averages.
package compare
