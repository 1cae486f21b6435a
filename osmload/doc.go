// Package osmload builds a roadnet.Graph from an OpenStreetMap .osm.pbf
// extract and snaps raw WGS-84 coordinates onto graph nodes.
//
// Overview:
//
//   - Load scans the extract three times with osmpbf (ways → node-usage
//     counts, nodes → coordinates, ways → edges), the same pass structure
//     used by OSM routing preprocessors. Way nodes used by more than one
//     drivable way (and every way endpoint) become graph nodes; the
//     intermediate nodes contribute only geometry.
//   - Edge length is the haversine sum over the way geometry between two
//     junctions, in meters. Travel time is derived from the maxspeed tag
//     when present, otherwise from highway-class defaults, and stored as the
//     "travel_time" attribute in seconds.
//   - One-way restrictions are honored: motorways and trunks (and their
//     links) are one-way by default, oneway=yes on anything else; all other
//     segments produce a directed edge in each direction.
//   - Snapper answers nearest-node queries with a point quadtree
//     (paulmach/orb/quadtree) over the node positions, so scenario
//     coordinates given as raw lat/lon can be mapped onto the graph.
//
// Errors (sentinel):
//
//	ErrNoHighways – the extract contained no drivable ways.
//	ErrEmptyGraph – a Snapper was requested over a graph with no nodes.
//
// The snapping metric is planar over (lon, lat), which is accurate enough at
// city scale where candidate nodes are meters apart, not degrees.
package osmload
