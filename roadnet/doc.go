// Package roadnet provides the directed road multigraph the search engine
// runs on: nodes carry WGS-84 coordinates, edges carry named non-negative
// numeric attributes, and parallel edges between the same ordered node pair
// are first-class (they model multi-lane / multi-way road segments in OSM).
//
// Overview:
//
//   - Graph is built incrementally with AddNode / AddEdge and then treated as
//     immutable for the duration of every search. Construction and reads are
//     guarded by a sync.RWMutex, so building on one goroutine cannot race
//     with searches on another, and any number of concurrent searches over a
//     non-mutated graph are safe.
//   - Attribute lookup follows the minimum-of-parallel-edges rule: when
//     several edges connect the same ordered pair, EdgeWeight returns the
//     cheapest value for the requested attribute; the cheapest coincident
//     connection is assumed traversable.
//   - Neighbors and Nodes return node IDs in ascending order, so traversal
//     order (and therefore every search run) is reproducible.
//
// Attribute conventions:
//
//	AttrLength     – "length", meters; mandatory on every edge.
//	AttrTravelTime – "travel_time", seconds; optional, present when the
//	                 graph was enriched with speed data (see osmload).
//
// Errors (sentinel):
//
//	ErrNodeNotFound      – an edge endpoint or queried node does not exist.
//	ErrDuplicateNode     – AddNode called twice with the same ID.
//	ErrBadCoordinate     – latitude outside [-90,90] or longitude outside [-180,180].
//	ErrMissingLength     – AddEdge called without the mandatory length attribute.
//	ErrNegativeAttribute – an attribute value is negative; the engine's
//	                       least-cost-first correctness depends on rejecting these.
//
// Graph satisfies the search.Graph capability (HasNode, Neighbors,
// EdgeWeight, Coordinates), which is all the engine ever sees of it.
package roadnet
