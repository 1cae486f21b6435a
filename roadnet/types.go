// Package roadnet defines the road-graph types, attribute names, and
// sentinel errors shared by the construction and query APIs in graph.go.
package roadnet

import "errors"

// Well-known edge attribute names. Any other non-negative numeric attribute
// may be attached to an edge; these two are the ones the rest of the module
// knows how to interpret.
const (
	// AttrLength is the road-segment length in meters. Mandatory on every edge.
	AttrLength = "length"

	// AttrTravelTime is the estimated traversal time in seconds. Optional;
	// osmload derives it from maxspeed tags and highway-class defaults.
	AttrTravelTime = "travel_time"
)

// Sentinel errors for road-graph construction and queries.
var (
	// ErrNodeNotFound indicates an operation referenced a non-existent node.
	ErrNodeNotFound = errors.New("roadnet: node not found")

	// ErrDuplicateNode indicates AddNode was called twice with the same ID.
	ErrDuplicateNode = errors.New("roadnet: node already exists")

	// ErrBadCoordinate indicates a latitude or longitude outside the valid
	// WGS-84 range.
	ErrBadCoordinate = errors.New("roadnet: coordinate out of range")

	// ErrMissingLength indicates AddEdge was called without the mandatory
	// "length" attribute.
	ErrMissingLength = errors.New("roadnet: edge is missing the length attribute")

	// ErrNegativeAttribute indicates an edge attribute value is negative.
	// Non-negativity is the precondition for least-cost-first search.
	ErrNegativeAttribute = errors.New("roadnet: negative edge attribute")
)

// Node is a road-network vertex: an OSM node identifier plus its position.
// Coordinates are read-only once the node is added; the search engine uses
// them only through the heuristic.
type Node struct {
	// ID uniquely identifies this node within its Graph.
	ID int64

	// Lat is the latitude in decimal degrees, in [-90, 90].
	Lat float64

	// Lon is the longitude in decimal degrees, in [-180, 180].
	Lon float64
}

// Edge is one directed road segment From→To. Multiple Edge values may exist
// for the same ordered (From, To) pair; weight queries take the minimum.
type Edge struct {
	// From is the source node ID.
	From int64

	// To is the destination node ID.
	To int64

	// Attrs maps attribute names to non-negative values. Always contains
	// AttrLength. The map is copied on AddEdge and never mutated afterwards.
	Attrs map[string]float64
}
