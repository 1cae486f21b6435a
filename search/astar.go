package search

import (
	"cmp"

	"github.com/katalvlaran/roadsearch/geo"
)

// GeoHeuristic is the bound parameter set of the geodesic A* heuristic: the
// fixed target coordinates, a unit scale, and the caller-chosen weight
// factor. It is an explicit value holder rather than a closure over ambient
// state, so both the kernel and its instantiations can be constructed and
// tested without captured environments.
//
// Estimate(n) = Distance(n, target) × Scale × Factor, where Distance is the
// great-circle distance in meters. With Scale converting meters into the
// edge-weight unit and Factor ≤ 1, the estimate never exceeds the true
// remaining road cost, so the search stays optimal. Factor > 1 deliberately
// inflates the estimate to finalize fewer nodes at the price of possibly
// longer paths.
type GeoHeuristic[Node cmp.Ordered] struct {
	// TargetLat, TargetLon fix the goal position for this search call.
	TargetLat float64
	TargetLon float64

	// Scale converts meters into the unit of the edge weights. For the
	// "length" attribute (meters) this is 1.
	Scale float64

	// Factor is the caller-supplied heuristic weight; must be ≥ 0.
	Factor float64

	// Coords resolves a node's position. Nodes it cannot resolve contribute
	// a zero estimate, degrading locally to Dijkstra-like behavior instead
	// of aborting the search.
	Coords func(Node) (lat, lon float64, ok bool)
}

// Estimate returns the scaled great-circle estimate of the remaining cost
// from n to the target, or 0 when n's coordinates are unknown.
// Complexity: O(1).
func (h GeoHeuristic[Node]) Estimate(n Node) float64 {
	lat, lon, ok := h.Coords(n)
	if !ok {
		return 0
	}

	return geo.Distance(lat, lon, h.TargetLat, h.TargetLon) * h.Scale * h.Factor
}

// AStar computes a path from source to target with the kernel steered by a
// geodesic heuristic: priority = cost-so-far + weightFactor × great-circle
// distance to the target.
//
// weightFactor is an explicit, caller-specified configuration with no
// implicit default:
//
//   - weightFactor ≤ 1 keeps the heuristic admissible (the straight-line
//     distance never overestimates road distance), so the returned cost
//     equals Dijkstra's optimum.
//   - weightFactor > 1 trades optimality for fewer expansions; the returned
//     cost may exceed the optimum, never undercut it.
//   - weightFactor == 0 degenerates to Dijkstra.
//
// The heuristic is meaningful for the meter-based "length" attribute (the
// default); when routing on another attribute, supply a custom-scaled
// GeoHeuristic to Search directly. A target without coordinates degrades the
// whole heuristic to zero. Nodes without coordinates contribute a zero
// estimate individually.
//
// Errors: ErrBadWeightFactor (negative factor), plus everything Search
// returns.
//
// Complexity: O((V + E) log V) time, O(V + E) space; the practical expansion
// count shrinks as weightFactor grows.
func AStar[Node cmp.Ordered](g Graph[Node], source, target Node, weightFactor float64, opts ...Option) (Result[Node], error) {
	if g == nil {
		return unreachable[Node](0), ErrNilGraph
	}
	if weightFactor < 0 {
		return unreachable[Node](0), ErrBadWeightFactor
	}

	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	// Bind the heuristic parameters now, at search-call time. If the target
	// has no coordinates the estimate would be zero everywhere; passing a
	// nil heuristic states that plainly.
	var h Heuristic[Node]
	if targetLat, targetLon, ok := g.Coordinates(target); ok {
		gh := GeoHeuristic[Node]{
			TargetLat: targetLat,
			TargetLon: targetLon,
			Scale:     1,
			Factor:    weightFactor,
			Coords:    g.Coordinates,
		}
		h = gh.Estimate
	}

	return Search(g, source, target, attributeCost(g, cfg.Attribute), h, opts...)
}
