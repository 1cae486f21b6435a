package search

import "cmp"

// Dijkstra computes the least-cost path from source to target: the kernel
// instantiated with the constant-zero heuristic. For any graph with
// non-negative weights the returned cost is optimal, which makes Dijkstra
// the baseline against which the weighted A* instantiation is measured.
//
// The cost of a step is the minimum weight across parallel edges for the
// configured attribute (WithAttribute, default "length").
//
// Errors: ErrNilGraph, ErrUnknownNode, ErrNegativeWeight, ErrBudgetExceeded.
// An unreachable target is a normal Result, not an error.
//
// Complexity: O((V + E) log V) time, O(V + E) space.
func Dijkstra[Node cmp.Ordered](g Graph[Node], source, target Node, opts ...Option) (Result[Node], error) {
	if g == nil {
		return unreachable[Node](0), ErrNilGraph
	}

	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	return Search(g, source, target, attributeCost(g, cfg.Attribute), nil, opts...)
}

// attributeCost adapts a graph's EdgeWeight lookup for one fixed attribute
// into the kernel's cost accessor.
func attributeCost[Node cmp.Ordered](g Graph[Node], attribute string) CostFunc[Node] {
	return func(u, v Node) (float64, bool) {
		return g.EdgeWeight(u, v, attribute)
	}
}
