// Package search defines the engine's capability interface, configuration
// options, result type, and sentinel errors.
package search

import (
	"cmp"
	"errors"
	"math"
)

// DefaultAttribute is the edge attribute used as the cost when no
// WithAttribute option is supplied: the road-segment length in meters.
// It matches roadnet.AttrLength without importing roadnet, so the engine
// stays independent of any particular graph implementation.
const DefaultAttribute = "length"

// Sentinel errors returned by the search engine.
var (
	// ErrNilGraph indicates a nil graph was passed to a search entry point.
	ErrNilGraph = errors.New("search: graph is nil")

	// ErrNilCost indicates Search was invoked without a cost accessor.
	ErrNilCost = errors.New("search: cost accessor is nil")

	// ErrUnknownNode indicates the source or target node is absent from the
	// graph. This is an invalid-input error, never a silent empty result.
	ErrUnknownNode = errors.New("search: node not present in graph")

	// ErrNegativeWeight indicates a negative edge weight was encountered
	// during relaxation. Correctness of the monotonic visited set depends on
	// non-negativity, so the engine rejects rather than answer wrongly.
	ErrNegativeWeight = errors.New("search: negative edge weight encountered")

	// ErrBadWeightFactor indicates a negative heuristic weight factor.
	ErrBadWeightFactor = errors.New("search: weight factor must be non-negative")

	// ErrBadMaxExpansions indicates WithMaxExpansions was given a negative value.
	ErrBadMaxExpansions = errors.New("search: MaxExpansions must be non-negative")

	// ErrBudgetExceeded indicates the expansion budget ran out before the
	// target was finalized. The partial Result still reports Expanded.
	ErrBudgetExceeded = errors.New("search: expansion budget exceeded")
)

// Graph is the minimal capability the engine requires from a graph data
// structure. roadnet.Graph satisfies it for Node = int64; tests satisfy it
// with tiny in-memory fixtures. Node is cmp.Ordered so equal-priority
// frontier ties can break deterministically on the identifier.
type Graph[Node cmp.Ordered] interface {
	// HasNode reports whether the node exists; used to validate the source
	// and target upfront so absent endpoints fail fast as ErrUnknownNode.
	HasNode(Node) bool

	// Neighbors returns the outgoing adjacency of a node; order is the
	// implementation's concern, but a deterministic order yields
	// reproducible expansion counts.
	Neighbors(Node) ([]Node, error)

	// EdgeWeight returns the minimum weight across parallel edges u→v for
	// the named attribute, with ok=false when no such edge or attribute
	// exists. Absence means "no connection", not an error.
	EdgeWeight(u, v Node, attribute string) (float64, bool)

	// Coordinates returns a node's (latitude, longitude) in degrees; only
	// the heuristic reads them. ok=false degrades that node's heuristic to
	// zero instead of aborting the search.
	Coordinates(Node) (lat, lon float64, ok bool)
}

// CostFunc resolves the traversal cost of the cheapest edge u→v.
// ok=false means u and v are not connected for the chosen attribute.
// Returned values must be non-negative.
type CostFunc[Node cmp.Ordered] func(u, v Node) (float64, bool)

// Heuristic estimates the remaining cost from a node to the fixed target of
// the current search. It must never return a negative value. A nil Heuristic
// is the constant zero function, i.e. plain Dijkstra.
type Heuristic[Node cmp.Ordered] func(Node) float64

// Result is the outcome of one search invocation.
type Result[Node cmp.Ordered] struct {
	// Path is the node sequence from source to target inclusive.
	// nil when the target was not reached.
	Path []Node

	// Cost is the total path cost in the unit of the summed edge weights;
	// math.Inf(1) when the target is unreachable.
	Cost float64

	// Expanded counts the nodes finalized (popped with their true shortest
	// cost) before termination; the search-effort metric used to compare
	// algorithms.
	Expanded int

	// Reached reports whether the target was popped from the frontier.
	Reached bool
}

// Options configures a search invocation.
//
// Attribute     – edge attribute used as the cost (default DefaultAttribute).
// MaxExpansions – expansion budget; 0 disables the limit. Exceeding the
//
//	budget surfaces as ErrBudgetExceeded, never as a silently
//	suboptimal path.
type Options struct {
	Attribute     string
	MaxExpansions int
}

// Option is a functional option for configuring a search invocation.
type Option func(*Options)

// WithAttribute selects which edge attribute the cost accessor reads,
// e.g. "length" for shortest or "travel_time" for fastest routes.
// Empty strings are ignored.
func WithAttribute(attribute string) Option {
	return func(o *Options) {
		if attribute != "" {
			o.Attribute = attribute
		}
	}
}

// WithMaxExpansions caps how many nodes a search may finalize. A search that
// would exceed the cap stops with ErrBudgetExceeded. Passing a negative value
// panics with ErrBadMaxExpansions, mirroring invalid-configuration handling
// elsewhere in the module.
func WithMaxExpansions(limit int) Option {
	return func(o *Options) {
		if limit < 0 {
			panic(ErrBadMaxExpansions.Error())
		}
		o.MaxExpansions = limit
	}
}

// DefaultOptions returns the baseline configuration: cost from the "length"
// attribute and no expansion budget.
func DefaultOptions() Options {
	return Options{
		Attribute:     DefaultAttribute,
		MaxExpansions: 0,
	}
}

// unreachable builds the canonical no-path result: +Inf cost, nil path.
func unreachable[Node cmp.Ordered](expanded int) Result[Node] {
	return Result[Node]{
		Path:     nil,
		Cost:     math.Inf(1),
		Expanded: expanded,
		Reached:  false,
	}
}
