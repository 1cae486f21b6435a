// Package search implements the generic priority-search kernel shared by the
// Dijkstra and weighted A* instantiations.
//
// Notes on implementation choices:
//
//   - Lazy decrease-key: improving a node's tentative cost pushes a fresh
//     frontier entry; superseded entries are skipped at pop time via the
//     visited set. A plain binary heap is sufficient and ownership-safe.
//   - Sparse state: tentative-cost and predecessor maps contain only
//     discovered nodes. A node absent from the cost map is at +Inf by
//     definition, so no per-graph pre-sizing ever happens.
//   - Early exit: the loop stops the moment the target is popped. This is
//     valid only because weights are non-negative and the visited set is
//     monotonic: at pop time the target's tentative cost is final.
package search

import (
	"cmp"
	"container/heap"
	"fmt"
)

// Search runs the priority-search kernel over g from source to target.
//
// cost resolves the non-negative traversal cost of the cheapest edge between
// two adjacent nodes. h estimates the remaining cost to the target and
// steers pop order; nil means the constant zero function (uninformed,
// Dijkstra-ordered expansion).
//
// Returns:
//
//   - Result with the source→target path, total cost, and the count of
//     nodes finalized before termination.
//   - An unreachable target is a normal outcome: err == nil,
//     Result{Cost: +Inf, Reached: false}.
//   - Errors: ErrNilGraph, ErrNilCost, ErrUnknownNode (source or target
//     absent), ErrNegativeWeight, ErrBudgetExceeded.
//
// source == target succeeds immediately with a single-node path, cost 0 and
// Expanded == 1.
//
// Complexity: O((V + E) log V) time, O(V + E) space.
func Search[Node cmp.Ordered](
	g Graph[Node],
	source, target Node,
	cost CostFunc[Node],
	h Heuristic[Node],
	opts ...Option,
) (Result[Node], error) {
	// 1) Resolve options.
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	// 2) Validate inputs. Absent endpoints are invalid input, surfaced
	//    before any expansion happens.
	if g == nil {
		return unreachable[Node](0), ErrNilGraph
	}
	if cost == nil {
		return unreachable[Node](0), ErrNilCost
	}
	if !g.HasNode(source) {
		return unreachable[Node](0), fmt.Errorf("%w: source %v", ErrUnknownNode, source)
	}
	if !g.HasNode(target) {
		return unreachable[Node](0), fmt.Errorf("%w: target %v", ErrUnknownNode, target)
	}

	// 3) Per-call state: nothing is shared across invocations, so concurrent
	//    searches over one immutable graph cannot interfere.
	r := &runner[Node]{
		g:         g,
		cost:      cost,
		heuristic: h,
		source:    source,
		target:    target,
		dist:      make(map[Node]float64),
		prev:      make(map[Node]Node),
		visited:   make(map[Node]struct{}),
		budget:    cfg.MaxExpansions,
	}

	return r.run()
}

// runner holds the mutable state of a single kernel execution.
type runner[Node cmp.Ordered] struct {
	g         Graph[Node]
	cost      CostFunc[Node]
	heuristic Heuristic[Node]
	source    Node
	target    Node

	dist     map[Node]float64   // discovered node → tentative cost; absent ⇒ +Inf
	prev     map[Node]Node      // discovered node → best predecessor
	visited  map[Node]struct{}  // finalized nodes; costs in dist are final
	pq       frontier[Node]     // min-heap ordered by (priority, node ID)
	expanded int                // nodes finalized so far
	budget   int                // 0 = unlimited
}

// run executes the main loop and assembles the Result.
func (r *runner[Node]) run() (Result[Node], error) {
	// 1) Seed the frontier with the source at priority h(source);
	//    its tentative cost is zero.
	r.dist[r.source] = 0
	heap.Init(&r.pq)
	heap.Push(&r.pq, frontierEntry[Node]{node: r.source, priority: r.estimate(r.source)})

	for r.pq.Len() > 0 {
		// 2) Pop the minimum-priority entry.
		entry := heap.Pop(&r.pq).(frontierEntry[Node])
		u := entry.node

		// 3) Skip stale entries: a better entry for u was already finalized.
		if _, done := r.visited[u]; done {
			continue
		}

		// 4) Enforce the expansion budget before finalizing one node too many.
		if r.budget > 0 && r.expanded >= r.budget {
			return unreachable[Node](r.expanded), ErrBudgetExceeded
		}

		// 5) Finalize u: its tentative cost is now its true shortest cost.
		r.visited[u] = struct{}{}
		r.expanded++

		// 6) Early exit once the target itself is finalized.
		if u == r.target {
			return r.finish()
		}

		// 7) Relax every outgoing neighbor of u.
		if err := r.relax(u); err != nil {
			return unreachable[Node](r.expanded), err
		}
	}

	// 8) Frontier exhausted without popping the target: unreachable, which
	//    is a result, not an error.
	return unreachable[Node](r.expanded), nil
}

// relax attempts to improve the tentative cost of every unvisited outgoing
// neighbor of u, recording predecessors and pushing improved frontier
// entries. Assumes dist[u] is final.
func (r *runner[Node]) relax(u Node) error {
	neighbors, err := r.g.Neighbors(u)
	if err != nil {
		return fmt.Errorf("search: neighbors of %v: %w", u, err)
	}

	du := r.dist[u]
	for _, v := range neighbors {
		if _, done := r.visited[v]; done {
			continue
		}

		// Minimum weight across parallel edges u→v; absence of the chosen
		// attribute means no usable connection.
		w, ok := r.cost(u, v)
		if !ok {
			continue
		}
		if w < 0 {
			return fmt.Errorf("%w: edge %v→%v weight=%g", ErrNegativeWeight, u, v, w)
		}

		// Relax only on strict improvement; ties keep the first predecessor
		// and push no duplicate entry.
		candidate := du + w
		if current, seen := r.dist[v]; seen && candidate >= current {
			continue
		}
		r.dist[v] = candidate
		r.prev[v] = u
		heap.Push(&r.pq, frontierEntry[Node]{node: v, priority: candidate + r.estimate(v)})
	}

	return nil
}

// finish builds the successful Result after the target was finalized.
func (r *runner[Node]) finish() (Result[Node], error) {
	path, ok := ReconstructPath(r.prev, r.source, r.target)
	if !ok {
		// The target was popped, so its predecessor chain must terminate at
		// the source; a broken chain here is a programming error in the
		// kernel, reported as an unreachable result rather than a panic.
		return unreachable[Node](r.expanded), nil
	}

	return Result[Node]{
		Path:     path,
		Cost:     r.dist[r.target],
		Expanded: r.expanded,
		Reached:  true,
	}, nil
}

// estimate applies the heuristic, treating nil as the constant zero function.
func (r *runner[Node]) estimate(n Node) float64 {
	if r.heuristic == nil {
		return 0
	}

	return r.heuristic(n)
}

// frontierEntry is one (priority, node) pair in the frontier. Entries are
// immutable once pushed; improvements push new entries instead of mutating.
type frontierEntry[Node cmp.Ordered] struct {
	node     Node
	priority float64
}

// frontier is a binary min-heap of frontierEntry ordered by priority, with
// ties broken by ascending node identifier so pop order is deterministic for
// identical input.
type frontier[Node cmp.Ordered] []frontierEntry[Node]

// Len returns the number of entries in the frontier.
func (f frontier[Node]) Len() int { return len(f) }

// Less orders by priority, then by node ID for reproducible tie-breaks.
func (f frontier[Node]) Less(i, j int) bool {
	if f[i].priority != f[j].priority {
		return f[i].priority < f[j].priority
	}

	return f[i].node < f[j].node
}

// Swap swaps two entries.
func (f frontier[Node]) Swap(i, j int) { f[i], f[j] = f[j], f[i] }

// Push appends a new entry; called by heap.Push.
func (f *frontier[Node]) Push(x interface{}) { *f = append(*f, x.(frontierEntry[Node])) }

// Pop removes and returns the last entry; called by heap.Pop.
func (f *frontier[Node]) Pop() interface{} {
	old := *f
	n := len(old)
	entry := old[n-1]
	*f = old[:n-1]

	return entry
}
