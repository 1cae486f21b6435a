// Package search provides an instrumented, priority-queue-based shortest-path
// engine for weighted directed multigraphs with non-negative edge weights.
//
// Overview:
//
//   - One generic kernel (Search) drives every traversal: expand the
//     lowest-priority frontier node, relax its outgoing neighbors, track the
//     visited set, count expansions. It is parameterized by a cost accessor
//     and an optional heuristic, nothing else.
//   - Dijkstra is the kernel with the constant-zero heuristic. Its returned
//     cost is optimal for any graph with non-negative weights and serves as
//     the baseline for algorithmic comparison.
//   - AStar is the kernel with a geodesic heuristic scaled by an explicit,
//     caller-supplied weight factor. Factor ≤ 1 with an admissible geodesic
//     estimate preserves optimality; factor > 1 deliberately trades path
//     quality for fewer expansions. There is no default factor: the
//     speed/optimality trade-off is always the caller's visible choice.
//   - Every Result carries the nodes-expanded counter alongside the path and
//     total cost, so two algorithms can be compared on search effort, not
//     just wall-clock time.
//
// Key invariants:
//
//   - Once a node is popped and marked visited its cost is final and it is
//     never revisited; this monotonicity (valid only under non-negative
//     weights) is what makes the early exit at the target correct.
//   - Stale frontier entries are discarded lazily at pop time; no
//     decrease-key operation is ever needed, a plain binary heap suffices.
//   - Tentative-cost and predecessor maps are sparse: a node absent from the
//     cost map is semantically at +Inf, so memory grows with the explored
//     region, not with the whole graph.
//   - Equal frontier priorities break ties on the node identifier, so
//     identical inputs reproduce identical runs (Node is cmp.Ordered for
//     exactly this reason).
//
// Complexity:
//
//	– Time:  O((V + E) log V)  (each node finalized at most once, each
//	   relaxation pushes at most one frontier entry)
//	– Space: O(V + E)          (sparse cost/predecessor maps plus the heap
//	   under lazy decrease-key)
//
// Errors (sentinel):
//
//	– ErrNilGraph        if the graph is nil.
//	– ErrNilCost         if the kernel is invoked without a cost accessor.
//	– ErrUnknownNode     if source or target is absent from the graph;
//	                      fatal to the call, surfaced before any expansion.
//	– ErrNegativeWeight  if a negative weight is met during relaxation.
//	– ErrBadWeightFactor if AStar is given a negative weight factor.
//	– ErrBudgetExceeded  if WithMaxExpansions was set and the frontier would
//	                      finalize one node too many.
//
// An exhausted frontier is NOT an error: an unreachable target yields
// Result{Cost: +Inf, Reached: false} with a nil path.
//
// Thread safety:
//
//   - Each call owns its frontier, visited set, and cost/predecessor maps;
//     the kernel never mutates the graph. Concurrent searches over the same
//     immutable graph are safe.
//   - There is no cancellation primitive; budget a search with
//     WithMaxExpansions and treat ErrBudgetExceeded as the distinct
//     "budget exceeded" outcome.
//
// See also:
//
//   - roadnet.Graph: the road multigraph satisfying the Graph capability.
//   - geo.Distance: the great-circle estimate behind the AStar heuristic.
//   - compare: head-to-head instrumentation built on top of this package.
package search
