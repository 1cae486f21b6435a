package roadnet

import (
	"fmt"
	"sort"
	"sync"
)

// Graph is a directed road multigraph with coordinate-bearing nodes.
//
// The zero value is not usable; call NewGraph. All methods are safe for
// concurrent use: mutations take the write lock, queries the read lock.
// A Graph must not be mutated while searches run over it: the lock makes
// interleaved calls memory-safe, but a search spanning several Neighbors
// calls still assumes the topology is frozen for its whole duration.
type Graph struct {
	mu sync.RWMutex

	// nodes maps node ID → node (ID, latitude, longitude).
	nodes map[int64]Node

	// adjacency[(from)Node.ID][(to)Node.ID] = parallel edges from→to.
	adjacency map[int64]map[int64][]Edge

	// edgeCount tracks the total number of directed edges, parallels included.
	edgeCount int
}

// NewGraph creates an empty road graph.
// Complexity: O(1).
func NewGraph() *Graph {
	return &Graph{
		nodes:     make(map[int64]Node),
		adjacency: make(map[int64]map[int64][]Edge),
	}
}

// AddNode registers a node with its WGS-84 position.
//
// Errors:
//   - ErrBadCoordinate if lat ∉ [-90,90] or lon ∉ [-180,180].
//   - ErrDuplicateNode if the ID is already present.
//
// Complexity: O(1).
func (g *Graph) AddNode(id int64, lat, lon float64) error {
	if lat < -90 || lat > 90 || lon < -180 || lon > 180 {
		return fmt.Errorf("%w: node %d at (%g, %g)", ErrBadCoordinate, id, lat, lon)
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	if _, exists := g.nodes[id]; exists {
		return fmt.Errorf("%w: node %d", ErrDuplicateNode, id)
	}
	g.nodes[id] = Node{ID: id, Lat: lat, Lon: lon}

	return nil
}

// AddEdge appends one directed edge from→to carrying the given attributes.
// Calling it again for the same ordered pair adds a parallel edge; it never
// replaces an existing one.
//
// The attribute map is copied, so the caller may reuse or mutate its map
// afterwards without affecting the graph.
//
// Errors:
//   - ErrNodeNotFound if either endpoint has not been added.
//   - ErrMissingLength if attrs lacks AttrLength.
//   - ErrNegativeAttribute if any attribute value is negative.
//
// Complexity: O(len(attrs)).
func (g *Graph) AddEdge(from, to int64, attrs map[string]float64) error {
	if _, ok := attrs[AttrLength]; !ok {
		return fmt.Errorf("%w: edge %d→%d", ErrMissingLength, from, to)
	}
	for name, value := range attrs {
		if value < 0 {
			return fmt.Errorf("%w: edge %d→%d %s=%g", ErrNegativeAttribute, from, to, name, value)
		}
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	if _, ok := g.nodes[from]; !ok {
		return fmt.Errorf("%w: edge source %d", ErrNodeNotFound, from)
	}
	if _, ok := g.nodes[to]; !ok {
		return fmt.Errorf("%w: edge target %d", ErrNodeNotFound, to)
	}

	copied := make(map[string]float64, len(attrs))
	for name, value := range attrs {
		copied[name] = value
	}

	out, ok := g.adjacency[from]
	if !ok {
		out = make(map[int64][]Edge)
		g.adjacency[from] = out
	}
	out[to] = append(out[to], Edge{From: from, To: to, Attrs: copied})
	g.edgeCount++

	return nil
}

// HasNode reports whether a node with the given ID exists.
// Complexity: O(1).
func (g *Graph) HasNode(id int64) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	_, ok := g.nodes[id]

	return ok
}

// Coordinates returns the (latitude, longitude) of a node and ok=true, or
// ok=false when the node does not exist. This is the only node data the
// search heuristic ever reads.
// Complexity: O(1).
func (g *Graph) Coordinates(id int64) (lat, lon float64, ok bool) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	n, ok := g.nodes[id]

	return n.Lat, n.Lon, ok
}

// Neighbors returns the distinct outgoing neighbor IDs of the given node in
// ascending order. Nodes connected only by parallel edges appear once.
//
// Errors: ErrNodeNotFound if the node does not exist.
// Complexity: O(d log d) where d = out-degree.
func (g *Graph) Neighbors(id int64) ([]int64, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	if _, ok := g.nodes[id]; !ok {
		return nil, fmt.Errorf("%w: node %d", ErrNodeNotFound, id)
	}

	out := g.adjacency[id]
	neighbors := make([]int64, 0, len(out))
	for to := range out {
		neighbors = append(neighbors, to)
	}
	// Ascending order keeps relaxation order, and therefore whole search
	// runs, reproducible across executions.
	sort.Slice(neighbors, func(i, j int) bool { return neighbors[i] < neighbors[j] })

	return neighbors, nil
}

// EdgeWeight returns the minimum value of the named attribute across all
// parallel edges from→to, and ok=true. ok=false means no edge between the
// pair carries that attribute (or no edge exists at all); absence is the
// caller's "no connection" signal, not an error.
// Complexity: O(p) where p = number of parallel edges for the pair.
func (g *Graph) EdgeWeight(from, to int64, attribute string) (float64, bool) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	parallels := g.adjacency[from][to]

	best := 0.0
	found := false
	for _, e := range parallels {
		value, ok := e.Attrs[attribute]
		if !ok {
			continue
		}
		if !found || value < best {
			best = value
			found = true
		}
	}

	return best, found
}

// EdgesBetween returns copies of all parallel edges from→to, in insertion
// order. The result is nil when no edge exists.
// Complexity: O(p · a) where p = parallel edges, a = attributes per edge.
func (g *Graph) EdgesBetween(from, to int64) []Edge {
	g.mu.RLock()
	defer g.mu.RUnlock()

	parallels := g.adjacency[from][to]
	if len(parallels) == 0 {
		return nil
	}

	edges := make([]Edge, len(parallels))
	for i, e := range parallels {
		attrs := make(map[string]float64, len(e.Attrs))
		for name, value := range e.Attrs {
			attrs[name] = value
		}
		edges[i] = Edge{From: e.From, To: e.To, Attrs: attrs}
	}

	return edges
}

// Nodes returns all node IDs in ascending order.
// Complexity: O(V log V).
func (g *Graph) Nodes() []int64 {
	g.mu.RLock()
	defer g.mu.RUnlock()

	ids := make([]int64, 0, len(g.nodes))
	for id := range g.nodes {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	return ids
}

// NodeCount returns the number of nodes.
// Complexity: O(1).
func (g *Graph) NodeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.nodes)
}

// EdgeCount returns the number of directed edges, counting parallels.
// Complexity: O(1).
func (g *Graph) EdgeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.edgeCount
}
