// Package osmload implements the .osm.pbf → roadnet.Graph loading pipeline.
package osmload

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"runtime"

	"github.com/paulmach/osm"
	"github.com/paulmach/osm/osmpbf"

	"github.com/katalvlaran/roadsearch/geo"
	"github.com/katalvlaran/roadsearch/roadnet"
)

// Sentinel errors for the loading pipeline.
var (
	// ErrNoHighways indicates the extract contained no drivable ways.
	ErrNoHighways = errors.New("osmload: no drivable highways in extract")

	// ErrEmptyGraph indicates a Snapper was requested over an empty graph.
	ErrEmptyGraph = errors.New("osmload: graph has no nodes")
)

// Options configures the loading pipeline.
//
// Procs  – parallelism of the pbf decoder (default runtime.GOMAXPROCS(0)).
// Logger – progress/diagnostics sink (default slog.Default()).
type Options struct {
	Procs  int
	Logger *slog.Logger
}

// Option is a functional option for Load.
type Option func(*Options)

// WithProcs sets how many goroutines the pbf decoder may use.
// Non-positive values are ignored.
func WithProcs(n int) Option {
	return func(o *Options) {
		if n > 0 {
			o.Procs = n
		}
	}
}

// WithLogger routes the loader's progress logging to the given logger.
// nil is ignored.
func WithLogger(l *slog.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// segment is one graph edge in the making: a junction-to-junction node chain
// plus the traversal attributes decoded from its way's tags.
type segment struct {
	nodes  []int64
	speed  float64 // km/h
	oneway bool
}

// Load reads an .osm.pbf extract and assembles the drivable road graph.
//
// The file is scanned three times: first the drivable ways (to count how
// many ways touch each node; shared nodes are junctions), then the nodes
// (to capture coordinates of the ones in use), then the ways again (to cut
// them into junction-to-junction segments). Every segment becomes a directed
// edge with "length" (meters) and "travel_time" (seconds) attributes, plus
// the reverse edge unless the way is one-way.
//
// Errors: ErrNoHighways when nothing drivable was found, otherwise I/O and
// decoding failures from the underlying scanner.
func Load(ctx context.Context, path string, opts ...Option) (*roadnet.Graph, error) {
	cfg := Options{Procs: runtime.GOMAXPROCS(0), Logger: slog.Default()}
	for _, opt := range opts {
		opt(&cfg)
	}

	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("osmload: open extract: %w", err)
	}
	defer file.Close()

	counts, err := scanWayUsage(ctx, file, cfg.Procs)
	if err != nil {
		return nil, err
	}
	if len(counts) == 0 {
		return nil, fmt.Errorf("%w: %s", ErrNoHighways, path)
	}

	if _, err = file.Seek(0, io.SeekStart); err != nil {
		return nil, fmt.Errorf("osmload: rewind extract: %w", err)
	}
	coords, err := scanCoordinates(ctx, file, cfg.Procs, counts)
	if err != nil {
		return nil, err
	}

	if _, err = file.Seek(0, io.SeekStart); err != nil {
		return nil, fmt.Errorf("osmload: rewind extract: %w", err)
	}
	segments, err := scanSegments(ctx, file, cfg.Procs, counts)
	if err != nil {
		return nil, err
	}

	graph, skipped, err := buildGraph(coords, segments)
	if err != nil {
		return nil, err
	}
	if graph.EdgeCount() == 0 {
		return nil, fmt.Errorf("%w: %s", ErrNoHighways, path)
	}

	cfg.Logger.Info("road graph loaded",
		"extract", path,
		"nodes", graph.NodeCount(),
		"edges", graph.EdgeCount(),
		"skipped_segments", skipped,
	)

	return graph, nil
}

// scanWayUsage counts, for every node referenced by a drivable way, how many
// times it is used. Way endpoints are counted once extra so they always
// classify as junctions.
func scanWayUsage(ctx context.Context, file *os.File, procs int) (map[int64]int, error) {
	counts := make(map[int64]int)

	scanner := osmpbf.New(ctx, file, procs)
	defer scanner.Close()
	scanner.SkipNodes = true
	scanner.SkipRelations = true

	for scanner.Scan() {
		way, ok := scanner.Object().(*osm.Way)
		if !ok || !drivable(way.Tags) {
			continue
		}
		n := len(way.Nodes)
		if n < 2 {
			continue
		}
		for _, wn := range way.Nodes {
			counts[int64(wn.ID)]++
		}
		counts[int64(way.Nodes[0].ID)]++
		counts[int64(way.Nodes[n-1].ID)]++
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("osmload: scan ways: %w", err)
	}

	return counts, nil
}

// scanCoordinates captures the position of every node the way pass marked as
// used.
func scanCoordinates(ctx context.Context, file *os.File, procs int, counts map[int64]int) (map[int64][2]float64, error) {
	coords := make(map[int64][2]float64, len(counts))

	scanner := osmpbf.New(ctx, file, procs)
	defer scanner.Close()
	scanner.SkipWays = true
	scanner.SkipRelations = true

	for scanner.Scan() {
		node, ok := scanner.Object().(*osm.Node)
		if !ok {
			continue
		}
		id := int64(node.ID)
		if _, used := counts[id]; !used {
			continue
		}
		coords[id] = [2]float64{node.Lat, node.Lon}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("osmload: scan nodes: %w", err)
	}

	return coords, nil
}

// scanSegments cuts every drivable way into junction-to-junction segments
// carrying the decoded speed and oneway attributes.
func scanSegments(ctx context.Context, file *os.File, procs int, counts map[int64]int) ([]segment, error) {
	var segments []segment

	scanner := osmpbf.New(ctx, file, procs)
	defer scanner.Close()
	scanner.SkipNodes = true
	scanner.SkipRelations = true

	for scanner.Scan() {
		way, ok := scanner.Object().(*osm.Way)
		if !ok || !drivable(way.Tags) {
			continue
		}

		chain := make([]int64, len(way.Nodes))
		for i, wn := range way.Nodes {
			chain[i] = int64(wn.ID)
		}

		highway := way.Tags.Find("highway")
		speed := speedKmh(highway, way.Tags.Find("maxspeed"))
		oneway := isOneway(highway, way.Tags.Find("oneway"))
		for _, nodes := range splitWay(chain, counts) {
			segments = append(segments, segment{nodes: nodes, speed: speed, oneway: oneway})
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("osmload: scan segments: %w", err)
	}

	return segments, nil
}

// buildGraph assembles the roadnet.Graph from coordinates and segments.
// Segments referencing a node whose coordinates never appeared in the
// extract are dropped and counted in skipped; everything else is fatal.
func buildGraph(coords map[int64][2]float64, segments []segment) (*roadnet.Graph, int, error) {
	g := roadnet.NewGraph()
	skipped := 0

segments:
	for _, s := range segments {
		length := 0.0
		for i := 1; i < len(s.nodes); i++ {
			a, okA := coords[s.nodes[i-1]]
			b, okB := coords[s.nodes[i]]
			if !okA || !okB {
				skipped++
				continue segments
			}
			length += geo.Distance(a[0], a[1], b[0], b[1])
		}

		from, to := s.nodes[0], s.nodes[len(s.nodes)-1]
		for _, id := range []int64{from, to} {
			if g.HasNode(id) {
				continue
			}
			c := coords[id]
			if err := g.AddNode(id, c[0], c[1]); err != nil {
				return nil, skipped, fmt.Errorf("osmload: add node %d: %w", id, err)
			}
		}

		// speed is always positive (speedKmh never returns ≤ 0).
		attrs := map[string]float64{
			roadnet.AttrLength:     length,
			roadnet.AttrTravelTime: length / (s.speed / 3.6),
		}
		if err := g.AddEdge(from, to, attrs); err != nil {
			return nil, skipped, fmt.Errorf("osmload: add edge %d→%d: %w", from, to, err)
		}
		if !s.oneway {
			if err := g.AddEdge(to, from, attrs); err != nil {
				return nil, skipped, fmt.Errorf("osmload: add edge %d→%d: %w", to, from, err)
			}
		}
	}

	return g, skipped, nil
}
