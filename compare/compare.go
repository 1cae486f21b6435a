package compare

import (
	"fmt"
	"time"

	"github.com/katalvlaran/roadsearch/roadnet"
	"github.com/katalvlaran/roadsearch/search"
)

// Locator maps raw WGS-84 coordinates onto graph nodes.
// osmload.Snapper satisfies it; tests substitute a fixed table.
type Locator interface {
	Nearest(lat, lon float64) (int64, error)
}

// Route is one executed search: the node path, its summed attributes and the
// instrumentation the engine reported.
type Route struct {
	Path     []int64
	Meters   float64
	Seconds  float64 // travel time along the path, 0 when unavailable
	Expanded int
	Elapsed  time.Duration
	Reached  bool
}

// Report is the outcome of one scenario: Dijkstra and weighted A* between the
// same snapped endpoints, plus the travel-time-optimal route when the graph
// carries travel times.
//
// Speedup is Dijkstra elapsed over A* elapsed; NodeReduction is the fraction
// of Dijkstra's expansions that A* avoided. Both are 0 when the target was
// unreachable.
type Report struct {
	Scenario     string
	SourceNode   int64
	TargetNode   int64
	WeightFactor float64

	Dijkstra Route
	AStar    Route
	Fastest  *Route

	Speedup       float64
	NodeReduction float64
}

// Run executes one scenario: snap both coordinates, run Dijkstra and weighted
// A* over edge lengths, and a travel-time Dijkstra when those attributes
// resolve. Unreachable targets produce a Report with Reached=false routes,
// not an error.
func Run(g *roadnet.Graph, loc Locator, sc Scenario, weightFactor float64) (Report, error) {
	source, err := loc.Nearest(sc.Source.Lat, sc.Source.Lon)
	if err != nil {
		return Report{}, fmt.Errorf("compare: scenario %q: snap source: %w", sc.Name, err)
	}
	target, err := loc.Nearest(sc.Target.Lat, sc.Target.Lon)
	if err != nil {
		return Report{}, fmt.Errorf("compare: scenario %q: snap target: %w", sc.Name, err)
	}

	report := Report{
		Scenario:     sc.Name,
		SourceNode:   source,
		TargetNode:   target,
		WeightFactor: weightFactor,
	}

	report.Dijkstra, err = timedRoute(g, func() (search.Result[int64], error) {
		return search.Dijkstra[int64](g, source, target)
	})
	if err != nil {
		return Report{}, fmt.Errorf("compare: scenario %q: dijkstra: %w", sc.Name, err)
	}

	report.AStar, err = timedRoute(g, func() (search.Result[int64], error) {
		return search.AStar[int64](g, source, target, weightFactor)
	})
	if err != nil {
		return Report{}, fmt.Errorf("compare: scenario %q: astar: %w", sc.Name, err)
	}

	fastest, err := timedRoute(g, func() (search.Result[int64], error) {
		return search.Dijkstra[int64](g, source, target, search.WithAttribute(roadnet.AttrTravelTime))
	})
	if err != nil {
		return Report{}, fmt.Errorf("compare: scenario %q: fastest: %w", sc.Name, err)
	}
	if fastest.Reached {
		report.Fastest = &fastest
	}

	if report.Dijkstra.Reached && report.AStar.Reached {
		if report.AStar.Elapsed > 0 {
			report.Speedup = float64(report.Dijkstra.Elapsed) / float64(report.AStar.Elapsed)
		}
		if report.Dijkstra.Expanded > 0 {
			report.NodeReduction = 1 - float64(report.AStar.Expanded)/float64(report.Dijkstra.Expanded)
		}
	}

	return report, nil
}

// timedRoute runs one search and fills a Route with its timing and the
// length/travel-time sums along the found path.
func timedRoute(g *roadnet.Graph, run func() (search.Result[int64], error)) (Route, error) {
	started := time.Now()
	res, err := run()
	elapsed := time.Since(started)
	if err != nil {
		return Route{}, err
	}

	route := Route{
		Path:     res.Path,
		Expanded: res.Expanded,
		Elapsed:  elapsed,
		Reached:  res.Reached,
	}
	if !res.Reached {
		return route, nil
	}

	route.Meters, err = PathAttribute(g, res.Path, roadnet.AttrLength)
	if err != nil {
		return Route{}, err
	}
	// travel_time is optional on hand-built graphs
	if seconds, err := PathAttribute(g, res.Path, roadnet.AttrTravelTime); err == nil {
		route.Seconds = seconds
	}

	return route, nil
}

// PathAttribute sums the minimum value of the named attribute over each hop
// of path. Returns ErrUnknownAttribute when some hop has no edge carrying it.
func PathAttribute(g *roadnet.Graph, path []int64, attribute string) (float64, error) {
	total := 0.0
	for i := 1; i < len(path); i++ {
		w, ok := g.EdgeWeight(path[i-1], path[i], attribute)
		if !ok {
			return 0, fmt.Errorf("%w: %q on hop %d→%d", ErrUnknownAttribute, attribute, path[i-1], path[i])
		}
		total += w
	}

	return total, nil
}
