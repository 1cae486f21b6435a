package compare_test

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/roadsearch/compare"
	"github.com/katalvlaran/roadsearch/geo"
	"github.com/katalvlaran/roadsearch/roadnet"
)

// scanLocator snaps by brute-force scan over the graph nodes. Fine for
// fixtures of a handful of nodes.
type scanLocator struct{ g *roadnet.Graph }

func (l scanLocator) Nearest(lat, lon float64) (int64, error) {
	best, bestDist := int64(0), -1.0
	for _, id := range l.g.Nodes() {
		nLat, nLon, _ := l.g.Coordinates(id)
		d := geo.Distance(lat, lon, nLat, nLon)
		if bestDist < 0 || d < bestDist {
			best, bestDist = id, d
		}
	}

	return best, nil
}

// cityFixture is a small connected square plus one isolated node (99).
//
//	1 —— 2
//	|    |
//	4 —— 3        99 (no edges)
//
// Road lengths are 20% above straight-line, so the geodesic heuristic stays
// admissible. Travel time assumes a constant 10 m/s.
func cityFixture(t *testing.T) *roadnet.Graph {
	t.Helper()
	g := roadnet.NewGraph()
	coords := map[int64][2]float64{
		1: {0, 0},
		2: {0, 0.001},
		3: {0.001, 0.001},
		4: {0.001, 0},
		99: {0.01, 0.01},
	}
	for _, id := range []int64{1, 2, 3, 4, 99} {
		c := coords[id]
		require.NoError(t, g.AddNode(id, c[0], c[1]))
	}
	link := func(a, b int64) {
		ca, cb := coords[a], coords[b]
		length := geo.Distance(ca[0], ca[1], cb[0], cb[1]) * 1.2
		attrs := map[string]float64{
			roadnet.AttrLength:     length,
			roadnet.AttrTravelTime: length / 10,
		}
		require.NoError(t, g.AddEdge(a, b, attrs))
		require.NoError(t, g.AddEdge(b, a, attrs))
	}
	link(1, 2)
	link(2, 3)
	link(3, 4)
	link(4, 1)

	return g
}

const validYAML = `
osm_file: city.osm.pbf
weight_factor: 1.5
output: routes.geojson
scenarios:
  - name: across town
    source: {lat: 0.0, lon: 0.0}
    target: {lat: 0.001, lon: 0.001}
`

func TestParseConfig(t *testing.T) {
	cfg, err := compare.ParseConfig([]byte(validYAML))
	require.NoError(t, err)
	assert.Equal(t, "city.osm.pbf", cfg.OSMFile)
	require.NotNil(t, cfg.WeightFactor)
	assert.Equal(t, 1.5, *cfg.WeightFactor)
	assert.Equal(t, "routes.geojson", cfg.Output)
	require.Len(t, cfg.Scenarios, 1)
	assert.Equal(t, "across town", cfg.Scenarios[0].Name)
	assert.Equal(t, 0.001, cfg.Scenarios[0].Target.Lat)
}

func TestParseConfig_Errors(t *testing.T) {
	cases := []struct {
		name string
		yaml string
		want error
	}{
		{
			name: "no scenarios",
			yaml: "osm_file: x.pbf\nweight_factor: 1.0\nscenarios: []\n",
			want: compare.ErrNoScenarios,
		},
		{
			name: "no weight factor",
			yaml: "osm_file: x.pbf\nscenarios:\n  - {name: a, source: {lat: 0, lon: 0}, target: {lat: 1, lon: 1}}\n",
			want: compare.ErrNoWeightFactor,
		},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			_, err := compare.ParseConfig([]byte(c.yaml))
			assert.ErrorIs(t, err, c.want)
		})
	}

	_, err := compare.ParseConfig([]byte("weight_factor: 1.0\nscenarios: [{name: a}]\n"))
	assert.Error(t, err, "missing osm_file must fail")

	_, err = compare.ParseConfig([]byte(
		"osm_file: x.pbf\nweight_factor: -2\nscenarios: [{name: a}]\n"))
	assert.Error(t, err, "negative weight factor must fail")

	_, err = compare.ParseConfig([]byte(
		"osm_file: x.pbf\nweight_factor: 1\nscenarios: [{name: a, source: {lat: 120, lon: 0}}]\n"))
	assert.Error(t, err, "out-of-range coordinates must fail")

	_, err = compare.ParseConfig([]byte("not: [valid"))
	assert.Error(t, err)
}

func TestLoadConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scenarios.yaml")
	require.NoError(t, os.WriteFile(path, []byte(validYAML), 0o644))

	cfg, err := compare.LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, "city.osm.pbf", cfg.OSMFile)

	_, err = compare.LoadConfig(filepath.Join(t.TempDir(), "absent.yaml"))
	assert.Error(t, err)
}

func TestRun(t *testing.T) {
	g := cityFixture(t)
	sc := compare.Scenario{
		Name:   "diagonal",
		Source: compare.Coordinate{Lat: 0, Lon: 0},
		Target: compare.Coordinate{Lat: 0.001, Lon: 0.001},
	}

	rep, err := compare.Run(g, scanLocator{g}, sc, 1.0)
	require.NoError(t, err)

	assert.Equal(t, "diagonal", rep.Scenario)
	assert.Equal(t, int64(1), rep.SourceNode)
	assert.Equal(t, int64(3), rep.TargetNode)
	assert.Equal(t, 1.0, rep.WeightFactor)

	require.True(t, rep.Dijkstra.Reached)
	require.True(t, rep.AStar.Reached)
	assert.Len(t, rep.Dijkstra.Path, 3)
	assert.InDelta(t, rep.Dijkstra.Meters, rep.AStar.Meters, 1e-9,
		"factor 1.0 keeps A* optimal")
	assert.LessOrEqual(t, rep.AStar.Expanded, rep.Dijkstra.Expanded)
	assert.Greater(t, rep.Dijkstra.Meters, 0.0)
	assert.Greater(t, rep.Dijkstra.Seconds, 0.0)

	require.NotNil(t, rep.Fastest)
	assert.True(t, rep.Fastest.Reached)
	assert.InDelta(t, rep.Dijkstra.Meters/10, rep.Fastest.Seconds, 1e-9,
		"uniform speed makes the fastest route the shortest one")

	assert.GreaterOrEqual(t, rep.NodeReduction, 0.0)
}

func TestRun_Unreachable(t *testing.T) {
	g := cityFixture(t)
	sc := compare.Scenario{
		Name:   "to nowhere",
		Source: compare.Coordinate{Lat: 0, Lon: 0},
		Target: compare.Coordinate{Lat: 0.01, Lon: 0.01}, // snaps to isolated 99
	}

	rep, err := compare.Run(g, scanLocator{g}, sc, 1.0)
	require.NoError(t, err)
	assert.Equal(t, int64(99), rep.TargetNode)
	assert.False(t, rep.Dijkstra.Reached)
	assert.False(t, rep.AStar.Reached)
	assert.Nil(t, rep.Fastest)
	assert.Zero(t, rep.Speedup)
	assert.Zero(t, rep.NodeReduction)
}

func TestPathAttribute(t *testing.T) {
	g := cityFixture(t)

	total, err := compare.PathAttribute(g, []int64{1, 2, 3}, roadnet.AttrLength)
	require.NoError(t, err)
	l12, _ := g.EdgeWeight(1, 2, roadnet.AttrLength)
	l23, _ := g.EdgeWeight(2, 3, roadnet.AttrLength)
	assert.InDelta(t, l12+l23, total, 1e-9)

	_, err = compare.PathAttribute(g, []int64{1, 2}, "toll")
	assert.ErrorIs(t, err, compare.ErrUnknownAttribute)

	// Single node and empty paths sum to zero.
	zero, err := compare.PathAttribute(g, []int64{1}, roadnet.AttrLength)
	require.NoError(t, err)
	assert.Zero(t, zero)
}

func runReports(t *testing.T) (*roadnet.Graph, []compare.Report) {
	t.Helper()
	g := cityFixture(t)

	reachable, err := compare.Run(g, scanLocator{g}, compare.Scenario{
		Name:   "diagonal",
		Source: compare.Coordinate{Lat: 0, Lon: 0},
		Target: compare.Coordinate{Lat: 0.001, Lon: 0.001},
	}, 1.0)
	require.NoError(t, err)

	unreachable, err := compare.Run(g, scanLocator{g}, compare.Scenario{
		Name:   "to nowhere",
		Source: compare.Coordinate{Lat: 0, Lon: 0},
		Target: compare.Coordinate{Lat: 0.01, Lon: 0.01},
	}, 1.0)
	require.NoError(t, err)

	return g, []compare.Report{reachable, unreachable}
}

func TestRenderTable(t *testing.T) {
	_, reports := runReports(t)

	var buf bytes.Buffer
	require.NoError(t, compare.RenderTable(&buf, reports))
	out := buf.String()

	assert.Contains(t, out, "SCENARIO")
	assert.Contains(t, out, "diagonal")
	assert.Contains(t, out, "dijkstra")
	assert.Contains(t, out, "astar(1)")
	assert.Contains(t, out, "fastest")
	assert.Contains(t, out, "unreachable")
	assert.Contains(t, out, "average")
}

func TestGeoJSON(t *testing.T) {
	g, reports := runReports(t)

	data, err := compare.GeoJSON(g, reports)
	require.NoError(t, err)

	var fc struct {
		Type     string `json:"type"`
		Features []struct {
			Geometry struct {
				Type        string      `json:"type"`
				Coordinates [][]float64 `json:"coordinates"`
			} `json:"geometry"`
			Properties map[string]any `json:"properties"`
		} `json:"features"`
	}
	require.NoError(t, json.Unmarshal(data, &fc))

	assert.Equal(t, "FeatureCollection", fc.Type)
	// Only the reachable scenario exports: dijkstra, astar, fastest.
	require.Len(t, fc.Features, 3)
	for _, f := range fc.Features {
		assert.Equal(t, "LineString", f.Geometry.Type)
		assert.Len(t, f.Geometry.Coordinates, 3)
		assert.Equal(t, "diagonal", f.Properties["scenario"])
		assert.NotEmpty(t, f.Properties["algorithm"])
	}
}
