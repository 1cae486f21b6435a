package compare

import (
	"fmt"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"

	"github.com/katalvlaran/roadsearch/roadnet"
)

// GeoJSON renders the reachable routes of the reports as a GeoJSON
// FeatureCollection: one LineString per route, with scenario name, algorithm,
// distance and expansion count as feature properties. The bytes are ready to
// drop into any GeoJSON viewer.
func GeoJSON(g *roadnet.Graph, reports []Report) ([]byte, error) {
	fc := geojson.NewFeatureCollection()

	add := func(scenario, algorithm string, r Route) error {
		if !r.Reached {
			return nil
		}
		line := make(orb.LineString, 0, len(r.Path))
		for _, id := range r.Path {
			lat, lon, ok := g.Coordinates(id)
			if !ok {
				return fmt.Errorf("compare: geojson: node %d has no coordinates", id)
			}
			line = append(line, orb.Point{lon, lat})
		}

		feature := geojson.NewFeature(line)
		feature.Properties["scenario"] = scenario
		feature.Properties["algorithm"] = algorithm
		feature.Properties["distance_m"] = r.Meters
		feature.Properties["expanded"] = r.Expanded
		fc.Append(feature)

		return nil
	}

	for _, rep := range reports {
		if err := add(rep.Scenario, "dijkstra", rep.Dijkstra); err != nil {
			return nil, err
		}
		if err := add(rep.Scenario, fmt.Sprintf("astar(%.2g)", rep.WeightFactor), rep.AStar); err != nil {
			return nil, err
		}
		if rep.Fastest != nil {
			if err := add(rep.Scenario, "fastest", *rep.Fastest); err != nil {
				return nil, err
			}
		}
	}

	data, err := fc.MarshalJSON()
	if err != nil {
		return nil, fmt.Errorf("compare: geojson: %w", err)
	}

	return data, nil
}
