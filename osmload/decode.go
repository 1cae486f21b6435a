package osmload

import (
	"strconv"
	"strings"

	"github.com/paulmach/osm"
)

// drivableHighways is the set of highway classes a car can use, matching the
// usual "drive" network profile of OSM routing tools.
var drivableHighways = map[string]struct{}{
	"motorway":       {},
	"motorway_link":  {},
	"trunk":          {},
	"trunk_link":     {},
	"primary":        {},
	"primary_link":   {},
	"secondary":      {},
	"secondary_link": {},
	"tertiary":       {},
	"tertiary_link":  {},
	"residential":    {},
	"living_street":  {},
	"unclassified":   {},
	"road":           {},
}

// defaultSpeeds maps a highway class to the fallback speed in km/h used when
// the way carries no usable maxspeed tag.
var defaultSpeeds = map[string]float64{
	"motorway":       130,
	"motorway_link":  50,
	"trunk":          130,
	"trunk_link":     50,
	"primary":        90,
	"primary_link":   30,
	"secondary":      90,
	"secondary_link": 30,
	"tertiary":       70,
	"tertiary_link":  30,
	"residential":    40,
	"living_street":  10,
	"unclassified":   25,
	"road":           25,
}

// fallbackSpeedKmh covers classes missing from defaultSpeeds.
const fallbackSpeedKmh = 25.0

// drivable reports whether a way is part of the drivable road network.
func drivable(tags osm.Tags) bool {
	_, ok := drivableHighways[tags.Find("highway")]

	return ok
}

// isOneway reports whether a way may be traversed only in node order.
// Motorways and trunks (and their link ramps) are one-way by construction in
// OSM; everything else is one-way only when tagged so.
func isOneway(highway, onewayTag string) bool {
	switch highway {
	case "motorway", "motorway_link", "trunk", "trunk_link":
		return true
	}
	switch onewayTag {
	case "yes", "true", "1":
		return true
	}

	return false
}

// speedKmh resolves the speed of a way in km/h: a parsable maxspeed tag wins,
// otherwise the highway-class default applies. Handles the common non-numeric
// values "none" (unrestricted → 130) and "walk" (→ 10) and the "N mph" form.
func speedKmh(highway, maxspeed string) float64 {
	switch maxspeed {
	case "":
		// fall through to the class default below
	case "none":
		return 130
	case "walk":
		return 10
	default:
		raw := maxspeed
		factor := 1.0
		if cut, ok := strings.CutSuffix(raw, " mph"); ok {
			raw, factor = cut, 1.609344
		} else if cut, ok := strings.CutSuffix(raw, "mph"); ok {
			raw, factor = strings.TrimSpace(cut), 1.609344
		}
		if v, err := strconv.ParseFloat(strings.TrimSpace(raw), 64); err == nil && v > 0 {
			return v * factor
		}
	}

	if v, ok := defaultSpeeds[highway]; ok {
		return v
	}

	return fallbackSpeedKmh
}

// splitWay cuts a way's node chain at junction nodes (usage count > 1) into
// per-edge segments. Every returned segment starts and ends on a junction;
// interior nodes are pure geometry. Chains shorter than two nodes produce
// nothing.
func splitWay(nodes []int64, counts map[int64]int) [][]int64 {
	if len(nodes) < 2 {
		return nil
	}

	var segments [][]int64
	start := 0
	for i := 1; i < len(nodes); i++ {
		if counts[nodes[i]] > 1 || i == len(nodes)-1 {
			segment := make([]int64, i-start+1)
			copy(segment, nodes[start:i+1])
			segments = append(segments, segment)
			start = i
		}
	}

	return segments
}
