// Package geo_test verifies the haversine distance helpers: known reference
// distances, symmetry, and numerical stability at coincident and antipodal
// point pairs where a naive formulation produces NaN.
package geo_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/roadsearch/geo"
)

// oneDegreeMeters is the arc length of one degree on a sphere with the
// package's mean Earth radius: R·π/180.
const oneDegreeMeters = geo.EarthRadiusMeters * math.Pi / 180.0

func TestDistance_CoincidentPointsAreZero(t *testing.T) {
	if got := geo.Distance(24.8607, 67.0011, 24.8607, 67.0011); got != 0 {
		t.Errorf("Distance(same point) = %g; want exactly 0", got)
	}
}

func TestDistance_OneDegreeAlongEquator(t *testing.T) {
	got := geo.Distance(0, 0, 0, 1)
	if math.Abs(got-oneDegreeMeters) > 1e-6 {
		t.Errorf("Distance(0,0 → 0,1) = %f; want %f", got, oneDegreeMeters)
	}
}

func TestDistance_EquatorToPole(t *testing.T) {
	want := geo.EarthRadiusMeters * math.Pi / 2
	got := geo.Distance(0, 0, 90, 0)
	if math.Abs(got-want) > 1e-6 {
		t.Errorf("Distance(equator → pole) = %f; want %f", got, want)
	}
}

func TestDistance_AntipodalPointsAreStable(t *testing.T) {
	// Antipodal pairs drive the haversine intermediate to its upper bound;
	// without clamping the Asin argument this yields NaN.
	want := geo.EarthRadiusMeters * math.Pi
	got := geo.Distance(0, 0, 0, 180)
	if math.IsNaN(got) {
		t.Fatal("Distance(antipodal) = NaN; clamping failed")
	}
	if math.Abs(got-want) > 1e-3 {
		t.Errorf("Distance(antipodal) = %f; want %f", got, want)
	}
}

func TestDistance_Symmetry(t *testing.T) {
	a := geo.Distance(24.90210, 67.16766, 24.81407, 67.01060)
	b := geo.Distance(24.81407, 67.01060, 24.90210, 67.16766)
	if a != b {
		t.Errorf("Distance not symmetric: %f vs %f", a, b)
	}
	if a <= 0 {
		t.Errorf("Distance between distinct points = %f; want > 0", a)
	}
}

func TestDistanceKm_MatchesMeters(t *testing.T) {
	m := geo.Distance(0, 0, 10, 10)
	km := geo.DistanceKm(0, 0, 10, 10)
	if math.Abs(km*1000-m) > 1e-9 {
		t.Errorf("DistanceKm·1000 = %f; want %f", km*1000, m)
	}
}
