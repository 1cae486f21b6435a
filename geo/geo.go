// Package geo implements numerically stable great-circle distances.
package geo

import "math"

const (
	// EarthRadiusMeters is the mean Earth radius used by the haversine formula.
	EarthRadiusMeters = 6_371_000.0

	// EarthRadiusKm is the same radius expressed in kilometers.
	EarthRadiusKm = 6_371.0

	// degToRad converts decimal degrees to radians.
	degToRad = math.Pi / 180.0
)

// Distance returns the great-circle distance in meters between two WGS-84
// coordinates given as (latitude, longitude) pairs in decimal degrees.
//
// The haversine intermediate h = sin²(Δφ/2) + cosφ₁·cosφ₂·sin²(Δλ/2) is
// mathematically confined to [0,1], but floating-point rounding can push it
// marginally outside for coincident or near-antipodal points; it is clamped
// before the Asin call so the result is always a finite, non-negative number.
//
// Complexity: O(1).
func Distance(lat1, lon1, lat2, lon2 float64) float64 {
	dLat := (lat2 - lat1) * degToRad
	dLon := (lon2 - lon1) * degToRad

	sinLat := math.Sin(dLat / 2)
	sinLon := math.Sin(dLon / 2)

	h := sinLat*sinLat + math.Cos(lat1*degToRad)*math.Cos(lat2*degToRad)*sinLon*sinLon
	if h < 0 {
		h = 0
	} else if h > 1 {
		h = 1
	}

	return 2 * EarthRadiusMeters * math.Asin(math.Sqrt(h))
}

// DistanceKm returns the great-circle distance in kilometers between two
// WGS-84 coordinates. Equivalent to Distance(...)/1000.
//
// Complexity: O(1).
func DistanceKm(lat1, lon1, lat2, lon2 float64) float64 {
	return Distance(lat1, lon1, lat2, lon2) / 1000.0
}
