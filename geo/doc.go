// Package geo provides great-circle distance helpers over WGS-84
// coordinates, used as the admissible heuristic input for weighted A*
// and for deriving road-segment lengths from raw OSM way geometry.
//
// Overview:
//
//   - Distance / DistanceKm implement the haversine formulation of the
//     spherical law of cosines with a mean Earth radius of 6 371 000 m.
//   - The intermediate square-root argument is clamped to [0,1] before the
//     inverse trigonometric call, so coincident and antipodal point pairs
//     never produce a NaN from floating-point overshoot.
//   - The straight-line distance between two road-network nodes never
//     exceeds the road distance between them, which is exactly the
//     admissibility property A* needs from its heuristic.
//
// Complexity: every function here is O(1) time and space.
//
// See also:
//
//   - search.AStar: consumes Distance via a bound heuristic value holder.
//   - osmload: sums Distance over way geometry to obtain edge lengths.
package geo
