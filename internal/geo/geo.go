// Package geo computes great-circle distances between coordinates
// using the haversine formula.
package geo

import "math"

const (
	// EarthRadiusKm is the mean radius of the Earth in kilometers.
	EarthRadiusKm = 6371

	// DefaultRadiusKm is the fallback proximity-search radius.
	DefaultRadiusKm = 5.0
)

// Distance returns the great-circle distance in kilometers between two
// points, rounded to 2 decimal places.
//
// Haversine:
//
//	a = sin²(Δlat/2) + cos(lat1)·cos(lat2)·sin²(Δlng/2)
//	c = 2·atan2(√a, √(1−a))
//	d = R·c
func Distance(lat1, lng1, lat2, lng2 float64) float64 {
	lat1Rad := lat1 * math.Pi / 180
	lng1Rad := lng1 * math.Pi / 180
	lat2Rad := lat2 * math.Pi / 180
	lng2Rad := lng2 * math.Pi / 180

	deltaLat := lat2Rad - lat1Rad
	deltaLng := lng2Rad - lng1Rad

	a := math.Sin(deltaLat/2)*math.Sin(deltaLat/2) +
		math.Cos(lat1Rad)*math.Cos(lat2Rad)*
			math.Sin(deltaLng/2)*math.Sin(deltaLng/2)

	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))

	return math.Round(EarthRadiusKm*c*100) / 100
}

// IsWithinRadius reports whether two points are at most radiusKm apart.
func IsWithinRadius(lat1, lng1, lat2, lng2, radiusKm float64) bool {
	return Distance(lat1, lng1, lat2, lng2) <= radiusKm
}

// IsValidCoordinate reports whether lat/lng form a valid coordinate pair.
func IsValidCoordinate(lat, lng float64) bool {
	return lat >= -90 && lat <= 90 && lng >= -180 && lng <= 180
}
