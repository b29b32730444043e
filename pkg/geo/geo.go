// Package geo implements great-circle distance over a spherical earth.
// Coordinates are stored as supplied by callers; nothing here geocodes.
package geo

import "math"

// EarthRadiusKM is the fixed sphere radius; no ellipsoidal correction.
const EarthRadiusKM = 6371.0

// Tolerance absorbs floating-point noise so a radius-0 query still matches
// an address at exactly the center point.
const Tolerance = 1e-9

type Point struct {
	Lat float64
	Lng float64
}

// Valid reports whether the point lies inside the WGS84 coordinate ranges.
func (p Point) Valid() bool {
	return p.Lat >= -90 && p.Lat <= 90 && p.Lng >= -180 && p.Lng <= 180
}

// Distance returns the haversine distance between two points in kilometers.
func Distance(a, b Point) float64 {
	latA := radians(a.Lat)
	latB := radians(b.Lat)
	dLat := radians(b.Lat - a.Lat)
	dLng := radians(b.Lng - a.Lng)

	sinLat := math.Sin(dLat / 2)
	sinLng := math.Sin(dLng / 2)
	h := sinLat*sinLat + math.Cos(latA)*math.Cos(latB)*sinLng*sinLng

	return 2 * EarthRadiusKM * math.Asin(math.Min(1, math.Sqrt(h)))
}

// WithinRadius reports whether b lies within radiusKM of a, allowing for
// floating-point tolerance at the boundary.
func WithinRadius(a, b Point, radiusKM float64) bool {
	return Distance(a, b) <= radiusKM+Tolerance
}

func radians(deg float64) float64 {
	return deg * math.Pi / 180
}
