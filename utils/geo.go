package utils

import "math"

// EarthRadiusKm is the equatorial radius used for every spherical computation.
const EarthRadiusKm = 6378.1

// AngularRadius converts a distance on the earth's surface to radians.
func AngularRadius(km float64) float64 {
	return km / EarthRadiusKm
}

// GreatCircleKm is the haversine distance between two [lng, lat] points.
func GreatCircleKm(lng1, lat1, lng2, lat2 float64) float64 {
	toRad := func(d float64) float64 { return d * math.Pi / 180 }
	dLat := toRad(lat2 - lat1)
	dLng := toRad(lng2 - lng1)
	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(toRad(lat1))*math.Cos(toRad(lat2))*math.Sin(dLng/2)*math.Sin(dLng/2)
	return 2 * EarthRadiusKm * math.Asin(math.Min(1, math.Sqrt(a)))
}

// ValidCoordinates reports whether lng and lat are inside their ranges.
func ValidCoordinates(lng, lat float64) bool {
	return lng >= -180 && lng <= 180 && lat >= -90 && lat <= 90 && !math.IsNaN(lng) && !math.IsNaN(lat)
}
