package planner

import "math"

const (
	// EarthRadiusKm is the mean radius of Earth in kilometers.
	EarthRadiusKm = 6371.0

	// AverageSpeedKmph is the assumed door-to-door driving speed between places.
	AverageSpeedKmph = 40.0
)

// DistanceKm returns the haversine great-circle distance between two WGS84
// points in kilometers. NaN input propagates.
func DistanceKm(lat1, lon1, lat2, lon2 float64) float64 {
	dLat := degToRad(lat2 - lat1)
	dLon := degToRad(lon2 - lon1)

	sinLat := math.Sin(dLat / 2)
	sinLon := math.Sin(dLon / 2)

	h := sinLat*sinLat +
		math.Cos(degToRad(lat1))*math.Cos(degToRad(lat2))*sinLon*sinLon

	return 2 * EarthRadiusKm * math.Atan2(math.Sqrt(h), math.Sqrt(1-h))
}

// TravelMinutes estimates driving time for a distance at AverageSpeedKmph,
// rounded up to the next whole minute.
func TravelMinutes(distanceKm float64) int {
	if !(distanceKm > 0) {
		return 0
	}
	return int(math.Ceil(distanceKm / AverageSpeedKmph * 60))
}

func distanceBetween(a, b Place) float64 {
	return DistanceKm(a.Latitude, a.Longitude, b.Latitude, b.Longitude)
}

func degToRad(deg float64) float64 {
	return deg * math.Pi / 180
}
