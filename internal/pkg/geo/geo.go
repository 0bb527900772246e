package geo

import "math"

const earthRadiusMeters = 6371000

// HaversineDistance returns the great-circle distance between two
// coordinates in meters.
func HaversineDistance(lat1, lon1, lat2, lon2 float64) float64 {
	dLat := (lat2 - lat1) * (math.Pi / 180.0)
	dLon := (lon2 - lon1) * (math.Pi / 180.0)

	lat1Rad := lat1 * (math.Pi / 180.0)
	lat2Rad := lat2 * (math.Pi / 180.0)

	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Sin(dLon/2)*math.Sin(dLon/2)*math.Cos(lat1Rad)*math.Cos(lat2Rad)

	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))

	return earthRadiusMeters * c
}

// Fence is a circular geofence around a single anchor point. It is built
// once from configuration and passed in wherever a location check is needed.
type Fence struct {
	Latitude     float64
	Longitude    float64
	RadiusMeters float64
}

// Verdict is the result of checking a coordinate against a Fence.
// DistanceMeters is rounded to the nearest whole meter for reporting;
// the allow/deny comparison uses the unrounded distance.
type Verdict struct {
	Allowed        bool
	DistanceMeters float64
}

// Check reports whether the given coordinate lies within the fence radius.
func (f Fence) Check(lat, lng float64) Verdict {
	d := HaversineDistance(lat, lng, f.Latitude, f.Longitude)
	return Verdict{
		Allowed:        d <= f.RadiusMeters,
		DistanceMeters: math.Round(d),
	}
}
