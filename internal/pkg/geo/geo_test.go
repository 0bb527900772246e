package geo

import (
	"math"
	"testing"
)

// latOffset returns the latitude delta (in degrees) that moves a point the
// given number of meters due north. For pure north-south displacement the
// haversine distance is exactly earthRadius * dLat.
func latOffset(meters float64) float64 {
	return (meters / earthRadiusMeters) * (180.0 / math.Pi)
}

func TestHaversineDistance_ZeroForSamePoint(t *testing.T) {
	d := HaversineDistance(12.9716, 77.5946, 12.9716, 77.5946)
	if d != 0 {
		t.Errorf("HaversineDistance(same point) = %v, want 0", d)
	}
}

func TestHaversineDistance_Symmetric(t *testing.T) {
	d1 := HaversineDistance(12.9716, 77.5946, 13.0827, 80.2707)
	d2 := HaversineDistance(13.0827, 80.2707, 12.9716, 77.5946)
	if math.Abs(d1-d2) > 1e-6 {
		t.Errorf("distance not symmetric: %v vs %v", d1, d2)
	}
}

func TestHaversineDistance_NorthwardDisplacement(t *testing.T) {
	cases := []float64{1, 150, 200, 500, 10000}
	for _, meters := range cases {
		d := HaversineDistance(12.9716, 77.5946, 12.9716+latOffset(meters), 77.5946)
		if math.Abs(d-meters) > 0.01 {
			t.Errorf("northward %vm: got %v, want within 0.01m", meters, d)
		}
	}
}

func TestHaversineDistance_KnownCityPair(t *testing.T) {
	// Bangalore to Chennai, roughly 290km great-circle.
	d := HaversineDistance(12.9716, 77.5946, 13.0827, 80.2707)
	if d < 280000 || d > 300000 {
		t.Errorf("Bangalore-Chennai distance = %v, want ~290km", d)
	}
}

func TestFenceCheck(t *testing.T) {
	fence := Fence{Latitude: 12.9716, Longitude: 77.5946, RadiusMeters: 200}

	cases := []struct {
		name    string
		meters  float64
		allowed bool
	}{
		{"inside", 150, true},
		{"near boundary inside", 199, true},
		{"just outside", 201, false},
		{"far outside", 500, false},
	}

	for _, c := range cases {
		v := fence.Check(fence.Latitude+latOffset(c.meters), fence.Longitude)
		if v.Allowed != c.allowed {
			t.Errorf("%s (%vm): Allowed = %v, want %v", c.name, c.meters, v.Allowed, c.allowed)
		}
		if math.Abs(v.DistanceMeters-c.meters) > 1 {
			t.Errorf("%s: DistanceMeters = %v, want within 1m of %v", c.name, v.DistanceMeters, c.meters)
		}
	}
}

func TestFenceCheck_ReportsWholeMeters(t *testing.T) {
	fence := Fence{Latitude: 12.9716, Longitude: 77.5946, RadiusMeters: 200}
	v := fence.Check(fence.Latitude+latOffset(123.4), fence.Longitude)
	if v.DistanceMeters != math.Trunc(v.DistanceMeters) {
		t.Errorf("DistanceMeters = %v, want whole meters", v.DistanceMeters)
	}
}
