package geo_test

import (
	"math"
	"testing"

	"github.com/Iush-Yadav/SafeStreet/internal/domain"
	"github.com/Iush-Yadav/SafeStreet/internal/geo"
)

func TestDistance_Identity(t *testing.T) {
	t.Parallel()

	coords := []domain.Coordinate{
		{Lat: 0, Lng: 0},
		{Lat: 37.7749, Lng: -122.4194},
		{Lat: -90, Lng: 180},
		{Lat: 55.75, Lng: 37.61},
	}

	for _, c := range coords {
		if d := geo.Distance(c, c); d != 0 {
			t.Fatalf("Distance(%v, %v) = %v, want 0", c, c, d)
		}
	}
}

func TestDistance_Symmetry(t *testing.T) {
	t.Parallel()

	a := domain.Coordinate{Lat: 37.7749, Lng: -122.4194}
	b := domain.Coordinate{Lat: 40.7128, Lng: -74.0060}

	ab := geo.Distance(a, b)
	ba := geo.Distance(b, a)

	if math.Abs(ab-ba) > 1e-6 {
		t.Fatalf("asymmetric distance: ab=%v ba=%v", ab, ba)
	}
}

func TestDistance_KnownSeparation(t *testing.T) {
	t.Parallel()

	// ~14 m apart in San Francisco
	a := domain.Coordinate{Lat: 37.7749, Lng: -122.4194}
	b := domain.Coordinate{Lat: 37.7750, Lng: -122.4195}

	d := geo.Distance(a, b)
	if d < 10 || d > 20 {
		t.Fatalf("expected ~14m, got %v", d)
	}

	// tens of km apart
	far := domain.Coordinate{Lat: 37.9, Lng: -122.6}
	d = geo.Distance(a, far)
	if d < 10000 {
		t.Fatalf("expected tens of km, got %v", d)
	}
}

func TestIsNear_ThresholdBoundary(t *testing.T) {
	t.Parallel()

	a := domain.Coordinate{Lat: 37.7749, Lng: -122.4194}
	b := domain.Coordinate{Lat: 37.7750, Lng: -122.4195}
	d := geo.Distance(a, b)

	if !geo.IsNear(&a, b, d) {
		t.Fatalf("IsNear false at exact threshold %v", d)
	}
	if geo.IsNear(&a, b, d-0.01) {
		t.Fatalf("IsNear true below threshold")
	}
}

func TestIsNear_Scenarios(t *testing.T) {
	t.Parallel()

	incident := domain.Coordinate{Lat: 37.7749, Lng: -122.4194}

	near := domain.Coordinate{Lat: 37.7750, Lng: -122.4195}
	if !geo.IsNear(&near, incident, 1000) {
		t.Fatalf("expected near for ~14m separation")
	}

	far := domain.Coordinate{Lat: 37.9, Lng: -122.6}
	if geo.IsNear(&far, incident, 1000) {
		t.Fatalf("expected not near for tens of km separation")
	}
}

func TestIsNear_NoUserLocation(t *testing.T) {
	t.Parallel()

	// absent user location always answers "not near", never a sentinel
	incident := domain.Coordinate{Lat: 37.7749, Lng: -122.4194}
	if geo.IsNear(nil, incident, math.MaxFloat64) {
		t.Fatalf("IsNear must be false without a user location")
	}
}
