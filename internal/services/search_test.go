package services

import (
	"math"
	"testing"

	"roam/internal/domain"
)

// straightPath builds a path marching east along the equator, one point per
// hundredth of a degree.
func straightPath(n int) []domain.Coordinates {
	path := make([]domain.Coordinates, n)
	for i := range path {
		path[i] = domain.Coordinates{Lat: 0, Lng: float64(i) * 0.01}
	}
	return path
}

func TestEnrichPlacesSortsByTripMile(t *testing.T) {
	path := straightPath(101) // ~69 miles end to end

	places := []domain.Place{
		{Name: "far", Location: domain.Coordinates{Lat: 0.01, Lng: 0.9}},
		{Name: "near", Location: domain.Coordinates{Lat: 0.01, Lng: 0.1}},
		{Name: "mid", Location: domain.Coordinates{Lat: 0.01, Lng: 0.5}},
	}

	out := EnrichPlaces(places, path)

	want := []string{"near", "mid", "far"}
	for i, name := range want {
		if out[i].Name != name {
			t.Fatalf("position %d = %q, want %q", i, out[i].Name, name)
		}
	}

	for i := 1; i < len(out); i++ {
		if out[i].TripMiles < out[i-1].TripMiles {
			t.Fatalf("trip miles out of order: %v", out)
		}
	}

	// Everything sits about 0.7 miles north of the path.
	for _, p := range out {
		if p.DetourMiles < 0.5 || p.DetourMiles > 1.0 {
			t.Fatalf("%s detour = %.2f miles, want ~0.7", p.Name, p.DetourMiles)
		}
	}
}

func TestEnrichPlacesUnlocatedGoesLast(t *testing.T) {
	path := straightPath(101)

	places := []domain.Place{
		{Name: "nowhere"}, // zero location, no coordinates from the vendor
		{Name: "somewhere", Location: domain.Coordinates{Lat: 0, Lng: 0.3}},
	}

	out := EnrichPlaces(places, path)

	if out[0].Name != "somewhere" {
		t.Fatalf("first = %q, want the located place", out[0].Name)
	}
	if !math.IsInf(out[1].TripMiles, 1) || !math.IsInf(out[1].DetourMiles, 1) {
		t.Fatalf("unlocated place = %+v, want infinite trip and detour", out[1])
	}
}

func TestEnrichPlacesEmptyPath(t *testing.T) {
	places := []domain.Place{{Name: "a", Location: domain.Coordinates{Lat: 1, Lng: 1}}}

	out := EnrichPlaces(places, nil)
	if len(out) != 1 || out[0].TripMiles != 0 {
		t.Fatalf("out = %+v, want input untouched", out)
	}
}

func TestEnrichPlacesTripMileMatchesPosition(t *testing.T) {
	path := straightPath(101)

	places := []domain.Place{
		{Name: "halfway", Location: domain.Coordinates{Lat: 0, Lng: 0.5}},
	}

	out := EnrichPlaces(places, path)

	// Lng 0.5 is half of the ~69 mile path.
	if out[0].TripMiles < 32 || out[0].TripMiles > 37 {
		t.Fatalf("trip mile = %.1f, want ~34.5", out[0].TripMiles)
	}
	if out[0].DetourMiles > 0.5 {
		t.Fatalf("detour = %.2f, want near zero for an on-path place", out[0].DetourMiles)
	}
}
