package render

import (
	"bytes"
	"math"
	"strings"
	"testing"
	"time"

	"roam/internal/domain"
)

func TestRouteHeader(t *testing.T) {
	tests := []struct {
		name string
		req  domain.RouteRequest
		want string
	}{
		{
			name: "drive with engine and avoids",
			req: domain.RouteRequest{
				Origin:      &domain.Waypoint{Raw: "home"},
				Destination: domain.Waypoint{Raw: "Los Angeles"},
				Mode:        domain.ModeDrive,
				Engine:      domain.EngineElectric,
				AvoidTolls:  true,
			},
			want: "Routing from home to Los Angeles via drive (electric) [no tolls]\n",
		},
		{
			name: "walk omits engine",
			req: domain.RouteRequest{
				Origin:      &domain.Waypoint{Raw: "home"},
				Destination: domain.Waypoint{Raw: "the park"},
				Mode:        domain.ModeWalk,
				Engine:      domain.EngineGasoline,
			},
			want: "Routing from home to the park via walk\n",
		},
		{
			name: "nil origin",
			req: domain.RouteRequest{
				Destination: domain.Waypoint{Raw: "Las Vegas"},
				Mode:        domain.ModeDrive,
			},
			want: "Routing from current default to Las Vegas via drive\n",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			var buf bytes.Buffer
			New(&buf).RouteHeader(&tc.req)
			if buf.String() != tc.want {
				t.Fatalf("header = %q, want %q", buf.String(), tc.want)
			}
		})
	}
}

func TestRouteSummary(t *testing.T) {
	var buf bytes.Buffer
	New(&buf).RouteSummary(&domain.ComputedRoute{
		DistanceMeters: 160934, // 100.00 miles
		Duration:       2*time.Hour + 5*time.Minute,
	})

	out := buf.String()
	if !strings.Contains(out, "100.00 miles") {
		t.Fatalf("summary missing distance: %q", out)
	}
	if !strings.Contains(out, "2h 5m") {
		t.Fatalf("summary missing duration: %q", out)
	}
}

func TestDirections(t *testing.T) {
	route := &domain.ComputedRoute{
		Legs: []domain.Leg{{
			Steps: []domain.Step{
				{Instruction: "Turn left onto Main St", DistanceMeters: 804},
				{Maneuver: "MERGE", DistanceMeters: 30}, // no instruction text
			},
		}},
	}

	var buf bytes.Buffer
	New(&buf).Directions(route)

	out := buf.String()
	if !strings.Contains(out, "1. Turn left onto Main St (0.5 mi)") {
		t.Fatalf("missing first step: %q", out)
	}
	if !strings.Contains(out, "2. MERGE (98 ft)") {
		t.Fatalf("missing maneuver fallback or feet distance: %q", out)
	}
}

func TestWeatherTable(t *testing.T) {
	at := time.Date(2026, 8, 28, 15, 30, 0, 0, time.UTC)

	rows := []WeatherRow{
		{
			Label: "Start",
			At:    at,
			Entry: &domain.ForecastEntry{
				TemperatureC:  20,
				Condition:     "Clear",
				PrecipPercent: 10,
				PrecipQPFmm:   2.54,
			},
		},
		{
			Label:     "Destination",
			At:        at.Add(26 * time.Hour),
			Entry:     &domain.ForecastEntry{TemperatureC: 25, Condition: "Sunny"},
			FromDaily: true,
		},
		{Label: "En route", At: at.Add(time.Hour)},
	}

	var buf bytes.Buffer
	New(&buf).Weather(rows)

	out := buf.String()
	if !strings.Contains(out, "68.0°F") {
		t.Fatalf("missing fahrenheit conversion: %q", out)
	}
	if !strings.Contains(out, "0.10 in") {
		t.Fatalf("missing QPF inches conversion: %q", out)
	}
	if !strings.Contains(out, "Sunny (daily)") {
		t.Fatalf("missing daily marker: %q", out)
	}
	if !strings.Contains(out, "No data") {
		t.Fatalf("missing no-data row: %q", out)
	}
}

func TestSearchResults(t *testing.T) {
	places := []domain.Place{
		{
			Name:         "Shell",
			Address:      "1 Route Rd",
			Rating:       4.2,
			RatingCount:  120,
			FuelPriceUSD: 4.59,
			TripMiles:    12.3,
			DetourMiles:  0.4,
		},
		{
			Name:        "Mystery Stop",
			Address:     "Unknown",
			TripMiles:   math.Inf(1),
			DetourMiles: math.Inf(1),
		},
	}

	var buf bytes.Buffer
	New(&buf).SearchResults("gas", places)

	out := buf.String()
	if !strings.Contains(out, "gas stops (trip order):") {
		t.Fatalf("missing section heading: %q", out)
	}
	if !strings.Contains(out, "12.3 mi") || !strings.Contains(out, "+0.4 mi") {
		t.Fatalf("missing trip or detour miles: %q", out)
	}
	if !strings.Contains(out, "$4.59") {
		t.Fatalf("missing fuel price: %q", out)
	}
	if !strings.Contains(out, "4.2 (120)") {
		t.Fatalf("missing rating: %q", out)
	}
}

func TestSearchResultsEmpty(t *testing.T) {
	var buf bytes.Buffer
	New(&buf).SearchResults("tacos", nil)

	want := "\nNo \"tacos\" found along route.\n"
	if buf.String() != want {
		t.Fatalf("got %q, want %q", buf.String(), want)
	}
}

func TestElevationProfile(t *testing.T) {
	samples := []domain.ElevationSample{
		{Elevation: 0},
		{Elevation: 100},
		{Elevation: 304.8}, // 1000 ft
	}

	var buf bytes.Buffer
	New(&buf).ElevationProfile(samples)

	out := buf.String()
	if !strings.Contains(out, "Max: 1000 ft | Min: 0 ft | Range: 1000 ft") {
		t.Fatalf("missing range header: %q", out)
	}
	if !strings.Contains(out, "#") {
		t.Fatalf("missing chart body: %q", out)
	}
}

func TestFormatPrice(t *testing.T) {
	tests := []struct {
		place domain.Place
		want  string
	}{
		{domain.Place{FuelPriceUSD: 4.599}, "$4.60"},
		{domain.Place{PriceLevel: "PRICE_LEVEL_INEXPENSIVE"}, "$"},
		{domain.Place{PriceLevel: "PRICE_LEVEL_VERY_EXPENSIVE"}, "$$$$"},
		{domain.Place{}, "-"},
	}

	for _, tc := range tests {
		if got := formatPrice(tc.place); got != tc.want {
			t.Fatalf("formatPrice(%+v) = %q, want %q", tc.place, got, tc.want)
		}
	}
}

func TestGarageTable(t *testing.T) {
	var buf bytes.Buffer
	New(&buf).Garage([]domain.VehicleProfile{
		{Name: "tesla", Mode: domain.ModeDrive, Engine: domain.EngineElectric, AvoidTolls: true},
		{Name: "scooter", Mode: domain.ModeTwoWheeler, AvoidHighways: true},
	})

	out := buf.String()
	for _, want := range []string{"tesla", "electric", "tolls", "scooter", "two_wheeler", "highways"} {
		if !strings.Contains(out, want) {
			t.Fatalf("table missing %q: %q", want, out)
		}
	}
}

func TestGarageTableEmpty(t *testing.T) {
	var buf bytes.Buffer
	New(&buf).Garage(nil)

	if !strings.Contains(buf.String(), "Your garage is empty") {
		t.Fatalf("got %q, want empty-garage hint", buf.String())
	}
}
