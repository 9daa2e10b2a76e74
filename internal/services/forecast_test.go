package services

import (
	"testing"
	"time"

	"roam/internal/domain"
)

// routeWithSteps builds a single-leg route where every step takes stepDur.
func routeWithSteps(n int, stepDur time.Duration) *domain.ComputedRoute {
	leg := domain.Leg{
		Start: domain.Coordinates{Lat: 34.0, Lng: -118.0},
		End:   domain.Coordinates{Lat: 36.0, Lng: -115.0},
	}
	for i := 0; i < n; i++ {
		leg.Steps = append(leg.Steps, domain.Step{
			StaticDuration: stepDur,
			End:            domain.Coordinates{Lat: 34.0 + float64(i)*0.1, Lng: -118.0 + float64(i)*0.1},
		})
	}
	return &domain.ComputedRoute{
		Duration: time.Duration(n) * stepDur,
		Legs:     []domain.Leg{leg},
	}
}

func TestSampleForecastPointsShortRoute(t *testing.T) {
	depart := time.Date(2026, 8, 28, 8, 0, 0, 0, time.UTC)

	// 40 minutes total: a start row plus a destination row, no en-route
	// samples.
	route := routeWithSteps(4, 10*time.Minute)
	points := SampleForecastPoints(route, depart)

	if len(points) != 2 {
		t.Fatalf("expected 2 points, got %d", len(points))
	}
	if points[0].Label != "Start" || !points[0].At.Equal(depart) {
		t.Fatalf("first point = %+v, want Start at departure", points[0])
	}
	if points[1].Label != "Destination" {
		t.Fatalf("last point = %+v, want Destination", points[1])
	}
	if !points[1].At.Equal(depart.Add(40 * time.Minute)) {
		t.Fatalf("destination arrival = %v, want depart+40m", points[1].At)
	}
}

func TestSampleForecastPointsLongRoute(t *testing.T) {
	depart := time.Date(2026, 8, 28, 8, 0, 0, 0, time.UTC)

	// 5 hours total in 20-minute steps: expect en-route samples roughly an
	// hour apart between start and destination.
	route := routeWithSteps(15, 20*time.Minute)
	points := SampleForecastPoints(route, depart)

	if len(points) < 4 {
		t.Fatalf("expected at least 4 points for a 5h route, got %d", len(points))
	}
	if points[0].Label != "Start" {
		t.Fatalf("first point = %q, want Start", points[0].Label)
	}
	if points[len(points)-1].Label != "Destination" {
		t.Fatalf("last point = %q, want Destination", points[len(points)-1].Label)
	}

	for i := 1; i < len(points); i++ {
		if !points[i].At.After(points[i-1].At) {
			t.Fatalf("points not in time order: %v then %v", points[i-1].At, points[i].At)
		}
	}
}

func TestSampleForecastPointsEmptyRoute(t *testing.T) {
	if pts := SampleForecastPoints(nil, time.Now()); pts != nil {
		t.Fatalf("expected nil for nil route, got %v", pts)
	}
	if pts := SampleForecastPoints(&domain.ComputedRoute{}, time.Now()); pts != nil {
		t.Fatalf("expected nil for legless route, got %v", pts)
	}
}

func TestUseDailyForecast(t *testing.T) {
	now := time.Date(2026, 8, 28, 8, 0, 0, 0, time.UTC)

	if UseDailyForecast(now, now.Add(6*time.Hour)) {
		t.Fatal("6h out should use the hourly feed")
	}
	if UseDailyForecast(now, now.Add(24*time.Hour)) {
		t.Fatal("exactly 24h out should still use the hourly feed")
	}
	if !UseDailyForecast(now, now.Add(25*time.Hour)) {
		t.Fatal("25h out should use the daily feed")
	}
}

func TestClosestForecast(t *testing.T) {
	base := time.Date(2026, 8, 28, 8, 0, 0, 0, time.UTC)
	entries := []domain.ForecastEntry{
		{Start: base, TemperatureC: 18},
		{Start: base.Add(1 * time.Hour), TemperatureC: 20},
		{Start: base.Add(2 * time.Hour), TemperatureC: 22},
	}

	got, ok := ClosestForecast(entries, base.Add(70*time.Minute))
	if !ok {
		t.Fatal("expected a match")
	}
	if got.TemperatureC != 20 {
		t.Fatalf("matched %.0f°C entry, want the 20°C entry", got.TemperatureC)
	}

	if _, ok := ClosestForecast(nil, base); ok {
		t.Fatal("expected no match for empty forecast")
	}
}

func TestDailyForecastFor(t *testing.T) {
	entries := []domain.ForecastEntry{
		{Start: time.Date(2026, 8, 28, 7, 0, 0, 0, time.UTC), TemperatureC: 25},
		{Start: time.Date(2026, 8, 29, 7, 0, 0, 0, time.UTC), TemperatureC: 27},
		{Start: time.Date(2026, 8, 30, 7, 0, 0, 0, time.UTC), TemperatureC: 23},
	}

	target := time.Date(2026, 8, 29, 18, 30, 0, 0, time.UTC)
	got, ok := DailyForecastFor(entries, target)
	if !ok {
		t.Fatal("expected a match")
	}
	if got.TemperatureC != 27 {
		t.Fatalf("matched %.0f°C entry, want the Aug 29 entry", got.TemperatureC)
	}

	// A target past every entry falls back to the nearest one.
	late := time.Date(2026, 9, 5, 12, 0, 0, 0, time.UTC)
	got, ok = DailyForecastFor(entries, late)
	if !ok {
		t.Fatal("expected fallback match")
	}
	if got.TemperatureC != 23 {
		t.Fatalf("fallback matched %.0f°C entry, want the last entry", got.TemperatureC)
	}
}

func TestFormatDuration(t *testing.T) {
	tests := []struct {
		in   time.Duration
		want string
	}{
		{5 * time.Minute, "5m"},
		{59 * time.Minute, "59m"},
		{time.Hour, "1h 0m"},
		{2*time.Hour + 5*time.Minute, "2h 5m"},
		{0, "0m"},
	}

	for _, tc := range tests {
		if got := FormatDuration(tc.in); got != tc.want {
			t.Fatalf("FormatDuration(%v) = %q, want %q", tc.in, got, tc.want)
		}
	}
}
