package ports

import (
	"context"
	"roam/internal/domain"
)

// Port: a boundary for the hosted routing, search, weather, and elevation
// services. The concrete adapter owns transport, credentials, retries, and
// response decoding; callers only see normalized domain values.
type RouteProvider interface {
	// Compute a route for the request. The request's origin must already be
	// resolved (non-nil).
	ComputeRoute(ctx context.Context, req domain.RouteRequest) (*domain.ComputedRoute, error)

	// Search for places matching query near the encoded route polyline.
	SearchAlongRoute(ctx context.Context, query, encodedPolyline string) ([]domain.Place, error)

	// Hourly forecast entries for a point, nearest hours first.
	HourlyForecast(ctx context.Context, at domain.Coordinates) ([]domain.ForecastEntry, error)

	// Daily forecast entries for a point, one per calendar day.
	DailyForecast(ctx context.Context, at domain.Coordinates) ([]domain.ForecastEntry, error)

	// Elevation samples taken evenly along the encoded polyline.
	ElevationAlongPath(ctx context.Context, encodedPolyline string, samples int) ([]domain.ElevationSample, error)
}
