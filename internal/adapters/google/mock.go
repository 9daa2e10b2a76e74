package google

import (
	"context"
	"fmt"

	"roam/internal/domain"
)

// MockProvider is a canned RouteProvider for tests and offline wiring
// checks. Zero-value fields produce "not configured" errors so a test only
// stubs what it exercises.
type MockProvider struct {
	Route     *domain.ComputedRoute
	Places    map[string][]domain.Place
	Hourly    []domain.ForecastEntry
	Daily     []domain.ForecastEntry
	Elevation []domain.ElevationSample

	// LastRequest records the most recent ComputeRoute argument.
	LastRequest *domain.RouteRequest
}

func (m *MockProvider) ComputeRoute(ctx context.Context, req domain.RouteRequest) (*domain.ComputedRoute, error) {
	m.LastRequest = &req
	if m.Route == nil {
		return nil, fmt.Errorf("mock provider: no route configured")
	}
	return m.Route, nil
}

func (m *MockProvider) SearchAlongRoute(ctx context.Context, query, polyline string) ([]domain.Place, error) {
	places, ok := m.Places[query]
	if !ok {
		return nil, nil
	}
	return places, nil
}

func (m *MockProvider) HourlyForecast(ctx context.Context, at domain.Coordinates) ([]domain.ForecastEntry, error) {
	return m.Hourly, nil
}

func (m *MockProvider) DailyForecast(ctx context.Context, at domain.Coordinates) ([]domain.ForecastEntry, error) {
	return m.Daily, nil
}

func (m *MockProvider) ElevationAlongPath(ctx context.Context, polyline string, samples int) ([]domain.ElevationSample, error) {
	return m.Elevation, nil
}
