// Package google is the Maps Platform adapter behind the RouteProvider
// port: Routes API v2 for route computation, Places API for
// search-along-route, the Weather API for forecasts, and the Elevation API
// for route profiles.
package google

import (
	"net/http"
	"strings"
	"time"

	"github.com/sony/gobreaker"

	"roam/internal/domain"
)

// Client calls the Google Maps Platform APIs on behalf of one invocation.
//
// It coordinates:
//   - Request signing (X-Goog-Api-Key / key query parameter)
//   - Field masks so responses stay small
//   - External API calls with retry/backoff behind a circuit breaker
//
// The client is safe for concurrent use.
type Client struct {
	session *http.Client
	apiKey  string
	breaker *gobreaker.CircuitBreaker

	routesURL    string
	placesURL    string
	weatherURL   string
	elevationURL string
}

func NewClient(apiKey string) (*Client, error) {
	if strings.TrimSpace(apiKey) == "" {
		return nil, domain.ErrMissingCredential
	}

	cb := gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:        "google-maps",
		MaxRequests: 5,
		Interval:    1 * time.Minute,
		Timeout:     2 * time.Minute,
	})

	return &Client{
		session:      &http.Client{Timeout: 15 * time.Second},
		apiKey:       apiKey,
		breaker:      cb,
		routesURL:    "https://routes.googleapis.com/directions/v2:computeRoutes",
		placesURL:    "https://places.googleapis.com/v1/places:searchText",
		weatherURL:   "https://weather.googleapis.com/v1",
		elevationURL: "https://maps.googleapis.com/maps/api/elevation/json",
	}, nil
}
