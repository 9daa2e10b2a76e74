package google

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"

	"roam/internal/domain"
	"roam/internal/platform/obs"
)

type elevationResponse struct {
	Status  string `json:"status"`
	Results []struct {
		Elevation float64 `json:"elevation"`
		Location  struct {
			Lat float64 `json:"lat"`
			Lng float64 `json:"lng"`
		} `json:"location"`
	} `json:"results"`
}

// ElevationAlongPath samples elevations evenly along the encoded route
// polyline via the Elevation API.
func (c *Client) ElevationAlongPath(ctx context.Context, polyline string, samples int) (_ []domain.ElevationSample, err error) {
	defer obs.Time("google.ElevationAlongPath")(&err)

	if polyline == "" {
		return nil, fmt.Errorf("elevation along path: polyline must be non-empty")
	}
	if samples < 2 {
		samples = 2
	}

	resp, err := c.doWithRetry(ctx, func() (*http.Request, error) {
		req, err := c.newRequest(ctx, http.MethodGet, c.elevationURL, "", nil)
		if err != nil {
			return nil, err
		}
		q := req.URL.Query()
		q.Set("path", "enc:"+polyline)
		q.Set("samples", strconv.Itoa(samples))
		q.Set("key", c.apiKey)
		req.URL.RawQuery = q.Encode()
		return req, nil
	})
	if err != nil {
		return nil, fmt.Errorf("elevation along path: %w", err)
	}
	defer resp.Body.Close()

	var decoded elevationResponse
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return nil, fmt.Errorf("elevation along path: decode response: %w", err)
	}

	if decoded.Status != "OK" {
		return nil, fmt.Errorf("elevation along path: vendor status %q", decoded.Status)
	}

	out := make([]domain.ElevationSample, 0, len(decoded.Results))
	for _, r := range decoded.Results {
		out = append(out, domain.ElevationSample{
			Elevation: r.Elevation,
			Location:  domain.Coordinates{Lat: r.Location.Lat, Lng: r.Location.Lng},
		})
	}

	return out, nil
}
