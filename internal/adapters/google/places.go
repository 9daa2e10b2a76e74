package google

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"

	"roam/internal/domain"
	"roam/internal/platform/obs"
)

const placesFieldMask = "places.displayName," +
	"places.formattedAddress," +
	"places.rating," +
	"places.userRatingCount," +
	"places.priceLevel," +
	"places.location," +
	"places.fuelOptions"

type searchTextPayload struct {
	TextQuery                  string                      `json:"textQuery"`
	SearchAlongRouteParameters *searchAlongRouteParameters `json:"searchAlongRouteParameters,omitempty"`
}

type searchAlongRouteParameters struct {
	Polyline encodedPolyline `json:"polyline"`
}

type encodedPolyline struct {
	EncodedPolyline string `json:"encodedPolyline"`
}

type searchTextResponse struct {
	Places []struct {
		DisplayName struct {
			Text string `json:"text"`
		} `json:"displayName"`
		FormattedAddress string  `json:"formattedAddress"`
		Rating           float64 `json:"rating"`
		UserRatingCount  int     `json:"userRatingCount"`
		PriceLevel       string  `json:"priceLevel"`
		Location         struct {
			Latitude  float64 `json:"latitude"`
			Longitude float64 `json:"longitude"`
		} `json:"location"`
		FuelOptions struct {
			FuelPrices []struct {
				Type  string `json:"type"`
				Price struct {
					// Money proto: whole units arrive as a decimal string.
					Units        string `json:"units"`
					Nanos        int64  `json:"nanos"`
					CurrencyCode string `json:"currencyCode"`
				} `json:"price"`
			} `json:"fuelPrices"`
		} `json:"fuelOptions"`
	} `json:"places"`
}

// SearchAlongRoute finds places matching query near the route polyline via
// the Places API text search.
func (c *Client) SearchAlongRoute(ctx context.Context, query, polyline string) (_ []domain.Place, err error) {
	defer obs.Time("google.SearchAlongRoute")(&err)

	payload := searchTextPayload{TextQuery: query}
	if polyline != "" {
		payload.SearchAlongRouteParameters = &searchAlongRouteParameters{
			Polyline: encodedPolyline{EncodedPolyline: polyline},
		}
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("search along route: encode payload: %w", err)
	}

	resp, err := c.doWithRetry(ctx, func() (*http.Request, error) {
		return c.newRequest(ctx, http.MethodPost, c.placesURL, placesFieldMask, bytes.NewReader(body))
	})
	if err != nil {
		return nil, fmt.Errorf("search along route %q: %w", query, err)
	}
	defer resp.Body.Close()

	var decoded searchTextResponse
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return nil, fmt.Errorf("search along route: decode response: %w", err)
	}

	out := make([]domain.Place, 0, len(decoded.Places))
	for _, p := range decoded.Places {
		place := domain.Place{
			Name:        p.DisplayName.Text,
			Address:     p.FormattedAddress,
			Rating:      p.Rating,
			RatingCount: p.UserRatingCount,
			PriceLevel:  p.PriceLevel,
			Location: domain.Coordinates{
				Lat: p.Location.Latitude,
				Lng: p.Location.Longitude,
			},
		}

		for _, fp := range p.FuelOptions.FuelPrices {
			if fp.Type != "REGULAR_UNLEADED" || fp.Price.CurrencyCode != "USD" {
				continue
			}
			units, convErr := strconv.ParseInt(fp.Price.Units, 10, 64)
			if convErr != nil {
				continue
			}
			place.FuelPriceUSD = float64(units) + float64(fp.Price.Nanos)/1e9
			break
		}

		out = append(out, place)
	}

	return out, nil
}
