package google

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"roam/internal/domain"
	"roam/internal/platform/obs"
)

// The Weather API keys the request off query parameters, including the
// credential, so these calls skip the X-Goog-Api-Key header path.
type forecastResponse struct {
	ForecastHours []forecastInterval `json:"forecastHours"`
	ForecastDays  []dailyInterval    `json:"forecastDays"`
}

type forecastInterval struct {
	Interval struct {
		StartTime string `json:"startTime"`
	} `json:"interval"`
	Temperature struct {
		Degrees float64 `json:"degrees"`
	} `json:"temperature"`
	WeatherCondition weatherCondition `json:"weatherCondition"`
	Precipitation    precipitation    `json:"precipitation"`
}

type dailyInterval struct {
	Interval struct {
		StartTime string `json:"startTime"`
	} `json:"interval"`
	MaxTemperature struct {
		Degrees float64 `json:"degrees"`
	} `json:"maxTemperature"`
	DaytimeForecast struct {
		WeatherCondition weatherCondition `json:"weatherCondition"`
		Precipitation    precipitation    `json:"precipitation"`
	} `json:"daytimeForecast"`
}

type weatherCondition struct {
	Description struct {
		Text string `json:"text"`
	} `json:"description"`
}

type precipitation struct {
	Probability struct {
		Percent int `json:"percent"`
	} `json:"probability"`
	QPF struct {
		Quantity float64 `json:"quantity"`
	} `json:"qpf"`
}

// HourlyForecast fetches up to 24 hourly forecast entries for a point.
func (c *Client) HourlyForecast(ctx context.Context, at domain.Coordinates) (_ []domain.ForecastEntry, err error) {
	defer obs.Time("google.HourlyForecast")(&err)

	decoded, err := c.forecastLookup(ctx, "hours", at)
	if err != nil {
		return nil, fmt.Errorf("hourly forecast: %w", err)
	}

	out := make([]domain.ForecastEntry, 0, len(decoded.ForecastHours))
	for _, h := range decoded.ForecastHours {
		start, perr := time.Parse(time.RFC3339, h.Interval.StartTime)
		if perr != nil {
			continue
		}
		out = append(out, domain.ForecastEntry{
			Start:         start.UTC(),
			TemperatureC:  h.Temperature.Degrees,
			Condition:     h.WeatherCondition.Description.Text,
			PrecipPercent: h.Precipitation.Probability.Percent,
			PrecipQPFmm:   h.Precipitation.QPF.Quantity,
		})
	}

	return out, nil
}

// DailyForecast fetches the multi-day forecast for a point, one entry per
// day built from the daytime outlook.
func (c *Client) DailyForecast(ctx context.Context, at domain.Coordinates) (_ []domain.ForecastEntry, err error) {
	defer obs.Time("google.DailyForecast")(&err)

	decoded, err := c.forecastLookup(ctx, "days", at)
	if err != nil {
		return nil, fmt.Errorf("daily forecast: %w", err)
	}

	out := make([]domain.ForecastEntry, 0, len(decoded.ForecastDays))
	for _, d := range decoded.ForecastDays {
		start, perr := time.Parse(time.RFC3339, d.Interval.StartTime)
		if perr != nil {
			continue
		}
		out = append(out, domain.ForecastEntry{
			Start:         start.UTC(),
			TemperatureC:  d.MaxTemperature.Degrees,
			Condition:     d.DaytimeForecast.WeatherCondition.Description.Text,
			PrecipPercent: d.DaytimeForecast.Precipitation.Probability.Percent,
			PrecipQPFmm:   d.DaytimeForecast.Precipitation.QPF.Quantity,
		})
	}

	return out, nil
}

func (c *Client) forecastLookup(ctx context.Context, granularity string, at domain.Coordinates) (*forecastResponse, error) {
	endpoint := fmt.Sprintf("%s/forecast/%s:lookup", c.weatherURL, granularity)

	resp, err := c.doWithRetry(ctx, func() (*http.Request, error) {
		req, err := c.newRequest(ctx, http.MethodGet, endpoint, "", nil)
		if err != nil {
			return nil, err
		}
		q := req.URL.Query()
		q.Set("key", c.apiKey)
		q.Set("location.latitude", fmt.Sprintf("%f", at.Lat))
		q.Set("location.longitude", fmt.Sprintf("%f", at.Lng))
		req.URL.RawQuery = q.Encode()
		return req, nil
	})
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	var decoded forecastResponse
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return nil, fmt.Errorf("decode response: %w", err)
	}

	return &decoded, nil
}
