package services

import (
	"fmt"
	"time"

	"roam/internal/domain"
)

// forecastSampleInterval is the target spacing between forecast points
// along the route.
const forecastSampleInterval = time.Hour

// hourlyForecastHorizon is how far out the hourly feed is trusted; samples
// beyond it fall back to the daily forecast.
const hourlyForecastHorizon = 24 * time.Hour

// ForecastPoint is a location on the route paired with its estimated
// arrival time and a human label for the report.
type ForecastPoint struct {
	Label    string
	At       time.Time
	Location domain.Coordinates
}

// SampleForecastPoints walks the route's steps accumulating static
// durations and emits points roughly one sample interval apart: the start,
// en-route points, and the destination (when it is far enough from the last
// sample to be worth its own row).
func SampleForecastPoints(route *domain.ComputedRoute, depart time.Time) []ForecastPoint {
	if route == nil || len(route.Legs) == 0 {
		return nil
	}

	var points []ForecastPoint

	points = append(points, ForecastPoint{
		Label:    "Start",
		At:       depart,
		Location: route.Legs[0].Start,
	})

	elapsed := time.Duration(0)
	lastSample := time.Duration(0)

	for _, leg := range route.Legs {
		for _, step := range leg.Steps {
			if elapsed > lastSample+forecastSampleInterval {
				points = append(points, ForecastPoint{
					Label:    fmt.Sprintf("En route (+%s)", FormatDuration(elapsed)),
					At:       depart.Add(elapsed),
					Location: step.End,
				})
				lastSample = elapsed
			}
			elapsed += step.StaticDuration
		}
	}

	// The destination gets its own row unless it lands nearly on top of the
	// last en-route sample.
	if route.Duration > lastSample+forecastSampleInterval/2 {
		last := route.Legs[len(route.Legs)-1]
		points = append(points, ForecastPoint{
			Label:    "Destination",
			At:       depart.Add(route.Duration),
			Location: last.End,
		})
	}

	return points
}

// UseDailyForecast reports whether the target time is beyond the hourly
// feed's horizon relative to now.
func UseDailyForecast(now, target time.Time) bool {
	return target.Sub(now) > hourlyForecastHorizon
}

// ClosestForecast picks the entry whose interval start is nearest the
// target time. ok is false for an empty forecast.
func ClosestForecast(entries []domain.ForecastEntry, target time.Time) (match domain.ForecastEntry, ok bool) {
	best := time.Duration(-1)

	for _, e := range entries {
		diff := target.Sub(e.Start)
		if diff < 0 {
			diff = -diff
		}
		if best < 0 || diff < best {
			best = diff
			match = e
			ok = true
		}
	}

	return match, ok
}

// DailyForecastFor picks the entry covering the target's calendar day in
// the entry's own location-local representation.
func DailyForecastFor(entries []domain.ForecastEntry, target time.Time) (domain.ForecastEntry, bool) {
	ty, tm, td := target.UTC().Date()
	for _, e := range entries {
		ey, em, ed := e.Start.UTC().Date()
		if ey == ty && em == tm && ed == td {
			return e, true
		}
	}
	return ClosestForecast(entries, target)
}

// FormatDuration renders a duration as "2h 5m" (or "5m" under an hour), the
// way trip durations read in the report.
func FormatDuration(d time.Duration) string {
	total := int(d.Seconds())
	hours := total / 3600
	minutes := (total % 3600) / 60

	if hours > 0 {
		return fmt.Sprintf("%dh %dm", hours, minutes)
	}
	return fmt.Sprintf("%dm", minutes)
}
