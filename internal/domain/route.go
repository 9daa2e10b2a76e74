package domain

import "time"

// Represents a single navigation step within a route leg.
// A Step carries the instruction text, the distance covered, the travel time
// excluding live traffic, and the point where the step ends.
type Step struct {
	Instruction    string
	Maneuver       string
	DistanceMeters int
	StaticDuration time.Duration
	End            Coordinates
}

// Represents one leg of a computed route (origin to destination; the vendor
// may split routes with intermediate waypoints into several legs).
type Leg struct {
	Start Coordinates
	End   Coordinates
	Steps []Step
}

// Represents the vendor's answer to a RouteRequest, trimmed to the fields
// the reports consume. It is immutable result data and contains no side
// effects.
type ComputedRoute struct {
	DistanceMeters int
	Duration       time.Duration
	Polyline       string
	Legs           []Leg
}

// Miles returns the route length in statute miles.
func (r *ComputedRoute) Miles() float64 {
	return float64(r.DistanceMeters) * MilesPerMeter
}

// MilesPerMeter converts vendor meters into the imperial units the reports
// print.
const MilesPerMeter = 0.000621371

// Place is one search-along-route hit, enriched with its position relative
// to the route (how far into the trip it sits and how far off the path it
// lies).
type Place struct {
	Name        string
	Address     string
	Rating      float64
	RatingCount int
	PriceLevel  string
	// FuelPriceUSD is the regular-unleaded price when the vendor reports
	// fuel options, 0 otherwise.
	FuelPriceUSD float64
	Location     Coordinates
	TripMiles    float64
	DetourMiles  float64
}

// ForecastEntry is one hourly or daily forecast interval, normalized across
// the two vendor feeds.
type ForecastEntry struct {
	Start         time.Time
	TemperatureC  float64
	Condition     string
	PrecipPercent int
	// PrecipQPFmm is the predicted precipitation quantity in millimeters.
	PrecipQPFmm float64
}

// ElevationSample is one point of the route elevation profile.
type ElevationSample struct {
	Location Coordinates
	// Elevation above sea level in meters.
	Elevation float64
}
