// Package render turns composed requests and vendor results into the text
// report written to stdout, and optionally into an HTML export of the same
// transcript.
package render

import (
	"fmt"
	"io"
	"math"
	"text/tabwriter"
	"time"

	"roam/internal/domain"
	"roam/internal/services"
)

// Renderer writes report sections to a single destination. Wrap the
// destination with a recording writer (see NewRecorder) when the transcript
// is needed afterwards for HTML export.
type Renderer struct {
	w io.Writer
}

func New(w io.Writer) *Renderer {
	return &Renderer{w: w}
}

// RouteHeader prints the "routing from X to Y" banner using the names the
// user typed, not the resolved addresses.
func (r *Renderer) RouteHeader(req *domain.RouteRequest) {
	origin := "current default"
	if req.Origin != nil {
		origin = req.Origin.Raw
	}

	line := fmt.Sprintf("Routing from %s to %s via %s", origin, req.Destination.Raw, req.Mode)
	if req.Mode == domain.ModeDrive && req.Engine != "" {
		line += fmt.Sprintf(" (%s)", req.Engine)
	}
	if req.AvoidTolls {
		line += " [no tolls]"
	}
	if req.AvoidHighways {
		line += " [no highways]"
	}

	fmt.Fprintln(r.w, line)
}

// RouteSummary prints distance and duration in imperial units.
func (r *Renderer) RouteSummary(route *domain.ComputedRoute) {
	fmt.Fprintf(r.w, "Distance: %.2f miles\n", route.Miles())
	fmt.Fprintf(r.w, "Duration: %s\n", services.FormatDuration(route.Duration))
}

// Directions prints numbered step-by-step navigation instructions.
func (r *Renderer) Directions(route *domain.ComputedRoute) {
	fmt.Fprintln(r.w, "\nDirections:")

	n := 1
	for _, leg := range route.Legs {
		for _, step := range leg.Steps {
			text := step.Instruction
			if text == "" {
				text = step.Maneuver
			}
			fmt.Fprintf(r.w, "%3d. %s (%s)\n", n, text, formatStepDistance(step.DistanceMeters))
			n++
		}
	}
}

// WeatherRow is one rendered line of the route forecast table.
type WeatherRow struct {
	Label     string
	At        time.Time
	Entry     *domain.ForecastEntry // nil when no data was available
	FromDaily bool
}

// Weather prints the along-route forecast table.
func (r *Renderer) Weather(rows []WeatherRow) {
	fmt.Fprintln(r.w, "\nRoute forecast:")

	tw := tabwriter.NewWriter(r.w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "Location / Time\tTemp\tCondition\tPrecip\tQPF")

	for _, row := range rows {
		label := fmt.Sprintf("%s %s", row.Label, row.At.Format("03:04 PM"))
		if row.Entry == nil {
			fmt.Fprintf(tw, "%s\tNo data\t-\t-\t-\n", label)
			continue
		}

		e := row.Entry
		tempF := e.TemperatureC*9/5 + 32
		qpf := "-"
		if e.PrecipQPFmm > 0 {
			qpf = fmt.Sprintf("%.2f in", e.PrecipQPFmm/25.4)
		}
		cond := e.Condition
		if row.FromDaily {
			cond += " (daily)"
		}

		fmt.Fprintf(tw, "%s\t%.1f°F\t%s\t%d%%\t%s\n", label, tempF, cond, e.PrecipPercent, qpf)
	}

	tw.Flush()
}

// SearchResults prints one trip-ordered table of search hits.
func (r *Renderer) SearchResults(query string, places []domain.Place) {
	if len(places) == 0 {
		fmt.Fprintf(r.w, "\nNo %q found along route.\n", query)
		return
	}

	fmt.Fprintf(r.w, "\n%s stops (trip order):\n", query)

	tw := tabwriter.NewWriter(r.w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "Trip mile\tDetour\tName\tRating\tPrice\tAddress")

	for _, p := range places {
		trip, detour := "-", "-"
		if !math.IsInf(p.TripMiles, 1) {
			trip = fmt.Sprintf("%.1f mi", p.TripMiles)
		}
		if !math.IsInf(p.DetourMiles, 1) {
			detour = fmt.Sprintf("+%.1f mi", p.DetourMiles)
		}

		rating := "-"
		if p.Rating > 0 {
			rating = fmt.Sprintf("%.1f (%d)", p.Rating, p.RatingCount)
		}

		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\t%s\n",
			trip, detour, p.Name, rating, formatPrice(p), p.Address)
	}

	tw.Flush()
}

// ElevationProfile prints the chart with a min/max/range header, in feet.
func (r *Renderer) ElevationProfile(samples []domain.ElevationSample) {
	if len(samples) == 0 {
		fmt.Fprintln(r.w, "\nCould not fetch elevation data.")
		return
	}

	const feetPerMeter = 3.28084
	feet := make([]float64, len(samples))
	minF, maxF := math.Inf(1), math.Inf(-1)
	for i, s := range samples {
		feet[i] = s.Elevation * feetPerMeter
		minF = math.Min(minF, feet[i])
		maxF = math.Max(maxF, feet[i])
	}

	fmt.Fprintln(r.w, "\nElevation profile:")
	fmt.Fprintf(r.w, "Max: %d ft | Min: %d ft | Range: %d ft\n", int(maxF), int(minF), int(maxF-minF))
	fmt.Fprint(r.w, Chart(feet, 10))
}

// MapsURL prints the shareable maps link.
func (r *Renderer) MapsURL(u string) {
	fmt.Fprintf(r.w, "\nOpen in Maps: %s\n", u)
}

// Garage prints the vehicle table.
func (r *Renderer) Garage(vehicles []domain.VehicleProfile) {
	if len(vehicles) == 0 {
		fmt.Fprintln(r.w, "Your garage is empty. Use `roam garage add` to populate it.")
		return
	}

	tw := tabwriter.NewWriter(r.w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "Name\tMode\tEngine\tAvoids")

	for _, v := range vehicles {
		engine := string(v.Engine)
		if engine == "" {
			engine = "-"
		}

		avoids := "-"
		switch {
		case v.AvoidTolls && v.AvoidHighways:
			avoids = "tolls, highways"
		case v.AvoidTolls:
			avoids = "tolls"
		case v.AvoidHighways:
			avoids = "highways"
		}

		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", v.Name, v.Mode, engine, avoids)
	}

	tw.Flush()
}

// Places prints the address book table.
func (r *Renderer) Places(places []domain.SavedPlace) {
	if len(places) == 0 {
		fmt.Fprintln(r.w, "No places saved. Use `roam places add` to add one.")
		return
	}

	tw := tabwriter.NewWriter(r.w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "Name\tAddress")
	for _, p := range places {
		fmt.Fprintf(tw, "%s\t%s\n", p.Name, p.Address)
	}
	tw.Flush()
}

func formatStepDistance(meters int) string {
	miles := float64(meters) * domain.MilesPerMeter
	if miles >= 0.1 {
		return fmt.Sprintf("%.1f mi", miles)
	}
	return fmt.Sprintf("%.0f ft", float64(meters)*3.28084)
}

// formatPrice prefers a concrete fuel price over the vendor's price-level
// bucket.
func formatPrice(p domain.Place) string {
	if p.FuelPriceUSD > 0 {
		return fmt.Sprintf("$%.2f", p.FuelPriceUSD)
	}

	switch p.PriceLevel {
	case "PRICE_LEVEL_INEXPENSIVE":
		return "$"
	case "PRICE_LEVEL_MODERATE":
		return "$$"
	case "PRICE_LEVEL_EXPENSIVE":
		return "$$$"
	case "PRICE_LEVEL_VERY_EXPENSIVE":
		return "$$$$"
	case "":
		return "-"
	default:
		return p.PriceLevel
	}
}
