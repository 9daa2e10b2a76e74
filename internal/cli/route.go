package cli

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"roam/internal/domain"
	"roam/internal/geo"
	"roam/internal/ports"
	"roam/internal/render"
	"roam/internal/services"
)

const (
	elevationSamples = 60
	reportFile       = "roam_report.html"
)

func registerRouteFlags(cmd *cobra.Command) {
	fl := cmd.Flags()

	fl.StringP("origin", "o", "", "Starting point (address or saved place). Defaults to 'home' if saved.")
	fl.StringP("with", "w", "", "Load settings from a saved vehicle in your garage.")
	fl.StringP("mode", "m", "", "Travel mode: drive, bicycle, two_wheeler, transit, walk.")
	fl.StringP("engine", "e", "", "Engine type for eco-routing (drive mode only): gasoline, electric, hybrid, diesel.")
	fl.BoolP("avoid-tolls", "t", false, "Avoid toll roads where possible.")
	fl.BoolP("avoid-highways", "H", false, "Avoid highways (good for scooters and scenic routes).")
	fl.BoolP("directions", "d", false, "Display step-by-step navigation instructions.")
	fl.StringArrayP("find", "F", nil, "Search for places along the route. Repeatable.")
	fl.BoolP("weather", "W", false, "Fetch the forecast for points along the route.")
	fl.BoolP("elevation", "E", false, "Display an elevation profile chart for the route.")
	fl.StringP("depart", "D", "", "Departure date (YYYY-MM-DD) or RFC 3339 time, for forecasts.")
	fl.BoolP("url", "u", false, "Generate a Google Maps URL for this route.")
	fl.Bool("html", false, "Export the route report to '"+reportFile+"'.")
}

// runRoute composes the request, dispatches it to the vendor client, and
// renders the requested report sections in a fixed order.
func (a *App) runRoute(cmd *cobra.Command, args []string) error {
	fl := cmd.Flags()

	var ov domain.Overrides
	if fl.Changed("mode") {
		s, _ := fl.GetString("mode")
		m := domain.Mode(s)
		ov.Mode = &m
	}
	if fl.Changed("engine") {
		s, _ := fl.GetString("engine")
		e := domain.Engine(s)
		ov.Engine = &e
	}
	if fl.Changed("avoid-tolls") {
		b, _ := fl.GetBool("avoid-tolls")
		ov.AvoidTolls = &b
	}
	if fl.Changed("avoid-highways") {
		b, _ := fl.GetBool("avoid-highways")
		ov.AvoidHighways = &b
	}

	var depart *time.Time
	if fl.Changed("depart") {
		s, _ := fl.GetString("depart")
		t, err := parseDepart(s, a.Now())
		if err != nil {
			return err
		}
		depart = &t
	}

	find, _ := fl.GetStringArray("find")
	directions, _ := fl.GetBool("directions")
	weather, _ := fl.GetBool("weather")
	elevation, _ := fl.GetBool("elevation")
	mapsURL, _ := fl.GetBool("url")
	html, _ := fl.GetBool("html")
	originArg, _ := fl.GetString("origin")
	vehicleArg, _ := fl.GetString("with")

	// Credential resolution happens before any composition or network work;
	// its absence is reported, not swallowed.
	key, err := a.Config.ResolveAPIKey()
	if err != nil {
		return err
	}

	req, err := a.Composer.Compose(services.ComposeInput{
		Destination: strings.Join(args, " "),
		Origin:      originArg,
		Vehicle:     vehicleArg,
		Overrides:   ov,
		Extras: domain.Extras{
			Directions:  directions,
			SearchTerms: find,
			Weather:     weather,
			Elevation:   elevation,
			MapsURL:     mapsURL,
			HTML:        html,
			Depart:      depart,
		},
	})
	if err != nil {
		return err
	}

	provider, err := a.NewProvider(key)
	if err != nil {
		return err
	}

	a.applyDefaultOrigin(req)

	var rec *render.Recorder
	out := a.Out
	if req.Extras.HTML {
		rec = render.NewRecorder(a.Out)
		out = rec
	}
	r := render.New(out)

	r.RouteHeader(req)

	ctx := cmd.Context()
	route, err := provider.ComputeRoute(ctx, *req)
	if err != nil {
		return err
	}

	r.RouteSummary(route)

	if req.Extras.Elevation && route.Polyline != "" {
		samples, err := provider.ElevationAlongPath(ctx, route.Polyline, elevationSamples)
		if err != nil {
			fmt.Fprintf(out, "\nCould not fetch elevation data: %v\n", err)
		} else {
			r.ElevationProfile(samples)
		}
	}

	if req.Extras.Weather {
		start := a.Now()
		if depart != nil {
			start = *depart
		}
		a.renderWeather(ctx, provider, r, route, start)
	}

	if len(req.Extras.SearchTerms) > 0 && route.Polyline != "" {
		if err := a.renderSearches(ctx, provider, r, route, req.Extras.SearchTerms); err != nil {
			return err
		}
	}

	if req.Extras.Directions {
		r.Directions(route)
	}

	if req.Extras.MapsURL {
		r.MapsURL(render.BuildMapsURL(req.Origin.Address, req.Destination.Address, req.Mode))
	}

	if req.Extras.HTML {
		if err := render.ExportHTML(reportFile, "Roam route report", rec.Transcript()); err != nil {
			return err
		}
		fmt.Fprintf(a.Out, "\nReport saved to: %s\n", reportFile)
	}

	return nil
}

// applyDefaultOrigin fills a missing origin from the address book's "home"
// entry, falling back to the configured default.
func (a *App) applyDefaultOrigin(req *domain.RouteRequest) {
	if req.Origin != nil {
		return
	}

	if home, err := a.Places.Get("home"); err == nil {
		req.Origin = &domain.Waypoint{Raw: "home", Address: home.Address, FromBook: true}
		return
	}

	req.Origin = &domain.Waypoint{Raw: a.Config.DefaultOrigin, Address: a.Config.DefaultOrigin}
}

// renderWeather samples the route hourly and looks up the matching
// forecast per point: hourly within the feed's horizon, daily beyond it.
// Forecast misses degrade to "No data" rows rather than failing the route.
func (a *App) renderWeather(ctx context.Context, provider ports.RouteProvider, r *render.Renderer, route *domain.ComputedRoute, depart time.Time) {
	points := services.SampleForecastPoints(route, depart)
	now := a.Now()

	rows := make([]render.WeatherRow, 0, len(points))
	for _, pt := range points {
		row := render.WeatherRow{Label: pt.Label, At: pt.At}

		if services.UseDailyForecast(now, pt.At) {
			if daily, err := provider.DailyForecast(ctx, pt.Location); err == nil {
				if e, ok := services.DailyForecastFor(daily, pt.At); ok {
					row.Entry = &e
					row.FromDaily = true
				}
			}
		} else {
			if hourly, err := provider.HourlyForecast(ctx, pt.Location); err == nil {
				if e, ok := services.ClosestForecast(hourly, pt.At); ok {
					row.Entry = &e
				}
			}
		}

		rows = append(rows, row)
	}

	r.Weather(rows)
}

func (a *App) renderSearches(ctx context.Context, provider ports.RouteProvider, r *render.Renderer, route *domain.ComputedRoute, terms []string) error {
	path, err := geo.DecodePolyline(route.Polyline)
	if err != nil {
		return fmt.Errorf("decode route polyline: %w", err)
	}

	for _, term := range terms {
		places, err := provider.SearchAlongRoute(ctx, term, route.Polyline)
		if err != nil {
			return fmt.Errorf("search %q: %w", term, err)
		}

		r.SearchResults(term, services.EnrichPlaces(places, path))
	}

	return nil
}

// parseDepart accepts a bare date (kept at the current wall-clock time) or
// a full RFC 3339 timestamp.
func parseDepart(s string, now time.Time) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, nil
	}

	if d, err := time.ParseInLocation("2006-01-02", s, now.Location()); err == nil {
		return time.Date(d.Year(), d.Month(), d.Day(),
			now.Hour(), now.Minute(), 0, 0, now.Location()), nil
	}

	return time.Time{}, &domain.InvalidInputError{Field: "depart", Value: s}
}
