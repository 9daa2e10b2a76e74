package services

import (
	"math"
	"sort"

	"roam/internal/domain"
	"roam/internal/geo"
)

// nearestScanStep subsamples the route path for the nearest-point scan.
// Route polylines routinely carry thousands of points; checking every fifth
// one keeps the scan cheap without visibly moving the trip-mile estimate.
const nearestScanStep = 5

// EnrichPlaces annotates each search hit with how far into the trip it sits
// (trip mile) and how far off the route path it lies (detour), then sorts
// the hits into trip order. The input slice is annotated in place and also
// returned.
func EnrichPlaces(places []domain.Place, path []domain.Coordinates) []domain.Place {
	if len(path) == 0 {
		return places
	}

	cumulative := geo.CumulativeMiles(path)

	sub := make([]domain.Coordinates, 0, len(path)/nearestScanStep+1)
	for i := 0; i < len(path); i += nearestScanStep {
		sub = append(sub, path[i])
	}

	for i := range places {
		loc := places[i].Location
		if loc.Lat == 0 && loc.Lng == 0 {
			places[i].TripMiles = math.Inf(1)
			places[i].DetourMiles = math.Inf(1)
			continue
		}

		subIndex, detour := geo.NearestPointIndex(loc, sub)

		// Map the subsampled index back onto the full path for the
		// cumulative distance lookup.
		realIndex := subIndex * nearestScanStep
		if realIndex >= len(cumulative) {
			realIndex = len(cumulative) - 1
		}

		places[i].DetourMiles = detour
		places[i].TripMiles = cumulative[realIndex]
	}

	sort.SliceStable(places, func(a, b int) bool {
		return places[a].TripMiles < places[b].TripMiles
	})

	return places
}
