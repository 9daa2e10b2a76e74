package render

import (
	"net/url"

	"roam/internal/domain"
)

const mapsDirBase = "https://www.google.com/maps/dir/?api=1"

// BuildMapsURL generates a universal Google Maps directions URL for the
// resolved route. The Maps URL scheme has no two-wheeler travel mode, so
// that mode shares the driving link.
func BuildMapsURL(origin, destination string, mode domain.Mode) string {
	travelMode := "driving"
	switch mode {
	case domain.ModeBicycle:
		travelMode = "bicycling"
	case domain.ModeTransit:
		travelMode = "transit"
	case domain.ModeWalk:
		travelMode = "walking"
	}

	params := url.Values{}
	params.Set("origin", origin)
	params.Set("destination", destination)
	params.Set("travelmode", travelMode)

	return mapsDirBase + "&" + params.Encode()
}
