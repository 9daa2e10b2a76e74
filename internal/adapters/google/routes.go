package google

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"roam/internal/domain"
	"roam/internal/platform/obs"
)

// routesFieldMask keeps the computeRoutes response down to the fields the
// reports consume.
const routesFieldMask = "routes.duration," +
	"routes.distanceMeters," +
	"routes.polyline.encodedPolyline," +
	"routes.legs.startLocation," +
	"routes.legs.endLocation," +
	"routes.legs.steps.navigationInstruction," +
	"routes.legs.steps.distanceMeters," +
	"routes.legs.steps.staticDuration," +
	"routes.legs.steps.endLocation"

type computeRoutesPayload struct {
	Origin                   addressWaypoint `json:"origin"`
	Destination              addressWaypoint `json:"destination"`
	TravelMode               string          `json:"travelMode"`
	RoutingPreference        string          `json:"routingPreference,omitempty"`
	ComputeAlternativeRoutes bool            `json:"computeAlternativeRoutes"`
	RouteModifiers           routeModifiers  `json:"routeModifiers"`
	LanguageCode             string          `json:"languageCode"`
	Units                    string          `json:"units"`
}

type addressWaypoint struct {
	Address string `json:"address"`
}

type routeModifiers struct {
	AvoidTolls    bool         `json:"avoidTolls"`
	AvoidHighways bool         `json:"avoidHighways"`
	AvoidFerries  bool         `json:"avoidFerries"`
	VehicleInfo   *vehicleInfo `json:"vehicleInfo,omitempty"`
}

type vehicleInfo struct {
	EmissionType string `json:"emissionType"`
}

type latLngWrapper struct {
	LatLng struct {
		Latitude  float64 `json:"latitude"`
		Longitude float64 `json:"longitude"`
	} `json:"latLng"`
}

func (w latLngWrapper) coordinates() domain.Coordinates {
	return domain.Coordinates{Lat: w.LatLng.Latitude, Lng: w.LatLng.Longitude}
}

type computeRoutesResponse struct {
	Routes []struct {
		DistanceMeters int    `json:"distanceMeters"`
		Duration       string `json:"duration"`
		Polyline       struct {
			EncodedPolyline string `json:"encodedPolyline"`
		} `json:"polyline"`
		Legs []struct {
			StartLocation latLngWrapper `json:"startLocation"`
			EndLocation   latLngWrapper `json:"endLocation"`
			Steps         []struct {
				DistanceMeters        int           `json:"distanceMeters"`
				StaticDuration        string        `json:"staticDuration"`
				EndLocation           latLngWrapper `json:"endLocation"`
				NavigationInstruction struct {
					Maneuver     string `json:"maneuver"`
					Instructions string `json:"instructions"`
				} `json:"navigationInstruction"`
			} `json:"steps"`
		} `json:"legs"`
	} `json:"routes"`
}

// ComputeRoute computes a route via the Routes API v2. The request's origin
// must be resolved (non-nil) before the call.
func (c *Client) ComputeRoute(ctx context.Context, req domain.RouteRequest) (_ *domain.ComputedRoute, err error) {
	defer obs.Time("google.ComputeRoute")(&err)

	if req.Origin == nil {
		return nil, fmt.Errorf("compute route: origin is unresolved")
	}

	payload := computeRoutesPayload{
		Origin:      addressWaypoint{Address: req.Origin.Address},
		Destination: addressWaypoint{Address: req.Destination.Address},
		TravelMode:  strings.ToUpper(string(req.Mode)),
		RouteModifiers: routeModifiers{
			AvoidTolls:    req.AvoidTolls,
			AvoidHighways: req.AvoidHighways,
		},
		LanguageCode: "en-US",
		Units:        "IMPERIAL",
	}

	// The Routes API rejects routing preferences and vehicle emission data
	// outside of the motorized modes.
	switch req.Mode {
	case domain.ModeDrive, domain.ModeTwoWheeler:
		payload.RoutingPreference = "TRAFFIC_AWARE"
	}
	if req.Mode == domain.ModeDrive && req.Engine != "" {
		payload.RouteModifiers.VehicleInfo = &vehicleInfo{
			EmissionType: strings.ToUpper(string(req.Engine)),
		}
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("compute route: encode payload: %w", err)
	}

	resp, err := c.doWithRetry(ctx, func() (*http.Request, error) {
		return c.newRequest(ctx, http.MethodPost, c.routesURL, routesFieldMask, bytes.NewReader(body))
	})
	if err != nil {
		return nil, fmt.Errorf("compute route: %w", err)
	}
	defer resp.Body.Close()

	var decoded computeRoutesResponse
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return nil, fmt.Errorf("compute route: decode response: %w", err)
	}

	if len(decoded.Routes) == 0 {
		return nil, fmt.Errorf(
			"compute route: no routes returned for %q -> %q",
			req.Origin.Address, req.Destination.Address,
		)
	}

	r := decoded.Routes[0]
	out := &domain.ComputedRoute{
		DistanceMeters: r.DistanceMeters,
		Duration:       parseSeconds(r.Duration),
		Polyline:       r.Polyline.EncodedPolyline,
	}

	for _, leg := range r.Legs {
		l := domain.Leg{
			Start: leg.StartLocation.coordinates(),
			End:   leg.EndLocation.coordinates(),
		}
		for _, step := range leg.Steps {
			l.Steps = append(l.Steps, domain.Step{
				Instruction:    step.NavigationInstruction.Instructions,
				Maneuver:       step.NavigationInstruction.Maneuver,
				DistanceMeters: step.DistanceMeters,
				StaticDuration: parseSeconds(step.StaticDuration),
				End:            step.EndLocation.coordinates(),
			})
		}
		out.Legs = append(out.Legs, l)
	}

	return out, nil
}
