package services

import (
	"errors"
	"fmt"
	"strings"

	"roam/internal/domain"
	"roam/internal/ports"
)

// Hard defaults used when neither a vehicle profile nor an explicit flag
// supplies a field.
const (
	DefaultMode   = domain.ModeDrive
	DefaultEngine = domain.EngineGasoline
)

// Composer builds one normalized RouteRequest per invocation from the raw
// CLI input plus profile-store lookups. It is a pure function of its inputs
// and the store contents; it never mutates stored records and never touches
// the network.
type Composer struct {
	Garage ports.GarageStore
	Places ports.AddressBook
}

func NewComposer(garage ports.GarageStore, places ports.AddressBook) *Composer {
	return &Composer{Garage: garage, Places: places}
}

// ComposeInput is the raw material of one routing invocation.
type ComposeInput struct {
	Destination string
	// Origin is empty when the user gave none; the composed request then
	// carries a nil origin for the caller to default.
	Origin string
	// Vehicle is the --with profile name, empty for none.
	Vehicle   string
	Overrides domain.Overrides
	Extras    domain.Extras
}

// Compose resolves waypoints and vehicle fields and assembles the request.
//
// Field precedence is fixed: explicit override > vehicle-profile value >
// hard default. Overrides replace field by field, never merge.
func (c *Composer) Compose(in ComposeInput) (*domain.RouteRequest, error) {
	if strings.TrimSpace(in.Destination) == "" {
		return nil, &domain.InvalidInputError{Field: "destination", Value: in.Destination}
	}

	dest, err := c.resolveWaypoint(in.Destination)
	if err != nil {
		return nil, fmt.Errorf("compose: resolve destination: %w", err)
	}

	var origin *domain.Waypoint
	if strings.TrimSpace(in.Origin) != "" {
		w, err := c.resolveWaypoint(in.Origin)
		if err != nil {
			return nil, fmt.Errorf("compose: resolve origin: %w", err)
		}
		origin = &w
	}

	// Base values come from the vehicle profile when given, else defaults.
	base := domain.VehicleProfile{Mode: DefaultMode, Engine: DefaultEngine}
	if in.Vehicle != "" {
		v, err := c.Garage.Get(in.Vehicle)
		if err != nil {
			return nil, fmt.Errorf("compose: vehicle %q: %w", in.Vehicle, err)
		}
		base = v
	}

	req := &domain.RouteRequest{
		Origin:        origin,
		Destination:   dest,
		Mode:          base.Mode,
		Engine:        base.Engine,
		AvoidHighways: base.AvoidHighways,
		AvoidTolls:    base.AvoidTolls,
		Extras:        in.Extras,
	}

	ov := in.Overrides
	if ov.Mode != nil {
		req.Mode = *ov.Mode
	}
	if ov.Engine != nil {
		req.Engine = *ov.Engine
	}
	if ov.AvoidHighways != nil {
		req.AvoidHighways = *ov.AvoidHighways
	}
	if ov.AvoidTolls != nil {
		req.AvoidTolls = *ov.AvoidTolls
	}

	if err := req.Validate(); err != nil {
		return nil, err
	}

	for _, term := range in.Extras.SearchTerms {
		if strings.TrimSpace(term) == "" {
			return nil, &domain.InvalidInputError{Field: "search", Value: term}
		}
	}

	return req, nil
}

// resolveWaypoint substitutes a saved place's address when the argument
// matches an address-book name; otherwise the raw string is taken as a
// literal address or query.
func (c *Composer) resolveWaypoint(arg string) (domain.Waypoint, error) {
	p, err := c.Places.Get(arg)
	if err == nil {
		return domain.Waypoint{Raw: arg, Address: p.Address, FromBook: true}, nil
	}
	if errors.Is(err, domain.ErrNotFound) {
		return domain.Waypoint{Raw: arg, Address: arg}, nil
	}
	// StoreCorrupt and other store failures propagate.
	return domain.Waypoint{}, err
}
