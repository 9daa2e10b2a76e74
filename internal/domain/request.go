package domain

import "time"

// Waypoint is an origin or destination: either a literal address typed on
// the command line, or a saved place resolved to its stored address. The
// resolution happens once, at the composer boundary.
type Waypoint struct {
	// Raw is exactly what the user supplied.
	Raw string
	// Address is what gets handed to the vendor API.
	Address string
	// FromBook is true when Raw matched an address-book entry.
	FromBook bool
}

// Overrides are explicit CLI flag values layered over a vehicle profile (or
// over the hard defaults). A nil field means the flag was not given, which
// is distinct from the flag carrying its zero value.
type Overrides struct {
	Mode          *Mode
	Engine        *Engine
	AvoidHighways *bool
	AvoidTolls    *bool
}

// Extras toggles the optional report sections of a routing invocation. The
// flags are independent, not mutually exclusive.
type Extras struct {
	Directions  bool
	SearchTerms []string
	Weather     bool
	Elevation   bool
	MapsURL     bool
	HTML        bool
	// Depart anchors forecast lookups; nil means "now".
	Depart *time.Time
}

// RouteRequest is the normalized, per-invocation routing request descriptor.
// It is composed from a vehicle profile, resolved waypoints, and explicit
// overrides, handed to the vendor API client, and never persisted.
type RouteRequest struct {
	// Origin is nil when the user gave none; the caller substitutes its
	// configured default origin before dispatching the request.
	Origin        *Waypoint
	Destination   Waypoint
	Mode          Mode   `validate:"required,oneof=drive bicycle two_wheeler transit walk"`
	Engine        Engine `validate:"omitempty,oneof=gasoline electric hybrid diesel"`
	AvoidHighways bool
	AvoidTolls    bool
	Extras        Extras
}

// Validate checks the resolved mode and engine against the recognized
// enumerations.
func (r RouteRequest) Validate() error {
	return checkStruct(r)
}
