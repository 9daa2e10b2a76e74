package services

import (
	"errors"
	"testing"

	"roam/internal/adapters/profilestore"
	"roam/internal/domain"
)

func newTestComposer(t *testing.T) (*Composer, *profilestore.GarageStore, *profilestore.PlaceStore) {
	t.Helper()
	dir := t.TempDir()
	garage := profilestore.NewGarageStore(dir)
	places := profilestore.NewPlaceStore(dir)
	return NewComposer(garage, places), garage, places
}

func TestComposeDefaults(t *testing.T) {
	c, _, _ := newTestComposer(t)

	req, err := c.Compose(ComposeInput{Destination: "Los Angeles"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if req.Mode != domain.ModeDrive {
		t.Fatalf("mode = %q, want drive", req.Mode)
	}
	if req.Engine != domain.EngineGasoline {
		t.Fatalf("engine = %q, want gasoline", req.Engine)
	}
	if req.AvoidTolls || req.AvoidHighways {
		t.Fatalf("avoids = %v/%v, want false/false", req.AvoidTolls, req.AvoidHighways)
	}
	if req.Origin != nil {
		t.Fatalf("origin = %+v, want nil for unspecified origin", req.Origin)
	}
	if req.Destination.Address != "Los Angeles" || req.Destination.FromBook {
		t.Fatalf("destination = %+v, want literal Los Angeles", req.Destination)
	}
}

func TestComposeVehicleProfile(t *testing.T) {
	c, garage, _ := newTestComposer(t)

	tesla := domain.VehicleProfile{
		Name:       "tesla",
		Mode:       domain.ModeDrive,
		Engine:     domain.EngineElectric,
		AvoidTolls: true,
	}
	if err := garage.Upsert(tesla); err != nil {
		t.Fatalf("seed garage: %v", err)
	}

	req, err := c.Compose(ComposeInput{Destination: "Los Angeles", Vehicle: "tesla"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if req.Mode != domain.ModeDrive || req.Engine != domain.EngineElectric || !req.AvoidTolls {
		t.Fatalf("got %q/%q/tolls=%v, want drive/electric/tolls=true", req.Mode, req.Engine, req.AvoidTolls)
	}
}

func TestComposeExplicitOverrideBeatsProfile(t *testing.T) {
	c, garage, _ := newTestComposer(t)

	tesla := domain.VehicleProfile{
		Name:       "tesla",
		Mode:       domain.ModeDrive,
		Engine:     domain.EngineElectric,
		AvoidTolls: true,
	}
	if err := garage.Upsert(tesla); err != nil {
		t.Fatalf("seed garage: %v", err)
	}

	// An explicit false must flip the profile's true, and only that field.
	noTolls := false
	req, err := c.Compose(ComposeInput{
		Destination: "Los Angeles",
		Vehicle:     "tesla",
		Overrides:   domain.Overrides{AvoidTolls: &noTolls},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if req.AvoidTolls {
		t.Fatal("avoid tolls survived an explicit false override")
	}
	if req.Mode != domain.ModeDrive || req.Engine != domain.EngineElectric {
		t.Fatalf("got %q/%q, want untouched drive/electric", req.Mode, req.Engine)
	}
}

func TestComposeModeOverride(t *testing.T) {
	c, _, _ := newTestComposer(t)

	bike := domain.ModeBicycle
	req, err := c.Compose(ComposeInput{
		Destination: "Los Angeles",
		Overrides:   domain.Overrides{Mode: &bike},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if req.Mode != domain.ModeBicycle {
		t.Fatalf("mode = %q, want bicycle", req.Mode)
	}
}

func TestComposeResolvesSavedPlaces(t *testing.T) {
	c, _, places := newTestComposer(t)

	if err := places.Upsert(domain.SavedPlace{Name: "home", Address: "123 Main St, Brooklyn, NY"}); err != nil {
		t.Fatalf("seed places: %v", err)
	}

	req, err := c.Compose(ComposeInput{Destination: "home", Origin: "Los Angeles"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !req.Destination.FromBook {
		t.Fatal("destination did not resolve from the address book")
	}
	if req.Destination.Address != "123 Main St, Brooklyn, NY" {
		t.Fatalf("destination address = %q, want saved home address", req.Destination.Address)
	}
	if req.Destination.Raw != "home" {
		t.Fatalf("destination raw = %q, want the typed name", req.Destination.Raw)
	}

	if req.Origin == nil || req.Origin.FromBook {
		t.Fatalf("origin = %+v, want literal Los Angeles", req.Origin)
	}
}

func TestComposeUnknownVehicle(t *testing.T) {
	c, _, _ := newTestComposer(t)

	_, err := c.Compose(ComposeInput{Destination: "Los Angeles", Vehicle: "batmobile"})
	if !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("error = %v, want NotFound", err)
	}
}

func TestComposeInvalidInput(t *testing.T) {
	flying := domain.Mode("flying")

	tests := []struct {
		name  string
		in    ComposeInput
		field string
	}{
		{
			name:  "empty destination",
			in:    ComposeInput{Destination: "  "},
			field: "destination",
		},
		{
			name: "unknown mode",
			in: ComposeInput{
				Destination: "Los Angeles",
				Overrides:   domain.Overrides{Mode: &flying},
			},
			field: "mode",
		},
		{
			name: "blank search term",
			in: ComposeInput{
				Destination: "Los Angeles",
				Extras:      domain.Extras{SearchTerms: []string{"coffee", " "}},
			},
			field: "search",
		},
	}

	c, _, _ := newTestComposer(t)

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := c.Compose(tc.in)

			var invalid *domain.InvalidInputError
			if !errors.As(err, &invalid) {
				t.Fatalf("error = %v, want InvalidInputError", err)
			}
			if invalid.Field != tc.field {
				t.Fatalf("field = %q, want %q", invalid.Field, tc.field)
			}
		})
	}
}

func TestComposeInvalidModeNamesAllowedValues(t *testing.T) {
	c, _, _ := newTestComposer(t)

	flying := domain.Mode("flying")
	_, err := c.Compose(ComposeInput{
		Destination: "Los Angeles",
		Overrides:   domain.Overrides{Mode: &flying},
	})

	var invalid *domain.InvalidInputError
	if !errors.As(err, &invalid) {
		t.Fatalf("error = %v, want InvalidInputError", err)
	}
	if len(invalid.Allowed) != len(domain.Modes()) {
		t.Fatalf("allowed = %v, want the full mode list", invalid.Allowed)
	}
	if invalid.Value != "flying" {
		t.Fatalf("value = %q, want flying", invalid.Value)
	}
}
