package profilestore

import (
	"fmt"
	"path/filepath"
	"strings"

	"roam/internal/domain"
)

// GarageStore is the JSON-file-backed implementation of the GarageStore
// port. Profiles live in garage.json under the config directory.
type GarageStore struct {
	path string
}

func NewGarageStore(configDir string) *GarageStore {
	return &GarageStore{path: filepath.Join(configDir, "garage.json")}
}

// Insert or overwrite the profile stored under its name. An overwrite keeps
// the record's position in the listing order.
func (s *GarageStore) Upsert(v domain.VehicleProfile) error {
	if err := v.Validate(); err != nil {
		return err
	}

	vehicles, err := s.load()
	if err != nil {
		return err
	}

	replaced := false
	for i := range vehicles {
		if strings.EqualFold(vehicles[i].Name, v.Name) {
			vehicles[i] = v
			replaced = true
			break
		}
	}
	if !replaced {
		vehicles = append(vehicles, v)
	}

	if err := writeCollection(s.path, vehicles); err != nil {
		return fmt.Errorf("garage store: %w", err)
	}
	return nil
}

// Retrieve the profile with a case-insensitive name match.
func (s *GarageStore) Get(name string) (domain.VehicleProfile, error) {
	vehicles, err := s.load()
	if err != nil {
		return domain.VehicleProfile{}, err
	}

	for _, v := range vehicles {
		if strings.EqualFold(v.Name, name) {
			return v, nil
		}
	}

	return domain.VehicleProfile{}, fmt.Errorf("garage store: vehicle %q: %w", name, domain.ErrNotFound)
}

// Retrieve all profiles in insertion order.
func (s *GarageStore) List() ([]domain.VehicleProfile, error) {
	return s.load()
}

// Delete the named profile. A second remove of the same name fails with
// NotFound.
func (s *GarageStore) Remove(name string) error {
	vehicles, err := s.load()
	if err != nil {
		return err
	}

	for i, v := range vehicles {
		if strings.EqualFold(v.Name, name) {
			vehicles = append(vehicles[:i], vehicles[i+1:]...)
			if err := writeCollection(s.path, vehicles); err != nil {
				return fmt.Errorf("garage store: %w", err)
			}
			return nil
		}
	}

	return fmt.Errorf("garage store: vehicle %q: %w", name, domain.ErrNotFound)
}

func (s *GarageStore) load() ([]domain.VehicleProfile, error) {
	var vehicles []domain.VehicleProfile
	if err := readCollection(s.path, &vehicles); err != nil {
		return nil, fmt.Errorf("garage store: %w", err)
	}
	return vehicles, nil
}
