package profilestore

import (
	"fmt"
	"path/filepath"
	"strings"

	"roam/internal/domain"
)

// PlaceStore is the JSON-file-backed implementation of the AddressBook port.
// Entries live in places.json under the config directory.
type PlaceStore struct {
	path string
}

func NewPlaceStore(configDir string) *PlaceStore {
	return &PlaceStore{path: filepath.Join(configDir, "places.json")}
}

func (s *PlaceStore) Upsert(p domain.SavedPlace) error {
	if err := p.Validate(); err != nil {
		return err
	}

	places, err := s.load()
	if err != nil {
		return err
	}

	replaced := false
	for i := range places {
		if strings.EqualFold(places[i].Name, p.Name) {
			places[i] = p
			replaced = true
			break
		}
	}
	if !replaced {
		places = append(places, p)
	}

	if err := writeCollection(s.path, places); err != nil {
		return fmt.Errorf("place store: %w", err)
	}
	return nil
}

func (s *PlaceStore) Get(name string) (domain.SavedPlace, error) {
	places, err := s.load()
	if err != nil {
		return domain.SavedPlace{}, err
	}

	for _, p := range places {
		if strings.EqualFold(p.Name, name) {
			return p, nil
		}
	}

	return domain.SavedPlace{}, fmt.Errorf("place store: place %q: %w", name, domain.ErrNotFound)
}

func (s *PlaceStore) List() ([]domain.SavedPlace, error) {
	return s.load()
}

func (s *PlaceStore) Remove(name string) error {
	places, err := s.load()
	if err != nil {
		return err
	}

	for i, p := range places {
		if strings.EqualFold(p.Name, name) {
			places = append(places[:i], places[i+1:]...)
			if err := writeCollection(s.path, places); err != nil {
				return fmt.Errorf("place store: %w", err)
			}
			return nil
		}
	}

	return fmt.Errorf("place store: place %q: %w", name, domain.ErrNotFound)
}

func (s *PlaceStore) load() ([]domain.SavedPlace, error) {
	var places []domain.SavedPlace
	if err := readCollection(s.path, &places); err != nil {
		return nil, fmt.Errorf("place store: %w", err)
	}
	return places, nil
}
