package ports

import "roam/internal/domain"

// Port: durable, name-indexed storage for the garage collection.
// Name comparisons are case-insensitive; List preserves insertion order
// across process restarts.
type GarageStore interface {
	// Insert or overwrite the profile stored under its name.
	Upsert(v domain.VehicleProfile) error
	// Retrieve a profile, or ErrNotFound.
	Get(name string) (domain.VehicleProfile, error)
	// Retrieve all profiles in insertion order.
	List() ([]domain.VehicleProfile, error)
	// Delete a profile, or ErrNotFound when absent.
	Remove(name string) error
}

// Port: durable, name-indexed storage for the address book.
type AddressBook interface {
	Upsert(p domain.SavedPlace) error
	Get(name string) (domain.SavedPlace, error)
	List() ([]domain.SavedPlace, error)
	Remove(name string) error
}
