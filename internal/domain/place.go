package domain

// SavedPlace is a named address-book entry. The address is free text
// (street address, city, or coordinate string) and is passed through to the
// vendor API without interpretation.
type SavedPlace struct {
	Name    string `json:"name" validate:"required"`
	Address string `json:"address" validate:"required"`
}

// Validate checks that both the name and the address are present.
func (p SavedPlace) Validate() error {
	return checkStruct(p)
}
