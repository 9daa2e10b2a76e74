package domain

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrNotFound reports that a referenced vehicle or place name has no
	// case-insensitive match in its store.
	ErrNotFound = errors.New("not found")

	// ErrStoreCorrupt reports that a persisted collection exists but could
	// not be read or decoded.
	ErrStoreCorrupt = errors.New("store corrupt")

	// ErrMissingCredential reports that no API key is configured.
	ErrMissingCredential = errors.New("missing credential: set GOOGLE_MAPS_API_KEY")
)

// InvalidInputError names a rejected field, the offending value, and the
// accepted set when the field is an enumeration.
type InvalidInputError struct {
	Field   string
	Value   string
	Allowed []string
}

func (e *InvalidInputError) Error() string {
	if len(e.Allowed) == 0 {
		return fmt.Sprintf("invalid %s: %q", e.Field, e.Value)
	}
	return fmt.Sprintf("invalid %s %q (allowed: %s)", e.Field, e.Value, strings.Join(e.Allowed, ", "))
}
