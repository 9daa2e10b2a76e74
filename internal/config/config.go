package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"roam/internal/domain"
)

// Config carries process-wide settings. It is built once in main and passed
// explicitly into the store and composer constructors so both stay testable
// against temp directories and fake keys.
type Config struct {
	// APIKey is the Maps Platform credential. It may be empty; routing
	// commands resolve it (and fail with MissingCredential) before any
	// network work, while garage/places commands never need it.
	APIKey string

	// ConfigDir holds garage.json and places.json.
	ConfigDir string

	// DefaultOrigin is used when an invocation names no origin and the
	// address book has no "home" entry.
	DefaultOrigin string
}

// FallbackOrigin is the origin of last resort when nothing is configured.
const FallbackOrigin = "New York, NY"

// Load reads configuration from the environment with sensible defaults.
func Load() (*Config, error) {
	dir := os.Getenv("ROAM_CONFIG_DIR")
	if dir == "" {
		base, err := os.UserConfigDir()
		if err != nil {
			return nil, fmt.Errorf("load config: resolve user config dir: %w", err)
		}
		dir = filepath.Join(base, "roam")
	}

	return &Config{
		APIKey:        os.Getenv("GOOGLE_MAPS_API_KEY"),
		ConfigDir:     dir,
		DefaultOrigin: Get("ROAM_HOME", FallbackOrigin),
	}, nil
}

// ResolveAPIKey returns the configured credential or MissingCredential.
// This core never uses the key itself; it hands it to the API client.
func (c *Config) ResolveAPIKey() (string, error) {
	if strings.TrimSpace(c.APIKey) == "" {
		return "", domain.ErrMissingCredential
	}
	return c.APIKey, nil
}

// Get returns the environment value for key, or fallback when unset.
func Get(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
