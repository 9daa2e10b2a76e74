// Package profilestore persists the garage and address-book collections as
// JSON documents in the local configuration directory. Each collection is an
// ordered array keyed by name, so listings are stable across restarts, and
// every write replaces the whole document atomically.
package profilestore

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"roam/internal/domain"
)

// readCollection decodes the JSON array at path into dst. A missing file is
// an empty collection, not an error; anything else unreadable or undecodable
// is reported as StoreCorrupt.
func readCollection(path string, dst any) error {
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("%w: read %s: %v", domain.ErrStoreCorrupt, path, err)
	}

	if err := json.Unmarshal(data, dst); err != nil {
		return fmt.Errorf("%w: decode %s: %v", domain.ErrStoreCorrupt, path, err)
	}

	return nil
}

// writeCollection replaces the document at path with the encoded collection.
// The write goes to a temp file in the same directory which is fsynced and
// renamed over the target, so an interrupted write leaves the prior document
// intact.
func writeCollection(path string, v any) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("write %s: create config dir: %w", path, err)
	}

	tmp, err := os.CreateTemp(dir, filepath.Base(path)+".tmp-*")
	if err != nil {
		return fmt.Errorf("write %s: create temp file: %w", path, err)
	}

	// Clean up the temp file on any failure before the rename.
	fail := func(op string, cause error) error {
		tmp.Close()
		os.Remove(tmp.Name())
		return fmt.Errorf("write %s: %s: %w", path, op, cause)
	}

	enc := json.NewEncoder(tmp)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return fail("encode", err)
	}

	if err := tmp.Sync(); err != nil {
		return fail("sync", err)
	}

	if err := tmp.Close(); err != nil {
		return fail("close", err)
	}

	if err := os.Rename(tmp.Name(), path); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("write %s: rename temp file: %w", path, err)
	}

	return nil
}
