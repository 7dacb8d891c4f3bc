// Package tokenstore keeps the auth token in a single named slot of local
// device storage.
package tokenstore

import (
	"errors"
	"fmt"
)

// Slot is the name the token is stored under.
const Slot = "authToken"

// Backend names accepted by Open.
const (
	BackendDiskv  = "diskv"
	BackendSQLite = "sqlite"
)

// Sentinel errors for token storage.
var (
	ErrNotFound = errors.New("token not found")
	ErrStorage  = errors.New("token storage error")
)

// Store is a one-slot token store.
type Store interface {
	// Set replaces the stored token.
	Set(token string) error
	// Get returns the stored token or ErrNotFound.
	Get() (string, error)
	// Remove clears the slot. Removing an empty slot is not an error.
	Remove() error
	Close() error
}

// Open returns the named backend rooted at dataDir.
func Open(backend, dataDir string) (Store, error) {
	switch backend {
	case "", BackendDiskv:
		s, err := NewDiskv(dataDir)
		if err != nil {
			return nil, err
		}
		return s, nil
	case BackendSQLite:
		s, err := NewSQLite(dataDir)
		if err != nil {
			return nil, err
		}
		return s, nil
	default:
		return nil, fmt.Errorf("%w: unknown token store %q (want %s or %s)", ErrStorage, backend, BackendDiskv, BackendSQLite)
	}
}
