// Package store provides the key-value settings capability the engine's
// collaborators persist their blobs through (custom rules, recent and saved
// searches). The engine never depends on a specific storage medium.
package store

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Store is a string key-value store.
type Store interface {
	// Get returns the value for key and whether it was present.
	Get(key string) (string, bool, error)
	// Set stores value under key, replacing any previous value.
	Set(key, value string) error
	// Delete removes key. Deleting a missing key is not an error.
	Delete(key string) error
}

// Backend names accepted by Open.
const (
	BackendMemory = "memory"
	BackendFile   = "file"
	BackendSQLite = "sqlite"
)

// ErrUnknownBackend is returned by Open for an unsupported backend name.
var ErrUnknownBackend = errors.New("unknown settings backend")

// Open creates the store for backend rooted at path. An empty path selects
// the default location under the user's home directory.
func Open(backend, path string) (Store, error) {
	switch strings.ToLower(backend) {
	case BackendMemory:
		return NewMemoryStore(), nil
	case BackendFile, "":
		if path == "" {
			path = DefaultPath("settings")
		}
		return NewFileStore(path)
	case BackendSQLite:
		if path == "" {
			path = DefaultPath("settings.db")
		}
		return NewSQLiteStore(path)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownBackend, backend)
	}
}

// DefaultPath returns name inside ~/.orcamento, or inside .orcamento in the
// working directory when the home directory cannot be determined.
func DefaultPath(name string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".orcamento", name)
	}
	return filepath.Join(home, ".orcamento", name)
}

// Close releases resources held by s when it has any.
func Close(s Store) error {
	if c, ok := s.(interface{ Close() error }); ok {
		return c.Close()
	}
	return nil
}
