// Package store persists the salary and spending collections in a small
// local key-value store, similar to a browser's localStorage.
package store

import (
	"fmt"
	"path"

	c "git.cmcode.dev/cmcode/finance-calendar-tui/constants"
	m "git.cmcode.dev/cmcode/finance-calendar-tui/models"

	"github.com/adrg/xdg"
)

// KV is a synchronous key-value store holding raw JSON values.
type KV interface {
	// Get returns the value for key. The second return value is false when
	// the key has never been set.
	Get(key string) ([]byte, bool, error)
	// Set overwrites the value for key.
	Set(key string, value []byte) error
	Close() error
}

// DefaultPath returns the xdg data path for the provided backend, creating
// the parent directory if necessary.
func DefaultPath(backend string) (string, error) {
	file := c.DefaultFileStore
	if backend == c.StoreBackendSQLite {
		file = c.DefaultSQLiteStore
	}

	p, err := xdg.DataFile(path.Join(c.DefaultConfigParentDir, file))
	if err != nil {
		return "", fmt.Errorf("failed to resolve data path for %v: %w", file, err)
	}

	return p, nil
}

// Open creates the KV backend described by conf. An empty backend defaults
// to the file backend, and an empty path defaults to the xdg data directory.
func Open(conf m.StoreConfig) (KV, error) {
	backend := conf.Backend
	if backend == "" {
		backend = c.StoreBackendFile
	}

	if backend == c.StoreBackendMemory {
		return NewMemoryKV(), nil
	}

	p := conf.Path
	if p == "" {
		var err error

		p, err = DefaultPath(backend)
		if err != nil {
			return nil, err
		}
	}

	switch backend {
	case c.StoreBackendFile:
		return NewFileKV(p)
	case c.StoreBackendSQLite:
		return NewSQLiteKV(p)
	default:
		return nil, fmt.Errorf("unsupported store backend %q", backend)
	}
}
