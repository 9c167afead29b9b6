// Package storage provides the key-value store the dashboards persist into.
// It plays the part of a browser's local storage: string keys, opaque values,
// last write wins.
package storage

import (
	"context"
	"errors"
	"fmt"

	"github.com/admin-dashboard/internal/config"
	"github.com/rs/zerolog"
)

// Supported store drivers
const (
	DriverBolt   = "bolt"
	DriverSQLite = "sqlite"
	DriverMemory = "memory"
)

// ErrUnknownDriver is returned by Open for an unsupported driver name
var ErrUnknownDriver = errors.New("unknown store driver")

// Store is a string-keyed byte store
type Store interface {
	// Get returns the value for key and whether it was present
	Get(ctx context.Context, key string) ([]byte, bool, error)
	// Set overwrites the value for key
	Set(ctx context.Context, key string, value []byte) error
	// Delete removes key, missing keys are not an error
	Delete(ctx context.Context, key string) error
	Close() error
}

// Open creates the store selected by cfg.Driver
func Open(cfg *config.StoreConfig, log zerolog.Logger) (Store, error) {
	log = log.With().Str("component", "storage").Str("driver", cfg.Driver).Logger()

	var (
		store Store
		err   error
	)
	switch cfg.Driver {
	case DriverBolt:
		store, err = NewBoltStore(cfg.Path, cfg.OpenTimeout)
	case DriverSQLite:
		store, err = NewSQLiteStore(cfg.Path)
	case DriverMemory:
		store = NewMemoryStore()
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownDriver, cfg.Driver)
	}
	if err != nil {
		return nil, err
	}

	log.Info().Str("path", cfg.Path).Msg("Store opened")
	return store, nil
}
