// Package backend opens the storage backend selected by configuration.
package backend

import (
	"fmt"

	"github.com/mmynk/splitledger/internal/config"
	"github.com/mmynk/splitledger/internal/storage"
	"github.com/mmynk/splitledger/internal/storage/jsonfile"
	"github.com/mmynk/splitledger/internal/storage/sqlite"
)

// OpenStore returns the store for cfg.StorageBackend.
func OpenStore(cfg *config.Config) (storage.Store, error) {
	switch cfg.StorageBackend {
	case config.BackendSQLite:
		return sqlite.New(cfg.DBPath)
	case config.BackendJSON:
		return jsonfile.New(cfg.DataDir)
	default:
		return nil, fmt.Errorf("unsupported storage backend: %s", cfg.StorageBackend)
	}
}

// Location describes where the store for cfg keeps its data, for logging.
func Location(cfg *config.Config) string {
	if cfg.StorageBackend == config.BackendJSON {
		return cfg.DataDir
	}
	return cfg.DBPath
}
