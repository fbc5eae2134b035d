package storage

import (
	"fmt"
	"path/filepath"

	"focusguard/internal/core/ledger"
	"focusguard/internal/core/model"
)

// StatsStore is a ledger.Store that owns a resource.
type StatsStore interface {
	ledger.Store
	Close() error
}

// OpenStatsStore creates the stats store for backend inside dir.
func OpenStatsStore(backend, dir string) (StatsStore, error) {
	if backend == "" {
		backend = model.BackendFile
	}

	switch backend {
	case model.BackendFile:
		return NewFileStatsStore(dir), nil
	case model.BackendSQLite:
		store, err := NewSQLiteStatsStore(filepath.Join(dir, SQLiteFileName))
		if err != nil {
			return nil, err
		}
		return store, nil
	case model.BackendMemory:
		return NewMemoryStatsStore(), nil
	default:
		return nil, fmt.Errorf("unknown stats backend: %s (supported: file, sqlite, memory)", backend)
	}
}
