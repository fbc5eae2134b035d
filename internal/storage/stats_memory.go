package storage

import (
	"context"
	"sync"

	"focusguard/internal/core/ledger"
	"focusguard/internal/core/model"
)

// MemoryStatsStore keeps the record for the lifetime of the process only.
type MemoryStatsStore struct {
	mu    sync.Mutex
	stats *model.Stats
}

// NewMemoryStatsStore creates an empty in-memory store.
func NewMemoryStatsStore() *MemoryStatsStore {
	return &MemoryStatsStore{}
}

func (store *MemoryStatsStore) LoadStats(context.Context) (model.Stats, error) {
	store.mu.Lock()
	defer store.mu.Unlock()
	if store.stats == nil {
		return model.Stats{}, ledger.ErrNoRecord
	}
	return *store.stats, nil
}

func (store *MemoryStatsStore) SaveStats(_ context.Context, stats model.Stats) error {
	store.mu.Lock()
	defer store.mu.Unlock()
	store.stats = &stats
	return nil
}

func (store *MemoryStatsStore) Close() error {
	return nil
}
