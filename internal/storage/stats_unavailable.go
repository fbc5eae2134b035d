package storage

import (
	"context"
	"fmt"

	"focusguard/internal/core/model"
)

// UnavailableStatsStore stands in for a backend that could not be opened.
// Every load and save reports the open error so the ledger degrades to
// in-memory counters and surfaces failed saves.
type UnavailableStatsStore struct {
	err error
}

// NewUnavailableStatsStore wraps the error returned by OpenStatsStore.
func NewUnavailableStatsStore(err error) *UnavailableStatsStore {
	return &UnavailableStatsStore{err: err}
}

func (store *UnavailableStatsStore) LoadStats(context.Context) (model.Stats, error) {
	return model.Stats{}, fmt.Errorf("stats store unavailable: %w", store.err)
}

func (store *UnavailableStatsStore) SaveStats(context.Context, model.Stats) error {
	return fmt.Errorf("stats store unavailable: %w", store.err)
}

func (store *UnavailableStatsStore) Close() error {
	return nil
}
