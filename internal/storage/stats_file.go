package storage

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"focusguard/internal/core/ledger"
	"focusguard/internal/core/model"
)

// FileStatsStore keeps the statistics record as a JSON file named after model.StatsKey.
type FileStatsStore struct {
	path string
}

// NewFileStatsStore creates a store inside dir.
func NewFileStatsStore(dir string) *FileStatsStore {
	return &FileStatsStore{path: filepath.Join(dir, model.StatsKey+".json")}
}

// Path returns the record file location.
func (store *FileStatsStore) Path() string {
	return store.path
}

// LoadStats reads and decodes the record.
func (store *FileStatsStore) LoadStats(_ context.Context) (model.Stats, error) {
	payload, err := os.ReadFile(store.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return model.Stats{}, ledger.ErrNoRecord
		}
		return model.Stats{}, fmt.Errorf("read stats file: %w", err)
	}
	return decodeStats(payload)
}

// SaveStats replaces the record atomically: temp file, fsync, rename.
func (store *FileStatsStore) SaveStats(_ context.Context, stats model.Stats) error {
	if err := os.MkdirAll(filepath.Dir(store.path), 0o755); err != nil {
		return fmt.Errorf("create stats directory: %w", err)
	}

	payload, err := json.Marshal(stats)
	if err != nil {
		return fmt.Errorf("marshal stats: %w", err)
	}

	return writeFileAtomic(store.path, payload)
}

// Close is a no-op; the file is not held open.
func (store *FileStatsStore) Close() error {
	return nil
}

func decodeStats(payload []byte) (model.Stats, error) {
	var stats model.Stats
	if err := json.Unmarshal(payload, &stats); err != nil {
		return model.Stats{}, fmt.Errorf("decode stats: %w", err)
	}
	return stats, nil
}
