package storage

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"focusguard/internal/core/ledger"
	"focusguard/internal/core/model"

	_ "modernc.org/sqlite"
)

// SQLiteFileName is the database file created inside the data directory.
const SQLiteFileName = "focusguard.db"

// SQLiteStatsStore keeps the statistics record in a key-value table.
type SQLiteStatsStore struct {
	db *sql.DB
}

// NewSQLiteStatsStore opens (or creates) the database at dbPath.
func NewSQLiteStatsStore(dbPath string) (*SQLiteStatsStore, error) {
	if err := os.MkdirAll(filepath.Dir(dbPath), 0o755); err != nil {
		return nil, fmt.Errorf("create db dir: %w", err)
	}
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	store := &SQLiteStatsStore{db: db}
	if err := store.ensureSchema(context.Background()); err != nil {
		_ = db.Close()
		return nil, err
	}
	return store, nil
}

func (store *SQLiteStatsStore) ensureSchema(ctx context.Context) error {
	const ddl = `
CREATE TABLE IF NOT EXISTS kv (
  key TEXT PRIMARY KEY,
  value TEXT NOT NULL,
  updated_at TEXT NOT NULL
);
`
	if _, err := store.db.ExecContext(ctx, ddl); err != nil {
		return fmt.Errorf("create kv table: %w", err)
	}
	return nil
}

// LoadStats reads the record stored under model.StatsKey.
func (store *SQLiteStatsStore) LoadStats(ctx context.Context) (model.Stats, error) {
	var payload string
	err := store.db.QueryRowContext(ctx, `SELECT value FROM kv WHERE key = ?`, model.StatsKey).Scan(&payload)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.Stats{}, ledger.ErrNoRecord
		}
		return model.Stats{}, fmt.Errorf("query stats: %w", err)
	}
	return decodeStats([]byte(payload))
}

// SaveStats upserts the record in a single statement.
func (store *SQLiteStatsStore) SaveStats(ctx context.Context, stats model.Stats) error {
	payload, err := json.Marshal(stats)
	if err != nil {
		return fmt.Errorf("marshal stats: %w", err)
	}

	const stmt = `
INSERT INTO kv (key, value, updated_at)
VALUES (?, ?, ?)
ON CONFLICT(key) DO UPDATE SET
  value=excluded.value,
  updated_at=excluded.updated_at;
`
	_, err = store.db.ExecContext(ctx, stmt,
		model.StatsKey,
		string(payload),
		time.Now().UTC().Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("upsert stats: %w", err)
	}
	return nil
}

// Close releases the database handle.
func (store *SQLiteStatsStore) Close() error {
	return store.db.Close()
}
