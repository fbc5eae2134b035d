package storage

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"focusguard/internal/core/ledger"
	"focusguard/internal/core/model"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openStores(t *testing.T) map[string]StatsStore {
	t.Helper()
	stores := map[string]StatsStore{}
	for _, backend := range []string{model.BackendFile, model.BackendSQLite, model.BackendMemory} {
		store, err := OpenStatsStore(backend, t.TempDir())
		require.NoError(t, err, backend)
		t.Cleanup(func() { _ = store.Close() })
		stores[backend] = store
	}
	return stores
}

func TestStatsStoresRoundTrip(t *testing.T) {
	ctx := context.Background()
	for backend, store := range openStores(t) {
		t.Run(backend, func(t *testing.T) {
			_, err := store.LoadStats(ctx)
			require.ErrorIs(t, err, ledger.ErrNoRecord)

			want := model.Stats{CompletedSessions: 2, TotalMinutes: 50, Streak: 2}
			require.NoError(t, store.SaveStats(ctx, want))
			require.NoError(t, store.SaveStats(ctx, want.WithCompletedSession()))

			got, err := store.LoadStats(ctx)
			require.NoError(t, err)
			assert.Equal(t, model.Stats{CompletedSessions: 3, TotalMinutes: 75, Streak: 3}, got)
		})
	}
}

func TestFileStatsStoreWritesFixedKeyRecord(t *testing.T) {
	dir := t.TempDir()
	store := NewFileStatsStore(dir)
	require.NoError(t, store.SaveStats(context.Background(), model.Stats{CompletedSessions: 1, TotalMinutes: 25, Streak: 1}))

	assert.Equal(t, filepath.Join(dir, "pomodoroStats.json"), store.Path())
	payload, err := os.ReadFile(store.Path())
	require.NoError(t, err)
	assert.JSONEq(t, `{"completedSessions":1,"totalMinutes":25,"streak":1}`, string(payload))
}

func TestFileStatsStoreMalformedRecord(t *testing.T) {
	dir := t.TempDir()
	store := NewFileStatsStore(dir)
	require.NoError(t, os.WriteFile(store.Path(), []byte("{not json"), 0o644))

	_, err := store.LoadStats(context.Background())
	require.Error(t, err)
	assert.NotErrorIs(t, err, ledger.ErrNoRecord)

	// The ledger degrades to zero stats instead of failing.
	stats := ledger.New(store, zerolog.Nop()).Load(context.Background())
	assert.Equal(t, model.Stats{}, stats)
}

func TestSQLiteStatsStoreSurvivesReopen(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), SQLiteFileName)
	store, err := NewSQLiteStatsStore(dbPath)
	require.NoError(t, err)
	require.NoError(t, store.SaveStats(context.Background(), model.Stats{CompletedSessions: 4, TotalMinutes: 100, Streak: 4}))
	require.NoError(t, store.Close())

	reopened, err := NewSQLiteStatsStore(dbPath)
	require.NoError(t, err)
	defer reopened.Close()

	stats, err := reopened.LoadStats(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 4, stats.CompletedSessions)
}

func TestOpenStatsStoreUnknownBackend(t *testing.T) {
	_, err := OpenStatsStore("redis", t.TempDir())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown stats backend")
}

func TestOpenStatsStoreFailsOnCorruptDatabase(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, SQLiteFileName), bytes.Repeat([]byte("not a database "), 512), 0o644))

	store, err := OpenStatsStore(model.BackendSQLite, dir)
	require.Error(t, err)
	assert.Nil(t, store)
}

func TestUnavailableStatsStoreReportsOpenError(t *testing.T) {
	openErr := os.ErrPermission
	store := NewUnavailableStatsStore(openErr)

	_, err := store.LoadStats(context.Background())
	assert.ErrorIs(t, err, openErr)
	assert.ErrorIs(t, store.SaveStats(context.Background(), model.Stats{CompletedSessions: 1}), openErr)
	assert.NoError(t, store.Close())

	statsLedger := ledger.New(store, zerolog.Nop())
	assert.Equal(t, model.Stats{}, statsLedger.Load(context.Background()))
	stats, err := statsLedger.RecordCompletedSession(context.Background())
	assert.Error(t, err)
	assert.Equal(t, 1, stats.CompletedSessions)
}
