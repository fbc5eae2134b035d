package app

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"focusguard/internal/core/model"
	"focusguard/internal/core/monitor"
	"focusguard/internal/core/session"
	"focusguard/internal/storage"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeSettings(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), storage.SettingsFileName)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestNewWithoutPriorStats(t *testing.T) {
	path := writeSettings(t, "stats_backend: file\nsound_enabled: false\n")

	application, err := New(context.Background(), Options{
		ConfigPath:   path,
		Destinations: monitor.StaticDestination("example.com"),
	})
	require.NoError(t, err)
	defer application.Close()

	assert.Equal(t, model.Stats{}, application.Ledger.Stats())
	assert.Equal(t, 8, application.BlockList.Len())

	snapshot := application.Clock.Snapshot()
	assert.Equal(t, model.PhaseWork, snapshot.Phase)
	assert.Equal(t, 1500, snapshot.Remaining)
	assert.Nil(t, application.NewAlerts(nil).Tone)
}

func TestNewLoadsPersistedStats(t *testing.T) {
	path := writeSettings(t, "stats_backend: sqlite\n")
	dir := filepath.Dir(path)

	store, err := storage.NewSQLiteStatsStore(filepath.Join(dir, storage.SQLiteFileName))
	require.NoError(t, err)
	require.NoError(t, store.SaveStats(context.Background(), model.Stats{CompletedSessions: 3, TotalMinutes: 75, Streak: 3}))
	require.NoError(t, store.Close())

	application, err := New(context.Background(), Options{ConfigPath: path, Destinations: monitor.StaticDestination("")})
	require.NoError(t, err)
	defer application.Close()

	assert.Equal(t, 3, application.Clock.Snapshot().Stats.CompletedSessions)
}

func TestMonitorFlagsOnlyRunningWork(t *testing.T) {
	path := writeSettings(t, "stats_backend: memory\n")
	application, err := New(context.Background(), Options{
		ConfigPath:   path,
		Destinations: monitor.StaticDestination("www.instagram.com/explore"),
	})
	require.NoError(t, err)
	defer application.Close()

	distractions := application.NewMonitor(nil)
	assert.False(t, distractions.Check(context.Background()).Active)

	application.Clock.Start()
	signal := distractions.Check(context.Background())
	assert.True(t, signal.Active)
	assert.Equal(t, "instagram.com", signal.Match)

	application.Clock.Pause()
	assert.False(t, distractions.Check(context.Background()).Active)
}

func TestNewUsesConfiguredDataDir(t *testing.T) {
	path := writeSettings(t, "data_dir: "+filepath.Join(t.TempDir(), "data")+"\n")
	application, err := New(context.Background(), Options{ConfigPath: path, Destinations: monitor.StaticDestination("")})
	require.NoError(t, err)
	defer application.Close()

	fileStore, ok := application.Store.(*storage.FileStatsStore)
	require.True(t, ok)
	assert.Contains(t, fileStore.Path(), filepath.Join("data", "pomodoroStats.json"))
}

func TestNewSurvivesCorruptStatsDatabase(t *testing.T) {
	path := writeSettings(t, "stats_backend: sqlite\nsound_enabled: false\n")
	dbPath := filepath.Join(filepath.Dir(path), storage.SQLiteFileName)
	require.NoError(t, os.WriteFile(dbPath, bytes.Repeat([]byte("not a database "), 512), 0o644))

	application, err := New(context.Background(), Options{ConfigPath: path, Destinations: monitor.StaticDestination("")})
	require.NoError(t, err)
	defer application.Close()

	assert.IsType(t, &storage.UnavailableStatsStore{}, application.Store)
	assert.Equal(t, model.Stats{}, application.Ledger.Stats())

	stats, err := application.Ledger.RecordCompletedSession(context.Background())
	assert.Error(t, err)
	assert.Equal(t, model.Stats{CompletedSessions: 1, TotalMinutes: 25, Streak: 1}, stats)
	assert.Equal(t, session.Snapshot{Phase: model.PhaseWork, Remaining: model.WorkSeconds, Stats: stats}, application.Clock.Snapshot())
}

func TestNewWritesDefaultSettingsOnFirstRun(t *testing.T) {
	path := filepath.Join(t.TempDir(), "FocusGuard", storage.SettingsFileName)

	application, err := New(context.Background(), Options{ConfigPath: path, Destinations: monitor.StaticDestination("")})
	require.NoError(t, err)
	defer application.Close()

	assert.FileExists(t, path)
	settings, err := storage.LoadSettings(path)
	require.NoError(t, err)
	assert.Equal(t, model.DefaultBlockList(), settings.BlockList)
}
