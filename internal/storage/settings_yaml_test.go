package storage

import (
	"os"
	"path/filepath"
	"testing"

	"focusguard/internal/core/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadSettingsMissingFileReturnsDefaults(t *testing.T) {
	settings, err := LoadSettings(filepath.Join(t.TempDir(), SettingsFileName))
	require.NoError(t, err)
	assert.Equal(t, model.DefaultSettings(), settings)
}

func TestLoadSettingsAppliesValidFields(t *testing.T) {
	path := filepath.Join(t.TempDir(), SettingsFileName)
	content := `
block_list:
  - news.ycombinator.com
  - twitch.tv
stats_backend: SQLite
log_level: debug
destination_command: ["cat", "/tmp/active-url"]
sound_enabled: false
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	settings, err := LoadSettings(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"news.ycombinator.com", "twitch.tv"}, settings.BlockList)
	assert.Equal(t, model.BackendSQLite, settings.StatsBackend)
	assert.Equal(t, "debug", settings.LogLevel)
	assert.Equal(t, []string{"cat", "/tmp/active-url"}, settings.DestinationCommand)
	assert.False(t, settings.SoundEnabled)
	assert.True(t, settings.NotificationsEnabled)
}

func TestLoadSettingsIgnoresInvalidBackend(t *testing.T) {
	path := filepath.Join(t.TempDir(), SettingsFileName)
	require.NoError(t, os.WriteFile(path, []byte("stats_backend: cassandra\n"), 0o644))

	settings, err := LoadSettings(path)
	require.NoError(t, err)
	assert.Equal(t, model.BackendFile, settings.StatsBackend)
}

func TestLoadSettingsRejectsBrokenYaml(t *testing.T) {
	path := filepath.Join(t.TempDir(), SettingsFileName)
	require.NoError(t, os.WriteFile(path, []byte("block_list: [unclosed\n"), 0o644))

	settings, err := LoadSettings(path)
	require.Error(t, err)
	assert.Equal(t, model.DefaultSettings(), settings)
}

func TestSaveSettingsRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", SettingsFileName)
	want := model.DefaultSettings()
	want.BlockList = []string{"example.org"}
	want.StatsBackend = model.BackendMemory
	want.NotificationsEnabled = false

	require.NoError(t, SaveSettings(path, want))
	got, err := LoadSettings(path)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestLoadOrCreateSettingsWritesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "FocusGuard", SettingsFileName)

	settings, created, err := LoadOrCreateSettings(path)
	require.NoError(t, err)
	assert.True(t, created)
	assert.Equal(t, model.DefaultSettings(), settings)
	assert.FileExists(t, path)

	reloaded, err := LoadSettings(path)
	require.NoError(t, err)
	assert.Equal(t, model.DefaultBlockList(), reloaded.BlockList)

	_, created, err = LoadOrCreateSettings(path)
	require.NoError(t, err)
	assert.False(t, created)
}

func TestLoadOrCreateSettingsKeepsExistingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), SettingsFileName)
	require.NoError(t, os.WriteFile(path, []byte("log_level: debug\n"), 0o644))

	settings, created, err := LoadOrCreateSettings(path)
	require.NoError(t, err)
	assert.False(t, created)
	assert.Equal(t, "debug", settings.LogLevel)

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "log_level: debug\n", string(raw))
}
