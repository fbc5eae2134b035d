package storage

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"focusguard/internal/core/model"

	"gopkg.in/yaml.v3"
)

// SettingsFileName is the name of the settings file inside the app config directory.
const SettingsFileName = "settings.yaml"

type yamlSettings struct {
	BlockList            []string `yaml:"block_list"`
	StatsBackend         string   `yaml:"stats_backend"`
	DataDir              string   `yaml:"data_dir"`
	LogLevel             string   `yaml:"log_level"`
	DestinationCommand   []string `yaml:"destination_command"`
	SoundEnabled         *bool    `yaml:"sound_enabled"`
	NotificationsEnabled *bool    `yaml:"notifications_enabled"`
}

// LoadSettings reads user preferences from YAML.
// If the file does not exist, default settings are returned.
func LoadSettings(path string) (model.Settings, error) {
	settings := model.DefaultSettings()

	rawData, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return settings, nil
		}
		return settings, fmt.Errorf("read settings file: %w", err)
	}

	var fileData yamlSettings
	if err := yaml.Unmarshal(rawData, &fileData); err != nil {
		return settings, fmt.Errorf("parse settings yaml: %w", err)
	}

	applyYamlSettings(&settings, fileData)
	return settings, nil
}

// LoadOrCreateSettings behaves like LoadSettings but writes the defaults to
// path when no file exists yet, so users have a file to edit.
func LoadOrCreateSettings(path string) (model.Settings, bool, error) {
	if _, err := os.Stat(path); err == nil || !errors.Is(err, os.ErrNotExist) {
		settings, loadErr := LoadSettings(path)
		return settings, false, loadErr
	}

	settings := model.DefaultSettings()
	if err := SaveSettings(path, settings); err != nil {
		return settings, false, err
	}
	return settings, true, nil
}

// SaveSettings writes user preferences to YAML.
func SaveSettings(path string, settings model.Settings) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create config directory: %w", err)
	}

	fileData := yamlSettings{
		BlockList:            settings.BlockList,
		StatsBackend:         settings.StatsBackend,
		DataDir:              settings.DataDir,
		LogLevel:             settings.LogLevel,
		DestinationCommand:   settings.DestinationCommand,
		SoundEnabled:         &settings.SoundEnabled,
		NotificationsEnabled: &settings.NotificationsEnabled,
	}

	serialized, err := yaml.Marshal(fileData)
	if err != nil {
		return fmt.Errorf("marshal settings yaml: %w", err)
	}

	if err := os.WriteFile(path, serialized, 0o644); err != nil {
		return fmt.Errorf("write settings file: %w", err)
	}

	return nil
}

func applyYamlSettings(settings *model.Settings, fileData yamlSettings) {
	if len(fileData.BlockList) > 0 {
		settings.BlockList = fileData.BlockList
	}

	switch backend := strings.ToLower(strings.TrimSpace(fileData.StatsBackend)); backend {
	case model.BackendFile, model.BackendSQLite, model.BackendMemory:
		settings.StatsBackend = backend
	}

	if dir := strings.TrimSpace(fileData.DataDir); dir != "" {
		settings.DataDir = dir
	}
	if level := strings.TrimSpace(fileData.LogLevel); level != "" {
		settings.LogLevel = level
	}
	if len(fileData.DestinationCommand) > 0 && strings.TrimSpace(fileData.DestinationCommand[0]) != "" {
		settings.DestinationCommand = fileData.DestinationCommand
	}

	if fileData.SoundEnabled != nil {
		settings.SoundEnabled = *fileData.SoundEnabled
	}
	if fileData.NotificationsEnabled != nil {
		settings.NotificationsEnabled = *fileData.NotificationsEnabled
	}
}
