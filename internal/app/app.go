package app

import (
	"context"
	"fmt"
	"io"
	"path/filepath"

	"focusguard/internal/core/ledger"
	"focusguard/internal/core/model"
	"focusguard/internal/core/monitor"
	"focusguard/internal/core/session"
	applog "focusguard/internal/log"
	"focusguard/internal/platform"
	"focusguard/internal/storage"

	"github.com/rs/zerolog"
)

// Name is used for the config directory, the instance lock and the service log field.
const Name = "FocusGuard"

// Options control how the application is assembled.
type Options struct {
	ConfigPath   string
	LogLevel     string
	ConsoleLog   bool
	LogOutput    io.Writer
	Destinations monitor.DestinationSource
}

// App holds the wired core components.
type App struct {
	Settings     model.Settings
	Logger       zerolog.Logger
	Store        storage.StatsStore
	Ledger       *ledger.Ledger
	Clock        *session.Clock
	BlockList    monitor.BlockList
	Destinations monitor.DestinationSource
}

// New loads settings, opens the stats store and builds the clock.
func New(ctx context.Context, options Options) (*App, error) {
	configPath, err := ResolveConfigPath(options.ConfigPath)
	if err != nil {
		return nil, err
	}

	settings, created, settingsErr := storage.LoadOrCreateSettings(configPath)
	if options.LogLevel != "" {
		settings.LogLevel = options.LogLevel
	}

	applog.Configure(applog.Config{
		Level:   settings.LogLevel,
		Output:  options.LogOutput,
		Console: options.ConsoleLog,
		Service: "focusguard",
	})
	logger := applog.WithComponent("app")
	if settingsErr != nil {
		logger.Warn().Err(settingsErr).Str("path", configPath).Msg("using default settings")
	}
	if created {
		logger.Info().Str("path", configPath).Msg("wrote default settings")
	}

	dataDir := settings.DataDir
	if dataDir == "" {
		dataDir = filepath.Dir(configPath)
	}
	var store storage.StatsStore
	store, err = storage.OpenStatsStore(settings.StatsBackend, dataDir)
	if err != nil {
		logger.Warn().Err(err).Str("backend", settings.StatsBackend).Msg("stats store unavailable, statistics will not be saved")
		store = storage.NewUnavailableStatsStore(err)
	}

	statsLedger := ledger.New(store, applog.WithComponent("ledger"))
	stats := statsLedger.Load(ctx)
	logger.Info().
		Str("backend", settings.StatsBackend).
		Str("data_dir", dataDir).
		Int("completed_sessions", stats.CompletedSessions).
		Msg("stats loaded")

	destinations := options.Destinations
	if destinations == nil {
		destinations = platform.NewDestinationProvider(settings.DestinationCommand)
	}

	return &App{
		Settings:     settings,
		Logger:       logger,
		Store:        store,
		Ledger:       statsLedger,
		Clock:        session.New(statsLedger, session.Config{}, applog.WithComponent("clock")),
		BlockList:    monitor.NewBlockList(settings.BlockList),
		Destinations: destinations,
	}, nil
}

// ResolveConfigPath returns path, or the default settings file in the user config directory.
func ResolveConfigPath(path string) (string, error) {
	if path != "" {
		return path, nil
	}
	configDir, err := platform.ConfigDir(Name)
	if err != nil {
		return "", err
	}
	return filepath.Join(configDir, storage.SettingsFileName), nil
}

// NewMonitor builds a distraction monitor that reports to sink.
func (app *App) NewMonitor(sink monitor.WarningSink) *monitor.Monitor {
	return monitor.New(app.Clock, app.Destinations, sink, monitor.Config{
		Interval:  monitor.DefaultInterval,
		BlockList: app.BlockList,
	}, applog.WithComponent("monitor"))
}

// NewAlerts builds the tone/notification handler according to settings.
func (app *App) NewAlerts(notify NotifyFunc) *Alerts {
	alerts := &Alerts{Logger: applog.WithComponent("alerts")}
	if app.Settings.SoundEnabled {
		alerts.Tone = platform.NewTonePlayer()
	}
	if app.Settings.NotificationsEnabled {
		alerts.Notify = notify
	}
	return alerts
}

// Close stops the clock and releases the stats store.
func (app *App) Close() error {
	app.Clock.Close()
	if err := app.Store.Close(); err != nil {
		return fmt.Errorf("close stats store: %w", err)
	}
	return nil
}
