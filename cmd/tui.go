package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"focusguard/internal/app"
	"focusguard/internal/platform"
	"focusguard/internal/ui/terminal"

	tea "github.com/charmbracelet/bubbletea"
)

const tuiLogFileName = "focusguard.log"

func runTUI(ctx context.Context, options *rootOptions) (err error) {
	logFile, err := openTUILog(options.configPath)
	if err != nil {
		return err
	}
	defer func() {
		_ = logFile.Close()
	}()

	appOptions := options.appOptions()
	appOptions.ConsoleLog = false
	appOptions.LogOutput = logFile
	application, err := app.New(ctx, appOptions)
	if err != nil {
		return err
	}
	defer func() {
		err = errors.Join(err, application.Close())
	}()
	clock := application.Clock

	sink := terminal.NewSink()
	distractions := application.NewMonitor(sink)
	monitorCtx, cancelMonitor := context.WithCancel(ctx)
	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		_ = distractions.Run(monitorCtx)
	}()
	defer func() {
		cancelMonitor()
		wg.Wait()
	}()

	// Completion messages are shown inline, so only the tone is wired here.
	alerts := application.NewAlerts(nil)
	go alerts.Consume(clock.Subscribe(8))

	program := tea.NewProgram(
		terminal.New(clock, clock.Subscribe(16), sink, distractions.Dismiss),
		tea.WithAltScreen(),
		tea.WithContext(ctx),
	)
	if _, err := program.Run(); err != nil {
		if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
			return nil
		}
		return fmt.Errorf("run terminal ui: %w", err)
	}
	return nil
}

func openTUILog(configPath string) (*os.File, error) {
	dir := filepath.Dir(configPath)
	if configPath == "" {
		configDir, err := platform.ConfigDir(app.Name)
		if err != nil {
			return nil, err
		}
		dir = configDir
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create log dir: %w", err)
	}
	file, err := os.OpenFile(filepath.Join(dir, tuiLogFileName), os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, fmt.Errorf("open log file: %w", err)
	}
	return file, nil
}
