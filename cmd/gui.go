package main

import (
	"context"
	"errors"
	"fmt"

	"focusguard/internal/app"
	"focusguard/internal/core/session"
	"focusguard/internal/platform"
	"focusguard/internal/ui/timerwindow"
	"focusguard/internal/ui/tray"
	"focusguard/internal/ui/warning"

	"fyne.io/fyne/v2"
	fyneapp "fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/theme"
)

const appID = "com.focusguard.app"

func runGUI(ctx context.Context, options *rootOptions) (err error) {
	lock, err := platform.AcquireInstanceLock(app.Name)
	if err != nil {
		return fmt.Errorf("single instance: %w", err)
	}
	defer func() {
		_ = lock.Release()
	}()

	application, err := app.New(ctx, options.appOptions())
	if err != nil {
		return err
	}
	defer func() {
		err = errors.Join(err, application.Close())
	}()
	clock := application.Clock

	fyneApp := fyneapp.NewWithID(appID)
	fyneApp.SetIcon(theme.HistoryIcon())

	timerWindow := timerwindow.New(fyneApp, app.Name, timerwindow.Callbacks{
		OnStart: clock.Start,
		OnPause: clock.Pause,
		OnReset: clock.Reset,
	})

	requestQuit := func() {
		if !clock.IsBlockingActive() {
			fyneApp.Quit()
			return
		}
		timerWindow.Show()
		dialog.ShowConfirm("Leave focus session?", session.LeaveWarning, func(leave bool) {
			if leave {
				application.Logger.Info().Int("remaining", clock.Remaining()).Msg("focus session abandoned")
				fyneApp.Quit()
			}
		}, timerWindow.Window())
	}
	timerWindow.SetCloseIntercept(requestQuit)

	var trayManager *tray.Manager
	if desktopApp, ok := fyneApp.(desktop.App); ok {
		trayManager = tray.New(desktopApp, app.Name, tray.Callbacks{
			OnShow:  timerWindow.Show,
			OnStart: clock.Start,
			OnPause: clock.Pause,
			OnReset: clock.Reset,
			OnQuit:  requestQuit,
		})
		desktopApp.SetSystemTrayIcon(theme.HistoryIcon())
	} else {
		application.Logger.Info().Msg("system tray unsupported on this platform")
	}

	warningWindow := warning.New(fyneApp)
	distractions := application.NewMonitor(warningWindow)
	warningWindow.SetOnDismiss(distractions.Dismiss)

	alerts := application.NewAlerts(func(title, message string) error {
		fyne.Do(func() {
			fyneApp.SendNotification(fyne.NewNotification(title, message))
		})
		return nil
	})
	go alerts.Consume(clock.Subscribe(8))

	renderer := snapshotRenderer{
		views:   []snapshotView{timerWindow},
		warning: warningWindow,
		dismiss: distractions.Dismiss,
	}
	if trayManager != nil {
		renderer.views = append(renderer.views, trayManager)
	}

	events := clock.Subscribe(16)
	go func() {
		for event := range events {
			snapshot := event.Snapshot
			fyne.Do(func() {
				renderer.render(snapshot)
			})
		}
	}()

	monitorCtx, cancelMonitor := context.WithCancel(ctx)
	defer cancelMonitor()
	go func() {
		_ = distractions.Run(monitorCtx)
	}()

	stopped := make(chan struct{})
	defer close(stopped)
	go func() {
		select {
		case <-ctx.Done():
			fyne.Do(fyneApp.Quit)
		case <-stopped:
		}
	}()

	renderer.render(clock.Snapshot())
	timerWindow.Show()
	fyneApp.Run()
	return nil
}
