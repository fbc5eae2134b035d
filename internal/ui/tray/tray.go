package tray

import (
	"fmt"

	"focusguard/internal/core/session"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/driver/desktop"
)

// Callbacks defines tray action handlers.
type Callbacks struct {
	OnShow  func()
	OnStart func()
	OnPause func()
	OnReset func()
	OnQuit  func()
}

// Manager handles system tray state.
type Manager struct {
	app        desktop.App
	title      string
	statusItem *fyne.MenuItem
	startItem  *fyne.MenuItem
	pauseItem  *fyne.MenuItem
	resetItem  *fyne.MenuItem
	showItem   *fyne.MenuItem
	quitItem   *fyne.MenuItem
	callbacks  Callbacks
}

// New creates a tray manager with the provided callbacks.
func New(app desktop.App, title string, callbacks Callbacks) *Manager {
	manager := &Manager{
		app:       app,
		title:     title,
		callbacks: callbacks,
	}

	manager.statusItem = fyne.NewMenuItem("Status: starting...", nil)
	manager.statusItem.Disabled = true

	manager.showItem = fyne.NewMenuItem("Show timer", func() {
		if manager.callbacks.OnShow != nil {
			manager.callbacks.OnShow()
		}
	})
	manager.startItem = fyne.NewMenuItem("Start", func() {
		if manager.callbacks.OnStart != nil {
			manager.callbacks.OnStart()
		}
	})
	manager.pauseItem = fyne.NewMenuItem("Pause", func() {
		if manager.callbacks.OnPause != nil {
			manager.callbacks.OnPause()
		}
	})
	manager.pauseItem.Disabled = true
	manager.resetItem = fyne.NewMenuItem("Reset", func() {
		if manager.callbacks.OnReset != nil {
			manager.callbacks.OnReset()
		}
	})
	// Quit is routed through the leave guard instead of fyne's built-in quit.
	manager.quitItem = fyne.NewMenuItem("Quit", func() {
		if manager.callbacks.OnQuit != nil {
			manager.callbacks.OnQuit()
		}
	})
	manager.quitItem.IsQuit = true

	manager.refreshMenu()
	return manager
}

// Update reflects snapshot in the menu. UI goroutine only.
func (manager *Manager) Update(snapshot session.Snapshot) {
	manager.statusItem.Label = StatusLabel(snapshot)
	manager.startItem.Disabled = snapshot.Running
	manager.pauseItem.Disabled = !snapshot.Running
	manager.refreshMenu()
}

// StatusLabel is the first, disabled tray menu line.
func StatusLabel(snapshot session.Snapshot) string {
	state := "ready"
	if snapshot.Running {
		state = "running"
	}
	return fmt.Sprintf("Status: %s %s (%s)", snapshot.Phase, snapshot.Display(), state)
}

func (manager *Manager) refreshMenu() {
	if manager.app != nil {
		manager.app.SetSystemTrayMenu(fyne.NewMenu(manager.title,
			manager.statusItem,
			manager.showItem,
			fyne.NewMenuItemSeparator(),
			manager.startItem,
			manager.pauseItem,
			manager.resetItem,
			fyne.NewMenuItemSeparator(),
			manager.quitItem,
		))
	}
}
