package timerwindow

import (
	"fmt"
	"image/color"

	"focusguard/internal/core/model"
	"focusguard/internal/core/session"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
)

var (
	workTint  = color.NRGBA{R: 255, G: 107, B: 107, A: 26}
	breakTint = color.NRGBA{R: 81, G: 207, B: 102, A: 26}
	idleTint  = color.NRGBA{R: 255, G: 255, B: 255, A: 0}
)

// Callbacks are the control handlers of the window.
type Callbacks struct {
	OnStart func()
	OnPause func()
	OnReset func()
}

// Window is the main countdown window.
type Window struct {
	window      fyne.Window
	background  *canvas.Rectangle
	timerText   *canvas.Text
	phaseLabel  *widget.Label
	statusLabel *widget.Label
	progress    *widget.ProgressBar
	blocking    *widget.Label
	sessions    *widget.Label
	minutes     *widget.Label
	streak      *widget.Label
	startButton *widget.Button
	pauseButton *widget.Button
	resetButton *widget.Button
}

// New builds the window. Call Update before the first Show.
func New(app fyne.App, title string, callbacks Callbacks) *Window {
	window := app.NewWindow(title)

	timerWindow := &Window{
		window:      window,
		background:  canvas.NewRectangle(idleTint),
		timerText:   canvas.NewText(model.FormatClock(model.WorkSeconds), theme.Color(theme.ColorNameForeground)),
		phaseLabel:  widget.NewLabel(""),
		statusLabel: widget.NewLabel(""),
		progress:    widget.NewProgressBar(),
		blocking:    widget.NewLabel(""),
		sessions:    widget.NewLabel(""),
		minutes:     widget.NewLabel(""),
		streak:      widget.NewLabel(""),
	}
	timerWindow.timerText.TextSize = 64
	timerWindow.timerText.TextStyle = fyne.TextStyle{Bold: true, Monospace: true}
	timerWindow.timerText.Alignment = fyne.TextAlignCenter
	timerWindow.phaseLabel.Alignment = fyne.TextAlignCenter
	timerWindow.phaseLabel.TextStyle = fyne.TextStyle{Bold: true}
	timerWindow.statusLabel.Alignment = fyne.TextAlignCenter
	timerWindow.blocking.Alignment = fyne.TextAlignCenter
	timerWindow.progress.Min = 0
	timerWindow.progress.Max = 100
	timerWindow.progress.TextFormatter = func() string { return "" }

	timerWindow.startButton = widget.NewButtonWithIcon("Start", theme.MediaPlayIcon(), invoke(callbacks.OnStart))
	timerWindow.startButton.Importance = widget.HighImportance
	timerWindow.pauseButton = widget.NewButtonWithIcon("Pause", theme.MediaPauseIcon(), invoke(callbacks.OnPause))
	timerWindow.resetButton = widget.NewButtonWithIcon("Reset", theme.MediaReplayIcon(), invoke(callbacks.OnReset))

	statsGrid := container.NewGridWithColumns(3,
		statCard("Sessions", timerWindow.sessions),
		statCard("Minutes", timerWindow.minutes),
		statCard("Streak", timerWindow.streak),
	)
	controls := container.NewHBox(layout.NewSpacer(), timerWindow.startButton, timerWindow.pauseButton, timerWindow.resetButton, layout.NewSpacer())

	content := container.NewVBox(
		timerWindow.phaseLabel,
		timerWindow.timerText,
		timerWindow.statusLabel,
		timerWindow.progress,
		controls,
		widget.NewSeparator(),
		statsGrid,
		timerWindow.blocking,
	)

	window.SetContent(container.NewStack(timerWindow.background, container.NewPadded(content)))
	window.Resize(fyne.NewSize(420, 420))
	return timerWindow
}

// Show brings the window to the front.
func (timerWindow *Window) Show() {
	timerWindow.window.Show()
	timerWindow.window.RequestFocus()
}

// Window exposes the underlying fyne window for dialogs.
func (timerWindow *Window) Window() fyne.Window {
	return timerWindow.window
}

// SetCloseIntercept replaces the default close behaviour.
func (timerWindow *Window) SetCloseIntercept(handler func()) {
	timerWindow.window.SetCloseIntercept(handler)
}

// Update renders snapshot. UI goroutine only.
func (timerWindow *Window) Update(snapshot session.Snapshot) {
	timerWindow.timerText.Text = snapshot.Display()
	timerWindow.timerText.Refresh()
	timerWindow.phaseLabel.SetText(PhaseTitle(snapshot.Phase))
	timerWindow.statusLabel.SetText(snapshot.Status())
	timerWindow.blocking.SetText(snapshot.BlockingStatus())
	timerWindow.progress.SetValue(snapshot.Progress())

	timerWindow.sessions.SetText(fmt.Sprintf("%d", snapshot.Stats.CompletedSessions))
	timerWindow.minutes.SetText(fmt.Sprintf("%d", snapshot.Stats.TotalMinutes))
	timerWindow.streak.SetText(fmt.Sprintf("%d", snapshot.Stats.Streak))

	if snapshot.Running {
		timerWindow.startButton.Disable()
		timerWindow.pauseButton.Enable()
	} else {
		timerWindow.startButton.Enable()
		timerWindow.pauseButton.Disable()
	}

	timerWindow.background.FillColor = Tint(snapshot)
	timerWindow.background.Refresh()
}

// PhaseTitle is the heading above the countdown.
func PhaseTitle(phase model.Phase) string {
	if phase == model.PhaseBreak {
		return "Break"
	}
	return "Focus"
}

// Tint returns the background tint for snapshot.
func Tint(snapshot session.Snapshot) color.Color {
	switch {
	case !snapshot.Running:
		return idleTint
	case snapshot.Phase == model.PhaseWork:
		return workTint
	default:
		return breakTint
	}
}

func statCard(title string, value *widget.Label) fyne.CanvasObject {
	value.Alignment = fyne.TextAlignCenter
	value.TextStyle = fyne.TextStyle{Bold: true}
	caption := widget.NewLabel(title)
	caption.Alignment = fyne.TextAlignCenter
	return container.NewVBox(value, caption)
}

func invoke(handler func()) func() {
	return func() {
		if handler != nil {
			handler()
		}
	}
}
