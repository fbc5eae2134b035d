package warning

import (
	"fmt"
	"image/color"

	"focusguard/internal/core/monitor"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
)

var (
	backgroundColor = color.NRGBA{R: 24, G: 24, B: 28, A: 235}
	accentColor     = color.NRGBA{R: 255, G: 107, B: 107, A: 255}
	textColor       = color.NRGBA{R: 255, G: 255, B: 255, A: 255}
)

type splashWindowDriver interface {
	CreateSplashWindow() fyne.Window
}

// Window is the blocking warning shown when a distracting destination is detected.
// It implements monitor.WarningSink.
type Window struct {
	window       fyne.Window
	titleLabel   *canvas.Text
	messageLabel *canvas.Text
	timerLabel   *canvas.Text
	backButton   *widget.Button
	onDismiss    func()
	visible      bool
}

// New creates a hidden warning window.
func New(app fyne.App) *Window {
	window := app.NewWindow("Stay focused")
	if driver, ok := app.Driver().(splashWindowDriver); ok {
		// Splash window is undecorated (no native frame/buttons).
		window = driver.CreateSplashWindow()
	}
	window.SetPadded(false)

	background := canvas.NewRectangle(backgroundColor)

	titleLabel := canvas.NewText("Stay focused!", accentColor)
	titleLabel.TextStyle = fyne.TextStyle{Bold: true}
	titleLabel.TextSize = 21

	messageLabel := canvas.NewText("", textColor)
	messageLabel.TextSize = 14

	timerLabel := canvas.NewText("--:--", textColor)
	timerLabel.TextStyle = fyne.TextStyle{Bold: true, Monospace: true}
	timerLabel.TextSize = 28

	backButton := widget.NewButton("Back to work", nil)

	content := container.New(&panelLayout{}, titleLabel, messageLabel, timerLabel, backButton)
	window.SetContent(container.NewStack(background, content))
	window.Resize(fyne.NewSize(380, 200))

	warning := &Window{
		window:       window,
		titleLabel:   titleLabel,
		messageLabel: messageLabel,
		timerLabel:   timerLabel,
		backButton:   backButton,
	}
	backButton.OnTapped = func() {
		if warning.onDismiss != nil {
			warning.onDismiss()
			return
		}
		warning.hideUnsafe()
	}
	return warning
}

// SetOnDismiss sets the handler of the dismiss button.
func (warning *Window) SetOnDismiss(handler func()) {
	warning.onDismiss = handler
}

// ShowBlockWarning presents the warning. Safe to call from any goroutine.
func (warning *Window) ShowBlockWarning(payload monitor.Warning) {
	fyne.Do(func() {
		warning.showUnsafe(payload)
	})
}

// HideBlockWarning hides the warning. Safe to call from any goroutine.
func (warning *Window) HideBlockWarning() {
	fyne.Do(warning.hideUnsafe)
}

// SetRemaining refreshes the countdown while the warning is visible. UI goroutine only.
func (warning *Window) SetRemaining(display string) {
	if !warning.visible {
		return
	}
	warning.timerLabel.Text = display
	warning.timerLabel.Refresh()
}

// Visible reports whether the warning is on screen.
func (warning *Window) Visible() bool {
	return warning.visible
}

func (warning *Window) showUnsafe(payload monitor.Warning) {
	warning.messageLabel.Text = Message(payload)
	warning.messageLabel.Refresh()
	warning.timerLabel.Text = payload.Remaining
	warning.timerLabel.Refresh()
	if warning.visible {
		return
	}
	warning.visible = true
	warning.window.CenterOnScreen()
	warning.window.Show()
	warning.window.RequestFocus()
}

func (warning *Window) hideUnsafe() {
	warning.visible = false
	warning.window.Hide()
}

// Message returns the explanation line of the warning.
func Message(payload monitor.Warning) string {
	if payload.Match == "" {
		return "This site is on your block list."
	}
	return fmt.Sprintf("%s is on your block list.", payload.Match)
}

type panelLayout struct{}

func (layout *panelLayout) Layout(objects []fyne.CanvasObject, size fyne.Size) {
	if len(objects) < 4 {
		return
	}
	title := objects[0]
	message := objects[1]
	timer := objects[2]
	button := objects[3]

	pad := size.Height * 0.08
	availableWidth := size.Width - pad*2
	if availableWidth < 0 {
		availableWidth = 0
	}

	titleSize := title.MinSize()
	title.Move(fyne.NewPos(pad, pad))
	title.Resize(fyne.NewSize(availableWidth, titleSize.Height))

	messageSize := message.MinSize()
	messageY := pad + titleSize.Height + 6
	message.Move(fyne.NewPos(pad, messageY))
	message.Resize(fyne.NewSize(availableWidth, messageSize.Height))

	buttonSize := button.MinSize()
	buttonY := size.Height - pad - buttonSize.Height
	if buttonY < 0 {
		buttonY = 0
	}
	buttonWidth := buttonSize.Width * 1.4
	if buttonWidth > availableWidth {
		buttonWidth = availableWidth
	}
	button.Move(fyne.NewPos(size.Width-pad-buttonWidth, buttonY))
	button.Resize(fyne.NewSize(buttonWidth, buttonSize.Height))

	timerSize := timer.MinSize()
	timerY := buttonY + (buttonSize.Height-timerSize.Height)/2
	if timerY < messageY+messageSize.Height {
		timerY = messageY + messageSize.Height
	}
	timer.Move(fyne.NewPos(pad, timerY))
	timer.Resize(timerSize)
}

func (layout *panelLayout) MinSize(objects []fyne.CanvasObject) fyne.Size {
	if len(objects) < 4 {
		return fyne.NewSize(0, 0)
	}
	titleSize := objects[0].MinSize()
	messageSize := objects[1].MinSize()
	timerSize := objects[2].MinSize()
	buttonSize := objects[3].MinSize()

	width := titleSize.Width
	if messageSize.Width > width {
		width = messageSize.Width
	}
	if row := timerSize.Width + buttonSize.Width*1.4 + 16; row > width {
		width = row
	}
	rowHeight := timerSize.Height
	if buttonSize.Height > rowHeight {
		rowHeight = buttonSize.Height
	}
	height := titleSize.Height + messageSize.Height + rowHeight + 40
	return fyne.NewSize(width+32, height)
}
