package app

import (
	"focusguard/internal/core/model"
	"focusguard/internal/core/session"

	"github.com/rs/zerolog"
)

// NotificationTitle is the title of every desktop notification.
const NotificationTitle = "Pomodoro Timer"

// TonePlayer plays a chime.
type TonePlayer interface {
	Play(cue model.ToneCue) error
}

// NotifyFunc delivers a desktop notification.
type NotifyFunc func(title, message string) error

// Alerts turns clock events into chimes and notifications.
// Delivery is best effort: failures are logged and skipped.
type Alerts struct {
	Tone   TonePlayer
	Notify NotifyFunc
	Logger zerolog.Logger
}

// Consume handles events until the channel is closed.
func (alerts *Alerts) Consume(events <-chan session.Event) {
	for event := range events {
		alerts.Handle(event)
	}
}

// Handle reacts to a single clock event.
func (alerts *Alerts) Handle(event session.Event) {
	switch event.Type {
	case session.EventPhaseStarted:
		alerts.playTone(event.Tone)
	case session.EventWorkComplete, session.EventBreakComplete:
		alerts.notify(event.Message)
		alerts.playTone(event.Tone)
	case session.EventPersistError:
		alerts.Logger.Warn().Str("error", event.Message).Msg("stats not saved")
	}
}

func (alerts *Alerts) playTone(cue *model.ToneCue) {
	if alerts.Tone == nil || cue == nil {
		return
	}
	if err := alerts.Tone.Play(*cue); err != nil {
		alerts.Logger.Debug().Err(err).Msg("tone skipped")
	}
}

func (alerts *Alerts) notify(message string) {
	if alerts.Notify == nil || message == "" {
		return
	}
	if err := alerts.Notify(NotificationTitle, message); err != nil {
		alerts.Logger.Debug().Err(err).Msg("notification skipped")
	}
}
