package session

import (
	"time"

	"focusguard/internal/core/model"
)

// EventType defines the type of Clock event.
type EventType string

const (
	EventStateChange   EventType = "state_change"
	EventTick          EventType = "tick"
	EventPhaseStarted  EventType = "phase_started"
	EventWorkComplete  EventType = "work_complete"
	EventBreakComplete EventType = "break_complete"
	EventPersistError  EventType = "persist_error"
)

// Notification texts carried by completion events.
const (
	MessageWorkComplete  = "Work session complete! Time for a break 🎉"
	MessageBreakComplete = "Break complete! Ready for another focus session? 💪"
)

// LeaveWarning is the confirmation shown when quitting while blocking is active.
const LeaveWarning = "You have an active focus session. Are you sure you want to leave?"

// Event represents a Clock update for observers.
type Event struct {
	Type     EventType
	Snapshot Snapshot
	Message  string
	Tone     *model.ToneCue
	At       time.Time
}
