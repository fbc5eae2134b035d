package terminal

import "focusguard/internal/core/monitor"

type warningMsg struct {
	warning monitor.Warning
	visible bool
}

// Sink forwards monitor warnings into the terminal program.
// It implements monitor.WarningSink and never blocks the monitor.
type Sink struct {
	messages chan warningMsg
}

// NewSink creates a sink with a small buffer.
func NewSink() *Sink {
	return &Sink{messages: make(chan warningMsg, 4)}
}

// ShowBlockWarning queues a warning; it is dropped when the buffer is full.
func (sink *Sink) ShowBlockWarning(warning monitor.Warning) {
	select {
	case sink.messages <- warningMsg{warning: warning, visible: true}:
	default:
	}
}

// HideBlockWarning queues a hide request.
func (sink *Sink) HideBlockWarning() {
	select {
	case sink.messages <- warningMsg{}:
	default:
	}
}
