package session

import "focusguard/internal/core/model"

// Snapshot is a read-only view of the clock and ledger at one instant.
type Snapshot struct {
	Phase     model.Phase
	Running   bool
	Remaining int
	Stats     model.Stats
}

// Display returns the remaining time as mm:ss.
func (snapshot Snapshot) Display() string {
	return model.FormatClock(snapshot.Remaining)
}

// Progress returns the elapsed share of the current phase as a percentage.
func (snapshot Snapshot) Progress() float64 {
	total := model.Duration(snapshot.Phase)
	progress := float64(total-snapshot.Remaining) / float64(total) * 100
	if progress < 0 {
		return 0
	}
	if progress > 100 {
		return 100
	}
	return progress
}

// BlockingActive reports whether distraction checks apply.
func (snapshot Snapshot) BlockingActive() bool {
	return snapshot.Running && snapshot.Phase == model.PhaseWork
}

// Status returns the session info line shown under the countdown.
func (snapshot Snapshot) Status() string {
	switch {
	case snapshot.Phase == model.PhaseWork && snapshot.Running:
		return "Focus time - Stay concentrated!"
	case snapshot.Phase == model.PhaseWork:
		return "Ready for a focus session"
	case snapshot.Running:
		return "Break time - Relax and recharge"
	default:
		return "Ready for a break"
	}
}

// BlockingStatus returns the distraction blocking indicator text.
func (snapshot Snapshot) BlockingStatus() string {
	if snapshot.BlockingActive() {
		return "Website Blocking: Active"
	}
	return "Website Blocking: Inactive"
}
