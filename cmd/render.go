package main

import "focusguard/internal/core/session"

type snapshotView interface {
	Update(snapshot session.Snapshot)
}

type warningView interface {
	Visible() bool
	SetRemaining(display string)
}

// snapshotRenderer pushes clock snapshots into the GUI. UI goroutine only.
type snapshotRenderer struct {
	views   []snapshotView
	warning warningView
	dismiss func()
}

func (renderer snapshotRenderer) render(snapshot session.Snapshot) {
	for _, view := range renderer.views {
		view.Update(snapshot)
	}
	if renderer.warning == nil {
		return
	}
	if !snapshot.BlockingActive() {
		if renderer.warning.Visible() && renderer.dismiss != nil {
			renderer.dismiss()
		}
		return
	}
	if renderer.warning.Visible() {
		renderer.warning.SetRemaining(snapshot.Display())
	}
}
