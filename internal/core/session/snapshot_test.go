package session

import (
	"testing"

	"focusguard/internal/core/model"

	"github.com/stretchr/testify/assert"
)

func TestSnapshotProgress(t *testing.T) {
	assert.Equal(t, 0.0, Snapshot{Phase: model.PhaseWork, Remaining: 1500}.Progress())
	assert.Equal(t, 50.0, Snapshot{Phase: model.PhaseWork, Remaining: 750}.Progress())
	assert.Equal(t, 100.0, Snapshot{Phase: model.PhaseBreak, Remaining: 0}.Progress())
	assert.Equal(t, 20.0, Snapshot{Phase: model.PhaseBreak, Remaining: 240}.Progress())
}

func TestSnapshotStatusLines(t *testing.T) {
	tests := []struct {
		snapshot Snapshot
		status   string
		blocking string
	}{
		{Snapshot{Phase: model.PhaseWork, Running: true}, "Focus time - Stay concentrated!", "Website Blocking: Active"},
		{Snapshot{Phase: model.PhaseWork}, "Ready for a focus session", "Website Blocking: Inactive"},
		{Snapshot{Phase: model.PhaseBreak, Running: true}, "Break time - Relax and recharge", "Website Blocking: Inactive"},
		{Snapshot{Phase: model.PhaseBreak}, "Ready for a break", "Website Blocking: Inactive"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.status, tt.snapshot.Status())
		assert.Equal(t, tt.blocking, tt.snapshot.BlockingStatus())
	}
}

func TestSnapshotDisplay(t *testing.T) {
	assert.Equal(t, "24:50", Snapshot{Remaining: 1490}.Display())
}
