package model

import (
	"fmt"
	"time"
)

// Phase identifies the current interval type.
type Phase string

const (
	PhaseWork  Phase = "work"
	PhaseBreak Phase = "break"
)

// Nominal phase lengths in seconds. They are fixed at build time.
const (
	WorkSeconds  = 25 * 60
	BreakSeconds = 5 * 60

	// MinutesPerSession is the focus credit of one completed work phase.
	MinutesPerSession = WorkSeconds / 60
)

// Duration returns the nominal length of phase in seconds.
func Duration(phase Phase) int {
	if phase == PhaseBreak {
		return BreakSeconds
	}
	return WorkSeconds
}

// Next returns the phase that follows phase.
func (phase Phase) Next() Phase {
	if phase == PhaseWork {
		return PhaseBreak
	}
	return PhaseWork
}

// FormatClock renders seconds as zero-padded mm:ss.
func FormatClock(seconds int) string {
	if seconds < 0 {
		seconds = 0
	}
	return fmt.Sprintf("%02d:%02d", seconds/60, seconds%60)
}

// ToneCue describes the short sine chime played on phase changes.
type ToneCue struct {
	Frequency float64
	Peak      float64
	Attack    time.Duration
	Duration  time.Duration
}

// DefaultTone is an 800 Hz chime ramping to 0.2 gain in 100ms and fading out by 500ms.
var DefaultTone = ToneCue{
	Frequency: 800,
	Peak:      0.2,
	Attack:    100 * time.Millisecond,
	Duration:  500 * time.Millisecond,
}
