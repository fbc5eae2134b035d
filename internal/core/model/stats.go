package model

// StatsKey is the fixed identifier of the persisted statistics record.
const StatsKey = "pomodoroStats"

// Stats holds cumulative productivity counters.
type Stats struct {
	CompletedSessions int `json:"completedSessions"`
	TotalMinutes      int `json:"totalMinutes"`
	Streak            int `json:"streak"`
}

// WithCompletedSession returns stats credited with one finished work phase.
func (stats Stats) WithCompletedSession() Stats {
	stats.CompletedSessions++
	stats.TotalMinutes += MinutesPerSession
	stats.Streak++
	return stats
}

// Normalized clamps negative counters to zero.
func (stats Stats) Normalized() Stats {
	if stats.CompletedSessions < 0 {
		stats.CompletedSessions = 0
	}
	if stats.TotalMinutes < 0 {
		stats.TotalMinutes = 0
	}
	if stats.Streak < 0 {
		stats.Streak = 0
	}
	return stats
}
