package ledger

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"focusguard/internal/core/model"

	"github.com/rs/zerolog"
)

// ErrNoRecord indicates the store holds no statistics record yet.
var ErrNoRecord = errors.New("no stats record")

// Store persists the statistics record under model.StatsKey.
type Store interface {
	LoadStats(ctx context.Context) (model.Stats, error)
	SaveStats(ctx context.Context, stats model.Stats) error
}

// Ledger owns the cumulative session counters and their persistence.
type Ledger struct {
	mu     sync.Mutex
	store  Store
	logger zerolog.Logger
	stats  model.Stats
}

// New creates a Ledger backed by store. A nil store keeps stats in memory only.
func New(store Store, logger zerolog.Logger) *Ledger {
	return &Ledger{store: store, logger: logger}
}

// Load replaces the in-memory counters with the persisted record.
// Missing or unreadable data falls back to zero values.
func (ledger *Ledger) Load(ctx context.Context) model.Stats {
	ledger.mu.Lock()
	defer ledger.mu.Unlock()

	ledger.stats = model.Stats{}
	if ledger.store == nil {
		return ledger.stats
	}

	stats, err := ledger.store.LoadStats(ctx)
	switch {
	case err == nil:
		ledger.stats = stats.Normalized()
	case errors.Is(err, ErrNoRecord):
		ledger.logger.Debug().Msg("no persisted stats, starting from zero")
	default:
		ledger.logger.Warn().Err(err).Msg("load stats failed, starting from zero")
	}
	return ledger.stats
}

// Stats returns the current counters.
func (ledger *Ledger) Stats() model.Stats {
	ledger.mu.Lock()
	defer ledger.mu.Unlock()
	return ledger.stats
}

// RecordCompletedSession credits one finished work phase and writes the record.
// The returned error only reports persistence; the in-memory update always applies.
func (ledger *Ledger) RecordCompletedSession(ctx context.Context) (model.Stats, error) {
	ledger.mu.Lock()
	defer ledger.mu.Unlock()

	ledger.stats = ledger.stats.WithCompletedSession()
	stats := ledger.stats
	if ledger.store == nil {
		return stats, nil
	}

	if err := ledger.store.SaveStats(ctx, stats); err != nil {
		ledger.logger.Warn().
			Err(err).
			Int("completed_sessions", stats.CompletedSessions).
			Msg("persist stats failed")
		return stats, fmt.Errorf("save stats: %w", err)
	}
	return stats, nil
}
