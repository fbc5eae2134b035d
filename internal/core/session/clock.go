package session

import (
	"context"
	"sync"
	"time"

	"focusguard/internal/core/model"

	"github.com/rs/zerolog"
)

// Recorder receives completed work phases.
type Recorder interface {
	RecordCompletedSession(ctx context.Context) (model.Stats, error)
	Stats() model.Stats
}

// Config contains runtime options for Clock.
type Config struct {
	TickInterval time.Duration
}

// Clock is the work/break countdown state machine.
type Clock struct {
	mu         sync.Mutex
	options    Config
	recorder   Recorder
	logger     zerolog.Logger
	phase      model.Phase
	remaining  int
	running    bool
	generation uint64
	stopCh     chan struct{}
	doneCh     chan struct{}
	events     []chan Event
	closed     bool
}

// New creates an idle Clock at the start of a work phase.
func New(recorder Recorder, options Config, logger zerolog.Logger) *Clock {
	if options.TickInterval <= 0 {
		options.TickInterval = time.Second
	}
	return &Clock{
		options:   options,
		recorder:  recorder,
		logger:    logger,
		phase:     model.PhaseWork,
		remaining: model.Duration(model.PhaseWork),
	}
}

// Subscribe registers a new observer channel. Slow observers miss events.
func (clock *Clock) Subscribe(buffer int) <-chan Event {
	if buffer <= 0 {
		buffer = 1
	}
	ch := make(chan Event, buffer)
	clock.mu.Lock()
	defer clock.mu.Unlock()
	if clock.closed {
		close(ch)
		return ch
	}
	clock.events = append(clock.events, ch)
	return ch
}

// Start resumes the countdown of the current phase.
func (clock *Clock) Start() {
	clock.mu.Lock()
	if clock.running || clock.closed {
		clock.mu.Unlock()
		return
	}
	clock.running = true
	clock.generation++
	generation := clock.generation
	stopCh := make(chan struct{})
	doneCh := make(chan struct{})
	clock.stopCh = stopCh
	clock.doneCh = doneCh

	now := time.Now()
	tone := model.DefaultTone
	clock.emitLocked(Event{Type: EventPhaseStarted, Tone: &tone, At: now})
	clock.emitLocked(Event{Type: EventStateChange, At: now})
	phase := clock.phase
	clock.mu.Unlock()

	clock.logger.Debug().Str("phase", string(phase)).Msg("clock started")
	go clock.run(generation, stopCh, doneCh)
}

// Pause freezes the countdown, keeping the remaining time.
func (clock *Clock) Pause() {
	clock.mu.Lock()
	if !clock.running {
		clock.mu.Unlock()
		return
	}
	clock.running = false
	doneCh := clock.haltLocked()
	clock.emitLocked(Event{Type: EventStateChange, At: time.Now()})
	clock.mu.Unlock()

	waitHalted(doneCh)
}

// Reset stops the clock and rewinds the current phase to its full length.
func (clock *Clock) Reset() {
	clock.mu.Lock()
	clock.running = false
	doneCh := clock.haltLocked()
	clock.remaining = model.Duration(clock.phase)
	clock.emitLocked(Event{Type: EventStateChange, At: time.Now()})
	clock.mu.Unlock()

	waitHalted(doneCh)
}

// Close halts the cadence and closes all observer channels.
func (clock *Clock) Close() {
	clock.mu.Lock()
	if clock.closed {
		clock.mu.Unlock()
		return
	}
	clock.closed = true
	clock.running = false
	doneCh := clock.haltLocked()
	events := clock.events
	clock.events = nil
	clock.mu.Unlock()

	waitHalted(doneCh)
	for _, ch := range events {
		close(ch)
	}
}

// IsBlockingActive reports whether a work phase is counting down.
func (clock *Clock) IsBlockingActive() bool {
	clock.mu.Lock()
	defer clock.mu.Unlock()
	return clock.running && clock.phase == model.PhaseWork
}

// Remaining returns the seconds left in the current phase.
func (clock *Clock) Remaining() int {
	clock.mu.Lock()
	defer clock.mu.Unlock()
	return clock.remaining
}

// Snapshot returns the current clock state together with the ledger counters.
func (clock *Clock) Snapshot() Snapshot {
	clock.mu.Lock()
	defer clock.mu.Unlock()
	return clock.snapshotLocked()
}

func (clock *Clock) run(generation uint64, stopCh <-chan struct{}, doneCh chan<- struct{}) {
	defer close(doneCh)

	ticker := time.NewTicker(clock.options.TickInterval)
	defer ticker.Stop()

	for {
		select {
		case <-stopCh:
			return
		case tickTime := <-ticker.C:
			clock.tick(generation, tickTime)
		}
	}
}

// tick advances the countdown by one second. Ticks of a halted cadence are dropped.
func (clock *Clock) tick(generation uint64, now time.Time) {
	clock.mu.Lock()
	defer clock.mu.Unlock()
	if !clock.running || generation != clock.generation {
		return
	}

	if clock.remaining > 0 {
		clock.remaining--
	}
	clock.emitLocked(Event{Type: EventTick, At: now})
	if clock.remaining > 0 {
		return
	}
	clock.completeLocked(now)
}

func (clock *Clock) completeLocked(now time.Time) {
	clock.running = false
	// Called from the ticker goroutine itself, so the cadence is not awaited.
	clock.haltLocked()

	completed := clock.phase
	if completed == model.PhaseWork && clock.recorder != nil {
		stats, err := clock.recorder.RecordCompletedSession(context.Background())
		if err != nil {
			clock.logger.Error().Err(err).Int("completed_sessions", stats.CompletedSessions).Msg("record completed session")
			clock.emitLocked(Event{Type: EventPersistError, Message: err.Error(), At: now})
		}
	}

	clock.phase = completed.Next()
	clock.remaining = model.Duration(clock.phase)

	tone := model.DefaultTone
	event := Event{Type: EventBreakComplete, Message: MessageBreakComplete, Tone: &tone, At: now}
	if completed == model.PhaseWork {
		event.Type = EventWorkComplete
		event.Message = MessageWorkComplete
	}
	clock.emitLocked(event)
	clock.emitLocked(Event{Type: EventStateChange, At: now})

	clock.logger.Info().
		Str("completed", string(completed)).
		Str("next", string(clock.phase)).
		Msg("phase complete")
}

// haltLocked signals the ticker goroutine to exit and returns its done channel.
func (clock *Clock) haltLocked() <-chan struct{} {
	if clock.stopCh == nil {
		return nil
	}
	close(clock.stopCh)
	doneCh := clock.doneCh
	clock.stopCh = nil
	clock.doneCh = nil
	return doneCh
}

func waitHalted(doneCh <-chan struct{}) {
	if doneCh != nil {
		<-doneCh
	}
}

func (clock *Clock) snapshotLocked() Snapshot {
	snapshot := Snapshot{
		Phase:     clock.phase,
		Running:   clock.running,
		Remaining: clock.remaining,
	}
	if clock.recorder != nil {
		snapshot.Stats = clock.recorder.Stats()
	}
	return snapshot
}

func (clock *Clock) emitLocked(event Event) {
	event.Snapshot = clock.snapshotLocked()
	for _, ch := range clock.events {
		select {
		case ch <- event:
		default:
		}
	}
}
