package monitor

import (
	"context"
	"errors"
	"strings"
	"sync"
	"time"

	"focusguard/internal/core/model"

	"github.com/rs/zerolog"
)

// ErrDestinationUnsupported indicates the destination probe is not available on this system.
var ErrDestinationUnsupported = errors.New("destination probe unsupported")

// DefaultInterval is the polling cadence of Run.
const DefaultInterval = 2 * time.Second

// BlockingState is the part of the session clock the monitor reads.
type BlockingState interface {
	IsBlockingActive() bool
	Remaining() int
}

// DestinationSource reports the current navigable destination.
type DestinationSource interface {
	CurrentDestination(ctx context.Context) (string, error)
}

// DestinationFunc adapts a function to DestinationSource.
type DestinationFunc func(ctx context.Context) (string, error)

// CurrentDestination calls fn.
func (fn DestinationFunc) CurrentDestination(ctx context.Context) (string, error) {
	return fn(ctx)
}

// StaticDestination always reports the same destination.
type StaticDestination string

// CurrentDestination returns the destination itself.
func (destination StaticDestination) CurrentDestination(context.Context) (string, error) {
	return string(destination), nil
}

// Warning is the payload of a blocking warning.
type Warning struct {
	Destination string
	Match       string
	Remaining   string
}

// WarningSink presents and hides the blocking warning.
type WarningSink interface {
	ShowBlockWarning(warning Warning)
	HideBlockWarning()
}

// Signal is the outcome of a single poll.
type Signal struct {
	Active      bool
	Destination string
	Match       string
}

// Config contains runtime options for Monitor.
type Config struct {
	Interval  time.Duration
	BlockList BlockList
}

// Monitor flags block-listed destinations while a work phase is running.
type Monitor struct {
	mu             sync.Mutex
	state          BlockingState
	source         DestinationSource
	sink           WarningSink
	config         Config
	logger         zerolog.Logger
	sourceDisabled bool
}

// New creates a Monitor. A nil sink only reports signals to the caller.
func New(state BlockingState, source DestinationSource, sink WarningSink, config Config, logger zerolog.Logger) *Monitor {
	if config.Interval <= 0 {
		config.Interval = DefaultInterval
	}
	return &Monitor{
		state:  state,
		source: source,
		sink:   sink,
		config: config,
		logger: logger,
	}
}

// Run polls until ctx is cancelled.
func (monitor *Monitor) Run(ctx context.Context) error {
	ticker := time.NewTicker(monitor.config.Interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			monitor.Check(ctx)
		}
	}
}

// Check performs one poll and raises the warning on a match.
func (monitor *Monitor) Check(ctx context.Context) Signal {
	if !monitor.state.IsBlockingActive() {
		return Signal{}
	}

	destination, ok := monitor.currentDestination(ctx)
	if !ok {
		return Signal{}
	}

	match, found := monitor.config.BlockList.Match(destination)
	if !found {
		return Signal{Destination: destination}
	}

	signal := Signal{Active: true, Destination: destination, Match: match}
	monitor.logger.Info().
		Str("destination", destination).
		Str("match", match).
		Msg("distracting destination during focus")
	if monitor.sink != nil {
		monitor.sink.ShowBlockWarning(Warning{
			Destination: destination,
			Match:       match,
			Remaining:   model.FormatClock(monitor.state.Remaining()),
		})
	}
	return signal
}

// Dismiss hides the blocking warning.
func (monitor *Monitor) Dismiss() {
	if monitor.sink != nil {
		monitor.sink.HideBlockWarning()
	}
}

func (monitor *Monitor) currentDestination(ctx context.Context) (string, bool) {
	monitor.mu.Lock()
	disabled := monitor.sourceDisabled
	monitor.mu.Unlock()
	if disabled || monitor.source == nil {
		return "", false
	}

	destination, err := monitor.source.CurrentDestination(ctx)
	if err != nil {
		if errors.Is(err, ErrDestinationUnsupported) {
			monitor.mu.Lock()
			monitor.sourceDisabled = true
			monitor.mu.Unlock()
			monitor.logger.Warn().Err(err).Msg("destination probe disabled")
			return "", false
		}
		monitor.logger.Debug().Err(err).Msg("read destination")
		return "", false
	}
	destination = strings.TrimSpace(destination)
	return destination, destination != ""
}
