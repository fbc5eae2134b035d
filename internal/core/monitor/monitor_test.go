package monitor

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"focusguard/internal/core/model"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

type fakeState struct {
	active    bool
	remaining int
}

func (state *fakeState) IsBlockingActive() bool { return state.active }
func (state *fakeState) Remaining() int         { return state.remaining }

type recordingSink struct {
	mu       sync.Mutex
	warnings []Warning
	hidden   int
}

func (sink *recordingSink) ShowBlockWarning(warning Warning) {
	sink.mu.Lock()
	defer sink.mu.Unlock()
	sink.warnings = append(sink.warnings, warning)
}

func (sink *recordingSink) HideBlockWarning() {
	sink.mu.Lock()
	defer sink.mu.Unlock()
	sink.hidden++
}

func (sink *recordingSink) shown() int {
	sink.mu.Lock()
	defer sink.mu.Unlock()
	return len(sink.warnings)
}

func newTestMonitor(state BlockingState, source DestinationSource, sink WarningSink) *Monitor {
	return New(state, source, sink, Config{BlockList: NewBlockList(model.DefaultBlockList())}, zerolog.Nop())
}

func TestCheckRaisesSignalOnBlockedDestination(t *testing.T) {
	sink := &recordingSink{}
	monitor := newTestMonitor(&fakeState{active: true, remaining: 1490}, StaticDestination("www.instagram.com/explore"), sink)

	signal := monitor.Check(context.Background())
	assert.Equal(t, Signal{Active: true, Destination: "www.instagram.com/explore", Match: "instagram.com"}, signal)
	require.Len(t, sink.warnings, 1)
	assert.Equal(t, Warning{Destination: "www.instagram.com/explore", Match: "instagram.com", Remaining: "24:50"}, sink.warnings[0])
}

func TestCheckIgnoresAllowedDestination(t *testing.T) {
	sink := &recordingSink{}
	monitor := newTestMonitor(&fakeState{active: true}, StaticDestination("example.com"), sink)

	signal := monitor.Check(context.Background())
	assert.False(t, signal.Active)
	assert.Empty(t, sink.warnings)
}

func TestCheckInactiveWhenBlockingOff(t *testing.T) {
	sink := &recordingSink{}
	calls := 0
	source := DestinationFunc(func(context.Context) (string, error) {
		calls++
		return "instagram.com", nil
	})
	monitor := newTestMonitor(&fakeState{active: false}, source, sink)

	assert.Equal(t, Signal{}, monitor.Check(context.Background()))
	assert.Empty(t, sink.warnings)
	assert.Zero(t, calls)
}

func TestUnsupportedSourceIsDisabled(t *testing.T) {
	calls := 0
	source := DestinationFunc(func(context.Context) (string, error) {
		calls++
		return "", ErrDestinationUnsupported
	})
	monitor := newTestMonitor(&fakeState{active: true}, source, nil)

	monitor.Check(context.Background())
	monitor.Check(context.Background())
	assert.Equal(t, 1, calls)
}

func TestSourceErrorSkipsPoll(t *testing.T) {
	calls := 0
	source := DestinationFunc(func(context.Context) (string, error) {
		calls++
		if calls == 1 {
			return "", errors.New("xdotool: exit status 1")
		}
		return "reddit.com/r/golang", nil
	})
	sink := &recordingSink{}
	monitor := newTestMonitor(&fakeState{active: true}, source, sink)

	assert.False(t, monitor.Check(context.Background()).Active)
	assert.True(t, monitor.Check(context.Background()).Active)
	assert.Equal(t, 1, sink.shown())
}

func TestDismissHidesWarning(t *testing.T) {
	sink := &recordingSink{}
	monitor := newTestMonitor(&fakeState{active: true}, StaticDestination("tiktok.com"), sink)

	monitor.Check(context.Background())
	monitor.Dismiss()
	assert.Equal(t, 1, sink.hidden)
}

func TestRunPollsUntilCancelled(t *testing.T) {
	defer goleak.VerifyNone(t, goleak.IgnoreCurrent())

	sink := &recordingSink{}
	monitor := New(&fakeState{active: true}, StaticDestination("snapchat.com"), sink, Config{
		Interval:  5 * time.Millisecond,
		BlockList: NewBlockList(model.DefaultBlockList()),
	}, zerolog.Nop())

	ctx, cancel := context.WithCancel(context.Background())
	errCh := make(chan error, 1)
	go func() {
		errCh <- monitor.Run(ctx)
	}()

	require.Eventually(t, func() bool { return sink.shown() >= 2 }, 2*time.Second, 5*time.Millisecond)
	cancel()

	select {
	case err := <-errCh:
		assert.ErrorIs(t, err, context.Canceled)
	case <-time.After(2 * time.Second):
		t.Fatal("Run did not return after cancel")
	}
}
