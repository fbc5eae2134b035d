package platform

import (
	"errors"
	"fmt"
	"math"
	"sync"
	"time"

	"focusguard/internal/core/model"

	"github.com/faiface/beep"
	"github.com/faiface/beep/speaker"
)

// ErrAudioUnavailable indicates no audio output could be initialised.
var ErrAudioUnavailable = errors.New("audio output unavailable")

const toneSampleRate = beep.SampleRate(44100)

// TonePlayer plays synthesized chimes on the default audio device.
type TonePlayer struct {
	once       sync.Once
	initErr    error
	sampleRate beep.SampleRate
}

// NewTonePlayer creates a player. The speaker is opened lazily on first use.
func NewTonePlayer() *TonePlayer {
	return &TonePlayer{sampleRate: toneSampleRate}
}

// Play queues cue on the speaker and returns immediately.
func (player *TonePlayer) Play(cue model.ToneCue) error {
	player.once.Do(func() {
		player.initErr = speaker.Init(player.sampleRate, player.sampleRate.N(time.Second/10))
	})
	if player.initErr != nil {
		return fmt.Errorf("%w: %v", ErrAudioUnavailable, player.initErr)
	}
	speaker.Play(ToneStreamer(player.sampleRate, cue))
	return nil
}

// ToneStreamer renders cue as a stereo sine wave with a linear attack and release.
func ToneStreamer(sampleRate beep.SampleRate, cue model.ToneCue) beep.Streamer {
	total := sampleRate.N(cue.Duration)
	attack := sampleRate.N(cue.Attack)
	step := 2 * math.Pi * cue.Frequency / float64(sampleRate)
	position := 0

	return beep.StreamerFunc(func(samples [][2]float64) (int, bool) {
		if position >= total {
			return 0, false
		}
		n := 0
		for i := range samples {
			if position >= total {
				break
			}
			value := math.Sin(step*float64(position)) * ToneGain(position, attack, total, cue.Peak)
			samples[i][0] = value
			samples[i][1] = value
			position++
			n++
		}
		return n, true
	})
}

// ToneGain returns the envelope at sample position: 0 → peak over attack, then back to 0 at total.
func ToneGain(position, attack, total int, peak float64) float64 {
	switch {
	case position < 0 || position >= total:
		return 0
	case position < attack:
		return peak * float64(position) / float64(attack)
	case total == attack:
		return peak
	default:
		return peak * float64(total-position) / float64(total-attack)
	}
}
