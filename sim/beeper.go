package sim

import (
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"

	"dotgames/game"
)

// Beeper plays short sine blips for game events. Playback is handed to
// the speaker's own mixer goroutine, so Play never blocks the game
// loop.
type Beeper struct {
	sr beep.SampleRate
}

// NewBeeper initializes the speaker. Audio failure is the caller's
// call to make non-fatal; the game runs fine silent.
func NewBeeper(cfg *Config) (*Beeper, error) {
	sr := beep.SampleRate(cfg.SampleRate)
	if err := speaker.Init(sr, sr.N(time.Second/10)); err != nil {
		return nil, err
	}
	return &Beeper{sr: sr}, nil
}

// Play queues the blip for the event.
func (b *Beeper) Play(s game.SoundType) {
	var freq float64
	var d time.Duration
	switch s {
	case game.SoundSelect:
		freq, d = 880, 90*time.Millisecond
	case game.SoundEgg:
		freq, d = 1320, 60*time.Millisecond
	case game.SoundGameOver:
		freq, d = 220, 350*time.Millisecond
	default:
		return
	}

	tone, err := generators.SineTone(b.sr, freq)
	if err != nil {
		return
	}
	speaker.Play(beep.Take(b.sr.N(d), tone))
}
