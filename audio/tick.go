// Package audio plays the optional once-per-second tick through the system
// speaker.
package audio

import (
	"fmt"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"
)

const (
	sampleRate   = beep.SampleRate(44100)
	tickFreq     = 880.0
	tickDuration = 40 * time.Millisecond
)

// Ticker emits a short sine burst whenever the time sample crosses a whole
// second. A nil Ticker is a valid no-op, so hosts can run without audio.
type Ticker struct {
	lastSecond int
}

// NewTicker initializes the speaker
func NewTicker() (*Ticker, error) {
	if err := speaker.Init(sampleRate, sampleRate.N(time.Second/10)); err != nil {
		return nil, fmt.Errorf("init speaker: %w", err)
	}
	return &Ticker{lastSecond: -1}, nil
}

// Tick plays the tick sound if timeOfDay entered a new whole second since
// the previous call
func (t *Ticker) Tick(timeOfDay float64) {
	if t == nil {
		return
	}
	sec := int(timeOfDay)
	if sec == t.lastSecond {
		return
	}
	t.lastSecond = sec

	tone, err := generators.SineTone(sampleRate, tickFreq)
	if err != nil {
		return
	}
	speaker.Play(beep.Take(sampleRate.N(tickDuration), tone))
}

// Close shuts the speaker down
func (t *Ticker) Close() {
	if t != nil {
		speaker.Close()
	}
}
