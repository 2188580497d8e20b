// Package audio plays short tones when a run starts, grows or ends.
package audio

import (
	"fmt"
	"sync"
	"time"

	"go-snake/internal/state"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"
)

const sampleRate = beep.SampleRate(44100)

type Cue int

const (
	CueStart Cue = iota
	CueEat
	CueDeath
)

type tone struct {
	freq     float64
	duration time.Duration
}

var cueTones = map[Cue]tone{
	CueStart: {freq: 660, duration: 80 * time.Millisecond},
	CueEat:   {freq: 880, duration: 50 * time.Millisecond},
	CueDeath: {freq: 110, duration: 300 * time.Millisecond},
}

// CueFor picks the cue for a game event.
func CueFor(ev state.Event) (Cue, bool) {
	switch ev.Kind {
	case state.Started:
		return CueStart, true
	case state.Consumed:
		return CueEat, true
	case state.Died:
		return CueDeath, true
	}
	return 0, false
}

func cueStreamer(c Cue) (beep.Streamer, error) {
	t, ok := cueTones[c]
	if !ok {
		return nil, fmt.Errorf("unknown cue %d", c)
	}
	sine, err := generators.SineTone(sampleRate, t.freq)
	if err != nil {
		return nil, fmt.Errorf("sine tone %.0fHz: %w", t.freq, err)
	}
	return beep.Take(sampleRate.N(t.duration), sine), nil
}

// Player owns the speaker. Until Init succeeds every Play is a no-op.
type Player struct {
	mu          sync.Mutex
	initialized bool
}

func NewPlayer() *Player {
	return &Player{}
}

// Init opens the audio device.
func (p *Player) Init() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.initialized {
		return nil
	}
	if err := speaker.Init(sampleRate, sampleRate.N(100*time.Millisecond)); err != nil {
		return fmt.Errorf("could not open audio device: %w", err)
	}
	p.initialized = true
	return nil
}

func (p *Player) Play(c Cue) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized {
		return nil
	}
	s, err := cueStreamer(c)
	if err != nil {
		return err
	}
	speaker.Play(s)
	return nil
}

// Handle is a state listener that plays the cue for each event.
func (p *Player) Handle(ev state.Event) {
	if c, ok := CueFor(ev); ok {
		_ = p.Play(c)
	}
}

func (p *Player) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized {
		return
	}
	speaker.Close()
	p.initialized = false
}
