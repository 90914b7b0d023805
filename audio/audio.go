// Package audio plays short generated tones for game events through the
// system speaker. Initialization failure is non-fatal; the game runs
// silent.
package audio

import (
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"

	"github.com/lixenwraith/chomp/engine"
)

const sampleRate = beep.SampleRate(44100)

// tone is a sine blip: frequency in Hz and duration
type tone struct {
	freq int
	dur  time.Duration
}

// eventTones maps session events to effects. Unmapped events are silent.
var eventTones = map[engine.EventKind]tone{
	engine.EventPellet:      {freq: 880, dur: 30 * time.Millisecond},
	engine.EventPowerPellet: {freq: 440, dur: 120 * time.Millisecond},
	engine.EventFruitSpawn:  {freq: 660, dur: 80 * time.Millisecond},
	engine.EventFruitEaten:  {freq: 1320, dur: 100 * time.Millisecond},
	engine.EventGhostEaten:  {freq: 1760, dur: 120 * time.Millisecond},
	engine.EventPlayerDeath: {freq: 220, dur: 400 * time.Millisecond},
	engine.EventLevelClear:  {freq: 990, dur: 250 * time.Millisecond},
	engine.EventGameOver:    {freq: 110, dur: 600 * time.Millisecond},
}

// Player owns the speaker; a zero Player stays silent
type Player struct {
	ready bool
}

// NewPlayer initializes the speaker. On error the returned Player is
// usable but silent.
func NewPlayer() (*Player, error) {
	if err := speaker.Init(sampleRate, sampleRate.N(time.Second/10)); err != nil {
		return &Player{}, err
	}
	return &Player{ready: true}, nil
}

// Handle plays the tones for one tick's events
func (p *Player) Handle(events []engine.Event) {
	if !p.ready {
		return
	}
	for _, ev := range events {
		t, ok := eventTones[ev.Kind]
		if !ok {
			continue
		}
		sine, err := generators.SineTone(sampleRate, float64(t.freq))
		if err != nil {
			continue
		}
		speaker.Play(beep.Take(sampleRate.N(t.dur), sine))
	}
}

// Close releases the speaker
func (p *Player) Close() {
	if p.ready {
		speaker.Close()
	}
}
