// Package audio plays short synthesized cues for gameplay events.
// Audio is optional: a Chimes that failed to initialize silently ignores
// every Play call.
package audio

import (
	"math"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"

	"github.com/vovakirdan/tui-planetoids/internal/core"
)

const sampleRate = beep.SampleRate(44100)

// Note is one sine tone of a cue.
type Note struct {
	Freq     float64
	Duration time.Duration
}

// Chimes maps core events to short melodies.
type Chimes struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	volume      float64 // In halvings; 0 is full scale
	initialized bool
}

// NewChimes creates an uninitialized player. volume is relative loudness in
// halvings, so -1 is half as loud.
func NewChimes(volume float64) *Chimes {
	return &Chimes{
		mixer:  &beep.Mixer{},
		volume: volume,
	}
}

// Initialize opens the speaker. Calling it again after success is a no-op.
func (c *Chimes) Initialize() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.initialized {
		return nil
	}

	if err := speaker.Init(sampleRate, sampleRate.N(time.Second/10)); err != nil {
		return err
	}

	speaker.Play(c.mixer)
	c.initialized = true
	return nil
}

// Close silences any playing cue. The speaker itself stays open.
func (c *Chimes) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.initialized {
		return
	}
	speaker.Lock()
	c.mixer.Clear()
	speaker.Unlock()
	c.initialized = false
}

// Enabled reports whether cues are audible.
func (c *Chimes) Enabled() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.initialized
}

// Play queues the cue for an event. Events without a cue are ignored.
func (c *Chimes) Play(ev core.Event) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.initialized {
		return
	}
	notes := Cue(ev)
	if len(notes) == 0 {
		return
	}
	s, err := melody(notes)
	if err != nil {
		return
	}

	speaker.Lock()
	c.mixer.Add(&effects.Volume{Streamer: s, Base: 2, Volume: c.volume})
	speaker.Unlock()
}

// Cue returns the notes played for an event.
func Cue(ev core.Event) []Note {
	const short = 60 * time.Millisecond
	switch ev.Kind {
	case core.EventLanded:
		// Each combo step raises the landing chirp by a semitone.
		step := float64(min(max(ev.Combo, 1), 10) - 1)
		return []Note{{Freq: 523.25 * math.Pow(2, step/12), Duration: short}}
	case core.EventExplorationBonus:
		return []Note{{784, short}, {988, 2 * short}}
	case core.EventLevelComplete:
		return []Note{{523.25, short}, {659.25, short}, {784, 3 * short}}
	case core.EventGameOver:
		if ev.Reason == "journey_complete" {
			return []Note{{523.25, short}, {659.25, short}, {784, short}, {1046.5, 4 * short}}
		}
		return []Note{{392, 2 * short}, {330, 2 * short}, {262, 4 * short}}
	default:
		return nil
	}
}

// melody concatenates sine tones into one finite streamer.
func melody(notes []Note) (beep.Streamer, error) {
	parts := make([]beep.Streamer, 0, len(notes))
	for _, n := range notes {
		tone, err := generators.SineTone(sampleRate, n.Freq)
		if err != nil {
			return nil, err
		}
		parts = append(parts, beep.Take(sampleRate.N(n.Duration), tone))
	}
	return beep.Seq(parts...), nil
}
