// Package audio plays short sine-tone cues for game events.
package audio

import (
	"fmt"
	"io"
	"math"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"

	"github.com/vovakirdan/tui-dino/internal/game"
)

const sampleRate = beep.SampleRate(44100)

// Note is a single tone.
type Note struct {
	Freq     float64
	Duration time.Duration
	Volume   float64 // Linear gain in (0, 1]
}

// Cues maps events to the notes played for them, in order.
// Events without an entry are silent.
var Cues = map[game.EventKind][]Note{
	game.EventStarted: {
		{Freq: 440, Duration: 60 * time.Millisecond, Volume: 0.3},
		{Freq: 660, Duration: 60 * time.Millisecond, Volume: 0.3},
	},
	game.EventJumped: {
		{Freq: 660, Duration: 40 * time.Millisecond, Volume: 0.25},
	},
	game.EventScored: {
		{Freq: 988, Duration: 50 * time.Millisecond, Volume: 0.3},
		{Freq: 1319, Duration: 80 * time.Millisecond, Volume: 0.3},
	},
	game.EventCrashed: {
		{Freq: 220, Duration: 150 * time.Millisecond, Volume: 0.4},
		{Freq: 110, Duration: 250 * time.Millisecond, Volume: 0.4},
	},
}

// Player mixes event cues into the speaker. A Player that failed to
// open the audio device stays silent.
type Player struct {
	mu      sync.Mutex
	mixer   *beep.Mixer
	enabled bool
	logger  *log.Logger
}

// Open initializes the speaker. On failure it logs a warning and returns a
// silent player so the game can continue.
func Open(logger *log.Logger) *Player {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	p := &Player{mixer: &beep.Mixer{}, logger: logger}
	if err := speaker.Init(sampleRate, sampleRate.N(100*time.Millisecond)); err != nil {
		logger.Warn("audio disabled", "error", err)
		return p
	}
	speaker.Play(p.mixer)
	p.enabled = true
	return p
}

// Silent returns a player that never makes a sound.
func Silent() *Player {
	return &Player{mixer: &beep.Mixer{}}
}

// Enabled reports whether the speaker was opened.
func (p *Player) Enabled() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.enabled
}

// Play queues the cues for every event in order.
func (p *Player) Play(events []game.Event) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.enabled {
		return
	}
	for _, ev := range events {
		notes, ok := Cues[ev.Kind]
		if !ok {
			continue
		}
		s, err := Sequence(notes)
		if err != nil {
			p.logger.Warn("cannot build cue", "event", ev.Kind, "error", err)
			continue
		}
		speaker.Lock()
		p.mixer.Add(s)
		speaker.Unlock()
	}
}

// Close stops all pending cues.
func (p *Player) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.enabled {
		return
	}
	speaker.Lock()
	p.mixer.Clear()
	speaker.Unlock()
	p.enabled = false
}

// Sequence renders notes back to back.
func Sequence(notes []Note) (beep.Streamer, error) {
	parts := make([]beep.Streamer, 0, len(notes))
	for _, n := range notes {
		s, err := tone(n)
		if err != nil {
			return nil, err
		}
		parts = append(parts, s)
	}
	return beep.Seq(parts...), nil
}

func tone(n Note) (beep.Streamer, error) {
	sine, err := generators.SineTone(sampleRate, n.Freq)
	if err != nil {
		return nil, fmt.Errorf("audio: tone %.0fHz: %w", n.Freq, err)
	}
	return withVolume(beep.Take(sampleRate.N(n.Duration), sine), n.Volume), nil
}

// withVolume applies a linear gain; zero or less is silence.
func withVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol)}
}
