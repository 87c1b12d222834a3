// Package game implements the runner simulation: a fixed-step clock, the player
// actor, procedural obstacles and the menu/playing/paused/ended state machine.
// It has no terminal dependencies; surfaces feed it one key event and the elapsed
// time per tick and draw the Frame it returns.
package game

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/vovakirdan/tui-dino/internal/config"
	"github.com/vovakirdan/tui-dino/internal/core"
)

// Mode is the state machine's current state.
type Mode int

const (
	ModeMenu Mode = iota
	ModePlaying
	ModePaused
	ModeEnded
)

// String returns a human-readable name for the mode.
func (m Mode) String() string {
	switch m {
	case ModeMenu:
		return "menu"
	case ModePlaying:
		return "playing"
	case ModePaused:
		return "paused"
	case ModeEnded:
		return "ended"
	default:
		return "unknown"
	}
}

// EventKind classifies something notable that happened during a tick.
type EventKind int

const (
	EventStarted EventKind = iota
	EventJumped
	EventScored
	EventPaused
	EventCrashed
	EventQuit
)

// String returns a human-readable name for the event kind.
func (k EventKind) String() string {
	switch k {
	case EventStarted:
		return "started"
	case EventJumped:
		return "jumped"
	case EventScored:
		return "scored"
	case EventPaused:
		return "paused"
	case EventCrashed:
		return "crashed"
	case EventQuit:
		return "quit"
	default:
		return "unknown"
	}
}

// Event is emitted by Tick for logging and sound cues.
type Event struct {
	Kind    EventKind
	Score   int // Score after the tick
	Retired int // Obstacles passed this tick (EventScored)
}

// State is a snapshot of the session for the platform.
type State struct {
	SessionID string
	Mode      Mode
	Score     int
	Obstacles int
	ActorX    int
	ActorY    int
}

// StepResult is returned by Tick.
type StepResult struct {
	Frame  Frame
	Events []Event
	State  State
}

// Has reports whether the tick emitted an event of the given kind.
func (r StepResult) Has(kind EventKind) bool {
	for _, ev := range r.Events {
		if ev.Kind == kind {
			return true
		}
	}
	return false
}

// modeHandler runs one tick for a mode and returns its draw commands.
type modeHandler func(s *Session, in core.Action, elapsedMs float64) Frame

var handlers = [...]modeHandler{
	ModeMenu:    (*Session).menu,
	ModePlaying: (*Session).play,
	ModePaused:  (*Session).paused,
	ModeEnded:   (*Session).ended,
}

// Session is one game from menu to crash, reused across restarts.
type Session struct {
	ID    string
	Actor Actor
	Field *Field
	Mode  Mode
	Score int
	Clock Clock

	cfg    config.RunnerConfig
	events []Event
}

// NewSession creates a session sitting in the menu.
func NewSession(cfg config.RunnerConfig, rng Rand) *Session {
	s := &Session{
		ID:    uuid.NewString(),
		Actor: NewActor(cfg),
		Field: NewField(NewGenerator(rng, cfg), cfg.Field),
		Mode:  ModeMenu,
		Clock: NewClock(cfg.Physics.StepMillis),
		cfg:   cfg,
	}
	s.Field.Reset(cfg.Field.Width)
	return s
}

// Config returns the configuration the session was built with.
func (s *Session) Config() config.RunnerConfig {
	return s.cfg
}

// Tick advances the session by one surface tick.
// in is the key pressed since the previous tick (ActionNone for none).
func (s *Session) Tick(in core.Action, elapsedMs float64) StepResult {
	s.events = nil
	frame := handlers[s.Mode](s, in, elapsedMs)
	return StepResult{
		Frame:  frame,
		Events: s.events,
		State:  s.State(),
	}
}

// State returns a snapshot of the session.
func (s *Session) State() State {
	return State{
		SessionID: s.ID,
		Mode:      s.Mode,
		Score:     s.Score,
		Obstacles: s.Field.Len(),
		ActorX:    s.Actor.X,
		ActorY:    s.Actor.Y,
	}
}

// Restart begins a new run: fresh actor, one fresh obstacle, zero score and clock.
func (s *Session) Restart() {
	s.ID = uuid.NewString()
	s.Actor = NewActor(s.cfg)
	s.Clock.Reset()
	s.Field.Reset(s.cfg.Field.Width)
	s.Score = 0
	s.Mode = ModePlaying
	s.emit(EventStarted, 0)
}

func (s *Session) emit(kind EventKind, retired int) {
	s.events = append(s.events, Event{Kind: kind, Score: s.Score, Retired: retired})
}

// play runs one Playing tick.
func (s *Session) play(in core.Action, elapsedMs float64) Frame {
	fc := s.cfg.Field
	sky := Sky(s.Score)
	f := NewFrame(sky)

	for x := 0; x < fc.Width; x++ {
		f.Set(x, fc.Floor+1, core.ColorDarkGreen, sky, '-')
	}

	if s.Clock.Advance(elapsedMs) {
		s.Actor.Advance()
	}

	switch {
	case in == core.ActionPause:
		s.Mode = ModePaused
		s.emit(EventPaused, 0)
	case in.IsJump():
		if s.Actor.OnFloor() {
			s.Actor.Jump()
			s.emit(EventJumped, 0)
		}
	case in.IsQuit():
		f.Quit = true
		s.emit(EventQuit, 0)
	}

	f.Set(fc.PlayerColumn, s.Actor.Y, core.ColorOrange, sky, '&')

	f.Cells = append(f.Cells, s.Field.Advance(s.Actor.X, sky)...)
	crashed := s.Field.Collides(s.Actor, fc.PlayerColumn)
	if crashed {
		s.Mode = ModeEnded
	}

	if retired := s.Field.Retire(s.Actor.X); retired > 0 {
		s.Score += retired
		s.emit(EventScored, retired)
	}
	remaining := s.Field.Len()
	s.Field.Replenish(s.Actor.X, s.Score)

	if crashed {
		s.emit(EventCrashed, 0)
	}

	f.Print(0, 1, core.ColorOrange, sky, fmt.Sprintf("Score: %d", s.Score))
	f.Print(0, 2, core.ColorOrange, sky, fmt.Sprintf("Obstacles: %d", remaining))
	return f
}

// menu shows the title screen.
func (s *Session) menu(in core.Action, _ float64) Frame {
	f := NewFrame(core.ColorBlack)
	f.PrintCentered(5, core.ColorWhite, core.ColorBlack, "Welcome to Dino")
	f.PrintCentered(8, core.ColorWhite, core.ColorBlack, "( P || Space ) Play Game")
	f.PrintCentered(10, core.ColorWhite, core.ColorBlack, "( Q || Esc ) Quit Game")
	s.idleInput(in, &f)
	return f
}

// ended shows the crash screen.
func (s *Session) ended(in core.Action, _ float64) Frame {
	return s.scoreScreen(in, "DEAD")
}

// paused shows the pause screen. A paused run cannot be resumed, only restarted.
func (s *Session) paused(in core.Action, _ float64) Frame {
	return s.scoreScreen(in, "PAUSED")
}

func (s *Session) scoreScreen(in core.Action, title string) Frame {
	f := NewFrame(core.ColorBlack)
	f.PrintCentered(3, core.ColorWhite, core.ColorBlack, title)
	f.PrintCentered(6, core.ColorWhite, core.ColorBlack, fmt.Sprintf("You earned %d points", s.Score))
	f.PrintCentered(8, core.ColorWhite, core.ColorBlack, "( P || Space ) Play Again")
	f.PrintCentered(10, core.ColorWhite, core.ColorBlack, "( Q || Esc ) Quit Game")
	s.idleInput(in, &f)
	return f
}

// idleInput handles keys on the menu, pause and crash screens.
func (s *Session) idleInput(in core.Action, f *Frame) {
	switch {
	case in == core.ActionRestart, in == core.ActionPause, in == core.ActionJump:
		s.Restart()
	case in.IsQuit():
		f.Quit = true
		s.emit(EventQuit, 0)
	}
}
