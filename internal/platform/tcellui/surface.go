// Package tcellui runs the runner on a raw tcell screen.
// Every cell carries its own foreground and background color.
package tcellui

import (
	"context"
	"fmt"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/vovakirdan/tui-dino/internal/config"
	"github.com/vovakirdan/tui-dino/internal/core"
	"github.com/vovakirdan/tui-dino/internal/game"
	"github.com/vovakirdan/tui-dino/internal/registry"
)

const inputQueueLimit = 8

// Surface drives a session with a tcell event loop.
type Surface struct {
	newScreen func() (tcell.Screen, error)
}

// New returns a surface bound to the real terminal.
func New() *Surface {
	return &Surface{newScreen: tcell.NewScreen}
}

// ID returns "tcell".
func (s *Surface) ID() string { return "tcell" }

// Title returns a short description.
func (s *Surface) Title() string { return "tcell (per-cell colors)" }

// Run owns the terminal until the session quits or ctx is cancelled.
func (s *Surface) Run(ctx context.Context, sess *game.Session, opts registry.Options) error {
	screen, err := s.newScreen()
	if err != nil {
		return fmt.Errorf("tcell: cannot create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("tcell: cannot init screen: %w", err)
	}
	defer screen.Fini()

	screen.SetStyle(tcell.StyleDefault)
	screen.HideCursor()
	screen.Clear()

	events := make(chan tcell.Event, 16)
	done := make(chan struct{})
	defer close(done)
	go pollEvents(screen, events, done)

	field := sess.Config().Field
	buf := core.NewScreen(field.Width, field.Height)
	input := core.NewInputQueue(inputQueueLimit)

	rate := opts.Runtime.TickRate
	if rate <= 0 {
		rate = core.DefaultConfig().TickRate
	}
	ticker := time.NewTicker(time.Second / time.Duration(rate))
	defer ticker.Stop()

	last := time.Now()
	for {
		select {
		case <-ctx.Done():
			return nil

		case ev := <-events:
			switch ev := ev.(type) {
			case *tcell.EventKey:
				input.Push(actionFor(ev))
			case *tcell.EventResize:
				resizeBuffer(buf, field, ev)
				screen.Clear()
				screen.Sync()
			}

		case now := <-ticker.C:
			elapsed := float64(now.Sub(last)) / float64(time.Millisecond)
			last = now

			res := sess.Tick(input.Pop(), elapsed)
			res.Frame.Paint(buf)
			draw(screen, buf)
			screen.Show()
			opts.Notify(res)

			if res.Has(game.EventCrashed) {
				input.Clear()
			}

			if res.Frame.Quit {
				return nil
			}
		}
	}
}

// pollEvents forwards terminal events until the screen is finalized.
func pollEvents(screen tcell.Screen, out chan<- tcell.Event, done <-chan struct{}) {
	for {
		ev := screen.PollEvent()
		if ev == nil {
			return
		}
		select {
		case out <- ev:
		case <-done:
			return
		}
	}
}

// resizeBuffer clips the cell buffer to the new terminal size.
func resizeBuffer(buf *core.Screen, field config.FieldConfig, ev *tcell.EventResize) {
	w, h := ev.Size()
	buf.Resize(core.Viewport(field.Width, field.Height, w, h))
}

// draw copies the cell buffer onto the tcell back buffer.
func draw(screen tcell.Screen, buf *core.Screen) {
	for y := range buf.Height() {
		for x := range buf.Width() {
			c := buf.GetCell(x, y)
			screen.SetContent(x, y, c.Rune, nil, styleFor(c))
		}
	}
}

func styleFor(c core.Cell) tcell.Style {
	return tcell.StyleDefault.Foreground(colorFor(c.Fg)).Background(colorFor(c.Bg))
}

func colorFor(c core.Color) tcell.Color {
	code := c.Code()
	if code < 0 {
		return tcell.ColorDefault
	}
	return tcell.PaletteColor(code)
}

// actionFor maps a key event to a game action.
func actionFor(ev *tcell.EventKey) core.Action {
	switch ev.Key() {
	case tcell.KeyUp:
		return core.ActionJumpAlt
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return core.ActionQuitAlt
	case tcell.KeyEnter:
		return core.ActionRestart
	case tcell.KeyRune:
		switch ev.Rune() {
		case ' ':
			return core.ActionJump
		case 'p', 'P':
			return core.ActionPause
		case 'q', 'Q':
			return core.ActionQuit
		case 'c', 'C':
			return core.ActionQuitAlt
		case 'r', 'R':
			return core.ActionRestart
		}
	}
	return core.ActionNone
}

func init() {
	registry.Register("tcell", func() registry.Surface { return New() })
}
