package tui

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-dino/internal/core"
	"github.com/vovakirdan/tui-dino/internal/game"
	"github.com/vovakirdan/tui-dino/internal/registry"
)

// Keys delivered faster than the tick rate wait here; one is consumed per tick.
const inputQueueLimit = 8

// Model is the Bubble Tea model that drives a runner session.
type Model struct {
	session  *game.Session
	screen   *core.Screen
	styles   styleCache
	input    *core.InputQueue
	keys     KeyMap
	help     help.Model
	opts     registry.Options
	lastTick time.Time
	quitting bool

	screenshotDir string
}

// NewModel creates a new Bubble Tea model for the given session.
func NewModel(s *game.Session, opts registry.Options) Model {
	if opts.Logger == nil {
		opts.Logger = log.New(io.Discard)
	}
	field := s.Config().Field
	return Model{
		session:       s,
		screen:        core.NewScreen(field.Width, field.Height),
		styles:        make(styleCache),
		input:         core.NewInputQueue(inputQueueLimit),
		keys:          DefaultKeyMap(),
		help:          help.New(),
		opts:          opts,
		screenshotDir: defaultScreenshotDir(),
	}
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.opts.Runtime.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick(time.Time(msg))
	}

	return m, nil
}

// handleKey queues the key's action for the next tick.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Screenshot) {
		m.saveScreenshot()
		return m, nil
	}
	m.input.Push(m.keys.Action(msg))
	return m, nil
}

// handleResize clips the cell buffer to the terminal, leaving a row for help.
// The next tick repaints it.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.help.Width = msg.Width
	field := m.session.Config().Field
	m.screen.Resize(core.Viewport(field.Width, field.Height, msg.Width, msg.Height-1))
	return m, nil
}

// handleTick runs one session tick with the wall time since the previous one.
func (m Model) handleTick(now time.Time) (tea.Model, tea.Cmd) {
	elapsed := elapsedMillis(m.lastTick, now)
	m.lastTick = now

	res := m.session.Tick(m.input.Pop(), elapsed)
	res.Frame.Paint(m.screen)
	m.opts.Notify(res)

	// Keys mashed before a crash must not restart the next run at once.
	if res.Has(game.EventCrashed) {
		if n := m.input.Len(); n > 0 {
			m.opts.Logger.Debug("dropping queued keys after crash", "count", n)
			m.input.Clear()
		}
	}

	if res.Frame.Quit {
		m.quitting = true
		return m, tea.Quit
	}
	return m, tickCmd(m.opts.Runtime.TickRate)
}

// saveScreenshot writes the current cell buffer as plain text.
func (m *Model) saveScreenshot() {
	path, err := writeScreenshot(m.screenshotDir, m.session.ID, m.screen, time.Now())
	if err != nil {
		m.opts.Logger.Warn("screenshot failed", "error", err)
		return
	}
	m.opts.Logger.Info("screenshot saved", "path", path, "session", m.session.ID)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	var sb strings.Builder
	sb.WriteString(RenderScreen(m.screen, m.styles))
	sb.WriteRune('\n')
	sb.WriteString(m.help.View(m.keys))
	return sb.String()
}

func defaultScreenshotDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".dino", "screenshots")
	}
	return filepath.Join(home, ".dino", "screenshots")
}

func writeScreenshot(dir, sessionID string, s *core.Screen, at time.Time) (string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("tui: cannot create screenshot directory: %w", err)
	}

	timestamp := at.Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("dino_%s_%s.txt", timestamp, sessionID))
	if err := os.WriteFile(path, []byte(s.String()), 0o600); err != nil {
		return "", fmt.Errorf("tui: cannot write screenshot: %w", err)
	}
	return path, nil
}

// Surface runs sessions inside a Bubble Tea program.
type Surface struct{}

// ID returns "bubbletea".
func (Surface) ID() string { return "bubbletea" }

// Title returns a short description.
func (Surface) Title() string { return "Bubble Tea + Lip Gloss (default)" }

// Run starts the Bubble Tea program and blocks until the player quits.
func (Surface) Run(ctx context.Context, s *game.Session, opts registry.Options) error {
	model := NewModel(s, opts)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
		tea.WithContext(ctx),
	)

	if _, err := p.Run(); err != nil {
		if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
			return nil
		}
		return fmt.Errorf("tui: %w", err)
	}
	return nil
}

func init() {
	registry.Register("bubbletea", func() registry.Surface { return Surface{} })
}
