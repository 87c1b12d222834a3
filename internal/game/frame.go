package game

import "github.com/vovakirdan/tui-dino/internal/core"

// CellCmd places one glyph at a screen position.
type CellCmd struct {
	X, Y  int
	Fg    core.Color
	Bg    core.Color
	Glyph rune
}

// TextCmd prints a string at a screen position.
// Centered text ignores X and is centered on the destination's width.
type TextCmd struct {
	X, Y     int
	Fg       core.Color
	Bg       core.Color
	Value    string
	Centered bool
}

// Frame holds the draw commands produced by one tick.
type Frame struct {
	Background core.Color
	Cells      []CellCmd
	Texts      []TextCmd
	Quit       bool // The surface should shut down after presenting this frame
}

// NewFrame starts a frame that fills the screen with bg.
func NewFrame(bg core.Color) Frame {
	return Frame{Background: bg}
}

// Set queues a single cell.
func (f *Frame) Set(x, y int, fg, bg core.Color, glyph rune) {
	f.Cells = append(f.Cells, CellCmd{X: x, Y: y, Fg: fg, Bg: bg, Glyph: glyph})
}

// Print queues text at (x, y).
func (f *Frame) Print(x, y int, fg, bg core.Color, text string) {
	f.Texts = append(f.Texts, TextCmd{X: x, Y: y, Fg: fg, Bg: bg, Value: text})
}

// PrintCentered queues text centered on row y.
func (f *Frame) PrintCentered(y int, fg, bg core.Color, text string) {
	f.Texts = append(f.Texts, TextCmd{Y: y, Fg: fg, Bg: bg, Value: text, Centered: true})
}

// Paint applies the frame to a screen buffer: background first, then cells, then text.
func (f Frame) Paint(dst *core.Screen) {
	dst.Fill(f.Background)
	for _, c := range f.Cells {
		dst.Set(c.X, c.Y, core.Cell{Rune: c.Glyph, Fg: c.Fg, Bg: c.Bg})
	}
	for _, t := range f.Texts {
		if t.Centered {
			dst.DrawTextCentered(t.Y, t.Value, t.Fg, t.Bg)
			continue
		}
		dst.DrawText(t.X, t.Y, t.Value, t.Fg, t.Bg)
	}
}
