package tui

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-dino/internal/core"
)

type colorPair struct {
	fg, bg core.Color
}

// styleCache holds one lipgloss style per fg/bg combination seen so far.
type styleCache map[colorPair]lipgloss.Style

func (c styleCache) style(fg, bg core.Color) lipgloss.Style {
	key := colorPair{fg, bg}
	if st, ok := c[key]; ok {
		return st
	}
	st := lipgloss.NewStyle()
	if code := fg.Code(); code >= 0 {
		st = st.Foreground(lipgloss.Color(strconv.Itoa(code)))
	}
	if code := bg.Code(); code >= 0 {
		st = st.Background(lipgloss.Color(strconv.Itoa(code)))
	}
	c[key] = st
	return st
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same colors to minimize ANSI escape sequences.
func RenderScreen(s *core.Screen, styles styleCache) string {
	var sb strings.Builder
	// Pre-allocate with extra space for ANSI codes
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y := range s.Height() {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < s.Width() {
			start := s.GetCell(x, y)

			var run strings.Builder
			for x < s.Width() {
				cell := s.GetCell(x, y)
				if cell.Fg != start.Fg || cell.Bg != start.Bg {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			sb.WriteString(styles.style(start.Fg, start.Bg).Render(run.String()))
		}
	}
	return sb.String()
}
