package game

import "github.com/vovakirdan/tui-dino/internal/core"

// Sky returns the playing background for a score. The sky darkens in five bands
// every 50 points and then starts over.
func Sky(score int) core.Color {
	switch m := score % 50; {
	case m <= 10:
		return core.ColorWhite
	case m <= 20:
		return core.ColorLightGray
	case m <= 30:
		return core.ColorGray
	case m <= 40:
		return core.ColorDarkGray
	default:
		return core.ColorBlack
	}
}
