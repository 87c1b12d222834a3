package core

// Color names a palette entry for a cell's foreground or background.
// The zero value leaves the terminal's own color in place.
type Color uint8

// Palette used by the runner.
const (
	ColorDefault Color = iota
	ColorBlack
	ColorWhite
	ColorLightGray
	ColorGray
	ColorDarkGray
	ColorRed
	ColorGreen
	ColorDarkGreen
	ColorOrange
)

// ansi256 maps colors to ANSI 256-color codes; -1 means terminal default.
var ansi256 = [...]int{
	ColorDefault:   -1,
	ColorBlack:     16,
	ColorWhite:     231,
	ColorLightGray: 250,
	ColorGray:      244,
	ColorDarkGray:  238,
	ColorRed:       196,
	ColorGreen:     40,
	ColorDarkGreen: 22,
	ColorOrange:    208,
}

// Code returns the ANSI 256-color code for c, or -1 for the terminal default.
func (c Color) Code() int {
	if int(c) >= len(ansi256) {
		return -1
	}
	return ansi256[c]
}

// String returns a human-readable name for the color.
func (c Color) String() string {
	switch c {
	case ColorDefault:
		return "default"
	case ColorBlack:
		return "black"
	case ColorWhite:
		return "white"
	case ColorLightGray:
		return "light-gray"
	case ColorGray:
		return "gray"
	case ColorDarkGray:
		return "dark-gray"
	case ColorRed:
		return "red"
	case ColorGreen:
		return "green"
	case ColorDarkGreen:
		return "dark-green"
	case ColorOrange:
		return "orange"
	default:
		return "unknown"
	}
}
