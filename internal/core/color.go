package core

// Color represents a terminal color for a screen cell.
// Uses ANSI 256-color codes for terminal compatibility.
type Color uint8

// Predefined colors. ColorDefault leaves the terminal default untouched.
const (
	ColorDefault Color = iota
	ColorBlack
	ColorRed
	ColorGreen
	ColorYellow
	ColorBlue
	ColorMagenta
	ColorCyan
	ColorWhite
	ColorBrightRed
	ColorBrightGreen
	ColorBrightYellow
	ColorBrightBlue
	ColorBrightMagenta
	ColorBrightCyan
	ColorBrightWhite
	ColorOrange
	ColorGray
	ColorDarkGray
	ColorPurple
)

// Style is the visual attribute set of a screen cell.
type Style struct {
	FG   Color
	BG   Color
	Bold bool
}

// Plain is the zero style.
var Plain = Style{}

// Fg returns a style with only a foreground color.
func Fg(c Color) Style {
	return Style{FG: c}
}

// WithBG returns a copy of the style using the given background.
func (s Style) WithBG(c Color) Style {
	s.BG = c
	return s
}

// WithBold returns a copy of the style with bold enabled.
func (s Style) WithBold() Style {
	s.Bold = true
	return s
}
