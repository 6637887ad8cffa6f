package core

// Color is the foreground color of a screen cell.
// The zero value keeps the terminal's default color.
type Color uint8

// Named colors, mapped to the ANSI 256-color palette.
const (
	ColorDefault Color = iota
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
)

var palette = [...]string{
	ColorRed:           "1",
	ColorGreen:         "2",
	ColorYellow:        "3",
	ColorBlue:          "4",
	ColorMagenta:       "5",
	ColorCyan:          "6",
	ColorWhite:         "7",
	ColorBrightRed:     "9",
	ColorBrightGreen:   "10",
	ColorBrightYellow:  "11",
	ColorBrightBlue:    "12",
	ColorBrightMagenta: "13",
	ColorBrightCyan:    "14",
	ColorBrightWhite:   "15",
	ColorOrange:        "208",
	ColorGray:          "245",
}

// ANSI returns the palette index of c, or "" for the default color and
// values outside the named set.
func (c Color) ANSI() string {
	if int(c) >= len(palette) {
		return ""
	}
	return palette[c]
}

// Colors lists every named color except the default.
func Colors() []Color {
	out := make([]Color, 0, len(palette)-1)
	for c := ColorRed; int(c) < len(palette); c++ {
		out = append(out, c)
	}
	return out
}

// Blink alternates between on and off every period ticks, starting on.
func Blink(on, off Color, tick, period uint64) Color {
	if period == 0 || (tick/period)%2 == 0 {
		return on
	}
	return off
}
