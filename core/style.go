package core

import (
	"github.com/gdamore/tcell/v2"
)

// Style is the stroke applied to every cell a shape rasterizes to
// Compared by value; never mutated after construction
type Style struct {
	Fg    tcell.Color
	Bg    tcell.Color
	Glyph rune
}

// StyleBlank is the cleared-cell style
var StyleBlank = Style{
	Fg:    tcell.ColorDefault,
	Bg:    tcell.ColorDefault,
	Glyph: ' ',
}

// NewStyle builds a stroke from colors and a glyph
func NewStyle(fg, bg tcell.Color, glyph rune) Style {
	return Style{Fg: fg, Bg: bg, Glyph: glyph}
}

// TcellStyle converts the colors to a tcell.Style
func (s Style) TcellStyle() tcell.Style {
	return tcell.StyleDefault.Foreground(s.Fg).Background(s.Bg)
}
