package render

import (
	"strings"

	"github.com/lixenwraith/cellshape/core"
)

// Buffer is an in-memory Surface
// SetCell writes the back grid; Present copies it to the front grid and counts frames
type Buffer struct {
	back      []core.Style
	front     []core.Style
	width     int
	height    int
	presented int
}

// NewBuffer creates a blank buffer with the specified dimensions
func NewBuffer(width, height int) *Buffer {
	size := width * height
	b := &Buffer{
		back:   make([]core.Style, size),
		front:  make([]core.Style, size),
		width:  width,
		height: height,
	}
	fillBlank(b.back)
	fillBlank(b.front)
	return b
}

// fillBlank resets cells to core.StyleBlank using exponential copy
func fillBlank(cells []core.Style) {
	if len(cells) == 0 {
		return
	}
	cells[0] = core.StyleBlank
	for filled := 1; filled < len(cells); filled *= 2 {
		copy(cells[filled:], cells[:filled])
	}
}

// Width returns the buffer width
func (b *Buffer) Width() int {
	return b.width
}

// Height returns the buffer height
func (b *Buffer) Height() int {
	return b.height
}

// Size returns width and height
func (b *Buffer) Size() (width, height int) {
	return b.width, b.height
}

// Clear implements Surface
func (b *Buffer) Clear() {
	fillBlank(b.back)
}

// SetCell implements Surface
func (b *Buffer) SetCell(p core.Point, s core.Style) {
	mustInBounds(p, b.width, b.height)
	b.back[p.Y*b.width+p.X] = s
}

// Present implements Surface
func (b *Buffer) Present() {
	copy(b.front, b.back)
	b.presented++
}

// Presented returns the number of Present calls
func (b *Buffer) Presented() int {
	return b.presented
}

// Cell returns the back-grid cell at (x, y)
func (b *Buffer) Cell(x, y int) (core.Style, bool) {
	if !inBounds(core.Point{X: x, Y: y}, b.width, b.height) {
		return core.Style{}, false
	}
	return b.back[y*b.width+x], true
}

// Count returns how many back-grid cells carry glyph
func (b *Buffer) Count(glyph rune) int {
	n := 0
	for _, c := range b.back {
		if c.Glyph == glyph {
			n++
		}
	}
	return n
}

// String dumps the back grid glyphs, one line per row
func (b *Buffer) String() string {
	return dump(b.back, b.width, b.height)
}

// Frame dumps the last presented grid
func (b *Buffer) Frame() string {
	return dump(b.front, b.width, b.height)
}

func dump(cells []core.Style, width, height int) string {
	var sb strings.Builder
	sb.Grow((width + 1) * height)
	for y := 0; y < height; y++ {
		for _, c := range cells[y*width : (y+1)*width] {
			sb.WriteRune(c.Glyph)
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
