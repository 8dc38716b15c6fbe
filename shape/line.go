package shape

import (
	"github.com/lixenwraith/cellshape/core"
	"github.com/lixenwraith/cellshape/render"
)

// Line is a straight segment between two grid points
type Line struct {
	base
	start, end core.Point
}

// NewLine creates a line from start to end
func NewLine(start, end core.Point, stroke core.Style, opts ...Option) *Line {
	return &Line{
		base:  newBase(stroke, opts),
		start: start,
		end:   end,
	}
}

// Start returns the first endpoint
func (l *Line) Start() core.Point { return l.start }

// End returns the last endpoint
func (l *Line) End() core.Point { return l.end }

// Draw implements Shape
func (l *Line) Draw(s render.Surface) {
	l.draw(s, l.rasterize)
}

// Cells implements Shape
func (l *Line) Cells() []core.Point {
	return l.cellsCopy(l.rasterize)
}

func (l *Line) rasterize() []core.Point {
	return l.raster.Line(l.start, l.end)
}
