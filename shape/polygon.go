package shape

import (
	"slices"

	"github.com/lixenwraith/cellshape/core"
	"github.com/lixenwraith/cellshape/render"
)

// Polygon is a chain of edges through ordered vertices
// A closed polygon adds an edge from the last vertex back to the first
type Polygon struct {
	base
	vertices []core.Point
	open     bool
}

// NewPolygon creates a polygon; vertices are copied
// Fewer than two vertices is allowed and draws nothing
func NewPolygon(vertices []core.Point, open bool, stroke core.Style, opts ...Option) *Polygon {
	return &Polygon{
		base:     newBase(stroke, opts),
		vertices: slices.Clone(vertices),
		open:     open,
	}
}

// NewRectangle creates a closed polygon from two opposite corners
// Vertices run top-left, top-right, bottom-right, bottom-left
func NewRectangle(topLeft, bottomRight core.Point, stroke core.Style, opts ...Option) *Polygon {
	return NewRectangleFromRect(core.Rect{TopLeft: topLeft, BottomRight: bottomRight}, stroke, opts...)
}

// NewRectangleFromRect creates a closed polygon from a core.Rect
func NewRectangleFromRect(r core.Rect, stroke core.Style, opts ...Option) *Polygon {
	c := r.Corners()
	return NewPolygon(c[:], false, stroke, opts...)
}

// NewTriangle creates a closed polygon through three vertices
func NewTriangle(a, b, c core.Point, stroke core.Style, opts ...Option) *Polygon {
	return NewPolygon([]core.Point{a, b, c}, false, stroke, opts...)
}

// Vertices returns a copy of the vertex list
func (p *Polygon) Vertices() []core.Point { return slices.Clone(p.vertices) }

// Open reports whether the closing edge is omitted
func (p *Polygon) Open() bool { return p.open }

// Draw implements Shape
func (p *Polygon) Draw(s render.Surface) {
	p.draw(s, p.rasterize)
}

// Cells implements Shape
func (p *Polygon) Cells() []core.Point {
	return p.cellsCopy(p.rasterize)
}

func (p *Polygon) rasterize() []core.Point {
	return p.raster.Polygon(p.vertices, p.open)
}
