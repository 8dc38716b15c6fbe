package shape

import (
	"errors"
	"slices"

	"github.com/lixenwraith/cellshape/core"
	"github.com/lixenwraith/cellshape/render"
	"github.com/lixenwraith/cellshape/vmath"
)

// ErrInvalidArgument is returned by constructors given unusable geometry
var ErrInvalidArgument = errors.New("invalid shape argument")

// Shape is a drawable primitive with a fixed stroke
type Shape interface {
	// Draw writes every visible rasterized cell to the surface in rasterization order
	Draw(s render.Surface)

	// Stroke returns the style applied to every cell
	Stroke() core.Style

	// Cells returns a copy of the rasterized cell sequence, computing it if needed
	Cells() []core.Point
}

// Rasterizer turns geometry into ordered grid cells
// vmath.Default is used unless a shape is built WithRasterizer
type Rasterizer interface {
	Line(a, b core.Point) []core.Point
	Polygon(vertices []core.Point, open bool) []core.Point
	EllipseVertices(center core.Point, radiusX, radiusY, n int) ([]core.Point, error)
}

// Option configures a shape at construction
type Option func(*options)

type options struct {
	raster Rasterizer
}

// WithRasterizer replaces the rasterizer used to compute cells; nil keeps the default
func WithRasterizer(r Rasterizer) Option {
	return func(o *options) {
		if r != nil {
			o.raster = r
		}
	}
}

func buildOptions(opts []Option) options {
	o := options{raster: vmath.Default}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// base carries the stroke and the compute-once cell cache shared by all variants
type base struct {
	stroke   core.Style
	raster   Rasterizer
	cells    []core.Point
	computed bool
}

func newBase(stroke core.Style, opts []Option) base {
	o := buildOptions(opts)
	return base{stroke: stroke, raster: o.raster}
}

// Stroke returns the style applied to every cell
func (b *base) Stroke() core.Style {
	return b.stroke
}

// cached returns the cell cache, filling it with compute on first call
func (b *base) cached(compute func() []core.Point) []core.Point {
	if !b.computed {
		b.cells = compute()
		b.computed = true
	}
	return b.cells
}

// draw clips negative cells and forwards the rest to the surface
func (b *base) draw(s render.Surface, compute func() []core.Point) {
	for _, p := range b.cached(compute) {
		if !p.Visible() {
			continue
		}
		s.SetCell(p, b.stroke)
	}
}

func (b *base) cellsCopy(compute func() []core.Point) []core.Point {
	return slices.Clone(b.cached(compute))
}

// DrawAll draws shapes in order; later shapes overwrite earlier ones on shared cells
func DrawAll(s render.Surface, shapes ...Shape) {
	for _, sh := range shapes {
		if sh == nil {
			continue
		}
		sh.Draw(s)
	}
}
