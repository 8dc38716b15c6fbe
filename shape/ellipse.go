package shape

import (
	"fmt"
	"log"

	"github.com/lixenwraith/cellshape/core"
	"github.com/lixenwraith/cellshape/render"
	"github.com/lixenwraith/cellshape/vmath"
)

// Ellipse is approximated by a closed polygon through tessellation samples of its boundary
type Ellipse struct {
	base
	center           core.Point
	radiusX, radiusY int
	tessellation     int
}

// NewEllipse validates the geometry and creates an ellipse
// Tessellation must be positive and radii non-negative
func NewEllipse(center core.Point, radiusX, radiusY, tessellation int, stroke core.Style, opts ...Option) (*Ellipse, error) {
	if tessellation <= 0 {
		return nil, fmt.Errorf("%w: tessellation %d: %w", ErrInvalidArgument, tessellation, vmath.ErrInvalidTessellation)
	}
	if radiusX < 0 || radiusY < 0 {
		return nil, fmt.Errorf("%w: radii (%d,%d) must be non-negative", ErrInvalidArgument, radiusX, radiusY)
	}
	return &Ellipse{
		base:         newBase(stroke, opts),
		center:       center,
		radiusX:      radiusX,
		radiusY:      radiusY,
		tessellation: tessellation,
	}, nil
}

// Center returns the ellipse center
func (e *Ellipse) Center() core.Point { return e.center }

// RadiusX returns the horizontal radius
func (e *Ellipse) RadiusX() int { return e.radiusX }

// RadiusY returns the vertical radius
func (e *Ellipse) RadiusY() int { return e.radiusY }

// Tessellation returns the boundary sample count
func (e *Ellipse) Tessellation() int { return e.tessellation }

// Moved returns a new ellipse at center with identical radii, tessellation, stroke and rasterizer
func (e *Ellipse) Moved(center core.Point) *Ellipse {
	return e.derive(center, e.radiusX, e.radiusY)
}

// Circle returns a new ellipse whose vertical radius equals its horizontal one
func (e *Ellipse) Circle() *Ellipse {
	return e.derive(e.center, e.radiusX, e.radiusX)
}

// derive skips validation; callers only pass radii already held by a valid ellipse
func (e *Ellipse) derive(center core.Point, radiusX, radiusY int) *Ellipse {
	return &Ellipse{
		base:         base{stroke: e.stroke, raster: e.raster},
		center:       center,
		radiusX:      radiusX,
		radiusY:      radiusY,
		tessellation: e.tessellation,
	}
}

// Draw implements Shape
func (e *Ellipse) Draw(s render.Surface) {
	e.draw(s, e.rasterize)
}

// Cells implements Shape
func (e *Ellipse) Cells() []core.Point {
	return e.cellsCopy(e.rasterize)
}

func (e *Ellipse) rasterize() []core.Point {
	vertices, err := e.raster.EllipseVertices(e.center, e.radiusX, e.radiusY, e.tessellation)
	if err != nil {
		// Unreachable with the default rasterizer since NewEllipse validates tessellation
		log.Printf("shape: ellipse at %v: %v", e.center, err)
		return []core.Point{}
	}
	return e.raster.Polygon(vertices, false)
}
