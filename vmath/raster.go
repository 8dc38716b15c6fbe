package vmath

import (
	"github.com/lixenwraith/cellshape/core"
)

// Raster binds the package rasterization functions to a value
// so callers can depend on them through an interface
type Raster struct{}

// Default is the production rasterizer
var Default Raster

func (Raster) Line(a, b core.Point) []core.Point {
	return Line(a, b)
}

func (Raster) Polygon(vertices []core.Point, open bool) []core.Point {
	return Polygon(vertices, open)
}

func (Raster) EllipseVertices(center core.Point, radiusX, radiusY, n int) ([]core.Point, error) {
	return EllipseVertices(center, radiusX, radiusY, n)
}
