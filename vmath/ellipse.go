package vmath

import (
	"errors"
	"fmt"
	"math"

	"github.com/lixenwraith/cellshape/core"
)

// ErrInvalidTessellation is returned for a non-positive ellipse sample count
var ErrInvalidTessellation = errors.New("tessellation count must be positive")

// EllipseVertices samples n points around the ellipse boundary
// Sample i sits at angle i*2π/n; offsets are rounded half-to-even per axis
// Sampling starts at (cx+rx, cy) and advances toward +y
func EllipseVertices(center core.Point, radiusX, radiusY, n int) ([]core.Point, error) {
	if n <= 0 {
		return nil, fmt.Errorf("ellipse vertices n=%d: %w", n, ErrInvalidTessellation)
	}

	step := 2 * math.Pi / float64(n)
	rx, ry := float64(radiusX), float64(radiusY)

	vertices := make([]core.Point, n)
	for i := range vertices {
		angle := float64(i) * step
		vertices[i] = core.Point{
			X: center.X + int(math.RoundToEven(rx*math.Cos(angle))),
			Y: center.Y + int(math.RoundToEven(ry*math.Sin(angle))),
		}
	}
	return vertices, nil
}
