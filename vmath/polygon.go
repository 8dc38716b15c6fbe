package vmath

import (
	"github.com/lixenwraith/cellshape/core"
)

// Polygon rasterizes consecutive vertex pairs as lines, concatenated in vertex order
// A closing edge from the last vertex back to the first is added unless open
// Fewer than two vertices yield an empty sequence
func Polygon(vertices []core.Point, open bool) []core.Point {
	n := len(vertices)
	if n < 2 {
		return []core.Point{}
	}

	size := 0
	for i := 0; i < n-1; i++ {
		size += LineLen(vertices[i], vertices[i+1])
	}
	if !open {
		size += LineLen(vertices[n-1], vertices[0])
	}

	cells := make([]core.Point, 0, size)
	for i := 0; i < n-1; i++ {
		cells = AppendLine(cells, vertices[i], vertices[i+1])
	}
	if !open {
		cells = AppendLine(cells, vertices[n-1], vertices[0])
	}
	return cells
}
