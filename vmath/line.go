package vmath

import (
	"github.com/lixenwraith/cellshape/core"
)

// LineLen returns the number of cells Line produces between a and b
func LineLen(a, b core.Point) int {
	return max(abs(b.X-a.X), abs(b.Y-a.Y)) + 1
}

// Line rasterizes the segment a..b with integer Bresenham stepping
// Output starts at a and ends at b inclusive; a == b yields [a]
func Line(a, b core.Point) []core.Point {
	return AppendLine(make([]core.Point, 0, LineLen(a, b)), a, b)
}

// AppendLine appends the rasterized segment a..b to dst
func AppendLine(dst []core.Point, a, b core.Point) []core.Point {
	x0, y0 := a.X, a.Y
	x1, y1 := b.X, b.Y

	dx := abs(x1 - x0)
	dy := abs(y1 - y0)
	sx := -1
	if x0 < x1 {
		sx = 1
	}
	sy := -1
	if y0 < y1 {
		sy = 1
	}
	err := dx - dy

	for {
		dst = append(dst, core.Point{X: x0, Y: y0})
		if x0 == x1 && y0 == y1 {
			break
		}
		e2 := 2 * err
		if e2 > -dy {
			err -= dy
			x0 += sx
		}
		if e2 < dx {
			err += dx
			y0 += sy
		}
	}
	return dst
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
