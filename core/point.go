package core

// Point is an integer grid coordinate
// Negative values are valid and represent positions off the top/left of a surface
type Point struct {
	X, Y int
}

// Pt is shorthand for Point{X: x, Y: y}
func Pt(x, y int) Point {
	return Point{X: x, Y: y}
}

// Add returns the point shifted by (dx, dy)
func (p Point) Add(dx, dy int) Point {
	return Point{X: p.X + dx, Y: p.Y + dy}
}

// Visible reports whether both coordinates are non-negative
func (p Point) Visible() bool {
	return p.X >= 0 && p.Y >= 0
}

// Rect is an axis-aligned box given by two opposite corners
type Rect struct {
	TopLeft     Point
	BottomRight Point
}

// Corners expands the rect into its four corners in drawing order:
// top-left, top-right, bottom-right, bottom-left
func (r Rect) Corners() [4]Point {
	return [4]Point{
		r.TopLeft,
		{X: r.BottomRight.X, Y: r.TopLeft.Y},
		r.BottomRight,
		{X: r.TopLeft.X, Y: r.BottomRight.Y},
	}
}
