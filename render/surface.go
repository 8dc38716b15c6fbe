package render

import (
	"errors"
	"fmt"

	"github.com/lixenwraith/cellshape/core"
)

// Surface is a character-grid sink
// Swapping backends only requires implementing these three operations
type Surface interface {
	// Clear resets every cell to core.StyleBlank
	Clear()

	// SetCell writes a glyph and colors at p
	// p must be inside the surface extent; implementations panic with *BoundsError otherwise
	SetCell(p core.Point, s core.Style)

	// Present flushes the grid to the output device
	Present()
}

// ErrOutOfBounds matches every *BoundsError via errors.Is
var ErrOutOfBounds = errors.New("cell out of surface bounds")

// BoundsError reports a SetCell outside the configured extent
// Shapes clip negative cells before drawing, so this signals a bypassed clipping policy or an undersized surface
type BoundsError struct {
	Point         core.Point
	Width, Height int
}

func (e *BoundsError) Error() string {
	return fmt.Sprintf("render: cell (%d,%d) outside %dx%d surface", e.Point.X, e.Point.Y, e.Width, e.Height)
}

func (e *BoundsError) Unwrap() error {
	return ErrOutOfBounds
}

// inBounds returns true if p lies within a width x height grid
func inBounds(p core.Point, width, height int) bool {
	return p.X >= 0 && p.X < width && p.Y >= 0 && p.Y < height
}

// mustInBounds panics with *BoundsError when p lies outside the grid
func mustInBounds(p core.Point, width, height int) {
	if !inBounds(p, width, height) {
		panic(&BoundsError{Point: p, Width: width, Height: height})
	}
}
