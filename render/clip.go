package render

import (
	"github.com/lixenwraith/cellshape/core"
)

// SizedSurface is a Surface that reports its current extent
type SizedSurface interface {
	Surface
	Size() (width, height int)
}

// Clip drops writes past the right or bottom edge of the inner surface
// Hosts use it when the terminal may be smaller than the scene; negative cells still reach the inner surface
type Clip struct {
	inner   SizedSurface
	dropped int
}

// NewClip wraps inner
func NewClip(inner SizedSurface) *Clip {
	return &Clip{inner: inner}
}

// Clear implements Surface
func (c *Clip) Clear() {
	c.inner.Clear()
}

// SetCell implements Surface
func (c *Clip) SetCell(p core.Point, s core.Style) {
	w, h := c.inner.Size()
	if p.X >= w || p.Y >= h {
		c.dropped++
		return
	}
	c.inner.SetCell(p, s)
}

// Present implements Surface
func (c *Clip) Present() {
	c.inner.Present()
}

// Dropped returns the number of discarded writes
func (c *Clip) Dropped() int {
	return c.dropped
}
