package render

import (
	"github.com/lixenwraith/cellshape/core"
)

// Call records one SetCell forwarded by Counting
type Call struct {
	Point core.Point
	Style core.Style
}

// Counting decorates a Surface, recording every call before forwarding it
// A nil inner surface only records
type Counting struct {
	Inner    Surface
	Clears   int
	Presents int
	Calls    []Call
}

// NewCounting wraps inner
func NewCounting(inner Surface) *Counting {
	return &Counting{Inner: inner}
}

// Clear implements Surface
func (c *Counting) Clear() {
	c.Clears++
	if c.Inner != nil {
		c.Inner.Clear()
	}
}

// SetCell implements Surface
func (c *Counting) SetCell(p core.Point, s core.Style) {
	c.Calls = append(c.Calls, Call{Point: p, Style: s})
	if c.Inner != nil {
		c.Inner.SetCell(p, s)
	}
}

// Present implements Surface
func (c *Counting) Present() {
	c.Presents++
	if c.Inner != nil {
		c.Inner.Present()
	}
}

// Reset drops recorded calls and counters
func (c *Counting) Reset() {
	c.Clears, c.Presents = 0, 0
	c.Calls = nil
}
