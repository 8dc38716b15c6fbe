package render

import (
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/cellshape/core"
)

// ScreenSurface draws onto a tcell.Screen
// The extent is captured at construction and refreshed by Resize
type ScreenSurface struct {
	screen tcell.Screen
	width  int
	height int
}

// NewScreenSurface wraps an initialized screen
func NewScreenSurface(screen tcell.Screen) *ScreenSurface {
	s := &ScreenSurface{screen: screen}
	s.width, s.height = screen.Size()
	return s
}

// Size returns the current extent
func (s *ScreenSurface) Size() (width, height int) {
	return s.width, s.height
}

// Resize re-reads the screen size after a tcell.EventResize
func (s *ScreenSurface) Resize() {
	s.width, s.height = s.screen.Size()
	s.screen.Sync()
}

// Clear implements Surface
func (s *ScreenSurface) Clear() {
	s.screen.Fill(core.StyleBlank.Glyph, core.StyleBlank.TcellStyle())
}

// SetCell implements Surface
func (s *ScreenSurface) SetCell(p core.Point, st core.Style) {
	mustInBounds(p, s.width, s.height)
	s.screen.SetContent(p.X, p.Y, st.Glyph, nil, st.TcellStyle())
}

// Present implements Surface
func (s *ScreenSurface) Present() {
	s.screen.Show()
}
