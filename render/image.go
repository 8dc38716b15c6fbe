package render

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"log"
	"os"
	"path/filepath"

	"github.com/gdamore/tcell/v2"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"github.com/lixenwraith/cellshape/core"
)

// Fallback colors for tcell.ColorDefault
var (
	DefaultFg = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	DefaultBg = color.RGBA{R: 0, G: 0, B: 0, A: 255}
)

// FrameSink receives each presented frame
type FrameSink interface {
	WriteFrame(index int, img image.Image) error
}

// SinkFunc adapts a function to FrameSink
type SinkFunc func(index int, img image.Image) error

func (f SinkFunc) WriteFrame(index int, img image.Image) error {
	return f(index, img)
}

// DirSink writes frames as numbered PNG files into Dir
type DirSink struct {
	Dir    string
	Prefix string
}

// WriteFrame implements FrameSink
func (d DirSink) WriteFrame(index int, img image.Image) error {
	prefix := d.Prefix
	if prefix == "" {
		prefix = "frame"
	}
	path := filepath.Join(d.Dir, fmt.Sprintf("%s-%06d.png", prefix, index))

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create frame: %w", err)
	}
	if err := png.Encode(f, img); err != nil {
		f.Close()
		return fmt.Errorf("encode frame %s: %w", path, err)
	}
	return f.Close()
}

// ImageSurface renders the grid with a fixed bitmap font and hands every presented frame to a sink
type ImageSurface struct {
	grid   *Buffer
	face   font.Face
	cellW  int
	cellH  int
	ascent int
	sink   FrameSink
	frame  int
	err    error
}

// NewImageSurface creates a width x height cell surface drawn with basicfont.Face7x13
func NewImageSurface(width, height int, sink FrameSink) *ImageSurface {
	face := basicfont.Face7x13
	return &ImageSurface{
		grid:   NewBuffer(width, height),
		face:   face,
		cellW:  face.Advance,
		cellH:  face.Height,
		ascent: face.Ascent,
		sink:   sink,
	}
}

// Size returns the extent in cells
func (s *ImageSurface) Size() (width, height int) {
	return s.grid.Size()
}

// Clear implements Surface
func (s *ImageSurface) Clear() {
	s.grid.Clear()
}

// SetCell implements Surface
func (s *ImageSurface) SetCell(p core.Point, st core.Style) {
	s.grid.SetCell(p, st)
}

// Present implements Surface
// Sink failures are logged and kept; see Err
func (s *ImageSurface) Present() {
	s.grid.Present()
	s.frame++
	if s.sink == nil {
		return
	}
	if err := s.sink.WriteFrame(s.frame, s.Image()); err != nil {
		log.Printf("render: frame %d: %v", s.frame, err)
		if s.err == nil {
			s.err = err
		}
	}
}

// Err returns the first sink error, if any
func (s *ImageSurface) Err() error {
	return s.err
}

// Frames returns the number of presented frames
func (s *ImageSurface) Frames() int {
	return s.frame
}

// Image rasterizes the last presented grid to pixels
func (s *ImageSurface) Image() *image.RGBA {
	w, h := s.grid.Width(), s.grid.Height()
	img := image.NewRGBA(image.Rect(0, 0, w*s.cellW, h*s.cellH))
	d := &font.Drawer{Dst: img, Face: s.face}

	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			c := s.grid.front[y*w+x]
			cell := image.Rect(x*s.cellW, y*s.cellH, (x+1)*s.cellW, (y+1)*s.cellH)
			draw.Draw(img, cell, image.NewUniform(toRGBA(c.Bg, DefaultBg)), image.Point{}, draw.Src)

			if c.Glyph == ' ' || c.Glyph == 0 {
				continue
			}
			d.Src = image.NewUniform(toRGBA(c.Fg, DefaultFg))
			d.Dot = fixed.P(cell.Min.X, cell.Min.Y+s.ascent)
			d.DrawString(string(c.Glyph))
		}
	}
	return img
}

// toRGBA resolves a tcell color, using fallback for default or unset colors
func toRGBA(c tcell.Color, fallback color.RGBA) color.RGBA {
	if c == tcell.ColorDefault || !c.Valid() {
		return fallback
	}
	r, g, b := c.RGB()
	if r < 0 {
		return fallback
	}
	return color.RGBA{R: uint8(r), G: uint8(g), B: uint8(b), A: 255}
}
