package render

import (
	"image"
	"image/color"
	"os"
	"path/filepath"
	"testing"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/cellshape/core"
)

func TestImageSurfaceFrames(t *testing.T) {
	var got []image.Image
	sink := SinkFunc(func(index int, img image.Image) error {
		if index != len(got)+1 {
			t.Errorf("Expected frame index %d, got %d", len(got)+1, index)
		}
		got = append(got, img)
		return nil
	})

	s := NewImageSurface(4, 2, sink)
	s.Clear()
	s.SetCell(core.Pt(1, 0), core.NewStyle(tcell.ColorWhite, tcell.ColorRed, ' '))
	s.Present()
	s.Present()

	if s.Frames() != 2 || len(got) != 2 {
		t.Fatalf("Expected 2 frames, got %d (sink saw %d)", s.Frames(), len(got))
	}
	if s.Err() != nil {
		t.Errorf("Unexpected sink error: %v", s.Err())
	}

	b := got[0].Bounds()
	if b.Dx() != 4*7 || b.Dy() != 2*13 {
		t.Errorf("Expected 28x26 image, got %dx%d", b.Dx(), b.Dy())
	}

	// Cell (1,0) background is red, cell (0,0) falls back to black
	r, g, bl, _ := got[0].At(7, 0).RGBA()
	if r>>8 != 255 || g>>8 != 0 || bl>>8 != 0 {
		t.Errorf("Expected red background at cell (1,0), got (%d,%d,%d)", r>>8, g>>8, bl>>8)
	}
	if c := color.RGBAModel.Convert(got[0].At(0, 0)).(color.RGBA); c != DefaultBg {
		t.Errorf("Expected default background at cell (0,0), got %v", c)
	}
}

func TestDirSinkWritesPNG(t *testing.T) {
	dir := t.TempDir()
	s := NewImageSurface(3, 3, DirSink{Dir: dir})
	s.SetCell(core.Pt(1, 1), testStroke)
	s.Present()

	path := filepath.Join(dir, "frame-000001.png")
	if _, err := os.Stat(path); err != nil {
		t.Fatalf("Expected %s to exist: %v", path, err)
	}
	if s.Err() != nil {
		t.Errorf("Unexpected sink error: %v", s.Err())
	}
}

func TestDirSinkErrorIsKept(t *testing.T) {
	s := NewImageSurface(2, 2, DirSink{Dir: filepath.Join(t.TempDir(), "missing")})
	s.Present()
	if s.Err() == nil {
		t.Error("Expected sink error for missing directory")
	}
}
