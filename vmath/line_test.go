package vmath

import (
	"reflect"
	"testing"

	"github.com/lixenwraith/cellshape/core"
)

func TestLineHorizontal(t *testing.T) {
	got := Line(core.Pt(0, 0), core.Pt(4, 0))
	want := []core.Point{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 2, Y: 0}, {X: 3, Y: 0}, {X: 4, Y: 0}}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Expected %v, got %v", want, got)
	}
}

func TestLineDegenerate(t *testing.T) {
	got := Line(core.Pt(0, 0), core.Pt(0, 0))
	want := []core.Point{{X: 0, Y: 0}}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Expected %v, got %v", want, got)
	}

	got = Line(core.Pt(-7, 3), core.Pt(-7, 3))
	if len(got) != 1 || got[0] != core.Pt(-7, 3) {
		t.Errorf("Expected single point (-7,3), got %v", got)
	}
}

func TestLineReverseDiagonal(t *testing.T) {
	got := Line(core.Pt(5, 3), core.Pt(1, 1))
	want := []core.Point{{X: 5, Y: 3}, {X: 4, Y: 3}, {X: 3, Y: 2}, {X: 2, Y: 2}, {X: 1, Y: 1}}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Expected %v, got %v", want, got)
	}
}

// Exhaustive check over a window of endpoint offsets, both origins
func TestLineProperties(t *testing.T) {
	origins := []core.Point{{X: 0, Y: 0}, {X: -5, Y: 8}}
	for _, a := range origins {
		for dx := -15; dx <= 15; dx++ {
			for dy := -15; dy <= 15; dy++ {
				b := a.Add(dx, dy)
				cells := Line(a, b)

				if cells[0] != a {
					t.Fatalf("Line(%v,%v): expected start %v, got %v", a, b, a, cells[0])
				}
				if last := cells[len(cells)-1]; last != b {
					t.Fatalf("Line(%v,%v): expected end %v, got %v", a, b, b, last)
				}
				wantLen := max(abs(dx), abs(dy)) + 1
				if len(cells) != wantLen {
					t.Fatalf("Line(%v,%v): expected length %d, got %d", a, b, wantLen, len(cells))
				}
				if LineLen(a, b) != wantLen {
					t.Fatalf("LineLen(%v,%v): expected %d, got %d", a, b, wantLen, LineLen(a, b))
				}
				for i := 1; i < len(cells); i++ {
					sx := abs(cells[i].X - cells[i-1].X)
					sy := abs(cells[i].Y - cells[i-1].Y)
					if sx > 1 || sy > 1 {
						t.Fatalf("Line(%v,%v): gap between %v and %v", a, b, cells[i-1], cells[i])
					}
				}
			}
		}
	}
}

func TestAppendLineKeepsPrefix(t *testing.T) {
	dst := []core.Point{{X: 9, Y: 9}}
	got := AppendLine(dst, core.Pt(0, 0), core.Pt(0, 2))
	want := []core.Point{{X: 9, Y: 9}, {X: 0, Y: 0}, {X: 0, Y: 1}, {X: 0, Y: 2}}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Expected %v, got %v", want, got)
	}
}

func BenchmarkLine(b *testing.B) {
	a, c := core.Pt(0, 0), core.Pt(173, 61)
	for i := 0; i < b.N; i++ {
		_ = Line(a, c)
	}
}
