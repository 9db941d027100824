package polgame

import (
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

func TestClampRadii(t *testing.T) {
	tests := []struct {
		name  string
		r     Rect
		radii [4]float64
		want  [4]float32
	}{
		{"square", Rect{0, 0, 30, 40}, [4]float64{-1, -1, -1, -1}, [4]float32{0, 0, 0, 0}},
		{"zero is square", Rect{0, 0, 30, 40}, [4]float64{0, 5, 0, 5}, [4]float32{0, 5, 0, 5}},
		{"clamped to half the short side", Rect{0, 0, 20, 10}, [4]float64{100, 3, 0, 5}, [4]float32{5, 3, 0, 5}},
		{"empty rect", Rect{0, 0, 0, 10}, [4]float64{4, 4, 4, 4}, [4]float32{0, 0, 0, 0}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := clampRadii(tt.r, tt.radii); got != tt.want {
				t.Errorf("clampRadii = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestRoundedRectPathBounds(t *testing.T) {
	r := Rect{10, 20, 30, 40}
	for _, radii := range [][4]float64{
		{-1, -1, -1, -1},
		{4, 4, 4, 4},
		{100, 0, 8, 2},
	} {
		var p vector.Path
		roundedRectPath(&p, r, radii)
		b := p.Bounds()
		// Arc points are approximated, so allow one pixel of rounding.
		if abs(b.Min.X-10) > 1 || abs(b.Min.Y-20) > 1 || abs(b.Max.X-40) > 1 || abs(b.Max.Y-60) > 1 {
			t.Errorf("radii %v: bounds = %v, want about (10,20)-(40,60)", radii, b)
		}
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

func TestColorScalePremultiplies(t *testing.T) {
	cs := Color{R: 1, G: 0.5, B: 0, A: 0.5}.colorScale()
	if cs.R() != 0.5 || cs.G() != 0.25 || cs.B() != 0 || cs.A() != 0.5 {
		t.Errorf("color scale = (%v, %v, %v, %v)", cs.R(), cs.G(), cs.B(), cs.A())
	}
}

func TestRendererDrawBox(t *testing.T) {
	var r renderer
	g := newTestGame(t, NewInjectedInput())
	for _, b := range []*Box{
		NewBox(2, 2, 20, 10),
		NewBox(2, 2, 20, 10).SetBorder(3, ColorWhite),
		NewBox(2, 2, 20, 10).SetBorder(2, ColorBlack, 4, 2),
		NewBox(2, 2, 0, 0).SetBorder(1, ColorBlack),
	} {
		if err := r.draw(g.back, b); err != nil {
			t.Errorf("draw(%v) error = %v", b, err)
		}
	}
}

func TestRendererDrawBoxInvalidRadius(t *testing.T) {
	g := newTestGame(t, NewInjectedInput())
	b := NewBox(0, 0, 10, 10)
	b.Border.Radius = Radius{1, 2, 3, 4, 5}
	g.Draw(b)
	g.Load()
	if _, err := g.Update(); err == nil {
		t.Error("expected an error for a five-value radius")
	}
}

func TestRendererPlaced(t *testing.T) {
	var r renderer
	g := newTestGame(t, NewInjectedInput())
	box := NewBox(1, 2, 3, 4)
	img := NewImageFromSource(testSource(4, 4), "mem", Rect{5, 6, 4, 4})

	for _, d := range []Drawable{
		At(box, 10, 10),
		At(img, 10, 10),
		At(Surface{Image: ebiten.NewImage(1, 1)}, 10, 10),
	} {
		if err := r.draw(g.back, d); err != nil {
			t.Errorf("draw(%T) error = %v", d.(Placed).Target, err)
		}
	}
	if box.X != 1 || box.Y != 2 {
		t.Errorf("placed draw moved the box to (%v, %v)", box.X, box.Y)
	}
	if img.Bounds().X != 5 || img.Bounds().Y != 6 {
		t.Errorf("placed draw moved the image to %+v", img.Bounds())
	}

	if err := r.draw(g.back, At(At(box, 1, 1), 2, 2)); err == nil {
		t.Error("nested Placed should be unsupported")
	}
}
