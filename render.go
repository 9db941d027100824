package polgame

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// Entity is a value a Game can hit-test against the cursor: *Box, *Image or
// Surface. The set is closed.
type Entity interface {
	Bounds() Rect
	entity()
}

// Drawable is a value the render phase knows how to paint: *Box, *Image,
// Surface or Placed. The set is closed.
type Drawable interface {
	drawable()
}

func (*Box) entity()    {}
func (*Image) entity()  {}
func (Surface) entity() {}

func (*Box) drawable()    {}
func (*Image) drawable()  {}
func (Surface) drawable() {}
func (Placed) drawable()  {}

// Surface is a raw bitmap drawn with its top-left corner at (X, Y).
type Surface struct {
	Image *ebiten.Image
	X, Y  float64
}

// Bounds returns the area covered by the bitmap.
func (s Surface) Bounds() Rect {
	if s.Image == nil {
		return Rect{X: s.X, Y: s.Y}
	}
	b := s.Image.Bounds()
	return Rect{s.X, s.Y, float64(b.Dx()), float64(b.Dy())}
}

// Placed draws Target at (X, Y) instead of its own position. The target is
// not modified. Target must be a *Box, *Image or Surface.
type Placed struct {
	Target Drawable
	X, Y   float64
}

// At returns a Placed drawing d at (x, y).
func At(d Drawable, x, y float64) Placed {
	return Placed{Target: d, X: x, Y: y}
}

// renderer paints drawables onto a target image.
type renderer struct {
	path    vector.Path
	scratch *ebiten.Image // Image surfaces, reused across draws
}

// draw paints d onto target.
func (r *renderer) draw(target *ebiten.Image, d Drawable) error {
	switch v := d.(type) {
	case *Box:
		if v == nil {
			break
		}
		return r.drawBox(target, v)
	case *Image:
		if v == nil {
			break
		}
		r.drawImage(target, v)
		return nil
	case Surface:
		r.drawSurface(target, v)
		return nil
	case Placed:
		return r.drawPlaced(target, v)
	}
	return fmt.Errorf("%w: %T", ErrUnsupportedDrawable, d)
}

// drawBox paints the border, if any, then the fill. The border is drawn
// centered on the Box's edge, half outside and half inside, so the fill
// covers its inner half.
func (r *renderer) drawBox(target *ebiten.Image, b *Box) error {
	radii, err := b.Border.Radius.Corners()
	if err != nil {
		return fmt.Errorf("draw %v: %w", b, err)
	}
	r.path.Reset()
	roundedRectPath(&r.path, b.Rect, radii)
	if bw := b.Border.Width; bw > 0 {
		strokePath(target, &r.path, bw, b.Border.Color)
	}
	if b.Width > 0 && b.Height > 0 {
		fillPath(target, &r.path, b.Color)
	}
	return nil
}

// drawImage renders img's surface into the scratch image and blits it at
// the Box's position.
func (r *renderer) drawImage(target *ebiten.Image, img *Image) {
	if img.bitmap == nil {
		return
	}
	b := img.bitmap.Bounds()
	if r.scratch == nil || r.scratch.Bounds().Dx() != b.Dx() || r.scratch.Bounds().Dy() != b.Dy() {
		if r.scratch != nil {
			r.scratch.Deallocate()
		}
		r.scratch = ebiten.NewImage(b.Dx(), b.Dy())
	}
	r.scratch.Clear()
	img.paintSurface(r.scratch)

	var op ebiten.DrawImageOptions
	op.GeoM.Translate(img.box.X, img.box.Y)
	target.DrawImage(r.scratch, &op)
}

func (r *renderer) drawSurface(target *ebiten.Image, s Surface) {
	if s.Image == nil {
		return
	}
	var op ebiten.DrawImageOptions
	op.GeoM.Translate(s.X, s.Y)
	target.DrawImage(s.Image, &op)
}

// drawPlaced draws a positional copy of the target. Boxes and Images are
// shallow-copied with the position replaced.
func (r *renderer) drawPlaced(target *ebiten.Image, p Placed) error {
	switch v := p.Target.(type) {
	case *Box:
		if v == nil {
			break
		}
		c := *v
		c.X, c.Y = p.X, p.Y
		return r.drawBox(target, &c)
	case *Image:
		if v == nil {
			break
		}
		c := v.clone()
		c.box.X, c.box.Y = p.X, p.Y
		r.drawImage(target, c)
		return nil
	case Surface:
		v.X, v.Y = p.X, p.Y
		r.drawSurface(target, v)
		return nil
	}
	return fmt.Errorf("%w: placed %T", ErrUnsupportedDrawable, p.Target)
}

func (r *renderer) dispose() {
	if r.scratch != nil {
		r.scratch.Deallocate()
		r.scratch = nil
	}
}
