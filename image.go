package polgame

import (
	"fmt"
	"image"
	_ "image/gif"  // register GIF decoder
	_ "image/jpeg" // register JPEG decoder
	_ "image/png"  // register PNG decoder
	"math"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	xdraw "golang.org/x/image/draw"
)

// Image is a bitmap positioned and sized by a Box. Resizing the Image
// rescales the bitmap so that it always matches the Box's size.
type Image struct {
	box    *Box
	source string
	src    image.Image   // decoded source, never modified
	bitmap *ebiten.Image // src rescaled to the Box's size

	// Offset is where the bitmap is blitted inside the Image's surface.
	Offset Vec2
	// Mask restricts the copy to the region of the bitmap under the Box's
	// rectangle.
	Mask bool
}

// LoadImage decodes the file at path and sizes it to r. A missing or
// unreadable file returns an error wrapping ErrAssetLoad.
func LoadImage(path string, r Rect) (*Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrAssetLoad, err)
	}
	defer f.Close()

	src, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("%w: decode %s: %v", ErrAssetLoad, path, err)
	}
	return NewImageFromSource(src, path, r), nil
}

// NewImageFromSource wraps an already decoded image. name identifies the
// source in String output.
func NewImageFromSource(src image.Image, name string, r Rect) *Image {
	img := &Image{
		box:    BoxFromRect(r),
		source: name,
		src:    src,
	}
	img.SetSize(img.box.Width, img.box.Height)
	return img
}

// Box returns the Box that positions the Image. Resize through the Image,
// not the Box, so the bitmap stays in sync.
func (img *Image) Box() *Box {
	return img.box
}

// Source returns the name the Image was loaded from.
func (img *Image) Source() string {
	return img.source
}

// Bitmap returns the rescaled bitmap, or nil when the Image has no area.
func (img *Image) Bitmap() *ebiten.Image {
	return img.bitmap
}

// Bounds returns the rectangle used for hit testing.
func (img *Image) Bounds() Rect {
	return img.box.Rect
}

// Size returns the width and height.
func (img *Image) Size() (w, h float64) {
	return img.box.Size()
}

// SetSize resizes the Box and smoothly rescales the bitmap to match.
func (img *Image) SetSize(w, h float64) {
	img.box.SetSize(w, h)

	pw, ph := int(math.Round(w)), int(math.Round(h))
	if img.bitmap != nil {
		img.bitmap.Deallocate()
		img.bitmap = nil
	}
	if pw < 1 || ph < 1 {
		return
	}
	scaled := image.NewRGBA(image.Rect(0, 0, pw, ph))
	xdraw.CatmullRom.Scale(scaled, scaled.Bounds(), img.src, img.src.Bounds(), xdraw.Src, nil)
	img.bitmap = ebiten.NewImageFromImage(scaled)
}

// SetWidth resizes the Image, keeping its height.
func (img *Image) SetWidth(w float64) {
	img.SetSize(w, img.box.Height)
}

// SetHeight resizes the Image, keeping its width.
func (img *Image) SetHeight(h float64) {
	img.SetSize(img.box.Width, h)
}

// SetPosition moves the Image's top-left corner.
func (img *Image) SetPosition(x, y float64) *Image {
	img.box.SetPosition(x, y)
	return img
}

// SetOffset sets the blit offset.
func (img *Image) SetOffset(x, y float64) *Image {
	img.Offset = Vec2{x, y}
	return img
}

// Surface returns a new bitmap the size of the Image's bitmap with the
// bitmap blitted at Offset. When Mask is set only the region of the bitmap
// covered by the Box's rectangle is copied. Each call allocates; the caller
// owns the result. It returns nil when the Image has no area.
func (img *Image) Surface() *ebiten.Image {
	if img.bitmap == nil {
		return nil
	}
	b := img.bitmap.Bounds()
	surf := ebiten.NewImage(b.Dx(), b.Dy())
	img.paintSurface(surf)
	return surf
}

// paintSurface draws the surface contents onto dst, which must be clear.
func (img *Image) paintSurface(dst *ebiten.Image) {
	src := img.bitmap
	if img.Mask {
		r := img.box.Rect
		area := image.Rect(
			int(math.Floor(r.X)), int(math.Floor(r.Y)),
			int(math.Floor(r.Right())), int(math.Floor(r.Bottom())),
		).Intersect(img.bitmap.Bounds())
		if area.Empty() {
			return
		}
		src = img.bitmap.SubImage(area).(*ebiten.Image)
	}

	var op ebiten.DrawImageOptions
	op.GeoM.Translate(img.Offset.X, img.Offset.Y)
	dst.DrawImage(src, &op)
}

// Dispose releases the Image's GPU resources. The Image must not be used
// afterwards.
func (img *Image) Dispose() {
	if img.bitmap != nil {
		img.bitmap.Deallocate()
		img.bitmap = nil
	}
}

// clone returns a shallow copy with its own Box, sharing the bitmap.
func (img *Image) clone() *Image {
	c := *img
	c.box = img.box.Copy()
	return &c
}

func (img *Image) String() string {
	return fmt.Sprintf("Image(%g, %g, %g, %g, %s)", img.box.X, img.box.Y, img.box.Width, img.box.Height, img.source)
}
