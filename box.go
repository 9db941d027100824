package polgame

import (
	"fmt"
	"slices"
)

// DefaultBoxColor is the fill color of a Box created by NewBox.
var DefaultBoxColor = RGB(0, 127, 255)

// Radius is the corner radius shorthand of a Border. A nil Radius means
// square corners. One value rounds all four corners; two values (a, b)
// expand to a, b, b, a; three values (a, b, c) expand to a, b, b, c; four
// values are used as-is. Corners are ordered top-left, top-right,
// bottom-right, bottom-left.
type Radius []float64

// noRadius marks a corner that is not rounded.
const noRadius = -1

// Corners expands the shorthand into four corner radii. Corners without
// rounding are reported as -1.
func (r Radius) Corners() ([4]float64, error) {
	switch len(r) {
	case 0:
		return [4]float64{noRadius, noRadius, noRadius, noRadius}, nil
	case 1:
		return [4]float64{r[0], r[0], r[0], r[0]}, nil
	case 2:
		return [4]float64{r[0], r[1], r[1], r[0]}, nil
	case 3:
		return [4]float64{r[0], r[1], r[1], r[2]}, nil
	case 4:
		return [4]float64{r[0], r[1], r[2], r[3]}, nil
	}
	return [4]float64{}, fmt.Errorf("%w: %d values", ErrRadiusShape, len(r))
}

// Border describes the stroke drawn around a Box.
type Border struct {
	Width  float64
	Color  Color
	Radius Radius
}

// Box is a positioned, sized, colored rectangle with an optional border.
// Boxes are plain values; whoever holds a *Box may mutate it freely.
type Box struct {
	Rect
	Color  Color
	Border Border
}

// NewBox creates a Box with the default color and no border. Negative sizes
// are normalized so the Box covers the same area with positive extents.
func NewBox(left, top, width, height float64) *Box {
	return BoxFromRect(Rect{left, top, width, height})
}

// BoxFromRect creates a Box covering r.
func BoxFromRect(r Rect) *Box {
	return &Box{
		Rect:   r.Normalize(),
		Color:  DefaultBoxColor,
		Border: Border{Color: ColorBlack},
	}
}

// Size returns the width and height.
func (b *Box) Size() (w, h float64) {
	return b.Width, b.Height
}

// SetSize sets the width and height.
func (b *Box) SetSize(w, h float64) {
	b.Width, b.Height = w, h
}

// SetWidth sets the width, keeping the height.
func (b *Box) SetWidth(w float64) {
	b.SetSize(w, b.Height)
}

// SetHeight sets the height, keeping the width.
func (b *Box) SetHeight(h float64) {
	b.SetSize(b.Width, h)
}

// SetPosition moves the top-left corner to (x, y).
func (b *Box) SetPosition(x, y float64) *Box {
	b.X, b.Y = x, y
	return b
}

// SetCenter moves the Box so its center is at (x, y).
func (b *Box) SetCenter(x, y float64) *Box {
	b.X = x - b.Width/2
	b.Y = y - b.Height/2
	return b
}

// SetColor sets the fill color and returns b for chaining.
func (b *Box) SetColor(c Color) *Box {
	b.Color = c
	return b
}

// SetBorder sets the border and returns b for chaining.
func (b *Box) SetBorder(width float64, c Color, radius ...float64) *Box {
	b.Border = Border{Width: width, Color: c, Radius: Radius(slices.Clone(radius))}
	return b
}

// Bounds returns the rectangle used for hit testing.
func (b *Box) Bounds() Rect {
	return b.Rect
}

// Copy returns a deep copy of b. The border radius is not shared.
func (b *Box) Copy() *Box {
	c := *b
	c.Border.Radius = slices.Clone(b.Border.Radius)
	return &c
}

// CopyCentered returns a deep copy of b centered at (x, y).
func (b *Box) CopyCentered(x, y float64) *Box {
	return b.Copy().SetCenter(x, y)
}

func (b *Box) String() string {
	return fmt.Sprintf("Box(%g, %g, %g, %g, %v)", b.X, b.Y, b.Width, b.Height, b.Color)
}

// BoxField names a mutable field of a Box for Change.
type BoxField uint8

const (
	FieldLeft         BoxField = iota // float64
	FieldTop                          // float64
	FieldWidth                        // float64
	FieldHeight                       // float64
	FieldColor                        // Color
	FieldBorderWidth                  // float64
	FieldBorderColor                  // Color
	FieldBorderRadius                 // Radius, []float64 or a single number
	boxFieldCount
)

var boxFieldNames = [boxFieldCount]string{
	"left", "top", "width", "height", "color", "border.width", "border.color", "border.radius",
}

func (f BoxField) String() string {
	if f < boxFieldCount {
		return boxFieldNames[f]
	}
	return fmt.Sprintf("BoxField(%d)", uint8(f))
}

// Change sets one field of the Box. It returns ErrUnknownAttribute when the
// field does not exist or the value has the wrong type for it.
func (b *Box) Change(field BoxField, value any) error {
	switch field {
	case FieldLeft, FieldTop, FieldWidth, FieldHeight, FieldBorderWidth:
		v, ok := toFloat(value)
		if !ok {
			return fmt.Errorf("%w: %s cannot hold %T", ErrUnknownAttribute, field, value)
		}
		switch field {
		case FieldLeft:
			b.X = v
		case FieldTop:
			b.Y = v
		case FieldWidth:
			b.Width = v
		case FieldHeight:
			b.Height = v
		case FieldBorderWidth:
			b.Border.Width = v
		}
	case FieldColor, FieldBorderColor:
		c, ok := value.(Color)
		if !ok {
			return fmt.Errorf("%w: %s cannot hold %T", ErrUnknownAttribute, field, value)
		}
		if field == FieldColor {
			b.Color = c
		} else {
			b.Border.Color = c
		}
	case FieldBorderRadius:
		switch v := value.(type) {
		case nil:
			b.Border.Radius = nil
		case Radius:
			b.Border.Radius = slices.Clone(v)
		case []float64:
			b.Border.Radius = Radius(slices.Clone(v))
		default:
			f, ok := toFloat(value)
			if !ok {
				return fmt.Errorf("%w: %s cannot hold %T", ErrUnknownAttribute, field, value)
			}
			b.Border.Radius = Radius{f}
		}
	default:
		return fmt.Errorf("%w: %s", ErrUnknownAttribute, field)
	}
	return nil
}

func toFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int32:
		return float64(n), true
	case int64:
		return float64(n), true
	}
	return 0, false
}
