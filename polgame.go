package polgame

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
)

// Color represents an RGBA color with components in [0, 1]. Not premultiplied.
// Premultiplication occurs at render submission time.
type Color struct {
	R, G, B, A float64
}

// RGB returns an opaque Color from 0-255 channel values.
func RGB(r, g, b uint8) Color {
	return Color{float64(r) / 255, float64(g) / 255, float64(b) / 255, 1}
}

// RGBA returns a Color from 0-255 channel values.
func RGBA(r, g, b, a uint8) Color {
	return Color{float64(r) / 255, float64(g) / 255, float64(b) / 255, float64(a) / 255}
}

var (
	// ColorWhite is opaque white.
	ColorWhite = Color{1, 1, 1, 1}
	// ColorBlack is opaque black. It is the default border color.
	ColorBlack = Color{0, 0, 0, 1}
)

// toRGBA converts a Color to a premultiplied color.RGBA.
func (c Color) toRGBA() color.RGBA {
	return color.RGBA{
		R: uint8(clamp01(c.R*c.A) * 255),
		G: uint8(clamp01(c.G*c.A) * 255),
		B: uint8(clamp01(c.B*c.A) * 255),
		A: uint8(clamp01(c.A) * 255),
	}
}

// colorScale returns c as a premultiplied ebiten.ColorScale.
func (c Color) colorScale() ebiten.ColorScale {
	a := clamp01(c.A)
	var cs ebiten.ColorScale
	cs.Scale(float32(clamp01(c.R)*a), float32(clamp01(c.G)*a), float32(clamp01(c.B)*a), float32(a))
	return cs
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// Vec2 is a 2D vector used for positions, offsets, sizes and motion.
type Vec2 struct {
	X, Y float64
}

// Rect is an axis-aligned rectangle. The coordinate system has its origin at
// the top-left, with Y increasing downward.
type Rect struct {
	X, Y, Width, Height float64
}

// Contains reports whether the point (x, y) lies inside the rectangle.
// The left and top edges are inside; the right and bottom edges are not.
func (r Rect) Contains(x, y float64) bool {
	return x >= r.X && x < r.X+r.Width &&
		y >= r.Y && y < r.Y+r.Height
}

// Right returns the x coordinate of the right edge.
func (r Rect) Right() float64 { return r.X + r.Width }

// Bottom returns the y coordinate of the bottom edge.
func (r Rect) Bottom() float64 { return r.Y + r.Height }

// Center returns the center point of the rectangle.
func (r Rect) Center() Vec2 {
	return Vec2{r.X + r.Width/2, r.Y + r.Height/2}
}

// Normalize flips negative extents so that Width and Height are
// non-negative while covering the same area.
func (r Rect) Normalize() Rect {
	if r.Width < 0 {
		r.X += r.Width
		r.Width = -r.Width
	}
	if r.Height < 0 {
		r.Y += r.Height
		r.Height = -r.Height
	}
	return r
}

// MouseButton identifies a mouse button.
type MouseButton uint8

const (
	MouseButtonLeft   MouseButton = iota // primary (left) mouse button
	MouseButtonMiddle                    // middle mouse button (scroll wheel click)
	MouseButtonRight                     // secondary (right) mouse button
)

// MouseButtons holds the pressed state of the left, middle and right buttons,
// indexed by MouseButton.
type MouseButtons [3]bool

// Any reports whether at least one button is pressed.
func (b MouseButtons) Any() bool {
	return b[0] || b[1] || b[2]
}

func (b MouseButton) ebiten() ebiten.MouseButton {
	switch b {
	case MouseButtonMiddle:
		return ebiten.MouseButtonMiddle
	case MouseButtonRight:
		return ebiten.MouseButtonRight
	default:
		return ebiten.MouseButtonLeft
	}
}
