package polgame

import (
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// borderMiterLimit keeps square border corners mitered instead of beveled.
const borderMiterLimit = 10

// clampRadii resolves expanded corner radii (top-left, top-right,
// bottom-right, bottom-left) against r. A radius of zero or less gives a
// square corner. Radii are clamped to half the shorter side.
func clampRadii(r Rect, radii [4]float64) [4]float32 {
	limit := max(math.Min(r.Width, r.Height)/2, 0)
	var out [4]float32
	for i, v := range radii {
		if v > 0 {
			out[i] = float32(math.Min(v, limit))
		}
	}
	return out
}

// roundedRectPath appends the clockwise outline of r with the given corner
// radii to p as one closed sub-path.
func roundedRectPath(p *vector.Path, r Rect, radii [4]float64) {
	c := clampRadii(r, radii)
	x0, y0 := float32(r.X), float32(r.Y)
	x1, y1 := float32(r.Right()), float32(r.Bottom())

	p.MoveTo(x0+c[0], y0)
	cornerTo(p, x1, y0, x1, y1, c[1])
	cornerTo(p, x1, y1, x0, y1, c[2])
	cornerTo(p, x0, y1, x0, y0, c[3])
	cornerTo(p, x0, y0, x1, y0, c[0])
	p.Close()
}

// cornerTo turns the corner at (cx, cy) towards (nx, ny).
func cornerTo(p *vector.Path, cx, cy, nx, ny, radius float32) {
	if radius <= 0 {
		p.LineTo(cx, cy)
		return
	}
	p.ArcTo(cx, cy, nx, ny, radius)
}

// fillPath fills p with c.
func fillPath(target *ebiten.Image, p *vector.Path, c Color) {
	op := &vector.DrawPathOptions{AntiAlias: true, ColorScale: c.colorScale()}
	vector.FillPath(target, p, nil, op)
}

// strokePath strokes p with c, centered on the path.
func strokePath(target *ebiten.Image, p *vector.Path, width float64, c Color) {
	op := &vector.DrawPathOptions{AntiAlias: true, ColorScale: c.colorScale()}
	vector.StrokePath(target, p, &vector.StrokeOptions{
		Width:      float32(width),
		MiterLimit: borderMiterLimit,
	}, op)
}
