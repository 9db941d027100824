package polgame

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// Tween animates up to four float64 fields of a Box simultaneously. Create
// one with TweenPosition, TweenSize, TweenColor or TweenImageSize and either
// hand it to Game.Animate or call Update yourself each frame.
type Tween struct {
	tweens [4]*gween.Tween
	count  int
	fields [4]*float64
	// apply runs after each Update that wrote values.
	apply func()
	Done  bool
}

// Update advances all tweens by dt seconds and writes the current values to
// the target fields.
func (t *Tween) Update(dt float32) {
	if t.Done {
		return
	}
	allDone := true
	for i := 0; i < t.count; i++ {
		val, finished := t.tweens[i].Update(dt)
		*t.fields[i] = float64(val)
		if !finished {
			allDone = false
		}
	}
	t.Done = allDone
	if t.apply != nil {
		t.apply()
	}
}

func (t *Tween) add(field *float64, to float64, duration float32, fn ease.TweenFunc) {
	t.tweens[t.count] = gween.New(float32(*field), float32(to), duration, fn)
	t.fields[t.count] = field
	t.count++
}

// TweenPosition moves box's top-left corner to (toX, toY) over duration
// seconds.
func TweenPosition(box *Box, toX, toY float64, duration float32, fn ease.TweenFunc) *Tween {
	t := &Tween{}
	t.add(&box.X, toX, duration, fn)
	t.add(&box.Y, toY, duration, fn)
	return t
}

// TweenSize resizes box to (toW, toH) over duration seconds.
func TweenSize(box *Box, toW, toH float64, duration float32, fn ease.TweenFunc) *Tween {
	t := &Tween{}
	t.add(&box.Width, toW, duration, fn)
	t.add(&box.Height, toH, duration, fn)
	return t
}

// TweenColor fades all four components of box.Color to the target color
// over duration seconds.
func TweenColor(box *Box, to Color, duration float32, fn ease.TweenFunc) *Tween {
	t := &Tween{}
	t.add(&box.Color.R, to.R, duration, fn)
	t.add(&box.Color.G, to.G, duration, fn)
	t.add(&box.Color.B, to.B, duration, fn)
	t.add(&box.Color.A, to.A, duration, fn)
	return t
}

// TweenImageSize resizes img to (toW, toH) over duration seconds. The bitmap
// is rescaled on every step.
func TweenImageSize(img *Image, toW, toH float64, duration float32, fn ease.TweenFunc) *Tween {
	var w, h float64
	w, h = img.Size()
	t := &Tween{}
	t.add(&w, toW, duration, fn)
	t.add(&h, toH, duration, fn)
	t.apply = func() { img.SetSize(w, h) }
	return t
}
