package polgame

import (
	"fmt"
	"image/color"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
)

// fpsRefresh is how often the overlay text is redrawn.
const fpsRefresh = 500 * time.Millisecond

// fpsOverlay displays the current FPS and TPS in the top-left corner.
type fpsOverlay struct {
	img        *ebiten.Image
	lastUpdate time.Time
}

func newFPSOverlay() *fpsOverlay {
	// 100x32 is enough for "FPS: 60.0\nTPS: 60.0"
	return &fpsOverlay{img: ebiten.NewImage(100, 32)}
}

// surface refreshes the readout when due and returns it as a drawable.
func (o *fpsOverlay) surface(now time.Time) Surface {
	if now.Sub(o.lastUpdate) >= fpsRefresh {
		o.lastUpdate = now
		o.img.Clear()
		// Semi-transparent background for readability
		o.img.Fill(color.RGBA{0, 0, 0, 128})
		ebitenutil.DebugPrint(o.img, fmt.Sprintf("FPS: %.1f\nTPS: %.1f", ebiten.ActualFPS(), ebiten.ActualTPS()))
	}
	return Surface{Image: o.img}
}

func (o *fpsOverlay) dispose() {
	o.img.Deallocate()
}
