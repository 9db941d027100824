package polgame

import (
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
)

// DefaultScreenshotDir is where screenshots are written when
// Config.ScreenshotDir is unset.
const DefaultScreenshotDir = "screenshots"

// Screenshot queues a capture of the next presented frame. Under Run the PNG
// is written to the screenshot directory as <timestamp>_<label>.png once the
// frame reaches the window.
func (g *Game) Screenshot(label string) {
	g.screenshots = append(g.screenshots, label)
}

// flushScreenshots writes every queued capture of screen. Failures are
// reported on stderr and do not stop the Game.
func (g *Game) flushScreenshots(screen *ebiten.Image) {
	if len(g.screenshots) == 0 {
		return
	}
	defer func() { g.screenshots = g.screenshots[:0] }()

	if err := os.MkdirAll(g.screenshotDir, 0o755); err != nil {
		logf("screenshot: mkdir %s: %v", g.screenshotDir, err)
		return
	}
	img := straightAlpha(screen)
	stamp := time.Now().Format("20060102_150405")
	for _, label := range g.screenshots {
		path := filepath.Join(g.screenshotDir, stamp+"_"+sanitizeLabel(label)+".png")
		if err := savePNG(path, img); err != nil {
			logf("screenshot: %v", err)
		}
	}
}

// straightAlpha reads screen's premultiplied pixels into an NRGBA image.
func straightAlpha(screen *ebiten.Image) *image.NRGBA {
	b := screen.Bounds()
	img := image.NewNRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	screen.ReadPixels(img.Pix)
	unpremultiply(img.Pix)
	return img
}

func unpremultiply(pix []byte) {
	for i := 0; i+3 < len(pix); i += 4 {
		a := int(pix[i+3])
		if a == 0 || a == 255 {
			continue
		}
		for c := i; c < i+3; c++ {
			pix[c] = uint8(min(int(pix[c])*255/a, 255))
		}
	}
}

func savePNG(path string, img image.Image) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	if err := png.Encode(f, img); err != nil {
		f.Close()
		return fmt.Errorf("encode %s: %w", path, err)
	}
	return f.Close()
}

// sanitizeLabel replaces characters that are unsafe in file names with
// underscores. An empty label becomes "unlabeled".
func sanitizeLabel(label string) string {
	label = strings.TrimSpace(label)
	if label == "" {
		return "unlabeled"
	}
	return strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z',
			r >= '0' && r <= '9', r == '-', r == '.':
			return r
		}
		return '_'
	}, label)
}
