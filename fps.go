package sway

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
)

// fpsWidget displays the current FPS, TPS and driven frame in the top-left
// corner. The text is refreshed every ~0.5 seconds.
type fpsWidget struct {
	img        *ebiten.Image
	lastUpdate float64
}

func newFPSWidget() *fpsWidget {
	// 120x48 is enough for "FPS: 60.0\nTPS: 60.0\nFrame: 123456"
	return &fpsWidget{img: ebiten.NewImage(120, 48), lastUpdate: 0.5}
}

func (w *fpsWidget) update(dt float64, frame uint64) {
	w.lastUpdate += dt
	if w.lastUpdate < 0.5 {
		return
	}
	w.lastUpdate = 0

	w.img.Clear()
	// Semi-transparent background for readability
	w.img.Fill(color.RGBA{0, 0, 0, 128})
	ebitenutil.DebugPrint(w.img, fmt.Sprintf("FPS: %.1f\nTPS: %.1f\nFrame: %d",
		ebiten.ActualFPS(), ebiten.ActualTPS(), frame))
}

func (w *fpsWidget) draw(screen *ebiten.Image) {
	screen.DrawImage(w.img, nil)
}
