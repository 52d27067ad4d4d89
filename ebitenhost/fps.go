package ebitenhost

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
)

// fpsWidget shows FPS, TPS and the scheduler tick count. It is redrawn
// every ~0.5 seconds.
type fpsWidget struct {
	img        *ebiten.Image
	lastUpdate float64
	ticks      func() uint64
}

func newFPSWidget(ticks func() uint64) *fpsWidget {
	// 100x48 is enough for "FPS: 60.0\nTPS: 60.0\nTicks: 123456"
	return &fpsWidget{img: ebiten.NewImage(100, 48), lastUpdate: 0.5, ticks: ticks}
}

func (w *fpsWidget) update(dt float64) {
	w.lastUpdate += dt
	if w.lastUpdate < 0.5 {
		return
	}
	w.lastUpdate = 0

	w.img.Clear()
	w.img.Fill(color.RGBA{0, 0, 0, 128})
	ebitenutil.DebugPrint(w.img, fmt.Sprintf("FPS: %.1f\nTPS: %.1f\nTicks: %d",
		ebiten.ActualFPS(), ebiten.ActualTPS(), w.ticks()))
}

func (w *fpsWidget) draw(screen *ebiten.Image) {
	screen.DrawImage(w.img, nil)
}
