// Package termhost shows a weatheroverlay.Card in a terminal. The scheduler
// draws into a software RasterSurface; the frame loop downsamples it into
// half-block cells so each cell carries two vertical pixels.
package termhost

import (
	"context"
	"errors"
	"image"
	"sync"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/lucasb-eyer/go-colorful"

	"github.com/phanxgames/weatheroverlay"
)

const (
	defaultScale = 2
	frameRate    = weatheroverlay.AnimationCadence
	upperHalf    = '▀'
)

// Options configures Run.
type Options struct {
	// Scale is the number of raster pixels per half-cell on each axis.
	// Defaults to 2.
	Scale int
	// Background is the color the overlay is composited over. Defaults to
	// black.
	Background colorful.Color
}

// Run draws card onto screen until ctx is cancelled or the user presses q,
// Escape or Ctrl-C. screen must already be initialized; Run does not call
// Fini. The goroutine reading screen events stays blocked in PollEvent after
// Run returns and exits once the caller calls Fini, so call Fini before
// handing the screen to another reader. The card is closed before Run
// returns.
func Run(ctx context.Context, screen tcell.Screen, card *weatheroverlay.Card, src weatheroverlay.StateSource, opts Options) error {
	if screen == nil || card == nil {
		return errors.New("termhost: nil screen or card")
	}
	if opts.Scale <= 0 {
		opts.Scale = defaultScale
	}

	h := &host{
		screen: screen,
		card:   card,
		src:    src,
		opts:   opts,
	}
	card.Scheduler().FrameLock = &h.frame
	defer card.Close()

	events := make(chan tcell.Event, 16)
	quit := make(chan struct{})
	defer close(quit)
	go func() {
		for {
			ev := screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case events <- ev:
			case <-quit:
				return
			}
		}
	}()

	ticker := time.NewTicker(frameRate)
	defer ticker.Stop()

	h.resize()
	last := time.Now()
	for {
		select {
		case <-ctx.Done():
			return nil
		case ev := <-events:
			if !h.handleEvent(ev) {
				return nil
			}
		case now := <-ticker.C:
			h.frameTick(now.Sub(last))
			last = now
		}
	}
}

type host struct {
	screen tcell.Screen
	card   *weatheroverlay.Card
	src    weatheroverlay.StateSource
	opts   Options

	frame   sync.Mutex
	surface *weatheroverlay.RasterSurface
	fade    *weatheroverlay.Fade
	result  weatheroverlay.RenderResult
}

func (h *host) handleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		switch ev.Key() {
		case tcell.KeyEscape, tcell.KeyCtrlC:
			return false
		case tcell.KeyRune:
			if ev.Rune() == 'q' {
				return false
			}
		}
	case *tcell.EventResize:
		h.resize()
		h.screen.Sync()
	}
	return true
}

// resize replaces the raster to match the terminal. The card is closed first
// so no tick draws into the old surface.
func (h *host) resize() {
	cols, rows := h.screen.Size()
	w, ht := cols*h.opts.Scale, rows*2*h.opts.Scale
	if h.surface != nil {
		if sw, sh := h.surface.Size(); sw == w && sh == ht {
			return
		}
	}
	h.card.Close()
	h.surface = weatheroverlay.NewRasterSurface(max(w, 1), max(ht, 1))
}

func (h *host) frameTick(dt time.Duration) {
	w, ht := h.surface.Size()
	h.result = h.card.Render(h.src, h.surface, float64(w), float64(ht))
	if h.result.Changed {
		h.fade = weatheroverlay.FadeIn()
	}
	alpha := 0.0
	if h.fade != nil {
		alpha = h.fade.Update(float32(dt.Seconds()))
	}

	h.screen.Clear()
	switch h.result.Status {
	case weatheroverlay.StatusAnimating:
		h.frame.Lock()
		blit(h.screen, h.surface.Image(), h.opts.Scale, alpha, h.opts.Background)
		h.frame.Unlock()
	case weatheroverlay.StatusUnavailable:
		drawString(h.screen, 1, 0, h.result.Warning, tcell.StyleDefault.Foreground(tcell.ColorYellow))
	}
	h.screen.Show()
}

// blit composites img at alpha over bg into screen. Each cell covers a
// scale × 2·scale pixel block: the upper half becomes the foreground of a
// '▀' glyph and the lower half its background.
func blit(screen tcell.Screen, img *image.RGBA, scale int, alpha float64, bg colorful.Color) {
	cols, rows := screen.Size()
	for cy := 0; cy < rows; cy++ {
		for cx := 0; cx < cols; cx++ {
			x0, y0 := cx*scale, cy*2*scale
			top := composite(averageBlock(img, x0, y0, scale), alpha, bg)
			bottom := composite(averageBlock(img, x0, y0+scale, scale), alpha, bg)
			style := tcell.StyleDefault.
				Foreground(tcellColor(top)).
				Background(tcellColor(bottom))
			screen.SetContent(cx, cy, upperHalf, nil, style)
		}
	}
}

// pixel is an averaged premultiplied color with channels in [0, 1].
type pixel struct {
	r, g, b, a float64
}

// averageBlock averages the scale × scale block at (x0, y0). Pixels outside
// img count as transparent.
func averageBlock(img *image.RGBA, x0, y0, scale int) pixel {
	var sum [4]int
	b := img.Rect
	for y := y0; y < y0+scale; y++ {
		if y < b.Min.Y || y >= b.Max.Y {
			continue
		}
		for x := x0; x < x0+scale; x++ {
			if x < b.Min.X || x >= b.Max.X {
				continue
			}
			i := img.PixOffset(x, y)
			sum[0] += int(img.Pix[i])
			sum[1] += int(img.Pix[i+1])
			sum[2] += int(img.Pix[i+2])
			sum[3] += int(img.Pix[i+3])
		}
	}
	n := float64(scale*scale) * 255
	return pixel{float64(sum[0]) / n, float64(sum[1]) / n, float64(sum[2]) / n, float64(sum[3]) / n}
}

// composite draws p at alpha over an opaque bg.
func composite(p pixel, alpha float64, bg colorful.Color) colorful.Color {
	a := p.a * alpha
	if a <= 0 {
		return bg
	}
	src := colorful.Color{R: p.r / p.a, G: p.g / p.a, B: p.b / p.a}
	return bg.BlendRgb(src, a).Clamped()
}

func tcellColor(c colorful.Color) tcell.Color {
	r, g, b := c.RGB255()
	return tcell.NewRGBColor(int32(r), int32(g), int32(b))
}

func drawString(screen tcell.Screen, x, y int, s string, style tcell.Style) {
	for _, r := range s {
		screen.SetContent(x, y, r, nil, style)
		x++
	}
}
