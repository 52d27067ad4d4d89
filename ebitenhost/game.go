// Package ebitenhost shows a weatheroverlay.Card in an Ebitengine window. The
// scheduler draws into an offscreen canvas from its own goroutine; the game
// loop composites that canvas at weatheroverlay.Opacity behind a fade-in.
package ebitenhost

import (
	"errors"
	"fmt"
	"image/color"
	"sync"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/phanxgames/weatheroverlay"
)

// RunConfig configures the window opened by Run.
type RunConfig struct {
	// Title is the window title.
	Title string
	// Width and Height set the initial window size. Defaults to 640x360.
	Width, Height int
	// ShowFPS draws an FPS/TPS/tick counter in the top-left corner.
	ShowFPS bool
	// Overlay makes the window transparent, undecorated, floating and
	// click-through so the animation sits on top of the desktop.
	Overlay bool
	// Background is painted under the overlay when Overlay is false.
	Background color.Color
}

// stateKeys maps number keys to test states. Key0 clears the override.
var stateKeys = map[ebiten.Key]string{
	ebiten.Key1: weatheroverlay.StateCloudy,
	ebiten.Key2: weatheroverlay.StatePartlyCloudy,
	ebiten.Key3: weatheroverlay.StateRainy,
	ebiten.Key4: weatheroverlay.StateSnowy,
	ebiten.Key5: weatheroverlay.StateSnowyRainy,
	ebiten.Key6: weatheroverlay.StateSunny,
	ebiten.Key7: "clear-night",
	ebiten.Key0: "",
}

// Game implements ebiten.Game around a Card.
type Game struct {
	card   *weatheroverlay.Card
	src    weatheroverlay.StateSource
	config RunConfig

	frame   sync.Mutex
	canvas  *ebiten.Image
	surface *Surface
	width   int
	height  int

	fade   *weatheroverlay.Fade
	result weatheroverlay.RenderResult
	fps    *fpsWidget
}

// NewGame creates a game that renders card with states from src. The
// card's scheduler draws under the game's frame lock from now on.
func NewGame(card *weatheroverlay.Card, src weatheroverlay.StateSource, cfg RunConfig) *Game {
	g := &Game{card: card, src: src, config: cfg}
	card.Scheduler().FrameLock = &g.frame
	if cfg.ShowFPS {
		g.fps = newFPSWidget(card.Scheduler().Ticks)
	}
	return g
}

// Result returns the outcome of the last Card.Render.
func (g *Game) Result() weatheroverlay.RenderResult {
	return g.result
}

// Update implements ebiten.Game.
func (g *Game) Update() error {
	dt := 1.0 / float64(ebiten.TPS())

	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	for key, state := range stateKeys {
		if !inpututil.IsKeyJustPressed(key) {
			continue
		}
		cfg := g.card.Config()
		cfg.TestState = state
		if err := g.card.SetConfig(cfg); err != nil {
			return fmt.Errorf("ebitenhost: %w", err)
		}
	}

	if g.width > 0 && g.height > 0 {
		g.ensureCanvas()
		g.result = g.card.Render(g.src, g.surface, float64(g.width), float64(g.height))
		if g.result.Changed {
			g.fade = weatheroverlay.FadeIn()
		}
	}
	if g.fade != nil {
		g.fade.Update(float32(dt))
	}
	if g.fps != nil {
		g.fps.update(dt)
	}
	return nil
}

// Draw implements ebiten.Game.
func (g *Game) Draw(screen *ebiten.Image) {
	if !g.config.Overlay && g.config.Background != nil {
		screen.Fill(g.config.Background)
	}

	switch g.result.Status {
	case weatheroverlay.StatusUnavailable:
		ebitenutil.DebugPrintAt(screen, g.result.Warning, 8, 8)
	case weatheroverlay.StatusAnimating:
		if g.canvas != nil && g.fade != nil {
			op := &ebiten.DrawImageOptions{}
			op.ColorScale.ScaleAlpha(float32(g.fade.Value()))
			g.frame.Lock()
			screen.DrawImage(g.canvas, op)
			g.frame.Unlock()
		}
	}

	if g.fps != nil {
		g.fps.draw(screen)
	}
}

// Layout implements ebiten.Game. The canvas follows the window size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	g.width, g.height = outsideWidth, outsideHeight
	return outsideWidth, outsideHeight
}

// ensureCanvas replaces the canvas when the window size changed. The card
// is closed first so no tick draws into the disposed image.
func (g *Game) ensureCanvas() {
	if g.canvas != nil {
		b := g.canvas.Bounds()
		if b.Dx() == g.width && b.Dy() == g.height {
			return
		}
		g.card.Close()
		g.canvas.Deallocate()
	}
	g.canvas = ebiten.NewImage(g.width, g.height)
	g.surface = NewSurface(g.canvas)
}

// Run opens a window and shows card until the window is closed or Escape is
// pressed. Number keys 1-7 force a test state and 0 clears it. The card is
// closed before Run returns.
func Run(card *weatheroverlay.Card, src weatheroverlay.StateSource, cfg RunConfig) error {
	if card == nil {
		return errors.New("ebitenhost: nil card")
	}
	if cfg.Width <= 0 {
		cfg.Width = 640
	}
	if cfg.Height <= 0 {
		cfg.Height = 360
	}
	if cfg.Title == "" {
		cfg.Title = "Weather Overlay"
	}

	ebiten.SetWindowTitle(cfg.Title)
	ebiten.SetWindowSize(cfg.Width, cfg.Height)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	if cfg.Overlay {
		ebiten.SetWindowDecorated(false)
		ebiten.SetWindowFloating(true)
		ebiten.SetWindowMousePassthrough(true)
	}

	g := NewGame(card, src, cfg)
	defer card.Close()

	err := ebiten.RunGameWithOptions(g, &ebiten.RunGameOptions{
		ScreenTransparent: cfg.Overlay,
	})
	if errors.Is(err, ebiten.Termination) {
		return nil
	}
	return err
}
