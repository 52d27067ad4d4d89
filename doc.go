// Package weatheroverlay animates a decorative weather layer (rain, snow,
// clouds, sun) over a dashboard, chosen from a weather state string.
//
// # Quick start
//
// A [Card] resolves an entity's state, selects the effects for it, and keeps
// one animation ticking onto a [Surface]:
//
//	card, err := weatheroverlay.NewCard(weatheroverlay.Config{Entity: "weather.home"})
//	if err != nil {
//		log.Fatal(err)
//	}
//	defer card.Close()
//	surface := weatheroverlay.NewRasterSurface(640, 360)
//	card.Render(weatheroverlay.States{"weather.home": "rainy"}, surface, 640, 360)
//
// Hosts call Render whenever the state or the size may have changed; the
// animation restarts only when one of them actually did. The ebitenhost and
// termhost packages wrap this loop for a window and a terminal.
//
// # States
//
// [Select] maps a state to its effects. Effects listed first are drawn first.
//
//	cloudy        Cloud
//	partlycloudy  Cloud, Sun
//	rainy         Rain
//	snowy         Snow
//	snowy-rainy   Rain, Snow
//	sunny         Sun
//
// Any other state shows a [Label] with the state text, redrawn once a
// second. Animated states tick every [AnimationCadence].
//
// # Surfaces
//
// [Surface] is a canvas-style 2D context: state setters, path building, and
// fills. Three implementations ship with the module:
//
//   - [RasterSurface] rasterizes into an *image.RGBA with
//     golang.org/x/image/vector. Used by the terminal host, scripts, and
//     tests.
//   - ebitenhost.Surface draws into an *ebiten.Image with triangles and a
//     Kage gradient shader.
//   - surfacetest.Recorder records calls for assertions.
//
// # Scheduling
//
// A [Scheduler] owns at most one running animation. Start always cancels
// the previous one and waits for its goroutine to exit, so a surface never
// receives ticks from two animations. Set [Scheduler.FrameLock] to read the
// surface between ticks without tearing.
//
// # Scripts and screenshots
//
// [LoadScript] parses a JSON list of state, wait, resize, and screenshot
// steps. [ScriptRunner.Run] plays it frame by frame on a RasterSurface and
// writes PNGs, which makes visual checks reproducible with a fixed seed.
//
// # Configuration
//
// [LoadConfig] reads WEATHER_OVERLAY_* keys from a .env file and the process
// environment. WEATHER_OVERLAY_DEBUG=true logs state changes and per-tick
// draw times to stderr.
package weatheroverlay
