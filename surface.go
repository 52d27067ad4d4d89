package weatheroverlay

// Surface is the 2D drawing target supplied by the host. Its method set
// mirrors a canvas 2D context: state setters affect every subsequent draw
// call, and paths accumulate between BeginPath and Fill or Stroke.
//
// Surfaces are not safe for concurrent use; the Scheduler only touches a
// surface from its tick goroutine.
type Surface interface {
	// ClearRect sets every pixel in the rectangle to transparent.
	ClearRect(x, y, w, h float64)
	// FillRect fills the rectangle with the current fill style and alpha.
	FillRect(x, y, w, h float64)

	SetFillStyle(p Paint)
	SetStrokeStyle(c Color)
	SetLineWidth(w float64)
	SetLineCap(c LineCap)
	// SetGlobalAlpha sets the alpha multiplier in [0, 1] applied to all
	// subsequent fills, strokes, and text.
	SetGlobalAlpha(a float64)
	SetFont(f Font)
	SetTextAlign(a TextAlign)
	SetTextBaseline(b TextBaseline)

	BeginPath()
	MoveTo(x, y float64)
	LineTo(x, y float64)
	// Arc adds a circular arc centered at (x, y). Angles are in radians,
	// measured clockwise from the positive X axis (Y points down).
	Arc(x, y, r, start, end float64, counterclockwise bool)
	ClosePath()
	Fill()
	Stroke()

	// FillText draws text at (x, y) positioned by the current alignment and
	// baseline.
	FillText(text string, x, y float64)
}

// Effect is one weather visual. Draw paints the current frame onto dst and
// advances the simulation for the next one.
type Effect interface {
	Draw(dst Surface)
}

// DrawFrame clears the w×h area of dst and draws every effect in order, so
// later effects paint over earlier ones.
func DrawFrame(dst Surface, w, h float64, effects []Effect) {
	dst.ClearRect(0, 0, w, h)
	for _, e := range effects {
		e.Draw(dst)
	}
}
