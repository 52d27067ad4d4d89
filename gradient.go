package weatheroverlay

import (
	"math"
	"sort"

	"github.com/lucasb-eyer/go-colorful"
)

// Paint is anything a surface can fill with: a Color or a *RadialGradient.
type Paint interface {
	paint()
}

// ColorStop is one stop of a gradient. Offset is in [0, 1].
type ColorStop struct {
	Offset float64
	Color  Color
}

// RadialGradient is a two-circle radial gradient. Only concentric circles
// are sampled exactly; for offset centers the start circle's center is used.
type RadialGradient struct {
	X0, Y0, R0 float64
	X1, Y1, R1 float64
	stops      []ColorStop
}

// NewRadialGradient creates a gradient between the circle (x0, y0, r0) and
// the circle (x1, y1, r1). Negative radii are clamped to zero.
func NewRadialGradient(x0, y0, r0, x1, y1, r1 float64) *RadialGradient {
	return &RadialGradient{
		X0: x0, Y0: y0, R0: math.Max(r0, 0),
		X1: x1, Y1: y1, R1: math.Max(r1, 0),
	}
}

func (*RadialGradient) paint() {}

// AddColorStop inserts a stop. Offsets outside [0, 1] are clamped. Stops with
// equal offsets keep insertion order.
func (g *RadialGradient) AddColorStop(offset float64, c Color) {
	offset = clamp01(offset)
	i := sort.Search(len(g.stops), func(i int) bool { return g.stops[i].Offset > offset })
	g.stops = append(g.stops, ColorStop{})
	copy(g.stops[i+1:], g.stops[i:])
	g.stops[i] = ColorStop{Offset: offset, Color: c}
}

// Stops returns the gradient's stops in offset order. The returned slice
// MUST NOT be mutated.
func (g *RadialGradient) Stops() []ColorStop {
	return g.stops
}

// Param returns the gradient parameter t in [0, 1] at point (x, y): the
// distance from the center mapped from [R0, R1] and padded at both ends.
func (g *RadialGradient) Param(x, y float64) float64 {
	d := math.Hypot(x-g.X0, y-g.Y0)
	span := g.R1 - g.R0
	if span == 0 {
		if d < g.R0 {
			return 0
		}
		return 1
	}
	return clamp01((d - g.R0) / span)
}

// At returns the color of the gradient at point (x, y). A gradient with no
// stops is transparent.
func (g *RadialGradient) At(x, y float64) Color {
	return g.ColorAt(g.Param(x, y))
}

// ColorAt returns the interpolated color at parameter t.
func (g *RadialGradient) ColorAt(t float64) Color {
	n := len(g.stops)
	switch {
	case n == 0:
		return Color{}
	case t <= g.stops[0].Offset:
		return g.stops[0].Color
	case t >= g.stops[n-1].Offset:
		return g.stops[n-1].Color
	}
	for i := 1; i < n; i++ {
		b := g.stops[i]
		if t > b.Offset {
			continue
		}
		a := g.stops[i-1]
		span := b.Offset - a.Offset
		if span <= 0 {
			return b.Color
		}
		return blend(a.Color, b.Color, (t-a.Offset)/span)
	}
	return g.stops[n-1].Color
}

// blend interpolates RGB with go-colorful and alpha linearly.
func blend(a, b Color, t float64) Color {
	ca := colorful.Color{R: a.R, G: a.G, B: a.B}
	cb := colorful.Color{R: b.R, G: b.G, B: b.B}
	c := ca.BlendRgb(cb, t)
	return Color{R: c.R, G: c.G, B: c.B, A: a.A + (b.A-a.A)*t}
}
