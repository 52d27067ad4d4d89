package weatheroverlay

import (
	"image/color"
	"math"
	"math/rand/v2"
)

// Color represents an RGBA color with components in [0, 1]. Not premultiplied.
// Premultiplication occurs when a surface converts it for compositing.
type Color struct {
	R, G, B, A float64
}

// RGBA8 builds a Color from 8-bit channels and a [0, 1] alpha, matching the
// rgba(r, g, b, a) notation used for overlay colors.
func RGBA8(r, g, b uint8, a float64) Color {
	return Color{float64(r) / 255, float64(g) / 255, float64(b) / 255, a}
}

// Named colors used by the effects.
var (
	ColorWhite  = Color{1, 1, 1, 1}
	ColorSilver = RGBA8(192, 192, 192, 1)
	ColorGray   = RGBA8(128, 128, 128, 1)
)

// WithAlpha returns c with its alpha multiplied by a.
func (c Color) WithAlpha(a float64) Color {
	c.A *= a
	return c
}

// RGBA returns the premultiplied 8-bit form of c, clamping out-of-range
// components.
func (c Color) RGBA() color.RGBA {
	a := clamp01(c.A)
	return color.RGBA{
		R: uint8(math.Round(clamp01(c.R) * a * 255)),
		G: uint8(math.Round(clamp01(c.G) * a * 255)),
		B: uint8(math.Round(clamp01(c.B) * a * 255)),
		A: uint8(math.Round(a * 255)),
	}
}

func (Color) paint() {}

// Vec2 is a 2D vector used for positions and velocities.
type Vec2 struct {
	X, Y float64
}

// Rect is an axis-aligned rectangle. The coordinate system has its origin at
// the top-left, with Y increasing downward.
type Rect struct {
	X, Y, Width, Height float64
}

// Contains reports whether the point (x, y) lies inside the rectangle.
// Points on the edge are considered inside.
func (r Rect) Contains(x, y float64) bool {
	return x >= r.X && x <= r.X+r.Width &&
		y >= r.Y && y <= r.Y+r.Height
}

// Intersect returns the overlap of r and other. The result has zero width or
// height when they do not overlap.
func (r Rect) Intersect(other Rect) Rect {
	x0 := math.Max(r.X, other.X)
	y0 := math.Max(r.Y, other.Y)
	x1 := math.Min(r.X+r.Width, other.X+other.Width)
	y1 := math.Min(r.Y+r.Height, other.Y+other.Height)
	if x1 <= x0 || y1 <= y0 {
		return Rect{X: x0, Y: y0}
	}
	return Rect{X: x0, Y: y0, Width: x1 - x0, Height: y1 - y0}
}

// Empty reports whether the rectangle covers no area.
func (r Rect) Empty() bool {
	return r.Width <= 0 || r.Height <= 0
}

// Range is a half-open [Min, Max) interval used to randomize particle
// attributes.
type Range struct {
	Min, Max float64
}

// Random returns a value in [Min, Max) drawn from rng. A nil rng uses the
// package-level generator.
func (r Range) Random(rng *rand.Rand) float64 {
	if r.Min == r.Max {
		return r.Min
	}
	return r.Min + randFloat(rng)*(r.Max-r.Min)
}

// Contains reports whether v lies in [Min, Max).
func (r Range) Contains(v float64) bool {
	return v >= r.Min && v < r.Max
}

func randFloat(rng *rand.Rand) float64 {
	if rng == nil {
		return rand.Float64()
	}
	return rng.Float64()
}

// NewRand returns a deterministic generator for seed. A zero seed yields a
// randomly seeded generator.
func NewRand(seed uint64) *rand.Rand {
	if seed == 0 {
		seed = rand.Uint64()
	}
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

// LineCap selects how the ends of stroked segments are drawn.
type LineCap uint8

const (
	LineCapButt   LineCap = iota // flat end at the endpoint
	LineCapRound                 // half circle past the endpoint
	LineCapSquare                // half square past the endpoint
)

// TextAlign controls horizontal placement of FillText relative to x.
type TextAlign uint8

const (
	TextAlignStart TextAlign = iota // text starts at x (default)
	TextAlignCenter                 // text is centered on x
	TextAlignEnd                    // text ends at x
)

// TextBaseline controls vertical placement of FillText relative to y.
type TextBaseline uint8

const (
	TextBaselineAlphabetic TextBaseline = iota // y is the glyph baseline (default)
	TextBaselineTop                            // y is the top of the em box
	TextBaselineMiddle                         // y is the middle of the em box
	TextBaselineBottom                         // y is the bottom of the em box
)

// Font describes the text face requested by FillText. Surfaces pick the
// closest face they have.
type Font struct {
	Family string
	Size   float64 // pixels
}

// DefaultFont is "1em Arial" at a 16px root size.
var DefaultFont = Font{Family: "Arial", Size: 16}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
