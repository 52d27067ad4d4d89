package weatheroverlay

import (
	"math"
	"math/rand/v2"
)

const (
	cloudRadius = 150
	cloudLength = 50 // puffs per trail
)

// Cloud draws soft clouds as trails of large, nearly transparent circles.
// Overlapping puffs build up density toward the middle of each trail.
type Cloud struct {
	w, h  float64
	rng   *rand.Rand
	puffs [CloudParticles]cloudPuff
}

// NewCloud creates a cloud effect for a w×h surface.
func NewCloud(w, h float64, rng *rand.Rand) *Cloud {
	c := &Cloud{w: w, h: h, rng: rng}
	for i := range c.puffs {
		p := &c.puffs[i]
		p.x, p.y = randomPosition(rng, w, h)
		p.r = cloudRadius
		p.xs = cloudSpeedX.Random(rng)
		p.ys = cloudSpeedY.Random(rng)
	}
	return c
}

// Draw fills each trail puff by puff, then drifts the clouds.
func (c *Cloud) Draw(dst Surface) {
	dst.SetFillStyle(ColorSilver)
	for i := range c.puffs {
		p := &c.puffs[i]
		for j := 0; j < cloudLength; j++ {
			dst.BeginPath()
			dst.SetGlobalAlpha(puffAlpha(j))
			dst.Arc(p.x+p.xs*float64(j), p.y+p.ys*float64(j), p.r, 0, 2*math.Pi, false)
			dst.Fill()
		}
	}
	c.update()
}

// Len returns the number of cloud trails.
func (c *Cloud) Len() int {
	return len(c.puffs)
}

// puffAlpha is a triangular profile over the trail, peaking at its midpoint.
func puffAlpha(i int) float64 {
	return (1 - math.Abs(float64(i)/cloudLength-0.5)) / cloudRadius
}

func (c *Cloud) update() {
	for i := range c.puffs {
		p := &c.puffs[i]
		p.x += p.xs
		p.y += p.ys
		if p.x > 2*c.w {
			p.x = -c.w
			p.y = Range{0, c.h}.Random(c.rng)
		}
	}
}
