package weatheroverlay

import "math/rand/v2"

const (
	rainLineWidth = 3
	rainSpawnY    = -10
)

var rainColor = RGBA8(96, 144, 216, 0.7)

// Rain draws straight streaks moving at constant velocity.
type Rain struct {
	w, h  float64
	rng   *rand.Rand
	drops [RainParticles]raindrop
}

// NewRain creates a rain effect for a w×h surface.
func NewRain(w, h float64, rng *rand.Rand) *Rain {
	r := &Rain{w: w, h: h, rng: rng}
	for i := range r.drops {
		p := &r.drops[i]
		p.x, p.y = randomPosition(rng, w, h)
		p.l = rainLength.Random(rng)
		p.xs = rainSpeedX.Random(rng)
		p.ys = rainSpeedY.Random(rng)
	}
	return r
}

// Draw strokes one segment per drop along its velocity, then moves the drops.
func (r *Rain) Draw(dst Surface) {
	dst.SetStrokeStyle(rainColor)
	dst.SetLineWidth(rainLineWidth)
	dst.SetLineCap(LineCapRound)
	dst.SetGlobalAlpha(1)
	for i := range r.drops {
		p := &r.drops[i]
		dst.BeginPath()
		dst.MoveTo(p.x, p.y)
		dst.LineTo(p.x+p.l*p.xs, p.y+p.l*p.ys)
		dst.Stroke()
	}
	r.update()
}

// Len returns the number of drops.
func (r *Rain) Len() int {
	return len(r.drops)
}

func (r *Rain) update() {
	for i := range r.drops {
		p := &r.drops[i]
		p.x += p.xs
		p.y += p.ys
		if p.x > r.w || p.y > r.h {
			p.x = Range{0, r.w}.Random(r.rng)
			p.y = rainSpawnY
		}
	}
}
