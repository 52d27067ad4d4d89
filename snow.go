package weatheroverlay

import (
	"math"
	"math/rand/v2"
)

const (
	snowAngleStep = 0.01
	snowMargin    = 5   // flakes may drift this far past either side edge
	snowSpawnY    = -10 // re-entry height for flakes falling in from the top
)

var snowColor = RGBA8(255, 255, 255, 0.8)

// Snow draws falling flakes. A single angle accumulator drives every flake,
// so the sideways sway is shared and the vertical wobble differs only by
// each flake's phase.
type Snow struct {
	w, h   float64
	rng    *rand.Rand
	angle  float64
	flakes [SnowParticles]snowflake
}

// NewSnow creates a snow effect for a w×h surface with flakes scattered over
// the whole area.
func NewSnow(w, h float64, rng *rand.Rand) *Snow {
	s := &Snow{w: w, h: h, rng: rng}
	for i := range s.flakes {
		p := &s.flakes[i]
		p.x, p.y = randomPosition(rng, w, h)
		p.r = snowRadius.Random(rng)
		p.d = snowDensity.Random(rng)
	}
	return s
}

// Draw fills every flake in one translucent pass, then advances the flakes.
func (s *Snow) Draw(dst Surface) {
	dst.SetGlobalAlpha(1)
	dst.SetFillStyle(snowColor)
	dst.BeginPath()
	for i := range s.flakes {
		p := &s.flakes[i]
		dst.MoveTo(p.x, p.y)
		dst.Arc(p.x, p.y, p.r, 0, 2*math.Pi, true)
	}
	dst.Fill()
	s.update()
}

// Len returns the number of flakes.
func (s *Snow) Len() int {
	return len(s.flakes)
}

func (s *Snow) update() {
	s.angle += snowAngleStep
	sway := math.Sin(s.angle)
	for i := range s.flakes {
		p := &s.flakes[i]
		// The +1 keeps the net motion downward whatever the cosine's sign.
		p.y += math.Cos(s.angle+p.d) + 1 + p.r/2
		p.x += sway * 2

		if p.x > s.w+snowMargin || p.x < -snowMargin || p.y > s.h {
			s.recycle(i, sway)
		}
	}
}

// recycle moves flake i back into view. Two of every three flakes re-enter
// from the top; the rest blow in from the side the wind is coming from.
func (s *Snow) recycle(i int, sway float64) {
	p := &s.flakes[i]
	if i%3 > 0 {
		p.x = Range{0, s.w}.Random(s.rng)
		p.y = snowSpawnY
		return
	}
	if sway > 0 {
		p.x = -snowMargin
	} else {
		p.x = s.w + snowMargin
	}
	p.y = Range{0, s.h}.Random(s.rng)
}
