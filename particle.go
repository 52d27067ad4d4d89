package weatheroverlay

import "math/rand/v2"

// Population sizes. Each effect preallocates exactly this many particles and
// recycles them in place for its whole lifetime.
const (
	SnowParticles  = 100
	RainParticles  = 200
	CloudParticles = 50
)

// snowflake holds per-flake state. r and d survive recycling; only the
// position is reset.
type snowflake struct {
	x, y float64
	r    float64 // radius
	d    float64 // density, used as the phase offset of the vertical wobble
}

// raindrop holds per-drop state. The streak shape (l, xs, ys) is fixed for
// the drop's lifetime.
type raindrop struct {
	x, y   float64
	l      float64 // streak length as a fraction of one tick's travel
	xs, ys float64 // velocity in pixels per tick
}

// cloudPuff is the head of one cloud trail.
type cloudPuff struct {
	x, y   float64
	r      float64
	xs, ys float64
}

// Attribute ranges for freshly created particles.
var (
	snowRadius  = Range{1, 9}
	snowDensity = Range{0, SnowParticles}

	rainLength = Range{0, 1}
	rainSpeedX = Range{-1, 3}
	rainSpeedY = Range{10, 20}

	cloudSpeedX = Range{5, 15}
	cloudSpeedY = Range{-2, 2}
)

// randomPosition returns a point uniformly distributed over a w×h area.
func randomPosition(rng *rand.Rand, w, h float64) (float64, float64) {
	return Range{0, w}.Random(rng), Range{0, h}.Random(rng)
}
