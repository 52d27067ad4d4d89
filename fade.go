package weatheroverlay

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// FadeDuration is how long hosts take to fade a new animation in, in
// seconds.
const FadeDuration = 0.6

// Fade animates one opacity value. Hosts start a new Fade whenever the card
// switches animation and call Update every frame.
type Fade struct {
	tween *gween.Tween
	value float64
	done  bool
}

// NewFade creates a fade from one value to another over duration seconds
// using the easing function.
func NewFade(from, to float64, duration float32, fn ease.TweenFunc) *Fade {
	return &Fade{
		tween: gween.New(float32(from), float32(to), duration, fn),
		value: from,
	}
}

// FadeIn returns the default fade from transparent to Opacity.
func FadeIn() *Fade {
	return NewFade(0, Opacity, FadeDuration, ease.OutQuad)
}

// Update advances the fade by dt seconds and returns the current value.
func (f *Fade) Update(dt float32) float64 {
	if f.done {
		return f.value
	}
	v, finished := f.tween.Update(dt)
	f.value = float64(v)
	f.done = finished
	return f.value
}

// Value returns the current value without advancing.
func (f *Fade) Value() float64 {
	return f.value
}

// Done reports whether the fade has reached its target.
func (f *Fade) Done() bool {
	return f.done
}
