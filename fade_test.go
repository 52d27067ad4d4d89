package weatheroverlay

import (
	"math"
	"testing"

	"github.com/tanema/gween/ease"
)

func TestFadeReachesTarget(t *testing.T) {
	f := NewFade(0, 1, 1.0, ease.Linear)

	// Exact halves avoid float32 accumulation drift.
	f.Update(0.5)
	if f.Done() {
		t.Fatal("Done after half the duration")
	}
	if math.Abs(f.Value()-0.5) > 0.01 {
		t.Errorf("Value at half = %v, want ~0.5", f.Value())
	}
	f.Update(0.5)
	if !f.Done() {
		t.Fatal("expected Done after full duration")
	}
	if math.Abs(f.Value()-1) > 0.01 {
		t.Errorf("Value = %v, want ~1", f.Value())
	}
}

func TestFadeHoldsAfterDone(t *testing.T) {
	f := NewFade(1, 0, 0.25, ease.Linear)
	f.Update(1)
	v := f.Update(1)
	if !f.Done() || math.Abs(v) > 0.01 {
		t.Errorf("after done: value %v, done %v", v, f.Done())
	}
}

func TestFadeIn(t *testing.T) {
	f := FadeIn()
	if f.Value() != 0 {
		t.Errorf("initial value = %v, want 0", f.Value())
	}
	for i := 0; i < 60; i++ {
		f.Update(1.0 / 60)
	}
	if !f.Done() {
		t.Fatal("FadeIn not done after a second")
	}
	if math.Abs(f.Value()-Opacity) > 0.01 {
		t.Errorf("FadeIn value = %v, want %v", f.Value(), Opacity)
	}
}
