package weatheroverlay_test

import (
	"slices"
	"testing"
	"time"

	"github.com/phanxgames/weatheroverlay"
)

func TestSelectRecognizedStates(t *testing.T) {
	tests := []struct {
		state string
		want  []weatheroverlay.EffectKind
	}{
		{"cloudy", []weatheroverlay.EffectKind{weatheroverlay.EffectCloud}},
		{"partlycloudy", []weatheroverlay.EffectKind{weatheroverlay.EffectCloud, weatheroverlay.EffectSun}},
		{"rainy", []weatheroverlay.EffectKind{weatheroverlay.EffectRain}},
		{"snowy", []weatheroverlay.EffectKind{weatheroverlay.EffectSnow}},
		{"snowy-rainy", []weatheroverlay.EffectKind{weatheroverlay.EffectRain, weatheroverlay.EffectSnow}},
		{"sunny", []weatheroverlay.EffectKind{weatheroverlay.EffectSun}},
	}
	for _, tt := range tests {
		t.Run(tt.state, func(t *testing.T) {
			sel := weatheroverlay.Select(tt.state)
			if sel.Cadence != 33*time.Millisecond {
				t.Errorf("Cadence = %v, want 33ms", sel.Cadence)
			}
			if !slices.Equal(sel.Kinds, tt.want) {
				t.Errorf("Kinds = %v, want %v", sel.Kinds, tt.want)
			}
			if !sel.Recognized() {
				t.Error("Recognized() = false")
			}
		})
	}
}

func TestSelectFallsBackToLabel(t *testing.T) {
	for _, state := range []string{"xyz", "", "clear-night", "Sunny", "rainy "} {
		sel := weatheroverlay.Select(state)
		if sel.Cadence != time.Second {
			t.Errorf("Select(%q).Cadence = %v, want 1s", state, sel.Cadence)
		}
		if !slices.Equal(sel.Kinds, []weatheroverlay.EffectKind{weatheroverlay.EffectLabel}) {
			t.Errorf("Select(%q).Kinds = %v, want [label]", state, sel.Kinds)
		}
		if sel.Recognized() {
			t.Errorf("Select(%q).Recognized() = true", state)
		}
	}
}

func TestSelectReturnsCopies(t *testing.T) {
	a := weatheroverlay.Select("partlycloudy")
	a.Kinds[0] = weatheroverlay.EffectLabel
	b := weatheroverlay.Select("partlycloudy")
	if b.Kinds[0] != weatheroverlay.EffectCloud {
		t.Error("mutating a selection changed the table")
	}
}

func TestKnownStatesAreRecognized(t *testing.T) {
	states := weatheroverlay.KnownStates()
	if len(states) != 6 {
		t.Fatalf("len(KnownStates()) = %d, want 6", len(states))
	}
	for _, s := range states {
		if !weatheroverlay.Select(s).Recognized() {
			t.Errorf("%q is listed but not recognized", s)
		}
	}
}

func TestBuildCreatesFreshEffects(t *testing.T) {
	sel := weatheroverlay.Select("snowy-rainy")
	rng := weatheroverlay.NewRand(1)
	a := sel.Build(100, 100, rng)
	b := sel.Build(100, 100, rng)
	if len(a) != 2 {
		t.Fatalf("len(Build) = %d, want 2", len(a))
	}
	if _, ok := a[0].(*weatheroverlay.Rain); !ok {
		t.Errorf("effect 0 = %T, want *Rain", a[0])
	}
	if _, ok := a[1].(*weatheroverlay.Snow); !ok {
		t.Errorf("effect 1 = %T, want *Snow", a[1])
	}
	if a[0] == b[0] || a[1] == b[1] {
		t.Error("Build reused effect instances")
	}

	label := weatheroverlay.Select("xyz").Build(100, 100, rng)
	if l, ok := label[0].(*weatheroverlay.Label); !ok || l.Text() != "xyz" {
		t.Errorf("fallback effect = %#v, want Label(xyz)", label[0])
	}
}

func TestEffectKindString(t *testing.T) {
	if got := weatheroverlay.EffectSun.String(); got != "sun" {
		t.Errorf("EffectSun.String() = %q", got)
	}
	if got := weatheroverlay.EffectKind(99).String(); got != "unknown" {
		t.Errorf("EffectKind(99).String() = %q", got)
	}
}
